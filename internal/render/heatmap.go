package render

import (
	"image/color"
	"io"
	"math"
	"strconv"

	"github.com/louisbranch/tavernstats/internal/roster"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Heat map text.
const (
	HeatmapTitle      = "Race × Class Matrix"
	HeatmapScaleLabel = "Count"
)

const (
	heatmapColors  = 255
	colorBarWidth  = 1.1 * vg.Inch
	colorBarMargin = 24
)

var gridColor = color.Gray{Y: 128}

// matrixGrid exposes a count matrix as a plotter.GridXYZ with the first
// matrix row drawn at the top.
type matrixGrid struct {
	m roster.CountMatrix
}

func (g matrixGrid) Dims() (c, r int) { return len(g.m.Columns), len(g.m.Rows) }

func (g matrixGrid) Z(c, r int) float64 { return float64(g.count(c, r)) }

func (g matrixGrid) X(c int) float64 { return float64(c) }

func (g matrixGrid) Y(r int) float64 { return float64(r) }

func (g matrixGrid) count(c, r int) int { return g.m.Cells[len(g.m.Rows)-1-r][c] }

func (g matrixGrid) rowLabel(r int) string { return g.m.Rows[len(g.m.Rows)-1-r] }

// Heatmap draws m as a color-mapped grid with every cell labeled by its
// count, grid lines between cells and a color bar.
func Heatmap(path string, m roster.CountMatrix, opts Options) error {
	if m.Empty() {
		return emptyChart(HeatmapTitle)
	}
	cm, err := opts.colorMap()
	if err != nil {
		return err
	}

	top := float64(m.Max())
	if top <= 0 {
		top = 1
	}
	cm.SetMin(0)
	cm.SetMax(top)

	grid := matrixGrid{m: m}
	cols, rows := grid.Dims()

	p := plot.New()
	p.Title.Text = HeatmapTitle
	p.X.Label.Text = m.ColumnLabel
	p.Y.Label.Text = m.RowLabel

	hm := plotter.NewHeatMap(grid, cm.Palette(heatmapColors))
	hm.Min = 0
	hm.Max = top
	p.Add(hm)

	lines, err := gridLines(cols, rows)
	if err != nil {
		return err
	}
	p.Add(lines...)

	labels, err := cellLabels(grid, cm)
	if err != nil {
		return err
	}
	p.Add(labels)

	xTicks := make([]plot.Tick, cols)
	for c := range xTicks {
		xTicks[c] = plot.Tick{Value: grid.X(c), Label: m.Columns[c]}
	}
	yTicks := make([]plot.Tick, rows)
	for r := range yTicks {
		yTicks[r] = plot.Tick{Value: grid.Y(r), Label: grid.rowLabel(r)}
	}
	p.X.Tick.Marker = plot.ConstantTicks(xTicks)
	p.Y.Tick.Marker = plot.ConstantTicks(yTicks)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	bar := plot.New()
	bar.HideX()
	bar.Y.Label.Text = HeatmapScaleLabel
	bar.Add(&plotter.ColorBar{ColorMap: cm, Vertical: true})

	width, height := opts.size(6.5*vg.Inch, 4.5*vg.Inch)
	img := vgimg.New(width, height)
	dc := draw.New(img)
	p.Draw(draw.Crop(dc, 0, -colorBarWidth, 0, 0))
	bar.Draw(draw.Crop(dc, width-colorBarWidth, 0, colorBarMargin, -colorBarMargin))

	return writeFile(path, func(w io.Writer) error {
		_, err := vgimg.PngCanvas{Canvas: img}.WriteTo(w)
		return err
	})
}

// gridLines returns a line on every interior column and row boundary.
func gridLines(cols, rows int) ([]plot.Plotter, error) {
	var lines []plot.Plotter
	add := func(xys plotter.XYs) error {
		l, err := plotter.NewLine(xys)
		if err != nil {
			return err
		}
		l.LineStyle.Width = vg.Points(0.5)
		l.LineStyle.Color = gridColor
		lines = append(lines, l)
		return nil
	}
	for c := 1; c < cols; c++ {
		x := float64(c) - 0.5
		if err := add(plotter.XYs{{X: x, Y: -0.5}, {X: x, Y: float64(rows) - 0.5}}); err != nil {
			return nil, err
		}
	}
	for r := 1; r < rows; r++ {
		y := float64(r) - 0.5
		if err := add(plotter.XYs{{X: -0.5, Y: y}, {X: float64(cols) - 0.5, Y: y}}); err != nil {
			return nil, err
		}
	}
	return lines, nil
}

// cellLabels centers each cell's count, in white over dark cells.
func cellLabels(grid matrixGrid, cm palette.ColorMap) (*plotter.Labels, error) {
	cols, rows := grid.Dims()
	data := plotter.XYLabels{
		XYs:    make(plotter.XYs, 0, cols*rows),
		Labels: make([]string, 0, cols*rows),
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			data.XYs = append(data.XYs, plotter.XY{X: grid.X(c), Y: grid.Y(r)})
			data.Labels = append(data.Labels, strconv.Itoa(grid.count(c, r)))
		}
	}
	labels, err := plotter.NewLabels(data)
	if err != nil {
		return nil, err
	}
	for i, xy := range data.XYs {
		labels.TextStyle[i].XAlign = draw.XCenter
		labels.TextStyle[i].YAlign = draw.YCenter
		labels.TextStyle[i].Color = textColor(cm, grid.Z(int(xy.X), int(xy.Y)))
	}
	return labels, nil
}

// textColor picks black or white for legibility over the cell color.
func textColor(cm palette.ColorMap, v float64) color.Color {
	bg, err := cm.At(v)
	if err != nil {
		return color.Black
	}
	r, g, b, _ := bg.RGBA()
	luma := (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)) / 0xffff
	if luma < 0.5 {
		return color.White
	}
	return color.Black
}
