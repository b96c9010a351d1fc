package render

import (
	"image/color"
	"io"
	"math"

	"github.com/louisbranch/tavernstats/internal/roster"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Bar chart text.
const (
	BarTitle  = "Class Counts"
	BarXLabel = "Class"
	BarYLabel = "Count"
)

var barColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}

// Bar draws one bar per value of freq, in frequency order.
func Bar(path string, freq roster.Frequency, opts Options) error {
	if len(freq.Counts) == 0 {
		return emptyChart(BarTitle)
	}

	values := make(plotter.Values, len(freq.Counts))
	for i, c := range freq.Counts {
		values[i] = float64(c.N)
	}

	p := plot.New()
	p.Title.Text = BarTitle
	p.X.Label.Text = BarXLabel
	p.Y.Label.Text = BarYLabel
	p.Y.Min = 0

	bars, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return err
	}
	bars.LineStyle.Width = vg.Length(0)
	bars.Color = barColor
	p.Add(bars)
	p.NominalX(freq.Values()...)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	width, height := opts.size(6.4*vg.Inch, 4.8*vg.Inch)
	wt, err := p.WriterTo(width, height, "png")
	if err != nil {
		return err
	}
	return writeFile(path, func(w io.Writer) error {
		_, err := wt.WriteTo(w)
		return err
	})
}
