package render

import (
	"bytes"
	"image"
	_ "image/png"
	"os"
	"image/color"
	"path/filepath"
	"strconv"
	"testing"

	apperrors "github.com/louisbranch/tavernstats/internal/platform/errors"
	"github.com/louisbranch/tavernstats/internal/roster"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
)

func sampleTable() roster.Table {
	return roster.Table{
		Header: []string{"Race", "Class", "Subclass"},
		Rows: [][]string{
			{"Human", "Fighter", "Battle Master"},
			{"Elf", "Wizard", "Evocation"},
			{"Human", "Wizard", "Evocation"},
			{"Dwarf", "Cleric", "Life"},
			{"Human", "Fighter", "Champion"},
		},
	}
}

func decodePNG(t *testing.T, path string) image.Config {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	if format != "png" {
		t.Fatalf("expected png, got %s", format)
	}
	if cfg.Width == 0 || cfg.Height == 0 {
		t.Fatalf("expected non-empty image, got %dx%d", cfg.Width, cfg.Height)
	}
	return cfg
}

func TestBarWritesPNG(t *testing.T) {
	freq, err := roster.Frequencies(sampleTable(), roster.ColumnClass)
	if err != nil {
		t.Fatalf("frequencies: %v", err)
	}
	path := filepath.Join(t.TempDir(), "class_counts.png")
	if err := Bar(path, freq, Options{}); err != nil {
		t.Fatalf("bar: %v", err)
	}
	decodePNG(t, path)
}

func TestPieWritesPNG(t *testing.T) {
	freq, err := roster.Frequencies(sampleTable(), roster.ColumnRace)
	if err != nil {
		t.Fatalf("frequencies: %v", err)
	}
	path := filepath.Join(t.TempDir(), "race_pie.png")
	if err := Pie(path, freq, Options{}); err != nil {
		t.Fatalf("pie: %v", err)
	}
	decodePNG(t, path)
}

func TestHeatmapWritesPNG(t *testing.T) {
	m, err := roster.CrossTab(sampleTable(), roster.ColumnRace, roster.ColumnClass, roster.ColumnSubclass)
	if err != nil {
		t.Fatalf("crosstab: %v", err)
	}
	for _, name := range PaletteNames() {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "race_class_heatmap.png")
			if err := Heatmap(path, m, Options{Palette: name}); err != nil {
				t.Fatalf("heatmap: %v", err)
			}
			decodePNG(t, path)
		})
	}
}

func TestHeatmapAllZeroMatrix(t *testing.T) {
	tbl := roster.Table{
		Header: []string{"Race", "Class", "Subclass"},
		Rows:   [][]string{{"Human", "Fighter", ""}},
	}
	m, err := roster.CrossTab(tbl, roster.ColumnRace, roster.ColumnClass, roster.ColumnSubclass)
	if err != nil {
		t.Fatalf("crosstab: %v", err)
	}
	path := filepath.Join(t.TempDir(), "zero.png")
	if err := Heatmap(path, m, Options{}); err != nil {
		t.Fatalf("heatmap: %v", err)
	}
	decodePNG(t, path)
}

func TestRenderersOverwriteExistingFile(t *testing.T) {
	freq, err := roster.Frequencies(sampleTable(), roster.ColumnClass)
	if err != nil {
		t.Fatalf("frequencies: %v", err)
	}
	path := filepath.Join(t.TempDir(), "class_counts.png")
	if err := os.WriteFile(path, []byte("not a png"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := Bar(path, freq, Options{}); err != nil {
		t.Fatalf("bar: %v", err)
	}
	decodePNG(t, path)
}

func TestRenderersRejectEmptyData(t *testing.T) {
	dir := t.TempDir()
	empty := roster.Frequency{Column: roster.ColumnClass}
	if err := Bar(filepath.Join(dir, "bar.png"), empty, Options{}); apperrors.CodeOf(err) != apperrors.CodeChartEmpty {
		t.Fatalf("bar: expected %s, got %v", apperrors.CodeChartEmpty, err)
	}
	if err := Pie(filepath.Join(dir, "pie.png"), empty, Options{}); apperrors.CodeOf(err) != apperrors.CodeChartEmpty {
		t.Fatalf("pie: expected %s, got %v", apperrors.CodeChartEmpty, err)
	}
	if err := Heatmap(filepath.Join(dir, "heat.png"), roster.CountMatrix{}, Options{}); apperrors.CodeOf(err) != apperrors.CodeChartEmpty {
		t.Fatalf("heatmap: expected %s, got %v", apperrors.CodeChartEmpty, err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no files for empty data, got %d", len(entries))
	}
}

func TestUnsupportedPalette(t *testing.T) {
	if err := ValidatePalette("rainbow"); apperrors.CodeOf(err) != apperrors.CodePaletteUnsupported {
		t.Fatalf("expected %s, got %v", apperrors.CodePaletteUnsupported, err)
	}
	if err := ValidatePalette(""); err != nil {
		t.Fatalf("expected default palette to be valid: %v", err)
	}
	if err := ValidatePalette(" BlackBody "); err != nil {
		t.Fatalf("expected case-insensitive palette name: %v", err)
	}
}

func TestSliceLabel(t *testing.T) {
	tests := []struct {
		n, total int
		want     string
	}{
		{n: 1, total: 3, want: "Elf 33.3%"},
		{n: 2, total: 3, want: "Elf 66.7%"},
		{n: 3, total: 3, want: "Elf 100.0%"},
	}
	for _, tt := range tests {
		if got := SliceLabel("Elf", tt.n, tt.total); got != tt.want {
			t.Fatalf("expected %q, got %q", tt.want, got)
		}
	}
}

func TestMatrixGridPutsFirstRowOnTop(t *testing.T) {
	m, err := roster.CrossTab(sampleTable(), roster.ColumnRace, roster.ColumnClass, roster.ColumnSubclass)
	if err != nil {
		t.Fatalf("crosstab: %v", err)
	}
	g := matrixGrid{m: m}
	cols, rows := g.Dims()
	if cols != len(m.Columns) || rows != len(m.Rows) {
		t.Fatalf("unexpected dims %dx%d", cols, rows)
	}
	if got := g.rowLabel(rows - 1); got != m.Rows[0] {
		t.Fatalf("expected top row %s, got %s", m.Rows[0], got)
	}
	if got := g.count(0, rows-1); got != m.Cells[0][0] {
		t.Fatalf("expected top-left count %d, got %d", m.Cells[0][0], got)
	}
}

func TestGridLinesOnInteriorBoundaries(t *testing.T) {
	tests := []struct {
		name       string
		cols, rows int
	}{
		{name: "single cell", cols: 1, rows: 1},
		{name: "one row", cols: 4, rows: 1},
		{name: "one column", cols: 1, rows: 3},
		{name: "grid", cols: 4, rows: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, err := gridLines(tt.cols, tt.rows)
			if err != nil {
				t.Fatalf("grid lines: %v", err)
			}
			if want := (tt.cols - 1) + (tt.rows - 1); len(lines) != want {
				t.Fatalf("expected %d lines, got %d", want, len(lines))
			}
			var vertical, horizontal []float64
			for i, p := range lines {
				l, ok := p.(*plotter.Line)
				if !ok {
					t.Fatalf("line %d: unexpected plotter %T", i, p)
				}
				if len(l.XYs) != 2 {
					t.Fatalf("line %d: expected 2 points, got %d", i, len(l.XYs))
				}
				a, b := l.XYs[0], l.XYs[1]
				switch {
				case a.X == b.X:
					vertical = append(vertical, a.X)
					if a.Y != -0.5 || b.Y != float64(tt.rows)-0.5 {
						t.Fatalf("line %d: vertical line spans %v..%v", i, a.Y, b.Y)
					}
				case a.Y == b.Y:
					horizontal = append(horizontal, a.Y)
					if a.X != -0.5 || b.X != float64(tt.cols)-0.5 {
						t.Fatalf("line %d: horizontal line spans %v..%v", i, a.X, b.X)
					}
				default:
					t.Fatalf("line %d: not axis aligned: %v", i, l.XYs)
				}
			}
			for c, x := range vertical {
				if want := float64(c) + 0.5; x != want {
					t.Fatalf("vertical line %d at x=%v, want %v", c, x, want)
				}
			}
			for r, y := range horizontal {
				if want := float64(r) + 0.5; y != want {
					t.Fatalf("horizontal line %d at y=%v, want %v", r, y, want)
				}
			}
			if len(vertical) != tt.cols-1 || len(horizontal) != tt.rows-1 {
				t.Fatalf("expected %d vertical and %d horizontal lines, got %d and %d",
					tt.cols-1, tt.rows-1, len(vertical), len(horizontal))
			}
		})
	}
}

func TestCellLabelsShowCountsInPlace(t *testing.T) {
	m, err := roster.CrossTab(sampleTable(), roster.ColumnRace, roster.ColumnClass, roster.ColumnSubclass)
	if err != nil {
		t.Fatalf("crosstab: %v", err)
	}
	cm := moreland.Kindlmann()
	cm.SetMin(0)
	cm.SetMax(float64(m.Max()))

	labels, err := cellLabels(matrixGrid{m: m}, cm)
	if err != nil {
		t.Fatalf("cell labels: %v", err)
	}
	want := len(m.Rows) * len(m.Columns)
	if len(labels.XYs) != want || len(labels.Labels) != want {
		t.Fatalf("expected %d labels, got %d at %d positions", want, len(labels.Labels), len(labels.XYs))
	}

	at := map[plotter.XY]string{}
	for i, xy := range labels.XYs {
		at[xy] = labels.Labels[i]
	}
	for i, race := range m.Rows {
		for j, class := range m.Columns {
			// Row i of the matrix is drawn i rows down from the top.
			xy := plotter.XY{X: float64(j), Y: float64(len(m.Rows) - 1 - i)}
			got, ok := at[xy]
			if !ok {
				t.Fatalf("%s/%s: no label at %v", race, class, xy)
			}
			if want := strconv.Itoa(m.Cells[i][j]); got != want {
				t.Fatalf("%s/%s: expected label %q, got %q", race, class, want, got)
			}
		}
	}
}

func TestTextColorContrastsWithCell(t *testing.T) {
	cm := moreland.Kindlmann()
	cm.SetMin(0)
	cm.SetMax(4)

	tests := []struct {
		name  string
		value float64
		want  color.Color
	}{
		{name: "dark low end", value: 0, want: color.White},
		{name: "light high end", value: 4, want: color.Black},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := textColor(cm, tt.value); got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
