package render

import (
	"fmt"
	"io"

	"github.com/louisbranch/tavernstats/internal/roster"
	chart "github.com/wcharczuk/go-chart/v2"
	"gonum.org/v1/plot/vg"
)

// PieTitle is the pie chart title.
const PieTitle = "Race Distribution"

// SliceLabel formats a slice label with its share of total to one decimal
// place.
func SliceLabel(value string, n, total int) string {
	return fmt.Sprintf("%s %.1f%%", value, 100*float64(n)/float64(total))
}

// Pie draws one slice per value of freq, in frequency order.
func Pie(path string, freq roster.Frequency, opts Options) error {
	total := freq.Total()
	if total == 0 {
		return emptyChart(PieTitle)
	}

	values := make([]chart.Value, 0, len(freq.Counts))
	for _, c := range freq.Counts {
		values = append(values, chart.Value{
			Value: float64(c.N),
			Label: SliceLabel(c.Value, c.N, total),
		})
	}

	width, height := opts.size(6.4*vg.Inch, 4.8*vg.Inch)
	pie := chart.PieChart{
		Title:  PieTitle,
		Width:  pixels(width),
		Height: pixels(height),
		Values: values,
	}
	return writeFile(path, func(w io.Writer) error {
		return pie.Render(chart.PNG, w)
	})
}

// pixels converts a length to pixels at go-chart's default 92 DPI.
func pixels(l vg.Length) int {
	return int(l.Dots(chart.DefaultDPI))
}
