// Package render draws the roster report charts as PNG files.
//
// Bar charts and heat maps are drawn with gonum/plot; the pie chart uses
// go-chart, which gonum/plot has no equivalent for. Every renderer owns its
// output file for the duration of one call and always closes it.
package render

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	apperrors "github.com/louisbranch/tavernstats/internal/platform/errors"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/vg"
)

// DefaultPalette names the heat map color map used when none is configured.
const DefaultPalette = "kindlmann"

// Palettes maps configurable color map names to their constructors. All are
// perceptually ordered so darker or cooler cells hold lower counts.
var Palettes = map[string]func() palette.ColorMap{
	"kindlmann":         moreland.Kindlmann,
	"extendedkindlmann": moreland.ExtendedKindlmann,
	"blackbody":         moreland.BlackBody,
	"extendedblackbody": moreland.ExtendedBlackBody,
	"smoothbluered":     func() palette.ColorMap { return moreland.SmoothBlueRed() },
}

// PaletteNames returns the configurable color map names in ascending order.
func PaletteNames() []string {
	names := make([]string, 0, len(Palettes))
	for name := range Palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Options controls chart rendering.
type Options struct {
	// Palette names an entry of Palettes; empty selects DefaultPalette.
	Palette string
	// Width and Height of the image; zero selects per-chart defaults.
	Width  vg.Length
	Height vg.Length
}

func (o Options) size(width, height vg.Length) (vg.Length, vg.Length) {
	if o.Width > 0 {
		width = o.Width
	}
	if o.Height > 0 {
		height = o.Height
	}
	return width, height
}

func (o Options) colorMap() (palette.ColorMap, error) {
	name := strings.ToLower(strings.TrimSpace(o.Palette))
	if name == "" {
		name = DefaultPalette
	}
	newMap, ok := Palettes[name]
	if !ok {
		return nil, apperrors.WithMetadata(
			apperrors.CodePaletteUnsupported,
			fmt.Sprintf("unsupported palette %q (available: %s)", o.Palette, strings.Join(PaletteNames(), ", ")),
			map[string]string{"palette": o.Palette},
		)
	}
	return newMap(), nil
}

// ValidatePalette reports whether name selects a known color map.
func ValidatePalette(name string) error {
	_, err := Options{Palette: name}.colorMap()
	return err
}

// writeFile replaces path with the output of write, closing the file on
// every path out.
func writeFile(path string, write func(io.Writer) error) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if closeErr := file.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("close %s: %w", path, closeErr)
		}
	}()
	if err := write(file); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func emptyChart(title string) error {
	return apperrors.WithMetadata(
		apperrors.CodeChartEmpty,
		fmt.Sprintf("%s: no data to plot", title),
		map[string]string{"chart": title},
	)
}
