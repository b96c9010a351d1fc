package rosterreport

import (
	"flag"
	"fmt"
	"path/filepath"
	"strings"

	platformcmd "github.com/louisbranch/tavernstats/internal/platform/cmd"
	"github.com/louisbranch/tavernstats/internal/render"
	"golang.org/x/text/language"
)

// DataDirName is the folder under the base directory holding every input and
// output file.
const DataDirName = "Data"

// Artifact file names inside the data folder.
const (
	InputFile    = "dnd_classes_races_starter.csv"
	MatrixFile   = "race_class_matrix.csv"
	ClassBarFile = "class_counts.png"
	RacePieFile  = "race_pie.png"
	HeatmapFile  = "race_class_heatmap.png"
	SessionsFile = "sessions_log.csv"
)

// Config holds roster report configuration.
type Config struct {
	BaseDir string `env:"BASE_DIR" envDefault:"."`
	Open    bool   `env:"OPEN" envDefault:"true"`
	Locale  string `env:"LOCALE" envDefault:"en-US"`
	Palette string `env:"PALETTE" envDefault:"kindlmann"`
}

// Paths are the resolved artifact locations for one run.
type Paths struct {
	DataDir  string
	Input    string
	Matrix   string
	ClassBar string
	RacePie  string
	Heatmap  string
	Sessions string
}

// Paths resolves every artifact under BaseDir/Data.
func (c Config) Paths() Paths {
	dataDir := filepath.Join(c.BaseDir, DataDirName)
	return Paths{
		DataDir:  dataDir,
		Input:    filepath.Join(dataDir, InputFile),
		Matrix:   filepath.Join(dataDir, MatrixFile),
		ClassBar: filepath.Join(dataDir, ClassBarFile),
		RacePie:  filepath.Join(dataDir, RacePieFile),
		Heatmap:  filepath.Join(dataDir, HeatmapFile),
		Sessions: filepath.Join(dataDir, SessionsFile),
	}
}

// Images returns the rendered chart paths in render order.
func (p Paths) Images() []string {
	return []string{p.ClassBar, p.RacePie, p.Heatmap}
}

// ParseConfig loads TAVERNSTATS_* environment defaults and then parses flags
// into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.BaseDir, "base-dir", cfg.BaseDir, "directory containing the Data folder (default: TAVERNSTATS_BASE_DIR or .)")
	fs.BoolVar(&cfg.Open, "open", cfg.Open, "open rendered charts in the default viewer where the platform supports it")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "BCP 47 locale used to format console counts")
	fs.StringVar(&cfg.Palette, "palette", cfg.Palette, "heat map color map ("+strings.Join(render.PaletteNames(), "|")+")")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// validate checks settings that would otherwise fail after outputs exist.
func (c Config) validate() (language.Tag, error) {
	if strings.TrimSpace(c.BaseDir) == "" {
		return language.Und, fmt.Errorf("base-dir is required")
	}
	tag, err := language.Parse(strings.TrimSpace(c.Locale))
	if err != nil {
		return language.Und, fmt.Errorf("parse locale %q: %w", c.Locale, err)
	}
	if err := render.ValidatePalette(c.Palette); err != nil {
		return language.Und, err
	}
	return tag, nil
}
