package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/theflywheel/probehash"
	"github.com/theflywheel/probehash/internal/datasource"
)

const (
	DebugSummary = 0 // print the summary only
	DebugDump    = 1 // summary plus a dump file per table
	DebugTrace   = 2 // log every insertion
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Experiment ExperimentBox `yaml:"experiment"`
}

// IsDumpEnabled reports whether tables should be written to dump files.
func (c *Config) IsDumpEnabled() bool {
	return c.Experiment.Debug == DebugDump
}

// IsTraceEnabled reports whether each insertion should be logged.
func (c *Config) IsTraceEnabled() bool {
	return c.Experiment.Debug == DebugTrace
}

type ExperimentBox struct {
	Source     string   `yaml:"source"`      // random | date | words, or 1 | 2 | 3
	LoadFactor float64  `yaml:"load_factor"` // alpha = n/m, in (0, 1]
	Debug      int      `yaml:"debug"`       // 0, 1 or 2
	Seed       int64    `yaml:"seed"`        // 0 means seed from the clock
	Hash       string   `yaml:"hash"`        // string hasher for the word list
	Capacity   Capacity `yaml:"capacity"`
	Words      WordList `yaml:"words"`
	Dump       Dump     `yaml:"dump"`
	Log        Log      `yaml:"log"`
}

// Capacity bounds the twin prime search.
type Capacity struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

type WordList struct {
	Path string `yaml:"path"`
}

type Dump struct {
	Dir    string `yaml:"dir"`
	Linear string `yaml:"linear"` // file name for the linear probing table
	Double string `yaml:"double"` // file name for the double hashing table
}

type Log struct {
	Level  string `yaml:"level"`  // zerolog level name
	Format string `yaml:"format"` // console or json
}

// Default returns the configuration the experiment runs with when nothing is overridden.
func Default() *Config {
	return &Config{
		Experiment: ExperimentBox{
			Source:     datasource.Random.String(),
			LoadFactor: 0.5,
			Debug:      DebugSummary,
			Hash:       probehash.HashPoly31,
			Capacity:   Capacity{Min: 95500, Max: 96000},
			Words:      WordList{Path: "word-list.txt"},
			Dump:       Dump{Dir: ".", Linear: "linear-dump.txt", Double: "double-dump.txt"},
			Log:        Log{Level: "info", Format: "console"},
		},
	}
}

// LoadConfig reads a YAML file over the defaults; keys missing from the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	path, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve absolute config filepath: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config yaml file %s: %w", path, err)
	}

	cfg := Default()
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal yaml from %s: %w", path, err)
	}

	return cfg, nil
}

// Kind returns the parsed data source.
func (c *Config) Kind() (datasource.Kind, error) {
	return datasource.ParseKind(c.Experiment.Source)
}

// Validate checks every field and returns all problems joined together.
func (c *Config) Validate() error {
	e := c.Experiment
	var errs []error

	if _, err := c.Kind(); err != nil {
		errs = append(errs, err)
	}
	if e.LoadFactor <= 0 || e.LoadFactor > 1 {
		errs = append(errs, fmt.Errorf("load factor %v out of range (0, 1]", e.LoadFactor))
	}
	if e.Debug < DebugSummary || e.Debug > DebugTrace {
		errs = append(errs, fmt.Errorf("debug level %d not in {0, 1, 2}", e.Debug))
	}
	if _, err := probehash.StringHasher(e.Hash); err != nil {
		errs = append(errs, err)
	}
	if e.Capacity.Min <= 2 {
		errs = append(errs, fmt.Errorf("capacity min %d must be greater than 2", e.Capacity.Min))
	}
	if e.Capacity.Min >= e.Capacity.Max {
		errs = append(errs, fmt.Errorf("capacity range [%d, %d] is empty", e.Capacity.Min, e.Capacity.Max))
	}
	if c.IsDumpEnabled() && (e.Dump.Linear == "" || e.Dump.Double == "") {
		errs = append(errs, errors.New("dump file names must not be empty"))
	}
	if _, err := zerolog.ParseLevel(e.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log level %q: %w", e.Log.Level, err))
	}
	switch e.Log.Format {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("log format %q (want console or json)", e.Log.Format))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}
