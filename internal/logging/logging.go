// Package logging installs the global zerolog logger used by the experiment.
package logging

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/theflywheel/probehash/internal/config"
)

// Setup points the global logger at w in the configured format and sets the
// global level. Trace runs force the debug level.
func Setup(cfg *config.Config, w io.Writer) error {
	level, err := zerolog.ParseLevel(cfg.Experiment.Log.Level)
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}
	if level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	if cfg.IsTraceEnabled() && level > zerolog.DebugLevel {
		level = zerolog.DebugLevel
	}

	var out io.Writer
	switch cfg.Experiment.Log.Format {
	case "json":
		out = w
	case "console", "":
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}
	default:
		return fmt.Errorf("unknown log format %q", cfg.Experiment.Log.Format)
	}

	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(out).With().Timestamp().Logger()
	return nil
}
