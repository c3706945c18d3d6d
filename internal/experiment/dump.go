package experiment

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"

	"github.com/theflywheel/probehash"
	"github.com/theflywheel/probehash/internal/config"
)

type dumper interface {
	Strategy() probehash.Strategy
	Dump(w io.Writer) error
}

func dumpFileName(cfg config.Dump, strategy probehash.Strategy) string {
	if strategy == probehash.DoubleHashing {
		return cfg.Double
	}
	return cfg.Linear
}

// dumpTable writes the table through a temp file renamed into place, so a
// failed dump never leaves a truncated file behind.
func dumpTable(cfg config.Dump, table dumper) (string, error) {
	start := time.Now()
	if err := os.MkdirAll(cfg.Dir, 0755); err != nil {
		return "", fmt.Errorf("create dump dir: %w", err)
	}

	filename := filepath.Join(cfg.Dir, dumpFileName(cfg, table.Strategy()))
	tmpName := filename + ".tmp"

	f, err := os.Create(tmpName)
	if err != nil {
		return "", fmt.Errorf("create dump temp file: %w", err)
	}
	defer func() {
		_ = f.Close()
		_ = os.Remove(tmpName)
	}()

	if err = table.Dump(f); err != nil {
		return "", fmt.Errorf("write dump %s: %w", filename, err)
	}
	if err = f.Sync(); err != nil {
		return "", fmt.Errorf("sync dump %s: %w", filename, err)
	}
	if err = f.Close(); err != nil {
		return "", fmt.Errorf("close dump %s: %w", filename, err)
	}
	if err = os.Rename(tmpName, filename); err != nil {
		return "", fmt.Errorf("rename dump temp file: %w", err)
	}

	size := uint64(0)
	if fi, err := os.Stat(filename); err == nil {
		size = uint64(fi.Size())
	}
	log.Info().
		Str("strategy", table.Strategy().String()).
		Str("path", filename).
		Dur("elapsed", time.Since(start)).
		Msgf("[dump] saved %s", humanize.Bytes(size))

	return filename, nil
}
