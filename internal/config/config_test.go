package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theflywheel/probehash/internal/datasource"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	kind, err := cfg.Kind()
	require.NoError(t, err)
	assert.Equal(t, datasource.Random, kind)
	assert.False(t, cfg.IsDumpEnabled())
	assert.False(t, cfg.IsTraceEnabled())
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "experiment.yaml")
	data := `
experiment:
  source: words
  load_factor: 0.95
  debug: 1
  hash: xxh3
  words:
    path: /tmp/words.txt
  dump:
    dir: /tmp/dumps
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	e := cfg.Experiment
	assert.Equal(t, "words", e.Source)
	assert.Equal(t, 0.95, e.LoadFactor)
	assert.Equal(t, DebugDump, e.Debug)
	assert.Equal(t, "xxh3", e.Hash)
	assert.Equal(t, "/tmp/words.txt", e.Words.Path)
	assert.Equal(t, "/tmp/dumps", e.Dump.Dir)
	assert.True(t, cfg.IsDumpEnabled())

	// untouched keys keep defaults
	assert.Equal(t, Capacity{Min: 95500, Max: 96000}, e.Capacity)
	assert.Equal(t, "linear-dump.txt", e.Dump.Linear)
	assert.Equal(t, "info", e.Log.Level)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("experiment: [unterminated"), 0644))
	_, err = LoadConfig(path)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(e *ExperimentBox)
	}{
		{"Zero_Load_Factor", func(e *ExperimentBox) { e.LoadFactor = 0 }},
		{"Overfull_Load_Factor", func(e *ExperimentBox) { e.LoadFactor = 1.2 }},
		{"Bad_Debug", func(e *ExperimentBox) { e.Debug = 3 }},
		{"Bad_Source", func(e *ExperimentBox) { e.Source = "sensors" }},
		{"Bad_Hash", func(e *ExperimentBox) { e.Hash = "md5" }},
		{"Tiny_Capacity", func(e *ExperimentBox) { e.Capacity = Capacity{Min: 2, Max: 10} }},
		{"Empty_Range", func(e *ExperimentBox) { e.Capacity = Capacity{Min: 500, Max: 500} }},
		{"Bad_Log_Format", func(e *ExperimentBox) { e.Log.Format = "xml" }},
		{"Bad_Log_Level", func(e *ExperimentBox) { e.Log.Level = "loud" }},
		{"Empty_Dump_Name", func(e *ExperimentBox) { e.Debug = DebugDump; e.Dump.Double = "" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg.Experiment)
			require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg := Default()
	cfg.Experiment.LoadFactor = -1
	cfg.Experiment.Debug = 9

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load factor")
	assert.Contains(t, err.Error(), "debug level")
}
