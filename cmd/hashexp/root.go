package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/theflywheel/probehash/internal/config"
	"github.com/theflywheel/probehash/internal/experiment"
	"github.com/theflywheel/probehash/internal/logging"
)

type options struct {
	configPath string
	seed       int64
	hash       string
	words      string
	dumpDir    string
	min        int
	max        int
	logLevel   string
	logFormat  string
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "hashexp <dataSource> <loadFactor> [<debugLevel>]",
		Short: "Compare linear probing and double hashing",
		Long: "Fill a linear probing and a double hashing table with the same keys\n" +
			"and report the average number of probes per insertion.\n\n" + usage,
		Args:          cobra.RangeArgs(0, 3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(opts, cmd.Flags(), args)
			if err != nil {
				return err
			}
			if err = logging.Setup(cfg, stderr); err != nil {
				return err
			}
			_, err = experiment.New(cfg, stdout).Run()
			return err
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	bindFlags(cmd.Flags(), opts)

	return cmd
}

func bindFlags(fs *pflag.FlagSet, o *options) {
	fs.StringVarP(&o.configPath, "config", "c", "", "YAML config file")
	fs.Int64Var(&o.seed, "seed", 0, "random seed (0 seeds from the clock)")
	fs.StringVar(&o.hash, "hash", "", "string hasher for word lists: poly31, fnv, xxhash, xxh3")
	fs.StringVarP(&o.words, "words", "w", "", "word list file")
	fs.StringVarP(&o.dumpDir, "dump-dir", "o", "", "directory for dump files")
	fs.IntVar(&o.min, "min", 0, "lower bound of the twin prime search")
	fs.IntVar(&o.max, "max", 0, "upper bound of the twin prime search")
	fs.StringVar(&o.logLevel, "log-level", "", "log level")
	fs.StringVar(&o.logFormat, "log-format", "", "log format: console or json")
}

// buildConfig layers defaults, the config file, positional args and flags in that order.
func buildConfig(o *options, fs *pflag.FlagSet, args []string) (*config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		loaded, err := config.LoadConfig(o.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	e := &cfg.Experiment
	if len(args) == 0 && o.configPath == "" {
		return nil, fmt.Errorf("missing <dataSource> and <loadFactor>\n%s", usage)
	}
	if len(args) == 1 {
		return nil, fmt.Errorf("missing <loadFactor>\n%s", usage)
	}
	if len(args) >= 2 {
		e.Source = args[0]
		lf, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return nil, fmt.Errorf("parse load factor %q: %w", args[1], err)
		}
		e.LoadFactor = lf
	}
	if len(args) == 3 {
		debug, err := strconv.Atoi(args[2])
		if err != nil {
			return nil, fmt.Errorf("parse debug level %q: %w", args[2], err)
		}
		e.Debug = debug
	}

	if fs.Changed("seed") {
		e.Seed = o.seed
	}
	if fs.Changed("hash") {
		e.Hash = o.hash
	}
	if fs.Changed("words") {
		e.Words.Path = o.words
	}
	if fs.Changed("dump-dir") {
		e.Dump.Dir = o.dumpDir
	}
	if fs.Changed("min") {
		e.Capacity.Min = o.min
	}
	if fs.Changed("max") {
		e.Capacity.Max = o.max
	}
	if fs.Changed("log-level") {
		e.Log.Level = o.logLevel
	}
	if fs.Changed("log-format") {
		e.Log.Format = o.logFormat
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
