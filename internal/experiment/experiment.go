// Package experiment fills one table per probing strategy from the same key
// sequence and reports how many probes each needed.
package experiment

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"

	"github.com/theflywheel/probehash"
	"github.com/theflywheel/probehash/internal/config"
	"github.com/theflywheel/probehash/internal/datasource"
	"github.com/theflywheel/probehash/internal/twinprime"
)

// Report collects the outcome of one run.
type Report struct {
	Capacity int
	Source   datasource.Kind
	Seed     int64
	Keys     int // keys presented to each table
	Tables   []TableReport
}

// TableReport holds the counters of one filled table.
type TableReport struct {
	Strategy probehash.Strategy
	Stats    probehash.Stats
	Full     int    // inserts rejected because no slot was reachable
	DumpPath string // empty unless the table was dumped
}

// Runner executes the experiment described by a config.
type Runner struct {
	cfg *config.Config
	out io.Writer
	now func() time.Time
}

// New returns a runner that prints its summary to out.
func New(cfg *config.Config, out io.Writer) *Runner {
	return &Runner{cfg: cfg, out: out, now: time.Now}
}

// Run picks a capacity, generates the keys and fills each table. Dump
// failures do not stop the run; they are returned together with the report.
func (r *Runner) Run() (*Report, error) {
	if err := r.cfg.Validate(); err != nil {
		return nil, err
	}
	e := r.cfg.Experiment

	capacity, err := twinprime.Generate(e.Capacity.Min, e.Capacity.Max)
	if err != nil {
		return nil, fmt.Errorf("choose capacity: %w", err)
	}
	fmt.Fprintf(r.out, "HashtableExperiment: Found a twin prime table capacity: %d\n", capacity)

	kind, err := r.cfg.Kind()
	if err != nil {
		return nil, err
	}

	seed := e.Seed
	if seed == 0 {
		seed = r.now().UnixNano()
	}

	report := &Report{
		Capacity: capacity,
		Source:   kind,
		Seed:     seed,
	}
	n := datasource.KeyCount(e.LoadFactor, capacity)
	rng := rand.New(rand.NewSource(seed))

	log.Info().
		Int("capacity", capacity).
		Int64("seed", seed).
		Str("source", kind.String()).
		Msgf("[experiment] generating %s keys", humanize.Comma(int64(n)))

	switch kind {
	case datasource.Date:
		keys := datasource.Dates(r.now(), time.Second, n)
		return report, run(r, report, keys, probehash.HashTime)
	case datasource.WordList:
		words, err := datasource.WordsFile(e.Words.Path, n)
		switch {
		case errors.Is(err, os.ErrNotExist):
			log.Warn().Str("path", e.Words.Path).Msg("[experiment] word list not found, using random data instead")
			report.Source = datasource.Random
		case err != nil:
			return nil, err
		default:
			if len(words) < n {
				log.Warn().Msgf("[experiment] word list ran out after %s of %s words",
					humanize.Comma(int64(len(words))), humanize.Comma(int64(n)))
			}
			hasher, err := probehash.StringHasher(e.Hash)
			if err != nil {
				return nil, err
			}
			return report, run(r, report, words, hasher)
		}
	}

	keys := datasource.RandomInts(rng, n)
	return report, run(r, report, keys, probehash.HashInt)
}

// run replays keys into a fresh table per strategy.
func run[K comparable](r *Runner, report *Report, keys []K, hasher probehash.Hasher[K]) error {
	report.Keys = len(keys)
	fmt.Fprintf(r.out, "HashtableExperiment: Input: %s   Loadfactor: %v\n\n",
		report.Source.Label(), r.cfg.Experiment.LoadFactor)

	var dumpErrs []error
	for _, strategy := range probehash.Strategies() {
		table, err := probehash.New[K](report.Capacity, strategy, hasher)
		if err != nil {
			return fmt.Errorf("create %s table: %w", strategy, err)
		}

		tr := fill(r, table, keys)
		printSummary(r.out, tr, len(keys))

		if r.cfg.IsDumpEnabled() {
			path, err := dumpTable(r.cfg.Experiment.Dump, table)
			if err != nil {
				log.Error().Err(err).Str("strategy", strategy.String()).Msg("[dump] failed to save table")
				dumpErrs = append(dumpErrs, err)
			} else {
				tr.DumpPath = path
				fmt.Fprint(r.out, "HashtableExperiment: Saved dump of hash table\n\n")
			}
		}

		report.Tables = append(report.Tables, tr)
	}

	return errors.Join(dumpErrs...)
}

func fill[K comparable](r *Runner, table *probehash.Table[K], keys []K) TableReport {
	strategy := table.Strategy()
	tr := TableReport{Strategy: strategy}
	trace := r.cfg.IsTraceEnabled()
	start := time.Now()

	for _, key := range keys {
		res, err := table.Insert(key)
		if err != nil {
			if errors.Is(err, probehash.ErrTableFull) {
				tr.Full++
			}
			// a full table means capacity was sized too small
			if tr.Full <= 1 {
				log.Error().Err(err).Str("strategy", strategy.String()).Msg("[experiment] insert failed")
			}
			continue
		}
		if !trace {
			continue
		}
		switch res.Status {
		case probehash.Inserted:
			log.Debug().Msgf("%s: Inserted key=%v with %d probes.", strategy.Label(), key, res.Probes)
		case probehash.Duplicate:
			log.Debug().Msgf("%s: Duplicate found for key=%v", strategy.Label(), key)
		}
	}

	tr.Stats = table.Stats()
	log.Info().
		Str("strategy", strategy.String()).
		Float64("avgProbes", tr.Stats.AverageProbes).
		Dur("elapsed", time.Since(start)).
		Msgf("[experiment] filled table: %s unique, %s duplicates",
			humanize.Comma(int64(tr.Stats.Inserted)), humanize.Comma(int64(tr.Stats.Duplicates)))
	if tr.Full > 0 {
		log.Error().
			Str("strategy", strategy.String()).
			Msgf("[experiment] %s keys did not fit; capacity is too small for this input", humanize.Comma(int64(tr.Full)))
	}

	return tr
}

func printSummary(w io.Writer, tr TableReport, presented int) {
	fmt.Fprintf(w, "\tUsing %s\n", tr.Strategy.Label())
	fmt.Fprintf(w, "HashtableExperiment: size of hash table is %d\n", presented)
	fmt.Fprintf(w, "\tInserted %d elements, of which %d were duplicates\n",
		tr.Stats.Inserted+tr.Stats.Duplicates, tr.Stats.Duplicates)
	fmt.Fprintf(w, "\tAvg. no. of probes = %.2f\n\n", tr.Stats.AverageProbes)
}
