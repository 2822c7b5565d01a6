// Package runner turns the tabu driver into complete runs: random starting
// colorings, restarts for drivers that give up, optional saving, and several
// independent searches at once.
package runner

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/dd0wney/ramsey-tabu/pkg/coloring"
	"github.com/dd0wney/ramsey-tabu/pkg/logging"
	"github.com/dd0wney/ramsey-tabu/pkg/metrics"
	"github.com/dd0wney/ramsey-tabu/pkg/persist"
	"github.com/dd0wney/ramsey-tabu/pkg/ramsey"
	"github.com/dd0wney/ramsey-tabu/pkg/tabu"
)

// SeedLimit bounds every seed the runner generates.
const SeedLimit = 1 << 31

// ErrNoVertices is the cause of a ConfigError for a problem with no vertices.
var ErrNoVertices = errors.New("at least one vertex is required")

// ErrAttemptsExhausted means MaxAttempts restarts all ended without success.
var ErrAttemptsExhausted = errors.New("no zero-score coloring within the attempt limit")

// Problem is what is being searched for.
type Problem struct {
	Vertices  int
	Structure ramsey.Kind
	Sizes     []int
}

func (p Problem) validate() error {
	if p.Vertices < 1 {
		return &ramsey.ConfigError{Op: "Search", Field: "vertices", Value: p.Vertices, Cause: ErrNoVertices}
	}
	return nil
}

// Options apply to every search of a run.
type Options struct {
	// Announce forwards improvements to OnImprove. In a parallel run
	// OnImprove is called from several goroutines.
	Announce  bool
	OnImprove func(tabu.Improvement)

	// Saver, when set, receives every zero-score construction.
	Saver *persist.Saver

	// MaxSteps bounds each attempt; an attempt hitting it is restarted from a
	// fresh random coloring. MaxAttempts bounds restarts; 0 means unlimited.
	MaxSteps    int64
	MaxAttempts int

	// Concurrency caps the goroutines of a parallel run; 0 means one per search.
	Concurrency int

	Logger  logging.Logger
	Metrics *metrics.Registry
}

func (o Options) logger() logging.Logger {
	if o.Logger == nil {
		return logging.NewNopLogger()
	}
	return o.Logger
}

// Outcome describes one finished search.
type Outcome struct {
	SearchID   int
	Seed       uint64
	Attempts   int
	TotalSteps int64
	Result     *tabu.Result
	SavedPath  string
}

// RandomSeed draws a fresh seed below SeedLimit.
func RandomSeed() uint64 {
	return rand.Uint64N(SeedLimit)
}

// SearchUntilSuccess searches from random colorings generated by seed until a
// zero-score coloring is found. A tabu search only returns without success at
// its step limit, so with MaxSteps unset exactly one attempt is made.
func SearchUntilSuccess(ctx context.Context, p Problem, seed uint64, searchID int, opts Options) (*Outcome, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	logger := opts.logger().With(logging.Component("runner"), logging.SearchID(searchID), logging.Seed(seed))
	rng := tabu.NewRand(seed)
	out := &Outcome{SearchID: searchID, Seed: seed}

	op := logging.StartTimer(logger, "search finished",
		logging.Structure(p.Structure), logging.Sizes(p.Sizes), logging.Vertices(p.Vertices))
	logger.Info("search started", logging.Structure(p.Structure), logging.Sizes(p.Sizes), logging.Vertices(p.Vertices))
	if opts.Metrics != nil {
		opts.Metrics.SearchStarted()
	}
	start := time.Now()

	err := out.run(ctx, p, rng, opts, logger)

	if opts.Metrics != nil {
		opts.Metrics.SearchFinished(status(err), time.Since(start))
	}
	if err != nil {
		op.EndError(err)
		return out, err
	}
	op.End(logging.Step(out.TotalSteps), logging.Int("attempts", out.Attempts))

	if opts.Saver != nil {
		path, _, err := opts.Saver.Save(out.Result.Coloring, p.Structure, p.Sizes, out.labels(p)...)
		out.SavedPath = path
		if err != nil {
			return out, err
		}
	}
	return out, nil
}

func (out *Outcome) run(ctx context.Context, p Problem, rng *rand.Rand, opts Options, logger logging.Logger) error {
	for {
		if opts.MaxAttempts > 0 && out.Attempts >= opts.MaxAttempts {
			return fmt.Errorf("%w: %d attempts, %d steps", ErrAttemptsExhausted, out.Attempts, out.TotalSteps)
		}
		out.Attempts++

		g, err := ramsey.New(coloring.Random(p.Vertices, len(p.Sizes), rng), p.Sizes, p.Structure)
		if err != nil {
			return err
		}
		res, err := tabu.Run(ctx, g, tabu.Options{
			Announce:  opts.Announce,
			OnImprove: opts.OnImprove,
			Rand:      rng,
			SearchID:  out.SearchID,
			MaxSteps:  opts.MaxSteps,
			Logger:    opts.Logger,
			Metrics:   opts.Metrics,
		})
		out.Result = res
		if res != nil {
			out.TotalSteps += res.Steps
		}
		switch {
		case err == nil:
			return nil
		case errors.Is(err, tabu.ErrStepLimit):
			logger.Info("restarting from a random coloring", logging.Int("attempt", out.Attempts), logging.Score(res.Score))
		default:
			return err
		}
	}
}

func (out *Outcome) labels(p Problem) []persist.Label {
	return []persist.Label{
		{Name: "structure", Value: p.Structure},
		{Name: "sizes", Value: p.Sizes},
		{Name: "num_vertices", Value: p.Vertices},
		{Name: "search_function_used", Value: "tabu"},
		{Name: "seed_for_search_until_success", Value: out.Seed},
		{Name: "total_steps", Value: out.TotalSteps},
	}
}

func status(err error) string {
	switch {
	case err == nil:
		return metrics.StatusSuccess
	case errors.Is(err, tabu.ErrStuck):
		return metrics.StatusStuck
	case errors.Is(err, ErrAttemptsExhausted):
		return metrics.StatusStepLimit
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return metrics.StatusCancelled
	default:
		return metrics.StatusError
	}
}
