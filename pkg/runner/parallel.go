package runner

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/dd0wney/ramsey-tabu/pkg/logging"
	"github.com/dd0wney/ramsey-tabu/pkg/parallel"
	"github.com/dd0wney/ramsey-tabu/pkg/tabu"
)

// Run is the result of a parallel run.
type Run struct {
	MasterSeed uint64
	Outcomes   []*Outcome
}

// DeriveSeeds expands a master seed into one seed per search, each below
// SeedLimit.
func DeriveSeeds(master uint64, count int) []uint64 {
	rng := tabu.NewRand(master)
	seeds := make([]uint64, count)
	for i := range seeds {
		seeds[i] = rng.Uint64N(SeedLimit)
	}
	return seeds
}

// Parallel runs independent searches, each with its own seed derived from
// master, on a worker pool. The first failing search cancels the others;
// Outcomes then holds nil for searches that never finished.
func Parallel(ctx context.Context, p Problem, searches int, master uint64, opts Options) (*Run, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	if searches < 1 {
		searches = 1
	}
	workers := opts.Concurrency
	if workers <= 0 || workers > searches {
		workers = searches
	}

	logger := opts.logger()
	logger.Info("parallel run started",
		logging.Component("runner"),
		logging.Seed(master),
		logging.Int("searches", searches),
		logging.Workers(workers),
	)

	pool, err := parallel.NewWorkerPool(workers, logger)
	if err != nil {
		return nil, err
	}
	defer pool.Close()

	run := &Run{MasterSeed: master, Outcomes: make([]*Outcome, searches)}
	g, gctx := errgroup.WithContext(ctx)
	for id, seed := range DeriveSeeds(master, searches) {
		done, err := pool.Go(func() error {
			out, err := SearchUntilSuccess(gctx, p, seed, id, opts)
			if err != nil {
				return fmt.Errorf("search %d (seed %d): %w", id, seed, err)
			}
			run.Outcomes[id] = out
			return nil
		})
		if err != nil {
			return run, err
		}
		g.Go(func() error { return <-done })
	}

	if err := g.Wait(); err != nil {
		return run, err
	}
	return run, nil
}
