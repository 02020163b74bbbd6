package sim

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Factory builds an independent runner for one seed.
type Factory func(seed int64) *Runner

type Summary struct {
	Results []*Result
	Wins    [2]int
	Draws   int
}

// Ensemble plays many independent rounds in parallel, one match per seed.
type Ensemble struct {
	factory   Factory
	numRuns   int
	seedStart int64
	workers   int
}

func NewEnsemble(f Factory, numRuns int, seedStart int64) *Ensemble {
	return &Ensemble{
		factory:   f,
		numRuns:   numRuns,
		seedStart: seedStart,
		workers:   runtime.GOMAXPROCS(0),
	}
}

func (e *Ensemble) SetWorkers(n int) {
	if n > 0 {
		e.workers = n
	}
}

func (e *Ensemble) Run(ctx context.Context, cfg Config) (*Summary, error) {
	results := make([]*Result, e.numRuns)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i := 0; i < e.numRuns; i++ {
		idx := i
		g.Go(func() error {
			r := e.factory(e.seedStart + int64(idx))
			res, err := r.Run(ctx, cfg)
			if err != nil {
				return err
			}
			results[idx] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s := &Summary{Results: results}
	for _, res := range results {
		if i := res.Winner.Index(); i >= 0 {
			s.Wins[i]++
		} else {
			s.Draws++
		}
	}
	return s, nil
}
