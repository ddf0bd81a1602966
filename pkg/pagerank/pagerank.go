/*
The pagerank package estimates the pagerank of the pages of a closed corpus
with two independent strategies:

  - Sample() simulates a random surfer and counts its visits.
  - Iterate() solves the pagerank recurrence by fixed-point iteration.

Both only read the models.Graph they are given, so they can run concurrently
on the same graph. Neither logs nor prints.
*/
package pagerank

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/vertex-lab/corpusrank/pkg/models"
	"golang.org/x/sync/errgroup"
)

// Estimates holds the results of both estimators on the same graph.
type Estimates struct {
	Sampled  models.PagerankMap
	Iterated models.PagerankMap
}

// EstimateConfig holds the parameters of both estimators.
type EstimateConfig struct {
	Damping   float64
	Samples   int
	MaxSweeps int // <= 0 means no limit
}

// NewEstimateConfig() returns an EstimateConfig with default parameters.
func NewEstimateConfig() EstimateConfig {
	return EstimateConfig{
		Damping:   0.85,
		Samples:   10000,
		MaxSweeps: 0,
	}
}

func (c EstimateConfig) Print() {
	fmt.Println("Estimate:")
	fmt.Printf("  Damping: %v\n", c.Damping)
	fmt.Printf("  Samples: %d\n", c.Samples)
	fmt.Printf("  MaxSweeps: %d\n", c.MaxSweeps)
}

/*
Estimate() runs Sample() and IterateBounded() concurrently on G. Each estimator
keeps its own accumulators; the results are only combined once both are done.
The first error is returned.

Inputs are validated before either estimator starts, since neither of them can
be interrupted: an invalid config never waits on a running iteration.
The context is only checked at the start, for the same reason.
*/
func Estimate(ctx context.Context, G models.Graph, config EstimateConfig, rng *rand.Rand) (*Estimates, error) {

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := checkInputs(G, config.Damping); err != nil {
		return nil, err
	}

	if config.Samples < 1 {
		return nil, models.ErrInvalidSamples
	}

	var sampled, iterated models.PagerankMap
	var g errgroup.Group

	g.Go(func() error {
		var err error
		sampled, err = Sample(G, config.Damping, config.Samples, rng)
		return err
	})

	g.Go(func() error {
		var err error
		iterated, err = IterateBounded(G, config.Damping, config.MaxSweeps)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Estimates{Sampled: sampled, Iterated: iterated}, nil
}
