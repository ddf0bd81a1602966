package pagerank

import (
	"fmt"

	"github.com/vertex-lab/corpusrank/pkg/graph"
	"github.com/vertex-lab/corpusrank/pkg/models"
)

const (
	// Threshold is the largest change of any pagerank between two sweeps for
	// the iteration to be considered converged.
	Threshold = 0.001

	// precision of the pageranks returned by Iterate()
	iterateDecimals = 3
)

/*
Iterate() computes the pagerank of every page as the fixed point of the
pagerank recurrence, starting from the uniform distribution and repeating
sweeps until no page changes by more than Threshold.

There is no limit on the number of sweeps, so Iterate() runs forever on a graph
that doesn't converge. Use IterateBounded() to put a cap on it.

The result is normalized and rounded to 3 decimals.
*/
func Iterate(G models.Graph, damping float64) (models.PagerankMap, error) {
	return IterateBounded(G, damping, 0)
}

// IterateBounded() is like Iterate(), but returns ErrNotConverged if the
// iteration hasn't converged after maxSweeps sweeps. maxSweeps <= 0 means no limit.
func IterateBounded(G models.Graph, damping float64, maxSweeps int) (models.PagerankMap, error) {

	if err := checkInputs(G, damping); err != nil {
		return nil, err
	}

	pagerank, err := iterate(newSweeper(G, damping), maxSweeps)
	if err != nil {
		return nil, err
	}

	pagerank = Normalize(pagerank)
	for page, rank := range pagerank {
		pagerank[page] = Round(rank, iterateDecimals)
	}

	return pagerank, nil
}

/*
Sweep() computes one step of the pagerank recurrence, returning the new
pageranks. Every new value only depends on prev, which is not modified:

  - a sink page gets 1 / N
  - any other page gets (1 - damping) / N + damping * SUM( prev[p] / |links(p)| )
    over the pages p that link to it.
*/
func Sweep(G models.Graph, damping float64, prev models.PagerankMap) (models.PagerankMap, error) {

	if err := checkInputs(G, damping); err != nil {
		return nil, err
	}

	s := newSweeper(G, damping)
	for _, page := range s.pages {
		if _, exists := prev[page]; !exists {
			return nil, fmt.Errorf("%w: %s has no previous pagerank", models.ErrPageNotFound, page)
		}
	}

	return s.sweep(prev), nil
}

// sweeper holds what's needed to compute a sweep over a fixed graph.
type sweeper struct {
	pages     []string
	backlinks map[string][]string
	outdegree map[string]int
	damping   float64
}

func newSweeper(G models.Graph, damping float64) *sweeper {
	pages := G.Pages()
	outdegree := make(map[string]int, len(pages))
	for _, page := range pages {
		outdegree[page] = len(G.Links(page))
	}

	return &sweeper{
		pages:     pages,
		backlinks: graph.Backlinks(G),
		outdegree: outdegree,
		damping:   damping,
	}
}

func (s *sweeper) sweep(prev models.PagerankMap) models.PagerankMap {

	N := float64(len(s.pages))
	next := make(models.PagerankMap, len(s.pages))

	for _, page := range s.pages {

		if s.outdegree[page] == 0 {
			next[page] = 1 / N
			continue
		}

		inflow := 0.0
		for _, p := range s.backlinks[page] {
			inflow += prev[p] / float64(s.outdegree[p])
		}

		next[page] = (1-s.damping)/N + s.damping*inflow
	}

	return next
}

// repeats sweeps from the uniform distribution until convergence, or until
// maxSweeps is reached (if positive).
func iterate(s *sweeper, maxSweeps int) (models.PagerankMap, error) {

	N := float64(len(s.pages))
	pagerank := make(models.PagerankMap, len(s.pages))
	for _, page := range s.pages {
		pagerank[page] = 1 / N
	}

	for sweeps := 1; ; sweeps++ {

		next := s.sweep(pagerank)
		converged := MaxDelta(next, pagerank) <= Threshold
		pagerank = next

		if converged {
			return pagerank, nil
		}

		if maxSweeps > 0 && sweeps >= maxSweeps {
			return nil, fmt.Errorf("%w after %d sweeps", models.ErrNotConverged, sweeps)
		}
	}
}
