package pagerank

import (
	"math/rand"
	"time"

	"github.com/vertex-lab/corpusrank/pkg/models"
)

/*
Sample() estimates the pagerank of every page by simulating a random surfer
that visits n pages, starting from a page chosen uniformly at random. The
pagerank of a page is the fraction of the n visits that landed on it.

# INPUTS

	> G models.Graph
	The link graph of the corpus

	> damping float64
	The probability of following a link instead of jumping to a random page

	> n int
	The number of pages visited, counting the starting page. Must be at least 1

	> rng *rand.Rand
	The source of randomness. If nil, a source seeded with the current time is used.

From a sink page the surfer jumps to a page chosen uniformly at random.
*/
func Sample(G models.Graph, damping float64, n int, rng *rand.Rand) (models.PagerankMap, error) {

	if err := checkInputs(G, damping); err != nil {
		return nil, err
	}

	if n < 1 {
		return nil, models.ErrInvalidSamples
	}

	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return sample(G, damping, n, rng), nil
}

// implements the internal logic of Sample() on already validated inputs.
func sample(G models.Graph, damping float64, n int, rng *rand.Rand) models.PagerankMap {

	pages := G.Pages()
	visits := make(map[string]int, len(pages))
	for _, page := range pages {
		visits[page] = 0
	}

	page := pages[rng.Intn(len(pages))]
	visits[page]++

	// transition distributions only depend on the page, so they are computed once
	cache := make(map[string]models.Distribution, len(pages))
	for i := 1; i < n; i++ {

		distribution, exists := cache[page]
		if !exists {
			distribution = nextPage(G, pages, page, damping)
			cache[page] = distribution
		}

		page = weightedChoice(pages, distribution, rng)
		visits[page]++
	}

	pagerank := make(models.PagerankMap, len(pages))
	for page, count := range visits {
		pagerank[page] = float64(count) / float64(n)
	}

	return pagerank
}

// returns the distribution of the page visited after page.
func nextPage(G models.Graph, pages []string, page string, damping float64) models.Distribution {
	links := G.Links(page)
	if len(links) == 0 {
		return uniform(pages)
	}
	return transition(pages, links, damping)
}

// draws a page with probability proportional to its weight in distribution.
// Pages are scanned in the given (sorted) order, so the draw only depends on rng.
func weightedChoice(pages []string, distribution models.Distribution, rng *rand.Rand) string {

	total := 0.0
	for _, page := range pages {
		total += distribution[page]
	}

	r := rng.Float64() * total
	cumulative := 0.0
	for _, page := range pages {
		cumulative += distribution[page]
		if r < cumulative {
			return page
		}
	}

	// r can reach total because of rounding; fall back to the last page with weight
	for i := len(pages) - 1; i >= 0; i-- {
		if distribution[pages[i]] > 0 {
			return pages[i]
		}
	}
	return pages[len(pages)-1]
}
