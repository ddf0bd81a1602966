package pagerank

import (
	"github.com/vertex-lab/corpusrank/pkg/models"
)

// precision of the probabilities returned by Transition()
const transitionDecimals = 6

/*
Transition() returns the probability distribution over which page to visit next,
given the current page.

With probability damping, the surfer follows one of the links of page chosen
uniformly at random. With probability 1 - damping, it jumps to a page chosen
uniformly at random among all the pages in the graph.

Every probability is rounded to 6 decimals, so the sum is 1 up to that precision.
Sink pages have no links to follow, so they are rejected with ErrSinkPage.
*/
func Transition(G models.Graph, page string, damping float64) (models.Distribution, error) {

	if err := checkInputs(G, damping); err != nil {
		return nil, err
	}

	if !G.Contains(page) {
		return nil, models.ErrPageNotFound
	}

	links := G.Links(page)
	if len(links) == 0 {
		return nil, models.ErrSinkPage
	}

	return transition(G.Pages(), links, damping), nil
}

// implements the internal logic of Transition() on already validated inputs.
func transition(pages, links []string, damping float64) models.Distribution {

	jump := (1 - damping) / float64(len(pages))
	distribution := make(models.Distribution, len(pages))
	for _, page := range pages {
		distribution[page] = jump
	}

	follow := damping / float64(len(links))
	for _, link := range links {
		distribution[link] += follow
	}

	// remove floating point noise
	for page, prob := range distribution {
		distribution[page] = Round(prob, transitionDecimals)
	}
	return distribution
}

// returns the uniform distribution over pages, which is where the surfer goes
// from a sink page.
func uniform(pages []string) models.Distribution {
	prob := 1.0 / float64(len(pages))
	distribution := make(models.Distribution, len(pages))
	for _, page := range pages {
		distribution[page] = prob
	}
	return distribution
}
