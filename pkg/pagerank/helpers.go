package pagerank

import (
	"math"
	"slices"

	"github.com/vertex-lab/corpusrank/pkg/models"
	"gonum.org/v1/gonum/floats"
)

// Round() rounds x to the specified number of decimals.
func Round(x float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Round(x*scale) / scale
}

// Sum() returns the sum of all the values in the map.
func Sum[M ~map[string]float64](m M) float64 {
	values := make([]float64, 0, len(m))
	for _, key := range models.SortedKeys(m) {
		values = append(values, m[key])
	}
	return floats.Sum(values)
}

// Normalize() divides every value by the total, so that the values sum to 1.
// A map whose total is zero is returned unchanged.
func Normalize(pagerank models.PagerankMap) models.PagerankMap {
	total := Sum(pagerank)
	if total == 0 {
		return pagerank
	}

	for page, rank := range pagerank {
		pagerank[page] = rank / total
	}
	return pagerank
}

// computes the L1 distance between two maps who are supposed to have the same keys.
// if map 1 is nil or empty, it returns 0.0
func Distance(map1, map2 models.PagerankMap) float64 {
	return models.Distance(map1, map2)
}

// MaxDelta() returns the largest absolute difference between the values of the
// two maps, over the keys of map1.
func MaxDelta(map1, map2 models.PagerankMap) float64 {
	delta := 0.0
	for key, val1 := range map1 {
		delta = math.Max(delta, math.Abs(val1-map2[key]))
	}
	return delta
}

// Ranking() returns the pages sorted by decreasing pagerank. Ties are broken
// lexicographically.
func Ranking(pagerank models.PagerankMap) []string {
	pages := models.SortedKeys(pagerank)
	slices.SortStableFunc(pages, func(a, b string) int {
		switch {
		case pagerank[a] > pagerank[b]:
			return -1
		case pagerank[a] < pagerank[b]:
			return 1
		default:
			return 0
		}
	})
	return pages
}

// function that checks the inputs shared by all estimators
func checkInputs(G models.Graph, damping float64) error {

	if G == nil {
		return models.ErrNilGraph
	}

	if err := G.Validate(); err != nil {
		return err
	}

	if damping < 0 || damping > 1 || math.IsNaN(damping) {
		return models.ErrInvalidDamping
	}

	return nil
}
