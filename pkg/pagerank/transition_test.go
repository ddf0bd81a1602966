package pagerank

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/vertex-lab/corpusrank/pkg/graph"
	"github.com/vertex-lab/corpusrank/pkg/models"
)

func TestTransition(t *testing.T) {
	corpus := mustGraph(map[string][]string{
		"1.html": {"2.html", "3.html"},
		"2.html": {"3.html"},
		"3.html": {"2.html"},
	})

	testCases := []struct {
		name                 string
		G                    models.Graph
		page                 string
		damping              float64
		expectedDistribution models.Distribution
		expectedError        error
	}{
		{
			name:          "nil graph",
			G:             (*graph.Graph)(nil),
			page:          "1.html",
			damping:       0.85,
			expectedError: models.ErrNilGraph,
		},
		{
			name:          "empty graph",
			G:             graph.NewGraph(),
			page:          "1.html",
			damping:       0.85,
			expectedError: models.ErrEmptyGraph,
		},
		{
			name:          "damping too big",
			G:             corpus,
			page:          "1.html",
			damping:       1.5,
			expectedError: models.ErrInvalidDamping,
		},
		{
			name:          "negative damping",
			G:             corpus,
			page:          "1.html",
			damping:       -0.1,
			expectedError: models.ErrInvalidDamping,
		},
		{
			name:          "page not in the graph",
			G:             corpus,
			page:          "4.html",
			damping:       0.85,
			expectedError: models.ErrPageNotFound,
		},
		{
			name:          "sink page",
			G:             mustGraph(map[string][]string{"0": {"1"}, "1": {}}),
			page:          "1",
			damping:       0.85,
			expectedError: models.ErrSinkPage,
		},
		{
			name:                 "valid, three pages",
			G:                    corpus,
			page:                 "1.html",
			damping:              0.85,
			expectedDistribution: models.Distribution{"1.html": 0.05, "2.html": 0.475, "3.html": 0.475},
		},
		{
			name:                 "valid, zero damping",
			G:                    corpus,
			page:                 "2.html",
			damping:              0,
			expectedDistribution: models.Distribution{"1.html": 0.333333, "2.html": 0.333333, "3.html": 0.333333},
		},
		{
			name:                 "valid, damping one",
			G:                    corpus,
			page:                 "2.html",
			damping:              1,
			expectedDistribution: models.Distribution{"1.html": 0, "2.html": 0, "3.html": 1},
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {

			distribution, err := Transition(test.G, test.page, test.damping)
			if !errors.Is(err, test.expectedError) {
				t.Fatalf("Transition(): expected %v, got %v", test.expectedError, err)
			}

			if err != nil && !errors.Is(err, models.ErrInvalidInput) {
				t.Errorf("Transition(): expected %v to be an ErrInvalidInput", err)
			}

			if !reflect.DeepEqual(distribution, test.expectedDistribution) {
				t.Errorf("Transition(): expected %v, got %v", test.expectedDistribution, distribution)
			}
		})
	}
}

func TestTransitionSumsToOne(t *testing.T) {
	// each probability is rounded to 6 decimals, and the sum adds floating point noise
	const tolerance = 1e-6 + 1e-9
	graphTypes := []string{"triangle", "triangle-plus-one", "acyclic1", "acyclic3", "corpus0", "star", "cyclicLong50"}

	for _, graphType := range graphTypes {
		t.Run(graphType, func(t *testing.T) {

			G := SetupGraph(graphType).G
			for _, damping := range []float64{0, 0.15, 0.5, 0.85, 1} {
				for _, page := range G.Pages() {

					if len(G.Links(page)) == 0 {
						continue
					}

					distribution, err := Transition(G, page, damping)
					if err != nil {
						t.Fatalf("Transition(%v): expected nil, got %v", page, err)
					}

					if len(distribution) != G.Size() {
						t.Fatalf("Transition(%v): expected %d entries, got %d", page, G.Size(), len(distribution))
					}

					if sum := Sum(distribution); math.Abs(sum-1) > tolerance {
						t.Errorf("Transition(%v, %v): expected sum 1, got %v", page, damping, sum)
					}
				}
			}
		})
	}
}

func TestTransitionRounding(t *testing.T) {
	G := mustGraph(map[string][]string{"a": {"b"}, "b": {"a"}, "c": {"a"}})

	testCases := []struct {
		name                 string
		page                 string
		damping              float64
		expectedDistribution models.Distribution
	}{
		{
			name:                 "equivalent pages get the same probability",
			page:                 "a",
			damping:              0.5,
			expectedDistribution: models.Distribution{"a": 0.166667, "b": 0.666667, "c": 0.166667},
		},
		{
			name:                 "the jump is uniform",
			page:                 "b",
			damping:              0,
			expectedDistribution: models.Distribution{"a": 0.333333, "b": 0.333333, "c": 0.333333},
		},
		{
			name:                 "single link",
			page:                 "b",
			damping:              0.85,
			expectedDistribution: models.Distribution{"a": 0.9, "b": 0.05, "c": 0.05},
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			distribution, err := Transition(G, test.page, test.damping)
			if err != nil {
				t.Fatalf("Transition(): expected nil, got %v", err)
			}

			if !reflect.DeepEqual(distribution, test.expectedDistribution) {
				t.Errorf("Transition(): expected %v, got %v", test.expectedDistribution, distribution)
			}
		})
	}
}

// ---------------------------------BENCHMARK----------------------------------

func BenchmarkTransition(b *testing.B) {
	G := SetupGraph("cyclicLong50").G

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Transition(G, "0", 0.85); err != nil {
			b.Fatalf("Benchmark failed: %v", err)
		}
	}
}
