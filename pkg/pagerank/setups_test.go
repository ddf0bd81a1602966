package pagerank

import (
	"fmt"

	"github.com/vertex-lab/corpusrank/pkg/graph"
	"github.com/vertex-lab/corpusrank/pkg/models"
)

// StaticSetup contains a graph, its expected (global) pagerank, which is the
// stationary distribution of the random surfer, and the expected output of Iterate().
type StaticSetup struct {
	G                *graph.Graph
	expectedGlobal   models.PagerankMap
	expectedIterated models.PagerankMap
}

// SetupGraph() returns the StaticSetup of the specified graph type.
func SetupGraph(graphType string) StaticSetup {
	switch graphType {
	case "dandlings":
		return Dandlings()
	case "triangle":
		return Triangle()
	case "triangle-plus-one":
		return TrianglePlusOne()
	case "acyclic1":
		return Acyclic1()
	case "acyclic3":
		return Acyclic3()
	case "corpus0":
		return Corpus0()
	case "star":
		return Star()
	case "cyclicLong50":
		return CyclicLong50()
	default:
		panic(fmt.Sprintf("unknown graph type %s", graphType))
	}
}

// mustGraph() builds a graph from a page -> links map, panicking on dangling links.
func mustGraph(links map[string][]string) *graph.Graph {
	G, err := graph.FromMap(links)
	if err != nil {
		panic(err)
	}
	return G
}

// Dandlings() returns a graph of 5 dandling nodes.
func Dandlings() (ST StaticSetup) {
	ST.G = mustGraph(map[string][]string{"0": {}, "1": {}, "2": {}, "3": {}, "4": {}})
	ST.expectedGlobal = models.PagerankMap{"0": 0.2, "1": 0.2, "2": 0.2, "3": 0.2, "4": 0.2}
	ST.expectedIterated = models.PagerankMap{"0": 0.2, "1": 0.2, "2": 0.2, "3": 0.2, "4": 0.2}
	return ST
}

// Triangle() returns a graph of 3 nodes connected as a triangle (0 --> 1 --> 2 --> 0)
func Triangle() (ST StaticSetup) {
	ST.G = mustGraph(map[string][]string{"0": {"1"}, "1": {"2"}, "2": {"0"}})
	ST.expectedGlobal = models.PagerankMap{"0": 0.33333, "1": 0.33333, "2": 0.33333}
	ST.expectedIterated = models.PagerankMap{"0": 0.333, "1": 0.333, "2": 0.333}
	return ST
}

// TrianglePlusOne() returns a graph of 4 nodes. 3 nodes are in a triangle, and the last one is a sink only linked by node0.
func TrianglePlusOne() (ST StaticSetup) {
	ST.G = mustGraph(map[string][]string{"0": {"1", "3"}, "1": {"2"}, "2": {"0"}, "3": {}})
	ST.expectedGlobal = models.PagerankMap{"0": 0.30785, "1": 0.21376, "2": 0.26462, "3": 0.21376}
	ST.expectedIterated = models.PagerankMap{"0": 0.231, "1": 0.160, "2": 0.199, "3": 0.411}
	return ST
}

func Acyclic1() (ST StaticSetup) {
	ST.G = mustGraph(map[string][]string{"0": {"1", "2"}, "1": {}, "2": {"3"}, "3": {"1"}, "4": {}})
	ST.expectedGlobal = models.PagerankMap{"0": 0.11185, "1": 0.36960, "2": 0.15938, "3": 0.24732, "4": 0.11185}
	ST.expectedIterated = models.PagerankMap{"0": 0.056, "1": 0.371, "2": 0.079, "3": 0.123, "4": 0.371}
	return ST
}

func Acyclic3() (ST StaticSetup) {
	ST.G = mustGraph(map[string][]string{"0": {"1", "2"}, "1": {}, "2": {}, "3": {"1", "2"}})
	ST.expectedGlobal = models.PagerankMap{"0": 0.17544, "1": 0.32456, "2": 0.32456, "3": 0.17544}
	ST.expectedIterated = models.PagerankMap{"0": 0.065, "1": 0.435, "2": 0.435, "3": 0.065}
	return ST
}

// Corpus0() returns the link graph of four html pages (1 <--> 2 <--> 3 --> 4 --> 2).
func Corpus0() (ST StaticSetup) {
	ST.G = mustGraph(map[string][]string{
		"1.html": {"2.html"},
		"2.html": {"1.html", "3.html"},
		"3.html": {"2.html", "4.html"},
		"4.html": {"2.html"},
	})
	ST.expectedGlobal = models.PagerankMap{"1.html": 0.21991, "2.html": 0.42921, "3.html": 0.21991, "4.html": 0.13096}
	ST.expectedIterated = models.PagerankMap{"1.html": 0.220, "2.html": 0.429, "3.html": 0.220, "4.html": 0.131}
	return ST
}

// Star() returns a graph where node 2 links to, and is linked by, all the other nodes.
func Star() (ST StaticSetup) {
	ST.G = mustGraph(map[string][]string{"1": {"2"}, "2": {"1", "3", "4"}, "3": {"2"}, "4": {"2"}})
	ST.expectedGlobal = models.PagerankMap{"1": 0.17342, "2": 0.47973, "3": 0.17342, "4": 0.17342}
	ST.expectedIterated = models.PagerankMap{"1": 0.173, "2": 0.480, "3": 0.173, "4": 0.173}
	return ST
}

// CyclicLong50() returns a cyclic graph with 50 nodes (0 --> 1 --> 2 --> ... --> 48 --> 49 --> 0)
func CyclicLong50() (ST StaticSetup) {
	links := make(map[string][]string, 50)
	ST.expectedGlobal = make(models.PagerankMap, 50)
	ST.expectedIterated = make(models.PagerankMap, 50)

	for ID := 0; ID < 50; ID++ {
		links[fmt.Sprint(ID)] = []string{fmt.Sprint((ID + 1) % 50)}
		ST.expectedGlobal[fmt.Sprint(ID)] = 1.0 / 50.0
		ST.expectedIterated[fmt.Sprint(ID)] = 0.02
	}

	ST.G = mustGraph(links)
	return ST
}
