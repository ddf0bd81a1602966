// The graph package defines an in-memory link graph that fulfills the Graph interface in models.
package graph

import (
	"fmt"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/vertex-lab/corpusrank/pkg/models"
)

type PageSet mapset.Set[string]

// NewPageSet() returns a PageSet containing the specified pages.
func NewPageSet(pages ...string) PageSet {
	return mapset.NewSet[string](pages...)
}

// Graph associates each page with the set of pages it links to.
// It is built once by a loader and only read afterwards.
type Graph struct {
	Link map[string]PageSet
}

// NewGraph() creates and returns a new empty Graph.
func NewGraph() *Graph {
	return &Graph{
		Link: make(map[string]PageSet),
	}
}

// FromMap() builds a Graph from a page -> links map, and returns an error if
// the closed universe is violated (a link to a page which is not a key).
func FromMap(links map[string][]string) (*Graph, error) {
	G := NewGraph()
	for page := range links {
		G.AddPage(page)
	}

	for page, targets := range links {
		for _, target := range targets {
			if _, exists := links[target]; !exists {
				return nil, fmt.Errorf("%w: %s --> %s", models.ErrDanglingLink, page, target)
			}
			G.AddLink(page, target)
		}
	}

	return G, nil
}

// AddPage() adds page to the graph (no-op if already present).
func (G *Graph) AddPage(page string) {
	if _, exists := G.Link[page]; !exists {
		G.Link[page] = NewPageSet()
	}
}

// AddLink() adds the link from --> to, adding both pages if needed. Self-links are ignored.
func (G *Graph) AddLink(from, to string) {
	G.AddPage(from)
	G.AddPage(to)
	if from == to {
		return
	}
	G.Link[from].Add(to)
}

// Validate() returns an error if the graph is nil, has no pages or if a link
// points outside of the graph.
func (G *Graph) Validate() error {
	if G == nil {
		return models.ErrNilGraph
	}

	if len(G.Link) == 0 {
		return models.ErrEmptyGraph
	}

	for page, links := range G.Link {
		for target := range links.Iter() {
			if _, exists := G.Link[target]; !exists {
				return fmt.Errorf("%w: %s --> %s", models.ErrDanglingLink, page, target)
			}
		}
	}

	return nil
}

// Size() returns the number of pages in the graph.
func (G *Graph) Size() int {
	if G == nil {
		return 0
	}
	return len(G.Link)
}

// Contains() returns whether page is in the graph.
func (G *Graph) Contains(page string) bool {
	if G == nil {
		return false
	}
	_, exists := G.Link[page]
	return exists
}

// Pages() returns all the pages in lexicographic order.
func (G *Graph) Pages() []string {
	if G == nil {
		return nil
	}
	return models.SortedKeys(G.Link)
}

// Links() returns the sorted outbound links of page; nil if page is not in the graph.
func (G *Graph) Links(page string) []string {
	if G == nil {
		return nil
	}

	links, exists := G.Link[page]
	if !exists {
		return nil
	}

	sorted := links.ToSlice()
	slices.Sort(sorted)
	return sorted
}

// Sinks() returns the pages without outbound links, in lexicographic order.
func (G *Graph) Sinks() []string {
	sinks := []string{}
	for _, page := range G.Pages() {
		if G.Link[page].Cardinality() == 0 {
			sinks = append(sinks, page)
		}
	}
	return sinks
}

// Backlinks() returns a map that associates each page with the sorted pages linking to it.
func (G *Graph) Backlinks() map[string][]string {
	return Backlinks(G)
}

// Backlinks() computes the inbound index of any models.Graph. Every page has
// an entry, possibly empty.
func Backlinks(G models.Graph) map[string][]string {
	pages := G.Pages()
	backlinks := make(map[string][]string, len(pages))
	for _, page := range pages {
		backlinks[page] = []string{}
	}

	// pages are sorted, so every backlink slice is sorted too
	for _, page := range pages {
		for _, target := range G.Links(page) {
			backlinks[target] = append(backlinks[target], page)
		}
	}

	return backlinks
}

// Map() returns a copy of the graph as a page -> sorted links map.
func (G *Graph) Map() map[string][]string {
	m := make(map[string][]string, G.Size())
	for _, page := range G.Pages() {
		m[page] = G.Links(page)
	}
	return m
}
