/*
The models package defines the fundamental structures and interfaces used in this project.
Interfaces:

Graph:
The Graph interface abstracts a read-only view over the link graph of a corpus,
allowing for multiple implementations. Both estimators in the pagerank package
only read from it.
*/
package models

import (
	"errors"
	"fmt"
)

// The Graph interface abstracts the link graph of a closed corpus of pages.
type Graph interface {
	// Size() returns the number of pages in the graph.
	Size() int

	// Pages() returns all the pages in lexicographic order.
	Pages() []string

	// Contains() returns whether page is in the graph.
	Contains(page string) bool

	// Links() returns the outbound links of page in lexicographic order.
	// It returns an empty slice for a sink page and nil if page is not in the graph.
	Links(page string) []string

	// Validate() returns the appropriate error if the graph is nil, empty or
	// if a link points to a page outside of the graph.
	Validate() error
}

//--------------------------ERROR-CODES--------------------------

// ErrInvalidInput is wrapped by every error caused by a caller breaking the
// input contract of the estimators.
var ErrInvalidInput = errors.New("invalid input")

var ErrNilGraph = fmt.Errorf("%w: nil graph", ErrInvalidInput)
var ErrEmptyGraph = fmt.Errorf("%w: graph is empty", ErrInvalidInput)
var ErrDanglingLink = fmt.Errorf("%w: link to a page outside the graph", ErrInvalidInput)
var ErrPageNotFound = fmt.Errorf("%w: page not found in the graph", ErrInvalidInput)
var ErrSinkPage = fmt.Errorf("%w: page has no outbound links", ErrInvalidInput)
var ErrInvalidDamping = fmt.Errorf("%w: damping should be a number between 0 and 1 (included)", ErrInvalidInput)
var ErrInvalidSamples = fmt.Errorf("%w: samples should be greater than zero", ErrInvalidInput)

var ErrNotConverged = errors.New("iteration did not converge")
