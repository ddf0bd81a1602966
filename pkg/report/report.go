// The report package presents the estimated pageranks of a corpus.
package report

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/vertex-lab/corpusrank/pkg/models"
)

// Results holds the outcome of both estimators on the same corpus.
type Results struct {
	Samples  int
	Damping  float64
	Sampled  models.PagerankMap
	Iterated models.PagerankMap
}

// Pages() returns the pages of both estimates, in lexicographic order.
func (r *Results) Pages() []string {
	pages := make(map[string]struct{}, len(r.Sampled))
	for page := range r.Sampled {
		pages[page] = struct{}{}
	}
	for page := range r.Iterated {
		pages[page] = struct{}{}
	}
	return models.SortedKeys(pages)
}

// Writer writes Results to its destination.
type Writer interface {
	Write(r *Results) error
}

// NewWriter() returns the Writer for the specified format ("text" or "markdown").
func NewWriter(format string, output io.Writer) (Writer, error) {
	switch format {
	case FormatText, "":
		return NewTextWriter(output), nil
	case FormatMarkdown:
		return NewMarkdownWriter(output), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
)

// TextWriter lists the results of sampling and then of iteration.
type TextWriter struct {
	output io.Writer
}

func NewTextWriter(output io.Writer) *TextWriter {
	return &TextWriter{output: output}
}

func (w *TextWriter) Write(r *Results) error {
	if r == nil {
		return ErrNilResults
	}

	if _, err := fmt.Fprintf(w.output, "PageRank Results from Sampling (n = %d)\n", r.Samples); err != nil {
		return err
	}
	if err := w.list(r.Sampled); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w.output, "PageRank Results from Iteration"); err != nil {
		return err
	}
	return w.list(r.Iterated)
}

func (w *TextWriter) list(ranks models.PagerankMap) error {
	for _, page := range models.SortedKeys(ranks) {
		if _, err := fmt.Fprintf(w.output, "  %s: %.4f\n", page, ranks[page]); err != nil {
			return err
		}
	}
	return nil
}

// format4() formats a pagerank with 4 decimals; "-" if missing.
func format4(ranks models.PagerankMap, page string) string {
	rank, exists := ranks[page]
	if !exists {
		return "-"
	}
	return fmt.Sprintf("%.4f", rank)
}

// difference() returns the absolute difference of the two estimates of page.
func difference(r *Results, page string) string {
	sampled, ok1 := r.Sampled[page]
	iterated, ok2 := r.Iterated[page]
	if !ok1 || !ok2 {
		return "-"
	}
	return fmt.Sprintf("%.4f", math.Abs(sampled-iterated))
}

//---------------------------------ERROR-CODES---------------------------------

var ErrNilResults = errors.New("nil results")
var ErrUnknownFormat = errors.New("unknown output format")
