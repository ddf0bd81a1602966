package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"
)

// MarkdownWriter writes the results as a markdown document, with one table
// comparing the two estimates page by page.
type MarkdownWriter struct {
	output io.Writer
}

func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{output: output}
}

func (w *MarkdownWriter) Write(r *Results) error {
	if r == nil {
		return ErrNilResults
	}

	md := markdown.NewMarkdown(w.output)
	md.H1("PageRank Results")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Parameter", "Value"},
		Rows: [][]string{
			{"Pages", strconv.Itoa(len(r.Pages()))},
			{"Damping", strconv.FormatFloat(r.Damping, 'f', -1, 64)},
			{"Samples", strconv.Itoa(r.Samples)},
		},
	})
	md.PlainText("")

	md.H2("Pageranks")
	md.PlainText("")

	rows := make([][]string, 0, len(r.Sampled))
	for _, page := range r.Pages() {
		rows = append(rows, []string{
			"`" + page + "`",
			format4(r.Sampled, page),
			format4(r.Iterated, page),
			difference(r, page),
		})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Page", "Sampling", "Iteration", "Difference"},
		Rows:   rows,
	})

	return md.Build()
}
