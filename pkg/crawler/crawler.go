// The crawler package builds the link graph of a corpus of html pages stored in a directory.
package crawler

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vertex-lab/corpusrank/pkg/graph"
	"github.com/vertex-lab/corpusrank/pkg/models"
	"github.com/vertex-lab/corpusrank/pkg/utils/logger"
	"github.com/vertex-lab/corpusrank/pkg/utils/sliceutils"
)

type CrawlConfig struct {
	Log       *logger.Aggregate
	Extension string // only files with this extension are pages
}

func NewCrawlConfig() CrawlConfig {
	return CrawlConfig{
		Extension: ".html",
	}
}

func (c CrawlConfig) Print() {
	fmt.Println("Crawl:")
	fmt.Printf("  Extension: %s\n", c.Extension)
}

/*
Crawl() reads the pages in dir (not recursively) and returns their link graph.

Every file whose name ends with config.Extension is a page, identified by its
file name. A page links to another if it contains an anchor whose href is
exactly the file name of the other page. Self-links are removed, and links to
anything outside the corpus are dropped (and logged).

It returns models.ErrEmptyGraph if dir contains no pages.
*/
func Crawl(ctx context.Context, dir string, config CrawlConfig) (*graph.Graph, error) {

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus directory: %w", err)
	}

	rawLinks := make(map[string][]string)
	for _, entry := range entries {

		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if entry.IsDir() || !strings.HasSuffix(entry.Name(), config.Extension) {
			continue
		}

		links, err := parseFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}

		rawLinks[entry.Name()] = links
	}

	if len(rawLinks) == 0 {
		return nil, fmt.Errorf("%w: no %s files in %s", models.ErrEmptyGraph, config.Extension, dir)
	}

	G := graph.NewGraph()
	pages := models.SortedKeys(rawLinks)
	for _, page := range pages {
		G.AddPage(page)
	}

	for _, page := range pages {
		for _, link := range rawLinks[page] {
			if G.Contains(link) {
				G.AddLink(page, link)
			}
		}

		if dropped := sliceutils.Difference(rawLinks[page], pages); len(dropped) > 0 {
			config.Log.Info("%s: dropped %d links outside the corpus: %v", page, len(dropped), dropped)
		}
	}

	config.Log.Info("crawled %d pages in %s (%d sinks)", G.Size(), dir, len(G.Sinks()))
	return G, nil
}

func parseFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open page: %w", err)
	}
	defer file.Close()

	links, err := ParseLinks(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return links, nil
}
