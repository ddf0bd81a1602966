package crawler

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vertex-lab/corpusrank/pkg/utils/sliceutils"
	"golang.org/x/net/html"
)

// ParseLinks() returns the href targets of all the anchor elements in the html
// document, without duplicates and in the order of their first appearance.
// Anchors without an href, or with an empty one, are ignored.
func ParseLinks(r io.Reader) ([]string, error) {

	links := []string{}
	tokenizer := html.NewTokenizer(r)

	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			err := tokenizer.Err()
			if errors.Is(err, io.EOF) {
				return sliceutils.Unique(links), nil
			}
			return nil, fmt.Errorf("failed to tokenize html: %w", err)

		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := tokenizer.TagName()
			if string(name) != "a" || !hasAttr {
				continue
			}

			if href, ok := hrefOf(tokenizer); ok {
				links = append(links, href)
			}
		}
	}
}

// returns the value of the href attribute of the current tag, if any.
func hrefOf(tokenizer *html.Tokenizer) (string, bool) {
	for {
		key, val, more := tokenizer.TagAttr()
		if string(key) == "href" {
			href := strings.TrimSpace(string(val))
			return href, href != ""
		}

		if !more {
			return "", false
		}
	}
}
