// Package extract implements the Extractor interface.
// For HTML input it isolates the readable content before conversion:
//  1. Noise elements (scripts, navigation, forms, media players) are removed
//  2. The first of <main>, <article>, <body> is kept as the content root
//
// Images stay in place so their alt text survives as plain text.
package extract

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ErrNoContent is returned when the document has no content container.
var ErrNoContent = errors.New("no content container found in HTML")

// noiseSelectors contribute nothing readable to a plain-text rendering.
var noiseSelectors = []string{
	"script", "style", "noscript", "template",
	"nav", "footer", "header", "aside",
	"iframe", "video", "audio", "svg", "canvas",
	"form", "button", "input", "select", "textarea",
	".sidebar", ".menu", ".navigation", ".ads", ".advertisement",
}

// containers are tried in order; the first match wins.
var containers = []string{"main", "article", "body"}

// ContentExtractor keeps the main content fragment of an HTML document.
type ContentExtractor struct{}

// New creates a ContentExtractor.
func New() *ContentExtractor {
	return &ContentExtractor{}
}

// Extract returns the outer HTML of the content root with noise removed.
func (e *ContentExtractor) Extract(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	doc.Find(strings.Join(noiseSelectors, ", ")).Remove()

	for _, tag := range containers {
		sel := doc.Find(tag)
		if sel.Length() == 0 {
			continue
		}
		out, err := goquery.OuterHtml(sel.First())
		if err != nil {
			return "", fmt.Errorf("serializing <%s>: %w", tag, err)
		}
		return out, nil
	}
	return "", ErrNoContent
}
