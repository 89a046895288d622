// Package normalize implements the Normalizer interface.
// HTML input is converted to Markdown so that it can go through the same
// stripper as Markdown input.
package normalize

import (
	"fmt"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// HTMLNormalizer converts HTML fragments to Markdown using html-to-markdown.
type HTMLNormalizer struct{}

// New creates an HTMLNormalizer.
func New() *HTMLNormalizer {
	return &HTMLNormalizer{}
}

// Normalize converts an HTML fragment into Markdown.
func (n *HTMLNormalizer) Normalize(html string) (string, error) {
	md, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("converting HTML to markdown: %w", err)
	}
	return md, nil
}
