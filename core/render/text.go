// Package render provides output renderers for the mdclean pipeline.
// This file implements the text renderer, the default output.
package render

import (
	"github.com/gaurav-prasanna/mdclean/core"
)

// TextRenderer emits the stripped plain text as-is.
type TextRenderer struct{}

// NewTextRenderer creates a TextRenderer.
func NewTextRenderer() *TextRenderer {
	return &TextRenderer{}
}

// Render returns the plain text as bytes.
func (r *TextRenderer) Render(doc core.Document) ([]byte, error) {
	return []byte(doc.Text), nil
}

// Name returns the --format value for text output.
func (r *TextRenderer) Name() string {
	return "text"
}

// Binary is false; text may be written to stdout.
func (r *TextRenderer) Binary() bool {
	return false
}
