// Package render — JSON renderer.
// Emits the plain text together with the structure of the Markdown it came
// from (headings, links, code blocks, tables, lists). Section bodies are
// stripped individually so each one reads as plain text on its own.
package render

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/gaurav-prasanna/mdclean/core"
	"github.com/gaurav-prasanna/mdclean/core/chunk"
)

// JSONRenderer produces structured JSON output.
type JSONRenderer struct {
	stripper  core.Stripper
	ChunkSize int // 0 disables chunking
}

// NewJSONRenderer creates a JSONRenderer. chunkSize <= 0 omits chunks.
func NewJSONRenderer(stripper core.Stripper, chunkSize int) *JSONRenderer {
	return &JSONRenderer{stripper: stripper, ChunkSize: chunkSize}
}

// Render converts the document into the JSON structure.
func (r *JSONRenderer) Render(doc core.Document) ([]byte, error) {
	headings := extractHeadings(doc.Markdown)
	links, images := extractLinks(doc.Markdown)

	content := core.DocumentContent{
		Text:     doc.Text,
		Sections: r.buildSections(doc.Markdown),
	}
	if r.ChunkSize > 0 {
		content.Chunks = chunk.New(r.ChunkSize).Chunk(doc.Text)
	}

	out := core.DocumentJSON{
		Metadata: core.DocumentMetadata{
			Source: doc.Source,
			Format: doc.Format,
			Chars:  utf8.RuneCountInString(doc.Text),
			Words:  len(strings.Fields(doc.Text)),
		},
		Content: content,
		Structure: core.DocumentStructure{
			Headings:   headings,
			Links:      links,
			Images:     images,
			CodeBlocks: countCodeBlocks(doc.Markdown),
			Tables:     len(tableSeparatorRegex.FindAllString(doc.Markdown, -1)),
			Lists:      len(listItemRegex.FindAllString(doc.Markdown, -1)),
		},
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return data, nil
}

// Name returns the --format value for JSON output.
func (r *JSONRenderer) Name() string {
	return "json"
}

// Binary is false; JSON may be written to stdout.
func (r *JSONRenderer) Binary() bool {
	return false
}

// --- Markdown structure helpers ---

var headingRegex = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)

func extractHeadings(md string) []core.Heading {
	headings := []core.Heading{}
	for _, line := range strings.Split(md, "\n") {
		if m := headingRegex.FindStringSubmatch(line); m != nil {
			headings = append(headings, core.Heading{
				Level: len(m[1]),
				Text:  strings.TrimSpace(m[2]),
			})
		}
	}
	return headings
}

// linkRegex matches [text](href), with an optional leading "!" for images.
var linkRegex = regexp.MustCompile(`(!?)\[([^\]]*)\]\(([^)]+)\)`)

func extractLinks(md string) ([]core.Link, int) {
	links := []core.Link{}
	images := 0
	for _, m := range linkRegex.FindAllStringSubmatch(md, -1) {
		if m[1] == "!" {
			images++
			continue
		}
		links = append(links, core.Link{Text: m[2], Href: m[3]})
	}
	return links, images
}

// buildSections splits the Markdown at heading lines. Text before the first
// heading is not part of any section.
func (r *JSONRenderer) buildSections(md string) []core.Section {
	sections := []core.Section{}

	var current *core.Section
	var body []string
	flush := func() {
		if current == nil {
			return
		}
		current.Text = r.stripper.Strip(strings.Join(body, "\n"))
		sections = append(sections, *current)
	}

	for _, line := range strings.Split(md, "\n") {
		m := headingRegex.FindStringSubmatch(line)
		if m == nil {
			if current != nil {
				body = append(body, line)
			}
			continue
		}
		flush()
		current = &core.Section{Heading: strings.TrimSpace(m[2]), Level: len(m[1])}
		body = nil
	}
	flush()

	return sections
}

var fenceRegex = regexp.MustCompile("(?m)^[ \\t]*(```|~~~)")

// countCodeBlocks counts fenced code blocks by their fence lines.
func countCodeBlocks(md string) int {
	return len(fenceRegex.FindAllString(md, -1)) / 2
}

// tableSeparatorRegex matches the header separator row of a table (|---|).
var tableSeparatorRegex = regexp.MustCompile(`(?m)^\|[-:| ]+\|[ \t]*$`)

// listItemRegex matches ordered and unordered list item markers.
var listItemRegex = regexp.MustCompile(`(?m)^[ \t]*(?:[-*+]|\d+\.)[ \t]+`)
