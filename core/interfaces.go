// Package core defines the pipeline interfaces for mdclean.
// Each stage of the pipeline is a clean, testable interface.
package core

// Input formats accepted by the pipeline.
const (
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
)

// Document is what flows into a Renderer once the text has been stripped.
type Document struct {
	Source   string // input path
	Format   string // FormatMarkdown or FormatHTML
	Markdown string // text handed to the stripper
	Text     string // plain text produced by the stripper
}

// DocumentMetadata describes where the text came from.
type DocumentMetadata struct {
	Source string `json:"source"`
	Format string `json:"format"`
	Chars  int    `json:"chars"`
	Words  int    `json:"words"`
}

// Section represents a heading-delimited section of content.
type Section struct {
	Heading string `json:"heading"`
	Level   int    `json:"level"`
	Text    string `json:"text"`
}

// Heading represents a single heading found in the content.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// Link represents a hyperlink found in the content.
type Link struct {
	Text string `json:"text"`
	Href string `json:"href"`
}

// DocumentContent holds the plain text and its heading sections.
type DocumentContent struct {
	Text     string    `json:"text"`
	Sections []Section `json:"sections"`
	Chunks   []string  `json:"chunks,omitempty"`
}

// DocumentStructure holds structural counts parsed from the Markdown source.
type DocumentStructure struct {
	Headings   []Heading `json:"headings"`
	Links      []Link    `json:"links"`
	Images     int       `json:"images"`
	CodeBlocks int       `json:"code_blocks"`
	Tables     int       `json:"tables"`
	Lists      int       `json:"lists"`
}

// DocumentJSON is the complete JSON output for a single document.
type DocumentJSON struct {
	Metadata  DocumentMetadata  `json:"metadata"`
	Content   DocumentContent   `json:"content"`
	Structure DocumentStructure `json:"structure"`
}

// Stripper removes Markdown syntax and returns plain text. It never fails.
type Stripper interface {
	Strip(markdown string) string
}

// Extractor pulls the main content from raw HTML, stripping noise.
type Extractor interface {
	Extract(html string) (string, error)
}

// Normalizer converts cleaned HTML into Markdown.
type Normalizer interface {
	Normalize(html string) (string, error)
}

// Renderer converts a stripped Document into a final output format.
type Renderer interface {
	Render(doc Document) ([]byte, error)
	// Name returns the --format value selecting this renderer.
	Name() string
	// Binary reports whether the output can only go to a file.
	Binary() bool
}
