// Package cmd — clean pipeline.
// Orchestrates read → (extract → normalize) → strip → render → write for a
// single input file.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/gaurav-prasanna/mdclean/core"
	"github.com/gaurav-prasanna/mdclean/core/extract"
	"github.com/gaurav-prasanna/mdclean/core/normalize"
	"github.com/gaurav-prasanna/mdclean/core/output"
	"github.com/gaurav-prasanna/mdclean/core/render"
	"github.com/gaurav-prasanna/mdclean/core/strip"
	"github.com/sirupsen/logrus"
)

// runClean takes the already-read input text through the rest of the
// pipeline.
func runClean(opts *options, text string, args []string, stdout io.Writer, logger *logrus.Logger) error {
	inputPath := args[0]
	var outputPath string
	if len(args) > 1 {
		outputPath = args[1]
	}

	stripper := strip.New(logger)
	renderer := selectRenderer(opts, stripper)

	if renderer.Binary() && outputPath == "" {
		return fmt.Errorf("%s output requires an output file", renderer.Name())
	}

	doc := core.Document{
		Source:   inputPath,
		Format:   core.FormatMarkdown,
		Markdown: text,
	}
	if opts.html {
		md, err := htmlToMarkdown(text, extract.New(), normalize.New())
		if err != nil {
			return err
		}
		doc.Format = core.FormatHTML
		doc.Markdown = md
	}

	doc.Text = stripper.Strip(doc.Markdown)
	logger.WithFields(logrus.Fields{
		"format":    doc.Format,
		"in_bytes":  len(doc.Markdown),
		"out_bytes": len(doc.Text),
	}).Debug("Stripped markdown")

	data, err := renderer.Render(doc)
	if err != nil {
		return fmt.Errorf("render %s: %w", renderer.Name(), err)
	}

	w := output.New(stdout)
	if outputPath == "" {
		return w.WriteStdout(data)
	}
	if err := w.WriteFile(outputPath, data); err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{
		"output": outputPath,
		"bytes":  len(data),
	}).Debug("Wrote output")
	return nil
}

// readInput loads the whole file as UTF-8 text with line endings
// normalized to "\n".
func readInput(path string) (string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", &inputNotFoundError{path: path, err: err}
	}
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("input file '%s' is not valid UTF-8", path)
	}

	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n"), nil
}

// htmlToMarkdown reduces an HTML page to the Markdown of its main content.
func htmlToMarkdown(html string, extractor core.Extractor, normalizer core.Normalizer) (string, error) {
	content, err := extractor.Extract(html)
	if err != nil {
		return "", fmt.Errorf("extract: %w", err)
	}
	md, err := normalizer.Normalize(content)
	if err != nil {
		return "", fmt.Errorf("normalize: %w", err)
	}
	return md, nil
}

// selectRenderer creates the Renderer named by --format. Flags are
// validated before this is called.
func selectRenderer(opts *options, stripper core.Stripper) core.Renderer {
	switch opts.format {
	case "json":
		return render.NewJSONRenderer(stripper, opts.chunkSize)
	case "pdf":
		return render.NewPDFRenderer()
	default:
		return render.NewTextRenderer()
	}
}
