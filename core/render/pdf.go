// Package render — PDF renderer.
// Lays out the stripped plain text as an A4 document using gofpdf.
// There is no Markdown left to interpret, so every line is a paragraph.
package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/gaurav-prasanna/mdclean/core"
	"github.com/jung-kurt/gofpdf"
)

// PDFRenderer renders plain text as a PDF document.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render converts the document text into PDF bytes.
func (r *PDFRenderer) Render(doc core.Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	// Core fonts are cp1252; translate so accented text survives.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	if doc.Source != "" {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetTextColor(100, 100, 100)
		pdf.MultiCell(0, 5, tr("Source: "+doc.Source), "", "L", false)
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(6)
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, line := range strings.Split(doc.Text, "\n") {
		if strings.TrimSpace(line) == "" {
			pdf.Ln(3)
			continue
		}
		pdf.MultiCell(0, 5, tr(line), "", "L", false)
		pdf.Ln(1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// Name returns the --format value for PDF output.
func (r *PDFRenderer) Name() string {
	return "pdf"
}

// Binary is true; PDF output needs an output file.
func (r *PDFRenderer) Binary() bool {
	return true
}
