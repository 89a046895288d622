package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gaurav-prasanna/mdclean/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := Run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRunMissingInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.md")

	code, stdout, stderr := runCLI(t, path)

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Equal(t, "Error: Input file '"+path+"' not found\n", stderr)
}

func TestRunMissingInputWinsOverFlagErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.md")

	for _, flags := range [][]string{
		{"--format", "pdf"},
		{"--format", "rtf"},
		{"--chunk-size", "10"},
	} {
		t.Run(strings.Join(flags, " "), func(t *testing.T) {
			code, stdout, stderr := runCLI(t, append([]string{path}, flags...)...)

			assert.Equal(t, 1, code)
			assert.Empty(t, stdout)
			assert.Equal(t, "Error: Input file '"+path+"' not found\n", stderr)
		})
	}
}

func TestRunToStdout(t *testing.T) {
	path := writeInput(t, "in.md", "# Title\n\n**bold** and *italic*\n")

	code, stdout, stderr := runCLI(t, path)

	assert.Equal(t, 0, code)
	assert.Equal(t, "Title\nbold and italic\n", stdout)
	assert.Empty(t, stderr)
}

func TestRunToOutputFile(t *testing.T) {
	in := writeInput(t, "in.md", "- item one\n- item two\n")
	out := filepath.Join(t.TempDir(), "out.txt")

	code, stdout, stderr := runCLI(t, in, out)

	require.Equal(t, 0, code, stderr)
	assert.Empty(t, stdout)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "item one\nitem two", string(got))
}

func TestRunLongHeaderLine(t *testing.T) {
	spaces := strings.Repeat(" ", 3000)
	path := writeInput(t, "long.md", "# T"+spaces+"x\nSECRET_BODY")

	code, stdout, stderr := runCLI(t, path)

	assert.Equal(t, 0, code)
	assert.Equal(t, "T"+spaces+"x\nSECRET_BODY\n", stdout)
	assert.Empty(t, stderr)
}

func TestRunNormalizesLineEndings(t *testing.T) {
	path := writeInput(t, "crlf.md", "- a\r\n- b\r\n")

	code, stdout, _ := runCLI(t, path)

	assert.Equal(t, 0, code)
	assert.Equal(t, "a\nb\n", stdout)
}

func TestRunGenericFailures(t *testing.T) {
	dir := t.TempDir()
	invalid := writeInput(t, "bad.md", "ok \xff\xfe")
	valid := writeInput(t, "good.md", "text")

	tests := []struct {
		name string
		args []string
	}{
		{"no arguments", []string{}},
		{"too many arguments", []string{valid, "a", "b"}},
		{"input is a directory", []string{dir}},
		{"invalid utf-8", []string{invalid}},
		{"unknown format", []string{valid, "--format", "rtf"}},
		{"chunk size without json", []string{valid, "--chunk-size", "10"}},
		{"negative chunk size", []string{valid, "--format", "json", "--chunk-size", "-1"}},
		{"pdf to stdout", []string{valid, "--format", "pdf"}},
		{"unwritable output", []string{valid, dir}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := runCLI(t, tt.args...)

			assert.Equal(t, 1, code)
			assert.Empty(t, stdout)
			assert.True(t, strings.HasPrefix(stderr, "Error: "), stderr)
			assert.NotContains(t, stderr, "not found")
			assert.Equal(t, 1, strings.Count(stderr, "\n"), stderr)
		})
	}
}

func TestRunHTMLInput(t *testing.T) {
	path := writeInput(t, "page.html", `<html><body>
<nav>Menu Links</nav>
<main><h1>Hello</h1><p>Some <strong>bold</strong> text.</p></main>
</body></html>`)

	code, stdout, stderr := runCLI(t, path, "--html")

	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "Hello")
	assert.Contains(t, stdout, "Some bold text.")
	assert.NotContains(t, stdout, "Menu Links")
	assert.NotContains(t, stdout, "**")
}

func TestRunJSONFormat(t *testing.T) {
	path := writeInput(t, "doc.md", "# Intro\nRead [the docs](https://example.com) now.\n")

	code, stdout, stderr := runCLI(t, path, "--format", "json", "--chunk-size", "2")
	require.Equal(t, 0, code, stderr)
	require.True(t, strings.HasSuffix(stdout, "}\n"))

	var got core.DocumentJSON
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, path, got.Metadata.Source)
	assert.Equal(t, core.FormatMarkdown, got.Metadata.Format)
	assert.Equal(t, "Intro\nRead the docs now.", got.Content.Text)
	assert.Equal(t, []string{"Intro Read", "the docs", "now."}, got.Content.Chunks)
	assert.Equal(t, []core.Link{{Text: "the docs", Href: "https://example.com"}}, got.Structure.Links)
}

func TestRunPDFFormat(t *testing.T) {
	in := writeInput(t, "doc.md", "# Report\n\nBody.")
	out := filepath.Join(t.TempDir(), "doc.pdf")

	code, _, stderr := runCLI(t, in, out, "--format", "pdf")
	require.Equal(t, 0, code, stderr)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(got, []byte("%PDF")))
}

func TestRunVerboseLogsToStderr(t *testing.T) {
	path := writeInput(t, "in.md", "# Title")

	code, stdout, stderr := runCLI(t, path, "-v")

	assert.Equal(t, 0, code)
	assert.Equal(t, "Title\n", stdout)
	assert.Contains(t, stderr, "Reading input")
	assert.Contains(t, stderr, "Stripped markdown")
}
