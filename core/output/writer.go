// Package output writes rendered results.
// Files receive the bytes exactly as rendered; standard output gets one
// trailing newline so the shell prompt starts on a fresh line.
package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Writer writes rendered output to a file or to Stdout.
type Writer struct {
	Stdout io.Writer
}

// New creates a Writer. A nil stdout means os.Stdout.
func New(stdout io.Writer) *Writer {
	if stdout == nil {
		stdout = os.Stdout
	}
	return &Writer{Stdout: stdout}
}

// WriteFile writes data to path, replacing any existing file. Missing
// parent directories are created.
func (w *Writer) WriteFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing file %s: %w", path, err)
	}
	return nil
}

// WriteStdout writes data followed by exactly one newline.
func (w *Writer) WriteStdout(data []byte) error {
	buf := make([]byte, 0, len(data)+1)
	buf = append(buf, data...)
	buf = append(buf, '\n')
	if _, err := w.Stdout.Write(buf); err != nil {
		return fmt.Errorf("writing to stdout: %w", err)
	}
	return nil
}
