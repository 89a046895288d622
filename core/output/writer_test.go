package output

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileExactBytes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, os.WriteFile(path, []byte("old content that is longer"), 0644))

	w := New(nil)
	require.NoError(t, w.WriteFile(path, []byte("plain")))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "plain", string(got))
}

func TestWriteFileCreatesParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "out.txt")
	require.NoError(t, New(nil).WriteFile(path, []byte("x")))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "x", string(got))
}

func TestWriteFileIntoDirectoryFails(t *testing.T) {
	err := New(nil).WriteFile(t.TempDir(), []byte("x"))
	assert.Error(t, err)
}

func TestWriteStdoutAppendsOneNewline(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf)

	require.NoError(t, w.WriteStdout([]byte("line one\nline two")))
	assert.Equal(t, "line one\nline two\n", buf.String())

	buf.Reset()
	require.NoError(t, w.WriteStdout(nil))
	assert.Equal(t, "\n", buf.String())
}
