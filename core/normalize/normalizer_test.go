package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	md, err := New().Normalize(`<main><h1>Title</h1><p>Hello <strong>world</strong>, see <a href="https://example.com">docs</a>.</p></main>`)
	require.NoError(t, err)

	assert.Contains(t, md, "# Title")
	assert.Contains(t, md, "**world**")
	assert.Contains(t, md, "[docs](https://example.com)")
}

func TestNormalizeEmpty(t *testing.T) {
	md, err := New().Normalize("")
	require.NoError(t, err)
	assert.Empty(t, md)
}
