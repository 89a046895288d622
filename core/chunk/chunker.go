// Package chunk splits stripped text into word-count chunks for search
// index ingestion. Words are whitespace-separated fields; chunks do not
// overlap.
package chunk

import "strings"

// DefaultSize is used when a non-positive size is requested.
const DefaultSize = 512

// Chunker splits text into chunks of at most Size words.
type Chunker struct {
	Size int
}

// New creates a Chunker, falling back to DefaultSize if size <= 0.
func New(size int) *Chunker {
	if size <= 0 {
		size = DefaultSize
	}
	return &Chunker{Size: size}
}

// Chunk returns contiguous runs of words joined by single spaces.
// Line structure is not preserved.
func (c *Chunker) Chunk(text string) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	chunks := make([]string, 0, (len(words)+c.Size-1)/c.Size)
	for start := 0; start < len(words); start += c.Size {
		end := min(start+c.Size, len(words))
		chunks = append(chunks, strings.Join(words[start:end], " "))
	}
	return chunks
}
