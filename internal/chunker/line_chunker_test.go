package chunker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineChunker_SplitsOnLines(t *testing.T) {
	c := NewLineChunker()
	chunks := c.Chunk("Policy A: no refunds\nPolicy B: free trial")
	require.Len(t, chunks, 2)
	assert.Equal(t, "Policy A: no refunds", chunks[0])
	assert.Equal(t, "Policy B: free trial", chunks[1])
}

func TestLineChunker_DropsBlankLines(t *testing.T) {
	c := NewLineChunker()
	chunks := c.Chunk("first\n\n   \n\t\nsecond\n")
	require.Len(t, chunks, 2)
	assert.Equal(t, []string{"first", "second"}, chunks)
}

func TestLineChunker_TrimsWhitespace(t *testing.T) {
	c := NewLineChunker()
	chunks := c.Chunk("  padded line  \n")
	require.Len(t, chunks, 1)
	assert.Equal(t, "padded line", chunks[0])
}

func TestLineChunker_EmptyDocument(t *testing.T) {
	c := NewLineChunker()
	assert.Empty(t, c.Chunk(""))
	assert.Empty(t, c.Chunk("\n\n \n\t\n"))
}

func TestLineChunker_NeverReturnsBlankChunks(t *testing.T) {
	c := NewLineChunker()
	inputs := []string{
		"a\nb\nc",
		"\n\nx\n\n",
		"   mixed   \n\t\n content here \n",
		strings.Repeat("\n", 50) + "tail",
	}
	for _, in := range inputs {
		for _, chunk := range c.Chunk(in) {
			assert.NotEmpty(t, strings.TrimSpace(chunk))
		}
	}
}
