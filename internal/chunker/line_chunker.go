package chunker

import "strings"

// LineChunker splits text on line boundaries and drops blank lines.
// Deliberately naive: no size limit, no overlap, no semantic boundaries.
type LineChunker struct{}

func NewLineChunker() *LineChunker { return &LineChunker{} }

func (c *LineChunker) Chunk(raw string) []string {
	lines := strings.Split(raw, "\n")
	var chunks []string
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		chunks = append(chunks, trimmed)
	}
	return chunks
}
