package domain

// Chunk is a retrievable unit of text derived from the uploaded document.
// IDs are 0-based and sequential within a single index generation.
type Chunk struct {
	ID   int
	Text string
}

// IndexEntry pairs a chunk with its embedding vector for storage in the index.
type IndexEntry struct {
	ID     int
	Vector []float64
	Text   string
}

// SearchResult is a matching chunk text with its cosine similarity score.
type SearchResult struct {
	Text  string
	Score float64
}

// Chunker splits raw document text into retrievable units.
// A document with no usable content yields an empty slice.
type Chunker interface {
	Chunk(raw string) []string
}

// Summarizer produces a brief summary of the provided text.
type Summarizer interface {
	Summarize(text string, maxSentences int) (string, error)
}
