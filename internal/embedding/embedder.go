package embedding

// Embedder converts free text into a fixed-dimension numeric vector.
// EmbedBatch returns one vector per input in the same order; a batch of one
// is a valid call and equivalent to Embed.
type Embedder interface {
	Name() string
	Dimension() int
	Embed(text string) ([]float64, error)
	EmbedBatch(texts []string) ([][]float64, error)
}
