package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbedder_Dimension(t *testing.T) {
	e := NewEmbedder(384)
	vec, err := e.Embed("Go is great for AI.")
	require.NoError(t, err)
	assert.Len(t, vec, 384)
	assert.Equal(t, 384, e.Dimension())
}

func TestEmbedder_DefaultDimension(t *testing.T) {
	e := NewEmbedder(0)
	assert.Equal(t, DefaultDimension, e.Dimension())
}

func TestEmbedder_Deterministic(t *testing.T) {
	e := NewEmbedder(384)
	v1, err := e.Embed("the quick brown fox")
	require.NoError(t, err)
	v2, err := e.Embed("the quick brown fox")
	require.NoError(t, err)
	assert.Equal(t, v1, v2)
}

func TestEmbedder_BatchMatchesSingle(t *testing.T) {
	e := NewEmbedder(384)
	texts := []string{"first line of text", "second line of text", "third"}
	batch, err := e.EmbedBatch(texts)
	require.NoError(t, err)
	require.Len(t, batch, len(texts))
	for i, text := range texts {
		single, err := e.Embed(text)
		require.NoError(t, err)
		assert.Equal(t, single, batch[i], "batch vector %d differs from single embed", i)
	}
}

func TestEmbedder_BatchOfOne(t *testing.T) {
	e := NewEmbedder(384)
	batch, err := e.EmbedBatch([]string{"solo"})
	require.NoError(t, err)
	require.Len(t, batch, 1)
	assert.Len(t, batch[0], 384)
}

func TestEmbedder_Normalized(t *testing.T) {
	e := NewEmbedder(384)
	vec, err := e.Embed("refund policy for customers")
	require.NoError(t, err)
	norm := 0.0
	for _, v := range vec {
		norm += v * v
	}
	assert.InDelta(t, 1.0, norm, 1e-9)
}

func TestEmbedder_EmptyTextZeroVector(t *testing.T) {
	e := NewEmbedder(384)
	vec, err := e.Embed("   ")
	require.NoError(t, err)
	for _, v := range vec {
		assert.Zero(t, v)
	}
}

func TestEmbedder_RelatedTextScoresHigher(t *testing.T) {
	e := NewEmbedder(384)
	query, err := e.Embed("refund policy")
	require.NoError(t, err)
	related, err := e.Embed("Policy A: no refunds")
	require.NoError(t, err)
	unrelated, err := e.Embed("quantum harpsichord zeppelin")
	require.NoError(t, err)

	assert.Greater(t, dot(query, related), dot(query, unrelated))
}

func dot(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
