package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "hash", cfg.Embedder.Type)
	assert.Equal(t, 384, cfg.Embedder.Dimension)
	assert.Equal(t, "memory", cfg.VectorStore.Type)
	assert.Equal(t, 5, cfg.Retrieval.TopK)
	assert.InDelta(t, 0.4, cfg.Retrieval.MinScore, 1e-9)
	assert.Equal(t, "GROQ_API_KEY", cfg.Chat.APIKeyEnv)
}

func TestLoad_AppliesDefaultsToPartialConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("embedder:\n  type: openai\n  openai:\n    api_key_env: MY_KEY\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "openai", cfg.Embedder.Type)
	assert.Equal(t, "MY_KEY", cfg.Embedder.OpenAI.APIKeyEnv)
	assert.Equal(t, "https://api.openai.com/v1", cfg.Embedder.OpenAI.BaseURL)
	assert.Equal(t, "text-embedding-3-small", cfg.Embedder.OpenAI.Model)
	assert.Equal(t, 384, cfg.Embedder.Dimension)
	assert.Equal(t, 5, cfg.Retrieval.TopK)
}

func TestLoad_QdrantDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("vector_store:\n  type: qdrant\n  qdrant:\n    url: http://localhost:6333\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.VectorStore.Qdrant)
	assert.Equal(t, "knowledge_base", cfg.VectorStore.Qdrant.Collection)
	assert.Equal(t, 15, cfg.VectorStore.Qdrant.TimeoutSecs)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	in := defaultConfig()
	in.Retrieval.TopK = 7
	in.LogFile = "/tmp/ragchat.log"
	require.NoError(t, Save(path, in))

	out, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, out.Retrieval.TopK)
	assert.Equal(t, "/tmp/ragchat.log", out.LogFile)
	assert.Equal(t, in.Chat, out.Chat)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("embedder: [not: valid"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}
