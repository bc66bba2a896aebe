package service

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"ragchat/internal/domain"
	"ragchat/internal/embedding"
	"ragchat/internal/extract"
	"ragchat/internal/vectorstore"
)

// Params tunes the retrieval pipeline.
type Params struct {
	// Dimension is the collection dimension; embedder output must match.
	Dimension int
	// TopK is the number of neighbors fetched per query.
	TopK int
	// MinScore is the exclusive similarity threshold; results scoring at or
	// below it are dropped.
	MinScore float64
	// SummaryMaxSentences caps the post-ingest summary length.
	SummaryMaxSentences int
}

// IngestResult reports what a completed ingestion produced.
type IngestResult struct {
	Count   int
	Summary string
}

// Service orchestrates the ingestion pipeline and retrieval queries over a
// single in-memory session. All methods are synchronous; the caller runs at
// most one operation at a time.
type Service struct {
	chunker    domain.Chunker
	embedder   embedding.Embedder
	index      vectorstore.Index
	summarizer domain.Summarizer
	params     Params
	logger     *slog.Logger
}

func NewService(chunker domain.Chunker, embedder embedding.Embedder, index vectorstore.Index, summarizer domain.Summarizer, params Params) *Service {
	if params.Dimension <= 0 {
		params.Dimension = 384
	}
	if params.TopK <= 0 {
		params.TopK = 5
	}
	if params.MinScore == 0 {
		params.MinScore = 0.4
	}
	if params.SummaryMaxSentences <= 0 {
		params.SummaryMaxSentences = 3
	}
	return &Service{
		chunker:    chunker,
		embedder:   embedder,
		index:      index,
		summarizer: summarizer,
		params:     params,
		logger:     slog.Default().With("component", "rag-service"),
	}
}

// Ingest replaces the index contents with the chunks of one document.
// The collection is reset before embedding, so a failure partway through
// leaves it empty rather than holding stale data. A document with no usable
// lines still succeeds and defines the "no data" state.
func (s *Service) Ingest(path string) (IngestResult, error) {
	raw, err := extract.Text(path)
	if err != nil {
		return IngestResult{}, fmt.Errorf("%w: %v", ErrExtraction, err)
	}

	chunks := s.chunker.Chunk(raw)

	if err := s.index.Reset(s.params.Dimension); err != nil {
		return IngestResult{}, fmt.Errorf("%w: reset collection: %v", ErrIndex, err)
	}
	if len(chunks) == 0 {
		s.logger.Info("document produced no chunks, collection left empty", "path", path)
		return IngestResult{}, nil
	}

	if d := s.embedder.Dimension(); d > 0 && d != s.params.Dimension {
		return IngestResult{}, fmt.Errorf("%w: embedder dimension %d does not match collection dimension %d", ErrConfiguration, d, s.params.Dimension)
	}
	vectors, err := s.embedder.EmbedBatch(chunks)
	if err != nil {
		return IngestResult{}, fmt.Errorf("embedding %d chunks: %w", len(chunks), err)
	}

	entries := make([]domain.IndexEntry, len(chunks))
	for i, text := range chunks {
		if len(vectors[i]) != s.params.Dimension {
			return IngestResult{}, fmt.Errorf("%w: embedder produced dimension %d, collection expects %d", ErrConfiguration, len(vectors[i]), s.params.Dimension)
		}
		entries[i] = domain.IndexEntry{ID: i, Vector: vectors[i], Text: text}
	}
	if err := s.index.Upsert(entries); err != nil {
		return IngestResult{}, fmt.Errorf("%w: upsert %d entries: %v", ErrIndex, len(entries), err)
	}

	summary := ""
	if s.summarizer != nil {
		summary, err = s.summarizer.Summarize(raw, s.params.SummaryMaxSentences)
		if err != nil {
			s.logger.Warn("summarization failed", "err", err)
			summary = ""
		}
	}

	s.logger.Info("ingestion complete", "path", path, "chunks", len(entries))
	return IngestResult{Count: len(entries), Summary: summary}, nil
}

// Retrieve returns the concatenated context for a query, or an empty string
// when nothing relevant is found. Retrieval-class failures are absorbed so a
// broken search never breaks the conversation; configuration errors still
// propagate and halt the interaction.
func (s *Service) Retrieve(query string) (string, error) {
	contextText, err := s.retrieve(query)
	if err != nil {
		if errors.Is(err, ErrRetrieval) {
			s.logger.Warn("retrieval failed, continuing without context", "err", err)
			return "", nil
		}
		return "", err
	}
	return contextText, nil
}

func (s *Service) retrieve(query string) (string, error) {
	vector, err := s.embedder.Embed(query)
	if err != nil {
		return "", fmt.Errorf("%w: embed query: %v", ErrRetrieval, err)
	}
	if len(vector) != s.params.Dimension {
		return "", fmt.Errorf("%w: query embedding dimension %d, collection expects %d", ErrConfiguration, len(vector), s.params.Dimension)
	}
	results, err := s.index.Search(vector, s.params.TopK)
	if err != nil {
		return "", fmt.Errorf("%w: search: %v", ErrRetrieval, err)
	}
	var kept []string
	for _, r := range results {
		if r.Score > s.params.MinScore {
			kept = append(kept, r.Text)
		}
	}
	return strings.Join(kept, "\n"), nil
}
