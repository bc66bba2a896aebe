package vectorstore

import "ragchat/internal/domain"

// Index holds one vector collection at a time and answers nearest-neighbor
// queries. Reset destroys any existing collection before creating a fresh
// empty one; ingesting new data always goes through Reset first, so at most
// one generation of entries is live.
type Index interface {
	// Reset idempotently drops the collection and recreates it empty with
	// the given dimension and cosine distance. A missing collection is not
	// an error.
	Reset(dimension int) error
	// Upsert inserts or overwrites entries by id.
	Upsert(entries []domain.IndexEntry) error
	// Search returns up to limit nearest neighbors by cosine similarity,
	// highest score first.
	Search(vector []float64, limit int) ([]domain.SearchResult, error)
}
