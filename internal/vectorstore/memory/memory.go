package memory

import (
	"errors"
	"math"
	"sort"
	"sync"

	"ragchat/internal/domain"
)

// Index is an in-memory vector collection using brute-force cosine similarity.
type Index struct {
	mu        sync.RWMutex
	dimension int
	entries   []domain.IndexEntry
	byID      map[int]int // entry id -> position in entries
}

func NewIndex() *Index { return &Index{} }

// Reset drops all entries and fixes the collection dimension.
// Calling it on an empty or missing collection is not an error.
func (s *Index) Reset(dimension int) error {
	if dimension <= 0 {
		return errors.New("invalid dimension")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dimension = dimension
	s.entries = nil
	s.byID = make(map[int]int)
	return nil
}

// Upsert inserts entries, overwriting any existing entry with the same id.
func (s *Index) Upsert(entries []domain.IndexEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dimension == 0 {
		return errors.New("collection not initialized")
	}
	for _, e := range entries {
		if len(e.Vector) != s.dimension {
			return errors.New("vector dimension mismatch")
		}
	}
	for _, e := range entries {
		if pos, ok := s.byID[e.ID]; ok {
			s.entries[pos] = e
			continue
		}
		s.byID[e.ID] = len(s.entries)
		s.entries = append(s.entries, e)
	}
	return nil
}

// Search ranks all entries by cosine similarity to the query vector.
// Ties are broken by ascending id for stable output.
func (s *Index) Search(vector []float64, limit int) ([]domain.SearchResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.dimension == 0 {
		return nil, errors.New("collection not initialized")
	}
	if len(vector) != s.dimension {
		return nil, errors.New("query vector dimension mismatch")
	}
	if limit <= 0 {
		limit = 5
	}
	type scored struct {
		pos   int
		score float64
	}
	ranked := make([]scored, len(s.entries))
	for i, e := range s.entries {
		ranked[i] = scored{pos: i, score: cosine(e.Vector, vector)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return s.entries[ranked[i].pos].ID < s.entries[ranked[j].pos].ID
	})
	if limit > len(ranked) {
		limit = len(ranked)
	}
	results := make([]domain.SearchResult, 0, limit)
	for i := 0; i < limit; i++ {
		e := s.entries[ranked[i].pos]
		results = append(results, domain.SearchResult{Text: e.Text, Score: ranked[i].score})
	}
	return results, nil
}

func cosine(a, b []float64) float64 {
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
