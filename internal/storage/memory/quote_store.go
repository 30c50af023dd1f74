package memory

import (
	"context"
	"sort"
	"sync"

	"parcel-econ-lab/internal/domain"
	"parcel-econ-lab/internal/storage"
)

// QuoteStore is an in-memory implementation of storage.QuoteStore.
type QuoteStore struct {
	mu   sync.RWMutex
	data map[string]*domain.TokenQuote // keyed by canonical token id
}

// NewQuoteStore creates a new in-memory quote store.
func NewQuoteStore() *QuoteStore {
	return &QuoteStore{
		data: make(map[string]*domain.TokenQuote),
	}
}

// Upsert inserts or replaces a quote.
func (s *QuoteStore) Upsert(_ context.Context, quote *domain.TokenQuote) error {
	if quote == nil || quote.TokenID == "" {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Store a copy to prevent external mutation
	quoteCopy := *quote
	s.data[quote.TokenID] = &quoteCopy
	return nil
}

// GetByID retrieves a quote by token id. Returns ErrNotFound if absent.
func (s *QuoteStore) GetByID(_ context.Context, tokenID string) (*domain.TokenQuote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q, exists := s.data[tokenID]
	if !exists {
		return nil, storage.ErrNotFound
	}

	// Return a copy
	quoteCopy := *q
	return &quoteCopy, nil
}

// All returns every stored quote sorted by token id.
func (s *QuoteStore) All(_ context.Context) ([]*domain.TokenQuote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.TokenQuote, 0, len(s.data))
	for _, q := range s.data {
		quoteCopy := *q
		result = append(result, &quoteCopy)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].TokenID < result[j].TokenID
	})

	return result, nil
}

// Verify interface compliance at compile time.
var _ storage.QuoteStore = (*QuoteStore)(nil)
