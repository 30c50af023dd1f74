// Package storage defines the store interfaces the engine's collaborators
// implement. The engine itself only ever reads one immutable snapshot.
package storage

import (
	"context"

	"parcel-econ-lab/internal/domain"
)

// SnapshotStore holds the current grid snapshot. Replace swaps the whole
// snapshot atomically — derived values cached against the previous version
// become unreachable by construction.
type SnapshotStore interface {
	// Replace installs a new snapshot as current.
	Replace(ctx context.Context, snap *domain.Snapshot) error

	// Current returns the current snapshot. Returns ErrNotFound before the
	// first Replace.
	Current(ctx context.Context) (*domain.Snapshot, error)
}

// QuoteStore holds normalized token quotes keyed by canonical token id.
type QuoteStore interface {
	// Upsert inserts or replaces a quote.
	Upsert(ctx context.Context, quote *domain.TokenQuote) error

	// GetByID retrieves a quote. Returns ErrNotFound if absent.
	GetByID(ctx context.Context, tokenID string) (*domain.TokenQuote, error)

	// All returns every stored quote.
	All(ctx context.Context) ([]*domain.TokenQuote, error)
}
