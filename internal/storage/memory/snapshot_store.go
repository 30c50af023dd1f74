package memory

import (
	"context"
	"sync"

	"parcel-econ-lab/internal/domain"
	"parcel-econ-lab/internal/storage"
)

// SnapshotStore is an in-memory implementation of storage.SnapshotStore.
// The snapshot pointer itself is swapped atomically under the lock;
// snapshots are immutable by contract, so no deep copy is needed.
type SnapshotStore struct {
	mu      sync.RWMutex
	current *domain.Snapshot
}

// NewSnapshotStore creates a new in-memory snapshot store.
func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{}
}

// Replace installs a new snapshot as current.
func (s *SnapshotStore) Replace(_ context.Context, snap *domain.Snapshot) error {
	if snap == nil || snap.Version == "" {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = snap
	return nil
}

// Current returns the current snapshot, or ErrNotFound before the first
// Replace.
func (s *SnapshotStore) Current(_ context.Context) (*domain.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil, storage.ErrNotFound
	}
	return s.current, nil
}

// Verify interface compliance at compile time.
var _ storage.SnapshotStore = (*SnapshotStore)(nil)
