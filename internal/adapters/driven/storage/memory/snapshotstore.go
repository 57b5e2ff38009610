package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/docspace/internal/core/domain"
	"github.com/custodia-labs/docspace/internal/core/ports/driven"
)

// Ensure SnapshotStore implements the interface.
var _ driven.SnapshotStore = (*SnapshotStore)(nil)

// SnapshotStore is an in-memory implementation of driven.SnapshotStore.
// Tables are copied on the way in and out so callers never share storage.
type SnapshotStore struct {
	mu    sync.RWMutex
	table domain.Table
}

// NewSnapshotStore creates an empty in-memory snapshot store.
func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{table: domain.Table{}}
}

// NewSnapshotStoreWith creates a store holding a copy of table.
func NewSnapshotStoreWith(table domain.Table) *SnapshotStore {
	return &SnapshotStore{table: table.Clone()}
}

// Load returns a copy of the stored table.
func (s *SnapshotStore) Load(_ context.Context) (domain.Table, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.table.Clone(), nil
}

// ReplaceAll overwrites the stored table with a copy of table.
func (s *SnapshotStore) ReplaceAll(_ context.Context, table domain.Table) error {
	if err := table.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table = table.Clone()
	return nil
}

// Close is a no-op for the memory store.
func (s *SnapshotStore) Close() error {
	return nil
}
