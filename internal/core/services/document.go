package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/custodia-labs/docspace/internal/core/domain"
	"github.com/custodia-labs/docspace/internal/core/ports/driven"
	"github.com/custodia-labs/docspace/internal/core/ports/driving"
	"github.com/custodia-labs/docspace/internal/logger"
)

// Ensure DocumentService implements the interface.
var _ driving.DocumentService = (*DocumentService)(nil)

// DocumentService manages the workspace documents on top of a snapshot store.
//
// Every mutation loads the whole table, computes a new one and writes it back
// with ReplaceAll. The sequence is serialised by mu so concurrent callers in
// this process cannot lose each other's writes.
type DocumentService struct {
	store driven.SnapshotStore

	mu sync.Mutex

	// highWater is the largest ID handed out or observed by this process.
	// New IDs are allocated above it so deleted IDs are not reused.
	highWater int

	// resetHighWater drops highWater to the written table's maximum once the
	// pending write succeeds. Set by replace imports.
	resetHighWater bool
}

// NewDocumentService creates a new document service.
func NewDocumentService(store driven.SnapshotStore) *DocumentService {
	return &DocumentService{store: store}
}

// List returns all documents in ascending ID order.
func (s *DocumentService) List(ctx context.Context) ([]domain.Document, error) {
	if s.store == nil {
		return nil, errStoreNotConfigured
	}
	table, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading documents: %w", err)
	}
	return table.SortedByID(), nil
}

// Get retrieves a document by ID.
func (s *DocumentService) Get(ctx context.Context, id int) (*domain.Document, error) {
	if s.store == nil {
		return nil, errStoreNotConfigured
	}
	table, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading documents: %w", err)
	}
	doc, ok := table.Find(id)
	if !ok {
		return nil, fmt.Errorf("document %d: %w", id, domain.ErrNotFound)
	}
	return &doc, nil
}

// Create stores a new document under a freshly allocated ID.
func (s *DocumentService) Create(ctx context.Context, input domain.DocumentInput) (*domain.Document, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var created domain.Document
	err := s.mutate(ctx, func(table domain.Table) (domain.Table, error) {
		created = input.WithID(s.nextID(table))
		logger.Debug("Creating document %d: %q", created.ID, created.Title)
		return append(table, created), nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Update replaces the fields of an existing document, keeping its ID.
func (s *DocumentService) Update(
	ctx context.Context, id int, input domain.DocumentInput,
) (*domain.Document, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	updated := input.WithID(id)
	err := s.mutate(ctx, func(table domain.Table) (domain.Table, error) {
		for i := range table {
			if table[i].ID == id {
				table[i] = updated
				return table, nil
			}
		}
		return nil, fmt.Errorf("document %d: %w", id, domain.ErrNotFound)
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a document.
func (s *DocumentService) Delete(ctx context.Context, id int) error {
	return s.mutate(ctx, func(table domain.Table) (domain.Table, error) {
		out := make(domain.Table, 0, len(table))
		for i := range table {
			if table[i].ID != id {
				out = append(out, table[i])
			}
		}
		if len(out) == len(table) {
			return nil, fmt.Errorf("document %d: %w", id, domain.ErrNotFound)
		}
		logger.Debug("Deleted document %d", id)
		return out, nil
	})
}

// Export returns the full table for backup, in ascending ID order.
func (s *DocumentService) Export(ctx context.Context) ([]domain.Document, error) {
	return s.List(ctx)
}

// Import reconciles a batch with the stored table and persists the result.
// Invalid items are dropped; the reconciled table is returned.
func (s *DocumentService) Import(ctx context.Context, batch domain.ImportBatch) ([]domain.Document, error) {
	logger.Section("Import")
	logger.Debug("Mode: %s, candidates: %d", batch.Mode, len(batch.Candidates))

	var result domain.Table
	err := s.mutate(ctx, func(table domain.Table) (domain.Table, error) {
		reconciled, err := Reconcile(table, batch, WithIDFloor(s.highWater))
		if err != nil {
			return nil, err
		}
		// Replace reassigns the whole ID space.
		s.resetHighWater = batch.Mode == domain.ImportModeReplace
		result = reconciled
		return reconciled, nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Imported %d candidates (%s), table now holds %d documents",
		len(batch.Candidates), batch.Mode, len(result))
	return result.Clone(), nil
}

// SeedIfEmpty populates an empty table with the valid candidates, numbered
// from 1 in order. Candidate IDs are ignored. Nothing is written when the
// table already holds documents or when no candidate is valid.
func (s *DocumentService) SeedIfEmpty(ctx context.Context, candidates []domain.Candidate) (bool, error) {
	seeded := false
	err := s.mutate(ctx, func(table domain.Table) (domain.Table, error) {
		if len(table) > 0 {
			logger.Debug("Seed skipped: table holds %d documents", len(table))
			return nil, errNoChange
		}

		out := make(domain.Table, 0, len(candidates))
		for i := range candidates {
			if err := candidates[i].Input.Validate(); err != nil {
				logger.Debug("Seed: skipping candidate %d: %v", i, err)
				continue
			}
			out = append(out, candidates[i].Input.WithID(len(out)+1))
		}
		if len(out) == 0 {
			return nil, errNoChange
		}

		seeded = true
		logger.Info("Seeding %d documents", len(out))
		return out, nil
	})
	if err != nil {
		return false, err
	}
	return seeded, nil
}

// mutate runs the load, compute and replace sequence under the service lock.
// The compute function may modify the table it is given.
func (s *DocumentService) mutate(
	ctx context.Context, compute func(domain.Table) (domain.Table, error),
) error {
	if s.store == nil {
		return errStoreNotConfigured
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	table, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading documents: %w", err)
	}

	s.observe(table)
	s.resetHighWater = false
	next, err := compute(table.Clone())
	if errors.Is(err, errNoChange) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := s.store.ReplaceAll(ctx, next); err != nil {
		return fmt.Errorf("saving documents: %w", err)
	}
	if s.resetHighWater {
		s.highWater = 0
		s.resetHighWater = false
	}
	s.observe(next)
	return nil
}

// nextID allocates the next ID above both the table and the high-water mark,
// falling back to the lowest free ID once the ceiling is reached.
// Caller must hold mu.
func (s *DocumentService) nextID(table domain.Table) int {
	s.observe(table)
	if s.highWater < domain.MaxDocumentID {
		s.highWater++
		return s.highWater
	}
	used := make(map[int]struct{}, len(table))
	for i := range table {
		used[table[i].ID] = struct{}{}
	}
	return nextFreeID(s.highWater, func(n int) bool { _, taken := used[n]; return taken })
}

// observe raises the high-water mark to the table's highest ID.
// Caller must hold mu.
func (s *DocumentService) observe(table domain.Table) {
	s.highWater = max(s.highWater, table.MaxID())
}
