package driven

import (
	"context"

	"github.com/custodia-labs/docspace/internal/core/domain"
)

// SnapshotStore persists the document table as one whole snapshot.
// There are no partial updates: every mutation computes a new table and
// hands it to ReplaceAll.
type SnapshotStore interface {
	// Load returns the full current table. Missing backing storage is not an
	// error: it yields an empty table and initialises an empty snapshot.
	Load(ctx context.Context) (domain.Table, error)

	// ReplaceAll overwrites the stored table with the given one.
	ReplaceAll(ctx context.Context, table domain.Table) error

	// Close releases resources.
	Close() error
}
