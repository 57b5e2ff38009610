package driving

import (
	"context"

	"github.com/custodia-labs/docspace/internal/core/domain"
)

// DocumentService manages the workspace documents.
type DocumentService interface {
	// List returns all documents in ascending ID order.
	List(ctx context.Context) ([]domain.Document, error)

	// Get retrieves a document by ID.
	Get(ctx context.Context, id int) (*domain.Document, error)

	// Create stores a new document under a freshly allocated ID.
	Create(ctx context.Context, input domain.DocumentInput) (*domain.Document, error)

	// Update replaces the fields of an existing document.
	Update(ctx context.Context, id int, input domain.DocumentInput) (*domain.Document, error)

	// Delete removes a document.
	Delete(ctx context.Context, id int) error

	// Export returns the full table for backup, in ascending ID order.
	Export(ctx context.Context) ([]domain.Document, error)

	// Import reconciles a batch with the stored table and persists the result.
	Import(ctx context.Context, batch domain.ImportBatch) ([]domain.Document, error)

	// SeedIfEmpty populates an empty table. Returns whether seeding occurred.
	SeedIfEmpty(ctx context.Context, candidates []domain.Candidate) (bool, error)
}
