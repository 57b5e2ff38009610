package driven

import (
	"context"

	"github.com/custodia-labs/docspace/internal/core/domain"
)

// SeedSource supplies the candidates used to populate an empty table.
type SeedSource interface {
	// Candidates returns the seed documents in order. IDs are ignored.
	Candidates(ctx context.Context) ([]domain.Candidate, error)
}
