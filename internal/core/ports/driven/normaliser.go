package driven

import (
	"context"

	"github.com/custodia-labs/docspace/internal/core/domain"
)

// Normaliser converts a raw text file into document fields.
type Normaliser interface {
	// Extensions returns the lower-case file extensions handled, dot included.
	Extensions() []string

	// Normalise extracts the title and plain-text content.
	// Category and summary are left for the caller to fill.
	Normalise(ctx context.Context, raw *domain.RawDocument) (domain.DocumentInput, error)
}
