package driving

import (
	"context"

	"github.com/custodia-labs/docspace/internal/core/domain"
)

// SearchService provides lexical retrieval to external actors.
type SearchService interface {
	// Search ranks stored documents against a free-text query.
	Search(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.ScoreResult, error)
}

// ChatService answers workspace questions from the stored documents.
type ChatService interface {
	// Ask retrieves the documents matching a question and builds a reply.
	// When contextIDs is non-empty only those documents are considered.
	Ask(ctx context.Context, question string, contextIDs []int) (*domain.ChatAnswer, error)
}
