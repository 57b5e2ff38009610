package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/docspace/internal/core/domain"
	"github.com/custodia-labs/docspace/internal/core/ports/driven"
	"github.com/custodia-labs/docspace/internal/core/ports/driving"
	"github.com/custodia-labs/docspace/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchService ranks stored documents with the lexical scorer.
// It only reads from the store.
type SearchService struct {
	store driven.SnapshotStore
	topK  int
}

// NewSearchService creates a new search service.
// topK is the default result count; zero or less means domain.DefaultTopK.
func NewSearchService(store driven.SnapshotStore, topK int) *SearchService {
	if topK <= 0 {
		topK = domain.DefaultTopK
	}
	return &SearchService{store: store, topK: topK}
}

// Search ranks stored documents against a free-text query.
func (s *SearchService) Search(
	ctx context.Context, query string, opts domain.SearchOptions,
) ([]domain.ScoreResult, error) {
	logger.Section("Search Execution")
	logger.Debug("Query: %q", query)

	if s.store == nil {
		return nil, errStoreNotConfigured
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = s.topK
	}

	table, err := s.store.Load(ctx)
	if err != nil {
		logger.Warn("Search failed: %v", err)
		return nil, fmt.Errorf("search: loading documents: %w", err)
	}

	if len(opts.DocumentIDs) > 0 {
		table = restrictTable(table, opts.DocumentIDs)
		logger.Debug("Restricted to %d of %d requested documents", len(table), len(opts.DocumentIDs))
	}

	results := Score(table, query, limit)
	logger.Debug("Scored %d documents, returning %d (limit %d)", len(table), len(results), limit)
	for i := range results {
		logger.Debug("  [%d] id=%d score=%d %q", i+1, results[i].Document.ID, results[i].Score, results[i].Document.Title)
	}
	return results, nil
}

// restrictTable keeps the documents whose ID is listed, in table order.
func restrictTable(table domain.Table, ids []int) domain.Table {
	wanted := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}
	out := make(domain.Table, 0, len(ids))
	for i := range table {
		if _, ok := wanted[table[i].ID]; ok {
			out = append(out, table[i])
		}
	}
	return out
}
