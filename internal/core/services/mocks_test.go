package services

import (
	"context"
	"errors"
	"sync"

	"github.com/custodia-labs/docspace/internal/core/domain"
	"github.com/custodia-labs/docspace/internal/core/ports/driven"
)

var errStoreFailure = errors.New("store failure")

// mockSnapshotStore implements driven.SnapshotStore with injectable failures.
type mockSnapshotStore struct {
	mu         sync.Mutex
	table      domain.Table
	loadErr    error
	replaceErr error
	loads      int
	replaces   int
}

var _ driven.SnapshotStore = (*mockSnapshotStore)(nil)

func newMockStore(docs ...domain.Document) *mockSnapshotStore {
	return &mockSnapshotStore{table: domain.Table(docs).Clone()}
}

func (m *mockSnapshotStore) Load(_ context.Context) (domain.Table, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loads++
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.table.Clone(), nil
}

func (m *mockSnapshotStore) ReplaceAll(_ context.Context, table domain.Table) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.replaces++
	if m.replaceErr != nil {
		return m.replaceErr
	}
	m.table = table.Clone()
	return nil
}

func (m *mockSnapshotStore) Close() error {
	return nil
}

// mockSearchService implements driving.SearchService for chat tests.
type mockSearchService struct {
	results []domain.ScoreResult
	err     error

	gotQuery string
	gotOpts  domain.SearchOptions
}

func (m *mockSearchService) Search(
	_ context.Context, query string, opts domain.SearchOptions,
) ([]domain.ScoreResult, error) {
	m.gotQuery = query
	m.gotOpts = opts
	if m.err != nil {
		return nil, m.err
	}
	return m.results, nil
}

// doc builds a valid document for tests.
func doc(id int, title string) domain.Document {
	return domain.Document{
		ID:       id,
		Title:    title,
		Category: "General",
		Summary:  "Summary",
		Content:  "Body text",
	}
}

// input builds a valid document input for tests.
func input(title string) domain.DocumentInput {
	return domain.DocumentInput{
		Title:    title,
		Category: "General",
		Summary:  "Summary",
		Content:  "Body text",
	}
}

func candidate(id domain.CandidateID, title string) domain.Candidate {
	return domain.Candidate{ID: id, Input: input(title)}
}

func ids(table []domain.Document) []int {
	out := make([]int, len(table))
	for i := range table {
		out[i] = table[i].ID
	}
	return out
}
