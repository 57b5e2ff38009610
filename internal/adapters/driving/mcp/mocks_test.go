package mcp

import (
	"context"

	"github.com/custodia-labs/docspace/internal/core/domain"
)

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	results []domain.ScoreResult
	err     error

	gotOpts domain.SearchOptions
}

func (m *mockSearchService) Search(
	_ context.Context,
	_ string,
	opts domain.SearchOptions,
) ([]domain.ScoreResult, error) {
	m.gotOpts = opts
	return m.results, m.err
}

// mockDocumentService is a mock implementation of driving.DocumentService.
type mockDocumentService struct {
	documents []domain.Document
	err       error
}

func (m *mockDocumentService) List(_ context.Context) ([]domain.Document, error) {
	return m.documents, m.err
}

func (m *mockDocumentService) Get(_ context.Context, id int) (*domain.Document, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.documents {
		if m.documents[i].ID == id {
			d := m.documents[i]
			return &d, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockDocumentService) Create(_ context.Context, _ domain.DocumentInput) (*domain.Document, error) {
	return nil, m.err
}

func (m *mockDocumentService) Update(_ context.Context, _ int, _ domain.DocumentInput) (*domain.Document, error) {
	return nil, m.err
}

func (m *mockDocumentService) Delete(_ context.Context, _ int) error {
	return m.err
}

func (m *mockDocumentService) Export(_ context.Context) ([]domain.Document, error) {
	return m.documents, m.err
}

func (m *mockDocumentService) Import(_ context.Context, _ domain.ImportBatch) ([]domain.Document, error) {
	return m.documents, m.err
}

func (m *mockDocumentService) SeedIfEmpty(_ context.Context, _ []domain.Candidate) (bool, error) {
	return false, m.err
}

// mockChatService is a mock implementation of driving.ChatService.
type mockChatService struct {
	answer *domain.ChatAnswer
	err    error

	gotIDs []int
}

func (m *mockChatService) Ask(_ context.Context, _ string, contextIDs []int) (*domain.ChatAnswer, error) {
	m.gotIDs = contextIDs
	return m.answer, m.err
}

func sampleDocuments() []domain.Document {
	return []domain.Document{
		{ID: 1, Title: "Intro to React", Category: "Frontend", Summary: "Components", Content: "React is a library"},
		{ID: 2, Title: "What is an API?", Category: "Backend", Summary: "REST", Content: "An API is a contract"},
	}
}
