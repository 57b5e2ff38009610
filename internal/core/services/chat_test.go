package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docspace/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/docspace/internal/core/domain"
)

func TestChatService_Ask_NoResults(t *testing.T) {
	service := NewChatService(&mockSearchService{})

	answer, err := service.Ask(context.Background(), "quantum", nil)

	require.NoError(t, err)
	assert.Equal(t, "assistant", answer.Role)
	assert.Equal(t, NoResultsText, answer.Text)
	assert.NotNil(t, answer.Sources)
	assert.Empty(t, answer.Sources)
}

func TestChatService_Ask_WithResults(t *testing.T) {
	search := &mockSearchService{
		results: []domain.ScoreResult{
			{Document: domain.Document{ID: 4, Title: "What is an API?", Category: "Backend"}, Score: 6, Snippet: "An API is..."},
			{Document: domain.Document{ID: 2, Title: "REST", Category: "Backend"}, Score: 1, Snippet: "REST is..."},
		},
	}
	service := NewChatService(search)

	answer, err := service.Ask(context.Background(), "api", []int{2, 4})

	require.NoError(t, err)
	assert.Equal(t, "api", search.gotQuery)
	assert.Equal(t, []int{2, 4}, search.gotOpts.DocumentIDs)

	require.Len(t, answer.Sources, 2)
	assert.Equal(t, domain.ChatSource{ID: 4, Title: "What is an API?", Snippet: "An API is..."}, answer.Sources[0])
	assert.Equal(t, 2, answer.Sources[1].ID)

	assert.Contains(t, answer.Text, "2 document(s)")
	assert.Contains(t, answer.Text, "1. What is an API? (Backend)")
	assert.Contains(t, answer.Text, "2. REST (Backend)")
	assert.Contains(t, answer.Text, "REST is...")
}

func TestChatService_Ask_SearchError(t *testing.T) {
	service := NewChatService(&mockSearchService{err: errStoreFailure})

	_, err := service.Ask(context.Background(), "api", nil)
	assert.ErrorIs(t, err, errStoreFailure)
}

func TestChatService_Ask_NilSearch(t *testing.T) {
	_, err := NewChatService(nil).Ask(context.Background(), "api", nil)
	assert.ErrorIs(t, err, errSearchNotConfigured)
}

func TestChatService_Ask_EndToEnd(t *testing.T) {
	store := memory.NewSnapshotStoreWith(animalTable())
	service := NewChatService(NewSearchService(store, 3))

	answer, err := service.Ask(context.Background(), "dogs", nil)

	require.NoError(t, err)
	require.Len(t, answer.Sources, 1)
	assert.Equal(t, 2, answer.Sources[0].ID)
	assert.Equal(t, "Dogs bark.", answer.Sources[0].Snippet)
}
