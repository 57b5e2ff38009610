package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/docspace/internal/core/domain"
	"github.com/custodia-labs/docspace/internal/core/ports/driving"
)

// Ensure ChatService implements the interface.
var _ driving.ChatService = (*ChatService)(nil)

// NoResultsText is the reply when no stored document matches a question.
const NoResultsText = "I couldn't find any documents related to your question. " +
	"Try different keywords or add a document that covers it."

// ChatService answers questions extractively from the best matching documents.
type ChatService struct {
	search driving.SearchService
}

// NewChatService creates a new chat service on top of a search service.
func NewChatService(search driving.SearchService) *ChatService {
	return &ChatService{search: search}
}

// Ask retrieves the documents matching a question and builds a reply that
// quotes their snippets. An empty or unmatched question yields NoResultsText
// rather than a blanket listing.
func (s *ChatService) Ask(ctx context.Context, question string, contextIDs []int) (*domain.ChatAnswer, error) {
	if s.search == nil {
		return nil, errSearchNotConfigured
	}

	results, err := s.search.Search(ctx, question, domain.SearchOptions{DocumentIDs: contextIDs})
	if err != nil {
		return nil, fmt.Errorf("chat: %w", err)
	}

	answer := &domain.ChatAnswer{
		Role:    "assistant",
		Sources: make([]domain.ChatSource, 0, len(results)),
	}
	if len(results) == 0 {
		answer.Text = NoResultsText
		return answer, nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Here is what I found in %d document(s):\n", len(results))
	for i := range results {
		doc := results[i].Document
		fmt.Fprintf(&b, "\n%d. %s (%s)\n   %s\n", i+1, doc.Title, doc.Category, results[i].Snippet)
		answer.Sources = append(answer.Sources, domain.ChatSource{
			ID:      doc.ID,
			Title:   doc.Title,
			Snippet: results[i].Snippet,
		})
	}
	answer.Text = strings.TrimRight(b.String(), "\n")
	return answer, nil
}
