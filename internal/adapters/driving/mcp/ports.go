package mcp

import (
	"github.com/custodia-labs/docspace/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search provides search capabilities.
	Search driving.SearchService

	// Document gives read access to stored documents.
	Document driving.DocumentService

	// Chat answers questions from the documents.
	Chat driving.ChatService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	// Document and Chat are optional; their tools report an error when absent.
	return nil
}
