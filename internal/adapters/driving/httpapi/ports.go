package httpapi

import (
	"github.com/custodia-labs/docspace/internal/core/ports/driving"
)

// Ports aggregates the driving ports served over HTTP.
type Ports struct {
	// Documents manages the document table.
	Documents driving.DocumentService

	// Search ranks documents against a query.
	Search driving.SearchService

	// Chat answers questions. Optional; /api/chat reports 503 without it.
	Chat driving.ChatService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Documents == nil {
		return ErrMissingDocumentService
	}
	if p.Search == nil {
		return ErrMissingSearchService
	}
	return nil
}
