// Package tui provides an interactive terminal user interface for docspace.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/docspace/internal/core/ports/driving"
)

// Ports aggregates the driving ports used by the TUI.
type Ports struct {
	// Search ranks documents against the typed query.
	Search driving.SearchService

	// Documents lists and loads documents.
	Documents driving.DocumentService

	// Limit caps the number of search results. Zero uses the service default.
	Limit int
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	if p.Documents == nil {
		return ErrMissingDocumentService
	}
	return nil
}
