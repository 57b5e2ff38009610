// Package plaintext provides the fallback Normaliser for plain text files.
package plaintext

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/docspace/internal/core/domain"
	"github.com/custodia-labs/docspace/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser handles plain text documents.
type Normaliser struct{}

// New creates a new plain text normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Extensions returns the file extensions this normaliser handles.
func (n *Normaliser) Extensions() []string {
	return []string{".txt", ".text"}
}

// Normalise keeps the content as is and derives the title from the file name.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawDocument) (domain.DocumentInput, error) {
	if raw == nil {
		return domain.DocumentInput{}, domain.ErrInvalidInput
	}

	return domain.DocumentInput{
		Title:   extractTitle(raw.URI),
		Content: strings.TrimSpace(string(raw.Content)),
	}, nil
}

// extractTitle extracts a human-readable title from a URI.
func extractTitle(uri string) string {
	filename := filepath.Base(uri)
	filename = strings.TrimSuffix(filename, filepath.Ext(filename))

	filename = strings.ReplaceAll(filename, "_", " ")
	filename = strings.ReplaceAll(filename, "-", " ")
	return filename
}
