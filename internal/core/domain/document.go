package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxTitleLength is the longest title accepted, in characters.
const MaxTitleLength = 200

// Document is a short text document stored in the workspace.
type Document struct {
	// ID is the store-assigned identifier. Always positive.
	ID int `json:"id"`

	// Title is the human-readable title.
	Title string `json:"title"`

	// Category groups related documents (e.g. "Backend").
	Category string `json:"category"`

	// Summary is a one-line description.
	Summary string `json:"summary"`

	// Content is the long-form body text.
	Content string `json:"content"`
}

// DocumentInput carries the editable fields of a document.
// It is the payload for create and update operations.
type DocumentInput struct {
	Title    string `json:"title"`
	Category string `json:"category"`
	Summary  string `json:"summary"`
	Content  string `json:"content"`
}

// Validate checks that every required field is present.
// A field counts as missing when it is empty after trimming whitespace.
func (in DocumentInput) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"title", in.Title},
		{"category", in.Category},
		{"summary", in.Summary},
		{"content", in.Content},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalidInput, f.name)
		}
	}
	if utf8.RuneCountInString(in.Title) > MaxTitleLength {
		return fmt.Errorf("%w: title exceeds %d characters", ErrInvalidInput, MaxTitleLength)
	}
	return nil
}

// WithID builds a Document from the input under the given ID.
func (in DocumentInput) WithID(id int) Document {
	return Document{
		ID:       id,
		Title:    in.Title,
		Category: in.Category,
		Summary:  in.Summary,
		Content:  in.Content,
	}
}

// Input returns the editable fields of the document.
func (d Document) Input() DocumentInput {
	return DocumentInput{
		Title:    d.Title,
		Category: d.Category,
		Summary:  d.Summary,
		Content:  d.Content,
	}
}

// Validate checks the ID and every required field.
func (d Document) Validate() error {
	if d.ID <= 0 {
		return fmt.Errorf("%w: id must be positive, got %d", ErrInvalidInput, d.ID)
	}
	if d.ID > MaxDocumentID {
		return fmt.Errorf("%w: id %d exceeds %d", ErrInvalidInput, d.ID, MaxDocumentID)
	}
	return d.Input().Validate()
}
