package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/docspace/internal/core/domain"
	"github.com/custodia-labs/docspace/internal/core/ports/driven"
)

// Ensure FileSource implements the interface.
var _ driven.SeedSource = (*FileSource)(nil)

// ErrUnsupportedFormat indicates a seed file extension other than JSON or YAML.
var ErrUnsupportedFormat = errors.New("unsupported seed file format")

// seedDocument is one entry of a seed file.
type seedDocument struct {
	ID       *int   `json:"id" yaml:"id"`
	Title    string `json:"title" yaml:"title"`
	Category string `json:"category" yaml:"category"`
	Summary  string `json:"summary" yaml:"summary"`
	Content  string `json:"content" yaml:"content"`
}

func (d seedDocument) candidate() domain.Candidate {
	id := domain.NoID()
	if d.ID != nil {
		id = domain.ExplicitID(*d.ID)
	}
	return domain.Candidate{
		ID: id,
		Input: domain.DocumentInput{
			Title:    d.Title,
			Category: d.Category,
			Summary:  d.Summary,
			Content:  d.Content,
		},
	}
}

// FileSource reads seed documents from a JSON or YAML file.
type FileSource struct {
	path string
}

// NewFileSource creates a source for the file at path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// NewSource returns the source for path: Builtin when path is empty, a
// DirSource for a directory, and a FileSource otherwise.
func NewSource(path string) driven.SeedSource {
	if path == "" {
		return Builtin{}
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return NewDirSource(path, nil)
	}
	return NewFileSource(path)
}

// Path returns the seed file path.
func (s *FileSource) Path() string {
	return s.path
}

// Candidates reads and decodes the seed file.
func (s *FileSource) Candidates(_ context.Context) ([]domain.Candidate, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}

	var docs []seedDocument
	switch ext := strings.ToLower(filepath.Ext(s.path)); ext {
	case ".json":
		err = json.Unmarshal(data, &docs)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &docs)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding seed file %s: %w", s.path, err)
	}

	out := make([]domain.Candidate, len(docs))
	for i := range docs {
		out[i] = docs[i].candidate()
	}
	return out, nil
}
