package seed

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/custodia-labs/docspace/internal/core/domain"
	"github.com/custodia-labs/docspace/internal/core/ports/driven"
	"github.com/custodia-labs/docspace/internal/logger"
	"github.com/custodia-labs/docspace/internal/normalisers"
)

// Ensure DirSource implements the interface.
var _ driven.SeedSource = (*DirSource)(nil)

const (
	// defaultCategory is used for files directly inside the root directory.
	defaultCategory = "General"

	// summaryLimit bounds the summary taken from a file's first line, in runes.
	summaryLimit = 160
)

// DirSource turns a directory of text files into candidates. Each file the
// registry knows becomes one document; its category is the name of the
// top-level subdirectory holding it. Hidden files and directories are skipped.
type DirSource struct {
	root     string
	registry *normalisers.Registry
}

// NewDirSource creates a source reading root with the given registry.
// A nil registry uses normalisers.Default.
func NewDirSource(root string, registry *normalisers.Registry) *DirSource {
	if registry == nil {
		registry = normalisers.Default()
	}
	return &DirSource{root: root, registry: registry}
}

// Path returns the root directory.
func (s *DirSource) Path() string {
	return s.root
}

// Candidates walks the directory in lexical order.
func (s *DirSource) Candidates(ctx context.Context) ([]domain.Candidate, error) {
	var out []domain.Candidate

	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path != s.root && isHidden(d.Name()) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		n, ok := s.registry.Lookup(path)
		if !ok {
			logger.Debug("Skipping unsupported file %s", path)
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		input, err := n.Normalise(ctx, &domain.RawDocument{URI: path, Content: content})
		if err != nil {
			return fmt.Errorf("normalising %s: %w", path, err)
		}

		if input.Category == "" {
			input.Category = s.category(path)
		}
		if input.Summary == "" {
			input.Summary = summarise(input.Content)
		}
		out = append(out, domain.Candidate{ID: domain.NoID(), Input: input})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reading seed directory %s: %w", s.root, err)
	}
	return out, nil
}

// category names the top-level subdirectory of root containing path.
func (s *DirSource) category(path string) string {
	rel, err := filepath.Rel(s.root, filepath.Dir(path))
	if err != nil || rel == "." {
		return defaultCategory
	}
	return strings.SplitN(filepath.ToSlash(rel), "/", 2)[0]
}

// summarise returns the first non-blank line of content, shortened to summaryLimit runes.
func summarise(content string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if utf8.RuneCountInString(line) <= summaryLimit {
			return line
		}
		return string([]rune(line)[:summaryLimit]) + "…"
	}
	return ""
}

// isHidden reports whether a file or directory name starts with a dot.
func isHidden(name string) bool {
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}
