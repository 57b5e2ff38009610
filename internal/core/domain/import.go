package domain

import "fmt"

// ImportMode selects how an import batch is reconciled with the stored table.
type ImportMode string

// Available import modes.
const (
	// ImportModeMerge upserts the batch into the existing table.
	ImportModeMerge ImportMode = "merge"

	// ImportModeReplace discards the existing table in favour of the batch.
	ImportModeReplace ImportMode = "replace"
)

// IsValid returns true if the import mode is recognised.
func (m ImportMode) IsValid() bool {
	switch m {
	case ImportModeMerge, ImportModeReplace:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (m ImportMode) String() string {
	return string(m)
}

// ParseImportMode converts a string to an ImportMode.
func ParseImportMode(s string) (ImportMode, error) {
	m := ImportMode(s)
	if !m.IsValid() {
		return "", fmt.Errorf("%w: unknown import mode %q", ErrInvalidInput, s)
	}
	return m, nil
}

// ImportBatch is an ordered set of candidates plus the reconciliation mode.
// It only lives for the duration of one import call.
type ImportBatch struct {
	Mode       ImportMode
	Candidates []Candidate
}
