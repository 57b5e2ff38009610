package services

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/custodia-labs/docspace/internal/core/domain"
)

// importPayload is the wire shape of a bulk import request.
type importPayload struct {
	Mode      string          `json:"mode"`
	Documents json.RawMessage `json:"documents"`
}

// ParseImportBatch decodes a bulk import request of the form
// {"mode": "merge"|"replace", "documents": [...]}.
//
// The payload as a whole must be an object whose documents field is an array
// of objects, otherwise domain.ErrMalformedBatch is returned. Individual items
// with missing or mistyped fields are kept here and dropped during reconciliation.
func ParseImportBatch(data []byte) (domain.ImportBatch, error) {
	if !isJSONObject(data) {
		return domain.ImportBatch{}, fmt.Errorf("%w: payload must be an object", domain.ErrMalformedBatch)
	}

	var payload importPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return domain.ImportBatch{}, fmt.Errorf("%w: %v", domain.ErrMalformedBatch, err)
	}

	mode, err := domain.ParseImportMode(payload.Mode)
	if err != nil {
		return domain.ImportBatch{}, err
	}

	if len(payload.Documents) == 0 {
		return domain.ImportBatch{}, fmt.Errorf("%w: documents is required", domain.ErrMalformedBatch)
	}

	candidates, err := ParseCandidates(payload.Documents)
	if err != nil {
		return domain.ImportBatch{}, err
	}

	return domain.ImportBatch{Mode: mode, Candidates: candidates}, nil
}

// ParseCandidates decodes a JSON array of document-like objects.
// Anything that is not an array of objects is domain.ErrMalformedBatch.
func ParseCandidates(data []byte) ([]domain.Candidate, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil || items == nil {
		return nil, fmt.Errorf("%w: documents must be an array", domain.ErrMalformedBatch)
	}

	candidates := make([]domain.Candidate, 0, len(items))
	for i, item := range items {
		c, err := parseCandidate(item)
		if err != nil {
			return nil, fmt.Errorf("%w: item %d: %v", domain.ErrMalformedBatch, i, err)
		}
		candidates = append(candidates, c)
	}
	return candidates, nil
}

// parseCandidate decodes one object. Fields of the wrong type are left empty
// so the item fails validation later instead of failing the whole batch.
func parseCandidate(item json.RawMessage) (domain.Candidate, error) {
	if !isJSONObject(item) {
		return domain.Candidate{}, fmt.Errorf("not an object")
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(item, &fields); err != nil {
		return domain.Candidate{}, err
	}

	return domain.Candidate{
		ID: parseCandidateID(fields["id"]),
		Input: domain.DocumentInput{
			Title:    stringField(fields["title"]),
			Category: stringField(fields["category"]),
			Summary:  stringField(fields["summary"]),
			Content:  stringField(fields["content"]),
		},
	}, nil
}

// parseCandidateID maps a missing, null or non-integer id to NoID.
func parseCandidateID(raw json.RawMessage) domain.CandidateID {
	if len(raw) == 0 {
		return domain.NoID()
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return domain.NoID()
	}
	v, err := n.Int64()
	if err != nil {
		return domain.NoID()
	}
	return domain.ExplicitID(int(v))
}

func stringField(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

func isJSONObject(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) > 0 && trimmed[0] == '{'
}
