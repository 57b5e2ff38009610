package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docspace/internal/core/domain"
)

func TestParseImportBatch(t *testing.T) {
	payload := `{
		"mode": "merge",
		"documents": [
			{"id": 3, "title": "T", "category": "C", "summary": "S", "content": "B", "extra": true},
			{"title": "No id", "category": "C", "summary": "S", "content": "B"}
		]
	}`

	batch, err := ParseImportBatch([]byte(payload))

	require.NoError(t, err)
	assert.Equal(t, domain.ImportModeMerge, batch.Mode)
	require.Len(t, batch.Candidates, 2)

	id, ok := batch.Candidates[0].ID.Usable()
	assert.True(t, ok)
	assert.Equal(t, 3, id)
	assert.Equal(t, domain.DocumentInput{Title: "T", Category: "C", Summary: "S", Content: "B"}, batch.Candidates[0].Input)

	assert.False(t, batch.Candidates[1].ID.IsExplicit())
	assert.Equal(t, "No id", batch.Candidates[1].Input.Title)
}

func TestParseImportBatch_Errors(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantErr error
	}{
		{"not json", `{{{`, domain.ErrMalformedBatch},
		{"array instead of object", `[{"title":"x"}]`, domain.ErrMalformedBatch},
		{"string payload", `"merge"`, domain.ErrMalformedBatch},
		{"empty payload", ``, domain.ErrMalformedBatch},
		{"missing documents", `{"mode":"merge"}`, domain.ErrMalformedBatch},
		{"null documents", `{"mode":"merge","documents":null}`, domain.ErrMalformedBatch},
		{"documents not an array", `{"mode":"merge","documents":{"title":"x"}}`, domain.ErrMalformedBatch},
		{"item not an object", `{"mode":"merge","documents":[1, 2]}`, domain.ErrMalformedBatch},
		{"unknown mode", `{"mode":"upsert","documents":[]}`, domain.ErrInvalidInput},
		{"missing mode", `{"documents":[]}`, domain.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseImportBatch([]byte(tt.payload))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseImportBatch_EmptyDocuments(t *testing.T) {
	batch, err := ParseImportBatch([]byte(`{"mode":"replace","documents":[]}`))

	require.NoError(t, err)
	assert.Equal(t, domain.ImportModeReplace, batch.Mode)
	assert.Empty(t, batch.Candidates)
}

func TestParseCandidates_IDVariants(t *testing.T) {
	tests := []struct {
		name       string
		item       string
		wantExp    bool
		wantUsable bool
		wantID     int
	}{
		{"missing", `{}`, false, false, 0},
		{"null", `{"id": null}`, false, false, 0},
		{"fractional", `{"id": 1.5}`, false, false, 0},
		{"boolean", `{"id": true}`, false, false, 0},
		{"zero", `{"id": 0}`, true, false, 0},
		{"negative", `{"id": -2}`, true, false, 0},
		{"positive", `{"id": 12}`, true, true, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidates, err := ParseCandidates([]byte("[" + tt.item + "]"))
			require.NoError(t, err)
			require.Len(t, candidates, 1)

			c := candidates[0]
			assert.Equal(t, tt.wantExp, c.ID.IsExplicit())
			id, ok := c.ID.Usable()
			assert.Equal(t, tt.wantUsable, ok)
			if tt.wantUsable {
				assert.Equal(t, tt.wantID, id)
			}
		})
	}
}

func TestParseCandidates_MistypedFieldsFailValidationLater(t *testing.T) {
	candidates, err := ParseCandidates([]byte(`[{"title": 42, "category": "C", "summary": "S", "content": "B"}]`))

	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "", candidates[0].Input.Title)
	assert.ErrorIs(t, candidates[0].Input.Validate(), domain.ErrInvalidInput)
}

func TestParseCandidates_NotAnArray(t *testing.T) {
	_, err := ParseCandidates([]byte(`{"title":"x"}`))
	assert.ErrorIs(t, err, domain.ErrMalformedBatch)
}
