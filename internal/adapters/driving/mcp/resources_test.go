package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docspace/internal/core/domain"
)

func TestExtractDocumentID(t *testing.T) {
	tests := []struct {
		name   string
		uri    string
		wantID int
		wantOK bool
	}{
		{"valid document URI", "docspace://documents/42", 42, true},
		{"invalid prefix", "file://documents/42", 0, false},
		{"non-numeric id", "docspace://documents/abc", 0, false},
		{"zero id", "docspace://documents/0", 0, false},
		{"listing URI", "docspace://documents", 0, false},
		{"empty URI", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := extractDocumentID(tt.uri)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

// Helper to create a ReadResourceRequest with the given URI.
func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

func TestServer_handleDocumentsResource(t *testing.T) {
	ctx := context.Background()

	t.Run("nil document service returns empty list", func(t *testing.T) {
		server, err := NewServer(&Ports{Search: &mockSearchService{}})
		require.NoError(t, err)

		result, err := server.handleDocumentsResource(ctx, makeReadResourceRequest("docspace://documents"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "[]", result.Contents[0].Text)
	})

	t.Run("lists documents without content", func(t *testing.T) {
		ports := &Ports{Search: &mockSearchService{}, Document: &mockDocumentService{documents: sampleDocuments()}}
		server, err := NewServer(ports)
		require.NoError(t, err)

		result, err := server.handleDocumentsResource(ctx, makeReadResourceRequest("docspace://documents"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "application/json", result.Contents[0].MIMEType)

		var listed []map[string]any
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &listed))
		require.Len(t, listed, 2)
		assert.Equal(t, "Intro to React", listed[0]["title"])
		assert.Equal(t, "docspace://documents/1", listed[0]["uri"])
		assert.NotContains(t, listed[0], "content")
	})

	t.Run("returns error on list failure", func(t *testing.T) {
		ports := &Ports{Search: &mockSearchService{}, Document: &mockDocumentService{err: errors.New("database error")}}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, err = server.handleDocumentsResource(ctx, makeReadResourceRequest("docspace://documents"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "listing documents")
	})
}

func TestServer_handleDocumentResource(t *testing.T) {
	ctx := context.Background()

	t.Run("nil document service returns not found", func(t *testing.T) {
		server, err := NewServer(&Ports{Search: &mockSearchService{}})
		require.NoError(t, err)

		_, err = server.handleDocumentResource(ctx, makeReadResourceRequest("docspace://documents/1"))

		require.Error(t, err)
	})

	t.Run("invalid URI returns not found", func(t *testing.T) {
		ports := &Ports{Search: &mockSearchService{}, Document: &mockDocumentService{documents: sampleDocuments()}}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, err = server.handleDocumentResource(ctx, makeReadResourceRequest("docspace://documents/abc"))

		require.Error(t, err)
	})

	t.Run("unknown id returns not found", func(t *testing.T) {
		ports := &Ports{Search: &mockSearchService{}, Document: &mockDocumentService{documents: sampleDocuments()}}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, err = server.handleDocumentResource(ctx, makeReadResourceRequest("docspace://documents/99"))

		require.Error(t, err)
		assert.False(t, errors.Is(err, domain.ErrNotFound), "not found is reported as an MCP resource error")
	})

	t.Run("returns the document", func(t *testing.T) {
		ports := &Ports{Search: &mockSearchService{}, Document: &mockDocumentService{documents: sampleDocuments()}}
		server, err := NewServer(ports)
		require.NoError(t, err)

		result, err := server.handleDocumentResource(ctx, makeReadResourceRequest("docspace://documents/2"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)

		var got domain.Document
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &got))
		assert.Equal(t, sampleDocuments()[1], got)
	})

	t.Run("returns error on lookup failure", func(t *testing.T) {
		ports := &Ports{Search: &mockSearchService{}, Document: &mockDocumentService{err: errors.New("disk error")}}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, err = server.handleDocumentResource(ctx, makeReadResourceRequest("docspace://documents/1"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "getting document")
	})
}
