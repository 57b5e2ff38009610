package cli

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docspace/internal/core/domain"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func loadTable(t *testing.T) []domain.Document {
	t.Helper()
	docs, err := documentService.List(context.Background())
	require.NoError(t, err)
	return docs
}

func TestDocumentList(t *testing.T) {
	setupTestServices(t, sampleTable())

	out, err := executeCommand(t, "document", "list")

	require.NoError(t, err)
	assert.Contains(t, out, "  [1] Cats\n")
	assert.Contains(t, out, "      Pets · All about cats\n")
	assert.Contains(t, out, "  [3] Go Modules\n")
	assert.Contains(t, out, "Total: 3 documents")
}

func TestDocumentList_Empty(t *testing.T) {
	setupTestServices(t, nil)

	out, err := executeCommand(t, "docs", "list")

	require.NoError(t, err)
	assert.Equal(t, "No documents found.\n", out)
}

func TestDocumentGet(t *testing.T) {
	setupTestServices(t, sampleTable())

	out, err := executeCommand(t, "document", "get", "2")

	require.NoError(t, err)
	assert.Contains(t, out, "Document 2")
	assert.Contains(t, out, "Dogs")
	assert.Contains(t, out, "Dogs are loyal.")
}

func TestDocumentGet_Errors(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want string
	}{
		{name: "missing", id: "42", want: "not found"},
		{name: "not a number", id: "abc", want: "invalid document id"},
		{name: "zero", id: "0", want: "invalid document id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestServices(t, sampleTable())

			_, err := executeCommand(t, "document", "get", tt.id)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestDocumentCreate_Flags(t *testing.T) {
	setupTestServices(t, sampleTable())

	out, err := executeCommand(t, "document", "create",
		"--title", "Fish", "--category", "Pets", "--summary", "All about fish", "--content", "Fish swim.")

	require.NoError(t, err)
	assert.Equal(t, "Created document 4: Fish\n", out)
	docs := loadTable(t)
	require.Len(t, docs, 4)
	assert.Equal(t, "Fish swim.", docs[3].Content)
}

func TestDocumentCreate_File(t *testing.T) {
	setupTestServices(t, nil)
	path := writeFile(t, "doc.json",
		`{"title":"Intro","category":"General","summary":"Getting started","content":"Welcome."}`)

	out, err := executeCommand(t, "document", "create", "--file", path, "--title", "Welcome")

	require.NoError(t, err)
	assert.Equal(t, "Created document 1: Welcome\n", out)
	assert.Equal(t, "General", loadTable(t)[0].Category)
}

func TestDocumentCreate_Invalid(t *testing.T) {
	setupTestServices(t, sampleTable())

	_, err := executeCommand(t, "document", "create", "--title", "Only a title")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Len(t, loadTable(t), 3)
}

func TestDocumentUpdate_KeepsUnsetFields(t *testing.T) {
	setupTestServices(t, sampleTable())

	out, err := executeCommand(t, "document", "update", "1", "--title", "Big Cats")

	require.NoError(t, err)
	assert.Equal(t, "Updated document 1: Big Cats\n", out)
	doc := loadTable(t)[0]
	assert.Equal(t, "Big Cats", doc.Title)
	assert.Equal(t, "Pets", doc.Category)
	assert.Equal(t, "Cats are small felines.", doc.Content)
}

func TestDocumentUpdate_Missing(t *testing.T) {
	setupTestServices(t, sampleTable())

	_, err := executeCommand(t, "document", "update", "9", "--title", "Nope")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDocumentDelete(t *testing.T) {
	setupTestServices(t, sampleTable())

	out, err := executeCommand(t, "document", "delete", "3")
	require.NoError(t, err)
	assert.Equal(t, "Deleted document 3\n", out)
	assert.Len(t, loadTable(t), 2)

	_, err = executeCommand(t, "document", "delete", "3")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDocumentExport_Stdout(t *testing.T) {
	setupTestServices(t, sampleTable())

	out, err := executeCommand(t, "document", "export")
	require.NoError(t, err)

	var docs []domain.Document
	require.NoError(t, json.Unmarshal([]byte(out), &docs))
	assert.Equal(t, []domain.Document(sampleTable()), docs)
}

func TestDocumentExport_EmptyIsList(t *testing.T) {
	setupTestServices(t, nil)

	out, err := executeCommand(t, "document", "export")

	require.NoError(t, err)
	assert.Equal(t, "[]\n", out)
}

func TestDocumentExport_File(t *testing.T) {
	setupTestServices(t, sampleTable())
	path := filepath.Join(t.TempDir(), "export.json")

	out, err := executeCommand(t, "document", "export", "-o", path)
	require.NoError(t, err)
	assert.Equal(t, "Exported 3 documents to "+path+"\n", out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var docs []domain.Document
	require.NoError(t, json.Unmarshal(data, &docs))
	assert.Len(t, docs, 3)
}

func TestDocumentImport_MergePayload(t *testing.T) {
	setupTestServices(t, sampleTable())
	path := writeFile(t, "import.json", `{"mode":"merge","documents":[
		{"id":2,"title":"Wolves","category":"Wild","summary":"Wild dogs","content":"Wolves howl."},
		{"title":"Fish","category":"Pets","summary":"All about fish","content":"Fish swim."},
		{"title":"","category":"Pets","summary":"blank","content":"dropped"}
	]}`)

	out, err := executeCommand(t, "document", "import", path)

	require.NoError(t, err)
	assert.Equal(t, "Imported 3 candidates (merge). Workspace now holds 4 documents.\n", out)
	docs := loadTable(t)
	assert.Equal(t, "Wolves", docs[1].Title)
	assert.Equal(t, 4, docs[3].ID)
}

func TestDocumentImport_ExportRoundTrip(t *testing.T) {
	setupTestServices(t, sampleTable())
	path := filepath.Join(t.TempDir(), "export.json")
	_, err := executeCommand(t, "document", "export", "-o", path)
	require.NoError(t, err)
	resetFlags()

	out, err := executeCommand(t, "document", "import", path, "--mode", "replace", "--yes")

	require.NoError(t, err)
	assert.Contains(t, out, "(replace)")
	assert.Equal(t, []domain.Document(sampleTable()), loadTable(t))
}

func TestDocumentImport_ReplaceNeedsConfirmation(t *testing.T) {
	setupTestServices(t, sampleTable())
	prev := stdin
	stdin = strings.NewReader("y\n")
	t.Cleanup(func() { stdin = prev })
	path := writeFile(t, "import.json",
		`{"mode":"replace","documents":[{"title":"A","category":"B","summary":"C","content":"D"}]}`)

	_, err := executeCommand(t, "document", "import", path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "--yes")
	assert.Len(t, loadTable(t), 3)
}

func TestDocumentImport_ModeFlagOverridesPayload(t *testing.T) {
	setupTestServices(t, sampleTable())
	path := writeFile(t, "import.json",
		`{"mode":"replace","documents":[{"title":"A","category":"B","summary":"C","content":"D"}]}`)

	out, err := executeCommand(t, "document", "import", path, "--mode", "merge")

	require.NoError(t, err)
	assert.Contains(t, out, "Workspace now holds 4 documents.")
}

func TestDocumentImport_Malformed(t *testing.T) {
	setupTestServices(t, sampleTable())
	path := writeFile(t, "import.json", `{"mode":"merge","documents":"nope"}`)

	_, err := executeCommand(t, "document", "import", path)

	assert.ErrorIs(t, err, domain.ErrMalformedBatch)
	assert.Len(t, loadTable(t), 3)
}

func TestDocumentSeed(t *testing.T) {
	setupTestServices(t, nil)

	out, err := executeCommand(t, "document", "seed")
	require.NoError(t, err)
	assert.Equal(t, "Seeded 3 documents.\n", out)

	out, err = executeCommand(t, "document", "seed")
	require.NoError(t, err)
	assert.Equal(t, "Workspace already has documents; nothing seeded.\n", out)
}

func TestDocumentSeed_File(t *testing.T) {
	setupTestServices(t, nil)
	path := writeFile(t, "seed.yaml", `
- title: Runbook
  category: Ops
  summary: On-call steps
  content: Page the owner.
- title: ""
  category: Ops
  summary: invalid
  content: skipped
`)

	out, err := executeCommand(t, "document", "seed", "--file", path)

	require.NoError(t, err)
	assert.Equal(t, "Seeded 1 documents.\n", out)
	assert.Equal(t, "Runbook", loadTable(t)[0].Title)
}

func TestParseImportFile(t *testing.T) {
	list := []byte(`[{"id":1,"title":"A","category":"B","summary":"C","content":"D"}]`)
	payload := []byte(`{"mode":"replace","documents":[{"title":"A","category":"B","summary":"C","content":"D"}]}`)

	t.Run("bare list uses flag mode", func(t *testing.T) {
		batch, err := parseImportFile(list, "replace", false)
		require.NoError(t, err)
		assert.Equal(t, domain.ImportModeReplace, batch.Mode)
		require.Len(t, batch.Candidates, 1)
		id, ok := batch.Candidates[0].ID.Usable()
		assert.True(t, ok)
		assert.Equal(t, 1, id)
	})

	t.Run("payload keeps its mode by default", func(t *testing.T) {
		batch, err := parseImportFile(payload, "merge", false)
		require.NoError(t, err)
		assert.Equal(t, domain.ImportModeReplace, batch.Mode)
	})

	t.Run("explicit flag overrides payload", func(t *testing.T) {
		batch, err := parseImportFile(payload, "merge", true)
		require.NoError(t, err)
		assert.Equal(t, domain.ImportModeMerge, batch.Mode)
	})

	t.Run("unknown mode", func(t *testing.T) {
		_, err := parseImportFile(list, "upsert", false)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("not json", func(t *testing.T) {
		_, err := parseImportFile([]byte("hello"), "merge", false)
		assert.ErrorIs(t, err, domain.ErrMalformedBatch)
	})
}

func TestDocumentImport_Directory(t *testing.T) {
	setupTestServices(t, sampleTable())
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "Ops"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "Ops", "runbook.md"),
		[]byte("# Runbook\n\nPage the owner."), 0o600))

	out, err := executeCommand(t, "document", "import", root)

	require.NoError(t, err)
	assert.Equal(t, "Imported 1 candidates (merge). Workspace now holds 4 documents.\n", out)
	doc := loadTable(t)[3]
	assert.Equal(t, 4, doc.ID)
	assert.Equal(t, "Runbook", doc.Title)
	assert.Equal(t, "Ops", doc.Category)
}
