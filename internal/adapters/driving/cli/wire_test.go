package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docspace/internal/adapters/driven/storage/jsonfile"
	"github.com/custodia-labs/docspace/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/docspace/internal/core/domain"
	"github.com/custodia-labs/docspace/internal/core/services"
)

func TestSnapshotPath(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "docs.json")

	got, err := snapshotPath(domain.StorageSettings{DataDir: "/data", SnapshotFile: abs})
	require.NoError(t, err)
	assert.Equal(t, abs, got)

	got, err = snapshotPath(domain.StorageSettings{DataDir: "/data", SnapshotFile: "documents.json"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/data", "documents.json"), got)

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	got, err = snapshotPath(domain.StorageSettings{SnapshotFile: "documents.json"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".docspace", "data", "documents.json"), got)
}

func TestOpenSnapshotStore(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	t.Run("memory", func(t *testing.T) {
		store, err := openSnapshotStore(ctx, domain.StorageSettings{Backend: domain.StorageBackendMemory})
		require.NoError(t, err)
		assert.IsType(t, &memory.SnapshotStore{}, store)
	})

	t.Run("file", func(t *testing.T) {
		store, err := openSnapshotStore(ctx, domain.StorageSettings{
			Backend:      domain.StorageBackendFile,
			DataDir:      dir,
			SnapshotFile: "documents.json",
		})
		require.NoError(t, err)
		defer store.Close()
		fs, ok := store.(*jsonfile.SnapshotStore)
		require.True(t, ok)
		assert.Equal(t, filepath.Join(dir, "documents.json"), fs.Path())
	})

	t.Run("sqlite", func(t *testing.T) {
		store, err := openSnapshotStore(ctx, domain.StorageSettings{
			Backend: domain.StorageBackendSQLite,
			DataDir: filepath.Join(dir, "db"),
		})
		require.NoError(t, err)
		defer store.Close()

		table, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, table)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := openSnapshotStore(ctx, domain.StorageSettings{Backend: "tape"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestWireServices_SeedsEmptyStore(t *testing.T) {
	setupTestServices(t, nil)
	documentService = nil
	cfg := memory.NewConfigStore()
	require.NoError(t, cfg.Set("storage.backend", "memory"))
	settings := services.NewSettingsService(cfg)
	settings.SetEnvLookup(func(string) (string, bool) { return "", false })
	settingsService = settings

	require.NoError(t, wireServices(context.Background()))

	require.NotNil(t, documentService)
	require.NotNil(t, searchService)
	require.NotNil(t, chatService)
	require.NotNil(t, closeServices)
	assert.Len(t, loadTable(t), 3)
}

func TestWireServices_SeedDisabled(t *testing.T) {
	setupTestServices(t, nil)
	documentService = nil
	cfg := memory.NewConfigStore()
	require.NoError(t, cfg.Set("storage.backend", "memory"))
	require.NoError(t, cfg.Set("seed.enabled", false))
	settings := services.NewSettingsService(cfg)
	settings.SetEnvLookup(func(string) (string, bool) { return "", false })
	settingsService = settings

	require.NoError(t, wireServices(context.Background()))

	assert.Empty(t, loadTable(t))
}

func TestSeedIfEmpty_NoSource(t *testing.T) {
	setupTestServices(t, nil)

	_, err := seedIfEmpty(context.Background(), nil)

	assert.EqualError(t, err, "seed source not configured")
}
