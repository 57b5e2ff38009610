package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/docspace/internal/adapters/driven/config/file"
	"github.com/custodia-labs/docspace/internal/adapters/driven/seed"
	"github.com/custodia-labs/docspace/internal/adapters/driven/storage/jsonfile"
	"github.com/custodia-labs/docspace/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/docspace/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/docspace/internal/core/domain"
	"github.com/custodia-labs/docspace/internal/core/ports/driven"
	"github.com/custodia-labs/docspace/internal/core/services"
	"github.com/custodia-labs/docspace/internal/logger"
)

// wireServices builds the services from the config file and environment.
func wireServices(ctx context.Context) error {
	if err := wireSettings(); err != nil {
		return err
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	store, err := openSnapshotStore(ctx, settings.Storage)
	if err != nil {
		return err
	}
	closeServices = store.Close

	docs := services.NewDocumentService(store)
	search := services.NewSearchService(store, settings.Search.TopK)
	documentService = docs
	searchService = search
	chatService = services.NewChatService(search)
	seedSource = seed.NewSource(settings.Seed.Path)

	if settings.Seed.Enabled {
		if _, err := seedIfEmpty(ctx, seedSource); err != nil {
			return err
		}
	}
	return nil
}

// wireSettings opens the config store. It is enough for the config commands.
func wireSettings() error {
	if settingsService != nil {
		return nil
	}
	if noConfig {
		logger.Debug("Config file disabled, settings come from defaults and environment")
		configPath = ""
		settingsService = services.NewSettingsService(memory.NewConfigStore())
		return nil
	}
	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("failed to open config: %w", err)
	}
	configPath = store.Path()
	settingsService = services.NewSettingsService(store)
	return nil
}

// openSnapshotStore opens the configured storage backend.
func openSnapshotStore(ctx context.Context, cfg domain.StorageSettings) (driven.SnapshotStore, error) {
	logger.Debug("Storage backend: %s", cfg.Backend)

	switch cfg.Backend {
	case domain.StorageBackendMemory:
		return memory.NewSnapshotStore(), nil

	case domain.StorageBackendSQLite:
		store, err := sqlite.NewStore(cfg.DataDir)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		logger.Debug("Database: %s", store.Path())
		return store.SnapshotStore(), nil

	case domain.StorageBackendFile:
		path, err := snapshotPath(cfg)
		if err != nil {
			return nil, err
		}
		store, err := jsonfile.NewSnapshotStore(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open snapshot file: %w", err)
		}
		logger.Debug("Snapshot file: %s", store.Path())
		if cfg.Watch {
			if err := store.Watch(ctx); err != nil {
				logger.Warn("File watching disabled: %v", err)
			}
		}
		return store, nil

	default:
		return nil, fmt.Errorf("%w: unknown storage backend %q", domain.ErrInvalidInput, cfg.Backend)
	}
}

// snapshotPath resolves the JSON snapshot location. An absolute SnapshotFile
// is used as is; otherwise it is placed in DataDir.
func snapshotPath(cfg domain.StorageSettings) (string, error) {
	if filepath.IsAbs(cfg.SnapshotFile) {
		return cfg.SnapshotFile, nil
	}
	dir := cfg.DataDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("getting home directory: %w", err)
		}
		dir = filepath.Join(home, ".docspace", "data")
	}
	return filepath.Join(dir, cfg.SnapshotFile), nil
}

// seedIfEmpty loads candidates from src and seeds an empty table with them.
func seedIfEmpty(ctx context.Context, src driven.SeedSource) (bool, error) {
	if src == nil {
		return false, errors.New("seed source not configured")
	}
	candidates, err := src.Candidates(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to read seed documents: %w", err)
	}
	seeded, err := documentService.SeedIfEmpty(ctx, candidates)
	if err != nil {
		return false, fmt.Errorf("failed to seed documents: %w", err)
	}
	if seeded {
		logger.Info("Seeded empty table with %d candidate documents", len(candidates))
	}
	return seeded, nil
}
