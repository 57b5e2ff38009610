package services

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/docspace/internal/core/domain"
	"github.com/custodia-labs/docspace/internal/core/ports/driven"
	"github.com/custodia-labs/docspace/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyStorageBackend = "storage.backend"
	keyStorageDataDir = "storage.data_dir"
	keySnapshotFile   = "storage.snapshot_file"
	keyStorageWatch   = "storage.watch"
	keySeedEnabled    = "seed.enabled"
	keySeedPath       = "seed.path"
	keySearchTopK     = "search.top_k"
	keyServerAddr     = "server.addr"
	keyServerOrigins  = "server.allowed_origins"
	keyRateLimit      = "server.rate_limit"
	keyRateWindow     = "server.rate_window"
	keyMaxBodyBytes   = "server.max_body_bytes"
)

// Environment variables that override the config file.
// DATA_FILE, PORT and FRONTEND_URL keep the names earlier deployments used.
const (
	envStorageBackend = "DOCSPACE_STORAGE_BACKEND"
	envDataDir        = "DOCSPACE_DATA_DIR"
	envDataFile       = "DATA_FILE"
	envSeedPath       = "DOCSPACE_SEED_PATH"
	envAddr           = "DOCSPACE_ADDR"
	envPort           = "PORT"
	envFrontendURL    = "FRONTEND_URL"
)

var settingKeys = []string{
	keyStorageBackend,
	keyStorageDataDir,
	keySnapshotFile,
	keyStorageWatch,
	keySeedEnabled,
	keySeedPath,
	keySearchTopK,
	keyServerAddr,
	keyServerOrigins,
	keyRateLimit,
	keyRateWindow,
	keyMaxBodyBytes,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
	lookupEnv   func(string) (string, bool)
}

// NewSettingsService creates a new settings service reading the process environment.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		lookupEnv:   os.LookupEnv,
	}
}

// SetEnvLookup replaces the environment lookup. Useful for testing.
func (s *SettingsService) SetEnvLookup(lookup func(string) (string, bool)) {
	s.lookupEnv = lookup
}

// Get returns the effective settings.
func (s *SettingsService) Get() (*domain.Settings, error) {
	defaults := domain.DefaultSettings()

	settings := &domain.Settings{
		Storage: domain.StorageSettings{
			Backend:      s.getBackend(defaults.Storage.Backend),
			DataDir:      s.getString(keyStorageDataDir, defaults.Storage.DataDir),
			SnapshotFile: s.getString(keySnapshotFile, defaults.Storage.SnapshotFile),
			Watch:        s.getBool(keyStorageWatch, defaults.Storage.Watch),
		},
		Seed: domain.SeedSettings{
			Enabled: s.getBool(keySeedEnabled, defaults.Seed.Enabled),
			Path:    s.getString(keySeedPath, defaults.Seed.Path),
		},
		Search: domain.SearchSettings{
			TopK: s.getInt(keySearchTopK, defaults.Search.TopK),
		},
		Server: domain.ServerSettings{
			Addr:           s.getString(keyServerAddr, defaults.Server.Addr),
			AllowedOrigins: s.getStringSlice(keyServerOrigins, defaults.Server.AllowedOrigins),
			RateLimit:      s.getInt(keyRateLimit, defaults.Server.RateLimit),
			RateWindow:     s.getDuration(keyRateWindow, defaults.Server.RateWindow),
			MaxBodyBytes:   int64(s.getInt(keyMaxBodyBytes, int(defaults.Server.MaxBodyBytes))),
		},
	}

	s.applyEnv(settings)

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// Set validates and persists a single config key.
func (s *SettingsService) Set(key, value string) error {
	var stored any
	switch key {
	case keyStorageBackend:
		backend := domain.StorageBackend(value)
		if !backend.IsValid() {
			return fmt.Errorf("%w: unknown storage backend %q", domain.ErrInvalidInput, value)
		}
		stored = backend.String()
	case keyStorageDataDir, keySnapshotFile, keySeedPath, keyServerAddr:
		stored = value
	case keyStorageWatch, keySeedEnabled:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s expects true or false", domain.ErrInvalidInput, key)
		}
		stored = b
	case keySearchTopK, keyRateLimit, keyMaxBodyBytes:
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("%w: %s expects a positive integer", domain.ErrInvalidInput, key)
		}
		stored = n
	case keyRateWindow:
		d, err := time.ParseDuration(value)
		if err != nil || d <= 0 {
			return fmt.Errorf("%w: %s expects a duration such as 15m", domain.ErrInvalidInput, key)
		}
		stored = d.String()
	case keyServerOrigins:
		stored = splitList(value)
	default:
		return fmt.Errorf("%w: unknown config key %q", domain.ErrInvalidInput, key)
	}
	return s.configStore.Set(key, stored)
}

// Keys lists the recognised config keys.
func (s *SettingsService) Keys() []string {
	out := make([]string, len(settingKeys))
	copy(out, settingKeys)
	return out
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.Settings {
	return domain.DefaultSettings()
}

// applyEnv overlays environment variables on top of file settings.
func (s *SettingsService) applyEnv(settings *domain.Settings) {
	if s.lookupEnv == nil {
		return
	}
	if v, ok := s.lookupEnv(envStorageBackend); ok && v != "" {
		settings.Storage.Backend = domain.StorageBackend(v)
	}
	if v, ok := s.lookupEnv(envDataDir); ok && v != "" {
		settings.Storage.DataDir = v
	}
	if v, ok := s.lookupEnv(envDataFile); ok && v != "" {
		settings.Storage.SnapshotFile = v
	}
	if v, ok := s.lookupEnv(envSeedPath); ok && v != "" {
		settings.Seed.Path = v
	}
	if v, ok := s.lookupEnv(envPort); ok && v != "" {
		settings.Server.Addr = ":" + v
	}
	if v, ok := s.lookupEnv(envAddr); ok && v != "" {
		settings.Server.Addr = v
	}
	if v, ok := s.lookupEnv(envFrontendURL); ok && v != "" {
		settings.Server.AllowedOrigins = append(settings.Server.AllowedOrigins, v)
	}
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val == 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getStringSlice(key string, defaultVal []string) []string {
	val := s.configStore.GetStringSlice(key)
	if val == nil {
		return append([]string(nil), defaultVal...)
	}
	return val
}

func (s *SettingsService) getDuration(key string, defaultVal time.Duration) time.Duration {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}
	return d
}

func (s *SettingsService) getBackend(defaultVal domain.StorageBackend) domain.StorageBackend {
	val := s.configStore.GetString(keyStorageBackend)
	if val == "" {
		return defaultVal
	}
	backend := domain.StorageBackend(val)
	if !backend.IsValid() {
		return defaultVal
	}
	return backend
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
