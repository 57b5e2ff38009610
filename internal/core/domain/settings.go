package domain

import (
	"fmt"
	"time"
)

const unknownDescription = "Unknown"

// StorageBackend identifies the snapshot store implementation.
type StorageBackend string

// Available storage backends.
const (
	// StorageBackendFile keeps the table in a JSON file.
	StorageBackendFile StorageBackend = "file"

	// StorageBackendSQLite keeps the table in an SQLite database.
	StorageBackendSQLite StorageBackend = "sqlite"

	// StorageBackendMemory keeps the table in process memory only.
	StorageBackendMemory StorageBackend = "memory"
)

// IsValid returns true if the storage backend is recognised.
func (b StorageBackend) IsValid() bool {
	switch b {
	case StorageBackendFile, StorageBackendSQLite, StorageBackendMemory:
		return true
	default:
		return false
	}
}

// IsDurable returns true if data survives a process restart.
func (b StorageBackend) IsDurable() bool {
	return b == StorageBackendFile || b == StorageBackendSQLite
}

// String returns the string representation.
func (b StorageBackend) String() string {
	return string(b)
}

// Description returns a human-readable description of the backend.
func (b StorageBackend) Description() string {
	switch b {
	case StorageBackendFile:
		return "JSON file"
	case StorageBackendSQLite:
		return "SQLite database"
	case StorageBackendMemory:
		return "In-memory (not persisted)"
	default:
		return unknownDescription
	}
}

// StorageSettings configures where the document table lives.
type StorageSettings struct {
	// Backend selects the snapshot store.
	Backend StorageBackend

	// DataDir is the directory holding the snapshot. Empty means ~/.docspace/data.
	DataDir string

	// SnapshotFile is the JSON file name (or absolute path) for the file backend.
	SnapshotFile string

	// Watch invalidates the file backend's cache when the file changes on disk.
	Watch bool
}

// SeedSettings configures the one-time seed of an empty table.
type SeedSettings struct {
	// Enabled runs the seed on startup.
	Enabled bool

	// Path is a JSON or YAML seed file. Empty uses the built-in starter set.
	Path string
}

// SearchSettings holds retrieval behaviour configuration.
type SearchSettings struct {
	// TopK is the default number of results returned.
	TopK int
}

// ServerSettings configures the HTTP API.
type ServerSettings struct {
	// Addr is the listen address, e.g. ":8000".
	Addr string

	// AllowedOrigins lists the origins permitted by CORS.
	AllowedOrigins []string

	// RateLimit is the number of API requests allowed per RateWindow per client.
	RateLimit int

	// RateWindow is the period over which RateLimit applies.
	RateWindow time.Duration

	// MaxBodyBytes bounds request bodies.
	MaxBodyBytes int64
}

// Settings is the complete application configuration.
type Settings struct {
	Storage StorageSettings
	Seed    SeedSettings
	Search  SearchSettings
	Server  ServerSettings
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		Storage: StorageSettings{
			Backend:      StorageBackendFile,
			SnapshotFile: "documents.json",
		},
		Seed: SeedSettings{
			Enabled: true,
		},
		Search: SearchSettings{
			TopK: DefaultTopK,
		},
		Server: ServerSettings{
			Addr:           ":8000",
			AllowedOrigins: []string{"http://localhost:5173", "http://localhost:5174"},
			RateLimit:      100,
			RateWindow:     15 * time.Minute,
			MaxBodyBytes:   1 << 20,
		},
	}
}

// Validate checks the settings for values the application cannot run with.
func (s Settings) Validate() error {
	if !s.Storage.Backend.IsValid() {
		return fmt.Errorf("%w: unknown storage backend %q", ErrInvalidInput, s.Storage.Backend)
	}
	if s.Storage.Backend == StorageBackendFile && s.Storage.SnapshotFile == "" {
		return fmt.Errorf("%w: snapshot file is required for the file backend", ErrInvalidInput)
	}
	if s.Search.TopK <= 0 {
		return fmt.Errorf("%w: search top_k must be positive", ErrInvalidInput)
	}
	if s.Server.RateLimit < 0 || s.Server.RateWindow < 0 {
		return fmt.Errorf("%w: rate limit must not be negative", ErrInvalidInput)
	}
	if s.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("%w: max body bytes must be positive", ErrInvalidInput)
	}
	return nil
}
