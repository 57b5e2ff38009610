package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"syscall"

	"github.com/custodia-labs/docspace/internal/core/domain"
	"github.com/custodia-labs/docspace/internal/core/ports/driven"
	"github.com/custodia-labs/docspace/internal/logger"
)

// Ensure SnapshotStore implements the interface.
var _ driven.SnapshotStore = (*SnapshotStore)(nil)

// ErrInvalidSnapshot indicates the snapshot file could not be decoded or
// holds documents that break the table invariants.
var ErrInvalidSnapshot = errors.New("invalid snapshot file")

// SnapshotStore persists the document table to a JSON file.
type SnapshotStore struct {
	path string

	mu     sync.RWMutex
	cache  domain.Table
	cached bool

	// stamp is the file state the cache was decoded from. A Load that finds
	// the file in any other state reads it again.
	stamp os.FileInfo
}

// NewSnapshotStore creates a store backed by the file at path.
// The parent directory is created if needed; the file itself is created on
// first Load.
func NewSnapshotStore(path string) (*SnapshotStore, error) {
	if path == "" {
		return nil, fmt.Errorf("snapshot path is required")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve snapshot path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return nil, fmt.Errorf("create snapshot directory: %w", err)
	}
	return &SnapshotStore{path: abs}, nil
}

// Path returns the snapshot file path.
func (s *SnapshotStore) Path() string {
	return s.path
}

// Load returns the stored table. A missing file is initialised to an empty
// list and an empty table is returned.
//
// The cached table is served only while the file is unchanged on disk, so
// writes made by another process are picked up on the next Load.
func (s *SnapshotStore) Load(_ context.Context) (domain.Table, error) {
	current, _ := os.Stat(s.path)

	s.mu.RLock()
	if s.fresh(current) {
		table := s.cache.Clone()
		s.mu.RUnlock()
		return table, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fresh(current) {
		return s.cache.Clone(), nil
	}

	table, info, err := s.read()
	if errors.Is(err, os.ErrNotExist) {
		logger.Debug("Snapshot %s missing, initialising empty table", s.path)
		if err := writeAtomic(s.path, domain.Table{}); err != nil {
			return nil, fmt.Errorf("initialise snapshot: %w", err)
		}
		table = domain.Table{}
		info, _ = os.Stat(s.path)
	} else if err != nil {
		return nil, err
	}

	s.remember(table, info)
	return table.Clone(), nil
}

// ReplaceAll overwrites the snapshot file with table.
func (s *SnapshotStore) ReplaceAll(_ context.Context, table domain.Table) error {
	if err := table.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := writeAtomic(s.path, table); err != nil {
		s.forget()
		return fmt.Errorf("write snapshot: %w", err)
	}
	info, _ := os.Stat(s.path)
	s.remember(table.Clone(), info)
	return nil
}

// Invalidate drops the cached table so the next Load reads the file.
func (s *SnapshotStore) Invalidate() {
	s.mu.Lock()
	s.forget()
	s.mu.Unlock()
}

// Close releases the cache.
func (s *SnapshotStore) Close() error {
	s.Invalidate()
	return nil
}

// fresh reports whether the cache still matches the file described by
// current. Caller must hold mu.
func (s *SnapshotStore) fresh(current os.FileInfo) bool {
	if !s.cached || s.stamp == nil || current == nil {
		return false
	}
	return os.SameFile(s.stamp, current) &&
		s.stamp.Size() == current.Size() &&
		s.stamp.ModTime().Equal(current.ModTime())
}

// remember caches table as the content of the file described by info.
// Without info the table is not cached. Caller must hold mu.
func (s *SnapshotStore) remember(table domain.Table, info os.FileInfo) {
	if info == nil {
		s.forget()
		return
	}
	s.cache = table
	s.stamp = info
	s.cached = true
}

// forget drops the cache. Caller must hold mu.
func (s *SnapshotStore) forget() {
	s.cache = nil
	s.stamp = nil
	s.cached = false
}

// read decodes and validates the snapshot file and returns the file state
// it was read from. Caller must hold mu.
func (s *SnapshotStore) read() (domain.Table, os.FileInfo, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, nil, err
	}
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, nil, err
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return domain.Table{}, info, nil
	}

	var table domain.Table
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %v", ErrInvalidSnapshot, s.path, err)
	}
	if table == nil {
		table = domain.Table{}
	}
	if err := table.Validate(); err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %v", ErrInvalidSnapshot, s.path, err)
	}
	return table, info, nil
}

// writeAtomic writes table to a temporary file, syncs it and renames it over path.
func writeAtomic(path string, table domain.Table) error {
	if table == nil {
		table = domain.Table{}
	}
	data, err := json.MarshalIndent(table, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	tmp := path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	// The rename is durable only once the directory entry is synced.
	_ = syncDir(filepath.Dir(path))
	return nil
}

// syncDir fsyncs a directory. Platforms that cannot sync directories are ignored.
func syncDir(dir string) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	df, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer df.Close()
	if err := df.Sync(); err != nil {
		if errors.Is(err, syscall.ENOTSUP) || errors.Is(err, syscall.EINVAL) {
			return nil
		}
		return err
	}
	return nil
}
