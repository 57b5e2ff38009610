package jsonfile

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/docspace/internal/logger"
)

// invalidatingOps are the operations after which the cached table may be stale.
const invalidatingOps = fsnotify.Create | fsnotify.Write | fsnotify.Remove | fsnotify.Rename

// Watch invalidates the cache whenever the snapshot file changes on disk.
// The parent directory is watched so atomic replacements by editors and by
// other docspace processes are seen. Watching stops when ctx is cancelled.
func (s *SnapshotStore) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(s.path)); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("watch %s: %w", filepath.Dir(s.path), err)
	}

	logger.Debug("Watching %s for external changes", s.path)

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if s.handleFsEvent(event) {
					logger.Debug("Snapshot changed on disk (%s), cache invalidated", event.Op)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("Snapshot watcher error: %v", err)
			}
		}
	}()

	return nil
}

// handleFsEvent invalidates the cache when event touches the snapshot file.
// It reports whether the cache was dropped.
func (s *SnapshotStore) handleFsEvent(event fsnotify.Event) bool {
	if filepath.Base(event.Name) != filepath.Base(s.path) {
		return false
	}
	if event.Op&invalidatingOps == 0 {
		return false
	}
	s.Invalidate()
	return true
}
