// Package watcher invalidates cached directory data when the backing
// database file changes on disk, for example after an import run in
// another process. Without it, cached college lists would serve stale
// data until their TTL elapsed.
package watcher

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/collegedex/collegedex-cli/internal/cache"
	"github.com/collegedex/collegedex-cli/internal/logger"
)

// Watcher watches one data file and invalidates the college cache
// category on writes. Invalidation cascades to the derived categories
// through the cache's dependency rules.
type Watcher struct {
	fsw   *fsnotify.Watcher
	cache *cache.Cache
	base  string
	done  chan struct{}
}

// New starts watching the data file at path. The parent directory is
// watched rather than the file itself so replace-by-rename imports
// are seen too.
func New(path string, c *cache.Cache) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(path), err)
	}

	w := &Watcher{
		fsw:   fsw,
		cache: c,
		base:  filepath.Base(path),
		done:  make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != w.base {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			logger.Info("Data file changed (%s), invalidating cached directory", event.Op)
			w.cache.InvalidateCategory(cache.CategoryColleges)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			logger.Warn("Watcher error: %v", err)
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fsw.Close()
}
