package catalog

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/fsnotify/fsnotify"
)

const (
	// Editors and atomic-save tools replace files rather than writing in
	// place, so the first read after a change event can catch a partial or
	// missing file. Reloads retry briefly before giving up.
	reloadAttempts = 5
	reloadDelay    = 50 * time.Millisecond
)

// Watcher keeps an in-memory catalog in sync with a resource file on disk.
//
// Each successful reload swaps in a fresh immutable snapshot; a reload that
// fails to parse or validate keeps the previous snapshot. The watcher never
// mutates a catalog it has handed out.
type Watcher struct {
	path   string
	logger *slog.Logger
	fsw    *fsnotify.Watcher

	mu        sync.RWMutex
	catalog   Catalog
	callbacks []func(Catalog)

	done      chan struct{}
	closeOnce sync.Once
}

// NewWatcher loads the catalog at path and starts watching it for changes.
// The initial load must succeed. Callers should Close the watcher when done.
func NewWatcher(path string, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve catalog path: %w", err)
	}

	initial, err := LoadFile(abs)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	// Watch the parent directory so rename-style saves are still seen.
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch catalog directory: %w", err)
	}

	w := &Watcher{
		path:    abs,
		logger:  logger,
		fsw:     fsw,
		catalog: initial,
		done:    make(chan struct{}),
	}
	go w.run()

	return w, nil
}

// Catalog returns the current snapshot.
func (w *Watcher) Catalog() Catalog {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.catalog
}

// OnChange registers a callback invoked with each new snapshot.
func (w *Watcher) OnChange(fn func(Catalog)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.callbacks = append(w.callbacks, fn)
}

// Close stops watching. The last snapshot remains readable.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.fsw.Close()
	})
	return err
}

func (w *Watcher) run() {
	base := filepath.Base(w.path)
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != base {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.reload()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("catalog watcher error", "error", err)
		case <-w.done:
			return
		}
	}
}

// reload reads the resource and swaps in the new snapshot on success.
func (w *Watcher) reload() {
	var fresh Catalog
	err := retry.Do(
		func() error {
			c, err := LoadFile(w.path)
			if err != nil {
				return err
			}
			fresh = c
			return nil
		},
		retry.Attempts(reloadAttempts),
		retry.Delay(reloadDelay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		w.logger.Warn("catalog reload failed, keeping previous snapshot",
			"path", w.path, "error", err)
		return
	}

	w.mu.Lock()
	w.catalog = fresh
	callbacks := make([]func(Catalog), len(w.callbacks))
	copy(callbacks, w.callbacks)
	w.mu.Unlock()

	w.logger.Info("catalog reloaded",
		"path", w.path, "genres", fresh.Len(), "ideas", fresh.IdeaCount())

	for _, fn := range callbacks {
		fn(fresh)
	}
}
