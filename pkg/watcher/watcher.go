// Package watcher reports changes to individual files, debounced.
package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is long enough to merge the write bursts editors produce on save.
const DefaultDebounce = 200 * time.Millisecond

// Watcher calls a handler after a watched file has settled. The parent directory
// is watched, so files replaced by rename keep being tracked.
type Watcher struct {
	fs       *fsnotify.Watcher
	logger   *slog.Logger
	debounce time.Duration

	mu       sync.Mutex
	handlers map[string]func(string)
	timers   map[string]*time.Timer
	dirs     map[string]int
	closed   bool
}

// New creates a watcher. A nil logger means slog.Default.
func New(debounce time.Duration, logger *slog.Logger) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	return &Watcher{
		fs:       fs,
		logger:   logger,
		debounce: debounce,
		handlers: make(map[string]func(string)),
		timers:   make(map[string]*time.Timer),
		dirs:     make(map[string]int),
	}, nil
}

// Watch registers fn for path, replacing any earlier handler.
func (w *Watcher) Watch(path string, fn func(path string)) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve path %s: %w", path, err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.handlers[abs]; !ok {
		dir := filepath.Dir(abs)
		if w.dirs[dir] == 0 {
			if err := w.fs.Add(dir); err != nil {
				return fmt.Errorf("failed to watch %s: %w", dir, err)
			}
		}
		w.dirs[dir]++
	}
	w.handlers[abs] = fn
	w.logger.Debug("watching file", "path", abs)
	return nil
}

// Unwatch drops the handler for path.
func (w *Watcher) Unwatch(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve path %s: %w", path, err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.handlers[abs]; !ok {
		return nil
	}
	delete(w.handlers, abs)
	if t, ok := w.timers[abs]; ok {
		t.Stop()
		delete(w.timers, abs)
	}

	dir := filepath.Dir(abs)
	w.dirs[dir]--
	if w.dirs[dir] == 0 {
		delete(w.dirs, dir)
		return w.fs.Remove(dir)
	}
	return nil
}

// Run dispatches events until ctx is cancelled or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				w.schedule(filepath.Clean(event.Name))
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watcher error", "error", err)
		}
	}
}

// Start runs the dispatch loop in its own goroutine.
func (w *Watcher) Start(ctx context.Context) {
	go w.Run(ctx)
}

func (w *Watcher) schedule(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	fn, ok := w.handlers[path]
	if !ok || w.closed {
		return
	}

	if t, ok := w.timers[path]; ok {
		t.Stop()
	}
	w.timers[path] = time.AfterFunc(w.debounce, func() {
		w.logger.Debug("file changed", "path", path)
		fn(path)
	})
}

// Close stops the watcher and cancels pending callbacks.
func (w *Watcher) Close() error {
	w.mu.Lock()
	w.closed = true
	for path, t := range w.timers {
		t.Stop()
		delete(w.timers, path)
	}
	w.mu.Unlock()

	return w.fs.Close()
}
