// Package watch reports debounced changes to a single file.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ChangeEvent represents a single filesystem change to the watched file.
type ChangeEvent struct {
	Path string
	Op   fsnotify.Op
}

// Watcher watches one file and emits debounced batches of its changes.
// The parent directory is watched so that editors which save by renaming a
// temporary file over the original are still observed.
type Watcher struct {
	path     string
	debounce time.Duration
	logger   *slog.Logger
	fsw      *fsnotify.Watcher
}

// NewWatcher creates a Watcher for path.
func NewWatcher(path string, debounce time.Duration, logger *slog.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{
		path:     abs,
		debounce: debounce,
		logger:   logger,
		fsw:      fsw,
	}, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Run is the main event loop. It reads fsnotify events, keeps those for the
// watched file, coalesces rapid edits into one event and sends batches to out.
// It blocks until ctx is cancelled or the underlying watcher is closed.
func (w *Watcher) Run(ctx context.Context, out chan<- []ChangeEvent) error {
	pending := make(map[string]fsnotify.Op)
	timer := time.NewTimer(w.debounce)
	timer.Stop() // don't fire until we have events

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if w.accept(ev) {
				pending[ev.Name] |= ev.Op
				timer.Reset(w.debounce)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("fsnotify error", "err", err)

		case <-timer.C:
			if len(pending) == 0 {
				continue
			}
			batch := make([]ChangeEvent, 0, len(pending))
			for p, op := range pending {
				batch = append(batch, ChangeEvent{Path: p, Op: op})
			}
			pending = make(map[string]fsnotify.Op)
			w.logger.Debug("file changed", "path", w.path, "events", len(batch))

			select {
			case out <- batch:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}

// Close shuts down the underlying fsnotify watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

// accept returns true if the event is for the watched file and carries a relevant op.
func (w *Watcher) accept(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0
}
