package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher invokes a callback when the watched config file changes.
//
// The parent directory is watched rather than the file itself: most
// editors save by writing a temp file and renaming it over the original,
// which would drop a direct file watch.
type Watcher struct {
	path     string
	dir      string
	onChange func()
	debounce *Debouncer
	fs       *fsnotify.Watcher
}

// New creates a watcher for path. onChange runs debounced on a timer
// goroutine whenever the file is written, created, or renamed, so it must
// be safe to call off the watcher goroutine.
func New(path string, debounce time.Duration, onChange func()) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve watch path: %w", err)
	}

	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := fs.Add(filepath.Dir(abs)); err != nil {
		fs.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{
		path:     abs,
		dir:      filepath.Dir(abs),
		onChange: onChange,
		debounce: NewDebouncer(debounce),
		fs:       fs,
	}, nil
}

// Run processes events until the context is cancelled or the underlying
// watcher closes. It always returns a non-nil close/context error for
// errgroup callers except on clean shutdown.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.debounce.Cancel()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev) {
				continue
			}
			w.debounce.Trigger(w.onChange)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("file watcher error: %w", err)
		}
	}
}

// Close stops the watcher and releases its resources.
func (w *Watcher) Close() error {
	w.debounce.Cancel()
	return w.fs.Close()
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create) || ev.Op.Has(fsnotify.Rename)
}
