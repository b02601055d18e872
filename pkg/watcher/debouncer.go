// Package watcher reloads the breakpoint configuration when its file
// changes, coalescing editor write bursts into a single reload.
package watcher

import (
	"sync"
	"time"
)

// DefaultDebounce is the default coalescing window. Editors commonly emit
// several write/rename events per save.
const DefaultDebounce = 250 * time.Millisecond

// Debouncer coalesces rapid triggers into a single callback invocation:
// only the last callback scheduled within the window runs, after the
// window elapses.
type Debouncer struct {
	window time.Duration
	timer  *time.Timer
	mu     sync.Mutex
	seq    uint64
}

// NewDebouncer creates a Debouncer. A zero window falls back to
// DefaultDebounce.
func NewDebouncer(window time.Duration) *Debouncer {
	if window == 0 {
		window = DefaultDebounce
	}
	return &Debouncer{window: window}
}

// Trigger schedules the callback after the debounce window, replacing any
// previously scheduled callback.
func (d *Debouncer) Trigger(callback func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	seq := d.seq

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, func() {
		d.mu.Lock()
		// Stop() can miss a timer that already fired; the sequence check
		// keeps a superseded callback from running concurrently.
		current := seq == d.seq
		if current {
			d.timer = nil
		}
		d.mu.Unlock()

		if current {
			callback()
		}
	})
}

// Cancel drops any pending callback, including one whose timer already
// fired but has not passed the sequence check yet.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Window returns the debounce window.
func (d *Debouncer) Window() time.Duration {
	return d.window
}
