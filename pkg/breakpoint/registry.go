package breakpoint

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownBreakpoint is returned by named queries when the referenced
// name is not registered. It indicates a typo in the caller's declared
// rules, so it is surfaced rather than treated as a non-match.
var ErrUnknownBreakpoint = errors.New("unknown breakpoint")

// Registry is an immutable snapshot of the screen state and the breakpoint
// sequence segmenting it. It answers pure queries; the surrounding
// environment builds a fresh snapshot whenever the size or orientation
// changes.
type Registry struct {
	width       int
	orientation Orientation
	breakpoints []Breakpoint
	byName      map[string]Breakpoint
	active      Breakpoint
	hasActive   bool
}

// NewRegistry builds a snapshot for the given screen width and orientation.
// Breakpoints are sorted by ascending width; non-empty names must be unique.
// The active breakpoint is the largest whose threshold does not exceed the
// width. A width below every threshold leaves the snapshot with no active
// breakpoint (the "below all" sentinel).
func NewRegistry(width int, orientation Orientation, bps []Breakpoint) (*Registry, error) {
	if width < 0 {
		return nil, fmt.Errorf("screen width cannot be negative (got %d)", width)
	}
	if !orientation.IsValid() {
		return nil, fmt.Errorf("invalid orientation: %q", orientation)
	}

	sorted := make([]Breakpoint, len(bps))
	copy(sorted, bps)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Width < sorted[j].Width
	})

	byName := make(map[string]Breakpoint, len(sorted))
	for _, bp := range sorted {
		if err := bp.Validate(); err != nil {
			return nil, err
		}
		if !bp.Named() {
			continue
		}
		if _, dup := byName[bp.Name]; dup {
			return nil, fmt.Errorf("duplicate breakpoint name %q", bp.Name)
		}
		byName[bp.Name] = bp
	}

	r := &Registry{
		width:       width,
		orientation: orientation,
		breakpoints: sorted,
		byName:      byName,
	}
	for _, bp := range sorted {
		if bp.Width <= width {
			r.active = bp
			r.hasActive = true
		}
	}
	return r, nil
}

// Width returns the screen width of the snapshot.
func (r *Registry) Width() int {
	return r.width
}

// Orientation returns the screen orientation of the snapshot.
func (r *Registry) Orientation() Orientation {
	return r.orientation
}

// Breakpoints returns a copy of the ordered breakpoint sequence.
func (r *Registry) Breakpoints() []Breakpoint {
	out := make([]Breakpoint, len(r.breakpoints))
	copy(out, r.breakpoints)
	return out
}

// ActiveBreakpoint returns the breakpoint segment containing the screen
// width. The second return is false when the width sits below every
// registered threshold.
func (r *Registry) ActiveBreakpoint() (Breakpoint, bool) {
	return r.active, r.hasActive
}

// ActiveBreakpointName returns the name of the active breakpoint. The
// second return is false when the active breakpoint is unnamed or when no
// breakpoint is active.
func (r *Registry) ActiveBreakpointName() (string, bool) {
	if !r.hasActive || !r.active.Named() {
		return "", false
	}
	return r.active.Name, true
}

// IsSmallerThan reports whether the screen width is strictly below the
// named breakpoint's threshold.
func (r *Registry) IsSmallerThan(name string) (bool, error) {
	bp, ok := r.byName[name]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownBreakpoint, name)
	}
	return r.width < bp.Width, nil
}

// IsLargerThan reports whether the screen width is strictly above the
// named breakpoint's threshold.
func (r *Registry) IsLargerThan(name string) (bool, error) {
	bp, ok := r.byName[name]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownBreakpoint, name)
	}
	return r.width > bp.Width, nil
}

// Lookup returns the breakpoint registered under name.
func (r *Registry) Lookup(name string) (Breakpoint, bool) {
	bp, ok := r.byName[name]
	return bp, ok
}
