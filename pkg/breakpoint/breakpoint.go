// Package breakpoint models named width thresholds and point-in-time
// registry snapshots used to answer breakpoint-relative queries.
package breakpoint

import "fmt"

// Breakpoint is one boundary in an ordered sequence of width thresholds.
// The Name is optional; unnamed breakpoints segment the width axis but
// cannot be referenced by name from conditions.
type Breakpoint struct {
	// Width is the threshold in terminal columns at which this
	// breakpoint begins.
	Width int `yaml:"width" json:"width"`

	// Name identifies the breakpoint for named queries. Empty means
	// unnamed. Non-empty names must be unique within a registry.
	Name string `yaml:"name,omitempty" json:"name,omitempty"`
}

// Validate checks that the breakpoint data is logically valid.
func (b Breakpoint) Validate() error {
	if b.Width < 0 {
		return fmt.Errorf("breakpoint %q: width cannot be negative (got %d)", b.Name, b.Width)
	}
	return nil
}

// Named returns true if the breakpoint carries a name.
func (b Breakpoint) Named() bool {
	return b.Name != ""
}

// String renders the breakpoint for error messages and reports.
func (b Breakpoint) String() string {
	if b.Name == "" {
		return fmt.Sprintf("@%d", b.Width)
	}
	return fmt.Sprintf("%s@%d", b.Name, b.Width)
}

// Orientation describes which axis of the screen is longer.
type Orientation string

const (
	OrientationPortrait  Orientation = "portrait"
	OrientationLandscape Orientation = "landscape"
)

// IsValid returns true if the orientation is a recognized value.
func (o Orientation) IsValid() bool {
	switch o {
	case OrientationPortrait, OrientationLandscape:
		return true
	}
	return false
}

// IsLandscape returns true for the landscape orientation.
func (o Orientation) IsLandscape() bool {
	return o == OrientationLandscape
}

// DetectOrientation derives an orientation from cell geometry. Terminals
// are almost always landscape; portrait shows up in narrow split panes
// and simulated sizes.
func DetectOrientation(width, height int) Orientation {
	if width > height {
		return OrientationLandscape
	}
	return OrientationPortrait
}
