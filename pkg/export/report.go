// Package export renders breakpoint registry snapshots as shareable
// artifacts: a plain-text report, an SVG ruler, and a PNG ruler.
package export

import (
	"fmt"
	"strings"

	"github.com/kraitsura/responsive/pkg/breakpoint"
)

// Report renders a plain-text summary of the snapshot: screen state,
// active breakpoint, and the smaller/larger answer for every named
// breakpoint. This is what the preview TUI copies to the clipboard.
func Report(reg *breakpoint.Registry) string {
	var b strings.Builder

	fmt.Fprintf(&b, "width: %d\n", reg.Width())
	fmt.Fprintf(&b, "orientation: %s\n", reg.Orientation())

	if name, ok := reg.ActiveBreakpointName(); ok {
		fmt.Fprintf(&b, "active: %s\n", name)
	} else if bp, ok := reg.ActiveBreakpoint(); ok {
		fmt.Fprintf(&b, "active: %s\n", bp)
	} else {
		fmt.Fprintf(&b, "active: (below all breakpoints)\n")
	}

	b.WriteString("breakpoints:\n")
	for _, bp := range reg.Breakpoints() {
		if !bp.Named() {
			fmt.Fprintf(&b, "  %s\n", bp)
			continue
		}
		smaller, err := reg.IsSmallerThan(bp.Name)
		if err != nil {
			continue
		}
		larger, _ := reg.IsLargerThan(bp.Name)
		fmt.Fprintf(&b, "  %-12s @%-5d smaller=%-5v larger=%v\n", bp.Name, bp.Width, smaller, larger)
	}

	return b.String()
}
