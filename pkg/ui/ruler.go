package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"

	"github.com/kraitsura/responsive/pkg/breakpoint"
)

// renderRuler draws the breakpoint segments as a proportional bar sized
// to the available terminal columns, with the active segment highlighted
// and a marker under the current width.
func renderRuler(reg *breakpoint.Registry, avail int, st Styles) string {
	if avail < 10 {
		avail = 10
	}

	bps := reg.Breakpoints()
	if len(bps) == 0 {
		return st.Label.Render("(no breakpoints)")
	}

	// The bar spans from zero to the last threshold plus headroom, and
	// always contains the current width.
	span := bps[len(bps)-1].Width + bps[len(bps)-1].Width/4
	if w := reg.Width() + reg.Width()/10; w > span {
		span = w
	}
	if span < 100 {
		span = 100
	}
	scale := func(cols int) int {
		x := cols * avail / span
		if x > avail {
			x = avail
		}
		return x
	}

	active, hasActive := reg.ActiveBreakpoint()

	var bar strings.Builder
	// Gap before the first threshold: the "below all" region.
	if lead := scale(bps[0].Width); lead > 0 {
		bar.WriteString(st.Label.Render(strings.Repeat("░", lead)))
	}
	for i, bp := range bps {
		start := scale(bp.Width)
		end := avail
		if i+1 < len(bps) {
			end = scale(bps[i+1].Width)
		}
		cells := end - start
		if cells < 1 {
			cells = 1
		}

		label := truncate.StringWithTail(bp.String(), uint(cells), "…")
		label += strings.Repeat(" ", cells-runewidth.StringWidth(label))

		style := st.SegmentIdle
		if hasActive && bp == active {
			style = st.SegmentHot
		}
		bar.WriteString(style.Render(label))
	}

	// Marker row pointing at the current width.
	pos := scale(reg.Width())
	if pos >= avail {
		pos = avail - 1
	}
	marker := strings.Repeat(" ", pos) + st.Marker.Render("▲")

	return bar.String() + "\n" + marker
}
