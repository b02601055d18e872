package export

import "github.com/kraitsura/responsive/pkg/breakpoint"

// segment is one proportional slice of the ruler, precomputed so the SVG
// and PNG renderers share the same geometry.
type segment struct {
	bp     breakpoint.Breakpoint
	start  int // threshold in columns
	end    int // exclusive upper bound in columns (span for the last)
	active bool
}

// rulerSpan picks the column count the ruler represents: enough to show
// every segment plus headroom, and always containing the current width.
func rulerSpan(reg *breakpoint.Registry) int {
	span := reg.Width() + reg.Width()/10
	bps := reg.Breakpoints()
	if n := len(bps); n > 0 {
		last := bps[n-1].Width
		if s := last + last/4; s > span {
			span = s
		}
	}
	if span < 100 {
		span = 100
	}
	return span
}

// segments slices the span at each breakpoint threshold.
func segments(reg *breakpoint.Registry) []segment {
	span := rulerSpan(reg)
	bps := reg.Breakpoints()
	active, hasActive := reg.ActiveBreakpoint()

	out := make([]segment, 0, len(bps))
	for i, bp := range bps {
		end := span
		if i+1 < len(bps) {
			end = bps[i+1].Width
		}
		out = append(out, segment{
			bp:     bp,
			start:  bp.Width,
			end:    end,
			active: hasActive && bp == active,
		})
	}
	return out
}
