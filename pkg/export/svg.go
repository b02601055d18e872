package export

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/kraitsura/responsive/pkg/breakpoint"
)

// SVG ruler geometry in pixels.
const (
	svgWidth     = 800
	svgHeight    = 120
	svgBarTop    = 40
	svgBarHeight = 36
	svgMargin    = 20
)

const (
	svgFillIdle   = "#44475a"
	svgFillActive = "#bd93f9"
	svgStroke     = "#282a36"
	svgTextColor  = "#f8f8f2"
	svgMarker     = "#ff5555"
)

// WriteSVG renders the breakpoint ruler as an SVG diagram: one
// proportional band per segment, the active segment highlighted, and a
// marker at the current width.
func WriteSVG(w io.Writer, reg *breakpoint.Registry) error {
	span := rulerSpan(reg)
	segs := segments(reg)
	scale := func(cols int) int {
		return svgMargin + cols*(svgWidth-2*svgMargin)/span
	}

	canvas := svg.New(w)
	canvas.Start(svgWidth, svgHeight)
	canvas.Title("breakpoint ruler")

	canvas.Text(svgMargin, svgBarTop-16,
		fmt.Sprintf("width %d / %s", reg.Width(), reg.Orientation()),
		fmt.Sprintf("font-family:monospace;font-size:13px;fill:%s", svgTextColor))

	for _, s := range segs {
		x := scale(s.start)
		wpx := scale(s.end) - x
		fill := svgFillIdle
		if s.active {
			fill = svgFillActive
		}
		canvas.Rect(x, svgBarTop, wpx, svgBarHeight,
			fmt.Sprintf("fill:%s;stroke:%s;stroke-width:1", fill, svgStroke))

		label := s.bp.String()
		canvas.Text(x+4, svgBarTop+svgBarHeight+16, label,
			fmt.Sprintf("font-family:monospace;font-size:12px;fill:%s", svgTextColor))
	}

	// Current-width marker.
	x := scale(reg.Width())
	canvas.Line(x, svgBarTop-8, x, svgBarTop+svgBarHeight+8,
		fmt.Sprintf("stroke:%s;stroke-width:2", svgMarker))

	canvas.End()
	return nil
}
