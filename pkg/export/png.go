package export

import (
	"fmt"

	"git.sr.ht/~sbinet/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/kraitsura/responsive/pkg/breakpoint"
)

// PNG ruler geometry in pixels.
const (
	pngWidth     = 800
	pngHeight    = 120
	pngBarTop    = 40.0
	pngBarHeight = 36.0
	pngMargin    = 20.0
)

// WritePNG renders the breakpoint ruler as a PNG image at path, with the
// same geometry as the SVG export.
func WritePNG(path string, reg *breakpoint.Registry) error {
	span := rulerSpan(reg)
	segs := segments(reg)
	scale := func(cols int) float64 {
		return pngMargin + float64(cols)*(pngWidth-2*pngMargin)/float64(span)
	}

	dc := gg.NewContext(pngWidth, pngHeight)
	dc.SetHexColor("#282a36")
	dc.Clear()
	dc.SetFontFace(basicfont.Face7x13)

	dc.SetHexColor("#f8f8f2")
	dc.DrawString(fmt.Sprintf("width %d / %s", reg.Width(), reg.Orientation()), pngMargin, pngBarTop-16)

	for _, s := range segs {
		x := scale(s.start)
		w := scale(s.end) - x

		if s.active {
			dc.SetHexColor("#bd93f9")
		} else {
			dc.SetHexColor("#44475a")
		}
		dc.DrawRectangle(x, pngBarTop, w, pngBarHeight)
		dc.Fill()

		dc.SetHexColor("#f8f8f2")
		dc.DrawString(s.bp.String(), x+4, pngBarTop+pngBarHeight+16)
	}

	dc.SetHexColor("#ff5555")
	x := scale(reg.Width())
	dc.SetLineWidth(2)
	dc.DrawLine(x, pngBarTop-8, x, pngBarTop+pngBarHeight+8)
	dc.Stroke()

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("failed to write png %s: %w", path, err)
	}
	return nil
}
