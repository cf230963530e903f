package render

import (
	"image/color"

	"termlife/internal/core"
	"termlife/internal/sims/life"
)

// FillShadeRGBA converts g into RGBA pixels in buf, one pixel per cell.
// Alive cells take their Shade colour for iteration and every other cell
// takes off. Row 0 of the grid lands on the bottom row of the image.
func FillShadeRGBA(buf []byte, g *core.Grid, iteration int, off color.Color) {
	w, h := g.Width(), g.Height()
	if len(buf) < 4*w*h {
		core.Invariantf("render.fill", "buffer holds %d bytes, need %d", len(buf), 4*w*h)
	}
	rOff, gOff, bOff, aOff := off.RGBA()
	for y := 0; y < h; y++ {
		row := (h - 1 - y) * w
		for x := 0; x < w; x++ {
			base := (row + x) * 4
			if g.Get(x, y) == core.CellAlive {
				col := life.Shade(x, y, iteration)
				buf[base+0] = col.R
				buf[base+1] = col.G
				buf[base+2] = col.B
				buf[base+3] = col.A
				continue
			}
			buf[base+0] = uint8(rOff >> 8)
			buf[base+1] = uint8(gOff >> 8)
			buf[base+2] = uint8(bOff >> 8)
			buf[base+3] = uint8(aOff >> 8)
		}
	}
}

// CellAt maps a pixel inside a w*h image drawn at scale back to the grid
// cell beneath it. ok is false outside the image.
func CellAt(px, py, w, h, scale int) (x, y int, ok bool) {
	if scale <= 0 {
		scale = 1
	}
	if px < 0 || py < 0 {
		return 0, 0, false
	}
	x, row := px/scale, py/scale
	if x >= w || row >= h {
		return 0, 0, false
	}
	return x, h - 1 - row, true
}
