//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"termlife/internal/core"
)

// GridPainter uploads a Grid into an image one pixel per cell and draws it
// scaled onto the screen.
type GridPainter struct {
	img  *ebiten.Image
	buf  []byte
	w, h int
}

// NewGridPainter allocates a painter for a w*h grid.
func NewGridPainter(w, h int) *GridPainter {
	p := &GridPainter{}
	p.resize(w, h)
	return p
}

func (p *GridPainter) resize(w, h int) {
	p.w, p.h = w, h
	if w <= 0 || h <= 0 {
		p.img = nil
		p.buf = nil
		return
	}
	p.img = ebiten.NewImage(w, h)
	p.buf = make([]byte, 4*w*h)
}

// Blit paints g at iteration onto screen with each cell scale pixels wide.
func (p *GridPainter) Blit(screen *ebiten.Image, g *core.Grid, iteration int, off color.Color, scale int) {
	if g.Width() != p.w || g.Height() != p.h {
		p.resize(g.Width(), g.Height())
	}
	if p.img == nil {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	FillShadeRGBA(p.buf, g, iteration, off)
	p.img.WritePixels(p.buf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(p.img, op)
}
