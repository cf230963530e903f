//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws the edit cursor and the help box on top of the grid.
type Overlay struct {
	scale int
	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay for cells drawn scale pixels wide.
func NewOverlay(scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	o := &Overlay{scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// DrawCursor outlines cell (x, y) of a grid h cells tall. Row 0 is at the
// bottom. The outline is dark over live cells and light over dead ones.
func (o *Overlay) DrawCursor(screen *ebiten.Image, x, y, h int, alive bool) {
	if y < 0 || y >= h || x < 0 {
		return
	}
	col := color.RGBA{R: 235, G: 235, B: 240, A: 255}
	if alive {
		col = color.RGBA{R: 12, G: 12, B: 16, A: 255}
	}
	s := float64(o.scale)
	px := float64(x) * s
	py := float64(h-1-y) * s
	t := s / 6
	if t < 1 {
		t = 1
	}
	o.fillRect(screen, px, py, s, t, col)
	o.fillRect(screen, px, py+s-t, s, t, col)
	o.fillRect(screen, px, py, t, s, col)
	o.fillRect(screen, px+s-t, py, t, s, col)
}

// DrawHelp renders lines in a box centred on the screen, at least half the
// screen wide and 30% tall.
func (o *Overlay) DrawHelp(screen *ebiten.Image, title string, lines []string) {
	face := basicfont.Face7x13
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()

	textW := text.BoundString(face, title).Dx()
	for _, l := range lines {
		if w := text.BoundString(face, l).Dx(); w > textW {
			textW = w
		}
	}
	boxW := max(sw/2, textW+2*panelPadding)
	boxH := max(sh*3/10, (len(lines)+2)*lineHeight+2*panelPadding)
	x0 := (sw - boxW) / 2
	y0 := (sh - boxH) / 2

	o.fillRect(screen, float64(x0), float64(y0), float64(boxW), float64(boxH), color.RGBA{R: 16, G: 16, B: 20, A: 235})
	o.fillRect(screen, float64(x0), float64(y0), float64(boxW), 1, color.RGBA{R: 120, G: 120, B: 130, A: 255})

	y := y0 + panelPadding + headerBaseline
	text.Draw(screen, title, face, x0+panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	y += lineHeight
	for _, l := range lines {
		text.Draw(screen, l, face, x0+panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		y += lineHeight
	}
}

func (o *Overlay) fillRect(screen *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
