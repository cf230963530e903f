package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"termlife/internal/app"
	"termlife/internal/core"
	"termlife/internal/sims/life"
)

const (
	title       = "GoL"
	helpTitle   = "Help (?)"
	aliveGlyph  = '█'
	cursorGlyph = 'X'
)

var (
	borderStyle = tcell.StyleDefault
	titleStyle  = tcell.StyleDefault.Bold(true)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)

	// Cursor colours swap depending on whether the cell beneath is alive.
	cursorAliveStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkGray)
	cursorDeadStyle  = tcell.StyleDefault.Foreground(tcell.ColorDarkGray).Background(tcell.ColorWhite)
)

// Renderer paints app.Frames into a bordered box filling the screen. Grid
// row 0 is the bottom row of the box.
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer draws onto s.
func NewRenderer(s tcell.Screen) *Renderer {
	return &Renderer{screen: s}
}

// Size returns how many grid cells fit inside the border.
func (r *Renderer) Size() (w, h int) {
	sw, sh := r.screen.Size()
	return max(sw-2, 0), max(sh-2, 0)
}

// Render implements app.Renderer.
func (r *Renderer) Render(f app.Frame) error {
	s := r.screen
	s.Clear()
	sw, sh := s.Size()
	if sw >= 2 && sh >= 2 {
		drawBox(s, 0, 0, sw, sh, borderStyle)
		drawText(s, 1, 0, sw-1, title, titleStyle)
		drawText(s, 1, sh-1, sw-1, fmt.Sprintf("%s %d", f.Mode, f.Iteration), statusStyle)
		drawText(s, sw-1-len(app.HelpHint), sh-1, sw-1, app.HelpHint, borderStyle)

		r.drawGrid(f.Grid, f.Iteration, sw, sh)
		if f.Cursor != nil {
			r.drawCursor(f.Grid, *f.Cursor, sw, sh)
		}
		if f.Help {
			drawHelp(s, sw, sh)
		}
	}
	s.Show()
	return nil
}

// cellPos maps grid (x, y) to a screen position inside the border.
func cellPos(x, y, sw, sh int) (col, row int, ok bool) {
	col, row = 1+x, sh-2-y
	return col, row, col >= 1 && col <= sw-2 && row >= 1 && row <= sh-2
}

func (r *Renderer) drawGrid(g *core.Grid, iteration, sw, sh int) {
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if g.Get(x, y) != core.CellAlive {
				continue
			}
			col, row, ok := cellPos(x, y, sw, sh)
			if !ok {
				continue
			}
			shade := shadeColor(x, y, iteration)
			r.screen.SetContent(col, row, aliveGlyph, nil, tcell.StyleDefault.Foreground(shade).Background(shade))
		}
	}
}

func (r *Renderer) drawCursor(g *core.Grid, c app.Cursor, sw, sh int) {
	col, row, ok := cellPos(c.X, c.Y, sw, sh)
	if !ok {
		return
	}
	style := cursorDeadStyle
	if g.InBounds(c.X, c.Y) && g.Get(c.X, c.Y) == core.CellAlive {
		style = cursorAliveStyle
	}
	r.screen.SetContent(col, row, cursorGlyph, nil, style)
}

func shadeColor(x, y, iteration int) tcell.Color {
	c := life.Shade(x, y, iteration)
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// helpRect centres a box of 50% x 30% of the screen, grown to fit the
// help text and shrunk to fit the screen.
func helpRect(sw, sh int, lines []string) (x, y, w, h int) {
	textW := len(helpTitle)
	for _, l := range lines {
		textW = max(textW, len([]rune(l)))
	}
	w = min(max(sw/2, textW+4), sw)
	h = min(max(sh*3/10, len(lines)+2), sh)
	return (sw - w) / 2, (sh - h) / 2, w, h
}

func drawHelp(s tcell.Screen, sw, sh int) {
	lines := app.HelpLines()
	x0, y0, w, h := helpRect(sw, sh, lines)
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			s.SetContent(x, y, ' ', nil, tcell.StyleDefault)
		}
	}
	drawBox(s, x0, y0, w, h, borderStyle)
	drawText(s, x0+1, y0, x0+w-1, helpTitle, titleStyle)
	for i, l := range lines {
		if y0+1+i >= y0+h-1 {
			break
		}
		drawText(s, x0+2, y0+1+i, x0+w-1, l, tcell.StyleDefault)
	}
}

func drawBox(s tcell.Screen, x0, y0, w, h int, style tcell.Style) {
	if w < 2 || h < 2 {
		return
	}
	x1, y1 := x0+w-1, y0+h-1
	for x := x0 + 1; x < x1; x++ {
		s.SetContent(x, y0, tcell.RuneHLine, nil, style)
		s.SetContent(x, y1, tcell.RuneHLine, nil, style)
	}
	for y := y0 + 1; y < y1; y++ {
		s.SetContent(x0, y, tcell.RuneVLine, nil, style)
		s.SetContent(x1, y, tcell.RuneVLine, nil, style)
	}
	s.SetContent(x0, y0, tcell.RuneULCorner, nil, style)
	s.SetContent(x1, y0, tcell.RuneURCorner, nil, style)
	s.SetContent(x0, y1, tcell.RuneLLCorner, nil, style)
	s.SetContent(x1, y1, tcell.RuneLRCorner, nil, style)
}

// drawText writes str from column x, stopping before column limit.
func drawText(s tcell.Screen, x, y, limit int, str string, style tcell.Style) {
	for _, r := range str {
		if x >= limit {
			return
		}
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
