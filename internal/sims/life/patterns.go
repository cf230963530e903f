package life

import (
	"termlife/internal/core"
)

// Built-in pattern names.
const (
	PatternRandom  = "random"
	PatternEmpty   = "empty"
	PatternGlider  = "glider"
	PatternBlinker = "blinker"
)

func init() {
	core.RegisterPattern(PatternRandom, func(*core.Grid) {})
	core.RegisterPattern(PatternEmpty, func(g *core.Grid) { g.Fill(core.CellDead) })
	core.RegisterPattern(PatternGlider, stamp([][2]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}))
	core.RegisterPattern(PatternBlinker, stamp([][2]int{{1, 0}, {1, 1}, {1, 2}}))
}

// stamp kills the grid and sets the given 3x3-relative cells alive around
// the centre. Cells falling outside small grids are skipped.
func stamp(alive [][2]int) core.Pattern {
	return func(g *core.Grid) {
		g.Fill(core.CellDead)
		ox, oy := g.Width()/2-1, g.Height()/2-1
		for _, p := range alive {
			x, y := ox+p[0], oy+p[1]
			if g.InBounds(x, y) {
				g.Set(x, y, core.CellAlive)
			}
		}
	}
}
