// Package life implements Conway's Game of Life on a bounded grid.
package life

import (
	"termlife/internal/core"
)

// DefaultDensity is the probability that an unset cell is seeded alive.
const DefaultDensity = 0.3

// Moore neighbourhood offsets.
var neighbours = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Game is the simulation state: the current generation and how many steps
// produced it. It is not safe for concurrent use.
type Game struct {
	grid      *core.Grid
	iteration int
	seed      int64
	density   float64
}

// Seed returns a Game whose grid is a copy of g with every uninitialized
// cell set alive with probability density and dead otherwise. Cells that
// are already defined keep their value. The iteration count starts at 0.
func Seed(g *core.Grid, rng *core.RNG, density float64) *Game {
	next := g.Clone()
	cells := next.Cells()
	for i, c := range cells {
		if c.Defined() {
			continue
		}
		if rng.Chance(density) {
			cells[i] = core.CellAlive
		} else {
			cells[i] = core.CellDead
		}
	}
	return &Game{grid: next, seed: rng.Seed(), density: density}
}

// Grid returns the current generation. Edits made through it are seen by
// the next Step.
func (l *Game) Grid() *core.Grid { return l.grid }

// Iteration returns the number of steps taken since seeding.
func (l *Game) Iteration() int { return l.iteration }

// Size returns the grid dimensions.
func (l *Game) Size() core.Size { return core.Size{W: l.grid.Width(), H: l.grid.Height()} }

// Step advances the simulation by one generation into a freshly allocated
// grid, adopts it and returns it.
func (l *Game) Step() *core.Grid {
	w, h := l.grid.Width(), l.grid.Height()
	next := core.NewGrid(h, w)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			next.Set(x, y, Rule(l.alive(x, y), l.liveNeighbours(x, y)))
		}
	}
	l.grid = next
	l.iteration++
	return next
}

func (l *Game) liveNeighbours(x, y int) int {
	n := 0
	for _, d := range neighbours {
		nx, ny := x+d[0], y+d[1]
		if !l.grid.InBounds(nx, ny) {
			continue
		}
		if l.alive(nx, ny) {
			n++
		}
	}
	return n
}

func (l *Game) alive(x, y int) bool {
	switch c := l.grid.Get(x, y); c {
	case core.CellAlive:
		return true
	case core.CellDead:
		return false
	default:
		core.Invariantf("life.step", "read %v cell at (%d,%d)", c, x, y)
		return false
	}
}

// Rule applies the B3/S23 transition to a cell with n live neighbours.
func Rule(alive bool, n int) core.Cell {
	if n < 0 || n > 8 {
		core.Invariantf("life.rule", "impossible neighbour count %d", n)
	}
	if alive {
		switch n {
		case 2, 3:
			return core.CellAlive
		default:
			return core.CellDead
		}
	}
	if n == 3 {
		return core.CellAlive
	}
	return core.CellDead
}
