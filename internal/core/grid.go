package core

// Cell is the tri-state value stored in a Grid. The zero value is
// CellUninitialized so freshly allocated grids are ready for seeding.
type Cell uint8

const (
	CellUninitialized Cell = iota
	CellDead
	CellAlive
)

// String returns a short name for the cell state.
func (c Cell) String() string {
	switch c {
	case CellUninitialized:
		return "uninitialized"
	case CellDead:
		return "dead"
	case CellAlive:
		return "alive"
	default:
		return "invalid"
	}
}

// Defined reports whether the cell holds a life state.
func (c Cell) Defined() bool { return c == CellDead || c == CellAlive }

// Grid stores a 2D grid of cells in row-major order.
type Grid struct {
	w, h int
	data []Cell
}

// NewGrid allocates a grid with every cell uninitialized. A zero dimension
// yields an empty grid reporting 0x0.
func NewGrid(height, width int) *Grid {
	if height < 0 || width < 0 {
		Invariantf("grid.new", "negative dimensions %dx%d", width, height)
	}
	if height == 0 || width == 0 {
		return &Grid{}
	}
	return &Grid{w: width, h: height, data: make([]Cell, width*height)}
}

// Width is the length of a row.
func (g *Grid) Width() int { return g.w }

// Height is the number of rows.
func (g *Grid) Height() int { return g.h }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int {
	if !g.InBounds(x, y) {
		Invariantf("grid.index", "(%d,%d) outside %dx%d grid", x, y, g.w, g.h)
	}
	return y*g.w + x
}

// Get returns the cell at (x, y).
func (g *Grid) Get(x, y int) Cell { return g.data[g.Index(x, y)] }

// Set stores c at (x, y).
func (g *Grid) Set(x, y int, c Cell) { g.data[g.Index(x, y)] = c }

// Toggle flips Alive and Dead. An uninitialized cell becomes Dead.
func (g *Grid) Toggle(x, y int) Cell {
	i := g.Index(x, y)
	if g.data[i] == CellDead {
		g.data[i] = CellAlive
	} else {
		g.data[i] = CellDead
	}
	return g.data[i]
}

// Cells exposes the backing slice so callers can scan it directly.
func (g *Grid) Cells() []Cell { return g.data }

// Fill sets every cell to c.
func (g *Grid) Fill(c Cell) {
	for i := range g.data {
		g.data[i] = c
	}
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{w: g.w, h: g.h, data: append([]Cell(nil), g.data...)}
}
