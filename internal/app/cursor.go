package app

// Cursor is the edit-mode position over the grid.
type Cursor struct {
	X, Y int
}

// NewCursor returns the cursor at its starting position (1, 1).
func NewCursor() Cursor { return Cursor{X: 1, Y: 1} }

// Move shifts the cursor by (dx, dy) and clamps it to a w*h grid.
func (c *Cursor) Move(dx, dy, w, h int) {
	c.X = clampIndex(c.X+dx, w)
	c.Y = clampIndex(c.Y+dy, h)
}

// Within reports whether the cursor addresses a cell of a w*h grid.
func (c Cursor) Within(w, h int) bool {
	return c.X >= 0 && c.X < w && c.Y >= 0 && c.Y < h
}

func clampIndex(v, n int) int {
	if v >= n {
		v = n - 1
	}
	if v < 0 {
		v = 0
	}
	return v
}
