package core

import "testing"

func TestNewGridDimensions(t *testing.T) {
	cases := []struct {
		h, w         int
		wantH, wantW int
	}{
		{3, 4, 3, 4},
		{1, 1, 1, 1},
		{24, 80, 24, 80},
		{0, 5, 0, 0},
		{5, 0, 0, 0},
		{0, 0, 0, 0},
	}
	for _, tc := range cases {
		g := NewGrid(tc.h, tc.w)
		if g.Height() != tc.wantH || g.Width() != tc.wantW {
			t.Fatalf("NewGrid(%d,%d) = %dx%d, want %dx%d", tc.h, tc.w, g.Width(), g.Height(), tc.wantW, tc.wantH)
		}
		for i, c := range g.Cells() {
			if c != CellUninitialized {
				t.Fatalf("cell %d = %v, want uninitialized", i, c)
			}
		}
	}
}

func TestGridGetSetRowMajor(t *testing.T) {
	g := NewGrid(2, 3)
	g.Set(2, 1, CellAlive)
	if got := g.Get(2, 1); got != CellAlive {
		t.Fatalf("Get(2,1) = %v, want alive", got)
	}
	if got := g.Cells()[1*3+2]; got != CellAlive {
		t.Fatalf("backing slice not row-major: %v", got)
	}
	if got := g.Get(1, 2-1); got != CellUninitialized {
		t.Fatalf("neighbouring cell changed: %v", got)
	}
}

func TestGridOutOfRangePanics(t *testing.T) {
	g := NewGrid(2, 2)
	coords := [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}, {5, 5}}
	for _, c := range coords {
		func() {
			defer func() {
				r := recover()
				if r == nil {
					t.Fatalf("Get(%d,%d) did not panic", c[0], c[1])
				}
				ie, ok := AsInvariant(r)
				if !ok {
					t.Fatalf("panic value %v is not an invariant error", r)
				}
				if ie.Op != "grid.index" {
					t.Fatalf("unexpected op %q", ie.Op)
				}
			}()
			g.Get(c[0], c[1])
		}()
	}
}

func TestGridToggle(t *testing.T) {
	g := NewGrid(1, 3)
	g.Set(0, 0, CellDead)
	g.Set(1, 0, CellAlive)

	if got := g.Toggle(0, 0); got != CellAlive {
		t.Fatalf("dead toggled to %v", got)
	}
	if got := g.Toggle(1, 0); got != CellDead {
		t.Fatalf("alive toggled to %v", got)
	}
	if got := g.Toggle(2, 0); got != CellDead {
		t.Fatalf("uninitialized toggled to %v, want dead", got)
	}
	if got := g.Toggle(2, 0); got != CellAlive {
		t.Fatalf("second toggle gave %v, want alive", got)
	}
}

func TestGridCloneIsIndependent(t *testing.T) {
	g := NewGrid(2, 2)
	g.Fill(CellDead)
	c := g.Clone()
	c.Set(0, 0, CellAlive)
	if g.Get(0, 0) != CellDead {
		t.Fatal("mutating clone changed original")
	}
	if c.Width() != 2 || c.Height() != 2 {
		t.Fatalf("clone size %dx%d", c.Width(), c.Height())
	}
}

func TestCellString(t *testing.T) {
	if CellAlive.String() != "alive" || CellDead.String() != "dead" || CellUninitialized.String() != "uninitialized" {
		t.Fatal("unexpected cell names")
	}
	if Cell(9).Defined() {
		t.Fatal("invalid cell reported as defined")
	}
}
