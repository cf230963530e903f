package render

import (
	"image/color"
	"slices"
	"testing"

	"termlife/internal/core"
	"termlife/internal/sims/life"
)

func TestFillShadeRGBAFlipsRows(t *testing.T) {
	g := core.NewGrid(2, 3)
	g.Fill(core.CellDead)
	g.Set(2, 0, core.CellAlive)

	buf := make([]byte, 4*3*2)
	off := color.RGBA{R: 1, G: 2, B: 3, A: 255}
	FillShadeRGBA(buf, g, 5, off)

	// (2,0) is on the bottom image row: pixel index 1*3+2.
	want := life.Shade(2, 0, 5)
	got := buf[4*5 : 4*5+4]
	if !slices.Equal(got, []byte{want.R, want.G, want.B, want.A}) {
		t.Fatalf("alive pixel = %v, want %v", got, want)
	}
	for i := 0; i < 5; i++ {
		px := buf[4*i : 4*i+4]
		if !slices.Equal(px, []byte{1, 2, 3, 255}) {
			t.Fatalf("pixel %d = %v, want background", i, px)
		}
	}
}

func TestFillShadeRGBAShortBufferPanics(t *testing.T) {
	defer func() {
		r := recover()
		if _, ok := core.AsInvariant(r); !ok {
			t.Fatalf("recovered %v, want invariant error", r)
		}
	}()
	g := core.NewGrid(2, 2)
	g.Fill(core.CellDead)
	FillShadeRGBA(make([]byte, 4), g, 0, color.Black)
}

func TestCellAt(t *testing.T) {
	cases := []struct {
		px, py     int
		wantX      int
		wantY      int
		wantInside bool
	}{
		{0, 0, 0, 3, true},
		{5, 5, 0, 3, true},
		{6, 0, 1, 3, true},
		{11, 23, 1, 0, true},
		{12, 0, 0, 0, false},
		{0, 24, 0, 0, false},
		{-1, 0, 0, 0, false},
	}
	for _, tc := range cases {
		x, y, ok := CellAt(tc.px, tc.py, 2, 4, 6)
		if ok != tc.wantInside || x != tc.wantX || y != tc.wantY {
			t.Fatalf("CellAt(%d,%d) = (%d,%d,%v), want (%d,%d,%v)",
				tc.px, tc.py, x, y, ok, tc.wantX, tc.wantY, tc.wantInside)
		}
	}
}
