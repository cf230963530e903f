package life

import (
	"image/color"
	"testing"
)

func TestShadeOffsetTriangle(t *testing.T) {
	cases := map[int]int{0: 0, 1: 1, 64: 64, 128: 128, 129: 128, 200: 57, 255: 2, 256: 0, 384: 128}
	for it, want := range cases {
		if got := ShadeOffset(it); got != want {
			t.Fatalf("ShadeOffset(%d) = %d, want %d", it, got, want)
		}
	}
}

func TestShadeOffsetPeriodic(t *testing.T) {
	for it := 0; it < 2000; it++ {
		if ShadeOffset(it) != ShadeOffset(it+256) {
			t.Fatalf("offset not periodic at %d", it)
		}
		if off := ShadeOffset(it); off < 0 || off > 128 {
			t.Fatalf("offset %d out of range at %d", off, it)
		}
	}
}

func TestShadeOffsetSymmetric(t *testing.T) {
	for k := 1; k <= 127; k++ {
		if ShadeOffset(128+k) != ShadeOffset(129-k) {
			t.Fatalf("asymmetric at k=%d: %d vs %d", k, ShadeOffset(128+k), ShadeOffset(129-k))
		}
	}
}

func TestShadeChannels(t *testing.T) {
	cases := []struct {
		x, y, it int
		want     color.RGBA
	}{
		{0, 0, 0, color.RGBA{R: 0, G: 0, B: 3, A: 0xff}},
		{2, 3, 10, color.RGBA{R: 25, G: 28, B: 13, A: 0xff}},
		{100, 100, 0, color.RGBA{R: 90, G: 165, B: 3, A: 0xff}},
	}
	for _, tc := range cases {
		if got := Shade(tc.x, tc.y, tc.it); got != tc.want {
			t.Fatalf("Shade(%d,%d,%d) = %v, want %v", tc.x, tc.y, tc.it, got, tc.want)
		}
	}
}

func TestShadeDeterministic(t *testing.T) {
	for it := 0; it < 600; it += 37 {
		if Shade(5, 7, it) != Shade(5, 7, it+256) {
			t.Fatalf("shade differs one period apart at %d", it)
		}
	}
}
