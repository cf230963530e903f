package life

import "image/color"

// shadePeriod is the length of one rise-and-fall of the colour offset.
const shadePeriod = 256

// ShadeOffset is the iteration-derived colour offset. It rises from 0 to
// 128 over the first half of each period and falls back over the second.
func ShadeOffset(iteration int) int {
	m := iteration % shadePeriod
	if m < 0 {
		m += shadePeriod
	}
	if m <= 128 {
		return m
	}
	return 128 - m%129
}

// Shade returns the colour of an alive cell at (x, y) for the given
// iteration.
func Shade(x, y, iteration int) color.RGBA {
	off := ShadeOffset(iteration)
	ch := func(base int) uint8 { return uint8((base*3 + off) % 255) }
	return color.RGBA{R: ch(x + y), G: ch(x * y), B: ch(1), A: 0xff}
}
