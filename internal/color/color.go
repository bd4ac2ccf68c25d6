// Package color provides 8-bit color helpers shared by ggpipe processors:
// ITU-R 601 luma and colorize ramps.
package color

// RGB8 is an opaque 8-bit color triple.
type RGB8 struct {
	R, G, B uint8
}

// Luma returns the ITU-R 601-2 luma of an 8-bit RGB triple using the
// 16-bit fixed-point weights 19595/38470/7471 with rounding.
// Gray inputs (r == g == b) map to themselves.
func Luma(r, g, b uint8) uint8 {
	return uint8((uint32(r)*19595 + uint32(g)*38470 + uint32(b)*7471 + 0x8000) >> 16)
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
