package color

// Ramp maps a gray level to an RGB color. It is a 256-entry lookup table
// per channel, built once and shared read-only.
type Ramp [3][256]uint8

// NewRamp builds the ramp from black (level 0) to white (level 255).
//
// Each channel is interpolated as black + i*(white-black) floor-divided
// by 255, so a ramp towards a darker color rounds down on every step.
func NewRamp(black, white RGB8) *Ramp {
	var r Ramp
	lo := [3]int{int(black.R), int(black.G), int(black.B)}
	hi := [3]int{int(white.R), int(white.G), int(white.B)}
	for c := 0; c < 3; c++ {
		for i := 0; i < 256; i++ {
			//nolint:gosec // G115: result stays between lo and hi, both bytes
			r[c][i] = uint8(lo[c] + floorDiv(i*(hi[c]-lo[c]), 255))
		}
	}
	return &r
}

// At returns the color for a gray level.
func (r *Ramp) At(level uint8) (uint8, uint8, uint8) {
	return r[0][level], r[1][level], r[2][level]
}
