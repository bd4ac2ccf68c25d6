// Package filter provides the image processors ggpipe forks and recipes
// are built from.
//
// Every filter implements
//
//	Process(img image.Image) (image.Image, error)
//
// and never modifies its input. Filters are grouped as:
//   - Color matrix transformations (brightness, contrast, saturation, ...)
//   - Gray-component replacement for ink separation
//   - Bilevel ditherers (threshold, Atkinson, Floyd-Steinberg)
//   - Histogram stretching (AutoContrast)
//   - Gaussian blur (separable, per plane)
//
// Gray input stays gray wherever the filter allows it, so filters can run
// on the single bands of a fork.
package filter

import "errors"

// ErrInvalidParameter is returned when a filter is configured with an
// out-of-range value.
var ErrInvalidParameter = errors.New("filter: invalid parameter")

// clampUint8 clamps a float32 to [0, 255] and converts to uint8.
func clampUint8(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5) // Round to nearest
}

// clampInt clamps an integer to [minVal, maxVal].
func clampInt(v, minVal, maxVal int) int {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
