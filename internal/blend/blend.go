// Package blend provides separable 8-bit blend modes over RGBA images.
package blend

import (
	"errors"
	"fmt"
	"image"
)

// ErrSizeMismatch is returned when blended images differ in size.
var ErrSizeMismatch = errors.New("blend: image sizes differ")

// Mode represents a separable blending mode.
type Mode int

const (
	// ModeMultiply multiplies the channels: B(a, b) = a * b.
	// Stacking translucent inks on paper behaves this way.
	ModeMultiply Mode = iota
	// ModeScreen is the inverse of multiply: 1 - (1-a)*(1-b).
	ModeScreen
	// ModeDarken keeps the darker channel: min(a, b).
	ModeDarken
	// ModeLighten keeps the lighter channel: max(a, b).
	ModeLighten
)

// String returns the blend mode name.
func (m Mode) String() string {
	switch m {
	case ModeMultiply:
		return "Multiply"
	case ModeScreen:
		return "Screen"
	case ModeDarken:
		return "Darken"
	case ModeLighten:
		return "Lighten"
	default:
		return "Unknown"
	}
}

// Channel blends a single pair of channel values.
func (m Mode) Channel(a, b byte) byte {
	switch m {
	case ModeScreen:
		return inv255(mulDiv255(inv255(a), inv255(b)))
	case ModeDarken:
		return min(a, b)
	case ModeLighten:
		return max(a, b)
	default:
		return mulDiv255(a, b)
	}
}

// Blend combines a and b channel by channel into a new image with a's bounds.
// Color channels use the mode; alpha uses the source-over union
// a + b*(1-a), so two opaque layers stay opaque.
func Blend(a, b *image.RGBA, mode Mode) (*image.RGBA, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("blend: nil image")
	}
	ab, bb := a.Bounds(), b.Bounds()
	if ab.Dx() != bb.Dx() || ab.Dy() != bb.Dy() {
		return nil, fmt.Errorf("%w: %v vs %v", ErrSizeMismatch, ab.Size(), bb.Size())
	}

	out := image.NewRGBA(ab)
	w := ab.Dx()
	for y := 0; y < ab.Dy(); y++ {
		ai := a.PixOffset(ab.Min.X, ab.Min.Y+y)
		bi := b.PixOffset(bb.Min.X, bb.Min.Y+y)
		oi := out.PixOffset(ab.Min.X, ab.Min.Y+y)
		for x := 0; x < w; x++ {
			pa := a.Pix[ai : ai+4 : ai+4]
			pb := b.Pix[bi : bi+4 : bi+4]
			po := out.Pix[oi : oi+4 : oi+4]
			po[0] = mode.Channel(pa[0], pb[0])
			po[1] = mode.Channel(pa[1], pb[1])
			po[2] = mode.Channel(pa[2], pb[2])
			po[3] = pa[3] + mulDiv255(pb[3], inv255(pa[3]))
			ai += 4
			bi += 4
			oi += 4
		}
	}
	return out, nil
}

// Reduce folds Blend left to right over imgs. A single image is copied.
func Reduce(mode Mode, imgs ...*image.RGBA) (*image.RGBA, error) {
	if len(imgs) == 0 {
		return nil, fmt.Errorf("blend: nothing to reduce")
	}
	if imgs[0] == nil {
		return nil, fmt.Errorf("blend: nil image")
	}

	acc := clone(imgs[0])
	for _, img := range imgs[1:] {
		next, err := Blend(acc, img, mode)
		if err != nil {
			return nil, err
		}
		acc = next
	}
	return acc, nil
}

// clone copies src row by row so sub-images with a wider stride work.
func clone(src *image.RGBA) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		si := src.PixOffset(b.Min.X, y)
		di := dst.PixOffset(b.Min.X, y)
		copy(dst.Pix[di:di+4*b.Dx()], src.Pix[si:si+4*b.Dx()])
	}
	return dst
}
