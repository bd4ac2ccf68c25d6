package filter

import (
	"fmt"
	"image"
	"math"

	"github.com/gogpu/ggpipe/mode"
)

// AutoContrast stretches every color channel so its darkest level maps to
// 0 and its brightest to 255. Cutoff is the percentage of pixels ignored
// at each end of the histogram before the range is measured.
//
// Gray input stays gray. Alpha is not touched.
type AutoContrast struct {
	Cutoff float64
}

// Process stretches the channels of img.
func (a AutoContrast) Process(img image.Image) (image.Image, error) {
	if math.IsNaN(a.Cutoff) || a.Cutoff < 0 || a.Cutoff >= 50 {
		return nil, fmt.Errorf("%w: autocontrast cutoff %v outside [0, 50)", ErrInvalidParameter, a.Cutoff)
	}
	if img == nil {
		return nil, mode.ErrNilImage
	}

	if _, ok := img.(*image.Gray); ok {
		g, err := grayCopy(img)
		if err != nil {
			return nil, err
		}
		var hist [256]int
		for _, v := range g.Pix {
			hist[v]++
		}
		lut := a.stretch(&hist)
		for i, v := range g.Pix {
			g.Pix[i] = lut[v]
		}
		return g, nil
	}

	conv, err := mode.RGBA.Convert(img)
	if err != nil {
		return nil, err
	}
	dst := conv.(*image.NRGBA)

	var hist [3][256]int
	for i := 0; i+3 < len(dst.Pix); i += 4 {
		hist[0][dst.Pix[i]]++
		hist[1][dst.Pix[i+1]]++
		hist[2][dst.Pix[i+2]]++
	}
	luts := [3][256]uint8{a.stretch(&hist[0]), a.stretch(&hist[1]), a.stretch(&hist[2])}
	for i := 0; i+3 < len(dst.Pix); i += 4 {
		dst.Pix[i] = luts[0][dst.Pix[i]]
		dst.Pix[i+1] = luts[1][dst.Pix[i+1]]
		dst.Pix[i+2] = luts[2][dst.Pix[i+2]]
	}
	return dst, nil
}

// stretch builds the lookup table for one channel histogram.
func (a AutoContrast) stretch(hist *[256]int) [256]uint8 {
	var lut [256]uint8
	for i := range lut {
		lut[i] = uint8(i)
	}

	total := 0
	for _, n := range hist {
		total += n
	}
	cut := int(float64(total) * a.Cutoff / 100)

	lo, seen := 0, 0
	for lo < 255 {
		seen += hist[lo]
		if seen > cut {
			break
		}
		lo++
	}
	hi, seen := 255, 0
	for hi > 0 {
		seen += hist[hi]
		if seen > cut {
			break
		}
		hi--
	}
	if hi <= lo {
		return lut
	}

	scale := 255 / float64(hi-lo)
	offset := -float64(lo) * scale
	for i := range lut {
		lut[i] = uint8(clampInt(int(float64(i)*scale+offset), 0, 255))
	}
	return lut
}
