package filter

import (
	"image"

	"github.com/gogpu/ggpipe/mode"
)

// DefaultThreshold is the gray level at and above which pixels turn white.
const DefaultThreshold = 128

// ThresholdMatrix maps every gray level to black (0) or white (255).
// Used on its own it is a plain threshold; the ditherers embed it and
// diffuse the quantization error to neighbouring pixels.
type ThresholdMatrix [256]uint8

// NewThresholdMatrix returns a matrix sending levels below threshold to 0
// and the rest to 255. threshold is truncated and clamped to [0, 256].
func NewThresholdMatrix(threshold float64) ThresholdMatrix {
	t := clampInt(int(threshold), 0, 256)
	var m ThresholdMatrix
	for i := t; i < 256; i++ {
		m[i] = 255
	}
	return m
}

// Process converts img to gray and thresholds it. The result is a bilevel
// *image.Gray.
func (m *ThresholdMatrix) Process(img image.Image) (image.Image, error) {
	g, err := grayCopy(img)
	if err != nil {
		return nil, err
	}
	for i, v := range g.Pix {
		g.Pix[i] = m[v]
	}
	return g, nil
}

// Atkinson is the Atkinson error-diffusion ditherer. It spreads 6/8 of the
// quantization error over six neighbours, 1/8 each:
//
//	    *  1  1
//	 1  1  1
//	    1
type Atkinson struct {
	ThresholdMatrix
}

// NewAtkinson returns an Atkinson ditherer with the default threshold.
func NewAtkinson() *Atkinson {
	return &Atkinson{ThresholdMatrix: NewThresholdMatrix(DefaultThreshold)}
}

var atkinsonTaps = []diffusionTap{
	{dx: 1, dy: 0, num: 1}, {dx: 2, dy: 0, num: 1},
	{dx: -1, dy: 1, num: 1}, {dx: 0, dy: 1, num: 1}, {dx: 1, dy: 1, num: 1},
	{dx: 0, dy: 2, num: 1},
}

// Process dithers img to a bilevel *image.Gray.
func (a *Atkinson) Process(img image.Image) (image.Image, error) {
	return diffuse(img, &a.ThresholdMatrix, atkinsonTaps, 3)
}

// FloydSteinberg is the Floyd-Steinberg error-diffusion ditherer:
//
//	       *  7
//	 3  5  1      (/16)
type FloydSteinberg struct {
	ThresholdMatrix
}

// NewFloydSteinberg returns a Floyd-Steinberg ditherer with the default
// threshold.
func NewFloydSteinberg() *FloydSteinberg {
	return &FloydSteinberg{ThresholdMatrix: NewThresholdMatrix(DefaultThreshold)}
}

var floydSteinbergTaps = []diffusionTap{
	{dx: 1, dy: 0, num: 7},
	{dx: -1, dy: 1, num: 3}, {dx: 0, dy: 1, num: 5}, {dx: 1, dy: 1, num: 1},
}

// Process dithers img to a bilevel *image.Gray.
func (f *FloydSteinberg) Process(img image.Image) (image.Image, error) {
	return diffuse(img, &f.ThresholdMatrix, floydSteinbergTaps, 4)
}

// diffusionTap is one neighbour receiving num/2^shift of the error.
type diffusionTap struct {
	dx, dy int
	num    int
}

// diffuse scans left to right, top to bottom. Each neighbour update is
// clamped to [0, 255] as it is written.
func diffuse(img image.Image, m *ThresholdMatrix, taps []diffusionTap, shift uint) (image.Image, error) {
	g, err := grayCopy(img)
	if err != nil {
		return nil, err
	}

	w, h := g.Rect.Dx(), g.Rect.Dy()
	for y := 0; y < h; y++ {
		row := g.Pix[y*g.Stride:]
		for x := 0; x < w; x++ {
			old := int(row[x])
			nv := int(m[old])
			row[x] = uint8(nv)
			e := old - nv
			if e == 0 {
				continue
			}
			for _, t := range taps {
				nx, ny := x+t.dx, y+t.dy
				if nx < 0 || nx >= w || ny >= h {
					continue
				}
				i := ny*g.Stride + nx
				g.Pix[i] = uint8(clampInt(int(g.Pix[i])+(e*t.num)>>shift, 0, 255))
			}
		}
	}
	return g, nil
}

// grayCopy returns img as a new *image.Gray whose Pix starts at the bounds
// origin.
func grayCopy(img image.Image) (*image.Gray, error) {
	conv, err := mode.L.Convert(img)
	if err != nil {
		return nil, err
	}
	return conv.(*image.Gray), nil
}
