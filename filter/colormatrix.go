package filter

import (
	"image"

	icolor "github.com/gogpu/ggpipe/internal/color"
	"github.com/gogpu/ggpipe/mode"
)

// ColorMatrix applies a 4x5 color transformation matrix to an image.
// The transformation is:
//
//	[R']   [a00 a01 a02 a03 a04]   [R]
//	[G'] = [a10 a11 a12 a13 a14] * [G]
//	[B']   [a20 a21 a22 a23 a24]   [B]
//	[A']   [a30 a31 a32 a33 a34]   [A]
//	                               [1]
//
// The fifth column provides bias/offset values. Color values are straight
// (not premultiplied) in [0, 255] during transformation, then clamped.
//
// A *image.Gray input is treated as opaque gray and produces a
// *image.Gray: the transformed color is reduced back to luma. Any other
// input produces a *image.NRGBA.
type ColorMatrix struct {
	// Matrix is the 4x5 transformation matrix in row-major order.
	// [0-4] = row 0 (R), [5-9] = row 1 (G), [10-14] = row 2 (B), [15-19] = row 3 (A)
	Matrix [20]float32
}

// NewColorMatrix creates a color matrix filter with the given matrix.
func NewColorMatrix(matrix [20]float32) *ColorMatrix {
	return &ColorMatrix{Matrix: matrix}
}

// NewIdentity creates a color matrix that passes colors through unchanged.
func NewIdentity() *ColorMatrix {
	return &ColorMatrix{
		Matrix: [20]float32{
			1, 0, 0, 0, 0, // R
			0, 1, 0, 0, 0, // G
			0, 0, 1, 0, 0, // B
			0, 0, 0, 1, 0, // A
		},
	}
}

// NewBrightness creates a filter that adjusts brightness.
// factor: 0.0 = black, 1.0 = unchanged, 2.0 = twice as bright
func NewBrightness(factor float32) *ColorMatrix {
	return &ColorMatrix{
		Matrix: [20]float32{
			factor, 0, 0, 0, 0,
			0, factor, 0, 0, 0,
			0, 0, factor, 0, 0,
			0, 0, 0, 1, 0,
		},
	}
}

// NewContrast creates a filter that adjusts contrast around mid-gray.
// factor: 0.0 = gray, 1.0 = unchanged, 2.0 = high contrast
func NewContrast(factor float32) *ColorMatrix {
	// (color - 128) * factor + 128
	offset := 128 * (1 - factor)
	return &ColorMatrix{
		Matrix: [20]float32{
			factor, 0, 0, 0, offset,
			0, factor, 0, 0, offset,
			0, 0, factor, 0, offset,
			0, 0, 0, 1, 0,
		},
	}
}

// NewSaturation creates a filter that adjusts color saturation.
// factor: 0.0 = grayscale, 1.0 = unchanged, 2.0 = oversaturated
func NewSaturation(factor float32) *ColorMatrix {
	// Rec. 709 luminance weights
	const (
		lumR = 0.2126
		lumG = 0.7152
		lumB = 0.0722
	)
	inv := 1 - factor

	return &ColorMatrix{
		Matrix: [20]float32{
			lumR*inv + factor, lumG * inv, lumB * inv, 0, 0,
			lumR * inv, lumG*inv + factor, lumB * inv, 0, 0,
			lumR * inv, lumG * inv, lumB*inv + factor, 0, 0,
			0, 0, 0, 1, 0,
		},
	}
}

// NewGrayscale creates a filter that desaturates completely.
func NewGrayscale() *ColorMatrix {
	return NewSaturation(0)
}

// NewSepia creates a filter that applies a sepia tone.
func NewSepia() *ColorMatrix {
	return &ColorMatrix{
		Matrix: [20]float32{
			0.393, 0.769, 0.189, 0, 0,
			0.349, 0.686, 0.168, 0, 0,
			0.272, 0.534, 0.131, 0, 0,
			0, 0, 0, 1, 0,
		},
	}
}

// NewInvert creates a filter that inverts colors.
func NewInvert() *ColorMatrix {
	return &ColorMatrix{
		Matrix: [20]float32{
			-1, 0, 0, 0, 255,
			0, -1, 0, 0, 255,
			0, 0, -1, 0, 255,
			0, 0, 0, 1, 0,
		},
	}
}

// NewOpacity creates a filter that multiplies alpha by factor.
// factor: 0.0 = fully transparent, 1.0 = unchanged
func NewOpacity(factor float32) *ColorMatrix {
	return &ColorMatrix{
		Matrix: [20]float32{
			1, 0, 0, 0, 0,
			0, 1, 0, 0, 0,
			0, 0, 1, 0, 0,
			0, 0, 0, factor, 0,
		},
	}
}

// Process applies the matrix to every pixel of img.
func (f *ColorMatrix) Process(img image.Image) (image.Image, error) {
	if img == nil {
		return nil, mode.ErrNilImage
	}
	if g, ok := img.(*image.Gray); ok {
		return f.processGray(g), nil
	}

	conv, err := mode.RGBA.Convert(img)
	if err != nil {
		return nil, err
	}
	dst := conv.(*image.NRGBA)

	b := dst.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := dst.Pix[dst.PixOffset(b.Min.X, y):dst.PixOffset(b.Max.X, y)]
		for i := 0; i+3 < len(row); i += 4 {
			r, g, bb, a := f.apply(float32(row[i]), float32(row[i+1]), float32(row[i+2]), float32(row[i+3]))
			row[i], row[i+1], row[i+2], row[i+3] = clampUint8(r), clampUint8(g), clampUint8(bb), clampUint8(a)
		}
	}
	return dst, nil
}

// processGray maps every gray level through a table built once per call.
func (f *ColorMatrix) processGray(src *image.Gray) *image.Gray {
	var lut [256]uint8
	for v := range lut {
		l := float32(v)
		r, g, b, _ := f.apply(l, l, l, 255)
		lut[v] = icolor.Luma(clampUint8(r), clampUint8(g), clampUint8(b))
	}

	b := src.Bounds()
	dst := image.NewGray(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		s := src.Pix[src.PixOffset(b.Min.X, y):src.PixOffset(b.Max.X, y)]
		d := dst.Pix[dst.PixOffset(b.Min.X, y):dst.PixOffset(b.Max.X, y)]
		for i, v := range s {
			d[i] = lut[v]
		}
	}
	return dst
}

func (f *ColorMatrix) apply(r, g, b, a float32) (nr, ng, nb, na float32) {
	m := &f.Matrix
	nr = m[0]*r + m[1]*g + m[2]*b + m[3]*a + m[4]
	ng = m[5]*r + m[6]*g + m[7]*b + m[8]*a + m[9]
	nb = m[10]*r + m[11]*g + m[12]*b + m[13]*a + m[14]
	na = m[15]*r + m[16]*g + m[17]*b + m[18]*a + m[19]
	return nr, ng, nb, na
}

// Multiply returns a new filter that is the product of this filter and another.
// The result applies this filter first, then the other.
func (f *ColorMatrix) Multiply(other *ColorMatrix) *ColorMatrix {
	a := &other.Matrix
	b := &f.Matrix

	result := &ColorMatrix{}
	r := &result.Matrix

	// 4x5 * 4x5, treating the 5th column as a constant input of 1
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			sum := float32(0)
			for k := 0; k < 4; k++ {
				sum += a[row*5+k] * b[k*5+col]
			}
			r[row*5+col] = sum
		}
		r[row*5+4] = a[row*5+0]*b[4] + a[row*5+1]*b[9] +
			a[row*5+2]*b[14] + a[row*5+3]*b[19] + a[row*5+4]
	}

	return result
}
