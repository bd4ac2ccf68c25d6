package mode

import (
	"image"
	"image/color"

	icolor "github.com/gogpu/ggpipe/internal/color"
)

// Process converts img to m. It makes a Mode usable wherever a processor
// is expected.
func (m Mode) Process(img image.Image) (image.Image, error) {
	return m.Convert(img)
}

// Convert returns a copy of img in the concrete image type of m:
//
//	L     *image.Gray
//	LA    *image.NRGBA (gray color channels)
//	RGB   *image.RGBA  (alpha forced opaque)
//	RGBA  *image.NRGBA
//	CMYK  *image.CMYK  (K = 0, C/M/Y = 255 - R/G/B)
//	YCbCr *image.YCbCr (4:4:4)
//
// Alpha is dropped, not composited, when the target has none.
// The input is never modified.
func (m Mode) Convert(img image.Image) (image.Image, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	switch m {
	case L:
		return toGray(img), nil
	case LA:
		return toLA(img), nil
	case RGB:
		return toRGB(img), nil
	case RGBA:
		return toNRGBA(img), nil
	case CMYK:
		return toCMYK(img), nil
	case YCbCr:
		return toYCbCr(img), nil
	default:
		return nil, ErrUnknownMode
	}
}

// toNRGBA returns straight-alpha 8-bit pixels for any image.
func toNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(b)
	switch src := img.(type) {
	case *image.NRGBA:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			copy(out.Pix[out.PixOffset(b.Min.X, y):], src.Pix[src.PixOffset(b.Min.X, y):src.PixOffset(b.Max.X, y)])
		}
	case *image.Gray:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				v := src.Pix[src.PixOffset(x, y)]
				out.SetNRGBA(x, y, color.NRGBA{R: v, G: v, B: v, A: 255})
			}
		}
	default:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				out.SetNRGBA(x, y, color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA))
			}
		}
	}
	return out
}

func toGray(img image.Image) *image.Gray {
	b := img.Bounds()
	out := image.NewGray(b)
	if src, ok := img.(*image.Gray); ok {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			copy(out.Pix[out.PixOffset(b.Min.X, y):], src.Pix[src.PixOffset(b.Min.X, y):src.PixOffset(b.Max.X, y)])
		}
		return out
	}
	n := asNRGBA(img)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			p := n.NRGBAAt(x, y)
			out.Pix[out.PixOffset(x, y)] = icolor.Luma(p.R, p.G, p.B)
		}
	}
	return out
}

func toLA(img image.Image) *image.NRGBA {
	n := toNRGBA(img)
	b := n.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := n.PixOffset(x, y)
			l := icolor.Luma(n.Pix[i], n.Pix[i+1], n.Pix[i+2])
			n.Pix[i], n.Pix[i+1], n.Pix[i+2] = l, l, l
		}
	}
	return n
}

func toRGB(img image.Image) *image.RGBA {
	n := asNRGBA(img)
	b := n.Bounds()
	out := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			p := n.NRGBAAt(x, y)
			out.SetRGBA(x, y, color.RGBA{R: p.R, G: p.G, B: p.B, A: 255})
		}
	}
	return out
}

func toCMYK(img image.Image) *image.CMYK {
	b := img.Bounds()
	out := image.NewCMYK(b)
	if src, ok := img.(*image.CMYK); ok {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			copy(out.Pix[out.PixOffset(b.Min.X, y):], src.Pix[src.PixOffset(b.Min.X, y):src.PixOffset(b.Max.X, y)])
		}
		return out
	}
	n := asNRGBA(img)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			p := n.NRGBAAt(x, y)
			out.SetCMYK(x, y, color.CMYK{C: 255 - p.R, M: 255 - p.G, Y: 255 - p.B})
		}
	}
	return out
}

func toYCbCr(img image.Image) *image.YCbCr {
	b := img.Bounds()
	out := image.NewYCbCr(b, image.YCbCrSubsampleRatio444)
	if src, ok := img.(*image.YCbCr); ok && src.SubsampleRatio == image.YCbCrSubsampleRatio444 {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				yi, ci := out.YOffset(x, y), out.COffset(x, y)
				out.Y[yi] = src.Y[src.YOffset(x, y)]
				out.Cb[ci] = src.Cb[src.COffset(x, y)]
				out.Cr[ci] = src.Cr[src.COffset(x, y)]
			}
		}
		return out
	}
	n := asNRGBA(img)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			p := n.NRGBAAt(x, y)
			yy, cb, cr := color.RGBToYCbCr(p.R, p.G, p.B)
			yi, ci := out.YOffset(x, y), out.COffset(x, y)
			out.Y[yi], out.Cb[ci], out.Cr[ci] = yy, cb, cr
		}
	}
	return out
}

// asNRGBA returns img itself when it already is *image.NRGBA, saving a copy
// for read-only use.
func asNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok {
		return n
	}
	return toNRGBA(img)
}
