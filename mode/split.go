package mode

import (
	"fmt"
	"image"
	"image/color"
)

// Split converts img to m and returns one *image.Gray per band, in the order
// of m.Bands(). Every band has the bounds of img.
func (m Mode) Split(img image.Image) ([]*image.Gray, error) {
	conv, err := m.Convert(img)
	if err != nil {
		return nil, err
	}

	b := conv.Bounds()
	bands := make([]*image.Gray, m.NumBands())
	for i := range bands {
		bands[i] = image.NewGray(b)
	}

	switch src := conv.(type) {
	case *image.Gray:
		copy(bands[0].Pix, src.Pix)
	case *image.NRGBA:
		// LA keeps gray in R; RGBA keeps all four.
		picks := []int{0, 1, 2, 3}
		if m == LA {
			picks = []int{0, 3}
		}
		splitInterleaved(src.Pix, src.Stride, 4, b, picks, bands)
	case *image.RGBA:
		splitInterleaved(src.Pix, src.Stride, 4, b, []int{0, 1, 2}, bands)
	case *image.CMYK:
		splitInterleaved(src.Pix, src.Stride, 4, b, []int{0, 1, 2, 3}, bands)
	case *image.YCbCr:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				o := bands[0].PixOffset(x, y)
				bands[0].Pix[o] = src.Y[src.YOffset(x, y)]
				bands[1].Pix[o] = src.Cb[src.COffset(x, y)]
				bands[2].Pix[o] = src.Cr[src.COffset(x, y)]
			}
		}
	}
	return bands, nil
}

// splitInterleaved copies channel picks[i] of an interleaved buffer
// (freshly allocated, so stride starts at the bounds origin) into bands[i].
func splitInterleaved(pix []uint8, stride, n int, b image.Rectangle, picks []int, bands []*image.Gray) {
	for y := 0; y < b.Dy(); y++ {
		row := pix[y*stride:]
		for x := 0; x < b.Dx(); x++ {
			px := row[x*n : x*n+n]
			o := y*bands[0].Stride + x
			for i, c := range picks {
				bands[i].Pix[o] = px[c]
			}
		}
	}
}

// Merge recombines bands into an image of mode m. Bands that are not
// *image.Gray are converted to L first. The result has the bounds of the
// first band.
func (m Mode) Merge(bands ...image.Image) (image.Image, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownMode, m)
	}
	if len(bands) != m.NumBands() {
		return nil, fmt.Errorf("%w: %s needs %d, got %d", ErrBandCount, m, m.NumBands(), len(bands))
	}

	grays := make([]*image.Gray, len(bands))
	for i, band := range bands {
		if band == nil {
			return nil, fmt.Errorf("band %s: %w", infoTable[m].Bands[i], ErrNilImage)
		}
		grays[i] = asGray(band)
	}
	b := grays[0].Bounds()
	for i, g := range grays[1:] {
		if g.Bounds().Size() != b.Size() {
			return nil, fmt.Errorf("%w: band %s is %v, want %v",
				ErrSizeMismatch, infoTable[m].Bands[i+1], g.Bounds().Size(), b.Size())
		}
	}

	// at reads band i at the position of (x, y) in the first band.
	at := func(i, x, y int) uint8 {
		g := grays[i]
		gb := g.Bounds()
		return g.Pix[g.PixOffset(gb.Min.X+x-b.Min.X, gb.Min.Y+y-b.Min.Y)]
	}

	switch m {
	case L:
		out := image.NewGray(b)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				out.Pix[out.PixOffset(x, y)] = at(0, x, y)
			}
		}
		return out, nil
	case LA:
		out := image.NewNRGBA(b)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				l := at(0, x, y)
				out.SetNRGBA(x, y, color.NRGBA{R: l, G: l, B: l, A: at(1, x, y)})
			}
		}
		return out, nil
	case RGB:
		out := image.NewRGBA(b)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				out.SetRGBA(x, y, color.RGBA{R: at(0, x, y), G: at(1, x, y), B: at(2, x, y), A: 255})
			}
		}
		return out, nil
	case RGBA:
		out := image.NewNRGBA(b)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				out.SetNRGBA(x, y, color.NRGBA{R: at(0, x, y), G: at(1, x, y), B: at(2, x, y), A: at(3, x, y)})
			}
		}
		return out, nil
	case CMYK:
		out := image.NewCMYK(b)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				out.SetCMYK(x, y, color.CMYK{C: at(0, x, y), M: at(1, x, y), Y: at(2, x, y), K: at(3, x, y)})
			}
		}
		return out, nil
	default: // YCbCr
		out := image.NewYCbCr(b, image.YCbCrSubsampleRatio444)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				yi, ci := out.YOffset(x, y), out.COffset(x, y)
				out.Y[yi], out.Cb[ci], out.Cr[ci] = at(0, x, y), at(1, x, y), at(2, x, y)
			}
		}
		return out, nil
	}
}

func asGray(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok {
		return g
	}
	return toGray(img)
}
