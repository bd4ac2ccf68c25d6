package ggpipe

import (
	"errors"
	"image"
	"image/color"
)

var errBoom = errors.New("boom")

// markProc is an identity processor with an identity of its own.
type markProc struct {
	id int
}

func (m *markProc) Process(img image.Image) (image.Image, error) {
	return img, nil
}

// countingFactory returns a factory that counts its calls in n.
func countingFactory(n *int) Factory {
	return func() Processor {
		*n++
		return &markProc{id: *n}
	}
}

// failing returns a processor that always fails with err.
func failing(err error) Processor {
	return ProcessorFunc(func(image.Image) (image.Image, error) {
		return nil, err
	})
}

// addLevel returns a processor adding d to every gray level, so
// sequential composition is observable.
func addLevel(d uint8) Processor {
	return ProcessorFunc(func(img image.Image) (image.Image, error) {
		src := img.(*image.Gray)
		out := image.NewGray(src.Bounds())
		for i, v := range src.Pix {
			out.Pix[i] = v + d
		}
		return out, nil
	})
}

// testRGB returns an opaque w x h gradient.
func testRGB(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(x * 255 / max(w-1, 1)),
				G: uint8(y * 255 / max(h-1, 1)),
				B: uint8((x + y) * 7),
				A: 255,
			})
		}
	}
	return img
}

// rgbaPix returns the pixels of img as an *image.RGBA buffer.
func rgbaPix(img image.Image) []uint8 {
	if r, ok := img.(*image.RGBA); ok {
		return r.Pix
	}
	b := img.Bounds()
	out := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out.Set(x, y, img.At(x, y))
		}
	}
	return out.Pix
}
