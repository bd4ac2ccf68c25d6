package filter

import (
	"image"
	"image/color"
)

// uniformGray returns a w x h gray image filled with v.
func uniformGray(w, h int, v uint8) *image.Gray {
	g := image.NewGray(image.Rect(0, 0, w, h))
	for i := range g.Pix {
		g.Pix[i] = v
	}
	return g
}

// grayRow returns a one-row gray image with the given levels.
func grayRow(levels ...uint8) *image.Gray {
	g := image.NewGray(image.Rect(0, 0, len(levels), 1))
	copy(g.Pix, levels)
	return g
}

// uniformNRGBA returns a w x h image filled with c.
func uniformNRGBA(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}
