package filter

import (
	"fmt"
	"image"
	"math"

	"github.com/gogpu/ggpipe/mode"
)

// DefaultGCRPercent is the replacement percentage NewGCR callers use when
// they have no preference.
const DefaultGCRPercent = 20

// GCR performs gray-component replacement: it converts an image to CMYK
// and moves Percent of the gray shared by C, M and Y into the K plate.
//
// At 0 the result is the naive CMYK conversion (K empty); at 100 all of
// the common gray is printed in black. The output is a *image.CMYK.
type GCR struct {
	Percent float64
}

// NewGCR returns a GCR for percent, which must be within [0, 100].
func NewGCR(percent float64) (GCR, error) {
	g := GCR{Percent: percent}
	if err := g.validate(); err != nil {
		return GCR{}, err
	}
	return g, nil
}

func (g GCR) validate() error {
	if math.IsNaN(g.Percent) || g.Percent < 0 || g.Percent > 100 {
		return fmt.Errorf("%w: gcr percentage %v outside [0, 100]", ErrInvalidParameter, g.Percent)
	}
	return nil
}

// Process separates img into CMYK with gray-component replacement.
func (g GCR) Process(img image.Image) (image.Image, error) {
	if err := g.validate(); err != nil {
		return nil, err
	}
	conv, err := mode.CMYK.Convert(img)
	if err != nil {
		return nil, err
	}
	dst := conv.(*image.CMYK)
	if g.Percent == 0 {
		return dst, nil
	}

	b := dst.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := dst.Pix[dst.PixOffset(b.Min.X, y):dst.PixOffset(b.Max.X, y)]
		for i := 0; i+3 < len(row); i += 4 {
			c, m, yy := row[i], row[i+1], row[i+2]
			gray := uint8(float64(min(c, m, yy)) * g.Percent / 100)
			row[i], row[i+1], row[i+2] = c-gray, m-gray, yy-gray
			row[i+3] = gray
		}
	}
	return dst, nil
}
