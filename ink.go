package ggpipe

import (
	"fmt"
	"image"
	"image/color"

	icolor "github.com/gogpu/ggpipe/internal/color"
	"github.com/gogpu/ggpipe/mode"
)

// Ink is one of a fixed set of printing inks. Each ink is a processor that
// renders a grayscale band as a monochrome layer of that ink on white paper:
// level 0 (no ink) becomes white, level 255 (full coverage) the ink color.
//
// Inks are compared by tag. They are immutable and safe for concurrent use.
type Ink uint8

// The inks. The numeric values index the ink color table.
const (
	InkWhite Ink = iota
	InkCyan
	InkMagenta
	InkYellow
	InkKey
	InkRed
	InkGreen
	InkBlue

	inkCount
)

var inkTable = [inkCount]struct {
	name string
	rgb  icolor.RGB8
}{
	InkWhite:   {"White", icolor.RGB8{R: 255, G: 255, B: 255}},
	InkCyan:    {"Cyan", icolor.RGB8{R: 0, G: 250, B: 250}},
	InkMagenta: {"Magenta", icolor.RGB8{R: 250, G: 0, B: 250}},
	InkYellow:  {"Yellow", icolor.RGB8{R: 250, G: 250, B: 0}},
	InkKey:     {"Key", icolor.RGB8{R: 0, G: 0, B: 0}},
	InkRed:     {"Red", icolor.RGB8{R: 255, G: 0, B: 0}},
	InkGreen:   {"Green", icolor.RGB8{R: 0, G: 255, B: 0}},
	InkBlue:    {"Blue", icolor.RGB8{R: 0, G: 0, B: 255}},
}

// inkRamps holds the colorize table of every ink, built once.
var inkRamps [inkCount]*icolor.Ramp

func init() {
	for i := range inkRamps {
		inkRamps[i] = icolor.NewRamp(inkTable[InkWhite].rgb, inkTable[i].rgb)
	}
}

// Valid reports whether i is one of the defined inks.
func (i Ink) Valid() bool {
	return i < inkCount
}

// String returns the ink name.
func (i Ink) String() string {
	if !i.Valid() {
		return fmt.Sprintf("Ink(%d)", uint8(i))
	}
	return inkTable[i].name
}

// RGB returns the resolved color of the ink.
func (i Ink) RGB() color.RGBA {
	if !i.Valid() {
		return color.RGBA{}
	}
	c := inkTable[i].rgb
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// Process converts img to grayscale and colorizes it between white and the
// ink color. The result is an opaque *image.RGBA.
func (i Ink) Process(img image.Image) (image.Image, error) {
	if !i.Valid() {
		return nil, fmt.Errorf("ggpipe: %v is not an ink", i)
	}
	g, err := mode.L.Convert(img)
	if err != nil {
		return nil, err
	}
	gray := g.(*image.Gray)
	ramp := inkRamps[i]

	b := gray.Bounds()
	out := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, gg, bb := ramp.At(gray.Pix[gray.PixOffset(x, y)])
			o := out.PixOffset(x, y)
			out.Pix[o], out.Pix[o+1], out.Pix[o+2], out.Pix[o+3] = r, gg, bb, 255
		}
	}
	return out, nil
}

// CMYKInks returns the process inks in C, M, Y, K order.
func CMYKInks() []Ink {
	return []Ink{InkCyan, InkMagenta, InkYellow, InkKey}
}

// CMYInks returns the three color process inks.
func CMYInks() []Ink {
	return []Ink{InkCyan, InkMagenta, InkYellow}
}

// RGBInks returns the light primaries in R, G, B order.
func RGBInks() []Ink {
	return []Ink{InkRed, InkGreen, InkBlue}
}

// BGRInks returns the light primaries in B, G, R order.
func BGRInks() []Ink {
	return []Ink{InkBlue, InkGreen, InkRed}
}

// InkForBand returns the ink printed for a band label of the CMYK or RGB
// mode.
func InkForBand(label string) (Ink, error) {
	switch label {
	case "C":
		return InkCyan, nil
	case "M":
		return InkMagenta, nil
	case "Y":
		return InkYellow, nil
	case "K":
		return InkKey, nil
	case "R":
		return InkRed, nil
	case "G":
		return InkGreen, nil
	case "B":
		return InkBlue, nil
	default:
		return 0, fmt.Errorf("%w: no ink for band %q", ErrNotFound, label)
	}
}

// isInk reports whether p is exactly the ink tag want.
func isInk(p Processor, want Ink) bool {
	got, ok := p.(Ink)
	return ok && got == want
}
