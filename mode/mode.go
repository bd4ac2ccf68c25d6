// Package mode defines the color modes ggpipe forks split images by.
//
// A Mode names a color model and its canonical band labels, and converts,
// splits and merges images in that model. Band data is always *image.Gray.
//
//	bands, err := mode.CMYK.Split(img) // C, M, Y, K planes
//	out, err := mode.CMYK.Merge(bands[0], bands[1], bands[2], bands[3])
package mode

import (
	"errors"
	"fmt"
	"slices"

	"golang.org/x/text/cases"
)

// Mode errors.
var (
	// ErrUnknownMode is returned when a name or value is not a known mode.
	ErrUnknownMode = errors.New("mode: unknown mode")

	// ErrNilImage is returned when a nil image is converted or split.
	ErrNilImage = errors.New("mode: nil image")

	// ErrBandCount is returned when Merge gets the wrong number of bands.
	ErrBandCount = errors.New("mode: wrong band count")

	// ErrSizeMismatch is returned when merged bands differ in size.
	ErrSizeMismatch = errors.New("mode: band sizes differ")
)

// Mode is a color model. The zero value is not a valid mode.
type Mode uint8

const (
	// L is 8-bit luminance.
	L Mode = iota + 1

	// LA is luminance with straight alpha.
	LA

	// RGB is opaque 8-bit red, green, blue.
	RGB

	// RGBA is 8-bit red, green, blue with straight alpha.
	RGBA

	// CMYK is cyan, magenta, yellow and key (black) ink coverage.
	CMYK

	// YCbCr is JPEG-style luma and chroma, sampled 4:4:4.
	YCbCr

	modeEnd
)

// Info contains metadata about a mode.
type Info struct {
	// Name is the canonical mode name.
	Name string

	// Bands are the band labels in split/merge order.
	Bands []string

	// HasAlpha indicates if the last band is alpha.
	HasAlpha bool
}

var infoTable = [modeEnd]Info{
	L:     {Name: "L", Bands: []string{"L"}},
	LA:    {Name: "LA", Bands: []string{"L", "A"}, HasAlpha: true},
	RGB:   {Name: "RGB", Bands: []string{"R", "G", "B"}},
	RGBA:  {Name: "RGBA", Bands: []string{"R", "G", "B", "A"}, HasAlpha: true},
	CMYK:  {Name: "CMYK", Bands: []string{"C", "M", "Y", "K"}},
	YCbCr: {Name: "YCbCr", Bands: []string{"Y", "Cb", "Cr"}},
}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m > 0 && m < modeEnd
}

// Info returns the metadata for m. Invalid modes return the zero Info.
func (m Mode) Info() Info {
	if !m.Valid() {
		return Info{}
	}
	info := infoTable[m]
	info.Bands = slices.Clone(info.Bands)
	return info
}

// String returns the canonical mode name.
func (m Mode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
	return infoTable[m].Name
}

// Bands returns the band labels of m in canonical order.
// The returned slice is a copy.
func (m Mode) Bands() []string {
	if !m.Valid() {
		return nil
	}
	return slices.Clone(infoTable[m].Bands)
}

// NumBands returns the number of bands in m.
func (m Mode) NumBands() int {
	if !m.Valid() {
		return 0
	}
	return len(infoTable[m].Bands)
}

// BandIndex returns the position of label in m's bands, or -1.
func (m Mode) BandIndex(label string) int {
	if !m.Valid() {
		return -1
	}
	return slices.Index(infoTable[m].Bands, label)
}

// Modes returns every known mode in declaration order.
func Modes() []Mode {
	out := make([]Mode, 0, modeEnd-1)
	for m := L; m < modeEnd; m++ {
		out = append(out, m)
	}
	return out
}

// Lookup finds a mode by name, ignoring case ("rgb", "CMYK", "ycbcr").
func Lookup(name string) (Mode, error) {
	folded := cases.Fold().String(name)
	for m := L; m < modeEnd; m++ {
		if cases.Fold().String(infoTable[m].Name) == folded {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}

// Resolve accepts a Mode or a mode name and returns the Mode.
func Resolve(v any) (Mode, error) {
	switch v := v.(type) {
	case Mode:
		if !v.Valid() {
			return 0, fmt.Errorf("%w: %v", ErrUnknownMode, v)
		}
		return v, nil
	case string:
		return Lookup(v)
	case fmt.Stringer:
		return Lookup(v.String())
	default:
		return 0, fmt.Errorf("%w: unsupported type %T", ErrUnknownMode, v)
	}
}
