package ggpipe

import (
	"fmt"
	"image"
	"math"
	"slices"

	"github.com/gogpu/ggpipe/filter"
	"github.com/gogpu/ggpipe/internal/blend"
	"github.com/gogpu/ggpipe/mode"
)

// DefaultGCRPercent is the gray-component replacement an OverprintFork uses
// unless WithGCR says otherwise.
const DefaultGCRPercent = 20

// OverprintFork simulates printing: it separates an image into C, M, Y and
// K ink coverage, processes each plate, renders every plate in its ink on
// white and multiplies the plates together.
//
// The mode is always CMYK. Every band's processor chain ends with the
// band's ink; the fork re-establishes this after Set, Delete and Update.
type OverprintFork struct {
	BandFork

	gcr filter.GCR
}

// NewOverprintFork returns an overprint fork. A nil factory means
// NoOpFactory. Bands the options leave unset are filled from the factory,
// then every band gets its ink.
//
// WithMode or WithModeName with anything but CMYK fails with an error
// matching ErrConfiguration and ErrModeLocked. A WithGCR percentage
// outside [0, 100] fails with ErrConfiguration.
func NewOverprintFork(factory Factory, opts ...ForkOption) (*OverprintFork, error) {
	o := applyForkOptions(opts)

	if o.mode != nil {
		m, err := resolveMode(o.mode)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
		}
		if m != mode.CMYK {
			return nil, fmt.Errorf("%w: %w: overprint is CMYK only, got %v", ErrConfiguration, ErrModeLocked, m)
		}
	}
	if math.IsNaN(o.gcr) || o.gcr < 0 || o.gcr > 100 {
		return nil, fmt.Errorf("%w: gcr percentage %v outside [0, 100]", ErrConfiguration, o.gcr)
	}

	f := &OverprintFork{gcr: filter.GCR{Percent: o.gcr}}
	f.mode = mode.CMYK
	f.locked = true
	f.Fork.init("OverprintFork", f, factory, o)

	if err := f.ApplyInks(); err != nil {
		return nil, err
	}
	return f, nil
}

// GCR returns the gray-component replacement percentage.
func (f *OverprintFork) GCR() float64 {
	return f.gcr.Percent
}

// Split separates img into C, M, Y and K plates after gray-component
// replacement.
func (f *OverprintFork) Split(img image.Image) ([]image.Image, error) {
	sep, err := f.gcr.Process(img)
	if err != nil {
		return nil, err
	}
	return splitMode(mode.CMYK, sep)
}

// Compose multiplies the inked plates onto each other. The result is an
// opaque *image.RGBA.
func (f *OverprintFork) Compose(bands ...image.Image) (image.Image, error) {
	layers := make([]*image.RGBA, len(bands))
	for i, b := range bands {
		rgb, err := mode.RGB.Convert(b)
		if err != nil {
			return nil, err
		}
		layers[i] = rgb.(*image.RGBA)
	}
	return blend.Reduce(blend.ModeMultiply, layers...)
}

// ApplyInks makes every band's chain end with the band's ink, in C, M, Y, K
// order. It is idempotent.
//
// A *Pipeline gets the ink appended unless its last step already is that
// ink. Another container whose last step is the ink is kept. Anything else
// is wrapped into a new Pipeline followed by the ink.
func (f *OverprintFork) ApplyInks() error {
	for _, label := range f.Labels() {
		if err := f.applyInk(label); err != nil {
			return err
		}
	}
	return nil
}

// lastStepper is a container that knows its last step.
type lastStepper interface {
	Last() (Processor, error)
}

func (f *OverprintFork) applyInk(label string) error {
	ink, err := InkForBand(label)
	if err != nil {
		return err
	}
	p, err := f.GetOrCreate(label)
	if err != nil {
		return err
	}

	switch c := p.(type) {
	case *Pipeline:
		if last, err := c.Last(); err == nil && isInk(last, ink) {
			return nil
		}
		Logger().Debug("overprint: ink appended", "label", label, "ink", ink)
		return c.Append(ink)
	case lastStepper:
		if last, err := c.Last(); err == nil && isInk(last, ink) {
			return nil
		}
	}

	Logger().Debug("overprint: ink wrapped", "label", label, "ink", ink, "processor", fmt.Sprintf("%T", p))
	return f.Fork.Set(label, NewPipeline(p, ink))
}

// Set stores p for label and, for a plate label, appends the plate's ink.
func (f *OverprintFork) Set(label string, p Processor) error {
	if err := f.Fork.Set(label, p); err != nil {
		return err
	}
	if !slices.Contains(f.Labels(), label) {
		return nil
	}
	return f.applyInk(label)
}

// Delete removes the processor for label. A plate immediately gets a fresh
// default followed by its ink.
func (f *OverprintFork) Delete(label string) error {
	if err := f.Fork.Delete(label); err != nil {
		return err
	}
	if !slices.Contains(f.Labels(), label) {
		return nil
	}
	return f.applyInk(label)
}

// Update stores every entry, then re-applies the inks.
func (f *OverprintFork) Update(entries map[string]Processor) error {
	if err := f.Fork.Update(entries); err != nil {
		return err
	}
	return f.ApplyInks()
}

var (
	_ Splitter                 = (*OverprintFork)(nil)
	_ MutableContainer[string] = (*OverprintFork)(nil)
)
