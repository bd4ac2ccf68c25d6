package ggpipe

import (
	"fmt"
	"image"

	"github.com/gogpu/ggpipe/mode"
)

// BandFork is a fork whose bands are the bands of a color mode.
// Processing converts the image to the mode, splits it into one gray image
// per band, processes each band and merges the results in the same mode.
//
// The default mode is RGB.
type BandFork struct {
	Fork

	mode   mode.Mode
	locked bool
}

// NewBandFork returns a band fork. A nil factory means NoOpFactory.
//
// An unknown mode given through WithMode or WithModeName fails with an
// error matching both ErrConfiguration and ErrInvalidMode.
func NewBandFork(factory Factory, opts ...ForkOption) (*BandFork, error) {
	o := applyForkOptions(opts)

	f := &BandFork{mode: mode.RGB}
	if o.mode != nil {
		m, err := resolveMode(o.mode)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
		}
		f.mode = m
	}
	f.Fork.init("BandFork", f, factory, o)
	return f, nil
}

// resolveMode wraps mode resolution failures in ErrInvalidMode.
func resolveMode(v any) (mode.Mode, error) {
	m, err := mode.Resolve(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidMode, err)
	}
	return m, nil
}

// Mode returns the current color mode.
func (f *BandFork) Mode() mode.Mode {
	return f.mode
}

// Locked reports whether the mode is fixed.
func (f *BandFork) Locked() bool {
	return f.locked
}

// SetMode changes the color mode. v is a mode.Mode or a mode name.
//
// A value that does not resolve fails with ErrInvalidMode; a locked fork
// rejects any mode other than its own with ErrModeLocked. In both cases
// the fork is left unchanged.
func (f *BandFork) SetMode(v any) error {
	m, err := resolveMode(v)
	if err != nil {
		return err
	}
	if m == f.mode {
		return nil
	}
	if f.locked {
		return fmt.Errorf("%w: %s is fixed to %v, cannot switch to %v", ErrModeLocked, f.kind, f.mode, m)
	}
	Logger().Debug("fork: mode changed", "kind", f.kind, "from", f.mode, "to", m)
	f.mode = m
	return nil
}

// Labels returns the band labels of the current mode.
func (f *BandFork) Labels() []string {
	return f.mode.Bands()
}

// Split converts img to the current mode and returns its bands.
func (f *BandFork) Split(img image.Image) ([]image.Image, error) {
	return splitMode(f.mode, img)
}

// Compose merges processed bands in the current mode.
func (f *BandFork) Compose(bands ...image.Image) (image.Image, error) {
	return f.mode.Merge(bands...)
}

func splitMode(m mode.Mode, img image.Image) ([]image.Image, error) {
	grays, err := m.Split(img)
	if err != nil {
		return nil, err
	}
	out := make([]image.Image, len(grays))
	for i, g := range grays {
		out[i] = g
	}
	return out, nil
}

var (
	_ Splitter                 = (*BandFork)(nil)
	_ MutableContainer[string] = (*BandFork)(nil)
)
