package ggpipe

import (
	"slices"

	"github.com/gogpu/ggpipe/mode"
)

// ForkOption configures a fork during creation.
// Use functional options to customize fork behavior.
//
// Example:
//
//	// Dither only the green band of an RGB image
//	f, err := ggpipe.NewBandFork(nil,
//	    ggpipe.WithBand("G", filter.NewAtkinson()),
//	)
//
//	// Dither every CMYK band, processing bands concurrently
//	atkinson := func() ggpipe.Processor { return filter.NewAtkinson() }
//	f, err := ggpipe.NewBandFork(atkinson,
//	    ggpipe.WithMode(mode.CMYK),
//	    ggpipe.WithParallel(true),
//	)
type ForkOption func(*forkOptions)

// bandEntry is one initial band assignment.
type bandEntry struct {
	label string
	p     Processor
}

// forkOptions holds optional configuration for fork creation.
type forkOptions struct {
	bands    []bandEntry
	mode     any
	parallel bool
	gcr      float64
}

// defaultForkOptions returns the default fork options.
func defaultForkOptions() forkOptions {
	return forkOptions{
		gcr: DefaultGCRPercent, // Used by OverprintFork only
	}
}

func applyForkOptions(opts []ForkOption) forkOptions {
	o := defaultForkOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithBand assigns p to the band label. A nil p assigns a NoOp.
// Later assignments to the same label win.
func WithBand(label string, p Processor) ForkOption {
	return func(o *forkOptions) {
		o.bands = append(o.bands, bandEntry{label: label, p: p})
	}
}

// WithBands assigns several bands at once, in sorted label order.
func WithBands(bands map[string]Processor) ForkOption {
	return func(o *forkOptions) {
		labels := make([]string, 0, len(bands))
		for l := range bands {
			labels = append(labels, l)
		}
		slices.Sort(labels)
		for _, l := range labels {
			o.bands = append(o.bands, bandEntry{label: l, p: bands[l]})
		}
	}
}

// WithMode sets the color mode of a band fork.
func WithMode(m mode.Mode) ForkOption {
	return func(o *forkOptions) {
		o.mode = m
	}
}

// WithModeName sets the color mode of a band fork by name ("RGB", "cmyk").
// An unknown name makes construction fail.
func WithModeName(name string) ForkOption {
	return func(o *forkOptions) {
		o.mode = name
	}
}

// WithParallel makes the fork process its bands concurrently.
// The bands are joined before composing; the first band error wins.
func WithParallel(enabled bool) ForkOption {
	return func(o *forkOptions) {
		o.parallel = enabled
	}
}

// WithGCR sets the gray-component replacement percentage (0-100) an
// OverprintFork uses to separate inks. Other forks ignore it.
func WithGCR(percent float64) ForkOption {
	return func(o *forkOptions) {
		o.gcr = percent
	}
}
