// Package ggpipe composes image processors into pipelines and band forks.
//
// # Overview
//
// Everything in ggpipe is a Processor: a function from one image.Image to
// another. Containers of processors are processors too, so they nest:
//
//   - Pipe / Pipeline: apply processors one after another
//   - Fork: split an image into bands, process each band, compose them
//   - BandFork: a Fork over the bands of a color mode (RGB, CMYK, ...)
//   - OverprintFork: a CMYK BandFork that renders every plate in its ink
//     and multiplies the plates like a printing press
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/ggpipe"
//	    "github.com/gogpu/ggpipe/filter"
//	)
//
//	// Dither only the green band
//	f, err := ggpipe.NewBandFork(nil, ggpipe.WithBand("G", filter.NewAtkinson()))
//	out, err := f.Process(img)
//
//	// Halftone-style print simulation
//	atkinson := func() ggpipe.Processor { return filter.NewAtkinson() }
//	op, err := ggpipe.NewOverprintFork(atkinson)
//	out, err = op.Process(img)
//
// # Containers
//
// Pipes are keyed by position, forks by band label (see Container and
// MutableContainer). A fork creates the processor of a band from its
// default Factory the first time the band is needed and keeps it.
//
// # Errors
//
// Configuration problems are reported with the sentinel errors in this
// package. Errors returned by a contained processor reach the caller
// unchanged, so errors.Is and errors.As work on them directly.
//
// # Logging
//
// ggpipe is silent by default. Install a logger with SetLogger to see
// Debug records for band creation, dispatch and ink application.
package ggpipe

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
