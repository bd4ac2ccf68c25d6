package ggpipe

import (
	"context"
	"fmt"
	"image"
	"iter"

	"golang.org/x/sync/errgroup"
)

// Splitter defines how a fork fans an image out into bands and back.
//
// Split must return exactly one band per label, in the order of Labels.
// Compose receives the processed bands in the same order.
type Splitter interface {
	Labels() []string
	Split(img image.Image) ([]image.Image, error)
	Compose(bands ...image.Image) (image.Image, error)
}

// Fork is a keyed container mapping band labels to processors. Processing
// splits the image, runs each band through its processor and composes the
// results.
//
// A band without a processor gets one from the default factory the first
// time it is looked up (see GetOrCreate); the result is stored and reused.
//
// A Fork is not safe for concurrent mutation. Callers must serialize
// Set, Delete, Update and mode changes against Process.
type Fork struct {
	splitter Splitter
	factory  Factory
	bands    map[string]Processor
	parallel bool
	kind     string
}

// NewFork returns a fork over s. A nil factory means NoOpFactory.
func NewFork(s Splitter, factory Factory, opts ...ForkOption) (*Fork, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: fork needs a splitter", ErrConfiguration)
	}
	o := applyForkOptions(opts)
	f := &Fork{}
	f.init("Fork", s, factory, o)
	return f, nil
}

// init sets up f. Embedding types call it with themselves as splitter.
func (f *Fork) init(kind string, s Splitter, factory Factory, o forkOptions) {
	if factory == nil {
		factory = NoOpFactory
	}
	f.kind = kind
	f.splitter = s
	f.factory = factory
	f.bands = make(map[string]Processor, len(o.bands))
	f.parallel = o.parallel
	for _, e := range o.bands {
		f.bands[e.label] = normalize(e.p)
	}
}

// Labels returns the band labels in canonical order.
func (f *Fork) Labels() []string {
	return f.splitter.Labels()
}

// DefaultFactory returns the factory used for bands without a processor.
func (f *Fork) DefaultFactory() Factory {
	return f.factory
}

// Parallel reports whether bands are processed concurrently.
func (f *Fork) Parallel() bool {
	return f.parallel
}

// SetParallel switches concurrent band processing on or off.
func (f *Fork) SetParallel(enabled bool) {
	f.parallel = enabled
}

// Process splits img, runs every band through its processor and composes
// the processed bands.
func (f *Fork) Process(img image.Image) (image.Image, error) {
	labels := f.splitter.Labels()

	bands, err := f.splitter.Split(img)
	if err != nil {
		return nil, err
	}

	procs := make([]Processor, 0, len(labels))
	for _, label := range labels {
		p, err := f.GetOrCreate(label)
		if err != nil {
			return nil, err
		}
		procs = append(procs, p)
	}

	if len(bands) != len(labels) || len(procs) != len(labels) {
		return nil, fmt.Errorf("%w: %d bands, %d labels, %d processors",
			ErrBandMismatch, len(bands), len(labels), len(procs))
	}

	Logger().Debug("fork: process", "kind", f.kind, "bands", labels, "parallel", f.parallel)

	out, err := f.dispatch(procs, bands)
	if err != nil {
		return nil, err
	}

	if n := len(f.splitter.Labels()); n != len(labels) {
		return nil, fmt.Errorf("%w: labels changed from %d to %d during processing",
			ErrBandMismatch, len(labels), n)
	}
	return f.splitter.Compose(out...)
}

// dispatch applies procs[i] to bands[i], sequentially or fork-join.
func (f *Fork) dispatch(procs []Processor, bands []image.Image) ([]image.Image, error) {
	out := make([]image.Image, len(bands))

	if !f.parallel || len(bands) < 2 {
		for i, p := range procs {
			r, err := p.Process(bands[i])
			if err != nil {
				return nil, err
			}
			out[i] = r
		}
		return out, nil
	}

	g, ctx := errgroup.WithContext(context.Background())
	for i, p := range procs {
		g.Go(func() error {
			// A failed sibling cancels bands that have not started.
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := p.Process(bands[i])
			if err != nil {
				return err
			}
			out[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetOrCreate returns the processor for label. When there is none, it calls
// the default factory exactly once, stores the result under label and
// returns it. A factory returning nil fails with ErrConfiguration and
// stores nothing.
func (f *Fork) GetOrCreate(label string) (Processor, error) {
	if p, ok := f.bands[label]; ok {
		return p, nil
	}
	p := f.factory()
	if p == nil || isNil(p) {
		return nil, fmt.Errorf("%w: default factory returned nil for band %q", ErrConfiguration, label)
	}
	f.bands[label] = p
	Logger().Debug("fork: created band processor", "kind", f.kind, "label", label, "processor", fmt.Sprintf("%T", p))
	return p, nil
}

// At is GetOrCreate: looking up a missing band stores a default for it.
func (f *Fork) At(label string) (Processor, error) {
	return f.GetOrCreate(label)
}

// Get returns the processor stored for label, or def. It never creates one.
func (f *Fork) Get(label string, def Processor) Processor {
	if p, ok := f.bands[label]; ok {
		return p
	}
	return def
}

// Has reports whether a processor is stored for label.
func (f *Fork) Has(label string) bool {
	_, ok := f.bands[label]
	return ok
}

// All yields the band labels in canonical order with their processors,
// creating defaults for bands that have none. Iteration stops early if the
// factory fails; Process reports that error.
func (f *Fork) All() iter.Seq2[string, Processor] {
	return func(yield func(string, Processor) bool) {
		for _, label := range f.splitter.Labels() {
			p, err := f.GetOrCreate(label)
			if err != nil {
				return
			}
			if !yield(label, p) {
				return
			}
		}
	}
}

// Len returns the number of stored band processors. Bands that were never
// assigned or looked up are not counted.
func (f *Fork) Len() int {
	return len(f.bands)
}

// Contains reports whether p is stored for any band.
func (f *Fork) Contains(p Processor) bool {
	for _, q := range f.bands {
		if sameProcessor(q, p) {
			return true
		}
	}
	return false
}

// Index is not supported by forks.
func (f *Fork) Index(Processor) (string, error) {
	return "", unsupported(f.kind, "Index")
}

// Last is not supported by forks.
func (f *Fork) Last() (Processor, error) {
	return nil, unsupported(f.kind, "Last")
}

// Storage returns StorageMapping.
func (f *Fork) Storage() Storage {
	return StorageMapping
}

// Set stores p for label. A nil p stores a fresh NoOp.
func (f *Fork) Set(label string, p Processor) error {
	f.bands[label] = normalize(p)
	return nil
}

// Delete removes the processor for label. The next lookup of label creates
// a new default.
func (f *Fork) Delete(label string) error {
	if _, ok := f.bands[label]; !ok {
		return fmt.Errorf("%w: band %q", ErrNotFound, label)
	}
	delete(f.bands, label)
	return nil
}

// Append is not supported by forks.
func (f *Fork) Append(...Processor) error {
	return unsupported(f.kind, "Append")
}

// Extend is not supported by forks.
func (f *Fork) Extend(iter.Seq[Processor]) error {
	return unsupported(f.kind, "Extend")
}

// Update stores every entry, as Set does for each.
func (f *Fork) Update(entries map[string]Processor) error {
	for label, p := range entries {
		f.bands[label] = normalize(p)
	}
	return nil
}

var _ MutableContainer[string] = (*Fork)(nil)
