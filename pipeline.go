package ggpipe

import (
	"fmt"
	"image"
	"iter"
	"slices"
)

// Pipe is a read-only sequence of processors applied in order.
// The zero value is an empty pipe, which is the identity.
type Pipe struct {
	steps []Processor
}

// NewPipe returns a pipe applying steps left to right. Nil steps become
// NoOp. The pipe keeps its own copy of the step list.
func NewPipe(steps ...Processor) *Pipe {
	p := &Pipe{steps: make([]Processor, len(steps))}
	for i, s := range steps {
		p.steps[i] = normalize(s)
	}
	return p
}

// Process threads img through every step. The output of step i is the
// input of step i+1. The first failing step's error is returned unchanged
// and no later step runs.
func (p *Pipe) Process(img image.Image) (image.Image, error) {
	Logger().Debug("pipe: process", "steps", len(p.steps))
	for _, s := range p.steps {
		out, err := s.Process(img)
		if err != nil {
			return nil, err
		}
		img = out
	}
	return img, nil
}

// All yields positions and steps in application order.
func (p *Pipe) All() iter.Seq2[int, Processor] {
	return func(yield func(int, Processor) bool) {
		for i, s := range p.steps {
			if !yield(i, s) {
				return
			}
		}
	}
}

// Steps returns a copy of the step list.
func (p *Pipe) Steps() []Processor {
	return slices.Clone(p.steps)
}

// Len returns the number of steps.
func (p *Pipe) Len() int {
	return len(p.steps)
}

// Contains reports whether s is one of the steps.
func (p *Pipe) Contains(s Processor) bool {
	_, err := p.Index(s)
	return err == nil
}

// At returns the step at position i.
func (p *Pipe) At(i int) (Processor, error) {
	if i < 0 || i >= len(p.steps) {
		return nil, fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, len(p.steps))
	}
	return p.steps[i], nil
}

// Get returns the step at position i, or def when i is out of range.
func (p *Pipe) Get(i int, def Processor) Processor {
	if i < 0 || i >= len(p.steps) {
		return def
	}
	return p.steps[i]
}

// Index returns the position of the first occurrence of s.
func (p *Pipe) Index(s Processor) (int, error) {
	for i, step := range p.steps {
		if sameProcessor(step, s) {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %T in pipe", ErrNotFound, s)
}

// Last returns the final step.
func (p *Pipe) Last() (Processor, error) {
	if len(p.steps) == 0 {
		return nil, fmt.Errorf("%w: empty pipe has no last step", ErrNotFound)
	}
	return p.steps[len(p.steps)-1], nil
}

// Storage returns StorageSequence.
func (p *Pipe) Storage() Storage {
	return StorageSequence
}

// Pipeline is a Pipe that can be modified in place.
type Pipeline struct {
	Pipe
}

// NewPipeline returns a mutable pipeline applying steps left to right.
func NewPipeline(steps ...Processor) *Pipeline {
	return &Pipeline{Pipe: *NewPipe(steps...)}
}

// Set replaces the step at position i. A nil step becomes NoOp.
func (p *Pipeline) Set(i int, s Processor) error {
	if i < 0 || i >= len(p.steps) {
		return fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, len(p.steps))
	}
	p.steps[i] = normalize(s)
	return nil
}

// Delete removes the step at position i.
func (p *Pipeline) Delete(i int) error {
	if i < 0 || i >= len(p.steps) {
		return fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, len(p.steps))
	}
	p.steps = slices.Delete(p.steps, i, i+1)
	return nil
}

// Append adds steps to the end of the pipeline.
func (p *Pipeline) Append(ss ...Processor) error {
	for _, s := range ss {
		p.steps = append(p.steps, normalize(s))
	}
	return nil
}

// Extend adds every step of seq to the end of the pipeline.
func (p *Pipeline) Extend(seq iter.Seq[Processor]) error {
	for s := range seq {
		p.steps = append(p.steps, normalize(s))
	}
	return nil
}

// Update is not supported: a pipeline is ordered, not keyed.
func (p *Pipeline) Update(map[int]Processor) error {
	return unsupported("Pipeline", "Update")
}

var (
	_ Container[int]        = (*Pipe)(nil)
	_ MutableContainer[int] = (*Pipeline)(nil)
)
