package ggpipe

import (
	"fmt"
	"image"
	"reflect"
)

// Processor transforms one image into another.
//
// Process must not modify img: callers may keep using it afterwards.
// Implementations return a new image, or img itself when nothing changes.
type Processor interface {
	Process(img image.Image) (image.Image, error)
}

// ProcessorFunc adapts an ordinary function to the Processor interface.
// A method value such as p.Process is in turn a ProcessorFunc.
type ProcessorFunc func(img image.Image) (image.Image, error)

// Process calls f(img).
func (f ProcessorFunc) Process(img image.Image) (image.Image, error) {
	return f(img)
}

// NoOp is the identity processor.
type NoOp struct{}

// Process returns img unchanged.
func (NoOp) Process(img image.Image) (image.Image, error) {
	return img, nil
}

// Factory constructs a processor for a band that has none yet.
// Each call must return a new, independent processor.
type Factory func() Processor

// NoOpFactory is the identity factory: bands without an explicit processor
// pass through unchanged.
func NoOpFactory() Processor {
	return NoOp{}
}

// FactoryFor converts a dynamically typed default into a Factory.
//
// It accepts nil and NoOp (both meaning NoOpFactory), a Factory, or a
// func() Processor. Any other value, including a processor instance, fails
// with ErrConfiguration: a default must construct processors, not be one.
func FactoryFor(v any) (Factory, error) {
	switch f := v.(type) {
	case nil:
		return NoOpFactory, nil
	case NoOp, *NoOp:
		return NoOpFactory, nil
	case Factory:
		if f == nil {
			return NoOpFactory, nil
		}
		return f, nil
	case func() Processor:
		if f == nil {
			return NoOpFactory, nil
		}
		return Factory(f), nil
	default:
		return nil, fmt.Errorf("%w: default factory must be callable, got %T", ErrConfiguration, v)
	}
}

// normalize replaces a nil processor with a fresh NoOp.
func normalize(p Processor) Processor {
	if p == nil || isNil(p) {
		return NoOp{}
	}
	return p
}

// isNil reports whether p holds a typed nil pointer or func.
func isNil(p Processor) bool {
	v := reflect.ValueOf(p)
	switch v.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Slice, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}

// sameProcessor reports whether a and b are the same processor: equal
// values for comparable types, the same function for funcs.
// It never panics on uncomparable dynamic types.
func sameProcessor(a, b Processor) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if ta.Kind() == reflect.Func {
		return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
	}
	if !ta.Comparable() {
		return false
	}
	return a == b
}
