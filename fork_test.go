package ggpipe

import (
	"errors"
	"image"
	"maps"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// pairSplitter hands the same image to two bands and composes by
// returning the second processed band.
type pairSplitter struct {
	bands int
}

func (pairSplitter) Labels() []string { return []string{"a", "b"} }

func (s pairSplitter) Split(img image.Image) ([]image.Image, error) {
	n := s.bands
	if n == 0 {
		n = 2
	}
	out := make([]image.Image, n)
	for i := range out {
		out[i] = img
	}
	return out, nil
}

func (pairSplitter) Compose(bands ...image.Image) (image.Image, error) {
	return bands[len(bands)-1], nil
}

func TestNewForkNeedsSplitter(t *testing.T) {
	if _, err := NewFork(nil, nil); !errors.Is(err, ErrConfiguration) {
		t.Errorf("NewFork(nil) error = %v, want ErrConfiguration", err)
	}
}

func TestForkAutoVivification(t *testing.T) {
	calls := 0
	f, err := NewFork(pairSplitter{}, countingFactory(&calls))
	if err != nil {
		t.Fatalf("NewFork: %v", err)
	}
	if f.Len() != 0 {
		t.Errorf("Len = %d, want 0 before any lookup", f.Len())
	}

	first, err := f.At("a")
	if err != nil {
		t.Fatalf("At: %v", err)
	}
	second, err := f.GetOrCreate("a")
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	if first != second {
		t.Error("second lookup returned a different processor")
	}
	if calls != 1 {
		t.Errorf("factory calls = %d, want 1", calls)
	}
	if f.Len() != 1 || !f.Has("a") {
		t.Errorf("Len = %d, Has(a) = %v; want the created band stored", f.Len(), f.Has("a"))
	}
	if !f.Contains(first) {
		t.Error("Contains(created) = false")
	}
}

func TestForkGetNeverCreates(t *testing.T) {
	calls := 0
	f, _ := NewFork(pairSplitter{}, countingFactory(&calls))

	def := &markProc{id: 99}
	if got := f.Get("a", def); got != Processor(def) {
		t.Errorf("Get = %v, want default", got)
	}
	if calls != 0 || f.Len() != 0 {
		t.Errorf("Get created a band: calls = %d, Len = %d", calls, f.Len())
	}
}

func TestForkFactoryReturningNil(t *testing.T) {
	var typedNil *markProc
	for name, factory := range map[string]Factory{
		"nil":       func() Processor { return nil },
		"typed nil": func() Processor { return typedNil },
	} {
		t.Run(name, func(t *testing.T) {
			f, err := NewFork(pairSplitter{}, factory)
			if err != nil {
				t.Fatalf("NewFork: %v", err)
			}
			if _, err := f.At("a"); !errors.Is(err, ErrConfiguration) {
				t.Errorf("At error = %v, want ErrConfiguration", err)
			}
			if f.Has("a") {
				t.Error("failed creation stored a band")
			}
			if _, err := f.Process(testRGB(1, 1)); !errors.Is(err, ErrConfiguration) {
				t.Errorf("Process error = %v, want ErrConfiguration", err)
			}
		})
	}
}

func TestForkProcessCreatesEveryBand(t *testing.T) {
	calls := 0
	f, _ := NewFork(pairSplitter{}, countingFactory(&calls))

	img := testRGB(2, 2)
	out, err := f.Process(img)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if out != image.Image(img) {
		t.Error("identity bands changed the image")
	}
	if calls != 2 || f.Len() != 2 {
		t.Errorf("calls = %d, Len = %d; want 2, 2", calls, f.Len())
	}
}

func TestForkBandMismatch(t *testing.T) {
	f, _ := NewFork(pairSplitter{bands: 3}, nil)
	if _, err := f.Process(testRGB(1, 1)); !errors.Is(err, ErrBandMismatch) {
		t.Errorf("Process error = %v, want ErrBandMismatch", err)
	}
}

func TestForkPropagatesBandError(t *testing.T) {
	for _, parallel := range []bool{false, true} {
		f, _ := NewFork(pairSplitter{}, nil,
			WithBand("b", failing(errBoom)),
			WithParallel(parallel),
		)
		out, err := f.Process(testRGB(1, 1))
		if err != errBoom {
			t.Errorf("parallel=%v: error = %v, want errBoom unchanged", parallel, err)
		}
		if out != nil {
			t.Errorf("parallel=%v: failed fork returned an image", parallel)
		}
	}
}

func TestForkAllOrder(t *testing.T) {
	a, b := &markProc{1}, &markProc{2}
	f, _ := NewFork(pairSplitter{}, nil, WithBands(map[string]Processor{"b": b, "a": a}))

	var labels []string
	var procs []Processor
	for label, p := range f.All() {
		labels = append(labels, label)
		procs = append(procs, p)
	}
	if diff := cmp.Diff([]string{"a", "b"}, labels); diff != "" {
		t.Errorf("labels (-want +got):\n%s", diff)
	}
	if procs[0] != Processor(a) || procs[1] != Processor(b) {
		t.Errorf("processors = %v, want [a b]", procs)
	}
}

func TestForkMutation(t *testing.T) {
	f, _ := NewFork(pairSplitter{}, nil)
	a := &markProc{1}

	if err := f.Set("a", a); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := f.Set("b", nil); err != nil {
		t.Fatalf("Set nil: %v", err)
	}
	if got := f.Get("b", a); got != Processor(NoOp{}) {
		t.Errorf("Set(nil) stored %v, want NoOp", got)
	}

	if err := f.Delete("a"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if f.Has("a") {
		t.Error("Delete left the band")
	}
	if err := f.Delete("a"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete error = %v, want ErrNotFound", err)
	}

	if err := f.Update(map[string]Processor{"a": a, "x": nil}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got := slices.Sorted(maps.Keys(f.bands))
	if diff := cmp.Diff([]string{"a", "b", "x"}, got); diff != "" {
		t.Errorf("stored labels (-want +got):\n%s", diff)
	}
}

func TestForkUnsupportedOperations(t *testing.T) {
	f, _ := NewFork(pairSplitter{}, nil)

	_, indexErr := f.Index(NoOp{})
	_, lastErr := f.Last()
	for name, err := range map[string]error{
		"Index":  indexErr,
		"Last":   lastErr,
		"Append": f.Append(NoOp{}),
		"Extend": f.Extend(slices.Values([]Processor{NoOp{}})),
	} {
		if !errors.Is(err, ErrUnsupported) {
			t.Errorf("%s error = %v, want ErrUnsupported", name, err)
		}
	}
	if f.Storage() != StorageMapping {
		t.Errorf("Storage = %v, want Mapping", f.Storage())
	}
}

func TestForkDefaultFactory(t *testing.T) {
	f, _ := NewFork(pairSplitter{}, nil)
	if _, ok := f.DefaultFactory()().(NoOp); !ok {
		t.Error("nil factory did not become NoOpFactory")
	}
	f.SetParallel(true)
	if !f.Parallel() {
		t.Error("SetParallel(true) not reflected")
	}
}
