package ggpipe

import (
	"errors"
	"image"
	"testing"
)

func TestNoOpIsIdentity(t *testing.T) {
	img := testRGB(3, 3)
	out, err := NoOp{}.Process(img)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if out != image.Image(img) {
		t.Error("NoOp returned a different image")
	}
}

func TestProcessorFunc(t *testing.T) {
	called := false
	p := ProcessorFunc(func(img image.Image) (image.Image, error) {
		called = true
		return img, nil
	})
	if _, err := p.Process(testRGB(1, 1)); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if !called {
		t.Error("ProcessorFunc did not call the function")
	}
}

func TestFactoryFor(t *testing.T) {
	n := 0
	counting := countingFactory(&n)

	tests := []struct {
		name    string
		v       any
		wantErr bool
		wantNop bool
	}{
		{"nil", nil, false, true},
		{"NoOp value", NoOp{}, false, true},
		{"NoOp pointer", &NoOp{}, false, true},
		{"nil Factory", Factory(nil), false, true},
		{"Factory", counting, false, false},
		{"plain func", func() Processor { return &markProc{} }, false, false},
		{"processor instance", &markProc{}, true, false},
		{"string", "atkinson", true, false},
		{"wrong func", func() int { return 0 }, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := FactoryFor(tt.v)
			if tt.wantErr {
				if !errors.Is(err, ErrConfiguration) {
					t.Errorf("FactoryFor error = %v, want ErrConfiguration", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("FactoryFor: %v", err)
			}
			p := f()
			if _, isNop := p.(NoOp); isNop != tt.wantNop {
				t.Errorf("factory produced %T, want NoOp = %v", p, tt.wantNop)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	var typedNil *markProc
	for name, p := range map[string]Processor{"nil": nil, "typed nil": typedNil} {
		if _, ok := normalize(p).(NoOp); !ok {
			t.Errorf("normalize(%s) = %T, want NoOp", name, normalize(p))
		}
	}
	m := &markProc{}
	if normalize(m) != Processor(m) {
		t.Error("normalize replaced a non-nil processor")
	}
}

func TestSameProcessor(t *testing.T) {
	a, b := &markProc{id: 1}, &markProc{id: 1}
	fn := ProcessorFunc(func(img image.Image) (image.Image, error) { return img, nil })
	other := ProcessorFunc(func(img image.Image) (image.Image, error) { return nil, nil })

	tests := []struct {
		name string
		x, y Processor
		want bool
	}{
		{"same pointer", a, a, true},
		{"equal pointees", a, b, false},
		{"same func", fn, fn, true},
		{"different funcs", fn, other, false},
		{"inks by tag", InkCyan, InkCyan, true},
		{"different inks", InkCyan, InkKey, false},
		{"mixed types", a, InkCyan, false},
		{"nil", nil, nil, true},
	}
	for _, tt := range tests {
		if got := sameProcessor(tt.x, tt.y); got != tt.want {
			t.Errorf("%s: sameProcessor = %v, want %v", tt.name, got, tt.want)
		}
	}
}
