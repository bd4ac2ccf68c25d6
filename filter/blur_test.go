package filter

import (
	"errors"
	"image"
	"image/color"
	"math"
	"testing"
)

func TestGaussianKernel(t *testing.T) {
	tests := []struct {
		radius float64
		size   int
	}{
		{0, 1},
		{-3, 1},
		{1, 7},
		{2.5, 17},
	}

	for _, tt := range tests {
		k := GaussianKernel(tt.radius)
		if len(k) != tt.size {
			t.Errorf("GaussianKernel(%v) len = %d, want %d", tt.radius, len(k), tt.size)
			continue
		}
		sum := float64(0)
		for i, v := range k {
			sum += float64(v)
			if v != k[len(k)-1-i] {
				t.Errorf("GaussianKernel(%v) not symmetric at %d", tt.radius, i)
			}
		}
		if math.Abs(sum-1) > 1e-5 {
			t.Errorf("GaussianKernel(%v) sum = %v, want 1", tt.radius, sum)
		}
	}
}

func TestCachedGaussianKernelReuses(t *testing.T) {
	a := CachedGaussianKernel(1.5)
	b := CachedGaussianKernel(1.5)
	if &a[0] != &b[0] {
		t.Error("CachedGaussianKernel returned a new kernel for the same radius")
	}
}

func TestGaussianBlurUniform(t *testing.T) {
	out, err := NewGaussianBlur(2).Process(uniformGray(9, 7, 100))
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	g, ok := out.(*image.Gray)
	if !ok {
		t.Fatalf("Process returned %T, want *image.Gray", out)
	}
	for i, v := range g.Pix {
		if v != 100 {
			t.Fatalf("Pix[%d] = %d, want 100", i, v)
		}
	}
}

func TestGaussianBlurSpreadsImpulse(t *testing.T) {
	src := uniformGray(9, 9, 0)
	src.SetGray(4, 4, color.Gray{Y: 255})

	out, err := NewGaussianBlur(1).Process(src)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	g := out.(*image.Gray)
	center, near := g.GrayAt(4, 4).Y, g.GrayAt(5, 4).Y
	if center >= 255 || near == 0 || near >= center {
		t.Errorf("center = %d, neighbour = %d; want 255 > center > neighbour > 0", center, near)
	}
	if src.GrayAt(5, 4).Y != 0 {
		t.Error("input modified")
	}
}

func TestGaussianBlurColorReturnsRGBA(t *testing.T) {
	src := uniformNRGBA(4, 4, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
	out, err := NewGaussianBlur(1).Process(src)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	rgba, ok := out.(*image.RGBA)
	if !ok {
		t.Fatalf("Process returned %T, want *image.RGBA", out)
	}
	if got, want := rgba.RGBAAt(2, 2), (color.RGBA{R: 200, G: 100, B: 50, A: 255}); got != want {
		t.Errorf("pixel = %v, want %v", got, want)
	}
}

func TestGaussianBlurRadiusZeroCopies(t *testing.T) {
	src := grayRow(1, 2, 3)
	out, err := NewGaussianBlur(0).Process(src)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	g := out.(*image.Gray)
	if g == src {
		t.Error("Process returned its input")
	}
	if g.Pix[2] != 3 {
		t.Errorf("Pix[2] = %d, want 3", g.Pix[2])
	}
}

func TestGaussianBlurNegativeRadius(t *testing.T) {
	_, err := NewGaussianBlur(-1).Process(uniformGray(1, 1, 0))
	if !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("error = %v, want ErrInvalidParameter", err)
	}
}
