package mode

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestModeBands(t *testing.T) {
	tests := []struct {
		mode Mode
		want []string
	}{
		{L, []string{"L"}},
		{LA, []string{"L", "A"}},
		{RGB, []string{"R", "G", "B"}},
		{RGBA, []string{"R", "G", "B", "A"}},
		{CMYK, []string{"C", "M", "Y", "K"}},
		{YCbCr, []string{"Y", "Cb", "Cr"}},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.mode.Bands()); diff != "" {
				t.Errorf("Bands() mismatch (-want +got):\n%s", diff)
			}
			if got := tt.mode.NumBands(); got != len(tt.want) {
				t.Errorf("NumBands() = %d, want %d", got, len(tt.want))
			}
		})
	}
}

func TestBandsReturnsCopy(t *testing.T) {
	b := RGB.Bands()
	b[0] = "X"
	if RGB.Bands()[0] != "R" {
		t.Error("Bands() exposed the internal table")
	}
}

func TestInvalidMode(t *testing.T) {
	var m Mode
	if m.Valid() {
		t.Error("zero Mode should be invalid")
	}
	if m.Bands() != nil {
		t.Error("invalid Mode should have no bands")
	}
	if got := m.String(); got != "Mode(0)" {
		t.Errorf("String() = %q, want Mode(0)", got)
	}
	if got := m.BandIndex("R"); got != -1 {
		t.Errorf("BandIndex() = %d, want -1", got)
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		want Mode
	}{
		{"RGB", RGB},
		{"rgb", RGB},
		{"cmyk", CMYK},
		{"YCBCR", YCbCr},
		{"l", L},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Lookup(tt.name)
			if err != nil {
				t.Fatalf("Lookup(%q) error = %v", tt.name, err)
			}
			if got != tt.want {
				t.Errorf("Lookup(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}

	if _, err := Lookup("HSV"); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("Lookup(HSV) error = %v, want ErrUnknownMode", err)
	}
}

func TestResolve(t *testing.T) {
	if m, err := Resolve(CMYK); err != nil || m != CMYK {
		t.Errorf("Resolve(CMYK) = %v, %v", m, err)
	}
	if m, err := Resolve("rgba"); err != nil || m != RGBA {
		t.Errorf("Resolve(rgba) = %v, %v", m, err)
	}
	for _, bad := range []any{42, Mode(0), Mode(200), nil, "nope"} {
		if _, err := Resolve(bad); !errors.Is(err, ErrUnknownMode) {
			t.Errorf("Resolve(%v) error = %v, want ErrUnknownMode", bad, err)
		}
	}
}

func TestModes(t *testing.T) {
	want := []Mode{L, LA, RGB, RGBA, CMYK, YCbCr}
	if diff := cmp.Diff(want, Modes()); diff != "" {
		t.Errorf("Modes() mismatch (-want +got):\n%s", diff)
	}
}

// testImage returns a small opaque image with distinct channel values.
func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x * 60), G: uint8(y * 100), B: uint8(200 - x*30), A: 255})
		}
	}
	return img
}

func TestConvertNil(t *testing.T) {
	for _, m := range Modes() {
		if _, err := m.Convert(nil); !errors.Is(err, ErrNilImage) {
			t.Errorf("%v.Convert(nil) error = %v, want ErrNilImage", m, err)
		}
	}
}

func TestConvertTypes(t *testing.T) {
	src := testImage()
	tests := []struct {
		mode Mode
		want string
	}{
		{L, "*image.Gray"},
		{LA, "*image.NRGBA"},
		{RGB, "*image.RGBA"},
		{RGBA, "*image.NRGBA"},
		{CMYK, "*image.CMYK"},
		{YCbCr, "*image.YCbCr"},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			out, err := tt.mode.Process(src)
			if err != nil {
				t.Fatalf("Process() error = %v", err)
			}
			if got := typeName(out); got != tt.want {
				t.Errorf("Process() type = %s, want %s", got, tt.want)
			}
			if out.Bounds() != src.Bounds() {
				t.Errorf("bounds = %v, want %v", out.Bounds(), src.Bounds())
			}
		})
	}
}

func typeName(img image.Image) string {
	switch img.(type) {
	case *image.Gray:
		return "*image.Gray"
	case *image.NRGBA:
		return "*image.NRGBA"
	case *image.RGBA:
		return "*image.RGBA"
	case *image.CMYK:
		return "*image.CMYK"
	case *image.YCbCr:
		return "*image.YCbCr"
	default:
		return "other"
	}
}

func TestConvertCMYKIsNaive(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 1, 1))
	src.SetRGBA(0, 0, color.RGBA{R: 10, G: 128, B: 255, A: 255})

	out, err := CMYK.Convert(src)
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	got := out.(*image.CMYK).CMYKAt(0, 0)
	want := color.CMYK{C: 245, M: 127, Y: 0, K: 0}
	if got != want {
		t.Errorf("CMYKAt(0, 0) = %v, want %v", got, want)
	}
}

func TestConvertLuma(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 1, 1))
	src.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})

	out, err := L.Convert(src)
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if got := out.(*image.Gray).GrayAt(0, 0).Y; got != 76 {
		t.Errorf("luma of red = %d, want 76", got)
	}
}

func TestConvertDoesNotAliasInput(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 2, 2))
	src.Pix[0] = 7
	out, err := L.Convert(src)
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	out.(*image.Gray).Pix[0] = 99
	if src.Pix[0] != 7 {
		t.Error("Convert() returned an alias of its input")
	}
}
