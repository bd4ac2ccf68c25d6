package color

import "testing"

func TestNewRampEndpoints(t *testing.T) {
	white := RGB8{255, 255, 255}
	cyan := RGB8{0, 250, 250}
	r := NewRamp(white, cyan)

	if rr, g, b := r.At(0); rr != 255 || g != 255 || b != 255 {
		t.Errorf("At(0) = (%d, %d, %d), want white", rr, g, b)
	}
	if rr, g, b := r.At(255); rr != 0 || g != 250 || b != 250 {
		t.Errorf("At(255) = (%d, %d, %d), want (0, 250, 250)", rr, g, b)
	}
}

func TestNewRampFloorsTowardDarker(t *testing.T) {
	r := NewRamp(RGB8{255, 255, 255}, RGB8{250, 250, 250})
	// 255 + floor(1*(-5)/255) = 254
	if got, _, _ := r.At(1); got != 254 {
		t.Errorf("At(1).R = %d, want 254", got)
	}
}

func TestNewRampInverse(t *testing.T) {
	r := NewRamp(RGB8{255, 255, 255}, RGB8{0, 0, 0})
	for i := 0; i < 256; i++ {
		got, _, _ := r.At(uint8(i))
		if int(got) != 255-i {
			t.Fatalf("At(%d).R = %d, want %d", i, got, 255-i)
		}
	}
}

func TestNewRampIdentity(t *testing.T) {
	r := NewRamp(RGB8{0, 0, 0}, RGB8{255, 255, 255})
	for i := 0; i < 256; i++ {
		got, _, _ := r.At(uint8(i))
		if int(got) != i {
			t.Fatalf("At(%d).R = %d, want %d", i, got, i)
		}
	}
}
