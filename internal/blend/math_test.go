package blend

import "testing"

// TestMulDiv255 tests the multiply and divide by 255 helper function.
func TestMulDiv255(t *testing.T) {
	tests := []struct {
		name string
		a, b byte
		want byte
	}{
		{"zero * zero", 0, 0, 0},
		{"zero * max", 0, 255, 0},
		{"max * zero", 255, 0, 0},
		{"max * max", 255, 255, 255},
		{"half * half", 128, 128, 64},
		{"255 * 128", 255, 128, 128},
		{"1 * 1", 1, 1, 0},
		{"100 * 100", 100, 100, 39},
		{"200 * 200", 200, 200, 156},
		{"250 * 250", 250, 250, 245},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mulDiv255(tt.a, tt.b)
			if got != tt.want {
				t.Errorf("mulDiv255(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

// TestMulDiv255Exhaustive checks every byte pair against integer division.
func TestMulDiv255Exhaustive(t *testing.T) {
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			want := byte(a * b / 255)
			if got := mulDiv255(byte(a), byte(b)); got != want {
				t.Fatalf("mulDiv255(%d, %d) = %d, want %d", a, b, got, want)
			}
		}
	}
}

func TestInv255(t *testing.T) {
	for _, x := range []byte{0, 1, 128, 254, 255} {
		if got := inv255(x); got != 255-x {
			t.Errorf("inv255(%d) = %d, want %d", x, got, 255-x)
		}
	}
}
