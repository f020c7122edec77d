package raster

import "testing"

func TestNewValidation(t *testing.T) {
	if _, err := New(0, 4, 4, make([]byte, 16)); err != ErrInvalidDimensions {
		t.Errorf("expected ErrInvalidDimensions, got %v", err)
	}
	if _, err := New(4, 4, 2, make([]byte, 16)); err != ErrStrideTooSmall {
		t.Errorf("expected ErrStrideTooSmall, got %v", err)
	}
	if _, err := New(4, 4, 4, make([]byte, 4)); err != ErrBufferTooSmall {
		t.Errorf("expected ErrBufferTooSmall, got %v", err)
	}
	img, err := New(4, 4, 4, make([]byte, 16))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !img.Valid() {
		t.Error("expected valid image")
	}
}

func TestAtOutOfBounds(t *testing.T) {
	pix := make([]byte, 16)
	pix[1*4+2] = 200
	img, err := New(4, 4, 4, pix)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := img.At(2, 1); got != 200 {
		t.Errorf("At(2,1) = %d, want 200", got)
	}
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 4}} {
		if got := img.At(p[0], p[1]); got != 0 {
			t.Errorf("At(%d,%d) = %d, want 0 (out of bounds)", p[0], p[1], got)
		}
	}
	var zero Image
	if zero.At(0, 0) != 0 {
		t.Error("zero-value Image.At should return 0")
	}
}

func TestBar(t *testing.T) {
	img := Bar(40, 20, 19, 20, 255, 40)
	for y := 0; y < 20; y++ {
		for x := 0; x < 40; x++ {
			got := img.At(x, y)
			if x == 19 || x == 20 {
				if got != 255 {
					t.Fatalf("At(%d,%d) = %d, want 255", x, y, got)
				}
			} else if got != 40 {
				t.Fatalf("At(%d,%d) = %d, want 40", x, y, got)
			}
		}
	}
}

func TestRing(t *testing.T) {
	img := Ring(40, 40, 20, 20, 10, 2, 255, 0)
	// A point on the ring should be bright, the center should stay dark.
	if got := img.At(29, 20); got < 200 {
		t.Errorf("At(29,20) on the ring = %d, want bright", got)
	}
	if got := img.At(20, 20); got > 50 {
		t.Errorf("At(20,20) at center = %d, want dark", got)
	}
}
