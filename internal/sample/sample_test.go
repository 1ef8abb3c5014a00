package sample

import (
	"testing"

	"github.com/deepteams/qrvision/internal/geometry"
)

func TestSample_Inversion(t *testing.T) {
	// Identity transform: module (x,y) -> pixel (x,y) directly.
	tr := geometry.Transform{A: 1, D: 1}

	bits := make([][]uint8, 21)
	for y := range bits {
		bits[y] = make([]uint8, 21)
		for x := range bits[y] {
			bits[y][x] = 1 // all light
		}
	}
	bits[0][0] = 0 // one dark pixel at module (0,0)'s sample point would be (0.5,0.5) -> pixel (0,0) floors there

	m := Sample(bits, tr, 1)
	if m.Size != 21 {
		t.Fatalf("Size = %d, want 21", m.Size)
	}
	if m.At(0, 0) != 1 {
		t.Fatalf("module (0,0) = %d, want 1 (dark pixel inverted to 1)", m.At(0, 0))
	}
	if m.At(1, 1) != 0 {
		t.Fatalf("module (1,1) = %d, want 0 (light pixel inverted to 0)", m.At(1, 1))
	}
}

func TestSample_OutOfBoundsTreatedAsLight(t *testing.T) {
	tr := geometry.Transform{A: 1, D: 1, E: -1000, F: -1000}
	bits := [][]uint8{{1}}
	m := Sample(bits, tr, 1)
	if m.At(0, 0) != 0 {
		t.Fatalf("out-of-bounds module = %d, want 0 (treated as light, inverted)", m.At(0, 0))
	}
}
