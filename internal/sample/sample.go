// Package sample reads each module of a located QR symbol through its
// affine transform, producing a module matrix in the QR-standard
// convention (1 = dark module).
//
// Grounded on qrdecode.py's sample_qr_matrix.
package sample

import (
	"github.com/deepteams/qrvision/internal/geometry"
	"github.com/deepteams/qrvision/internal/tables"
)

// Matrix holds a sampled, QR-convention module matrix: Bits[y][x] is 1 for
// a dark module, 0 for light.
type Matrix struct {
	Size int
	Bits [][]uint8
}

// At returns the module value at (x, y).
func (m Matrix) At(x, y int) uint8 {
	return m.Bits[y][x]
}

// Sample reads every module of a version-sized symbol through t, each
// module center offset by 0.5 from its integer coordinate, then inverts
// the sampled light/dark convention to the QR standard where 1 means
// dark.
func Sample(bits [][]uint8, t geometry.Transform, qrVersion int) Matrix {
	size := tables.Size(qrVersion)
	out := make([][]uint8, size)
	for y := 0; y < size; y++ {
		out[y] = make([]uint8, size)
		for x := 0; x < size; x++ {
			px, py := t.Apply(float64(x)+0.5, float64(y)+0.5)
			xi, yi := int(px), int(py)
			light := uint8(1) // out-of-bounds samples count as light
			if yi >= 0 && yi < len(bits) && xi >= 0 && xi < len(bits[0]) {
				light = bits[yi][xi]
			}
			out[y][x] = 1 - light
		}
	}
	return Matrix{Size: size, Bits: out}
}
