// Package datamap enumerates the codeword-carrying module positions of a
// QR symbol in the standard "zig-zag" placement order, and builds the
// function-pattern mask used to tell data modules apart from structural
// ones.
//
// Grounded on qrdecode.py's get_data_locations and
// get_alignment_pattern_locations.
package datamap

import (
	"fmt"

	"github.com/deepteams/qrvision/internal/tables"
)

// FunctionMask builds a size x size bitmap with 1 at every module
// position occupied by a finder, separator, timing pattern, version
// block (version >= 7), or alignment pattern, and 0 at every data
// module.
func FunctionMask(version int) ([][]uint8, error) {
	size := tables.Size(version)
	m := make([][]uint8, size)
	for y := range m {
		m[y] = make([]uint8, size)
	}

	fill := func(y0, y1, x0, x1 int) {
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				if y >= 0 && y < size && x >= 0 && x < size {
					m[y][x] = 1
				}
			}
		}
	}

	fill(0, 9, 0, 9)         // upper-left finder
	fill(0, 9, size-8, size) // upper-right finder
	fill(size-8, size, 0, 9) // lower-left finder
	for x := 0; x < size; x++ {
		m[6][x] = 1 // horizontal timing
	}
	for y := 0; y < size; y++ {
		m[y][6] = 1 // vertical timing
	}

	if version > 6 {
		fill(0, 6, size-11, size-8) // upper-right version block
		fill(size-11, size-8, 0, 6) // lower-left version block
	}

	centers, err := tables.AlignmentCenters(version)
	if err != nil {
		return nil, err
	}
	for _, c := range centers {
		fill(c.Y-2, c.Y+3, c.X-2, c.X+3)
	}

	return m, nil
}

// zigzagColumns builds the column traversal order: descending from
// size-1 to 7, then 5,4,3,2,1,0 — column 6 (the vertical timing
// pattern) is dropped outright, not merely shifted past.
func zigzagColumns(size int) []int {
	cols := make([]int, 0, size-1)
	for c := size - 1; c >= 7; c-- {
		cols = append(cols, c)
	}
	cols = append(cols, 5, 4, 3, 2, 1, 0)
	return cols
}

// Enumerate lists every data-module position in placement order: column
// pairs right to left (skipping the timing column), each pair swept
// alternately upward then downward, filtered against FunctionMask. The
// trailing remainder-bit modules that follow the last full codeword are
// left out, so the result holds exactly 8 positions per codeword.
func Enumerate(version int) ([]tables.Point, error) {
	size := tables.Size(version)
	if (size-1)%2 != 0 {
		return nil, fmt.Errorf("datamap: size-1 not even for version %d", version)
	}
	funcMask, err := FunctionMask(version)
	if err != nil {
		return nil, err
	}

	cols := zigzagColumns(size)
	nstrip := (size - 1) / 2

	var out []tables.Point
	for p := 0; p < nstrip; p++ {
		colA, colB := cols[2*p], cols[2*p+1]
		upward := p%2 == 0

		emit := func(y int) {
			if funcMask[y][colA] == 0 {
				out = append(out, tables.Point{X: colA, Y: y})
			}
			if funcMask[y][colB] == 0 {
				out = append(out, tables.Point{X: colB, Y: y})
			}
		}

		if upward {
			for y := size - 1; y >= 0; y-- {
				emit(y)
			}
		} else {
			for y := 0; y < size; y++ {
				emit(y)
			}
		}
	}

	nCodewords, err := tables.TotalCodewords(version)
	if err != nil {
		return nil, err
	}
	if len(out) > 8*nCodewords {
		out = out[:8*nCodewords]
	}
	return out, nil
}
