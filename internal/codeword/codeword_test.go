package codeword

import (
	"testing"

	"github.com/deepteams/qrvision/internal/sample"
	"github.com/deepteams/qrvision/internal/tables"
)

func TestExtract_PacksMSBFirst(t *testing.T) {
	// 8 locations, bits 1,0,1,0,1,0,1,0 should pack to 0xAA.
	locs := []tables.Point{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0},
		{X: 4, Y: 0}, {X: 5, Y: 0}, {X: 6, Y: 0}, {X: 7, Y: 0},
	}
	bits := []uint8{1, 0, 1, 0, 1, 0, 1, 0}
	m := sample.Matrix{Size: 8, Bits: [][]uint8{bits}}
	pattern := [][]uint8{{0, 0, 0, 0, 0, 0, 0, 0}}

	out := Extract(m, pattern, locs)
	if len(out) != 1 || out[0] != 0xAA {
		t.Fatalf("Extract = %v, want [0xAA]", out)
	}
}

func TestExtract_MaskXOR(t *testing.T) {
	locs := []tables.Point{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0},
		{X: 4, Y: 0}, {X: 5, Y: 0}, {X: 6, Y: 0}, {X: 7, Y: 0},
	}
	bits := []uint8{1, 1, 1, 1, 1, 1, 1, 1}
	m := sample.Matrix{Size: 8, Bits: [][]uint8{bits}}
	pattern := [][]uint8{{1, 0, 1, 0, 1, 0, 1, 0}}

	out := Extract(m, pattern, locs)
	if len(out) != 1 || out[0] != 0x55 {
		t.Fatalf("Extract = %v, want [0x55]", out)
	}
}

func TestExtract_DropsTrailingPartialByte(t *testing.T) {
	locs := []tables.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}
	bits := []uint8{1, 1, 1}
	m := sample.Matrix{Size: 3, Bits: [][]uint8{bits}}
	pattern := [][]uint8{{0, 0, 0}}

	out := Extract(m, pattern, locs)
	if len(out) != 0 {
		t.Fatalf("Extract = %v, want empty (partial byte dropped)", out)
	}
}
