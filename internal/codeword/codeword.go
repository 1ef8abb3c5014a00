// Package codeword reads the unmasked data bits at the data-module map's
// positions and packs them into 8-bit codewords.
//
// Grounded on qrdecode.py's extract_codewords.
package codeword

import (
	"github.com/deepteams/qrvision/internal/datamap"
	"github.com/deepteams/qrvision/internal/mask"
	"github.com/deepteams/qrvision/internal/sample"
	"github.com/deepteams/qrvision/internal/tables"
)

// Extract XORs pattern over m, reads bits at locs in order (first bit is
// the codeword's most significant bit), and packs every 8 into a byte.
// A trailing partial byte, which cannot occur for any valid QR version,
// is dropped.
func Extract(m sample.Matrix, pattern [][]uint8, locs []tables.Point) []byte {
	nwords := len(locs) / 8
	out := make([]byte, nwords)
	for i := 0; i < nwords; i++ {
		var b byte
		for k := 0; k < 8; k++ {
			p := locs[i*8+k]
			bit := m.At(p.X, p.Y) ^ pattern[p.Y][p.X]
			b = b<<1 | bit
		}
		out[i] = b
	}
	return out
}

// ExtractForVersion is a convenience wrapper that builds the mask
// pattern and data-module map for m's version internally.
func ExtractForVersion(m sample.Matrix, version, maskPattern int) ([]byte, error) {
	pattern, err := mask.Generate(m.Size, maskPattern)
	if err != nil {
		return nil, err
	}
	locs, err := datamap.Enumerate(version)
	if err != nil {
		return nil, err
	}
	return Extract(m, pattern, locs), nil
}
