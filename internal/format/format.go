// Package format reads and BCH-decodes the 15-bit format field from the
// upper-left corner of an already-sampled module matrix, yielding the
// error-correction level and data-mask reference.
//
// Grounded on qrdecode.py's extract_format_data. Unlike the version
// field, these bits are read through the sampler's already-inverted
// module matrix, so they are not inverted again here.
package format

import (
	"github.com/deepteams/qrvision/internal/bch"
	"github.com/deepteams/qrvision/internal/sample"
	"github.com/deepteams/qrvision/internal/tables"
)

// levelByIndex maps the 2-bit EC-level field to tables.ECLevel in the
// order the standard actually assigns it: 0=M, 1=L, 2=H, 3=Q.
var levelByIndex = [4]tables.ECLevel{tables.LevelM, tables.LevelL, tables.LevelH, tables.LevelQ}

// Info is the decoded contents of the format field.
type Info struct {
	Level tables.ECLevel
	Mask  int
}

// Decode reads the 15 format-field modules from m and BCH-decodes them.
func Decode(m sample.Matrix) (Info, error) {
	bits := [15]uint8{}
	for i := 0; i < 6; i++ {
		bits[i] = m.At(8, i)
	}
	bits[6] = m.At(8, 7)
	bits[7] = m.At(8, 8)
	bits[8] = m.At(7, 8)
	for i := 0; i < 6; i++ {
		bits[9+i] = m.At(5-i, 8)
	}

	var raw uint32
	for i, b := range bits {
		if b != 0 {
			raw |= 1 << uint(i)
		}
	}
	raw ^= bch.FormatMask

	word, err := bch.DecodeFormat(raw)
	if err != nil {
		return Info{}, err
	}

	idx := (word >> 3) & 3
	mask := int(word & 7)
	return Info{Level: levelByIndex[idx], Mask: mask}, nil
}
