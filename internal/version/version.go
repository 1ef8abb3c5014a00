// Package version reads and BCH-decodes the 18-module version block near
// the upper-right finder, used for symbols of version 7 and above.
//
// Grounded on qrdecode.py's extract_qr_version.
package version

import (
	"fmt"

	"github.com/deepteams/qrvision/internal/bch"
	"github.com/deepteams/qrvision/internal/geometry"
	"github.com/deepteams/qrvision/internal/locate"
)

// ErrOutOfRange indicates a BCH-valid but unsupported version value.
var ErrOutOfRange = fmt.Errorf("version: decoded value out of range [1,40]")

// Extract samples the 18-bit version word from the pre-inversion
// binarized image (1 = light, 0 = dark; sampled bits are inverted so the
// word uses the QR convention of 1 = dark) around the UR finder, and
// BCH-decodes it.
//
// Unlike the format field (read later through the already-inverted
// module matrix), this transform samples the image directly, so each bit
// is inverted here and must not be inverted again downstream.
func Extract(bits [][]uint8, ul, ur locate.Candidate) (int, error) {
	t := geometry.VersionTransform(ul, ur)

	var raw uint32
	for i := 0; i < 18; i++ {
		x := float64(i%3 - 7)
		y := float64(i/3 - 3)
		px, py := t.Apply(x, y)
		xi, yi := int(px), int(py)
		if yi < 0 || yi >= len(bits) || xi < 0 || xi >= len(bits[0]) {
			return 0, bch.ErrCorrupt
		}
		bit := uint32(1 - bits[yi][xi])
		raw |= bit << uint(i)
	}

	v, err := bch.DecodeVersion(raw)
	if err != nil {
		return 0, err
	}
	if v < 1 || v > 40 {
		return 0, ErrOutOfRange
	}
	return int(v), nil
}
