// Package geometry computes the affine transforms that map QR module
// coordinates to pixel coordinates: the main UL/UR/DL transform used to
// sample the whole symbol, and the small UR-anchored transform used to
// read the version block before the main transform's version is known.
//
// Grounded on qrdecode.py's locate_qr_code and extract_qr_version.
package geometry

import (
	"math"

	"github.com/deepteams/qrvision/internal/locate"
)

// Transform maps module coordinates (x, y) to pixel coordinates via
//
//	xp = A*x + B*y + E
//	yp = C*x + D*y + F
type Transform struct {
	A, B, C, D, E, F float64
}

// Apply maps a module coordinate to a pixel coordinate.
func (t Transform) Apply(x, y float64) (px, py float64) {
	px = t.A*x + t.B*y + t.E
	py = t.C*x + t.D*y + t.F
	return
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// EstimateVersion is the geometry solver's own version estimate based
// solely on the UL-UR distance, measured along whichever image axis
// dominates that separation (the X axis for an unrotated symbol, the Y
// axis for one rotated by 90 or 270 degrees): it decides whether the
// version field needs to be consulted at all, and is NOT the same
// computation as the triplet builder's ranking estimate
// (locate.Triplet.VersionEst), which averages both axes.
func EstimateVersion(ul, ur locate.Candidate) int {
	sep := 2 * abs(ul.CX-ur.CX) / (ul.DX + ur.DX)
	if abs(ur.CY-ul.CY) > abs(ur.CX-ul.CX) {
		sep = 2 * abs(ul.CY-ur.CY) / (ul.DY + ur.DY)
	}
	v := (sep - 10) / 4
	return int(math.RoundToEven(v))
}

// VersionTransform builds the local affine around UR used to read the
// 18-module version block before the main transform is known: columns
// i%3-7, rows i/3-3 for i in 0..18, in a frame whose orientation is
// derived from whether the UL-UR separation is dominated by the X or the
// Y axis (handling all four 90-degree rotations with one two-branch
// transform instead of four hand-coded cases).
func VersionTransform(ul, ur locate.Candidate) Transform {
	var t Transform
	if abs(ur.CX-ul.CX) > abs(ur.CY-ul.CY) {
		t.A = ur.DX * sign(ur.CX-ul.CX)
		t.D = ur.DY * sign(ur.CX-ul.CX)
	} else {
		t.C = ur.DY * sign(ur.CY-ul.CY)
		t.B = -ur.DX * sign(ur.CY-ul.CY)
	}
	t.E = ur.CX
	t.F = ur.CY
	return t
}

// Solve computes the main module-to-pixel transform for a located finder
// triplet once the QR version is known, mapping module (0,0) (the
// upper-left corner of the symbol, not the UL finder's center) onward.
func Solve(ul, ur, dl locate.Candidate, version int) Transform {
	sep := float64(10 + 4*version)

	var t Transform
	t.A = (ur.CX - ul.CX) / sep
	t.C = (ur.CY - ul.CY) / sep
	t.B = (dl.CX - ul.CX) / sep
	t.D = (dl.CY - ul.CY) / sep
	t.E = ul.CX - 3.5*(t.A+t.B)
	t.F = ul.CY - 3.5*(t.C+t.D)
	return t
}
