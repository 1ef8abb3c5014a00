// Package locate finds position-detection-pattern candidates in a
// binarized image and assembles them into plausible UL/UR/DL finder
// triplets.
//
// Grounded on qrdecode.py's check_position_detection,
// find_position_detection_patterns and make_finder_triplets.
package locate

import "github.com/deepteams/qrvision/internal/scan"

// Candidate is a position-detection-pattern candidate: a sub-pixel center
// and the per-module pitch along each axis.
type Candidate struct {
	CX, CY float64
	DX, DY float64
}

var expectedBoundPos = [6]float64{-3.5, -2.5, -1.5, 1.5, 2.5, 3.5}

// checkPositionDetection tests whether six consecutive boundary positions
// have the 1:1:3:1:1 proportions of a B,W,B,W,B slice through a position
// detection pattern. ok is false if they don't.
func checkPositionDetection(b [6]int) (center, pitch float64, ok bool) {
	if b[4] >= b[5] {
		return 0, 0, false
	}
	patternWidth := float64(b[5] - b[0])
	middleWidth := float64(b[3] - b[2])
	if patternWidth < 7 || middleWidth < 3 {
		return 0, 0, false
	}

	sum := 0
	for _, v := range b {
		sum += v
	}
	center = float64(sum) / 6.0
	pitch = (patternWidth + middleWidth) / 10.0

	for k, v := range b {
		rel := (float64(v) - center) / pitch
		if abs(rel-expectedBoundPos[k]) >= 0.5 {
			return 0, 0, false
		}
	}
	return center, pitch, true
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// Find locates position-detection-pattern candidates in a binarized image,
// deduplicating overlapping hits.
func Find(bits [][]uint8) []Candidate {
	nrow := len(bits)
	if nrow < 7 {
		return nil
	}
	ncol := len(bits[0])
	if ncol < 7 {
		return nil
	}

	hIdx := scan.Build(bits)
	vIdx := scan.Build(scan.Transpose(bits))

	var raw []Candidate
	for y := 0; y < nrow; y++ {
		bx := 0
		if bits[y][0] != 0 {
			bx++
		}
		for hIdx.BoundPos[y][bx+4] < ncol {
			var window [6]int
			copy(window[:], hIdx.BoundPos[y][bx:bx+6])
			cx, dx, ok := checkPositionDetection(window)
			if ok {
				x := int(cx)
				by := vIdx.BoundMap[x][y] - 2
				if bits[y][x] == 0 && by >= 0 && by+4 < nrow {
					var vwindow [6]int
					copy(vwindow[:], vIdx.BoundPos[x][by:by+6])
					cy, dy, ok2 := checkPositionDetection(vwindow)
					if ok2 && dx <= 2*dy && dy <= 2*dx {
						raw = append(raw, Candidate{CX: cx, CY: cy, DX: dx, DY: dy})
					}
				}
			}
			bx += 2
		}
	}

	var out []Candidate
	for _, c := range raw {
		dup := false
		for _, t := range out {
			if abs(t.CX-c.CX) < 3*max(c.DX, t.DX) && abs(t.CY-c.CY) < 3*max(c.DY, t.DY) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, c)
		}
	}
	return out
}

func max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
