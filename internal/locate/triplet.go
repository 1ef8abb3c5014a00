package locate

import "sort"

// Triplet is an ordered (UL, UR, DL) finder triplet, tagged with the
// version estimate it was ranked by.
type Triplet struct {
	UL, UR, DL Candidate
	VersionEst float64
}

// BuildTriplets searches every pair of candidates for a horizontally- and
// a vertically-separated partner of a given UL candidate, and ranks the
// resulting triplets by descending estimated version so callers retry the
// most likely geometry first.
//
// Grounded on qrdecode.py's make_finder_triplets; the secondary tie-break
// on combined pitch precision is this repository's own resolution of the
// open question left by that function's plain reverse sort (ties are rare
// enough in practice that the original never needed one).
func BuildTriplets(candidates []Candidate) []Triplet {
	var triplets []Triplet

	for _, ul := range candidates {
		for _, h := range candidates {
			if 8*abs(ul.DX-h.DX) > ul.DX+h.DX {
				continue
			}
			if 8*abs(ul.DY-h.DY) > ul.DY+h.DY {
				continue
			}
			if abs(ul.CY-h.CY) > ul.DY+h.DY {
				continue
			}
			xsep := 2 * abs(ul.CX-h.CX) / (ul.DX + h.DX)
			if xsep < 12 {
				continue
			}

			for _, v := range candidates {
				if 8*abs(ul.DX-v.DX) > ul.DX+v.DX {
					continue
				}
				if 8*abs(ul.DY-v.DY) > ul.DY+v.DY {
					continue
				}
				if abs(ul.CX-v.CX) > ul.DX+v.DX {
					continue
				}
				ysep := 2 * abs(ul.CY-v.CY) / (ul.DY + v.DY)
				if ysep < 12 || ysep < 0.75*xsep || ysep > 1.25*xsep {
					continue
				}

				ur, dl := v, h
				if (h.CX-ul.CX)*(v.CY-ul.CY) > 0 {
					ur, dl = h, v
				}

				verEst := (0.5*(xsep+ysep) - 10) / 4.0
				triplets = append(triplets, Triplet{UL: ul, UR: ur, DL: dl, VersionEst: verEst})
			}
		}
	}

	sort.SliceStable(triplets, func(i, j int) bool {
		if triplets[i].VersionEst != triplets[j].VersionEst {
			return triplets[i].VersionEst > triplets[j].VersionEst
		}
		return precision(triplets[i]) > precision(triplets[j])
	})
	return triplets
}

// precision is the combined finder pitch precision used only to break
// exact ties in VersionEst, never to override a version difference.
func precision(t Triplet) float64 {
	return t.UL.DX*t.UL.DY + t.UR.DX*t.UR.DY + t.DL.DX*t.DL.DY
}
