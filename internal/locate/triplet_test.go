package locate

import "testing"

func TestBuildTriplets_Orientation(t *testing.T) {
	ul := Candidate{CX: 0, CY: 0, DX: 1, DY: 1}
	ur := Candidate{CX: 20, CY: 0, DX: 1, DY: 1}
	dl := Candidate{CX: 0, CY: 20, DX: 1, DY: 1}

	triplets := BuildTriplets([]Candidate{ul, ur, dl})
	if len(triplets) == 0 {
		t.Fatalf("expected at least one triplet")
	}

	found := false
	for _, tr := range triplets {
		if tr.UL == ul && tr.UR == ur && tr.DL == dl {
			found = true
			if tr.VersionEst != 2.5 {
				t.Fatalf("VersionEst = %v, want 2.5", tr.VersionEst)
			}
		}
	}
	if !found {
		t.Fatalf("expected triplet (UL,UR,DL) = (ul,ur,dl) among %v", triplets)
	}
}

func TestBuildTriplets_RotatedHandedness(t *testing.T) {
	// Symbol rotated 90 degrees clockwise: UL sits top-right, UR is
	// below it and DL is to its left, so UR is the vertical partner and
	// DL the horizontal one.
	ul := Candidate{CX: 20, CY: 0, DX: 1, DY: 1}
	below := Candidate{CX: 20, CY: 20, DX: 1, DY: 1}
	left := Candidate{CX: 0, CY: 0, DX: 1, DY: 1}

	triplets := BuildTriplets([]Candidate{ul, below, left})
	if len(triplets) == 0 {
		t.Fatalf("expected at least one triplet")
	}
	found := false
	for _, tr := range triplets {
		if tr.UL == ul {
			found = true
			if tr.UR != below || tr.DL != left {
				t.Fatalf("UR,DL = %v,%v, want %v,%v", tr.UR, tr.DL, below, left)
			}
		}
	}
	if !found {
		t.Fatalf("expected a triplet with UL = %v among %v", ul, triplets)
	}
}

func TestBuildTriplets_SortedDescending(t *testing.T) {
	small := []Candidate{
		{CX: 0, CY: 0, DX: 1, DY: 1},
		{CX: 14, CY: 0, DX: 1, DY: 1},
		{CX: 0, CY: 14, DX: 1, DY: 1},
	}
	big := []Candidate{
		{CX: 0, CY: 0, DX: 1, DY: 1},
		{CX: 40, CY: 0, DX: 1, DY: 1},
		{CX: 0, CY: 40, DX: 1, DY: 1},
	}
	all := append(append([]Candidate{}, small...), big...)
	triplets := BuildTriplets(all)
	for i := 1; i < len(triplets); i++ {
		if triplets[i-1].VersionEst < triplets[i].VersionEst {
			t.Fatalf("triplets not sorted descending by VersionEst at index %d", i)
		}
	}
}
