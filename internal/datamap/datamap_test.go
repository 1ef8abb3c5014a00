package datamap

import (
	"testing"

	"github.com/deepteams/qrvision/internal/tables"
)

func TestEnumerate_LengthMatchesCodewordsForAllVersions(t *testing.T) {
	for v := tables.MinVersion; v <= tables.MaxVersion; v++ {
		locs, err := Enumerate(v)
		if err != nil {
			t.Fatalf("version %d: unexpected error: %v", v, err)
		}
		nCodewords, err := tables.TotalCodewords(v)
		if err != nil {
			t.Fatalf("version %d: %v", v, err)
		}
		want := 8 * nCodewords
		if len(locs) != want {
			t.Fatalf("version %d: len(locs) = %d, want %d", v, len(locs), want)
		}
	}
}

func TestEnumerate_NoFunctionPatternOverlap(t *testing.T) {
	for _, v := range []int{1, 2, 7, 10, 40} {
		funcMask, err := FunctionMask(v)
		if err != nil {
			t.Fatalf("version %d: %v", v, err)
		}
		locs, err := Enumerate(v)
		if err != nil {
			t.Fatalf("version %d: %v", v, err)
		}
		for _, p := range locs {
			if funcMask[p.Y][p.X] != 0 {
				t.Fatalf("version %d: location (%d,%d) overlaps function pattern", v, p.X, p.Y)
			}
		}
	}
}

func TestEnumerate_NoDuplicatePositions(t *testing.T) {
	locs, err := Enumerate(5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	seen := make(map[tables.Point]bool, len(locs))
	for _, p := range locs {
		if seen[p] {
			t.Fatalf("duplicate position %v", p)
		}
		seen[p] = true
	}
}

func TestFunctionMask_TimingPatternsMarked(t *testing.T) {
	m, err := FunctionMask(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	size := tables.Size(1)
	for i := 0; i < size; i++ {
		if m[6][i] != 1 {
			t.Fatalf("horizontal timing at col %d not marked", i)
		}
		if m[i][6] != 1 {
			t.Fatalf("vertical timing at row %d not marked", i)
		}
	}
}
