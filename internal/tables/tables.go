// Package tables holds the static lookup tables a Model-2 QR symbol is
// built from: alignment-pattern centers, total codewords, and error
// correction block structure, indexed by version (1..40) and EC level.
//
// Values are drawn directly from ISO/IEC 18004 (Model 2), transcribed from
// the reference jorisvr/python-qrdecode tables rather than re-derived, since
// there is no formula for them — they are as much a part of the standard as
// the bit layout itself.
package tables

import "fmt"

// ECLevel is an error-correction level, independent of how the 2-bit field
// in the format word happens to encode it (see internal/format's
// levelByIndex).
type ECLevel int

const (
	LevelL ECLevel = iota
	LevelM
	LevelQ
	LevelH
)

func (l ECLevel) String() string {
	switch l {
	case LevelL:
		return "L"
	case LevelM:
		return "M"
	case LevelQ:
		return "Q"
	case LevelH:
		return "H"
	default:
		return "?"
	}
}

// MinVersion and MaxVersion bound the supported QR version range.
const (
	MinVersion = 1
	MaxVersion = 40
)

// Size returns the module side length (qrsize) for a version.
func Size(version int) int {
	return 17 + 4*version
}

// Separation returns the finder center-to-center spacing in modules
// (qrsep) for a version.
func Separation(version int) int {
	return 10 + 4*version
}

// blockSpec describes the error-correction block layout for one
// (version, level) pair: the total parity codewords and the number of
// blocks the data+parity codewords are interleaved across.
type blockSpec struct {
	nCheckWords int
	nBlocks     int
}

// totalCodewords[version-1] is the total codeword count for that version.
var totalCodewords = [MaxVersion]int{
	26, 44, 70, 100, 134, 172, 196, 242, 292, 346,
	404, 466, 532, 581, 655, 733, 815, 901, 991, 1085,
	1156, 1258, 1364, 1474, 1588, 1706, 1828, 1921, 2051, 2185,
	2323, 2465, 2611, 2761, 2876, 3034, 3196, 3362, 3532, 3706,
}

// blockTable[version-1][level] gives (n_check_words, n_blocks) in L,M,Q,H order.
var blockTable = [MaxVersion][4]blockSpec{
	{{7, 1}, {10, 1}, {13, 1}, {17, 1}},
	{{10, 1}, {16, 1}, {22, 1}, {28, 1}},
	{{15, 1}, {26, 1}, {36, 2}, {44, 2}},
	{{20, 1}, {36, 2}, {52, 2}, {64, 4}},
	{{26, 1}, {48, 2}, {72, 4}, {88, 4}},
	{{36, 2}, {64, 4}, {96, 4}, {112, 4}},
	{{40, 2}, {72, 4}, {108, 6}, {130, 5}},
	{{48, 2}, {88, 4}, {132, 6}, {156, 6}},
	{{60, 2}, {110, 5}, {160, 8}, {192, 8}},
	{{72, 4}, {130, 5}, {192, 8}, {224, 8}},
	{{80, 4}, {150, 5}, {224, 8}, {264, 11}},
	{{96, 4}, {176, 8}, {260, 10}, {308, 11}},
	{{104, 4}, {198, 9}, {288, 12}, {352, 16}},
	{{120, 4}, {216, 9}, {320, 16}, {384, 16}},
	{{132, 6}, {240, 10}, {360, 12}, {432, 18}},
	{{144, 6}, {280, 10}, {408, 17}, {480, 16}},
	{{168, 6}, {308, 11}, {448, 16}, {532, 19}},
	{{180, 6}, {338, 13}, {504, 18}, {588, 21}},
	{{196, 7}, {364, 14}, {546, 21}, {650, 25}},
	{{224, 8}, {416, 16}, {600, 20}, {700, 25}},
	{{224, 8}, {442, 17}, {644, 23}, {750, 25}},
	{{252, 9}, {476, 17}, {690, 23}, {816, 34}},
	{{270, 9}, {504, 18}, {750, 25}, {900, 30}},
	{{300, 10}, {560, 20}, {810, 27}, {960, 32}},
	{{312, 12}, {588, 21}, {870, 29}, {1050, 35}},
	{{336, 12}, {644, 23}, {952, 34}, {1110, 37}},
	{{360, 12}, {700, 25}, {1020, 34}, {1200, 40}},
	{{390, 13}, {728, 26}, {1050, 35}, {1260, 42}},
	{{420, 14}, {784, 28}, {1140, 38}, {1350, 45}},
	{{450, 15}, {812, 29}, {1200, 40}, {1440, 48}},
	{{480, 16}, {868, 31}, {1290, 43}, {1530, 51}},
	{{510, 17}, {924, 33}, {1350, 45}, {1620, 54}},
	{{540, 18}, {980, 35}, {1440, 48}, {1710, 57}},
	{{570, 19}, {1036, 37}, {1530, 51}, {1800, 60}},
	{{570, 19}, {1064, 38}, {1590, 53}, {1890, 63}},
	{{600, 20}, {1120, 40}, {1680, 56}, {1980, 66}},
	{{630, 21}, {1204, 43}, {1770, 59}, {2100, 70}},
	{{660, 22}, {1260, 45}, {1860, 62}, {2220, 74}},
	{{720, 24}, {1316, 47}, {1950, 65}, {2310, 77}},
	{{750, 25}, {1372, 49}, {2040, 68}, {2430, 81}},
}

// alignmentCoords[version-1] lists the coordinate grid alignment-pattern
// centers are drawn from (both axes), in ascending order. The full set of
// centers is the Cartesian product of this list with itself, minus the
// three corners that fall under a finder pattern (see AlignmentCenters).
var alignmentCoords = [MaxVersion][]int{
	{6}, {6, 18}, {6, 22}, {6, 26}, {6, 30}, {6, 34},
	{6, 22, 38}, {6, 24, 42}, {6, 26, 46}, {6, 28, 50},
	{6, 30, 54}, {6, 32, 58}, {6, 34, 62}, {6, 26, 46, 66},
	{6, 26, 48, 70}, {6, 26, 50, 74}, {6, 30, 54, 78}, {6, 30, 56, 82},
	{6, 30, 58, 86}, {6, 34, 62, 90}, {6, 28, 50, 72, 94}, {6, 26, 50, 74, 98},
	{6, 30, 54, 78, 102}, {6, 28, 54, 80, 106}, {6, 32, 58, 84, 110}, {6, 30, 58, 86, 114},
	{6, 34, 62, 90, 118}, {6, 26, 50, 74, 98, 122}, {6, 30, 54, 78, 102, 126}, {6, 26, 52, 78, 104, 130},
	{6, 30, 56, 82, 108, 134}, {6, 34, 60, 86, 112, 138}, {6, 30, 58, 86, 114, 142}, {6, 34, 62, 90, 118, 146},
	{6, 30, 54, 78, 102, 126, 150}, {6, 24, 50, 76, 102, 128, 154}, {6, 28, 54, 80, 106, 132, 158}, {6, 32, 58, 84, 110, 136, 162},
	{6, 26, 54, 82, 110, 138, 166}, {6, 30, 58, 86, 114, 142, 170},
}

func checkVersion(version int) error {
	if version < MinVersion || version > MaxVersion {
		return fmt.Errorf("tables: version %d out of range [%d,%d]", version, MinVersion, MaxVersion)
	}
	return nil
}

// TotalCodewords returns the total codeword count for version.
func TotalCodewords(version int) (int, error) {
	if err := checkVersion(version); err != nil {
		return 0, err
	}
	return totalCodewords[version-1], nil
}

// BlockInfo returns (n_codewords, n_check_words, n_blocks) for a
// (version, level) pair, matching §4.12/§6 of the design.
func BlockInfo(version int, level ECLevel) (nCodewords, nCheckWords, nBlocks int, err error) {
	if err = checkVersion(version); err != nil {
		return
	}
	if level < LevelL || level > LevelH {
		err = fmt.Errorf("tables: invalid EC level %d", level)
		return
	}
	spec := blockTable[version-1][level]
	return totalCodewords[version-1], spec.nCheckWords, spec.nBlocks, nil
}

// Point is a module coordinate (x, y).
type Point struct {
	X, Y int
}

// AlignmentCenters returns the alignment-pattern center coordinates for
// version, excluding the three corners that coincide with a finder
// pattern: pairs (x,y) where both x and y lie in {cmin, cmax} and at least
// one of them equals cmin.
func AlignmentCenters(version int) ([]Point, error) {
	if err := checkVersion(version); err != nil {
		return nil, err
	}
	coords := alignmentCoords[version-1]
	cmin, cmax := coords[0], coords[len(coords)-1]
	isCorner := func(v int) bool { return v == cmin || v == cmax }

	var pts []Point
	for _, y := range coords {
		for _, x := range coords {
			if (x == cmin || y == cmin) && isCorner(x) && isCorner(y) {
				continue
			}
			pts = append(pts, Point{X: x, Y: y})
		}
	}
	return pts, nil
}
