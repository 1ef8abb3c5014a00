// Package qrencode builds a Model-2 QR module matrix from an explicit list
// of mode segments, a version, an error-correction level and a mask
// reference. It exists only to produce fixtures for qrvision's own tests —
// it is not a general-purpose encoder and makes no attempt at automatic
// segmentation or version/level selection.
//
// Module placement is grounded on nayuki-QR-Code-generator's
// golang/qrcodegen.go (finder/timing/alignment/version placement, the
// zig-zag data walk shared with internal/datamap, and the Reed-Solomon
// generator-polynomial construction); the bitstream segment encoding
// mirrors internal/bitstream's decoder, run in reverse.
package qrencode

import (
	"fmt"

	"github.com/deepteams/qrvision/internal/bch"
	"github.com/deepteams/qrvision/internal/datamap"
	"github.com/deepteams/qrvision/internal/mask"
	"github.com/deepteams/qrvision/internal/tables"
)

// Mode is a segment's encoding mode, matching internal/bitstream's 4-bit
// mode indicators for the three modes this encoder supports.
type Mode int

const (
	Numeric      Mode = 0b0001
	Alphanumeric Mode = 0b0010
	Byte         Mode = 0b0100
)

// Segment is one mode-tagged chunk of a payload.
type Segment struct {
	Mode Mode
	Data []byte
}

const alphanumTable = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

// charCountBits mirrors internal/bitstream's character-count field widths.
func charCountBits(version int) [5]int {
	switch {
	case version <= 9:
		return [5]int{0, 10, 9, 0, 8}
	case version <= 26:
		return [5]int{0, 12, 11, 0, 16}
	default:
		return [5]int{0, 14, 13, 0, 16}
	}
}

// bitWriter accumulates bits MSB-first and packs them into bytes.
type bitWriter struct {
	bits []byte
}

func (w *bitWriter) writeBits(value, n int) {
	for i := n - 1; i >= 0; i-- {
		w.bits = append(w.bits, byte((value>>uint(i))&1))
	}
}

func (w *bitWriter) bytes() []byte {
	n := (len(w.bits) + 7) / 8
	out := make([]byte, n)
	for i, b := range w.bits {
		if b != 0 {
			out[i/8] |= 1 << uint(7-i%8)
		}
	}
	return out
}

func alphaIndex(c byte) (int, error) {
	for i := 0; i < len(alphanumTable); i++ {
		if alphanumTable[i] == c {
			return i, nil
		}
	}
	return 0, fmt.Errorf("qrencode: %q is not valid alphanumeric-mode data", c)
}

func encodeNumeric(w *bitWriter, data []byte) error {
	for i := 0; i < len(data); i += 3 {
		k := len(data) - i
		if k > 3 {
			k = 3
		}
		val := 0
		for j := 0; j < k; j++ {
			d := data[i+j]
			if d < '0' || d > '9' {
				return fmt.Errorf("qrencode: %q is not a digit", d)
			}
			val = val*10 + int(d-'0')
		}
		w.writeBits(val, 3*k+1)
	}
	return nil
}

func encodeAlphanumeric(w *bitWriter, data []byte) error {
	for i := 0; i < len(data); i += 2 {
		k := len(data) - i
		if k > 2 {
			k = 2
		}
		if k == 2 {
			hi, err := alphaIndex(data[i])
			if err != nil {
				return err
			}
			lo, err := alphaIndex(data[i+1])
			if err != nil {
				return err
			}
			w.writeBits(hi*45+lo, 11)
		} else {
			v, err := alphaIndex(data[i])
			if err != nil {
				return err
			}
			w.writeBits(v, 6)
		}
	}
	return nil
}

func encodeByte(w *bitWriter, data []byte) {
	for _, b := range data {
		w.writeBits(int(b), 8)
	}
}

// buildDataCodewords writes every segment's mode indicator, character
// count and body, then terminates and pads out to nDataWords bytes the
// same way a standard encoder does: a (possibly truncated) zero
// terminator, zero bits to the next byte boundary, then 0xEC/0x11
// alternating pad bytes.
func buildDataCodewords(segments []Segment, version, nDataWords int) ([]byte, error) {
	bits := charCountBits(version)
	w := &bitWriter{}
	for _, seg := range segments {
		w.writeBits(int(seg.Mode), 4)
		w.writeBits(len(seg.Data), bits[seg.Mode])
		var err error
		switch seg.Mode {
		case Numeric:
			err = encodeNumeric(w, seg.Data)
		case Alphanumeric:
			err = encodeAlphanumeric(w, seg.Data)
		case Byte:
			encodeByte(w, seg.Data)
		default:
			err = fmt.Errorf("qrencode: unsupported segment mode %#o", seg.Mode)
		}
		if err != nil {
			return nil, err
		}
	}

	capacityBits := nDataWords * 8
	if len(w.bits) > capacityBits {
		return nil, fmt.Errorf("qrencode: payload needs %d bits, version/level only has %d", len(w.bits), capacityBits)
	}
	term := 4
	if remaining := capacityBits - len(w.bits); remaining < term {
		term = remaining
	}
	w.writeBits(0, term)

	data := w.bytes()
	padStart := len(data)
	for len(data) < nDataWords {
		if (len(data)-padStart)%2 == 0 {
			data = append(data, 0xEC)
		} else {
			data = append(data, 0x11)
		}
	}
	return data, nil
}

// blockChunks splits nDataWords sequential data bytes into nBlocks
// per-block chunks: the first nBlocks-nLong blocks get base bytes, the
// remaining nLong blocks get base+1, matching the same base/extra split
// internal/deinterleave uses to reassemble them.
func blockChunks(data []byte, nBlocks int) [][]byte {
	nDataWords := len(data)
	base := nDataWords / nBlocks
	nLong := nDataWords % nBlocks
	chunks := make([][]byte, nBlocks)
	pos := 0
	for i := 0; i < nBlocks; i++ {
		size := base
		if i >= nBlocks-nLong {
			size = base + 1
		}
		chunks[i] = data[pos : pos+size]
		pos += size
	}
	return chunks
}

// interleave produces the flat codeword stream internal/deinterleave
// expects: data bytes round-robin across blocks (the trailing byte of
// each long block appended after the interleaved prefix), followed by
// parity bytes round-robin across blocks.
func interleave(dataChunks, parityChunks [][]byte, nDataWords, nCodewords int) []byte {
	nBlocks := len(dataChunks)
	out := make([]byte, nCodewords)
	base := nDataWords / nBlocks
	for i, chunk := range dataChunks {
		for k := 0; k < base; k++ {
			out[i+k*nBlocks] = chunk[k]
		}
		if len(chunk) > base {
			out[nDataWords-nBlocks+i] = chunk[base]
		}
	}
	nCheckPerBlock := len(parityChunks[0])
	for i, chunk := range parityChunks {
		for k := 0; k < nCheckPerBlock; k++ {
			out[nDataWords+i+k*nBlocks] = chunk[k]
		}
	}
	return out
}

// invLevelIndex is the inverse of internal/format's levelByIndex table
// (0=M, 1=L, 2=H, 3=Q).
func invLevelIndex(level tables.ECLevel) int {
	switch level {
	case tables.LevelM:
		return 0
	case tables.LevelL:
		return 1
	case tables.LevelH:
		return 2
	default:
		return 3
	}
}

func drawFinder(grid [][]uint8, cy, cx int) {
	size := len(grid)
	for dy := -4; dy <= 4; dy++ {
		for dx := -4; dx <= 4; dx++ {
			y, x := cy+dy, cx+dx
			if y < 0 || y >= size || x < 0 || x >= size {
				continue
			}
			ring := dy
			if dx > ring {
				ring = dx
			}
			if -dy > ring {
				ring = -dy
			}
			if -dx > ring {
				ring = -dx
			}
			switch {
			case ring == 4:
				grid[y][x] = 0
			case ring == 3:
				grid[y][x] = 1
			case ring == 2:
				grid[y][x] = 0
			default:
				grid[y][x] = 1
			}
		}
	}
}

func drawAlignment(grid [][]uint8, cy, cx int) {
	size := len(grid)
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			y, x := cy+dy, cx+dx
			if y < 0 || y >= size || x < 0 || x >= size {
				continue
			}
			ring := dy
			if dx > ring {
				ring = dx
			}
			if -dy > ring {
				ring = -dy
			}
			if -dx > ring {
				ring = -dx
			}
			if ring == 1 {
				grid[y][x] = 0
			} else {
				grid[y][x] = 1
			}
		}
	}
}

// Encode builds a size x size module matrix (1 = dark) for segments at
// the given version, EC level and mask reference.
func Encode(segments []Segment, version int, level tables.ECLevel, maskPattern int) ([][]uint8, error) {
	nCodewords, nCheckWords, nBlocks, err := tables.BlockInfo(version, level)
	if err != nil {
		return nil, err
	}
	if nCheckWords%nBlocks != 0 {
		return nil, fmt.Errorf("qrencode: n_check_words %d not divisible by n_blocks %d", nCheckWords, nBlocks)
	}
	nDataWords := nCodewords - nCheckWords
	nCheckPerBlock := nCheckWords / nBlocks

	data, err := buildDataCodewords(segments, version, nDataWords)
	if err != nil {
		return nil, err
	}

	dataChunks := blockChunks(data, nBlocks)
	divisor := rsGeneratorPoly(nCheckPerBlock)
	parityChunks := make([][]byte, nBlocks)
	for i, chunk := range dataChunks {
		parityChunks[i] = rsRemainder(chunk, divisor)
	}
	flat := interleave(dataChunks, parityChunks, nDataWords, nCodewords)

	size := tables.Size(version)
	grid := make([][]uint8, size)
	for y := range grid {
		grid[y] = make([]uint8, size)
	}

	drawFinder(grid, 3, 3)
	drawFinder(grid, 3, size-4)
	drawFinder(grid, size-4, 3)

	for x := 8; x < size-8; x++ {
		if x%2 == 0 {
			grid[6][x] = 1
		}
	}
	for y := 8; y < size-8; y++ {
		if y%2 == 0 {
			grid[y][6] = 1
		}
	}

	centers, err := tables.AlignmentCenters(version)
	if err != nil {
		return nil, err
	}
	for _, c := range centers {
		drawAlignment(grid, c.Y, c.X)
	}

	if version > 6 {
		verWord := bch.EncodeVersion(uint32(version))
		for i := 0; i < 18; i++ {
			bit := uint8((verWord >> uint(i)) & 1)
			a := size - 11 + i%3
			b := i / 3
			grid[b][a] = bit
			grid[a][b] = bit
		}
	}

	formatData := uint32(invLevelIndex(level)<<3) | uint32(maskPattern)
	formatWord := bch.EncodeFormat(formatData) ^ bch.FormatMask
	for i := 0; i < 15; i++ {
		bit := uint8((formatWord >> uint(i)) & 1)
		switch {
		case i < 6:
			grid[i][8] = bit
		case i == 6:
			grid[7][8] = bit
		case i == 7:
			grid[8][8] = bit
		case i == 8:
			grid[8][7] = bit
		default:
			grid[8][5-(i-9)] = bit
		}
	}

	pattern, err := mask.Generate(size, maskPattern)
	if err != nil {
		return nil, err
	}
	locs, err := datamap.Enumerate(version)
	if err != nil {
		return nil, err
	}
	if len(locs) != 8*len(flat) {
		return nil, fmt.Errorf("qrencode: data-module map has %d positions, want %d", len(locs), 8*len(flat))
	}
	for i, w := range flat {
		for k := 0; k < 8; k++ {
			p := locs[i*8+k]
			bit := (w >> uint(7-k)) & 1
			grid[p.Y][p.X] = bit ^ pattern[p.Y][p.X]
		}
	}

	return grid, nil
}
