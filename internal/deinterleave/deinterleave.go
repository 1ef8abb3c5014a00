// Package deinterleave reconstructs per-block data streams from a flat
// codeword sequence given a QR version and error-correction level, and
// concatenates the data portions in block order.
//
// Reed-Solomon parity is read but discarded rather than used to correct
// the data; this package performs no error correction.
//
// Grounded on qrdecode.py's codeword_error_correction.
package deinterleave

import (
	"fmt"

	"github.com/deepteams/qrvision/internal/tables"
)

// Deinterleave splits codewords into n_blocks interleaved blocks per the
// (version, level) table entry and concatenates each block's data bytes
// (dropping its parity bytes) in block order.
func Deinterleave(codewords []byte, version int, level tables.ECLevel) ([]byte, error) {
	nCodewords, nCheckWords, nBlocks, err := tables.BlockInfo(version, level)
	if err != nil {
		return nil, err
	}
	if len(codewords) != nCodewords {
		return nil, fmt.Errorf("deinterleave: got %d codewords, want %d for version %d level %v", len(codewords), nCodewords, version, level)
	}
	if nCheckWords%nBlocks != 0 {
		return nil, fmt.Errorf("deinterleave: n_check_words %d not divisible by n_blocks %d", nCheckWords, nBlocks)
	}

	nDataWords := nCodewords - nCheckWords
	nDataWordsPerBlock := nDataWords / nBlocks
	nLongBlocks := nDataWords % nBlocks

	out := make([]byte, 0, nDataWords)
	for i := 0; i < nBlocks; i++ {
		var data []byte
		for j := i; j < i+nBlocks*nDataWordsPerBlock; j += nBlocks {
			data = append(data, codewords[j])
		}
		if i >= nBlocks-nLongBlocks {
			data = append(data, codewords[nDataWords-nBlocks+i])
		}
		out = append(out, data...)
	}
	return out, nil
}
