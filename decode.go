package qrvision

import (
	"errors"

	"github.com/deepteams/qrvision/internal/bch"
	"github.com/deepteams/qrvision/internal/binarize"
	"github.com/deepteams/qrvision/internal/bitstream"
	"github.com/deepteams/qrvision/internal/codeword"
	"github.com/deepteams/qrvision/internal/deinterleave"
	"github.com/deepteams/qrvision/internal/format"
	"github.com/deepteams/qrvision/internal/geometry"
	"github.com/deepteams/qrvision/internal/locate"
	"github.com/deepteams/qrvision/internal/sample"
	"github.com/deepteams/qrvision/internal/version"
)

// Decode reads a Model-2 QR symbol out of a grayscale pixel matrix and
// returns its payload bytes.
//
// pixels is indexed pixels[y][x]; every row must have the same length.
// The image must contain exactly one well-rendered, axis-aligned or
// 90-degree-rotated symbol on a clean background — see the package doc
// for the full scope.
func Decode(pixels [][]uint8) ([]byte, error) {
	bw := binarize.Threshold(pixels)

	candidates := locate.Find(bw.Bits)
	if len(candidates) == 0 {
		return nil, newError(KindNoFindersFound, "")
	}
	if len(candidates) < 3 {
		return nil, newError(KindTooFewFinders, "found %d", len(candidates))
	}

	triplets := locate.BuildTriplets(candidates)
	if len(triplets) == 0 {
		return nil, newError(KindNoFinderTriplet, "")
	}

	var firstErr error
	for _, tr := range triplets {
		qrVersion, err := resolveVersion(bw.Bits, tr)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		t := geometry.Solve(tr.UL, tr.UR, tr.DL, qrVersion)
		m := sample.Sample(bw.Bits, t, qrVersion)

		fi, err := format.Decode(m)
		if err != nil {
			if firstErr == nil {
				firstErr = newError(KindFormatCorrupt, "%v", err)
			}
			continue
		}

		codewords, err := codeword.ExtractForVersion(m, qrVersion, fi.Mask)
		if err != nil {
			if firstErr == nil {
				firstErr = newError(KindFormatCorrupt, "%v", err)
			}
			continue
		}

		data, err := deinterleave.Deinterleave(codewords, qrVersion, fi.Level)
		if err != nil {
			if firstErr == nil {
				firstErr = newError(KindFormatCorrupt, "%v", err)
			}
			continue
		}

		// From here on the triplet was correct: a failure decoding the
		// bitstream itself is final, not a reason to try another triplet.
		payload, err := bitstream.Decode(data, qrVersion)
		if err != nil {
			return nil, wrapBitstreamError(err)
		}
		return payload, nil
	}

	if firstErr != nil {
		return nil, firstErr
	}
	return nil, newError(KindNoFinderTriplet, "")
}

// resolveVersion estimates the QR version from triplet geometry and, for
// versions above 6, reads and BCH-decodes the version field to confirm
// it.
func resolveVersion(bits [][]uint8, tr locate.Triplet) (int, error) {
	qrVer := geometry.EstimateVersion(tr.UL, tr.UR)
	if qrVer <= 6 {
		return qrVer, nil
	}

	v, err := version.Extract(bits, tr.UL, tr.UR)
	if err != nil {
		if errors.Is(err, bch.ErrCorrupt) {
			return 0, newError(KindVersionCorrupt, "%v", err)
		}
		if errors.Is(err, version.ErrOutOfRange) {
			return 0, newError(KindVersionOutOfRange, "%v", err)
		}
		return 0, newError(KindVersionCorrupt, "%v", err)
	}
	return v, nil
}

func wrapBitstreamError(err error) error {
	var ue *bitstream.UnsupportedModeError
	if errors.As(err, &ue) {
		return newError(KindUnsupportedMode, "%v", ue)
	}
	switch {
	case errors.Is(err, bitstream.ErrUnderflow):
		return newError(KindBitstreamUnderflow, "%v", err)
	case errors.Is(err, bitstream.ErrInvalidNumeric):
		return newError(KindInvalidNumeric, "%v", err)
	case errors.Is(err, bitstream.ErrInvalidAlphanumeric):
		return newError(KindInvalidAlphanumeric, "%v", err)
	default:
		return newError(KindBitstreamUnderflow, "%v", err)
	}
}
