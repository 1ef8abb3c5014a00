// Package qrvision decodes Model-2 QR codes from rasterized grayscale images.
//
// Given a pixel matrix containing exactly one well-rendered, axis-aligned or
// 90°-rotated QR symbol on a clean background, Decode recovers the original
// payload bytes. It performs binarization, position-detection-pattern
// location, affine geometry reconstruction, BCH-protected version/format
// decoding, module sampling, data-mask removal, codeword de-interleaving
// across error-correction blocks, and bitstream unpacking.
//
// The package does not perform Reed–Solomon error correction: data block
// parity is read and discarded rather than used to repair damaged
// codewords. It is built for computer-generated, undamaged symbols, not
// photographs.
//
// Basic usage:
//
//	payload, err := qrvision.Decode(grayscalePixels)
package qrvision
