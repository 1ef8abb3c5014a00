// Command qrvision decodes a Model-2 QR symbol from an image file.
//
// Usage:
//
//	qrvision decode [-render] <image>   PNG/JPEG/BMP/TIFF → payload bytes
package main

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/mdp/qrterminal/v3"

	"github.com/deepteams/qrvision"
)

func init() {
	image.RegisterFormat("bmp", "BM", bmp.Decode, bmp.DecodeConfig)
	image.RegisterFormat("tiff", "II*\x00", tiff.Decode, tiff.DecodeConfig)
	image.RegisterFormat("tiff", "MM\x00*", tiff.Decode, tiff.DecodeConfig)
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "decode":
		err = runDecode(os.Args[2:])
	case "-h", "-help", "--help", "help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "qrvision: unknown command %q\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "qrvision: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage:
  qrvision decode [-render] <image>   Decode a QR symbol to stdout

The image may be PNG, JPEG, BMP or TIFF. Use "-" to read from stdin.
`)
}

func runDecode(args []string) error {
	render := false
	var path string
	for _, a := range args {
		switch a {
		case "-render":
			render = true
		default:
			if path != "" {
				return fmt.Errorf("decode: unexpected argument %q", a)
			}
			path = a
		}
	}
	if path == "" {
		return fmt.Errorf("decode: missing input file\nUsage: qrvision decode [-render] <image>")
	}

	pixels, err := loadGrayscale(path)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	payload, err := qrvision.Decode(pixels)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	os.Stdout.Write(payload)

	if render {
		fmt.Fprintln(os.Stderr)
		qrterminal.GenerateHalfBlock(string(payload), qrterminal.L, os.Stderr)
	}
	return nil
}

// loadGrayscale reads an image file and returns its pixels as an H×W
// grayscale matrix using the standard library's luminance-weighted
// color.GrayModel conversion.
func loadGrayscale(path string) ([][]uint8, error) {
	var f *os.File
	var err error
	if path == "-" {
		f = os.Stdin
	} else {
		f, err = os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
	}

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}

	b := img.Bounds()
	h, w := b.Dy(), b.Dx()
	pixels := make([][]uint8, h)
	for y := 0; y < h; y++ {
		pixels[y] = make([]uint8, w)
		for x := 0; x < w; x++ {
			gray := color.GrayModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray)
			pixels[y][x] = gray.Y
		}
	}
	return pixels, nil
}
