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

	"github.com/spf13/cobra"

	"github.com/deepteams/qrvision"
)

func init() {
	image.RegisterFormat("bmp", "BM", bmp.Decode, bmp.DecodeConfig)
	image.RegisterFormat("tiff", "II*\x00", tiff.Decode, tiff.DecodeConfig)
	image.RegisterFormat("tiff", "MM\x00*", tiff.Decode, tiff.DecodeConfig)
}

var decodeCmd = &cobra.Command{
	Use:   "decode <job.yaml>",
	Short: "Decode every image listed in a job file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		job, err := loadJob(args[0])
		if err != nil {
			return fmt.Errorf("qrbatch: %w", err)
		}
		return runJob(job)
	},
}

// result is one image's outcome, written to the report in job order.
type result struct {
	label   string
	payload []byte
	err     error
}

func runJob(job *Job) error {
	results := make([]result, len(job.Images))
	for i, entry := range job.Images {
		label := entry.Label
		if label == "" {
			label = entry.Path
		}
		payload, err := decodeFile(entry.Path)
		results[i] = result{label: label, payload: payload, err: err}
	}

	w := os.Stdout
	if job.Report != "" {
		f, err := os.Create(job.Report)
		if err != nil {
			return fmt.Errorf("qrbatch: creating report: %w", err)
		}
		defer f.Close()
		w = f
	}

	failures := 0
	for _, r := range results {
		if r.err != nil {
			failures++
			fmt.Fprintf(w, "%s: ERROR: %v\n", r.label, r.err)
			continue
		}
		fmt.Fprintf(w, "%s: %d bytes: %q\n", r.label, len(r.payload), r.payload)
	}

	if failures > 0 {
		return fmt.Errorf("qrbatch: %d/%d images failed to decode", failures, len(results))
	}
	return nil
}

func decodeFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

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

	return qrvision.Decode(pixels)
}
