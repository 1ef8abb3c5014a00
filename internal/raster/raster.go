// Package raster rasterizes a QR module matrix into a grayscale pixel
// matrix, the inverse of internal/binarize's thresholding step. It exists
// to build qrvision's own test fixtures: a module grid in, an H×W
// []uint8 pixel matrix out, with the quiet zone, pixels-per-module
// pitch, axis-aligned rotation and nearest-neighbor resize that
// spec.md's round-trip laws exercise.
package raster

// Options configures rendering.
type Options struct {
	// PixelsPerModule is the module pitch in pixels; must be >= 1.
	PixelsPerModule int
	// QuietZone is the light border width in modules on every side.
	QuietZone int
	// RotationDegrees rotates the rendered image clockwise: 0, 90, 180 or 270.
	RotationDegrees int
	// ScaleX, ScaleY nearest-neighbor resize the rendered image by a
	// rational factor after rotation. 0 means "no resize" (treated as 1).
	ScaleX, ScaleY float64
}

// Render rasterizes modules (1 = dark) into a grayscale pixel matrix
// (0 = black, 255 = white).
func Render(modules [][]uint8, opts Options) [][]uint8 {
	ppm := opts.PixelsPerModule
	if ppm < 1 {
		ppm = 1
	}
	quiet := opts.QuietZone

	size := len(modules)
	side := (size + 2*quiet) * ppm
	img := make([][]uint8, side)
	for y := range img {
		img[y] = make([]uint8, side)
		for x := range img[y] {
			img[y][x] = 255
		}
	}

	for my := 0; my < size; my++ {
		for mx := 0; mx < size; mx++ {
			if modules[my][mx] == 0 {
				continue
			}
			py0 := (my + quiet) * ppm
			px0 := (mx + quiet) * ppm
			for dy := 0; dy < ppm; dy++ {
				for dx := 0; dx < ppm; dx++ {
					img[py0+dy][px0+dx] = 0
				}
			}
		}
	}

	img = rotate(img, opts.RotationDegrees)
	img = resize(img, opts.ScaleX, opts.ScaleY)
	return img
}

func rotate(img [][]uint8, degrees int) [][]uint8 {
	h := len(img)
	w := len(img[0])
	switch ((degrees % 360) + 360) % 360 {
	case 90:
		out := make([][]uint8, w)
		for y := range out {
			out[y] = make([]uint8, h)
			for x := range out[y] {
				out[y][x] = img[h-1-x][y]
			}
		}
		return out
	case 180:
		out := make([][]uint8, h)
		for y := range out {
			out[y] = make([]uint8, w)
			for x := range out[y] {
				out[y][x] = img[h-1-y][w-1-x]
			}
		}
		return out
	case 270:
		out := make([][]uint8, w)
		for y := range out {
			out[y] = make([]uint8, h)
			for x := range out[y] {
				out[y][x] = img[x][w-1-y]
			}
		}
		return out
	default:
		return img
	}
}

func resize(img [][]uint8, scaleX, scaleY float64) [][]uint8 {
	if scaleX == 0 {
		scaleX = 1
	}
	if scaleY == 0 {
		scaleY = 1
	}
	if scaleX == 1 && scaleY == 1 {
		return img
	}
	h := len(img)
	w := len(img[0])
	newH := int(float64(h)*scaleY + 0.5)
	newW := int(float64(w)*scaleX + 0.5)
	out := make([][]uint8, newH)
	for y := 0; y < newH; y++ {
		out[y] = make([]uint8, newW)
		srcY := int(float64(y) / scaleY)
		if srcY >= h {
			srcY = h - 1
		}
		for x := 0; x < newW; x++ {
			srcX := int(float64(x) / scaleX)
			if srcX >= w {
				srcX = w - 1
			}
			out[y][x] = img[srcY][srcX]
		}
	}
	return out
}
