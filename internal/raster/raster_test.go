package raster

import "testing"

func solidModule() [][]uint8 {
	return [][]uint8{
		{1, 0},
		{0, 1},
	}
}

func TestRender_QuietZoneIsWhite(t *testing.T) {
	img := Render(solidModule(), Options{PixelsPerModule: 2, QuietZone: 1})
	if img[0][0] != 255 {
		t.Fatalf("corner pixel = %d, want white", img[0][0])
	}
}

func TestRender_DarkModuleIsBlack(t *testing.T) {
	img := Render(solidModule(), Options{PixelsPerModule: 2, QuietZone: 1})
	// module (0,0) is dark, rendered at pixel offset (quiet*ppm, quiet*ppm).
	if img[2][2] != 0 {
		t.Fatalf("dark module pixel = %d, want black", img[2][2])
	}
}

func TestRender_Rotate90PreservesSize(t *testing.T) {
	img := Render(solidModule(), Options{PixelsPerModule: 3, QuietZone: 2})
	rotated := Render(solidModule(), Options{PixelsPerModule: 3, QuietZone: 2, RotationDegrees: 90})
	if len(rotated) != len(img[0]) || len(rotated[0]) != len(img) {
		t.Fatalf("rotated dims = %dx%d, want %dx%d", len(rotated), len(rotated[0]), len(img[0]), len(img))
	}
}

func TestRender_ResizeScalesDimensions(t *testing.T) {
	img := Render(solidModule(), Options{PixelsPerModule: 4, QuietZone: 2})
	h, w := len(img), len(img[0])
	scaled := Render(solidModule(), Options{PixelsPerModule: 4, QuietZone: 2, ScaleX: 1.7, ScaleY: 1.7})
	wantH := int(float64(h)*1.7 + 0.5)
	wantW := int(float64(w)*1.7 + 0.5)
	if len(scaled) != wantH || len(scaled[0]) != wantW {
		t.Fatalf("scaled dims = %dx%d, want %dx%d", len(scaled), len(scaled[0]), wantH, wantW)
	}
}
