package qrvision_test

import (
	"fmt"

	"github.com/deepteams/qrvision"
	"github.com/deepteams/qrvision/internal/qrencode"
	"github.com/deepteams/qrvision/internal/raster"
	"github.com/deepteams/qrvision/internal/tables"
)

// ExampleDecode builds a small version-1-L symbol with the package's own
// test-fixture encoder, rasterizes it, and decodes it back.
func ExampleDecode() {
	segments := []qrencode.Segment{{Mode: qrencode.Byte, Data: []byte("HELLO")}}
	modules, err := qrencode.Encode(segments, 1, tables.LevelL, 0)
	if err != nil {
		fmt.Println(err)
		return
	}
	pixels := raster.Render(modules, raster.Options{PixelsPerModule: 4, QuietZone: 4})

	payload, err := qrvision.Decode(pixels)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%s\n", payload)
	// Output:
	// HELLO
}
