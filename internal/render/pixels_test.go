package render

import (
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFillPaletteRGBA(t *testing.T) {
	palette := []color.RGBA{
		{R: 1, G: 2, B: 3, A: 255},
		{R: 10, G: 20, B: 30, A: 128},
	}
	buf := make([]byte, 12)
	fillPaletteRGBA(buf, []uint8{1, 0, 9}, palette)
	want := []byte{10, 20, 30, 128, 1, 2, 3, 255, 10, 20, 30, 128}
	if diff := cmp.Diff(want, buf); diff != "" {
		t.Fatalf("pixels mismatch (-want +got):\n%s", diff)
	}
}

func TestFillPaletteRGBAEmptyPaletteClears(t *testing.T) {
	buf := []byte{9, 9, 9, 9, 9, 9, 9, 9}
	fillPaletteRGBA(buf, []uint8{3, 4}, nil)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d = %d, want 0", i, b)
		}
	}
}

func TestGreyPaletteIsBinary(t *testing.T) {
	buf := make([]byte, 8)
	fillPaletteRGBA(buf, []uint8{0, 1}, greyPalette)
	if buf[0] != 0 || buf[3] != 255 || buf[4] != 255 {
		t.Fatalf("unexpected grey pixels %v", buf)
	}
}
