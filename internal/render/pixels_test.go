package render

import (
	"image/color"
	"slices"
	"testing"
)

func TestFillPaletteRGBA(t *testing.T) {
	palette := []color.RGBA{Black, Cream, Orange}
	cells := []uint8{0, 1, 2, 9}
	buf := make([]byte, 4*len(cells))

	fillPaletteRGBA(buf, cells, palette)

	want := []byte{
		0, 0, 0, 255,
		242, 235, 191, 255,
		243, 181, 98, 255,
		243, 181, 98, 255,
	}
	if !slices.Equal(buf, want) {
		t.Fatalf("pixels = %v, expected %v", buf, want)
	}
}

func TestFillPaletteRGBAEmptyPalette(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	fillPaletteRGBA(buf, []uint8{0, 1}, nil)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d = %d, expected transparent black", i, b)
		}
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor(" Black ")
	if err != nil {
		t.Fatalf("ParseColor: %v", err)
	}
	if c != Black {
		t.Fatalf("ParseColor(Black) = %v", c)
	}
	if _, err := ParseColor("mauve"); err == nil {
		t.Fatal("expected unknown color to fail")
	}
	if !slices.IsSorted(ColorNames()) || len(ColorNames()) != 7 {
		t.Fatalf("ColorNames = %v", ColorNames())
	}
}
