package render

import (
	"bytes"
	"image/color"
	"testing"

	"potts-mc/internal/sims/potts"
)

func TestFillPaletteUsesStateColors(t *testing.T) {
	palette := []color.RGBA{
		{R: 1, G: 2, B: 3, A: 255},
		{R: 10, G: 20, B: 30, A: 255},
	}
	buf := make([]byte, 12)
	FillPalette(buf, []uint8{1, 0, 7}, palette)

	want := []byte{10, 20, 30, 255, 1, 2, 3, 255, 10, 20, 30, 255}
	if !bytes.Equal(buf, want) {
		t.Fatalf("FillPalette = %v, want %v", buf, want)
	}
}

func TestFillPaletteEmptyClears(t *testing.T) {
	buf := bytes.Repeat([]byte{9}, 8)
	FillPalette(buf, []uint8{0, 1}, nil)
	if !bytes.Equal(buf, make([]byte, 8)) {
		t.Fatalf("expected cleared buffer, got %v", buf)
	}
}

func TestFillPaletteMatchesPottsPalette(t *testing.T) {
	palette := potts.Palette(4)
	cells := []uint8{0, 1, 2, 3}
	buf := make([]byte, 4*len(cells))
	FillPalette(buf, cells, palette)
	for i, c := range cells {
		got := color.RGBA{R: buf[4*i], G: buf[4*i+1], B: buf[4*i+2], A: buf[4*i+3]}
		if got != palette[c] {
			t.Fatalf("cell %d: got %v, want %v", i, got, palette[c])
		}
	}
}
