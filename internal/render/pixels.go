// Package render turns state-indexed cells into RGBA pixels.
package render

import "image/color"

// FillPalette converts state indices into RGBA pixels in buf using palette.
// Indices past the end of the palette take its last color. When the palette
// is empty the buffer is cleared to transparent black. buf must hold
// 4*len(cells) bytes.
func FillPalette(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		col := palette[min(int(c), last)]
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
