package potts

import (
	"image/color"
	"math"
)

// maxDisplayStates bounds the palette and the byte-valued display buffer.
const maxDisplayStates = 256

// Palette returns q colors running black, red, yellow, white, one per state.
// State 0 is black and state q-1 is white. q is capped at 256.
func Palette(q int) []color.RGBA {
	if q < 1 {
		return nil
	}
	if q > maxDisplayStates {
		q = maxDisplayStates
	}
	palette := make([]color.RGBA, q)
	for state := range palette {
		t := 0.0
		if q > 1 {
			t = float64(state) / float64(q-1)
		}
		palette[state] = hot(t)
	}
	return palette
}

// hot maps t in [0, 1] onto the classic "hot" color ramp.
func hot(t float64) color.RGBA {
	return color.RGBA{
		R: channel(3 * t),
		G: channel(3*t - 1),
		B: channel(3*t - 2),
		A: 255,
	}
}

func channel(v float64) uint8 {
	v = math.Max(0, math.Min(1, v))
	return uint8(v*255 + 0.5)
}

// encodeDisplay writes one byte per cell, saturating states above 255.
func encodeDisplay(dst []uint8, cells []int) {
	for i, v := range cells {
		if v >= maxDisplayStates {
			v = maxDisplayStates - 1
		}
		dst[i] = uint8(v)
	}
}
