package plot

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"potts-mc/internal/sims/potts"
)

// Heatmap encodes the lattice as a PNG with every cell drawn as a
// scale×scale block colored by potts.Palette.
func Heatmap(w io.Writer, l *potts.Lattice, scale int) error {
	if scale < 1 {
		scale = 1
	}
	img := HeatmapImage(l, scale)
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("plot: encode heatmap: %w", err)
	}
	return nil
}

// HeatmapImage renders the lattice into an RGBA image.
func HeatmapImage(l *potts.Lattice, scale int) *image.RGBA {
	n := l.N()
	palette := potts.Palette(l.Q())
	last := len(palette) - 1
	img := image.NewRGBA(image.Rect(0, 0, n*scale, n*scale))
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			state := l.At(i, j)
			if state > last {
				state = last
			}
			col := palette[state]
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					img.SetRGBA(j*scale+dx, i*scale+dy, col)
				}
			}
		}
	}
	return img
}
