package plot

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"potts-mc/internal/sims/potts"
)

// File names written by WriteAll.
const (
	InitialLatticeFile = "lattice_initial.png"
	FinalLatticeFile   = "lattice_final.png"
	DiversityFile      = "diversity.png"
	OccupancyFile      = "occupancy.png"
	EnergyFile         = "energy.png"
)

// Options selects what WriteAll produces.
type Options struct {
	Charts   bool
	Heatmaps bool
	// Scale is the heatmap block size in pixels per cell.
	Scale int
}

// WriteAll renders the requested images for a run into dir and returns the
// paths written. initial may be nil, in which case only the final lattice is
// drawn. Charts are skipped with ErrTooFewSteps joined into the error when
// the run recorded fewer than two steps; heatmaps are still written.
func WriteAll(dir string, initial *potts.Lattice, res *potts.Result, opts Options) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("plot: create output dir: %w", err)
	}

	var written []string
	emit := func(name string, draw func(io.Writer) error) error {
		path := filepath.Join(dir, name)
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("plot: %w", err)
		}
		if err := draw(f); err != nil {
			f.Close()
			os.Remove(path)
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("plot: close %s: %w", path, err)
		}
		written = append(written, path)
		return nil
	}

	if opts.Heatmaps {
		if initial != nil {
			if err := emit(InitialLatticeFile, func(w io.Writer) error { return Heatmap(w, initial, opts.Scale) }); err != nil {
				return written, err
			}
		}
		if err := emit(FinalLatticeFile, func(w io.Writer) error { return Heatmap(w, res.Lattice, opts.Scale) }); err != nil {
			return written, err
		}
	}

	if !opts.Charts {
		return written, nil
	}
	if res.Series.Len() < 2 {
		return written, ErrTooFewSteps
	}
	var errs []error
	charts := []struct {
		name string
		draw func(io.Writer, potts.Series) error
	}{
		{DiversityFile, Diversity},
		{OccupancyFile, Occupancy},
		{EnergyFile, Energy},
	}
	for _, c := range charts {
		draw := c.draw
		if err := emit(c.name, func(w io.Writer) error { return draw(w, res.Series) }); err != nil {
			errs = append(errs, err)
		}
	}
	return written, errors.Join(errs...)
}
