package plot

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"potts-mc/internal/core"
	"potts-mc/internal/sims/potts"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func runFixture(t *testing.T, steps int) (*potts.Lattice, *potts.Result) {
	t.Helper()
	cfg := potts.DefaultConfig()
	cfg.Size = 8
	cfg.States = 3
	cfg.Steps = steps
	cfg.Boltzmann = 1
	cfg.Temperature = 1
	lattice, err := potts.InitializeLattice(cfg.States, cfg.Size, core.NewRNG(3))
	require.NoError(t, err)
	initial := lattice.Clone()
	res, err := potts.Run(cfg, lattice, core.NewRNG(4))
	require.NoError(t, err)
	return initial, res
}

func TestChartsRenderPNG(t *testing.T) {
	_, res := runFixture(t, 50)
	for name, draw := range map[string]func(*bytes.Buffer) error{
		"diversity": func(b *bytes.Buffer) error { return Diversity(b, res.Series) },
		"occupancy": func(b *bytes.Buffer) error { return Occupancy(b, res.Series) },
		"energy":    func(b *bytes.Buffer) error { return Energy(b, res.Series) },
	} {
		var buf bytes.Buffer
		require.NoError(t, draw(&buf), name)
		assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic), "%s is not a PNG", name)
	}
}

func TestChartsHandleConstantSeries(t *testing.T) {
	s := potts.Series{
		Diversity: []int{2, 2, 2},
		Occupancy: [][]int{{4, 4, 4}, {0, 0, 0}},
		Energy:    []float64{-8, -8, -8},
	}
	var buf bytes.Buffer
	require.NoError(t, Diversity(&buf, s))
	buf.Reset()
	require.NoError(t, Energy(&buf, s))
	buf.Reset()
	require.NoError(t, Occupancy(&buf, s))
}

func TestChartsRejectShortSeries(t *testing.T) {
	s := potts.Series{Diversity: []int{1}, Occupancy: [][]int{{1}}, Energy: []float64{0}}
	assert.ErrorIs(t, Diversity(&bytes.Buffer{}, s), ErrTooFewSteps)
	assert.ErrorIs(t, Energy(&bytes.Buffer{}, s), ErrTooFewSteps)
	assert.ErrorIs(t, Occupancy(&bytes.Buffer{}, potts.Series{}), ErrTooFewSteps)
}

func TestSpan(t *testing.T) {
	lo, hi, err := span([]float64{3, -1, 2})
	require.NoError(t, err)
	assert.Equal(t, -1.0, lo)
	assert.Equal(t, 3.0, hi)

	lo, hi, err = span([]float64{5, 5})
	require.NoError(t, err)
	assert.Less(t, lo, 5.0)
	assert.Greater(t, hi, 5.0)
}

func TestHeatmapDimensionsAndColors(t *testing.T) {
	lattice, err := potts.FromRows(2, [][]int{{0, 1}, {1, 0}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Heatmap(&buf, lattice, 3))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 6, img.Bounds().Dx())
	assert.Equal(t, 6, img.Bounds().Dy())

	r, g, b, _ := img.At(0, 0).RGBA()
	assert.Zero(t, r+g+b, "state 0 should be black")
	r, g, b, _ = img.At(4, 1).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0xffff), g)
	assert.Equal(t, uint32(0xffff), b)
}

func TestWriteAll(t *testing.T) {
	initial, res := runFixture(t, 40)
	dir := filepath.Join(t.TempDir(), "out")

	paths, err := WriteAll(dir, initial, res, Options{Charts: true, Heatmaps: true, Scale: 4})
	require.NoError(t, err)
	assert.Len(t, paths, 5)
	for _, name := range []string{InitialLatticeFile, FinalLatticeFile, DiversityFile, OccupancyFile, EnergyFile} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.True(t, bytes.HasPrefix(data, pngMagic), name)
	}
}

func TestWriteAllSkipsChartsForShortRuns(t *testing.T) {
	initial, res := runFixture(t, 1)
	paths, err := WriteAll(t.TempDir(), initial, res, Options{Charts: true, Heatmaps: true})
	assert.ErrorIs(t, err, ErrTooFewSteps)
	assert.Len(t, paths, 2)
}
