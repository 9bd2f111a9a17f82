// Package plot renders the lattice and the observable series of a run to PNG.
package plot

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/wcharczuk/go-chart/v2"

	"potts-mc/internal/sims/potts"
	"potts-mc/internal/stats"
)

// Default chart dimensions in pixels.
const (
	DefaultWidth  = 960
	DefaultHeight = 540
)

// ErrTooFewSteps is returned when a series is too short to draw a line.
var ErrTooFewSteps = errors.New("plot: at least two recorded steps are required")

// Diversity draws the number of distinct states against the step index.
func Diversity(w io.Writer, s potts.Series) error {
	ys := stats.Float64s(s.Diversity)
	return render(w, "Distinct states per simulation step", "Distinct states", []chart.Series{
		chart.ContinuousSeries{
			Name:    "distinct states",
			XValues: stats.Steps(len(ys)),
			YValues: ys,
			Style:   chart.Style{StrokeColor: chart.GetDefaultColor(0), StrokeWidth: 2},
		},
	}, ys)
}

// Occupancy draws one line per state with the number of cells holding it.
func Occupancy(w io.Writer, s potts.Series) error {
	series := make([]chart.Series, 0, len(s.Occupancy))
	var all []float64
	for state, counts := range s.Occupancy {
		ys := stats.Float64s(counts)
		all = append(all, ys...)
		series = append(series, chart.ContinuousSeries{
			Name:    fmt.Sprintf("state %d", state),
			XValues: stats.Steps(len(ys)),
			YValues: ys,
			Style:   chart.Style{StrokeColor: chart.GetDefaultColor(state), StrokeWidth: 1.5},
		})
	}
	if len(series) == 0 {
		return ErrTooFewSteps
	}
	return render(w, "Cells per state per simulation step", "Cells", series, all)
}

// Energy draws the Hamiltonian against the step index.
func Energy(w io.Writer, s potts.Series) error {
	return render(w, "Hamiltonian per simulation step", "Hamiltonian", []chart.Series{
		chart.ContinuousSeries{
			Name:    "H",
			XValues: stats.Steps(len(s.Energy)),
			YValues: s.Energy,
			Style:   chart.Style{StrokeColor: chart.GetDefaultColor(1), StrokeWidth: 2},
		},
	}, s.Energy)
}

func render(w io.Writer, title, yName string, series []chart.Series, ys []float64) error {
	steps := 0
	for _, s := range series {
		if cs, ok := s.(chart.ContinuousSeries); ok && cs.Len() > steps {
			steps = cs.Len()
		}
	}
	if steps < 2 {
		return ErrTooFewSteps
	}
	lo, hi, err := span(ys)
	if err != nil {
		return err
	}

	graph := chart.Chart{
		Title:  title,
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 48, Left: 24, Right: 24, Bottom: 16},
		},
		XAxis: chart.XAxis{
			Name:           "Simulation step",
			Range:          &chart.ContinuousRange{Min: 0, Max: float64(steps - 1)},
			ValueFormatter: stepFormatter,
		},
		YAxis: chart.YAxis{
			Name:  yName,
			Range: &chart.ContinuousRange{Min: lo, Max: hi},
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("plot: render %q: %w", title, err)
	}
	return nil
}

// span returns a non-degenerate y range covering ys.
func span(ys []float64) (float64, float64, error) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, y := range ys {
		if math.IsNaN(y) || math.IsInf(y, 0) {
			return 0, 0, fmt.Errorf("plot: series contains non-finite value %v", y)
		}
		lo = math.Min(lo, y)
		hi = math.Max(hi, y)
	}
	if len(ys) == 0 {
		return 0, 1, nil
	}
	if lo == hi {
		pad := math.Max(1, math.Abs(lo)*0.05)
		return lo - pad, hi + pad, nil
	}
	return lo, hi, nil
}

func stepFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("%d", int64(f))
	}
	return ""
}
