// Package stats reduces the observable series of a run to summary figures.
package stats

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"potts-mc/internal/sims/potts"
)

// Summary condenses a run's series.
type Summary struct {
	Steps          int
	Accepted       int
	AcceptanceRate float64

	InitialEnergy float64
	FinalEnergy   float64
	EnergyMean    float64
	EnergyStdDev  float64
	EnergyMin     float64
	EnergyMax     float64

	DiversityMean  float64
	DiversityFinal int
	// OccupancyFinal holds the cell count per state after the last step.
	OccupancyFinal []int
}

// Summarize computes the summary of res. Series statistics are zero when the
// run recorded no steps; the final figures then describe the lattice as
// handed in.
func Summarize(res *potts.Result) Summary {
	s := Summary{
		Steps:          res.Steps,
		Accepted:       res.Accepted,
		AcceptanceRate: res.AcceptanceRate(),
		InitialEnergy:  res.InitialEnergy,
		FinalEnergy:    res.FinalEnergy,
		DiversityFinal: res.Lattice.Diversity(),
		OccupancyFinal: res.Lattice.Counts(),
	}

	energy := res.Series.Energy
	if len(energy) > 0 {
		s.EnergyMean, s.EnergyStdDev = meanStdDev(energy)
		s.EnergyMin = floats.Min(energy)
		s.EnergyMax = floats.Max(energy)
	}
	if len(res.Series.Diversity) > 0 {
		s.DiversityMean = stat.Mean(Float64s(res.Series.Diversity), nil)
	}
	return s
}

func meanStdDev(x []float64) (float64, float64) {
	if len(x) < 2 {
		return stat.Mean(x, nil), 0
	}
	return stat.MeanStdDev(x, nil)
}

// Float64s converts an integer series for use with float-based tooling.
func Float64s(xs []int) []float64 {
	out := make([]float64, len(xs))
	for i, v := range xs {
		out[i] = float64(v)
	}
	return out
}

// Steps returns the x-axis values 0..n-1.
func Steps(n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{0}
	}
	out := make([]float64, n)
	floats.Span(out, 0, float64(n-1))
	return out
}
