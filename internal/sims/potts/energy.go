package potts

import (
	"fmt"
	"math"
)

// neighborSum returns the sum of the four von Neumann neighbors of (i, j)
// under periodic boundaries. Coordinates must already be wrapped.
func (l *Lattice) neighborSum(i, j int) int {
	cells := l.grid.Cells()
	s := 0
	for _, nb := range l.grid.VonNeumann(i, j) {
		s += cells[nb]
	}
	return s
}

// LocalEnergy returns -J * s * v for the cell at (i, j), where v is the
// cell's current value and s the sum of its four toroidal neighbors. The
// result is the bond energy of the existing value, not the difference
// between a proposed and the current configuration; the driver feeds it to
// the acceptance rule as dE unchanged.
func LocalEnergy(l *Lattice, i, j int, coupling float64) float64 {
	i, j = l.grid.Wrap(i, j)
	s := l.neighborSum(i, j)
	return -coupling * float64(s*l.At(i, j))
}

// TotalEnergy returns the Hamiltonian -J * Σ v(i,j) * s(i,j) over every
// cell. The integer sum is accumulated exactly before scaling by -J.
func TotalEnergy(l *Lattice, coupling float64) float64 {
	return energyFromBonds(bondSum(l), coupling)
}

// bondSum returns Σ v(i,j) * s(i,j) over the whole lattice.
func bondSum(l *Lattice) int64 {
	n := l.N()
	cells := l.grid.Cells()
	var total int64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := cells[l.grid.Index(i, j)]
			if v == 0 {
				continue
			}
			total += int64(v) * int64(l.neighborSum(i, j))
		}
	}
	return total
}

// bondDelta returns the change in bondSum caused by overwriting the cell at
// (i, j) with next. It must be called before the cell is written.
//
// Every bond is seen from both ends, so a change δ at cell a moves the sum by
// 2·δ·S_a, where S_a is a's neighbor sum. When a is its own neighbor (N = 1)
// each such slot also contributes δ².
func (l *Lattice) bondDelta(i, j, next int) int64 {
	idx := l.grid.Index(i, j)
	cells := l.grid.Cells()
	delta := int64(next - cells[idx])
	if delta == 0 {
		return 0
	}
	var s, self int64
	for _, nb := range l.grid.VonNeumann(i, j) {
		s += int64(cells[nb])
		if nb == idx {
			self++
		}
	}
	return 2*delta*s + delta*delta*self
}

func energyFromBonds(bonds int64, coupling float64) float64 {
	e := -coupling * float64(bonds)
	if e == 0 {
		// Avoid reporting -0 for empty bond sums.
		return 0
	}
	return e
}

// AcceptanceProbability returns exp(-dE / (k*T)). The value is not clamped:
// it may exceed 1, overflow to +Inf, or underflow to 0.
func AcceptanceProbability(dE, k, t float64) (float64, error) {
	kt := k * t
	if kt == 0 {
		return 0, fmt.Errorf("%w: k=%g T=%g", ErrInvalidTemperature, k, t)
	}
	return acceptance(dE, kt), nil
}

func acceptance(dE, kt float64) float64 {
	return math.Exp(-dE / kt)
}
