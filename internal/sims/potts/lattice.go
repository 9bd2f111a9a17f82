package potts

import (
	"fmt"

	"potts-mc/internal/core"
)

// Lattice is an N×N torus of Potts states in [0, q). Cells are addressed by
// (i, j) = (row, column).
type Lattice struct {
	q    int
	grid *core.Grid
}

// NewLattice allocates an all-zero lattice.
func NewLattice(q, n int) (*Lattice, error) {
	if q < 1 {
		return nil, fmt.Errorf("%w: q=%d", ErrInvalidStates, q)
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: n=%d", ErrInvalidSize, n)
	}
	return &Lattice{q: q, grid: core.NewGrid(n, n)}, nil
}

// InitializeLattice returns an n×n lattice whose cells are drawn
// independently and uniformly from {0, …, q-1}, row by row.
func InitializeLattice(q, n int, rng *core.RNG) (*Lattice, error) {
	l, err := NewLattice(q, n)
	if err != nil {
		return nil, err
	}
	core.FillUniform(rng.Source(), l.grid.Cells(), q)
	return l, nil
}

// FromRows builds a lattice from explicit rows. The rows must form a square
// and every value must lie in [0, q).
func FromRows(q int, rows [][]int) (*Lattice, error) {
	l, err := NewLattice(q, len(rows))
	if err != nil {
		return nil, err
	}
	n := len(rows)
	cells := l.grid.Cells()
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrLatticeMismatch, i, len(row), n)
		}
		for j, v := range row {
			if v < 0 || v >= q {
				return nil, fmt.Errorf("%w: (%d,%d)=%d with q=%d", ErrStateOutOfRange, i, j, v, q)
			}
			cells[l.grid.Index(i, j)] = v
		}
	}
	return l, nil
}

// N returns the lattice side.
func (l *Lattice) N() int { return l.grid.W }

// Q returns the number of states.
func (l *Lattice) Q() int { return l.q }

// At returns the state at (i, j). Coordinates wrap around the torus.
func (l *Lattice) At(i, j int) int { return l.grid.At(i, j) }

// Set overwrites the state at (i, j). Coordinates wrap around the torus.
func (l *Lattice) Set(i, j, v int) error {
	if v < 0 || v >= l.q {
		return fmt.Errorf("%w: %d with q=%d", ErrStateOutOfRange, v, l.q)
	}
	i, j = l.grid.Wrap(i, j)
	l.grid.Cells()[l.grid.Index(i, j)] = v
	return nil
}

// Cells exposes the row-major backing slice. Callers must not write values
// outside [0, q).
func (l *Lattice) Cells() []int { return l.grid.Cells() }

// Rows returns a copy of the lattice as a slice of rows.
func (l *Lattice) Rows() [][]int {
	n := l.N()
	cells := l.grid.Cells()
	rows := make([][]int, n)
	for i := range rows {
		rows[i] = append([]int(nil), cells[i*n:(i+1)*n]...)
	}
	return rows
}

// Clone returns an independent copy of the lattice.
func (l *Lattice) Clone() *Lattice {
	return &Lattice{q: l.q, grid: l.grid.Clone()}
}

// Counts returns, for every state in [0, q), the number of cells holding it.
func (l *Lattice) Counts() []int {
	counts := make([]int, l.q)
	for _, v := range l.grid.Cells() {
		counts[v]++
	}
	return counts
}

// Diversity returns the number of distinct states present in the lattice.
func (l *Lattice) Diversity() int {
	return diversity(l.Counts())
}

// Validate scans every cell and reports the first value outside [0, q).
func (l *Lattice) Validate() error {
	n := l.N()
	for idx, v := range l.grid.Cells() {
		if v < 0 || v >= l.q {
			return fmt.Errorf("%w: (%d,%d)=%d with q=%d", ErrStateOutOfRange, idx/n, idx%n, v, l.q)
		}
	}
	return nil
}

func diversity(counts []int) int {
	distinct := 0
	for _, c := range counts {
		if c > 0 {
			distinct++
		}
	}
	return distinct
}
