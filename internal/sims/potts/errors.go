package potts

import "errors"

// Configuration violations. They are returned wrapped with the offending
// value, so match them with errors.Is.
var (
	// ErrInvalidStates indicates a state count q < 1.
	ErrInvalidStates = errors.New("potts: state count must be at least 1")

	// ErrInvalidSize indicates a lattice side N < 1.
	ErrInvalidSize = errors.New("potts: lattice side must be at least 1")

	// ErrInvalidSteps indicates a negative number of Monte Carlo steps.
	ErrInvalidSteps = errors.New("potts: step count must not be negative")

	// ErrInvalidTemperature indicates k*T == 0 (or a non-positive T or k in
	// a Config).
	ErrInvalidTemperature = errors.New("potts: k*T must be non-zero")

	// ErrStateOutOfRange indicates a cell value outside [0, q).
	ErrStateOutOfRange = errors.New("potts: cell state out of range")

	// ErrLatticeMismatch indicates a lattice whose q or shape does not match
	// the run parameters.
	ErrLatticeMismatch = errors.New("potts: lattice does not match parameters")
)
