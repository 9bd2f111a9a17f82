package potts

import (
	"fmt"

	"potts-mc/internal/core"
)

// Phase is the lifecycle state of a Simulation.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseComplete
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseComplete:
		return "complete"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// StepRecord describes one Monte Carlo trial and the observables recorded
// after it.
type StepRecord struct {
	Step     int
	Row, Col int
	DeltaE   float64
	P        float64
	Accepted bool
	From, To int

	Diversity int
	Occupancy []int
	Energy    float64
}

// Series holds the per-step observables of a run. Occupancy is indexed by
// state first, then by step.
type Series struct {
	Diversity []int
	Occupancy [][]int
	Energy    []float64
}

func newSeries(q, capacity int) Series {
	s := Series{
		Diversity: make([]int, 0, capacity),
		Occupancy: make([][]int, q),
		Energy:    make([]float64, 0, capacity),
	}
	for state := range s.Occupancy {
		s.Occupancy[state] = make([]int, 0, capacity)
	}
	return s
}

// Len returns the number of recorded steps.
func (s Series) Len() int { return len(s.Energy) }

func (s *Series) append(rec StepRecord) {
	s.Diversity = append(s.Diversity, rec.Diversity)
	for state, count := range rec.Occupancy {
		s.Occupancy[state] = append(s.Occupancy[state], count)
	}
	s.Energy = append(s.Energy, rec.Energy)
}

// Result is what a completed run hands back to the caller. Lattice is the
// same lattice the simulation was created with, mutated in place.
type Result struct {
	Lattice *Lattice
	Series  Series

	Steps         int
	Accepted      int
	InitialEnergy float64
	FinalEnergy   float64
}

// AcceptanceRate returns the fraction of trials that overwrote their cell.
func (r *Result) AcceptanceRate() float64 {
	if r.Steps == 0 {
		return 0
	}
	return float64(r.Accepted) / float64(r.Steps)
}

// Option customizes a Simulation.
type Option func(*Simulation)

// WithObserver registers fn to receive every StepRecord as it is produced.
func WithObserver(fn func(StepRecord)) Option {
	return func(s *Simulation) { s.observers = append(s.observers, fn) }
}

// WithoutSeries stops the simulation from materializing the observable
// series. Observers still see every step.
func WithoutSeries() Option {
	return func(s *Simulation) { s.discard = true }
}

// Simulation runs single-spin-flip Metropolis dynamics on a lattice it owns
// exclusively until Steps trials have been made.
type Simulation struct {
	cfg     Config
	lattice *Lattice
	rng     *core.RNG
	kt      float64

	phase    Phase
	step     int
	accepted int
	counts   []int
	bonds    int64
	initialE float64

	series    Series
	discard   bool
	observers []func(StepRecord)
}

// NewSimulation validates cfg against lattice and prepares a run. Nothing is
// mutated when an error is returned. A nil rng is seeded from cfg.Seed.
func NewSimulation(cfg Config, lattice *Lattice, rng *core.RNG, opts ...Option) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if lattice == nil {
		return nil, fmt.Errorf("%w: nil lattice", ErrLatticeMismatch)
	}
	if lattice.Q() != cfg.States {
		return nil, fmt.Errorf("%w: lattice q=%d, config q=%d", ErrLatticeMismatch, lattice.Q(), cfg.States)
	}
	if lattice.N() != cfg.Size {
		return nil, fmt.Errorf("%w: lattice n=%d, config n=%d", ErrLatticeMismatch, lattice.N(), cfg.Size)
	}
	if err := lattice.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = core.NewRNG(cfg.Seed)
	}

	s := &Simulation{
		cfg:     cfg,
		lattice: lattice,
		rng:     rng,
		kt:      cfg.Boltzmann * cfg.Temperature,
		counts:  lattice.Counts(),
		bonds:   bondSum(lattice),
	}
	s.initialE = energyFromBonds(s.bonds, cfg.Coupling)
	for _, opt := range opts {
		opt(s)
	}
	if !s.discard {
		s.series = newSeries(cfg.States, cfg.Steps)
	}
	if cfg.Steps == 0 {
		s.phase = PhaseComplete
	}
	return s, nil
}

// Phase reports the lifecycle state.
func (s *Simulation) Phase() Phase { return s.phase }

// StepsDone returns the number of completed trials.
func (s *Simulation) StepsDone() int { return s.step }

// Lattice returns the lattice being simulated.
func (s *Simulation) Lattice() *Lattice { return s.lattice }

// Config returns the run parameters.
func (s *Simulation) Config() Config { return s.cfg }

// Step performs one trial and records its observables. It returns false once
// the configured number of steps has been exhausted.
func (s *Simulation) Step() (StepRecord, bool) {
	if s.phase == PhaseComplete {
		return StepRecord{}, false
	}
	s.phase = PhaseRunning

	l := s.lattice
	n := l.N()
	i := s.rng.IntN(n)
	j := s.rng.IntN(n)

	dE := LocalEnergy(l, i, j, s.cfg.Coupling)
	p := acceptance(dE, s.kt)

	cells := l.Cells()
	idx := l.grid.Index(i, j)
	rec := StepRecord{Step: s.step, Row: i, Col: j, DeltaE: dE, P: p, From: cells[idx], To: cells[idx]}

	if s.rng.Float64() < p {
		next := s.rng.IntN(s.cfg.States)
		if s.cfg.Incremental {
			s.bonds += l.bondDelta(i, j, next)
		}
		s.counts[rec.From]--
		s.counts[next]++
		cells[idx] = next
		rec.To = next
		rec.Accepted = true
		s.accepted++
	}

	rec.Diversity = diversity(s.counts)
	rec.Occupancy = append([]int(nil), s.counts...)
	rec.Energy = s.energy()

	if !s.discard {
		s.series.append(rec)
	}
	for _, fn := range s.observers {
		fn(rec)
	}

	s.step++
	if s.step >= s.cfg.Steps {
		s.phase = PhaseComplete
	}
	return rec, true
}

// Energy returns the current Hamiltonian of the lattice.
func (s *Simulation) Energy() float64 { return s.energy() }

func (s *Simulation) energy() float64 {
	if s.cfg.Incremental {
		return energyFromBonds(s.bonds, s.cfg.Coupling)
	}
	return TotalEnergy(s.lattice, s.cfg.Coupling)
}

// Run performs every remaining step and returns the result.
func (s *Simulation) Run() *Result {
	for {
		if _, ok := s.Step(); !ok {
			break
		}
	}
	return s.Result()
}

// Result snapshots the run so far. The final energy is recomputed from the
// lattice.
func (s *Simulation) Result() *Result {
	return &Result{
		Lattice:       s.lattice,
		Series:        s.series,
		Steps:         s.step,
		Accepted:      s.accepted,
		InitialEnergy: s.initialE,
		FinalEnergy:   TotalEnergy(s.lattice, s.cfg.Coupling),
	}
}

// Run simulates cfg.Steps trials on lattice and returns the final lattice
// together with the recorded series.
func Run(cfg Config, lattice *Lattice, rng *core.RNG, opts ...Option) (*Result, error) {
	sim, err := NewSimulation(cfg, lattice, rng, opts...)
	if err != nil {
		return nil, err
	}
	return sim.Run(), nil
}
