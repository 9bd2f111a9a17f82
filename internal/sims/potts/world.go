package potts

import (
	"image/color"
	"math"

	"potts-mc/internal/core"
)

// World adapts an open-ended Potts run to the core.Sim contract so it can be
// shown by the viewer. One Step is one sweep of N² trials.
type World struct {
	cfg     Config
	rng     *core.RNG
	sim     *Simulation
	display []uint8
	last    StepRecord
	sweeps  int
}

// NewWorld validates cfg and returns a world initialized from cfg.Seed.
func NewWorld(cfg Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	w := &World{cfg: cfg, display: make([]uint8, cfg.Size*cfg.Size)}
	w.Reset(cfg.Seed)
	return w, nil
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "potts" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.cfg.Size, H: w.cfg.Size} }

// Cells exposes the display buffer, one state index per cell.
func (w *World) Cells() []uint8 { return w.display }

// Palette exposes the colors used to render each state.
func (w *World) Palette() []color.RGBA { return Palette(w.cfg.States) }

// Lattice returns the lattice being simulated.
func (w *World) Lattice() *Lattice { return w.sim.Lattice() }

// Last returns the most recent trial.
func (w *World) Last() StepRecord { return w.last }

// Sweeps returns the number of sweeps since the last reset.
func (w *World) Sweeps() int { return w.sweeps }

// Reset draws a fresh random lattice. A zero seed reuses the configured one.
func (w *World) Reset(seed int64) {
	if seed == 0 {
		seed = w.cfg.Seed
	}
	w.rng = core.NewRNG(seed)
	lattice, err := InitializeLattice(w.cfg.States, w.cfg.Size, w.rng)
	if err != nil {
		// cfg was validated in NewWorld.
		panic(err)
	}
	w.sweeps = 0
	w.last = StepRecord{Diversity: lattice.Diversity(), Occupancy: lattice.Counts()}
	w.restart(lattice)
	w.last.Energy = w.sim.Energy()
}

// restart begins a new unbounded run on lattice with the current parameters.
func (w *World) restart(lattice *Lattice) {
	cfg := w.cfg
	cfg.Steps = math.MaxInt
	sim, err := NewSimulation(cfg, lattice, w.rng, WithoutSeries())
	if err != nil {
		panic(err)
	}
	w.sim = sim
	encodeDisplay(w.display, lattice.Cells())
}

// Step advances the world by one sweep.
func (w *World) Step() {
	trials := w.cfg.Size * w.cfg.Size
	for t := 0; t < trials; t++ {
		rec, ok := w.sim.Step()
		if !ok {
			break
		}
		w.last = rec
	}
	w.sweeps++
	encodeDisplay(w.display, w.sim.Lattice().Cells())
}

// Parameters describes the configuration plus live observables.
func (w *World) Parameters() core.ParameterSnapshot {
	snap := w.cfg.Snapshot()
	snap.Groups = append(snap.Groups, core.ParameterGroup{
		Name: "Observables",
		Params: []core.Parameter{
			core.IntParam("sweeps", "Sweeps", w.sweeps),
			core.IntParam("diversity", "Distinct states", w.last.Diversity),
			core.FloatParam("energy", "Hamiltonian", w.last.Energy),
		},
	})
	return snap
}

// SetFloatParameter updates the temperature or coupling. Parameters are
// fixed for a run, so a change starts a new run on the current lattice.
func (w *World) SetFloatParameter(key string, value float64) bool {
	next := w.cfg
	switch key {
	case "t":
		next.Temperature = value
	case "j":
		next.Coupling = value
	default:
		return false
	}
	if next.Validate() != nil {
		return false
	}
	w.cfg = next
	w.restart(w.sim.Lattice())
	return true
}

// Config returns the active parameters.
func (w *World) Config() Config { return w.cfg }

func init() {
	core.Register("potts", func(cfg map[string]string) core.Sim {
		w, err := NewWorld(FromMap(cfg))
		if err != nil {
			return nil
		}
		return w
	})
}
