package commands

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"potts-mc/internal/config"
	"potts-mc/internal/core"
	"potts-mc/internal/plot"
	"potts-mc/internal/report"
	"potts-mc/internal/sims/potts"
	"potts-mc/internal/stats"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a Metropolis simulation and report the result",
	Long: `Run initializes a random lattice from the seed, performs the requested
number of single-site Metropolis steps and reports:

  - the parameters in effect
  - the Hamiltonian before and after the run
  - the final lattice (small lattices only)
  - summary statistics over the recorded series

Unless disabled, heatmaps of the initial and final lattice and charts of
the diversity, per-state occupancy and energy are written to
<out>/<run id>/.

Examples:
  # Default parameters (N=10, q=2, T=2, J=1, 1000 steps)
  potts run

  # Three states on a 32 x 32 lattice with a reduced Boltzmann constant
  potts run --n 32 --q 3 --k 1 --t 0.9 --steps 200000

  # From a file, overriding the seed
  POTTS_SEED=7 potts run --config potts.yml`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	addSimulationFlags(runCmd)
	addOutputFlags(runCmd)
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	p := report.New(cmd.OutOrStdout(), cmd.ErrOrStderr())
	file, err := resolveConfig(cmd, configPath, os.LookupEnv)
	if err != nil {
		return p.Error("Invalid configuration", err, suggestionsFor(err))
	}
	s, err := newSession(cmd, p, file)
	if err != nil {
		return err
	}
	_, err = s.run()
	return err
}

// session is a single configured run with its printer and logger.
type session struct {
	file     *config.File
	out      *report.Printer
	log      *slog.Logger
	runID    string
	progress time.Duration
}

func newSession(cmd *cobra.Command, p *report.Printer, file *config.File) (*session, error) {
	logger, err := newLogger(cmd.ErrOrStderr(), logLevel)
	if err != nil {
		return nil, p.Error("Invalid log level", err, []string{"Use --log-level with debug, info, warn or error"})
	}
	progress, err := cmd.Flags().GetDuration(flagProgress)
	if err != nil {
		progress = 0
	}
	id := uuid.NewString()
	return &session{
		file:     file,
		out:      p,
		log:      logger.With("run_id", id),
		runID:    id,
		progress: progress,
	}, nil
}

func (s *session) run() (*potts.Result, error) {
	cfg := s.file.Simulation
	s.out.Parameters(cfg.Snapshot())

	rng := core.NewRNG(cfg.Seed)
	lattice, err := potts.InitializeLattice(cfg.States, cfg.Size, rng)
	if err != nil {
		return nil, s.out.Error("Cannot build lattice", err, suggestionsFor(err))
	}
	initial := lattice.Clone()
	s.out.Hamiltonian("H before", potts.TotalEnergy(initial, cfg.Coupling))

	s.log.Info("run started",
		"n", cfg.Size, "q", cfg.States, "t", cfg.Temperature, "j", cfg.Coupling,
		"k", cfg.Boltzmann, "steps", cfg.Steps, "seed", cfg.Seed, "incremental", cfg.Incremental)
	throttle := core.NewThrottle(s.progress)
	start := time.Now()
	res, err := potts.Run(cfg, lattice, rng, potts.WithObserver(func(r potts.StepRecord) {
		if throttle.Ready() {
			s.log.Info("progress", "step", r.Step+1, "of", cfg.Steps, "energy", r.Energy, "distinct", r.Diversity)
		}
	}))
	if err != nil {
		return nil, s.out.Error("Simulation failed", err, suggestionsFor(err))
	}
	s.log.Info("run finished", "elapsed", time.Since(start), "accepted", res.Accepted, "energy", res.FinalEnergy)

	s.out.Hamiltonian("H after", res.FinalEnergy)
	if s.file.Output.PrintLattice {
		s.out.Lattice(res.Lattice)
	}
	s.out.Summary(stats.Summarize(res))

	if err := s.writeImages(initial, res); err != nil {
		return res, err
	}
	return res, nil
}

func (s *session) writeImages(initial *potts.Lattice, res *potts.Result) error {
	out := s.file.Output
	if !out.Plots && !out.Heatmaps {
		return nil
	}
	dir := filepath.Join(out.Dir, s.runID)
	paths, err := plot.WriteAll(dir, initial, res, plot.Options{
		Charts:   out.Plots,
		Heatmaps: out.Heatmaps,
		Scale:    out.HeatmapScale,
	})
	for _, path := range paths {
		s.out.Success("wrote %s", path)
	}
	switch {
	case errors.Is(err, plot.ErrTooFewSteps):
		s.out.Warning("charts need at least two steps; skipped")
		return nil
	case err != nil:
		return s.out.Error("Cannot write images", err, []string{"Check that the --out directory is writable"})
	}
	s.log.Debug("images written", "dir", dir, "count", len(paths))
	return nil
}

func suggestionsFor(err error) []string {
	switch {
	case errors.Is(err, potts.ErrInvalidStates):
		return []string{"Use at least one state, e.g. --q 2"}
	case errors.Is(err, potts.ErrInvalidSize):
		return []string{"Use a lattice side of at least 1, e.g. --n 10"}
	case errors.Is(err, potts.ErrInvalidSteps):
		return []string{"Use a non-negative step count, e.g. --steps 1000"}
	case errors.Is(err, potts.ErrInvalidTemperature):
		return []string{
			"Use a positive temperature, e.g. --t 2",
			"Use a positive Boltzmann constant, e.g. --k 1",
		}
	}
	return nil
}
