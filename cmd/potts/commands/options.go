package commands

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"potts-mc/internal/config"
	"potts-mc/internal/sims/potts"
)

// Output flag names.
const (
	flagOut          = "out"
	flagPlots        = "plots"
	flagHeatmaps     = "heatmaps"
	flagHeatmapScale = "heatmap-scale"
	flagPrintLattice = "print-lattice"
	flagProgress     = "progress"
)

// addSimulationFlags registers one flag per potts.Keys entry. Only flags the
// user sets override the file and environment.
func addSimulationFlags(cmd *cobra.Command) {
	d := potts.DefaultConfig()
	fs := cmd.Flags()
	fs.Int("n", d.Size, "Lattice side N")
	fs.Int("q", d.States, "Number of states q")
	fs.Float64("t", d.Temperature, "Temperature T")
	fs.Float64("j", d.Coupling, "Coupling constant J")
	fs.Float64("k", d.Boltzmann, "Boltzmann constant k")
	fs.Int("steps", d.Steps, "Monte Carlo steps")
	fs.Int64("seed", d.Seed, "Random seed")
	fs.Bool("incremental", d.Incremental, "Track the energy per move instead of rescanning")
}

func addOutputFlags(cmd *cobra.Command) {
	o := config.Default().Output
	fs := cmd.Flags()
	fs.StringP(flagOut, "o", o.Dir, "Directory for images; each run writes to <out>/<run id>")
	fs.Bool(flagPlots, o.Plots, "Write diversity, occupancy and energy charts")
	fs.Bool(flagHeatmaps, o.Heatmaps, "Write initial and final lattice heatmaps")
	fs.Int(flagHeatmapScale, o.HeatmapScale, "Pixels per lattice site in heatmaps")
	fs.Bool(flagPrintLattice, o.PrintLattice, "Print the final lattice")
	fs.Duration(flagProgress, 2*time.Second, "Interval between progress log lines")
}

// resolveConfig layers defaults, the YAML file, the environment and changed
// flags, then validates the result.
func resolveConfig(cmd *cobra.Command, path string, lookup func(string) (string, bool)) (*config.File, error) {
	file := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		file = loaded
	}
	if err := file.ApplyEnv(lookup); err != nil {
		return nil, err
	}
	if err := applyFlags(cmd, file); err != nil {
		return nil, err
	}
	if err := file.Validate(); err != nil {
		return nil, err
	}
	return file, nil
}

func applyFlags(cmd *cobra.Command, file *config.File) error {
	fs := cmd.Flags()
	for _, key := range potts.Keys {
		if !fs.Changed(key) {
			continue
		}
		if err := file.Simulation.Set(key, fs.Lookup(key).Value.String()); err != nil {
			return fmt.Errorf("flag --%s: %w", key, err)
		}
	}

	var err error
	out := &file.Output
	if fs.Changed(flagOut) {
		out.Dir, err = fs.GetString(flagOut)
	}
	if err == nil && fs.Changed(flagPlots) {
		out.Plots, err = fs.GetBool(flagPlots)
	}
	if err == nil && fs.Changed(flagHeatmaps) {
		out.Heatmaps, err = fs.GetBool(flagHeatmaps)
	}
	if err == nil && fs.Changed(flagHeatmapScale) {
		out.HeatmapScale, err = fs.GetInt(flagHeatmapScale)
	}
	if err == nil && fs.Changed(flagPrintLattice) {
		out.PrintLattice, err = fs.GetBool(flagPrintLattice)
	}
	return err
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      lvl,
		TimeFormat: "15:04:05",
	})), nil
}
