package commands

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"potts-mc/internal/config"
	"potts-mc/internal/core"
	"potts-mc/internal/plot"
	"potts-mc/internal/report"
	"potts-mc/internal/sims/potts"
)

func init() {
	color.NoColor = true
}

func newFlagCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	addSimulationFlags(cmd)
	addOutputFlags(cmd)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

func noEnv(string) (string, bool) { return "", false }

func TestRootCommand_ShowsHelpWhenNoSubcommand(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{})
	defer rootCmd.SetArgs(nil)

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "Usage:")
	assert.Contains(t, buf.String(), "run")
	assert.Contains(t, buf.String(), "prompt")
}

func TestResolveConfig_Defaults(t *testing.T) {
	file, err := resolveConfig(newFlagCommand(t), "", noEnv)
	require.NoError(t, err)
	assert.Equal(t, potts.DefaultConfig(), file.Simulation)
	assert.Equal(t, config.Default().Output, file.Output)
}

func TestResolveConfig_Precedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "potts.yml")
	require.NoError(t, os.WriteFile(path, []byte(`version: "1.0"
simulation:
  n: 12
  q: 3
  temperature: 1.5
  steps: 50
output:
  dir: from-file
`), 0644))

	env := map[string]string{"POTTS_Q": "4", "POTTS_STEPS": "60"}
	lookup := func(k string) (string, bool) { v, ok := env[k]; return v, ok }

	cmd := newFlagCommand(t, "--steps", "70", "--out", "from-flag", "--plots=false")
	file, err := resolveConfig(cmd, path, lookup)
	require.NoError(t, err)

	assert.Equal(t, 12, file.Simulation.Size, "file beats default")
	assert.Equal(t, 4, file.Simulation.States, "env beats file")
	assert.Equal(t, 70, file.Simulation.Steps, "flag beats env")
	assert.Equal(t, 1.5, file.Simulation.Temperature)
	assert.Equal(t, "from-flag", file.Output.Dir)
	assert.False(t, file.Output.Plots)
	assert.True(t, file.Output.Heatmaps)
}

func TestResolveConfig_UnchangedFlagsDoNotOverride(t *testing.T) {
	env := map[string]string{"POTTS_N": "30"}
	lookup := func(k string) (string, bool) { v, ok := env[k]; return v, ok }
	file, err := resolveConfig(newFlagCommand(t, "--q", "5"), "", lookup)
	require.NoError(t, err)
	assert.Equal(t, 30, file.Simulation.Size)
	assert.Equal(t, 5, file.Simulation.States)
}

func TestResolveConfig_Invalid(t *testing.T) {
	_, err := resolveConfig(newFlagCommand(t, "--t", "0"), "", noEnv)
	assert.ErrorIs(t, err, potts.ErrInvalidTemperature)

	_, err = resolveConfig(newFlagCommand(t), "/nonexistent/potts.yml", noEnv)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config")
}

func TestParseLevel(t *testing.T) {
	for _, s := range []string{"debug", "INFO", "warn", "warning", "error", ""} {
		_, err := parseLevel(s)
		assert.NoError(t, err, s)
	}
	_, err := parseLevel("loud")
	assert.Error(t, err)
}

func TestSuggestionsFor(t *testing.T) {
	assert.Len(t, suggestionsFor(potts.ErrInvalidTemperature), 2)
	assert.Len(t, suggestionsFor(potts.ErrInvalidSize), 1)
	assert.Nil(t, suggestionsFor(io.EOF))
}

func testSession(t *testing.T, cfg potts.Config, output config.Output) (*session, *bytes.Buffer) {
	t.Helper()
	logger, err := newLogger(io.Discard, "error")
	require.NoError(t, err)
	var out bytes.Buffer
	file := config.Default()
	file.Simulation = cfg
	file.Output = output
	return &session{
		file:     file,
		out:      report.New(&out, io.Discard),
		log:      logger,
		runID:    "run-1",
		progress: time.Hour,
	}, &out
}

func TestSessionRunMatchesDirectRun(t *testing.T) {
	cfg := potts.DefaultConfig()
	cfg.Size = 6
	cfg.States = 3
	cfg.Steps = 300
	cfg.Boltzmann = 1
	cfg.Seed = 11

	s, out := testSession(t, cfg, config.Output{PrintLattice: true, HeatmapScale: 1})
	got, err := s.run()
	require.NoError(t, err)

	rng := core.NewRNG(cfg.Seed)
	lattice, err := potts.InitializeLattice(cfg.States, cfg.Size, rng)
	require.NoError(t, err)
	want, err := potts.Run(cfg, lattice, rng)
	require.NoError(t, err)

	assert.Equal(t, want.Lattice.Rows(), got.Lattice.Rows())
	assert.Equal(t, want.Series.Energy, got.Series.Energy)
	assert.Equal(t, want.Accepted, got.Accepted)

	text := out.String()
	assert.Contains(t, text, "H before: ")
	assert.Contains(t, text, "H after: ")
	assert.Contains(t, text, "Summary\n")

	var rows bytes.Buffer
	report.New(&rows, io.Discard).Lattice(got.Lattice)
	assert.Contains(t, text, rows.String())
}

func TestSessionWritesImages(t *testing.T) {
	cfg := potts.DefaultConfig()
	cfg.Size = 5
	cfg.Steps = 40
	dir := t.TempDir()

	s, out := testSession(t, cfg, config.Output{Dir: dir, Plots: true, Heatmaps: true, HeatmapScale: 2})
	_, err := s.run()
	require.NoError(t, err)

	for _, name := range []string{plot.InitialLatticeFile, plot.FinalLatticeFile, plot.DiversityFile, plot.OccupancyFile, plot.EnergyFile} {
		assert.FileExists(t, filepath.Join(dir, "run-1", name))
	}
	assert.Contains(t, out.String(), "✓ wrote ")
}

func TestSessionWarnsWhenTooFewStepsForCharts(t *testing.T) {
	cfg := potts.DefaultConfig()
	cfg.Size = 3
	cfg.Steps = 1
	dir := t.TempDir()

	s, out := testSession(t, cfg, config.Output{Dir: dir, Plots: true, HeatmapScale: 1})
	_, err := s.run()
	require.NoError(t, err)
	assert.Contains(t, out.String(), "charts need at least two steps")
}

func TestSessionZeroStepsLeavesLatticeUnchanged(t *testing.T) {
	cfg := potts.DefaultConfig()
	cfg.Size = 4
	cfg.Steps = 0

	s, _ := testSession(t, cfg, config.Output{HeatmapScale: 1})
	res, err := s.run()
	require.NoError(t, err)

	initial, err := potts.InitializeLattice(cfg.States, cfg.Size, core.NewRNG(cfg.Seed))
	require.NoError(t, err)
	assert.Equal(t, initial.Rows(), res.Lattice.Rows())
	assert.Zero(t, res.Series.Len())
}
