package commands

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"potts-mc/internal/prompt"
	"potts-mc/internal/report"
)

var promptHistory string

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Ask for N, q, T, J and steps interactively, then run",
	Long: `Prompt asks for each simulation parameter in turn with a short
explanation. Pressing enter keeps the value shown in brackets, which comes
from the defaults, the config file, the environment and any flags given.

Ctrl-C or Ctrl-D aborts without running.`,
	Args: cobra.NoArgs,
	RunE: runPrompt,
}

func init() {
	addSimulationFlags(promptCmd)
	addOutputFlags(promptCmd)
	home, _ := os.UserHomeDir()
	defaultHistory := ""
	if home != "" {
		defaultHistory = filepath.Join(home, ".potts_history")
	}
	promptCmd.Flags().StringVar(&promptHistory, "history", defaultHistory, "Readline history file (empty disables)")
	rootCmd.AddCommand(promptCmd)
}

func runPrompt(cmd *cobra.Command, args []string) error {
	p := report.New(cmd.OutOrStdout(), cmd.ErrOrStderr())
	file, err := resolveConfig(cmd, configPath, os.LookupEnv)
	if err != nil {
		return p.Error("Invalid configuration", err, suggestionsFor(err))
	}

	rl, err := prompt.NewTerminal(promptHistory)
	if err != nil {
		return p.Error("Cannot open terminal", err, []string{"Use 'potts run' with flags instead"})
	}
	cfg, err := prompt.Collect(rl, cmd.OutOrStdout(), file.Simulation)
	rl.Close()
	if errors.Is(err, prompt.ErrAborted) {
		p.Warning("aborted")
		return err
	}
	if err != nil {
		return p.Error("Cannot read parameters", err, nil)
	}
	file.Simulation = cfg

	s, err := newSession(cmd, p, file)
	if err != nil {
		return err
	}
	_, err = s.run()
	return err
}
