// Package prompt asks for simulation parameters interactively.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"potts-mc/internal/sims/potts"
)

// ErrAborted is returned when the user interrupts or closes input.
var ErrAborted = errors.New("prompt: aborted")

// LineReader is the subset of *readline.Instance used by Collect.
type LineReader interface {
	Readline() (string, error)
	SetPrompt(string)
}

type question struct {
	key     string
	label   string
	explain string
	current func(potts.Config) string
}

var questions = []question{
	{
		key:     "n",
		label:   "Lattice side N",
		explain: "The lattice is N x N with periodic boundaries.",
		current: func(c potts.Config) string { return fmt.Sprint(c.Size) },
	},
	{
		key:     "q",
		label:   "Number of states q",
		explain: "Each site holds one of q states, 0 through q-1.",
		current: func(c potts.Config) string { return fmt.Sprint(c.States) },
	},
	{
		key:     "t",
		label:   "Temperature T",
		explain: "Higher T accepts more energy-raising moves.",
		current: func(c potts.Config) string { return fmt.Sprint(c.Temperature) },
	},
	{
		key:     "j",
		label:   "Coupling J",
		explain: "J > 0 favors equal neighbors, J < 0 favors unequal ones.",
		current: func(c potts.Config) string { return fmt.Sprint(c.Coupling) },
	},
	{
		key:     "steps",
		label:   "Monte Carlo steps",
		explain: "Each step proposes one new state at a random site.",
		current: func(c potts.Config) string { return fmt.Sprint(c.Steps) },
	},
}

// Collect asks for each parameter in turn, starting from defaults. Empty
// input keeps the shown value; invalid input is reported and asked again.
func Collect(r LineReader, out io.Writer, defaults potts.Config) (potts.Config, error) {
	cfg := defaults
	for _, q := range questions {
		fmt.Fprintf(out, "%s\n", q.explain)
		for {
			r.SetPrompt(fmt.Sprintf("%s [%s]: ", q.label, q.current(cfg)))
			line, err := r.Readline()
			if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
				return defaults, ErrAborted
			}
			if err != nil {
				return defaults, fmt.Errorf("prompt: %w", err)
			}
			line = strings.TrimSpace(line)
			if line == "" {
				break
			}
			next := cfg
			if err := next.Set(q.key, line); err != nil {
				fmt.Fprintf(out, "invalid value: %v\n", err)
				continue
			}
			if err := next.Validate(); err != nil {
				fmt.Fprintf(out, "invalid value: %v\n", err)
				continue
			}
			cfg = next
			break
		}
	}
	return cfg, nil
}

// NewTerminal opens a readline instance on the process terminal. The caller
// closes it.
func NewTerminal(historyFile string) (*readline.Instance, error) {
	return readline.NewEx(&readline.Config{
		Prompt:          "> ",
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
}
