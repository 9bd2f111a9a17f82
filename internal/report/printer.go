// Package report prints run parameters, energies, the lattice and summary
// figures to the console.
package report

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"potts-mc/internal/core"
	"potts-mc/internal/sims/potts"
	"potts-mc/internal/stats"
)

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed, color.Bold)
	cyan   = color.New(color.FgCyan)
	bold   = color.New(color.Bold)
)

// MaxLatticePrint is the largest side printed cell by cell.
const MaxLatticePrint = 64

// Printer writes colored report lines. Errors go to errOut.
type Printer struct {
	out    io.Writer
	errOut io.Writer
}

// New returns a Printer writing to out and errOut.
func New(out, errOut io.Writer) *Printer {
	return &Printer{out: out, errOut: errOut}
}

// Stdout returns a Printer on the process's standard streams.
func Stdout() *Printer { return New(os.Stdout, os.Stderr) }

// Step prints a progress line prefixed with an arrow.
func (p *Printer) Step(format string, a ...any) {
	cyan.Fprintf(p.out, "→ %s\n", fmt.Sprintf(format, a...))
}

// Success prints a line prefixed with a checkmark.
func (p *Printer) Success(format string, a ...any) {
	green.Fprintf(p.out, "✓ %s\n", fmt.Sprintf(format, a...))
}

// Warning prints a highlighted warning line.
func (p *Printer) Warning(format string, a ...any) {
	yellow.Fprintf(p.out, "! %s\n", fmt.Sprintf(format, a...))
}

// Error prints title, cause and suggestions to errOut and returns an error
// that wraps cause.
func (p *Printer) Error(title string, cause error, suggestions []string) error {
	red.Fprintf(p.errOut, "%s\n\n", title)
	if cause != nil {
		fmt.Fprintf(p.errOut, "%v\n", cause)
	}
	if len(suggestions) > 0 {
		fmt.Fprintln(p.errOut)
		if len(suggestions) == 1 {
			fmt.Fprintf(p.errOut, "%s\n", suggestions[0])
		} else {
			fmt.Fprintf(p.errOut, "Either:\n")
			for i, s := range suggestions {
				fmt.Fprintf(p.errOut, "  %d. %s\n", i+1, s)
			}
		}
	}
	if cause == nil {
		return fmt.Errorf("%s", title)
	}
	return fmt.Errorf("%s: %w", title, cause)
}

// Parameters prints every group of the snapshot as aligned label/value rows.
func (p *Printer) Parameters(snap core.ParameterSnapshot) {
	width := 0
	for _, g := range snap.Groups {
		for _, param := range g.Params {
			width = max(width, len(param.Label))
		}
	}
	for _, g := range snap.Groups {
		bold.Fprintf(p.out, "%s\n", g.Name)
		for _, param := range g.Params {
			fmt.Fprintf(p.out, "  %-*s  %s\n", width, param.Label, param.Value)
		}
	}
}

// Hamiltonian prints a labeled energy value.
func (p *Printer) Hamiltonian(label string, energy float64) {
	fmt.Fprintf(p.out, "%s: ", label)
	bold.Fprintf(p.out, "%s\n", strconv.FormatFloat(energy, 'g', -1, 64))
}

// Lattice prints the lattice one row per line. Lattices wider than
// MaxLatticePrint are summarized instead.
func (p *Printer) Lattice(l *potts.Lattice) {
	n := l.N()
	if n > MaxLatticePrint {
		p.Warning("lattice is %dx%d; printing occupancy instead of cells", n, n)
		p.occupancy(l.Counts(), n*n)
		return
	}
	width := len(strconv.Itoa(l.Q() - 1))
	var b strings.Builder
	for _, row := range l.Rows() {
		b.Reset()
		for j, v := range row {
			if j > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%*d", width, v)
		}
		fmt.Fprintln(p.out, b.String())
	}
}

// Summary prints the reduced figures of a run.
func (p *Printer) Summary(s stats.Summary) {
	bold.Fprintln(p.out, "Summary")
	rows := [][2]string{
		{"Steps", strconv.Itoa(s.Steps)},
		{"Accepted", fmt.Sprintf("%d (%.2f%%)", s.Accepted, 100*s.AcceptanceRate)},
		{"Initial H", formatFloat(s.InitialEnergy)},
		{"Final H", formatFloat(s.FinalEnergy)},
	}
	if s.Steps > 0 {
		rows = append(rows,
			[2]string{"Mean H", formatFloat(s.EnergyMean)},
			[2]string{"Std dev H", formatFloat(s.EnergyStdDev)},
			[2]string{"Min H", formatFloat(s.EnergyMin)},
			[2]string{"Max H", formatFloat(s.EnergyMax)},
			[2]string{"Mean distinct states", strconv.FormatFloat(s.DiversityMean, 'f', 3, 64)},
		)
	}
	rows = append(rows, [2]string{"Final distinct states", strconv.Itoa(s.DiversityFinal)})
	width := 0
	for _, r := range rows {
		width = max(width, len(r[0]))
	}
	for _, r := range rows {
		fmt.Fprintf(p.out, "  %-*s  %s\n", width, r[0], r[1])
	}
	total := 0
	for _, c := range s.OccupancyFinal {
		total += c
	}
	p.occupancy(s.OccupancyFinal, total)
}

func (p *Printer) occupancy(counts []int, total int) {
	fmt.Fprintln(p.out, "  Final occupancy")
	for state, c := range counts {
		share := 0.0
		if total > 0 {
			share = 100 * float64(c) / float64(total)
		}
		fmt.Fprintf(p.out, "    state %d: %d (%.1f%%)\n", state, c, share)
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 8, 64)
}
