// Package ui draws the parameter panel beside the lattice view.
package ui

import (
	"fmt"
	"strings"

	"potts-mc/internal/core"
)

// KeyHelp lists the viewer key bindings shown under the parameters.
var KeyHelp = []string{
	"space  pause/resume",
	"N      single sweep",
	"R      reset same seed",
	"S      reset new seed",
	"Up/Dn  scale T",
	"Q/Esc  quit",
}

// Line is one row of panel text.
type Line struct {
	Text   string
	Header bool
}

// Lines lays out a snapshot as panel rows: a header per group followed by
// its label/value pairs, padded to fit width characters.
func Lines(title string, snap core.ParameterSnapshot, paused bool, width int) []Line {
	if paused {
		title += " (paused)"
	}
	out := []Line{{Text: title, Header: true}}
	for _, g := range snap.Groups {
		out = append(out, Line{Text: g.Name, Header: true})
		for _, p := range g.Params {
			out = append(out, Line{Text: row(p.Label, p.Value, width)})
		}
	}
	out = append(out, Line{Text: "Keys", Header: true})
	for _, k := range KeyHelp {
		out = append(out, Line{Text: k})
	}
	return out
}

func row(label, value string, width int) string {
	gap := width - len(label) - len(value) - 1
	if gap < 1 {
		return fmt.Sprintf(" %s %s", label, value)
	}
	return " " + label + strings.Repeat(" ", gap) + value
}
