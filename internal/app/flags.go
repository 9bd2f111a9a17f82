package app

import (
	"flag"
	"strconv"

	"potts-mc/internal/sims/potts"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Sim      string
	Scale    int
	TPS      int
	HUDWidth int
	Potts    potts.Config
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	p := potts.DefaultConfig()
	p.Size = 128
	p.Boltzmann = 1
	p.Temperature = 0.8
	return &Config{Sim: "potts", Scale: 4, TPS: 30, HUDWidth: 240, Potts: p}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "sweeps per second")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "parameter panel width in pixels (0 hides it)")

	fs.IntVar(&c.Potts.Size, "n", c.Potts.Size, "lattice side N")
	fs.IntVar(&c.Potts.States, "q", c.Potts.States, "number of states q")
	fs.Float64Var(&c.Potts.Temperature, "t", c.Potts.Temperature, "temperature T")
	fs.Float64Var(&c.Potts.Coupling, "j", c.Potts.Coupling, "coupling constant J")
	fs.Float64Var(&c.Potts.Boltzmann, "k", c.Potts.Boltzmann, "Boltzmann constant k")
	fs.Int64Var(&c.Potts.Seed, "seed", c.Potts.Seed, "seed for simulation reset")
	fs.BoolVar(&c.Potts.Incremental, "incremental", c.Potts.Incremental, "track the energy per move")
}

// Params renders the simulation parameters as factory key/value pairs.
func (c *Config) Params() map[string]string {
	p := c.Potts
	return map[string]string{
		"n":           strconv.Itoa(p.Size),
		"q":           strconv.Itoa(p.States),
		"t":           strconv.FormatFloat(p.Temperature, 'g', -1, 64),
		"j":           strconv.FormatFloat(p.Coupling, 'g', -1, 64),
		"k":           strconv.FormatFloat(p.Boltzmann, 'g', -1, 64),
		"seed":        strconv.FormatInt(p.Seed, 10),
		"incremental": strconv.FormatBool(p.Incremental),
	}
}
