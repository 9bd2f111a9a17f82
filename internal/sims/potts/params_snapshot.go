package potts

import "potts-mc/internal/core"

// Snapshot describes cfg as parameter groups for reports and the HUD.
func (c Config) Snapshot() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Lattice",
			Params: []core.Parameter{
				core.IntParam("n", "Side N", c.Size),
				core.IntParam("q", "States q", c.States),
				core.Int64Param("seed", "Seed", c.Seed),
			},
		},
		{
			Name: "Physics",
			Params: []core.Parameter{
				core.FloatParam("t", "Temperature T", c.Temperature),
				core.FloatParam("j", "Coupling J", c.Coupling),
				core.FloatParam("k", "Boltzmann k", c.Boltzmann),
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				core.IntParam("steps", "MC steps", c.Steps),
				core.BoolParam("incremental", "Incremental energy", c.Incremental),
			},
		},
	}}
}
