//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"potts-mc/internal/app"
	"potts-mc/internal/core"
	_ "potts-mc/internal/sims/potts"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Potts.Validate(); err != nil {
		log.Fatal(err)
	}
	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q (available: %v)", cfg.Sim, core.SimNames())
	}
	sim := factory(cfg.Params())
	if sim == nil {
		log.Fatalf("sim %q rejected its parameters", cfg.Sim)
	}

	game := app.New(sim, cfg)
	size := sim.Size()

	ebiten.SetWindowTitle(fmt.Sprintf("potts - q=%d N=%d", cfg.Potts.States, cfg.Potts.Size))
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+max(cfg.HUDWidth, 0), size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
