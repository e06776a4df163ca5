//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"simca/internal/app"
	"simca/internal/presets"
	"simca/pkg/automaton"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := presets.Lookup(cfg.Preset)
	if !ok {
		log.Fatalf("unknown preset %q, available: %v", cfg.Preset, presets.Names())
	}

	sim, err := automaton.New(cfg.Width, cfg.Height, factory())
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(sim, cfg.Scale, cfg.Seed)
	game.Reset(cfg.Seed)

	ebiten.SetWindowTitle("simca — " + cfg.Preset)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
