//go:build ebiten

package main

import (
	"errors"
	"log"
	"strings"

	"fungi-ca/internal/app"
	"fungi-ca/internal/core"
	_ "fungi-ca/internal/sims/fairyring"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/integrii/flaggy"
	"github.com/juju/loggo"
)

func main() {
	cfg := app.NewConfig()
	flaggy.SetName("ca")
	flaggy.SetDescription("Interactive viewer for " + strings.Join(core.Names(), ", "))
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	cfg.Bind(flaggy.DefaultParser)
	flaggy.Parse()

	if err := loggo.ConfigureLoggers(cfg.Log); err != nil {
		flaggy.ShowHelpAndExit("bad --log value: " + err.Error())
	}
	factory, ok := core.Lookup(cfg.Sim)
	if !ok {
		flaggy.ShowHelpAndExit("unknown sim " + cfg.Sim)
	}
	opts, err := cfg.Options()
	if err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}
	sim, err := factory(opts)
	if err != nil {
		log.Fatalf("cannot create %s: %v", cfg.Sim, err)
	}

	game := app.New(sim, cfg.Scale, cfg.TPS, cfg.HUDWidth, cfg.Seed)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("fungi-ca: " + sim.Name())
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
