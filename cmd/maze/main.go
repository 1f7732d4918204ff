//go:build ebiten

package main

import (
	"errors"
	"flag"
	"strings"

	"mad-maze/internal/app"
	"mad-maze/internal/core"
	"mad-maze/internal/render"
	_ "mad-maze/internal/sims/huntkill"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

func main() {
	log := app.NewLogger(false)
	defer func() { _ = log.Sync() }()

	cfg := app.NewConfig()
	env, err := app.LoadEnv(".env")
	if err != nil {
		log.Fatal("loading environment", zap.Error(err))
	}
	if err := cfg.ApplyEnv(env); err != nil {
		log.Fatal("applying environment", zap.Error(err))
	}
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid configuration", zap.Error(err))
	}
	background, _ := render.ParseColor(cfg.Background)
	opts := app.Options{
		Scale:      cfg.Scale,
		Seed:       cfg.Seed,
		Rate:       cfg.Rate,
		Background: background,
		Logger:     log,
	}
	ebiten.SetTPS(cfg.TPS)

	if cfg.Menu {
		ebiten.SetWindowTitle("Menu")
		ebiten.SetWindowSize(app.MenuSize, app.MenuSize)
		run(log, app.NewMenu(opts))
		return
	}

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatal("unknown sim", zap.String("sim", cfg.Sim), zap.String("available", strings.Join(core.SimNames(), ", ")))
	}

	sim := factory(cfg.SimOptions())
	game := app.New(sim, opts)
	game.Reset(cfg.Seed)
	size := sim.Size()

	ebiten.SetWindowTitle("mad-maze: " + sim.Name())
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)
	run(log, game)
}

func run(log *zap.Logger, game ebiten.Game) {
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal("window closed with error", zap.Error(err))
	}
}
