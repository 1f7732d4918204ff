//go:build ebiten

package app

import (
	"image/color"
	"time"

	"mad-maze/internal/core"
	"mad-maze/internal/render"
	"mad-maze/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
)

// MenuSize is the side length of the bare menu window.
const MenuSize = 500

type palettedSim interface {
	Palette() []color.RGBA
}

type finishingSim interface {
	Done() bool
	Err() error
}

// Options tunes a Game.
type Options struct {
	Scale      int
	Seed       int64
	Rate       int
	Background color.Color
	Logger     *zap.Logger
}

// Game adapts a core sim to the ebiten.Game interface. A Game without a sim
// only paints the background.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	stepper *core.FixedStep
	log     *zap.Logger

	palette    []color.RGBA
	background color.Color

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
	reported bool
}

// New constructs a Game for the provided sim.
func New(sim core.Sim, opts Options) *Game {
	g := newGame(opts)
	g.sim = sim
	g.painter = render.NewGridPainter(sim.Size().W, sim.Size().H)
	g.hud = ui.NewHUD(sim)
	g.palette = []color.RGBA{render.Black, render.White}
	if p, ok := sim.(palettedSim); ok {
		g.palette = p.Palette()
	}
	return g
}

// NewMenu constructs the bare background-only window.
func NewMenu(opts Options) *Game {
	return newGame(opts)
}

func newGame(opts Options) *Game {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.Background == nil {
		opts.Background = render.Black
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Game{
		stepper:    core.NewFixedStep(opts.Rate),
		log:        opts.Logger,
		background: opts.Background,
		scale:      opts.Scale,
		seed:       opts.Seed,
	}
}

// Reset reinitializes the sim state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.tickOnce = false
	g.reported = false
	if g.sim == nil {
		return
	}
	g.sim.Reset(seed)
	g.log.Info("maze reset", zap.String("sim", g.sim.Name()), zap.Int64("seed", seed))
}

// Update handles per-frame logic and advances the sim.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if g.sim == nil {
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	steps := g.stepper.Due()
	if g.paused {
		steps = 0
	}
	if g.tickOnce {
		steps = 1
		g.tickOnce = false
	}
	for i := 0; i < steps; i++ {
		g.sim.Step()
	}
	g.report()

	g.hud.Update()
	return nil
}

// report logs completion or failure once per reset.
func (g *Game) report() {
	fs, ok := g.sim.(finishingSim)
	if !ok || g.reported {
		return
	}
	if err := fs.Err(); err != nil {
		g.reported = true
		g.log.Error("maze generation failed", zap.Int64("seed", g.seed), zap.Error(err))
		return
	}
	if fs.Done() {
		g.reported = true
		g.log.Info("maze complete", zap.String("sim", g.sim.Name()), zap.Int64("seed", g.seed))
	}
}

// Draw paints the background and the current sim raster.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)
	if g.sim == nil {
		return
	}
	g.painter.Blit(screen, g.sim.Cells(), g.palette, g.scale)
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.sim == nil {
		return MenuSize, MenuSize
	}
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}
