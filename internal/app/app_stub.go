//go:build !ebiten

package app

import (
	"fmt"
	"image/color"

	"mad-maze/internal/core"

	"go.uber.org/zap"
)

// MenuSize is the side length of the bare menu window.
const MenuSize = 500

// Options mirrors the GUI build so callers compile without the tag.
type Options struct {
	Scale      int
	Seed       int64
	Rate       int
	Background color.Color
	Logger     *zap.Logger
}

// Game is a placeholder that satisfies the API expected by the GUI build.
type Game struct{}

// New panics to indicate that the ebiten build tag is required for GUI support.
func New(core.Sim, Options) *Game {
	panic("app.New requires building with the 'ebiten' tag")
}

// NewMenu panics to indicate that the ebiten build tag is required for GUI support.
func NewMenu(Options) *Game {
	panic("app.NewMenu requires building with the 'ebiten' tag")
}

// Reset is a no-op placeholder.
func (g *Game) Reset(int64) {}

// Update always reports that the GUI build tag is missing.
func (g *Game) Update() error {
	return fmt.Errorf("app.Game.Update requires building with the 'ebiten' tag")
}

// Draw is a no-op placeholder to satisfy the interface shape.
func (g *Game) Draw(any) {}

// Layout returns zeros in the headless build.
func (g *Game) Layout(int, int) (int, int) { return 0, 0 }
