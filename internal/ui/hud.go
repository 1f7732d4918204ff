//go:build ebiten

package ui

import (
	"image/color"

	"mad-maze/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 6
	lineHeight   = 15
	charWidth    = 7
)

// HUD draws the sim's parameter snapshot in a translucent box in the top-left
// corner. H toggles it.
type HUD struct {
	sim     core.Sim
	visible bool
	lines   []string
	title   string

	pixel *ebiten.Image
}

// NewHUD constructs a visible HUD for the provided sim.
func NewHUD(sim core.Sim) *HUD {
	h := &HUD{sim: sim, visible: true, title: sim.Name()}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// Update refreshes the cached snapshot and handles the toggle key.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.visible = !h.visible
	}
	if !h.visible {
		return
	}
	provider, ok := h.sim.(core.ParameterProvider)
	if !ok {
		h.lines = nil
		return
	}
	h.lines = provider.Parameters().Lines()
}

// Draw renders the panel onto screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || !h.visible {
		return
	}
	widest := len(h.title)
	for _, line := range h.lines {
		if len(line) > widest {
			widest = len(line)
		}
	}
	w := widest*charWidth + 2*panelPadding
	ht := (len(h.lines)+1)*lineHeight + 2*panelPadding

	bg := color.RGBA{R: 20, G: 22, B: 28, A: 200}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(ht))
	op.ColorM.Scale(float64(bg.R)/255.0, float64(bg.G)/255.0, float64(bg.B)/255.0, float64(bg.A)/255.0)
	screen.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	y := panelPadding + lineHeight - 3
	text.Draw(screen, h.title, face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	for _, line := range h.lines {
		y += lineHeight
		text.Draw(screen, line, face, panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	}
}
