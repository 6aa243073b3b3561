//go:build ebiten

package ui

import (
	"image/color"

	"orbitfx/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 8
	lineHeight   = 14
)

var (
	panelBackground = color.RGBA{R: 12, G: 14, B: 24, A: 200}
	titleColor      = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	valueColor      = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	statusColor     = color.RGBA{R: 160, G: 160, B: 170, A: 255}
)

// HUD renders the parameter panel and the status line over the scene.
type HUD struct {
	scene core.Scene
	face  text.Face
	show  bool
	title string
	lines []string
}

// NewHUD constructs a hidden HUD for scene.
func NewHUD(scene core.Scene) *HUD {
	return &HUD{scene: scene, face: text.NewGoXFace(basicfont.Face7x13)}
}

// SetScene points the HUD at a replacement scene.
func (h *HUD) SetScene(scene core.Scene) { h.scene = scene }

// Update toggles the panel with H and refreshes the cached parameter lines.
func (h *HUD) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.show = !h.show
	}
	if !h.show || h.scene == nil {
		return
	}
	h.title = Title(h.scene.Name())
	h.lines = nil
	if provider, ok := h.scene.(core.ParameterProvider); ok {
		h.lines = ParameterLines(provider.Parameters())
	}
	if len(h.lines) == 0 {
		h.lines = []string{"No parameters"}
	}
}

// Draw paints the panel when visible and always paints status at the bottom.
func (h *HUD) Draw(screen *ebiten.Image, status string) {
	if h.show {
		height := float32(panelPadding*2 + lineHeight*(len(h.lines)+1))
		width := float32(screen.Bounds().Dx())
		vector.DrawFilledRect(screen, 0, 0, width, height, panelBackground, false)
		h.drawLine(screen, h.title, panelPadding, panelPadding, titleColor)
		for i, line := range h.lines {
			h.drawLine(screen, line, panelPadding, panelPadding+float64(lineHeight*(i+1)), valueColor)
		}
	}
	if status != "" {
		y := float64(screen.Bounds().Dy() - lineHeight - panelPadding/2)
		h.drawLine(screen, status, panelPadding, y, statusColor)
	}
}

func (h *HUD) drawLine(dst *ebiten.Image, s string, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(dst, s, h.face, op)
}
