//go:build ebiten

package ui

import (
	"image/color"

	"orbitfx/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	ringGuideColor   = color.RGBA{R: 90, G: 130, B: 170, A: 120}
	figureGuideColor = color.RGBA{R: 255, G: 120, B: 40, A: 60}
	centerColor      = color.RGBA{R: 255, G: 120, B: 40, A: 160}
)

// Overlay draws optional debugging visuals on top of the scene.
type Overlay struct {
	scene      core.Scene
	showGuides bool
	showBounds bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(scene core.Scene) *Overlay {
	return &Overlay{scene: scene}
}

// SetScene points the overlay at a replacement scene.
func (o *Overlay) SetScene(scene core.Scene) { o.scene = scene }

// Update toggles orbit guides with 1 and sprite bounds with 2.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showGuides = !o.showGuides
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showBounds = !o.showBounds
	}
}

// Draw renders the enabled overlays onto screen.
func (o *Overlay) Draw(screen *ebiten.Image, intrinsic float64) {
	if o.scene == nil || o.scene.Size().Empty() {
		return
	}

	if o.showGuides {
		if provider, ok := o.scene.(core.GuideProvider); ok {
			for i, g := range provider.Guides() {
				col := figureGuideColor
				if i < 2 && isRingScene(o.scene) {
					col = ringGuideColor
				}
				vector.StrokeCircle(screen, float32(g.X), float32(g.Y), float32(g.R), 1, col, true)
				vector.DrawFilledCircle(screen, float32(g.X), float32(g.Y), 1.5, centerColor, true)
			}
		}
	}

	if o.showBounds {
		for rec := range o.scene.Sprites() {
			x, y, size := SpriteBounds(rec, intrinsic)
			if size == 0 {
				continue
			}
			vector.StrokeRect(screen, float32(x), float32(y), float32(size), float32(size), 1, figureGuideColor, false)
		}
	}
}

func isRingScene(scene core.Scene) bool {
	for range scene.Dots() {
		return true
	}
	return false
}
