//go:build ebiten

package render

import (
	"image"
	"image/color"

	"orbitfx/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	backgroundColor = color.RGBA{R: 8, G: 10, B: 18, A: 255}
	spriteColor     = color.RGBA{R: 226, G: 232, B: 255, A: 255}
	ringColors      = [2]color.Color{
		color.RGBA{R: 120, G: 130, B: 160, A: 255},
		color.RGBA{R: 170, G: 180, B: 210, A: 255},
	}
	arcColor = color.RGBA{R: 150, G: 160, B: 190, A: 200}
)

const arcSegmentsPerDash = 24

// Painter draws scene records onto an ebiten image.
type Painter struct {
	sprite    *ebiten.Image
	intrinsic float64

	background color.Color
	dotColors  [2]color.Color
	dotRadius  float32
	arcColor   color.Color
	arcWidth   float32
}

// NewPainter returns a painter using the generated disc sprite.
func NewPainter() *Painter {
	return NewPainterWithSprite(SpriteRGBA(DefaultSpriteSize, spriteColor))
}

// NewPainterWithSprite returns a painter drawing figures with img.
func NewPainterWithSprite(img image.Image) *Painter {
	return &Painter{
		sprite:     ebiten.NewImageFromImage(img),
		intrinsic:  Intrinsic(img.Bounds()),
		background: backgroundColor,
		dotColors:  ringColors,
		dotRadius:  2,
		arcColor:   arcColor,
		arcWidth:   2,
	}
}

// Draw clears dst and paints the figures, then any dashed arcs and the ring
// dots on top.
func (p *Painter) Draw(dst *ebiten.Image, scene core.Scene) {
	dst.Fill(p.background)

	b := p.sprite.Bounds()
	for rec := range scene.Sprites() {
		half := HalfExtent(rec.Scale, p.intrinsic)
		if half <= 0 || rec.Opacity <= 0 {
			continue
		}
		k := half / p.intrinsic

		var op ebiten.DrawImageOptions
		op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
		op.GeoM.Scale(k, k)
		op.GeoM.Rotate(rec.Rotation)
		op.GeoM.Translate(rec.X, rec.Y)
		op.ColorScale.ScaleAlpha(float32(rec.Opacity))
		op.Filter = ebiten.FilterLinear
		dst.DrawImage(p.sprite, &op)
	}

	if provider, ok := scene.(core.ArcProvider); ok {
		for _, arc := range provider.Arcs() {
			for _, seg := range ArcSegments(arc, arcSegmentsPerDash) {
				vector.StrokeLine(dst, float32(seg[0]), float32(seg[1]), float32(seg[2]), float32(seg[3]), p.arcWidth, p.arcColor, false)
			}
		}
	}

	for rec := range scene.Dots() {
		col := p.dotColors[rec.Ring&1]
		vector.DrawFilledCircle(dst, float32(rec.X), float32(rec.Y), p.dotRadius, col, true)
	}
}
