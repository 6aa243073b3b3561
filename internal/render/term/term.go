// Package term draws scene records as shaded glyphs on a tcell screen.
package term

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"orbitfx/internal/core"
	"orbitfx/internal/render"
)

const (
	// CellW and CellH are the view units covered by one terminal cell.
	// Cells are roughly twice as tall as they are wide.
	CellW = 4
	CellH = 8

	dotGlyph = '•'
	arcGlyph = '·'

	// ArcMarker marks arc cells in the dot grid.
	ArcMarker = 3

	arcSegmentsPerDash = 64
)

var ramp = []rune(" .:-=+*#%@")

// Renderer rasterizes sprites into an intensity grid and dots into a marker
// grid, then paints both onto a screen.
type Renderer struct {
	shade *core.ByteGrid
	dots  *core.ByteGrid

	intrinsic  float64
	background tcell.Style
	dotStyles  [2]tcell.Style
	arcStyle   tcell.Style
}

// NewRenderer returns a renderer sized lazily on first use.
func NewRenderer() *Renderer {
	base := tcell.StyleDefault.Background(tcell.ColorBlack)
	return &Renderer{
		shade:      core.NewByteGrid(0, 0),
		dots:       core.NewByteGrid(0, 0),
		intrinsic:  render.DefaultSpriteSize / 2,
		background: base,
		dotStyles: [2]tcell.Style{
			base.Foreground(tcell.NewRGBColor(120, 130, 160)),
			base.Foreground(tcell.NewRGBColor(170, 180, 210)),
		},
		arcStyle: base.Foreground(tcell.NewRGBColor(150, 160, 190)),
	}
}

// ViewSize converts a terminal size in cells to view units.
func ViewSize(cols, rows int) (float64, float64) {
	return float64(max(cols, 0) * CellW), float64(max(rows, 0) * CellH)
}

// Shade returns the sprite intensity grid from the last Rasterize call.
func (r *Renderer) Shade() *core.ByteGrid { return r.shade }

// DotAt reports the marker at cell (x, y): 0 for none, ArcMarker for an arc
// dash, ring index plus one otherwise.
func (r *Renderer) DotAt(x, y int) uint8 { return r.dots.At(x, y) }

// Rasterize projects the scene onto a cols x rows cell grid.
func (r *Renderer) Rasterize(scene core.Scene, cols, rows int) {
	r.shade.Resize(cols, rows)
	r.dots.Resize(cols, rows)
	if cols <= 0 || rows <= 0 {
		return
	}

	for rec := range scene.Sprites() {
		r.plotSprite(rec)
	}
	for rec := range scene.Dots() {
		x := int(math.Floor(rec.X / CellW))
		y := int(math.Floor(rec.Y / CellH))
		r.dots.Plot(x, y, uint8(rec.Ring+1))
	}
	if provider, ok := scene.(core.ArcProvider); ok {
		for _, arc := range provider.Arcs() {
			r.plotArc(arc)
		}
	}
}

// plotArc marks the cells under each dash that no ring dot occupies.
func (r *Renderer) plotArc(arc core.Arc) {
	for _, seg := range render.ArcSegments(arc, arcSegmentsPerDash) {
		for _, p := range [][2]float64{{seg[0], seg[1]}, {seg[2], seg[3]}} {
			x := int(math.Floor(p[0] / CellW))
			y := int(math.Floor(p[1] / CellH))
			if r.dots.At(x, y) == 0 {
				r.dots.Plot(x, y, ArcMarker)
			}
		}
	}
}

func (r *Renderer) plotSprite(rec core.SpriteRecord) {
	if rec.Opacity <= 0 {
		return
	}
	half := render.HalfExtent(rec.Scale, r.intrinsic)
	cx, cy := rec.X/CellW, rec.Y/CellH
	rx, ry := half/CellW, half/CellH
	peak := rec.Opacity * 255

	if rx < 0.5 || ry < 0.5 {
		r.shade.Plot(int(math.Floor(cx)), int(math.Floor(cy)), uint8(peak))
		return
	}

	x0, x1 := int(math.Floor(cx-rx)), int(math.Ceil(cx+rx))
	y0, y1 := int(math.Floor(cy-ry)), int(math.Ceil(cy+ry))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			d := math.Hypot((float64(x)+0.5-cx)/rx, (float64(y)+0.5-cy)/ry)
			if d > 1 {
				continue
			}
			r.shade.Plot(x, y, uint8(peak*(1-0.6*d)))
		}
	}
}

// Draw rasterizes the scene at the screen size into the screen buffer. The
// caller decides when to Show.
func (r *Renderer) Draw(screen tcell.Screen, scene core.Scene) {
	cols, rows := screen.Size()
	r.Rasterize(scene, cols, rows)

	screen.SetStyle(r.background)
	screen.Clear()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			switch marker := r.dots.At(x, y); {
			case marker == ArcMarker:
				screen.SetContent(x, y, arcGlyph, nil, r.arcStyle)
				continue
			case marker > 0:
				screen.SetContent(x, y, dotGlyph, nil, r.dotStyles[(marker-1)&1])
				continue
			}
			v := r.shade.At(x, y)
			if v == 0 {
				continue
			}
			screen.SetContent(x, y, Glyph(v), nil, r.background.Foreground(tcell.NewRGBColor(int32(v), int32(v), int32(v))))
		}
	}
}

// Glyph maps an intensity to a shading rune.
func Glyph(v uint8) rune {
	idx := int(v) * len(ramp) / 256
	return ramp[idx]
}
