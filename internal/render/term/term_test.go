package term

import (
	"iter"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orbitfx/internal/core"
)

type fakeScene struct {
	size    core.Size
	sprites []core.SpriteRecord
	dots    []core.DotRecord
}

func (s *fakeScene) Name() string        { return "fake" }
func (s *fakeScene) Size() core.Size     { return s.size }
func (s *fakeScene) Resize(w, h float64) { s.size = core.Size{W: w, H: h} }
func (s *fakeScene) Reset(int64)         {}
func (s *fakeScene) Advance(float64)     {}
func (s *fakeScene) Sprites() iter.Seq[core.SpriteRecord] {
	return func(yield func(core.SpriteRecord) bool) {
		for _, rec := range s.sprites {
			if !yield(rec) {
				return
			}
		}
	}
}
func (s *fakeScene) Dots() iter.Seq[core.DotRecord] {
	return func(yield func(core.DotRecord) bool) {
		for _, rec := range s.dots {
			if !yield(rec) {
				return
			}
		}
	}
}

func TestViewSize(t *testing.T) {
	w, h := ViewSize(80, 24)
	assert.Equal(t, 320.0, w)
	assert.Equal(t, 192.0, h)

	w, h = ViewSize(-1, 0)
	assert.Equal(t, 0.0, w)
	assert.Equal(t, 0.0, h)
}

func TestGlyphRamp(t *testing.T) {
	assert.Equal(t, ' ', Glyph(0))
	assert.Equal(t, '@', Glyph(255))
	assert.Equal(t, '+', Glyph(128))
}

func TestRasterizeSpriteAndDots(t *testing.T) {
	scene := &fakeScene{
		sprites: []core.SpriteRecord{{X: 82, Y: 84, Opacity: 1, Scale: 0.5}},
		dots: []core.DotRecord{
			{X: 10, Y: 20, Radius: 30, Ring: 0},
			{X: 150, Y: 150, Radius: 40, Ring: 1},
			{X: -5, Y: 20, Ring: 1},
		},
	}
	r := NewRenderer()
	r.Rasterize(scene, 40, 20)

	shade := r.Shade()
	require.Equal(t, 40, shade.W)
	require.Equal(t, 20, shade.H)

	assert.Greater(t, shade.At(20, 10), uint8(230), "sprite center is brightest")
	assert.Equal(t, uint8(0), shade.At(0, 0))
	assert.Equal(t, uint8(0), shade.At(39, 19))
	assert.Positive(t, shade.At(17, 10), "sprite covers neighbouring cells")

	assert.Equal(t, uint8(1), r.DotAt(2, 2))
	assert.Equal(t, uint8(2), r.DotAt(37, 18))
	assert.Equal(t, uint8(0), r.DotAt(0, 2), "off-screen dots are clipped")
}

func TestRasterizeSkipsInvisible(t *testing.T) {
	scene := &fakeScene{sprites: []core.SpriteRecord{{X: 40, Y: 40, Opacity: 0, Scale: 0.8}}}
	r := NewRenderer()
	r.Rasterize(scene, 20, 10)
	for _, v := range r.Shade().Cells() {
		require.Equal(t, uint8(0), v)
	}

	r.Rasterize(scene, 0, 0)
	assert.Empty(t, r.Shade().Cells())
}

func TestDrawOnSimulationScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(40, 20)

	scene := &fakeScene{
		sprites: []core.SpriteRecord{{X: 82, Y: 84, Opacity: 1, Scale: 0.5}},
		dots:    []core.DotRecord{{X: 10, Y: 20, Ring: 0}},
	}
	NewRenderer().Draw(screen, scene)

	mainc, _, _, _ := screen.GetContent(20, 10)
	assert.Equal(t, '@', mainc)
	mainc, _, _, _ = screen.GetContent(2, 2)
	assert.Equal(t, dotGlyph, mainc)
	mainc, _, _, _ = screen.GetContent(0, 19)
	assert.Equal(t, ' ', mainc)
}

type arcScene struct {
	fakeScene
	arcs []core.Arc
}

func (s *arcScene) Arcs() []core.Arc { return s.arcs }

func TestRasterizeArcDashes(t *testing.T) {
	scene := &arcScene{
		fakeScene: fakeScene{dots: []core.DotRecord{{X: 120, Y: 80, Ring: 0}}},
		arcs:      []core.Arc{{X: 80, Y: 80, R: 40, Dashes: 1, DashFrac: 0.25}},
	}
	r := NewRenderer()
	r.Rasterize(scene, 40, 20)

	assert.Equal(t, uint8(ArcMarker), r.DotAt(27, 6), "dash passes through the first quadrant")
	assert.Equal(t, uint8(ArcMarker), r.DotAt(20, 5), "dash ends at a quarter turn")
	assert.Equal(t, uint8(0), r.DotAt(10, 10), "gap leaves the far side empty")
	assert.Equal(t, uint8(1), r.DotAt(30, 10), "ring dots stay on top of the arc")

	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(40, 20)
	r.Draw(screen, scene)

	mainc, _, _, _ := screen.GetContent(27, 6)
	assert.Equal(t, arcGlyph, mainc)
}
