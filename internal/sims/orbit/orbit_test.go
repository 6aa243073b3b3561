package orbit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orbitfx/internal/core"
)

func collect(s core.Scene) ([]core.SpriteRecord, []core.DotRecord) {
	var sprites []core.SpriteRecord
	for rec := range s.Sprites() {
		sprites = append(sprites, rec)
	}
	var dots []core.DotRecord
	for rec := range s.Dots() {
		dots = append(dots, rec)
	}
	return sprites, dots
}

func TestSceneDeterministicTrajectories(t *testing.T) {
	opts := map[string]string{"w": "360", "h": "640", "seed": "1500", "lifetime_min": "20", "lifetime_max": "40"}
	a := NewWithConfig(FromMap(opts))
	b := NewWithConfig(FromMap(opts))

	for i := 0; i < 300; i++ {
		a.Advance(16.6)
		b.Advance(16.6)
		sa, da := collect(a)
		sb, db := collect(b)
		require.Equal(t, sa, sb, "tick %d", i)
		require.Equal(t, da, db, "tick %d", i)
	}
}

func TestSceneComposesUnits(t *testing.T) {
	s := New(300, 500)
	sprites, dots := collect(s)
	assert.Len(t, sprites, s.Field().Config().Params.Count)
	assert.Len(t, dots, 2*s.Rings().Config().Params.DotsPerRing)

	s.Resize(600, 200)
	assert.Equal(t, core.Size{W: 600, H: 200}, s.Size())
	assert.Equal(t, core.Size{W: 600, H: 200}, s.Rings().Size())
}

func TestFromMapSharesViewSize(t *testing.T) {
	cfg := FromMap(map[string]string{"w": "100", "h": "50", "dots_per_ring": "8", "count": "2"})
	assert.Equal(t, 100.0, cfg.Rings.Width)
	assert.Equal(t, 50.0, cfg.Rings.Height)
	assert.Equal(t, 8, cfg.Rings.Params.DotsPerRing)
	assert.Equal(t, 2, cfg.Figures.Params.Count)
}

func TestParametersCoverBothUnits(t *testing.T) {
	s := New(300, 500)
	params := s.Parameters()

	_, ok := params.Lookup("count")
	assert.True(t, ok)
	_, ok = params.Lookup("dots_per_ring")
	assert.True(t, ok)

	back := FromMap(params.Map())
	assert.Equal(t, s.Field().Config(), back.Figures)
	assert.Equal(t, s.Rings().Config(), back.Rings)
}

func TestRegistry(t *testing.T) {
	factory, ok := core.Scenes()["orbit"]
	require.True(t, ok)
	scene := factory(nil)
	assert.Equal(t, "orbit", scene.Name())
	assert.Contains(t, core.SceneNames(), "orbit")
}

func TestGuidesListRingsFirst(t *testing.T) {
	s := New(300, 500)
	var scene core.Scene = s
	provider, ok := scene.(core.GuideProvider)
	require.True(t, ok)

	guides := provider.Guides()
	require.Len(t, guides, 2+s.Field().Len())
	cx, cy := s.Rings().Center()
	assert.Equal(t, cx, guides[0].X)
	assert.Equal(t, cy, guides[0].Y)
	assert.Less(t, guides[0].R, guides[1].R)
}

func TestArcSurroundsRings(t *testing.T) {
	s := New(300, 500)
	var scene core.Scene = s
	provider, ok := scene.(core.ArcProvider)
	require.True(t, ok)

	arcs := provider.Arcs()
	require.Len(t, arcs, 1)
	guides := s.Guides()
	assert.Equal(t, guides[1].X, arcs[0].X)
	assert.Greater(t, arcs[0].R, guides[1].R)

	s.Advance(16)
	assert.Negative(t, provider.Arcs()[0].Phase, "arc turns with the rings")
}
