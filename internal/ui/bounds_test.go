package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"orbitfx/internal/core"
	"orbitfx/internal/render"
)

func TestSpriteBoundsMatchPainterRounding(t *testing.T) {
	rec := core.SpriteRecord{X: 100, Y: 50, Scale: 0.37}
	x, y, size := SpriteBounds(rec, 32)

	half := render.HalfExtent(rec.Scale, 32)
	assert.Equal(t, 12.0, half)
	assert.Equal(t, 88.0, x)
	assert.Equal(t, 38.0, y)
	assert.Equal(t, 24.0, size)
}

func TestSpriteBoundsEmptyForZeroScale(t *testing.T) {
	x, y, size := SpriteBounds(core.SpriteRecord{X: 10, Y: 20}, 32)
	assert.Equal(t, 10.0, x)
	assert.Equal(t, 20.0, y)
	assert.Zero(t, size)
}
