package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpriteRGBADisc(t *testing.T) {
	img := SpriteRGBA(32, color.White)
	assert.Equal(t, image.Rect(0, 0, 32, 32), img.Bounds())

	center := img.RGBAAt(16, 16)
	assert.Equal(t, uint8(255), center.A)
	assert.Equal(t, uint8(255), center.R)

	corner := img.RGBAAt(0, 0)
	assert.Equal(t, color.RGBA{}, corner)

	edge := img.RGBAAt(31, 16)
	assert.Less(t, edge.A, uint8(255))
	assert.LessOrEqual(t, edge.R, edge.A, "pixels stay premultiplied")
}

func TestSpriteRGBADefaultSize(t *testing.T) {
	img := SpriteRGBA(0, color.White)
	assert.Equal(t, DefaultSpriteSize, img.Bounds().Dx())
}

func TestHalfExtent(t *testing.T) {
	assert.Equal(t, 16.0, HalfExtent(0.5, 32))
	assert.Equal(t, 3.0, HalfExtent(0.1, 32))
	assert.Equal(t, 0.0, HalfExtent(0, 32))
	assert.Equal(t, 0.0, HalfExtent(1, 0))
	assert.Equal(t, 24.0, Intrinsic(image.Rect(0, 0, 48, 20)))
}
