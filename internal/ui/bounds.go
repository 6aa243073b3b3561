package ui

import (
	"orbitfx/internal/core"
	"orbitfx/internal/render"
)

// SpriteBounds returns the top-left corner and edge length of the square a
// sprite record covers when drawn with the given intrinsic half size. It
// rounds the same way the painter does.
func SpriteBounds(rec core.SpriteRecord, intrinsic float64) (x, y, size float64) {
	half := render.HalfExtent(rec.Scale, intrinsic)
	return rec.X - half, rec.Y - half, 2 * half
}
