package render

import (
	"image"
	"image/color"
	"math"
)

// DefaultSpriteSize is the edge length of the generated figure sprite.
const DefaultSpriteSize = 64

// fillDiscRGBA paints a soft-edged disc filling a size*size premultiplied
// RGBA buffer. Pixels outside the disc are transparent.
func fillDiscRGBA(buf []byte, size int, c color.Color) {
	r, g, b, a := c.RGBA()
	half := float64(size) / 2
	// feather over roughly two pixels
	edge := 2 / half
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := (float64(x) + 0.5 - half) / half
			dy := (float64(y) + 0.5 - half) / half
			d := math.Hypot(dx, dy)
			cov := (1 - d) / edge
			if cov > 1 {
				cov = 1
			}
			if cov < 0 {
				cov = 0
			}
			base := (y*size + x) * 4
			buf[base+0] = uint8(float64(r>>8)*cov + 0.5)
			buf[base+1] = uint8(float64(g>>8)*cov + 0.5)
			buf[base+2] = uint8(float64(b>>8)*cov + 0.5)
			buf[base+3] = uint8(float64(a>>8)*cov + 0.5)
		}
	}
}

// SpriteRGBA builds the figure sprite: a disc of color c on a transparent
// size*size canvas.
func SpriteRGBA(size int, c color.Color) *image.RGBA {
	if size <= 0 {
		size = DefaultSpriteSize
	}
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	fillDiscRGBA(img.Pix, size, c)
	return img
}

// HalfExtent returns half the drawn edge length of a sprite whose intrinsic
// half size is intrinsic, rounded to whole pixels.
func HalfExtent(scale, intrinsic float64) float64 {
	if scale <= 0 || intrinsic <= 0 {
		return 0
	}
	return math.Round(scale * intrinsic)
}

// Intrinsic returns the half size used for draw bounds: half of the larger
// image dimension.
func Intrinsic(b image.Rectangle) float64 {
	return float64(max(b.Dx(), b.Dy())) / 2
}
