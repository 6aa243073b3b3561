package render

import (
	"orbitfx/internal/core"
)

// ArcSegments approximates every dash of a with perDash straight segments,
// returned as x0, y0, x1, y1.
func ArcSegments(a core.Arc, perDash int) [][4]float64 {
	dashes := a.DashAngles()
	if len(dashes) == 0 || perDash <= 0 {
		return nil
	}
	out := make([][4]float64, 0, len(dashes)*perDash)
	for _, d := range dashes {
		step := (d[1] - d[0]) / float64(perDash)
		x0, y0 := core.OrbitPoint(a.X, a.Y, a.R, d[0])
		for i := 1; i <= perDash; i++ {
			x1, y1 := core.OrbitPoint(a.X, a.Y, a.R, d[0]+float64(i)*step)
			out = append(out, [4]float64{x0, y0, x1, y1})
			x0, y0 = x1, y1
		}
	}
	return out
}
