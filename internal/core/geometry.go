package core

import "math"

// OrbitPoint returns the point at angle theta on the circle of radius r
// centered at (cx, cy). The y axis points down, so positive theta runs
// counter-clockwise on screen.
func OrbitPoint(cx, cy, r, theta float64) (x, y float64) {
	return cx + r*math.Cos(theta), cy - r*math.Sin(theta)
}

// SanitizeDelta maps negative, NaN and infinite frame deltas to zero.
func SanitizeDelta(ms float64) float64 {
	if math.IsNaN(ms) || math.IsInf(ms, 0) || ms < 0 {
		return 0
	}
	return ms
}

// SanitizeExtent maps negative, NaN and infinite view extents to zero.
func SanitizeExtent(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
