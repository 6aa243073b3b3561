package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrbitPointIsPure(t *testing.T) {
	x1, y1 := OrbitPoint(10, 20, 5, 1.234)
	x2, y2 := OrbitPoint(10, 20, 5, 1.234)

	assert.Equal(t, math.Float64bits(x1), math.Float64bits(x2))
	assert.Equal(t, math.Float64bits(y1), math.Float64bits(y2))
}

func TestOrbitPointQuadrants(t *testing.T) {
	x, y := OrbitPoint(0, 0, 2, 0)
	assert.InDelta(t, 2, x, 1e-12)
	assert.InDelta(t, 0, y, 1e-12)

	x, y = OrbitPoint(0, 0, 2, math.Pi/2)
	assert.InDelta(t, 0, x, 1e-12)
	assert.InDelta(t, -2, y, 1e-12, "quarter turn moves up the screen")
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, 0.0, SanitizeDelta(-3))
	assert.Equal(t, 0.0, SanitizeDelta(math.NaN()))
	assert.Equal(t, 0.0, SanitizeDelta(math.Inf(1)))
	assert.Equal(t, 16.0, SanitizeDelta(16))
	assert.Equal(t, 0.0, SanitizeExtent(math.Inf(-1)))
	assert.Equal(t, 320.0, SanitizeExtent(320))
}

func TestArcDashAngles(t *testing.T) {
	arc := Arc{R: 10, Phase: 0.5, Dashes: 4, DashFrac: 0.5}
	dashes := arc.DashAngles()
	assert.Len(t, dashes, 4)
	for i, d := range dashes {
		start := 0.5 + float64(i)*math.Pi/2
		assert.InDelta(t, start, d[0], 1e-12)
		assert.InDelta(t, start+math.Pi/4, d[1], 1e-12)
	}

	full := Arc{R: 10, Dashes: 2, DashFrac: 3}.DashAngles()
	assert.InDelta(t, math.Pi, full[0][1]-full[0][0], 1e-12)

	assert.Nil(t, Arc{R: 10, DashFrac: 0.5}.DashAngles())
	assert.Nil(t, Arc{Dashes: 3, DashFrac: 0.5}.DashAngles())
	assert.Nil(t, Arc{R: 10, Dashes: 3}.DashAngles())
}
