package render

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orbitfx/internal/core"
)

func TestArcSegmentsFollowDashes(t *testing.T) {
	arc := core.Arc{X: 50, Y: 40, R: 20, Dashes: 3, DashFrac: 0.5}
	segs := ArcSegments(arc, 4)
	require.Len(t, segs, 12)

	for _, s := range segs {
		assert.InDelta(t, 20, math.Hypot(s[0]-50, s[1]-40), 1e-9)
		assert.InDelta(t, 20, math.Hypot(s[2]-50, s[3]-40), 1e-9)
	}

	// Consecutive segments of one dash join up.
	assert.Equal(t, segs[0][2], segs[1][0])
	assert.Equal(t, segs[0][3], segs[1][1])

	x, y := core.OrbitPoint(50, 40, 20, 0)
	assert.InDelta(t, x, segs[0][0], 1e-9)
	assert.InDelta(t, y, segs[0][1], 1e-9)

	assert.Nil(t, ArcSegments(arc, 0))
	assert.Nil(t, ArcSegments(core.Arc{}, 4))
}
