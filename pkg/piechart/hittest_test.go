package piechart

import (
	"testing"

	"github.com/philipparndt/dragpie/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// at returns the canvas point at angle and distance r from the centre of a
// 200x200 chart.
func at(angle, r float64) (float64, float64) {
	p := geometry.NewVector2(100, 100).Add(geometry.FromPolar(angle, r))
	return p.X, p.Y
}

func TestFindTargetNearestBoundary(t *testing.T) {
	c, _ := newActivityChart(t, false)

	s := c.FindTarget(at(0.05, 50))
	require.NotNil(t, s)
	assert.Equal(t, 2, s.Index())
	assert.InDelta(t, 0.05, s.AngleOffset(), 1e-9)
	assert.Equal(t, geometry.NewVector2(100, 100), s.center)
	assert.Equal(t, 0.0, s.Distance())
	for i := 0; i < 5; i++ {
		assert.Equal(t, float64(i-2), s.StartAngle(i))
		assert.False(t, s.StartCollapsed(i))
	}

	s = c.FindTarget(at(-1.04, 10))
	require.NotNil(t, s)
	assert.Equal(t, 1, s.Index())
	assert.InDelta(t, -0.04, s.AngleOffset(), 1e-9)
}

func TestFindTargetMiss(t *testing.T) {
	c, _ := newActivityChart(t, false)

	assert.Nil(t, c.FindTarget(at(0.5, 50)))
	assert.Nil(t, c.FindTarget(at(-1.5, 80)))
}

func TestFindTargetSkipsCollapsed(t *testing.T) {
	c, _ := newChart(t, false, []Segment[string]{
		{Angle: -1}, {Angle: 0, Collapsed: true}, {Angle: 1},
	})

	assert.Nil(t, c.FindTarget(at(0.02, 50)))
}

func TestFindTargetAcrossSeam(t *testing.T) {
	c, _ := newChart(t, false, []Segment[string]{
		{Angle: 3.1}, {Angle: 0},
	})

	s := c.FindTarget(at(-3.1, 50))
	require.NotNil(t, s)
	assert.Equal(t, 0, s.Index())
	assert.InDelta(t, geometry.SignedAngleBetween(-3.1, 3.1), s.AngleOffset(), 1e-9)
}
