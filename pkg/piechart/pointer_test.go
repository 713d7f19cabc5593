package piechart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointerDragLifecycle(t *testing.T) {
	c, rec := newActivityChart(t, false)
	changes := 0
	c.listener = ChangeFunc[string](func(*Chart[string]) { changes++ })

	c.PointerDown(at(0.05, 50))
	require.True(t, c.Dragging())
	assert.Equal(t, 2, c.Hovered())
	assert.Equal(t, 2, c.Session().Index())

	c.PointerMove(at(0.55, 70))
	assert.InDelta(t, 0.5, c.Segment(2).Angle, 1e-9)
	assert.Equal(t, 1, changes)

	c.PointerUp()
	assert.False(t, c.Dragging())
	assert.Nil(t, c.Session())
	assert.Equal(t, 2, changes)
	assert.InDelta(t, 0.5, c.Segment(2).Angle, 1e-9)

	hovered := 0
	for _, n := range rec.nodes {
		if n.hovered {
			hovered++
		}
	}
	assert.Equal(t, 1, hovered)
}

func TestPointerDownMissStartsNothing(t *testing.T) {
	c, _ := newActivityChart(t, false)

	c.PointerDown(at(0.5, 50))
	assert.False(t, c.Dragging())

	c.PointerMove(at(1.5, 50))
	assert.Equal(t, []float64{-2, -1, 0, 1, 2}, angles(c))

	c.PointerUp()
	assert.False(t, c.Dragging())
}

func TestPointerDownIgnoredWhileDragging(t *testing.T) {
	c, _ := newActivityChart(t, false)

	c.PointerDown(at(0.05, 50))
	c.PointerDown(at(1, 50))

	require.True(t, c.Dragging())
	assert.Equal(t, 2, c.Session().Index())
}

func TestPointerHover(t *testing.T) {
	c, rec := newActivityChart(t, false)
	frames := rec.frames

	c.PointerMove(at(1.02, 40))
	assert.Equal(t, 3, c.Hovered())
	assert.Equal(t, frames+1, rec.frames)

	c.PointerMove(at(0.98, 40))
	assert.Equal(t, frames+1, rec.frames, "same hover target should not redraw")

	c.PointerMove(at(0.5, 40))
	assert.Equal(t, -1, c.Hovered())
	assert.Equal(t, frames+2, rec.frames)
}

func TestPointerUpWithoutDragIsNoop(t *testing.T) {
	c, rec := newActivityChart(t, false)
	frames := rec.frames

	c.PointerUp()

	assert.Equal(t, frames, rec.frames)
}
