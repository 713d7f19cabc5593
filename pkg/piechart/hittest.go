package piechart

import (
	"math"

	"github.com/philipparndt/dragpie/pkg/geometry"
)

// DragSession is the frozen reference frame of one drag gesture.
type DragSession struct {
	index          int
	angleOffset    float64
	center         geometry.Vector2
	startAngles    []float64
	startCollapsed []bool
	distance       float64
}

// Index returns the dragged segment.
func (s *DragSession) Index() int { return s.index }

// AngleOffset returns the pointer's offset from the boundary at grab time.
func (s *DragSession) AngleOffset() float64 { return s.angleOffset }

// StartAngle returns segment i's angle when the session started.
func (s *DragSession) StartAngle(i int) float64 { return s.startAngles[i] }

// StartCollapsed returns segment i's collapsed flag when the session started.
func (s *DragSession) StartCollapsed(i int) bool { return s.startCollapsed[i] }

// Distance returns the signed cumulative rotation of the dragged boundary.
func (s *DragSession) Distance() float64 { return s.distance }

// newSession snapshots every segment for a drag of segment index.
func (c *Chart[P]) newSession(index int, offset float64, center geometry.Vector2) *DragSession {
	s := &DragSession{
		index:          index,
		angleOffset:    offset,
		center:         center,
		startAngles:    make([]float64, len(c.segments)),
		startCollapsed: make([]bool, len(c.segments)),
	}
	for i, seg := range c.segments {
		s.startAngles[i] = seg.Angle
		s.startCollapsed[i] = seg.Collapsed
	}
	return s
}

// FindTarget returns a drag session for the visible boundary nearest to the
// canvas point (x, y), or nil if none lies within HitTolerance.
func (c *Chart[P]) FindTarget(x, y float64) *DragSession {
	g := c.Geometry()
	center := g.Center()
	grabbed := geometry.NewVector2(x, y).Sub(center).Angle()

	closest := -1
	closestDistance := math.Inf(1)
	for i, s := range c.segments {
		if s.Collapsed {
			continue
		}
		d := math.Abs(geometry.SignedAngleBetween(grabbed, s.Angle))
		if d < closestDistance {
			closest = i
			closestDistance = d
		}
	}

	if closest < 0 || closestDistance >= HitTolerance {
		return nil
	}

	offset := geometry.SignedAngleBetween(grabbed, c.segments[closest].Angle)
	return c.newSession(closest, offset, center)
}
