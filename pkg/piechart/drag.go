package piechart

import (
	"math"

	"github.com/philipparndt/dragpie/pkg/geometry"
)

// mod is the always-non-negative remainder.
func mod(n, m int) int {
	return ((n % m) + m) % m
}

// drag moves the session's segment to newAngle and reflows every other segment
// relative to the session snapshot. It is a no-op without an active session.
func (c *Chart[P]) drag(newAngle float64) {
	s := c.session
	if s == nil {
		return
	}

	start := s.startAngles[s.index]
	distance := geometry.SignedAngleBetween(newAngle, start)
	previous := s.distance

	direction := -1
	if previous > 0 {
		direction = 1
	}

	// A jump of more than half a turn against the previous sign means the pointer
	// crossed the seam behind the start angle, not that the drag reversed.
	sameDirection := (previous > 0) == (distance > 0)
	if math.Abs(previous-distance) > math.Pi && !sameDirection {
		distance = (geometry.Tau - math.Abs(distance)) * float64(direction)
	} else if distance > 0 {
		direction = 1
	} else {
		direction = -1
	}
	s.distance = distance

	dragged := &c.segments[s.index]
	dragged.Angle = geometry.NormalizeAngle(start + distance)
	dragged.Collapsed = s.startCollapsed[s.index]

	if c.collapsing {
		c.reflowCollapsing(s, distance, direction)
	} else {
		c.reflowShifting(s, distance, direction)
	}
}

// gapFromDragStart returns how far segment idx started from the dragged segment,
// measured in the rotation direction, so a neighbour behind us counts as lying
// beyond the far side.
func (s *DragSession) gapFromDragStart(idx, direction int) float64 {
	gap := geometry.SignedAngleBetween(s.startAngles[idx], s.startAngles[s.index])
	dir := float64(direction)
	if gap*dir < 0 {
		gap = (gap*dir + geometry.Tau) * dir
	}
	return gap
}

// reflowCollapsing snaps the dragged boundary onto the first neighbour it gets
// within MinAngle of and collapses one of the two. At most one collapse happens
// per step; every other segment returns to its snapshot.
func (c *Chart[P]) reflowCollapsing(s *DragSession, distance float64, direction int) {
	n := len(c.segments)
	dragged := &c.segments[s.index]
	collapsed := false

	for k := 1; k < n; k++ {
		idx := mod(s.index+k*direction, n)
		gap := s.gapFromDragStart(idx, direction)
		other := &c.segments[idx]

		other.Collapsed = s.startCollapsed[idx]
		check := !collapsed && !other.Collapsed

		switch {
		case check && gap > 0 && distance > gap-c.minAngle:
			dragged.Angle = s.startAngles[idx]
			dragged.Collapsed = true
			collapsed = true
			c.logger.Debug("segment collapsed", "index", s.index, "onto", idx)
		case check && gap < 0 && distance < gap+c.minAngle:
			dragged.Angle = s.startAngles[idx]
			other.Collapsed = true
			collapsed = true
			c.logger.Debug("segment collapsed", "index", idx, "by", s.index)
		default:
			other.Angle = s.startAngles[idx]
		}
	}
}

// reflowShifting pushes neighbours ahead of the dragged boundary, each reserving
// MinAngle behind the next. The first neighbour that needs no push ends the chain;
// it and everything after it keep their snapshot angle even if a segment further
// round would otherwise be overtaken.
func (c *Chart[P]) reflowShifting(s *DragSession, distance float64, direction int) {
	n := len(c.segments)
	shifting := true
	shifted := 0

	for k := 1; k < n; k++ {
		idx := mod(s.index+k*direction, n)
		gap := s.gapFromDragStart(idx, direction)
		other := &c.segments[idx]
		reserve := float64(shifted+1) * c.minAngle

		switch {
		case shifting && gap > 0 && distance > gap-reserve:
			other.Angle = geometry.NormalizeAngle(s.startAngles[idx] + (distance - gap) + reserve)
			shifted++
		case shifting && gap < 0 && distance < gap+reserve:
			other.Angle = geometry.NormalizeAngle(s.startAngles[idx] - (gap - distance) - reserve)
			shifted++
		default:
			shifting = false
			other.Angle = s.startAngles[idx]
		}
	}
}

// MoveAngle moves segment i's start boundary by amount radians as if it had been
// dragged there. Moving a collapsed segment backwards uncollapses it instead.
func (c *Chart[P]) MoveAngle(i int, amount float64) {
	if !c.valid(i) {
		return
	}
	if c.segments[i].Collapsed && amount < 0 {
		c.SetCollapsed(i, false)
		return
	}

	// Any pointer session in progress is discarded.
	c.session = c.newSession(i, 0, c.Geometry().Center())
	c.drag(c.segments[i].Angle + amount)
	c.session = nil
	c.Render()
}

// SetCollapsed collapses or restores segment index. A restored segment is
// placed MinAngle before the next visible boundary, and the visible ring behind it
// is pushed back as needed to keep every gap at least MinAngle wide.
func (c *Chart[P]) SetCollapsed(index int, collapsed bool) {
	if !c.valid(index) {
		return
	}

	setNewPos := c.segments[index].Collapsed && !collapsed
	c.segments[index].Collapsed = collapsed

	visible := c.VisibleSegments()
	n := len(visible)
	for i := range visible {
		if visible[i].Index != index {
			continue
		}

		if setNewPos {
			next := visible[mod(i+1, n)]
			c.segments[index].Angle = geometry.NormalizeAngle(c.segments[next.Index].Angle - c.minAngle)
		}

		for j := 0; j < n-1; j++ {
			current := visible[mod(1+i-j, n)].Index
			behind := visible[mod(i-j, n)].Index

			between := math.Abs(geometry.SignedAngleBetween(c.segments[current].Angle, c.segments[behind].Angle))
			if between < c.minAngle {
				c.segments[behind].Angle = geometry.NormalizeAngle(c.segments[current].Angle - c.minAngle)
			}
		}
		break
	}

	c.logger.Debug("segment collapse toggled", "index", index, "collapsed", collapsed)
	c.Render()
}
