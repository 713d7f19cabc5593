package piechart

import "github.com/philipparndt/dragpie/pkg/geometry"

// PointerHandler receives pointer input in canvas-local coordinates.
type PointerHandler interface {
	PointerDown(x, y float64)
	PointerMove(x, y float64)
	PointerUp()
}

var _ PointerHandler = (*Chart[int])(nil)

// PointerDown starts a drag if (x, y) grabs a boundary. It is ignored while a
// drag is already in progress.
func (c *Chart[P]) PointerDown(x, y float64) {
	if c.session != nil {
		return
	}
	c.session = c.FindTarget(x, y)
	if c.session != nil {
		c.hovered = c.session.index
		c.logger.Debug("drag started", "index", c.session.index, "offset", c.session.angleOffset)
	}
}

// PointerMove drags the grabbed boundary, or tracks the hovered one when no drag
// is active.
func (c *Chart[P]) PointerMove(x, y float64) {
	if c.session == nil {
		hovered := -1
		if target := c.FindTarget(x, y); target != nil {
			hovered = target.index
		}
		if hovered != c.hovered {
			c.hovered = hovered
			c.Render()
		}
		return
	}

	angle := geometry.NewVector2(x, y).Sub(c.session.center).Angle()
	c.drag(angle - c.session.angleOffset)
	c.Render()
}

// PointerUp ends the drag. The segments stay where they were released.
func (c *Chart[P]) PointerUp() {
	if c.session == nil {
		return
	}
	c.logger.Debug("drag ended", "index", c.session.index, "distance", c.session.distance)
	c.session = nil
	c.Render()
}
