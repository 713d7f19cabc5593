package piechart

import (
	"math"

	"github.com/philipparndt/dragpie/pkg/geometry"
)

// Geometry is the chart's placement on its surface, in canvas pixels.
type Geometry struct {
	CenterX float64
	CenterY float64
	Radius  float64
}

// Center returns the chart centre as a vector.
func (g Geometry) Center() geometry.Vector2 {
	return geometry.NewVector2(g.CenterX, g.CenterY)
}

// Renderer draws the chart. Payloads are passed through untouched.
type Renderer[P any] interface {
	// DrawSegment draws one wedge. Collapsed segments are reported with a zero
	// start angle and arc.
	DrawSegment(g Geometry, startAngle, arcSize float64, payload P, collapsed bool)
	// DrawNode draws the drag handle of a boundary at canvas position (x, y).
	DrawNode(g Geometry, x, y float64, hovered bool)
}

// FrameRenderer is a Renderer that wants to know when a new frame begins,
// typically to clear its surface.
type FrameRenderer[P any] interface {
	Renderer[P]
	BeginFrame(g Geometry)
}

// ChangeListener is notified after every render.
type ChangeListener[P any] interface {
	OnChange(c *Chart[P])
}

// ChangeFunc adapts a function to ChangeListener.
type ChangeFunc[P any] func(c *Chart[P])

// OnChange implements ChangeListener.
func (f ChangeFunc[P]) OnChange(c *Chart[P]) { f(c) }

type nopRenderer[P any] struct{}

func (nopRenderer[P]) DrawSegment(Geometry, float64, float64, P, bool) {}
func (nopRenderer[P]) DrawNode(Geometry, float64, float64, bool)       {}

// Geometry derives the chart centre and radius from the surface size.
func (c *Chart[P]) Geometry() Geometry {
	w, h := c.surface.Size()
	cx := math.Floor(float64(w) / 2)
	cy := math.Floor(float64(h) / 2)
	return Geometry{
		CenterX: cx,
		CenterY: cy,
		Radius:  math.Min(cx, cy) * c.radius,
	}
}

// Render draws the whole chart and notifies the change listener.
//
// Visible segments are drawn starting with the one after the largest arc, so the
// largest lands on top where floating point edges overlap. Collapsed segments
// follow, then a node for every visible boundary.
func (c *Chart[P]) Render() {
	g := c.Geometry()
	if fr, ok := c.renderer.(FrameRenderer[P]); ok {
		fr.BeginFrame(g)
	}

	visible := c.VisibleSegments()

	largest := 0.0
	largestIndex := -1
	for i, v := range visible {
		if v.ArcSize > largest {
			largest = v.ArcSize
			largestIndex = i
		}
	}

	for i := range visible {
		v := visible[mod(i+largestIndex+1, len(visible))]
		c.renderer.DrawSegment(g, v.Angle, v.ArcSize, v.Payload, false)
	}

	for _, s := range c.InvisibleSegments() {
		c.renderer.DrawSegment(g, 0, 0, s.Payload, true)
	}

	center := g.Center()
	for _, v := range visible {
		p := center.Add(geometry.FromPolar(v.Angle, g.Radius))
		c.renderer.DrawNode(g, p.X, p.Y, v.Index == c.hovered)
	}

	if c.listener != nil {
		c.listener.OnChange(c)
	}
}
