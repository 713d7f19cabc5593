package piechart

import "github.com/philipparndt/dragpie/pkg/geometry"

// Segment is one wedge of the chart. Angle is where the wedge starts.
type Segment[P any] struct {
	Angle     float64
	Collapsed bool
	Payload   P
}

// VisibleSegment is a non-collapsed segment with its derived arc.
type VisibleSegment[P any] struct {
	Index   int
	Angle   float64
	ArcSize float64
	Payload P
}

// InvisibleSegment is a collapsed segment.
type InvisibleSegment[P any] struct {
	Index   int
	Payload P
}

// Len returns the number of segments.
func (c *Chart[P]) Len() int { return len(c.segments) }

// Segment returns a copy of segment i. It panics if i is out of range.
func (c *Chart[P]) Segment(i int) Segment[P] { return c.segments[i] }

// Segments returns a copy of all segments in index order.
func (c *Chart[P]) Segments() []Segment[P] {
	out := make([]Segment[P], len(c.segments))
	copy(out, c.segments)
	return out
}

// VisibleSegments returns the non-collapsed segments in index order, each with the
// arc up to the next non-collapsed segment. A lone visible segment covers the
// full circle.
func (c *Chart[P]) VisibleSegments() []VisibleSegment[P] {
	n := len(c.segments)
	var visible []VisibleSegment[P]

	for i, s := range c.segments {
		if s.Collapsed {
			continue
		}

		found := false
		for j := 1; j < n; j++ {
			next := c.segments[(i+j)%n]
			if next.Collapsed {
				continue
			}
			arc := next.Angle - s.Angle
			if arc <= 0 {
				arc += geometry.Tau
			}
			visible = append(visible, VisibleSegment[P]{Index: i, Angle: s.Angle, ArcSize: arc, Payload: s.Payload})
			found = true
			break
		}

		if !found {
			visible = append(visible, VisibleSegment[P]{Index: i, Angle: s.Angle, ArcSize: geometry.Tau, Payload: s.Payload})
			break
		}
	}
	return visible
}

// InvisibleSegments returns the collapsed segments in index order.
func (c *Chart[P]) InvisibleSegments() []InvisibleSegment[P] {
	var invisible []InvisibleSegment[P]
	for i, s := range c.segments {
		if s.Collapsed {
			invisible = append(invisible, InvisibleSegment[P]{Index: i, Payload: s.Payload})
		}
	}
	return invisible
}

// Percentage returns the share of the circle covered by segment index, in [0, 100].
func (c *Chart[P]) Percentage(index int) float64 {
	for _, v := range c.VisibleSegments() {
		if v.Index == index {
			return 100 * v.ArcSize / geometry.Tau
		}
	}
	return 0
}

// Percentages returns the share of every segment, aligned to segment index.
func (c *Chart[P]) Percentages() []float64 {
	out := make([]float64, len(c.segments))
	for _, v := range c.VisibleSegments() {
		out[v.Index] = 100 * v.ArcSize / geometry.Tau
	}
	return out
}
