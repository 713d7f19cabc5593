package piechart

import (
	"math"

	"github.com/philipparndt/dragpie/pkg/geometry"
)

// Proportion is a relative weight for one segment.
type Proportion[P any] struct {
	Weight  float64
	Payload P
}

// FromProportions lays segments out from angle 0 in index order, each taking
// Weight/total of the circle. Segments with no share start collapsed. If the
// weights sum to nothing every segment is collapsed at angle 0.
func FromProportions[P any](proportions []Proportion[P]) []Segment[P] {
	total := 0.0
	for _, p := range proportions {
		total += weight(p.Weight)
	}

	segments := make([]Segment[P], len(proportions))
	if !(total > 0) || math.IsInf(total, 0) {
		for i, p := range proportions {
			segments[i] = Segment[P]{Collapsed: true, Payload: p.Payload}
		}
		return segments
	}

	current := 0.0
	for i, p := range proportions {
		arc := geometry.Tau * weight(p.Weight) / total
		segments[i] = Segment[P]{
			Angle:     current,
			Collapsed: arc <= 0,
			Payload:   p.Payload,
		}
		current = geometry.NormalizeAngle(current + arc)
	}
	return segments
}

func weight(w float64) float64 {
	if math.IsNaN(w) || w < 0 {
		return 0
	}
	return w
}
