package piechart

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

type drawnSegment struct {
	start, arc float64
	payload    string
	collapsed  bool
}

type drawnNode struct {
	x, y    float64
	hovered bool
}

// recorder is a FrameRenderer that keeps the calls of the latest frame.
type recorder struct {
	frames   int
	segments []drawnSegment
	nodes    []drawnNode
}

func (r *recorder) BeginFrame(Geometry) {
	r.frames++
	r.segments = nil
	r.nodes = nil
}

func (r *recorder) DrawSegment(_ Geometry, start, arc float64, payload string, collapsed bool) {
	r.segments = append(r.segments, drawnSegment{start: start, arc: arc, payload: payload, collapsed: collapsed})
}

func (r *recorder) DrawNode(_ Geometry, x, y float64, hovered bool) {
	r.nodes = append(r.nodes, drawnNode{x: x, y: y, hovered: hovered})
}

var quietLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

var activityLabels = []string{"Walking", "Programming", "Chess", "Eating", "Sleeping"}

// newActivityChart builds the five-segment chart at angles -2, -1, 0, 1, 2 on a
// 200x200 surface.
func newActivityChart(t *testing.T, collapsing bool) (*Chart[string], *recorder) {
	t.Helper()
	segments := make([]Segment[string], len(activityLabels))
	for i, label := range activityLabels {
		segments[i] = Segment[string]{Angle: float64(i - 2), Payload: label}
	}
	return newChart(t, collapsing, segments)
}

func newChart(t *testing.T, collapsing bool, segments []Segment[string]) (*Chart[string], *recorder) {
	t.Helper()
	rec := &recorder{}
	c, err := New(Config[string]{
		Surface:    FixedSurface{Width: 200, Height: 200},
		Collapsing: collapsing,
		MinAngle:   0.1,
		Segments:   segments,
		Renderer:   rec,
		Logger:     quietLogger,
	})
	require.NoError(t, err)
	return c, rec
}

func angles(c *Chart[string]) []float64 {
	out := make([]float64, c.Len())
	for i, s := range c.Segments() {
		out[i] = s.Angle
	}
	return out
}

// startDrag opens a session on segment i without going through hit-testing.
func startDrag(c *Chart[string], i int) {
	c.session = c.newSession(i, 0, c.Geometry().Center())
}
