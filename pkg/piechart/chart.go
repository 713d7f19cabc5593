package piechart

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/philipparndt/dragpie/pkg/geometry"
)

const (
	// DefaultRadius is the chart radius as a fraction of half the smaller surface side
	DefaultRadius = 0.9

	// DefaultMinAngle is the default minimum gap between adjacent boundaries
	DefaultMinAngle = 0.1

	// HitTolerance is how close, in radians, a pointer must be to a boundary to grab it
	HitTolerance = 0.1
)

// ErrNoSurface is returned by New when no drawing surface was configured.
var ErrNoSurface = errors.New("no rendering surface")

// ConfigError reports a configuration the chart cannot be built from.
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("piechart: invalid %s: %v", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// Surface is anything with a pixel size the chart can lay itself out on.
type Surface interface {
	Size() (width, height int)
}

// FixedSurface is a Surface of constant size.
type FixedSurface struct {
	Width, Height int
}

// Size implements Surface.
func (s FixedSurface) Size() (int, int) { return s.Width, s.Height }

// Config holds everything needed to build a Chart.
type Config[P any] struct {
	// Surface supplies the canvas size. Required.
	Surface Surface

	// Radius is a fraction in (0, 1] of half the smaller surface side.
	// Zero selects DefaultRadius; values above 1 are clamped.
	Radius float64

	// Collapsing selects the collapsing reflow policy instead of shifting.
	Collapsing bool

	// MinAngle is the minimum boundary separation in radians.
	// Zero or negative selects DefaultMinAngle.
	MinAngle float64

	// Segments gives explicit start angles. Ignored when Proportions is set.
	Segments []Segment[P]

	// Proportions derives start angles from weights.
	Proportions []Proportion[P]

	Renderer Renderer[P]
	OnChange ChangeListener[P]
	Logger   *slog.Logger
}

// Chart is an interactive pie chart.
type Chart[P any] struct {
	surface    Surface
	renderer   Renderer[P]
	listener   ChangeListener[P]
	logger     *slog.Logger
	segments   []Segment[P]
	radius     float64
	collapsing bool
	minAngle   float64

	session *DragSession
	hovered int
}

// New builds a chart from cfg and renders it once. A missing surface is logged and
// reported as a *ConfigError wrapping ErrNoSurface.
func New[P any](cfg Config[P]) (*Chart[P], error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if cfg.Surface == nil {
		err := &ConfigError{Field: "surface", Err: ErrNoSurface}
		logger.Error("piechart needs a rendering surface", "error", err)
		return nil, err
	}

	c := &Chart[P]{
		surface:    cfg.Surface,
		renderer:   cfg.Renderer,
		listener:   cfg.OnChange,
		logger:     logger,
		radius:     cfg.Radius,
		collapsing: cfg.Collapsing,
		minAngle:   cfg.MinAngle,
		hovered:    -1,
	}

	if c.renderer == nil {
		c.renderer = nopRenderer[P]{}
	}
	if c.radius <= 0 {
		c.radius = DefaultRadius
	} else if c.radius > 1 {
		logger.Warn("chart radius clamped", "radius", c.radius)
		c.radius = 1
	}
	if c.minAngle <= 0 {
		c.minAngle = DefaultMinAngle
	}

	switch {
	case len(cfg.Proportions) > 0:
		c.segments = FromProportions(cfg.Proportions)
	default:
		c.segments = make([]Segment[P], len(cfg.Segments))
		for i, s := range cfg.Segments {
			s.Angle = geometry.NormalizeAngle(s.Angle)
			c.segments[i] = s
		}
	}

	c.Render()
	return c, nil
}

// Collapsing reports whether the collapsing policy is active.
func (c *Chart[P]) Collapsing() bool { return c.collapsing }

// MinAngle returns the enforced minimum gap.
func (c *Chart[P]) MinAngle() float64 { return c.minAngle }

// Radius returns the radius fraction.
func (c *Chart[P]) Radius() float64 { return c.radius }

// Hovered returns the index of the hovered segment boundary, or -1.
func (c *Chart[P]) Hovered() int { return c.hovered }

// Dragging reports whether a drag session is active.
func (c *Chart[P]) Dragging() bool { return c.session != nil }

// Session returns the active drag session, or nil.
func (c *Chart[P]) Session() *DragSession { return c.session }

func (c *Chart[P]) valid(i int) bool {
	if i < 0 || i >= len(c.segments) {
		c.logger.Warn("segment index out of range", "index", i, "segments", len(c.segments))
		return false
	}
	return true
}
