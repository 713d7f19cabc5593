package app

import (
	"fmt"
	"image/color"
	"log/slog"

	"github.com/philipparndt/dragpie/internal/config"
	"github.com/philipparndt/dragpie/pkg/piechart"
	"github.com/philipparndt/dragpie/pkg/raster"
)

// AdjustStep is the angle in radians one +/- button press moves a boundary.
const AdjustStep = 0.1

// Row is one entry of the percentage table.
type Row struct {
	Label   string
	Percent string
	Color   color.RGBA
}

// Session owns the chart currently shown and rebuilds it when the definition
// changes. It is not safe for concurrent use; callers stay on the UI thread.
type Session struct {
	raster   *raster.Renderer
	chart    *piechart.Chart[raster.Format]
	logger   *slog.Logger
	onChange func(*Session)
}

// NewSession builds the chart for def, drawing into r. onChange runs after
// every render.
func NewSession(def *config.Chart, r *raster.Renderer, logger *slog.Logger, onChange func(*Session)) (*Session, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Session{raster: r, logger: logger, onChange: onChange}
	if err := s.Reload(def); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload replaces the chart with one built from def.
func (s *Session) Reload(def *config.Chart) error {
	listener := piechart.ChangeFunc[raster.Format](func(c *piechart.Chart[raster.Format]) {
		// New renders once before the chart is assigned; notify covers that frame.
		if s.chart == c {
			s.notify()
		}
	})

	previous := s.chart
	s.chart = nil
	chart, err := piechart.New(def.PieConfig(s.raster, s.raster, listener, s.logger))
	if err != nil {
		s.chart = previous
		return fmt.Errorf("failed to build chart: %w", err)
	}
	s.chart = chart
	s.logger.Debug("chart loaded", "segments", chart.Len(), "collapsing", chart.Collapsing())
	s.notify()
	return nil
}

func (s *Session) notify() {
	if s.onChange != nil {
		s.onChange(s)
	}
}

// Chart returns the current chart.
func (s *Session) Chart() *piechart.Chart[raster.Format] {
	return s.chart
}

// Render draws the current chart again, for example after a resize.
func (s *Session) Render() {
	s.chart.Render()
}

// Grow widens segment i by moving its start boundary backwards.
func (s *Session) Grow(i int) {
	s.chart.MoveAngle(i, -AdjustStep)
}

// Shrink narrows segment i by moving its start boundary forwards.
func (s *Session) Shrink(i int) {
	s.chart.MoveAngle(i, AdjustStep)
}

// Rows returns the percentage table, one row per segment in index order.
func (s *Session) Rows() []Row {
	segments := s.chart.Segments()
	percentages := s.chart.Percentages()

	rows := make([]Row, len(segments))
	for i, seg := range segments {
		rows[i] = Row{
			Label:   seg.Payload.Label,
			Percent: fmt.Sprintf("%.0f%%", percentages[i]),
			Color:   seg.Payload.Color,
		}
	}
	return rows
}

var _ piechart.PointerHandler = (*Session)(nil)

// PointerDown forwards to the current chart.
func (s *Session) PointerDown(x, y float64) { s.chart.PointerDown(x, y) }

// PointerMove forwards to the current chart.
func (s *Session) PointerMove(x, y float64) { s.chart.PointerMove(x, y) }

// PointerUp forwards to the current chart.
func (s *Session) PointerUp() { s.chart.PointerUp() }
