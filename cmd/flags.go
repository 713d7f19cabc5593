package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/philipparndt/dragpie/pkg/piechart"
	"github.com/philipparndt/dragpie/pkg/raster"
)

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q", level)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l})), nil
}

// move is a --move argument: segment index and angle delta in radians.
type move struct {
	index int
	delta float64
}

func parseMove(s string) (move, error) {
	idx, delta, ok := strings.Cut(s, ":")
	if !ok {
		return move{}, fmt.Errorf("invalid move %q, expected index:delta", s)
	}

	i, err := strconv.Atoi(strings.TrimSpace(idx))
	if err != nil {
		return move{}, fmt.Errorf("invalid move %q: bad index: %w", s, err)
	}
	d, err := strconv.ParseFloat(strings.TrimSpace(delta), 64)
	if err != nil {
		return move{}, fmt.Errorf("invalid move %q: bad delta: %w", s, err)
	}
	return move{index: i, delta: d}, nil
}

// edits are the scripted changes applied to a chart before output.
type edits struct {
	moves    []string
	collapse []int
}

func (e *edits) apply(c *piechart.Chart[raster.Format]) error {
	for _, idx := range e.collapse {
		if idx < 0 || idx >= c.Len() {
			return fmt.Errorf("collapse index %d out of range [0, %d)", idx, c.Len())
		}
		c.SetCollapsed(idx, true)
	}

	for _, s := range e.moves {
		m, err := parseMove(s)
		if err != nil {
			return err
		}
		if m.index < 0 || m.index >= c.Len() {
			return fmt.Errorf("move index %d out of range [0, %d)", m.index, c.Len())
		}
		c.MoveAngle(m.index, m.delta)
	}
	return nil
}
