// Package config loads chart definitions from TOML or YAML files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/philipparndt/dragpie/pkg/geometry"
	"github.com/philipparndt/dragpie/pkg/piechart"
	"github.com/philipparndt/dragpie/pkg/raster"
	"gopkg.in/yaml.v3"
)

// File is the on-disk chart definition.
type File struct {
	Radius      float64       `toml:"radius,omitempty" yaml:"radius,omitempty"`
	Collapsing  bool          `toml:"collapsing" yaml:"collapsing"`
	MinAngle    *float64      `toml:"min_angle,omitempty" yaml:"min_angle,omitempty"`
	MinAngleDeg *float64      `toml:"min_angle_deg,omitempty" yaml:"min_angle_deg,omitempty"`
	Segments    []SegmentSpec `toml:"segment" yaml:"segments"`
}

// SegmentSpec describes one segment. Exactly one of Angle, AngleDeg and
// Proportion must be set, and all segments of a file must use proportions or
// none of them.
type SegmentSpec struct {
	Label      string   `toml:"label,omitempty" yaml:"label,omitempty"`
	Color      string   `toml:"color,omitempty" yaml:"color,omitempty"`
	Angle      *float64 `toml:"angle,omitempty" yaml:"angle,omitempty"`
	AngleDeg   *float64 `toml:"angle_deg,omitempty" yaml:"angle_deg,omitempty"`
	Proportion *float64 `toml:"proportion,omitempty" yaml:"proportion,omitempty"`
	Collapsed  bool     `toml:"collapsed,omitempty" yaml:"collapsed,omitempty"`
}

// Chart is a validated chart definition.
type Chart struct {
	Radius      float64
	Collapsing  bool
	MinAngle    float64
	Segments    []piechart.Segment[raster.Format]
	Proportions []piechart.Proportion[raster.Format]
}

// Default returns the five activities chart.
func Default() *Chart {
	activities := []struct {
		label string
		color string
	}{
		{"Walking", "#2665da"},
		{"Programming", "#6dd020"},
		{"Chess", "#f9df18"},
		{"Eating", "#d42a00"},
		{"Sleeping", "#e96400"},
	}

	c := &Chart{Radius: piechart.DefaultRadius, MinAngle: piechart.DefaultMinAngle}
	for i, a := range activities {
		col, _ := raster.ParseColor(a.color)
		c.Segments = append(c.Segments, piechart.Segment[raster.Format]{
			Angle:   float64(i - 2),
			Payload: raster.Format{Label: a.label, Color: col},
		})
	}
	return c
}

// Open loads path, or returns Default when path is empty.
func Open(path string) (*Chart, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Load reads a chart definition. The format follows the file extension:
// .toml, .yaml or .yml.
func Load(path string) (*Chart, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read chart file: %w", err)
	}

	c, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes data in the given format (a file extension, with or without the dot).
func Parse(data []byte, format string) (*Chart, error) {
	var f File

	switch strings.TrimPrefix(strings.ToLower(format), ".") {
	case "toml":
		meta, err := toml.Decode(string(data), &f)
		if err != nil {
			return nil, fmt.Errorf("invalid TOML: %w", err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("unknown key %q", undecoded[0].String())
		}
	case "yaml", "yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("invalid YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported chart format %q", format)
	}

	return f.Resolve()
}

// Resolve validates the file and converts it into a Chart.
func (f *File) Resolve() (*Chart, error) {
	c := &Chart{Radius: f.Radius, Collapsing: f.Collapsing}

	if f.Radius < 0 || f.Radius > 1 {
		return nil, fmt.Errorf("radius %v outside (0, 1]", f.Radius)
	}

	switch {
	case f.MinAngle != nil && f.MinAngleDeg != nil:
		return nil, errors.New("min_angle and min_angle_deg are mutually exclusive")
	case f.MinAngle != nil:
		c.MinAngle = *f.MinAngle
	case f.MinAngleDeg != nil:
		c.MinAngle = geometry.DegreesToRadians(*f.MinAngleDeg)
	}
	if c.MinAngle < 0 {
		return nil, fmt.Errorf("min_angle %v is negative", c.MinAngle)
	}

	proportional := false
	for _, s := range f.Segments {
		if s.Proportion != nil {
			proportional = true
			break
		}
	}

	for i, s := range f.Segments {
		format := raster.Format{Label: s.Label, Color: raster.PaletteColor(i)}
		if s.Color != "" {
			col, err := raster.ParseColor(s.Color)
			if err != nil {
				return nil, fmt.Errorf("segment %d: %w", i, err)
			}
			format.Color = col
		}

		set := 0
		for _, v := range []*float64{s.Angle, s.AngleDeg, s.Proportion} {
			if v != nil {
				set++
			}
		}
		if set != 1 {
			return nil, fmt.Errorf("segment %d: exactly one of angle, angle_deg or proportion is required", i)
		}

		if proportional {
			if s.Proportion == nil {
				return nil, fmt.Errorf("segment %d: proportion required when other segments use proportions", i)
			}
			c.Proportions = append(c.Proportions, piechart.Proportion[raster.Format]{Weight: *s.Proportion, Payload: format})
			continue
		}

		angle := 0.0
		if s.Angle != nil {
			angle = *s.Angle
		} else {
			angle = geometry.DegreesToRadians(*s.AngleDeg)
		}
		c.Segments = append(c.Segments, piechart.Segment[raster.Format]{
			Angle:     geometry.NormalizeAngle(angle),
			Collapsed: s.Collapsed,
			Payload:   format,
		})
	}

	return c, nil
}

// Len returns the number of segments defined.
func (c *Chart) Len() int {
	if len(c.Proportions) > 0 {
		return len(c.Proportions)
	}
	return len(c.Segments)
}

// PieConfig builds the piechart configuration for this chart.
func (c *Chart) PieConfig(surface piechart.Surface, renderer piechart.Renderer[raster.Format], onChange piechart.ChangeListener[raster.Format], logger *slog.Logger) piechart.Config[raster.Format] {
	return piechart.Config[raster.Format]{
		Surface:     surface,
		Radius:      c.Radius,
		Collapsing:  c.Collapsing,
		MinAngle:    c.MinAngle,
		Segments:    c.Segments,
		Proportions: c.Proportions,
		Renderer:    renderer,
		OnChange:    onChange,
		Logger:      logger,
	}
}

// File converts c back into its on-disk form. Angles are written in radians.
func (c *Chart) File() File {
	f := File{Radius: c.Radius, Collapsing: c.Collapsing}
	if c.MinAngle > 0 {
		minAngle := c.MinAngle
		f.MinAngle = &minAngle
	}

	for _, p := range c.Proportions {
		weight := p.Weight
		f.Segments = append(f.Segments, SegmentSpec{Label: p.Payload.Label, Color: p.Payload.Hex(), Proportion: &weight})
	}
	for _, s := range c.Segments {
		angle := s.Angle
		f.Segments = append(f.Segments, SegmentSpec{Label: s.Payload.Label, Color: s.Payload.Hex(), Angle: &angle, Collapsed: s.Collapsed})
	}
	return f
}

// Encode writes c to w in the given format (toml, yaml or yml).
func Encode(w io.Writer, c *Chart, format string) error {
	f := c.File()

	switch strings.TrimPrefix(strings.ToLower(format), ".") {
	case "toml":
		return toml.NewEncoder(w).Encode(f)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(f); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported chart format %q", format)
	}
}
