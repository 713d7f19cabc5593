package config

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/philipparndt/dragpie/pkg/piechart"
	"github.com/philipparndt/dragpie/pkg/raster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadTOMLAngles(t *testing.T) {
	path := writeFile(t, "chart.toml", `
radius = 0.8
collapsing = true
min_angle_deg = 10.0

[[segment]]
label = "Walking"
color = "#2665da"
angle = -2.0

[[segment]]
label = "Chess"
color = "gold"
angle_deg = 90.0
collapsed = true
`)

	c, err := Load(path)
	require.NoError(t, err)

	assert.InDelta(t, 0.8, c.Radius, 1e-12)
	assert.True(t, c.Collapsing)
	assert.InDelta(t, math.Pi/18, c.MinAngle, 1e-12)
	require.Len(t, c.Segments, 2)
	assert.Empty(t, c.Proportions)

	assert.InDelta(t, -2.0, c.Segments[0].Angle, 1e-12)
	assert.Equal(t, "Walking", c.Segments[0].Payload.Label)
	assert.Equal(t, "#2665da", c.Segments[0].Payload.Hex())
	assert.False(t, c.Segments[0].Collapsed)

	assert.InDelta(t, math.Pi/2, c.Segments[1].Angle, 1e-12)
	assert.Equal(t, "#ffd700", c.Segments[1].Payload.Hex())
	assert.True(t, c.Segments[1].Collapsed)
}

func TestLoadYAMLProportions(t *testing.T) {
	path := writeFile(t, "chart.yml", `
segments:
  - label: a
    proportion: 1
  - label: b
    proportion: 3
`)

	c, err := Load(path)
	require.NoError(t, err)

	assert.Empty(t, c.Segments)
	require.Len(t, c.Proportions, 2)
	assert.InDelta(t, 3.0, c.Proportions[1].Weight, 1e-12)
	assert.Equal(t, raster.PaletteColor(0), c.Proportions[0].Payload.Color)
	assert.Equal(t, raster.PaletteColor(1), c.Proportions[1].Payload.Color)
	assert.Equal(t, 2, c.Len())
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		errText string
	}{
		{"unknown extension", "chart.json", `{}`, "unsupported chart format"},
		{"unknown toml key", "chart.toml", "radios = 0.5\n", "unknown key"},
		{"unknown yaml key", "chart.yaml", "radios: 0.5\n", "invalid YAML"},
		{"bad colour", "chart.toml", "[[segment]]\ncolor = \"nope\"\nangle = 1.0\n", "segment 0"},
		{"missing angle", "chart.toml", "[[segment]]\nlabel = \"x\"\n", "exactly one of"},
		{"two angles", "chart.toml", "[[segment]]\nangle = 1.0\nangle_deg = 2.0\n", "exactly one of"},
		{"mixed modes", "chart.toml", "[[segment]]\nproportion = 1.0\n[[segment]]\nangle = 1.0\n", "proportion required"},
		{"radius", "chart.toml", "radius = 1.5\n", "radius"},
		{"both min angles", "chart.toml", "min_angle = 0.1\nmin_angle_deg = 5.0\n", "mutually exclusive"},
		{"negative min angle", "chart.toml", "min_angle = -0.1\n", "negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)
			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errText)
			assert.Contains(t, err.Error(), path)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseNormalizesAngles(t *testing.T) {
	c, err := Parse([]byte("[[segment]]\nangle_deg = 270.0\n"), "toml")
	require.NoError(t, err)
	assert.InDelta(t, -math.Pi/2, c.Segments[0].Angle, 1e-12)
}

func TestDefault(t *testing.T) {
	c := Default()

	require.Len(t, c.Segments, 5)
	labels := []string{"Walking", "Programming", "Chess", "Eating", "Sleeping"}
	for i, s := range c.Segments {
		assert.Equal(t, labels[i], s.Payload.Label)
		assert.InDelta(t, float64(i-2), s.Angle, 1e-12)
	}
	assert.Equal(t, "#d42a00", c.Segments[3].Payload.Hex())
}

func TestPieConfigBuildsChart(t *testing.T) {
	c := Default()
	r := raster.NewRenderer(100, 100)

	chart, err := piechart.New(c.PieConfig(r, r, nil, nil))
	require.NoError(t, err)
	assert.Equal(t, 5, chart.Len())
	assert.InDelta(t, piechart.DefaultRadius, chart.Radius(), 1e-12)

	total := 0.0
	for _, p := range chart.Percentages() {
		total += p
	}
	assert.InDelta(t, 100.0, total, 1e-9)
}

func TestOpenWithoutPathIsDefault(t *testing.T) {
	c, err := Open("")
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestEncodeRoundTrip(t *testing.T) {
	for _, format := range []string{"toml", "yaml"} {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, Default(), format))

			c, err := Parse(buf.Bytes(), format)
			require.NoError(t, err)
			assert.Equal(t, Default(), c)
		})
	}
}

func TestEncodeProportions(t *testing.T) {
	c := &Chart{Proportions: []piechart.Proportion[raster.Format]{
		{Weight: 0.25, Payload: raster.Format{Label: "a", Color: raster.PaletteColor(0)}},
		{Weight: 0.75, Payload: raster.Format{Label: "b", Color: raster.PaletteColor(1)}},
	}}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, c, "toml"))
	assert.Contains(t, buf.String(), "proportion = 0.75")
	assert.NotContains(t, buf.String(), "angle")

	assert.Error(t, Encode(&buf, c, "json"))
}
