package raster

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Format is the display payload of a segment.
type Format struct {
	Label string
	Color color.RGBA
}

// Hex returns the colour as a CSS hex string.
func (f Format) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", f.Color.R, f.Color.G, f.Color.B)
}

// ParseColor accepts "#rgb", "#rrggbb" or an SVG/CSS colour name.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}

	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return color.RGBA{}, fmt.Errorf("unknown color %q", s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// Palette is used for segments without an explicit colour.
var Palette = []color.RGBA{
	{R: 0x26, G: 0x65, B: 0xda, A: 0xff},
	{R: 0x6d, G: 0xd0, B: 0x20, A: 0xff},
	{R: 0xf9, G: 0xdf, B: 0x18, A: 0xff},
	{R: 0xd4, G: 0x2a, B: 0x00, A: 0xff},
	{R: 0xe9, G: 0x64, B: 0x00, A: 0xff},
	{R: 0x8e, G: 0x44, B: 0xad, A: 0xff},
	{R: 0x16, G: 0xa0, B: 0x85, A: 0xff},
	{R: 0x7f, G: 0x8c, B: 0x8d, A: 0xff},
}

// PaletteColor returns the palette colour for segment i.
func PaletteColor(i int) color.RGBA {
	return Palette[((i%len(Palette))+len(Palette))%len(Palette)]
}
