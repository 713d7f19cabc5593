package main

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/dragpie/pkg/geometry"
	"github.com/philipparndt/dragpie/pkg/piechart"
	"github.com/philipparndt/dragpie/pkg/raster"
)

const labelFontSize = 18

var (
	nodeFill    = rl.NewColor(0xdd, 0xdd, 0xdd, 0xff)
	nodeOutline = rl.Black
)

// screenRenderer draws straight into the raylib window, which is also the
// chart's surface. It must only be rendered between BeginDrawing and EndDrawing.
type screenRenderer struct{}

var (
	_ piechart.Surface                      = screenRenderer{}
	_ piechart.FrameRenderer[raster.Format] = screenRenderer{}
)

func (screenRenderer) Size() (int, int) {
	return rl.GetScreenWidth(), rl.GetScreenHeight()
}

// BeginFrame clears the window, so only the last render of a frame shows.
func (screenRenderer) BeginFrame(piechart.Geometry) {
	rl.ClearBackground(rl.RayWhite)
}

func toRaylib(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

func (screenRenderer) DrawSegment(g piechart.Geometry, start, arc float64, f raster.Format, collapsed bool) {
	if collapsed {
		return
	}

	center := rl.NewVector2(float32(g.CenterX), float32(g.CenterY))
	from := float32(geometry.RadiansToDegrees(start))
	to := float32(geometry.RadiansToDegrees(start + arc))
	rl.DrawCircleSector(center, float32(g.Radius), from, to, int32(max(8, arc*32)), toRaylib(f.Color))

	if f.Label == "" || arc < 0.15 {
		return
	}
	x, y := geometry.PolarToCartesian(start+arc/2, 0.7*g.Radius)
	w := rl.MeasureText(f.Label, labelFontSize)
	rl.DrawText(f.Label, int32(g.CenterX+x)-w/2, int32(g.CenterY+y)-labelFontSize/2, labelFontSize, rl.Black)
}

func (screenRenderer) DrawNode(_ piechart.Geometry, x, y float64, hovered bool) {
	radius := float32(5)
	if hovered {
		radius = 7
	}
	pos := rl.NewVector2(float32(x), float32(y))
	rl.DrawCircleV(pos, radius+1, nodeOutline)
	rl.DrawCircleV(pos, radius, nodeFill)
}
