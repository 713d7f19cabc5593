package raster

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/philipparndt/dragpie/pkg/piechart"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Node radii in pixels, before Scale is applied.
const (
	nodeRadius        = 5
	hoveredNodeRadius = 7
)

// Renderer draws a chart of Format payloads into an RGBA image. It is also the
// chart's Surface, so the chart lays itself out on the image size.
type Renderer struct {
	img *image.RGBA

	Background  color.RGBA
	NodeColor   color.RGBA
	NodeOutline color.RGBA
	LabelColor  color.RGBA
	Face        font.Face
	ShowLabels  bool

	// Scale multiplies node sizes, for high DPI surfaces.
	Scale float64
}

var (
	_ piechart.Surface               = (*Renderer)(nil)
	_ piechart.FrameRenderer[Format] = (*Renderer)(nil)
)

// NewRenderer creates a renderer with a width x height image.
func NewRenderer(width, height int) *Renderer {
	return &Renderer{
		img:         image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0))),
		Background:  color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		NodeColor:   color.RGBA{R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff},
		NodeOutline: color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff},
		LabelColor:  color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff},
		Face:        basicfont.Face7x13,
		ShowLabels:  true,
		Scale:       1,
	}
}

// Resize replaces the image if the size changed.
func (r *Renderer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if b := r.img.Bounds(); b.Dx() == width && b.Dy() == height {
		return
	}
	r.img = image.NewRGBA(image.Rect(0, 0, width, height))
}

// Size implements piechart.Surface.
func (r *Renderer) Size() (int, int) {
	b := r.img.Bounds()
	return b.Dx(), b.Dy()
}

// Image returns the image drawn into. It is replaced by Resize.
func (r *Renderer) Image() *image.RGBA {
	return r.img
}

// BeginFrame clears the image to the background colour.
func (r *Renderer) BeginFrame(piechart.Geometry) {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(r.Background), image.Point{}, draw.Src)
}

// DrawSegment fills the wedge and writes its label. Collapsed segments have no
// area and draw nothing.
func (r *Renderer) DrawSegment(g piechart.Geometry, startAngle, arcSize float64, f Format, collapsed bool) {
	if collapsed || arcSize <= 0 {
		return
	}

	fillWedge(r.img, g.CenterX, g.CenterY, g.Radius, startAngle, arcSize, f.Color)

	if r.ShowLabels && f.Label != "" && arcSize > minLabelArc {
		mid := startAngle + arcSize/2
		x := g.CenterX + 0.7*g.Radius*math.Cos(mid)
		y := g.CenterY + 0.7*g.Radius*math.Sin(mid)
		drawLabel(r.img, r.Face, f.Label, x, y, r.LabelColor)
	}
}

// DrawNode draws a drag handle, larger when hovered.
func (r *Renderer) DrawNode(_ piechart.Geometry, x, y float64, hovered bool) {
	radius := float64(nodeRadius)
	if hovered {
		radius = hoveredNodeRadius
	}
	radius *= r.scale()

	fillCircle(r.img, x, y, radius+r.scale(), r.NodeOutline)
	fillCircle(r.img, x, y, radius, r.NodeColor)
}

// WritePNG encodes the current image as PNG.
func (r *Renderer) WritePNG(w io.Writer) error {
	return png.Encode(w, r.img)
}

func (r *Renderer) scale() float64 {
	if r.Scale <= 0 {
		return 1
	}
	return r.Scale
}
