package raster

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

const (
	// arcStep is the largest angle, in radians, spanned by one flattened edge
	arcStep = 0.02
	// minLabelArc is the smallest wedge that gets a label
	minLabelArc = 0.15
)

// fillWedge fills the pie wedge from startAngle sweeping arcSize radians.
func fillWedge(img *image.RGBA, cx, cy, radius, startAngle, arcSize float64, col color.RGBA) {
	b := img.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())

	z.MoveTo(float32(cx), float32(cy))
	steps := int(math.Ceil(arcSize / arcStep))
	for i := 0; i <= steps; i++ {
		a := startAngle + arcSize*float64(i)/float64(steps)
		z.LineTo(float32(cx+radius*math.Cos(a)), float32(cy+radius*math.Sin(a)))
	}
	z.ClosePath()

	z.Draw(img, b, image.NewUniform(col), image.Point{})
}

// fillCircle draws a filled circle on the image.
func fillCircle(img *image.RGBA, cx, cy, radius float64, col color.RGBA) {
	if radius <= 0 {
		return
	}
	fillWedge(img, cx, cy, radius, 0, 2*math.Pi, col)
}

// drawLabel writes text centred on (x, y).
func drawLabel(img *image.RGBA, face font.Face, text string, x, y float64, col color.RGBA) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
	}
	width := d.MeasureString(text)
	ascent := face.Metrics().Ascent

	d.Dot = fixed.Point26_6{
		X: fixed.Int26_6(x*64) - width/2,
		Y: fixed.Int26_6(y*64) + ascent/2,
	}
	d.DrawString(text)
}
