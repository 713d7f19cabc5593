// Package viewer displays a pie chart in a fyne window and feeds it pointer input.
package viewer

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/dragpie/pkg/piechart"
	"github.com/philipparndt/dragpie/pkg/raster"
)

var (
	_ desktop.Mouseable = (*PieWidget)(nil)
	_ desktop.Hoverable = (*PieWidget)(nil)
	_ fyne.Draggable    = (*PieWidget)(nil)
)

// PieWidget shows the image of a raster.Renderer and forwards pointer events,
// converted to image pixels, to a PointerHandler.
type PieWidget struct {
	widget.BaseWidget

	raster   *raster.Renderer
	handler  piechart.PointerHandler
	onResize func()
	pressed  bool
}

// NewPieWidget creates a widget displaying r.
func NewPieWidget(r *raster.Renderer) *PieWidget {
	w := &PieWidget{raster: r}
	w.ExtendBaseWidget(w)
	return w
}

// SetHandler sets the receiver of pointer input.
func (w *PieWidget) SetHandler(h piechart.PointerHandler) {
	w.handler = h
}

// SetOnResize sets the callback run after the raster was resized to a new
// layout. The chart should render again from it.
func (w *PieWidget) SetOnResize(fn func()) {
	w.onResize = fn
}

// scale returns the pixel density of the canvas showing w, or 1 when it is not shown.
func (w *PieWidget) scale() float32 {
	app := fyne.CurrentApp()
	if app == nil {
		return 1
	}
	if c := app.Driver().CanvasForObject(w); c != nil && c.Scale() > 0 {
		return c.Scale()
	}
	return 1
}

func (w *PieWidget) pixels(pos fyne.Position) (float64, float64) {
	s := w.scale()
	return float64(pos.X * s), float64(pos.Y * s)
}

// MouseDown implements desktop.Mouseable.
func (w *PieWidget) MouseDown(ev *desktop.MouseEvent) {
	if w.handler == nil || ev.Button != desktop.MouseButtonPrimary {
		return
	}
	w.pressed = true
	w.handler.PointerDown(w.pixels(ev.Position))
}

// MouseUp implements desktop.Mouseable.
func (w *PieWidget) MouseUp(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	w.release()
}

// MouseIn implements desktop.Hoverable.
func (w *PieWidget) MouseIn(ev *desktop.MouseEvent) {
	w.MouseMoved(ev)
}

// MouseMoved implements desktop.Hoverable.
func (w *PieWidget) MouseMoved(ev *desktop.MouseEvent) {
	if w.handler != nil {
		w.handler.PointerMove(w.pixels(ev.Position))
	}
}

// MouseOut implements desktop.Hoverable. Leaving the widget does not end a drag.
func (w *PieWidget) MouseOut() {}

// Dragged implements fyne.Draggable.
func (w *PieWidget) Dragged(ev *fyne.DragEvent) {
	if w.handler != nil {
		w.handler.PointerMove(w.pixels(ev.Position))
	}
}

// DragEnd implements fyne.Draggable.
func (w *PieWidget) DragEnd() {
	w.release()
}

func (w *PieWidget) release() {
	if !w.pressed || w.handler == nil {
		return
	}
	w.pressed = false
	w.handler.PointerUp()
}

// CreateRenderer implements fyne.Widget.
func (w *PieWidget) CreateRenderer() fyne.WidgetRenderer {
	img := canvas.NewImageFromImage(w.raster.Image())
	img.FillMode = canvas.ImageFillStretch
	img.ScaleMode = canvas.ImageScalePixels
	return &pieWidgetRenderer{widget: w, image: img}
}

type pieWidgetRenderer struct {
	widget *PieWidget
	image  *canvas.Image
}

func (p *pieWidgetRenderer) Layout(size fyne.Size) {
	p.image.Resize(size)

	s := p.widget.scale()
	width, height := int(size.Width*s), int(size.Height*s)
	if cw, ch := p.widget.raster.Size(); cw == width && ch == height {
		return
	}
	p.widget.raster.Resize(width, height)
	if p.widget.onResize != nil {
		p.widget.onResize()
	}
	p.Refresh()
}

func (p *pieWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (p *pieWidgetRenderer) Refresh() {
	p.image.Image = p.widget.raster.Image()
	p.image.Refresh()
}

func (p *pieWidgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{p.image}
}

func (p *pieWidgetRenderer) Destroy() {}
