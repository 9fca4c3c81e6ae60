package presentation

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// DrawingCanvas is a custom widget that shows the drawing buffer and turns
// drag gestures into pointer down, drag and up callbacks.
type DrawingCanvas struct {
	widget.BaseWidget
	canvas *canvas.Image
	size   fyne.Size

	onDown func(x, y float32)
	onDrag func(x, y float32)
	onUp   func()

	dragging bool
}

// NewDrawingCanvas creates a square canvas of side pixels showing img.
func NewDrawingCanvas(img image.Image, side int) *DrawingCanvas {
	size := fyne.NewSize(float32(side), float32(side))
	dc := &DrawingCanvas{
		canvas: canvas.NewImageFromImage(img),
		size:   size,
	}
	dc.ExtendBaseWidget(dc)
	dc.canvas.FillMode = canvas.ImageFillOriginal
	dc.canvas.ScaleMode = canvas.ImageScalePixels
	dc.canvas.SetMinSize(size)
	dc.canvas.Resize(size)
	return dc
}

// Redraw re-renders the buffer after it changed in place.
func (d *DrawingCanvas) Redraw() {
	d.canvas.Refresh()
}

// SetOnPointer sets the gesture handlers.
func (d *DrawingCanvas) SetOnPointer(down, drag func(x, y float32), up func()) {
	d.onDown = down
	d.onDrag = drag
	d.onUp = up
}

// ClearCallbacks clears all callbacks to avoid dangling references.
func (d *DrawingCanvas) ClearCallbacks() {
	d.SetOnPointer(nil, nil, nil)
}

// CreateRenderer creates the widget renderer.
func (d *DrawingCanvas) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(d.canvas)
}

// Dragged handles drag events. The first event of a gesture also reports
// where the pointer went down.
func (d *DrawingCanvas) Dragged(e *fyne.DragEvent) {
	if !d.dragging {
		d.dragging = true
		if d.onDown != nil {
			d.onDown(e.Position.X-e.Dragged.DX, e.Position.Y-e.Dragged.DY)
		}
	}
	if d.onDrag != nil {
		d.onDrag(e.Position.X, e.Position.Y)
	}
	d.Redraw()
}

// DragEnd handles drag end events.
func (d *DrawingCanvas) DragEnd() {
	if !d.dragging {
		return
	}
	d.dragging = false
	if d.onUp != nil {
		d.onUp()
	}
	d.Redraw()
}

// MinSize returns the fixed canvas size.
func (d *DrawingCanvas) MinSize() fyne.Size {
	return d.size
}

var _ fyne.Draggable = (*DrawingCanvas)(nil)
