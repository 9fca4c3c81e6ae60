package command

// Point represents a canvas coordinate.
type Point struct {
	X, Y float32
}

// PointerDown starts a stroke.
type PointerDown struct {
	Point
}

func NewPointerDown(x, y float32) *PointerDown {
	return &PointerDown{Point: Point{X: x, Y: y}}
}

func (c *PointerDown) CommandName() string {
	return "PointerDown"
}

// PointerDrag extends the stroke to a new point.
type PointerDrag struct {
	Point
}

func NewPointerDrag(x, y float32) *PointerDrag {
	return &PointerDrag{Point: Point{X: x, Y: y}}
}

func (c *PointerDrag) CommandName() string {
	return "PointerDrag"
}

// PointerUp completes the drawing and hands it to the active mode.
type PointerUp struct{}

func (c *PointerUp) CommandName() string {
	return "PointerUp"
}

// ClearCanvas discards the current drawing without saving it.
type ClearCanvas struct{}

func (c *ClearCanvas) CommandName() string {
	return "ClearCanvas"
}
