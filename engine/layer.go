package engine

import "github.com/Carmen-Shannon/pika-go/engine/renderer"

// Layer is a draw list the engine renders every frame. Layers are drawn in ascending key order.
type Layer interface {
	// Active reports whether the layer is drawn this frame.
	//
	// Returns:
	//   - bool: true to draw the layer
	Active() bool

	// DrawObjects returns the objects to draw this frame.
	//
	// Returns:
	//   - []renderer.DrawObject: the draw list
	DrawObjects() []renderer.DrawObject
}

// Resizer is implemented by layers that react to framebuffer size changes, for example to update a projection.
type Resizer interface {
	Resize(width, height int)
}

// DrawList is a Layer over a fixed slice of objects. Callers may mutate Objects between frames.
type DrawList struct {
	Objects  []renderer.DrawObject
	Disabled bool
}

var _ Layer = &DrawList{}

func (d *DrawList) Active() bool {
	return !d.Disabled
}

func (d *DrawList) DrawObjects() []renderer.DrawObject {
	return d.Objects
}
