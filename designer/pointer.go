package designer

// Pointer is the single coordinate source for drag and resize math. Mouse and
// touch events both satisfy it, so the controller's geometry is written once.
type Pointer interface {
	// Position returns the pointer's screen-space coordinates.
	Position() (x, y float64)
}

// MouseEvent is a mouse pointer at screen coordinates.
type MouseEvent struct {
	X, Y float64
}

func (e MouseEvent) Position() (float64, float64) { return e.X, e.Y }

// Touch is one contact point of a touch event.
type Touch struct {
	X, Y float64
}

// TouchEvent is a touch pointer. Only the first contact point drives the
// interaction; events with no contact points report the origin.
type TouchEvent struct {
	Touches []Touch
}

func (e TouchEvent) Position() (float64, float64) {
	if len(e.Touches) == 0 {
		return 0, 0
	}
	return e.Touches[0].X, e.Touches[0].Y
}
