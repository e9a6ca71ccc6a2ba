package designer

import "github.com/sirupsen/logrus"

// ScaleFunc reports the editor's current zoom factor. The controller calls it
// on every move event rather than caching it at drag start, so live zoom
// changes during an interaction are honored.
type ScaleFunc func() float64

type interactionKind int

const (
	interactionIdle interactionKind = iota
	interactionDragging
	interactionResizing
)

// interaction is the controller's session bookkeeping, a tagged value:
// idle, or dragging/resizing one element. For drags baseX/baseY hold the
// element's canvas-space origin; for resizes they hold its origin dimensions.
// screenX/screenY always hold the pointer's screen-space origin.
type interaction struct {
	kind      interactionKind
	elementID string
	screenX   float64
	screenY   float64
	baseX     float64
	baseY     float64
}

// Controller drives pointer interactions against a zoomable canvas. Exactly
// one element may be drag- or resize-active at a time; starting a new
// interaction implicitly ends any prior one. End tears the session down
// deterministically no matter where the pointer release lands.
type Controller struct {
	canvas *Canvas
	scale  ScaleFunc
	state  interaction
}

func NewController(canvas *Canvas, scale ScaleFunc) *Controller {
	return &Controller{canvas: canvas, scale: scale}
}

// Canvas returns the working copy this controller owns.
func (c *Controller) Canvas() *Canvas { return c.canvas }

// Active reports whether a drag or resize session is in progress.
func (c *Controller) Active() bool { return c.state.kind != interactionIdle }

// Dragging reports whether the given element is mid-drag.
func (c *Controller) Dragging(id string) bool {
	return c.state.kind == interactionDragging && c.state.elementID == id
}

// Resizing reports whether the given element is mid-resize.
func (c *Controller) Resizing(id string) bool {
	return c.state.kind == interactionResizing && c.state.elementID == id
}

// StartDrag begins a drag session on the element, capturing the pointer's
// screen origin and the element's canvas origin. The element becomes selected.
func (c *Controller) StartDrag(id string, p Pointer) {
	el := c.canvas.find(id)
	if el == nil {
		return
	}
	if c.state.kind != interactionIdle {
		// Should not happen with correct event wiring; ending the stale
		// session keeps the model consistent either way.
		logrus.WithField("element_id", c.state.elementID).Debug("ending stale interaction")
		c.End()
	}
	c.canvas.Select(id)
	x, y := p.Position()
	c.state = interaction{
		kind:      interactionDragging,
		elementID: id,
		screenX:   x,
		screenY:   y,
		baseX:     el.X,
		baseY:     el.Y,
	}
}

// StartResize begins a resize session on the element, capturing the pointer's
// screen origin and the element's current dimensions.
func (c *Controller) StartResize(id string, p Pointer) {
	el := c.canvas.find(id)
	if el == nil {
		return
	}
	if c.state.kind != interactionIdle {
		logrus.WithField("element_id", c.state.elementID).Debug("ending stale interaction")
		c.End()
	}
	c.canvas.Select(id)
	x, y := p.Position()
	c.state = interaction{
		kind:      interactionResizing,
		elementID: id,
		screenX:   x,
		screenY:   y,
		baseX:     el.Width,
		baseY:     el.Height,
	}
}

// Move applies a pointer move to the active session. Screen deltas are
// converted to canvas space by the zoom factor read at this moment:
// Δcanvas = Δscreen / scale. Moves while idle are ignored.
func (c *Controller) Move(p Pointer) {
	if c.state.kind == interactionIdle {
		return
	}
	scale := 1.0
	if c.scale != nil {
		if s := c.scale(); s > 0 {
			scale = s
		}
	}
	x, y := p.Position()
	dx := (x - c.state.screenX) / scale
	dy := (y - c.state.screenY) / scale

	switch c.state.kind {
	case interactionDragging:
		c.canvas.moveTo(c.state.elementID, c.state.baseX+dx, c.state.baseY+dy)
	case interactionResizing:
		c.canvas.resizeTo(c.state.elementID, c.state.baseX+dx, c.state.baseY+dy)
	}
}

// End closes the active session. It corresponds to the pointer release and is
// safe to call at any time, including when no session is active.
func (c *Controller) End() {
	c.state = interaction{}
}
