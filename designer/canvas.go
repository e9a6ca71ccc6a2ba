package designer

import (
	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"

	"github.com/sahdevkumar/Result-Management-sub000/core"
)

// Defaults for newly inserted elements.
const (
	defaultX          = 50.0
	defaultY          = 50.0
	defaultTextWidth  = 200.0
	defaultTextHeight = 40.0
	defaultImageSize  = 120.0

	defaultFontSize   = 16.0
	defaultFontFamily = "Arial"
	defaultColor      = "#000000"
	defaultLineHeight = 1.2

	watermarkOpacity = 0.1
)

// Canvas holds the editor's working copy: the ordered element collection, the
// canvas dimensions, and the identity of the currently selected element
// (at most one). It is owned by a single Controller at a time.
type Canvas struct {
	width    int
	height   int
	elements []core.Element
	selected string
}

func NewCanvas(width, height int) *Canvas {
	return &Canvas{width: width, height: height}
}

func (c *Canvas) Width() int  { return c.width }
func (c *Canvas) Height() int { return c.height }

// Elements returns a copy of the element collection in canvas order.
func (c *Canvas) Elements() []core.Element {
	out := make([]core.Element, len(c.elements))
	copy(out, c.elements)
	return out
}

func (c *Canvas) Len() int { return len(c.elements) }

// SelectedID returns the id of the selected element, or "" when none is.
func (c *Canvas) SelectedID() string { return c.selected }

// Selected returns the selected element, if any.
func (c *Canvas) Selected() (core.Element, bool) {
	if el := c.find(c.selected); el != nil {
		return *el, true
	}
	return core.Element{}, false
}

// AddText inserts a new text element with default style and size at the
// default position. The new element becomes selected.
func (c *Canvas) AddText() string {
	el := core.Element{
		ID:      ulid.Make().String(),
		Kind:    core.KindText,
		X:       defaultX,
		Y:       defaultY,
		Width:   defaultTextWidth,
		Height:  defaultTextHeight,
		Content: "Text",
		Style: core.Style{
			FontSize:   defaultFontSize,
			FontFamily: defaultFontFamily,
			Color:      defaultColor,
			Opacity:    1,
			TextAlign:  "left",
			LineHeight: defaultLineHeight,
		},
	}
	c.elements = append(c.elements, el)
	c.selected = el.ID
	return el.ID
}

// AddImage inserts an image element holding the given image-data reference.
// When isWatermark is set, any existing watermark is removed first and the new
// one is sized to cover the canvas exactly, at a low default opacity. The new
// element becomes selected.
func (c *Canvas) AddImage(imageData string, isWatermark bool) string {
	el := core.Element{
		ID:      ulid.Make().String(),
		Kind:    core.KindImage,
		X:       defaultX,
		Y:       defaultY,
		Width:   defaultImageSize,
		Height:  defaultImageSize,
		Content: imageData,
		Style:   core.Style{Opacity: 1},
	}
	if isWatermark {
		c.removeWatermark()
		el.Kind = core.KindWatermark
		el.X = 0
		el.Y = 0
		el.Width = float64(c.width)
		el.Height = float64(c.height)
		el.Style.Opacity = watermarkOpacity
	}
	c.elements = append(c.elements, el)
	c.selected = el.ID
	return el.ID
}

func (c *Canvas) removeWatermark() {
	for i, el := range c.elements {
		if el.Kind == core.KindWatermark {
			if c.selected == el.ID {
				c.selected = ""
			}
			c.elements = append(c.elements[:i], c.elements[i+1:]...)
			return
		}
	}
}

// UpdateContent replaces the content of the matching element. Unknown ids are
// a no-op.
func (c *Canvas) UpdateContent(id, text string) {
	if el := c.find(id); el != nil {
		el.Content = text
	}
}

// UpdateStyle updates a single style attribute of the matching element.
// Unknown ids and unknown keys are a no-op.
func (c *Canvas) UpdateStyle(id, key string, value any) {
	el := c.find(id)
	if el == nil {
		return
	}
	switch key {
	case "fontSize":
		if v, ok := toFloat(value); ok {
			el.Style.FontSize = v
		}
	case "fontFamily":
		if v, ok := value.(string); ok {
			el.Style.FontFamily = v
		}
	case "color":
		if v, ok := value.(string); ok {
			el.Style.Color = v
		}
	case "fontWeight":
		if v, ok := value.(string); ok {
			el.Style.FontWeight = v
		}
	case "fontStyle":
		if v, ok := value.(string); ok {
			el.Style.FontStyle = v
		}
	case "textDecoration":
		if v, ok := value.(string); ok {
			el.Style.TextDecoration = v
		}
	case "opacity":
		if v, ok := toFloat(value); ok {
			el.Style.Opacity = v
		}
	case "textAlign":
		if v, ok := value.(string); ok {
			el.Style.TextAlign = v
		}
	case "lineHeight":
		if v, ok := toFloat(value); ok {
			el.Style.LineHeight = v
		}
	case "letterSpacing":
		if v, ok := toFloat(value); ok {
			el.Style.LetterSpacing = v
		}
	default:
		logrus.WithField("key", key).Debug("ignoring unknown style key")
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	}
	return 0, false
}

// Select marks the element with the given id as selected. Passing "" clears
// the selection, as does an id not present in the collection.
func (c *Canvas) Select(id string) {
	if c.find(id) != nil {
		c.selected = id
		return
	}
	c.selected = ""
}

func (c *Canvas) ClearSelection() { c.selected = "" }

// DeleteSelected removes the selected element and clears the selection.
func (c *Canvas) DeleteSelected() {
	if c.selected == "" {
		return
	}
	for i, el := range c.elements {
		if el.ID == c.selected {
			c.elements = append(c.elements[:i], c.elements[i+1:]...)
			break
		}
	}
	c.selected = ""
}

// Adopt replaces the whole working copy with a loaded template snapshot.
// There is no merge; the previous elements and selection are discarded.
func (c *Canvas) Adopt(elements []core.Element, width, height int) {
	c.width = width
	c.height = height
	c.elements = make([]core.Element, len(elements))
	copy(c.elements, elements)
	c.selected = ""
}

func (c *Canvas) find(id string) *core.Element {
	if id == "" {
		return nil
	}
	for i := range c.elements {
		if c.elements[i].ID == id {
			return &c.elements[i]
		}
	}
	return nil
}

// moveTo and resizeTo are the mutation points used by the interaction
// controller. Position is unclamped: elements may be dragged partially or
// fully off-canvas. Size is floored at MinElementSize on both axes.
func (c *Canvas) moveTo(id string, x, y float64) {
	if el := c.find(id); el != nil {
		el.X = x
		el.Y = y
	}
}

func (c *Canvas) resizeTo(id string, w, h float64) {
	el := c.find(id)
	if el == nil {
		return
	}
	if w < core.MinElementSize {
		w = core.MinElementSize
	}
	if h < core.MinElementSize {
		h = core.MinElementSize
	}
	el.Width = w
	el.Height = h
}
