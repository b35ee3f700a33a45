package surface

import "github.com/dshills/areaselect/internal/input/pointer"

// Element is a selectable item inside an Area.
// Bounds are in content coordinates, independent of the area's scroll offset.
type Element struct {
	id     string
	Label  string
	Bounds Rect
}

// NewElement creates an element.
func NewElement(id, label string, bounds Rect) *Element {
	return &Element{id: id, Label: label, Bounds: bounds}
}

// ID returns the element id.
func (e *Element) ID() string {
	return e.id
}

// TargetID implements pointer.Target.
func (e *Element) TargetID() string {
	return e.id
}

// MoveBy translates the element.
func (e *Element) MoveBy(d pointer.Position) {
	e.Bounds = e.Bounds.Translate(d)
}
