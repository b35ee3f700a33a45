package surface

import (
	"slices"

	"github.com/dshills/areaselect/internal/input/pointer"
)

// Area is the bounded interactive region elements live in.
// Its bounds are in screen coordinates; element bounds are in content
// coordinates, shifted by the scroll offset when drawn.
type Area struct {
	*Target

	bounds   Rect
	scroll   pointer.Position
	elements []*Element
}

// NewArea creates an area covering bounds.
func NewArea(bounds Rect) *Area {
	return &Area{Target: NewTarget(), bounds: bounds}
}

// Bounds returns the area's screen rectangle.
func (a *Area) Bounds() Rect {
	return a.bounds
}

// SetBounds resizes or moves the area and re-clamps the scroll offset.
func (a *Area) SetBounds(r Rect) {
	a.bounds = r
	a.SetScroll(a.scroll)
}

// AddElement appends an element; later elements are drawn on top.
func (a *Area) AddElement(e *Element) {
	a.elements = append(a.elements, e)
}

// RemoveElement removes the element with the given id.
func (a *Area) RemoveElement(id string) bool {
	i := slices.IndexFunc(a.elements, func(e *Element) bool { return e.id == id })
	if i < 0 {
		return false
	}
	a.elements = slices.Delete(a.elements, i, i+1)
	return true
}

// Element returns the element with the given id, or nil.
func (a *Area) Element(id string) *Element {
	for _, e := range a.elements {
		if e.id == id {
			return e
		}
	}
	return nil
}

// Elements returns the elements in drawing order.
func (a *Area) Elements() []*Element {
	return slices.Clone(a.elements)
}

// Scroll returns the current scroll offset.
func (a *Area) Scroll() pointer.Position {
	return a.scroll
}

// ContentSize returns the extent covered by the elements.
func (a *Area) ContentSize() (w, h int) {
	for _, e := range a.elements {
		w = max(w, e.Bounds.Right())
		h = max(h, e.Bounds.Bottom())
	}
	return w, h
}

// SetScroll sets the scroll offset, clamped so the content never scrolls
// past its extent.
func (a *Area) SetScroll(p pointer.Position) {
	w, h := a.ContentSize()
	a.scroll = pointer.Position{
		X: clamp(p.X, 0, max(0, w-a.bounds.W)),
		Y: clamp(p.Y, 0, max(0, h-a.bounds.H)),
	}
}

// ScrollBy scrolls by d and returns the offset change actually applied.
func (a *Area) ScrollBy(d pointer.Position) pointer.Position {
	before := a.scroll
	a.SetScroll(a.scroll.Add(d))
	return a.scroll.Sub(before)
}

// ToContent converts a screen position to content coordinates.
func (a *Area) ToContent(p pointer.Position) pointer.Position {
	return p.Sub(a.bounds.Origin()).Add(a.scroll)
}

// ToScreen converts a content rectangle to screen coordinates.
func (a *Area) ToScreen(r Rect) Rect {
	return r.Translate(a.bounds.Origin().Sub(a.scroll))
}

// HitTest returns the topmost element under the screen position p, or nil.
func (a *Area) HitTest(p pointer.Position) *Element {
	if !a.bounds.Contains(p) {
		return nil
	}
	c := a.ToContent(p)
	for i := len(a.elements) - 1; i >= 0; i-- {
		if a.elements[i].Bounds.Contains(c) {
			return a.elements[i]
		}
	}
	return nil
}

// Intersecting returns the elements overlapping the content rectangle r.
func (a *Area) Intersecting(r Rect) []*Element {
	var out []*Element
	for _, e := range a.elements {
		if e.Bounds.Intersects(r) {
			out = append(out, e)
		}
	}
	return out
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
