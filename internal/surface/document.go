package surface

import "github.com/dshills/areaselect/internal/input/pointer"

// Document is the root listener target. Listeners attached here see every
// event, including those released outside the area.
type Document struct {
	*Target

	area *Area
}

// NewDocument creates a document owning area.
func NewDocument(area *Area) *Document {
	return &Document{Target: NewTarget(), area: area}
}

// Area returns the document's interactive area.
func (d *Document) Area() *Area {
	return d.area
}

// Dispatch resolves the event target, delivers the event to the area when
// the pointer is inside it, then to the document. It reports whether a
// listener prevented the default action.
func (d *Document) Dispatch(ev *pointer.Event) bool {
	if ev.Target == nil {
		if el := d.area.HitTest(ev.Position); el != nil {
			ev.Target = el
		}
	}
	if d.area.Bounds().Contains(ev.Position) {
		d.area.Dispatch(ev)
	}
	d.Target.Dispatch(ev)
	return ev.DefaultPrevented()
}
