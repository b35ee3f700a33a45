package app

import (
	"time"

	"github.com/dshills/areaselect/internal/input/pointer"
	"github.com/dshills/areaselect/internal/renderer/backend"
)

// mouseTranslator turns terminal mouse reports into pointer events.
// Terminals report which buttons are held, so transitions are found by
// comparing each report with the previous one.
type mouseTranslator struct {
	held backend.ButtonMask
	now  func() time.Time
}

func (t *mouseTranslator) translate(ev backend.Event) []*pointer.Event {
	pos := pointer.Position{X: ev.MouseX, Y: ev.MouseY}
	cur := ev.Buttons.Buttons()
	wheel := ev.Buttons.Wheel()
	prev := t.held
	t.held = cur

	var out []*pointer.Event
	if wheel != backend.ButtonNone {
		out = append(out, t.event(ev, pointer.TypeWheel, pos, pointer.ButtonNone, wheelDelta(wheel)))
	}

	switch {
	case prev == backend.ButtonNone && cur != backend.ButtonNone:
		out = append(out, t.event(ev, pointer.TypeMouseDown, pos, buttonOf(cur), pointer.Position{}))
	case prev != backend.ButtonNone && cur == backend.ButtonNone:
		out = append(out, t.event(ev, pointer.TypeMouseUp, pos, buttonOf(prev), pointer.Position{}))
	case prev != cur:
		out = append(out,
			t.event(ev, pointer.TypeMouseUp, pos, buttonOf(prev), pointer.Position{}),
			t.event(ev, pointer.TypeMouseDown, pos, buttonOf(cur), pointer.Position{}),
		)
	case wheel == backend.ButtonNone:
		out = append(out, t.event(ev, pointer.TypeMouseMove, pos, pointer.ButtonNone, pointer.Position{}))
	}
	return out
}

func (t *mouseTranslator) event(src backend.Event, typ pointer.Type, pos pointer.Position, b pointer.Button, wheel pointer.Position) *pointer.Event {
	pe := pointer.NewEvent(typ, pos)
	pe.Button = b
	pe.Modifiers = src.Mod
	pe.WheelDelta = wheel
	if t.now != nil {
		pe.Timestamp = t.now()
	}
	return pe
}

// buttonOf picks the reported button, primary first.
func buttonOf(m backend.ButtonMask) pointer.Button {
	switch {
	case m&backend.ButtonPrimary != 0:
		return pointer.ButtonLeft
	case m&backend.ButtonSecondary != 0:
		return pointer.ButtonRight
	case m&backend.ButtonMiddle != 0:
		return pointer.ButtonMiddle
	default:
		return pointer.ButtonNone
	}
}

func wheelDelta(m backend.ButtonMask) pointer.Position {
	var d pointer.Position
	if m&backend.WheelUp != 0 {
		d.Y--
	}
	if m&backend.WheelDown != 0 {
		d.Y++
	}
	if m&backend.WheelLeft != 0 {
		d.X--
	}
	if m&backend.WheelRight != 0 {
		d.X++
	}
	return d
}

func pointerDelta(x, y int) pointer.Position {
	return pointer.Position{X: x, Y: y}
}
