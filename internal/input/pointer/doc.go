// Package pointer normalizes mouse and touch input into a single event type.
//
// Every input class the interactive surface listens to (mouse presses,
// touches, motion, wheel) is represented by one Event. The event records the
// origin class through its Type, the button that was pressed using DOM
// button codes, the element under the pointer and the modifier keys held at
// the time.
//
// # Default Actions
//
// An event may have a default action the host performs after dispatch, for
// example the synthetic mouse event a host generates after a touch. A
// listener suppresses it with PreventDefault. Listeners registered as
// passive cannot prevent the default action; their PreventDefault calls are
// ignored.
//
//	ev := pointer.NewEvent(pointer.TypeTouchStart, pointer.Position{X: 4, Y: 2})
//	ev.PreventDefault()
//	if ev.DefaultPrevented() {
//	    // the host skips its synthetic mouse event
//	}
package pointer
