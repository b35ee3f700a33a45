package pointer

import (
	"time"

	"github.com/dshills/areaselect/internal/input/key"
)

// Button is a pointer button code. Values follow the DOM MouseEvent.button
// numbering so that 2 is always the secondary (right) button.
type Button int8

const (
	// ButtonNone is reported by events that have no button (touch, motion).
	ButtonNone Button = -1
	// ButtonLeft is the primary button.
	ButtonLeft Button = 0
	// ButtonMiddle is the auxiliary (wheel) button.
	ButtonMiddle Button = 1
	// ButtonRight is the secondary button.
	ButtonRight Button = 2
	// ButtonBack is the back navigation button.
	ButtonBack Button = 3
	// ButtonForward is the forward navigation button.
	ButtonForward Button = 4
)

// String returns a string representation of the button.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	case ButtonBack:
		return "back"
	case ButtonForward:
		return "forward"
	default:
		return "none"
	}
}

// IsSecondary reports whether b is the secondary (context menu) button.
func (b Button) IsSecondary() bool {
	return b == ButtonRight
}

// Class is the input device class an event originated from.
type Class uint8

const (
	ClassMouse Class = iota
	ClassTouch
)

// String returns a string representation of the class.
func (c Class) String() string {
	if c == ClassTouch {
		return "touch"
	}
	return "mouse"
}

// Type identifies the kind of pointer event.
type Type uint8

const (
	TypeNone Type = iota
	TypeMouseDown
	TypeMouseMove
	TypeMouseUp
	TypeTouchStart
	TypeTouchMove
	TypeTouchEnd
	TypeWheel
)

// String returns the DOM event name for the type.
func (t Type) String() string {
	switch t {
	case TypeMouseDown:
		return "mousedown"
	case TypeMouseMove:
		return "mousemove"
	case TypeMouseUp:
		return "mouseup"
	case TypeTouchStart:
		return "touchstart"
	case TypeTouchMove:
		return "touchmove"
	case TypeTouchEnd:
		return "touchend"
	case TypeWheel:
		return "wheel"
	default:
		return "none"
	}
}

// Class returns the device class of the type.
func (t Type) Class() Class {
	switch t {
	case TypeTouchStart, TypeTouchMove, TypeTouchEnd:
		return ClassTouch
	default:
		return ClassMouse
	}
}

// IsDown reports whether t starts a gesture.
func (t Type) IsDown() bool {
	return t == TypeMouseDown || t == TypeTouchStart
}

// IsUp reports whether t ends a gesture.
func (t Type) IsUp() bool {
	return t == TypeMouseUp || t == TypeTouchEnd
}

// IsMove reports whether t is pointer motion.
func (t Type) IsMove() bool {
	return t == TypeMouseMove || t == TypeTouchMove
}

// Position represents a screen coordinate.
type Position struct {
	X int
	Y int
}

// Equal returns true if two positions are equal.
func (p Position) Equal(other Position) bool {
	return p.X == other.X && p.Y == other.Y
}

// Add returns p translated by d.
func (p Position) Add(d Position) Position {
	return Position{X: p.X + d.X, Y: p.Y + d.Y}
}

// Sub returns the vector from other to p.
func (p Position) Sub(other Position) Position {
	return Position{X: p.X - other.X, Y: p.Y - other.Y}
}

// Target is an element an event can be dispatched to.
type Target interface {
	// TargetID returns a stable identifier for the element.
	TargetID() string
}

// Event is a normalized pointer event.
type Event struct {
	// Type is the event type; it also determines the device class.
	Type Type

	// Button is the button involved, ButtonNone for touch and motion.
	Button Button

	// Position is the screen coordinate of the pointer.
	Position Position

	// Modifiers are the keyboard modifiers held during the event.
	Modifiers key.Modifier

	// Target is the element under the pointer, nil over empty space.
	Target Target

	// WheelDelta is the scroll amount of a wheel event, in cells.
	WheelDelta Position

	// Timestamp is when the event occurred.
	Timestamp time.Time

	defaultPrevented bool
	passive          bool
}

// NewEvent creates an event of the given type at pos.
// Touch and motion events get ButtonNone; presses default to ButtonLeft.
func NewEvent(t Type, pos Position) *Event {
	button := ButtonNone
	if t == TypeMouseDown || t == TypeMouseUp {
		button = ButtonLeft
	}
	return &Event{
		Type:      t,
		Button:    button,
		Position:  pos,
		Timestamp: time.Now(),
	}
}

// Class returns the device class the event originated from.
func (e *Event) Class() Class {
	return e.Type.Class()
}

// PreventDefault suppresses the host's default action for the event.
// It has no effect while the event is delivered to a passive listener.
func (e *Event) PreventDefault() {
	if e.passive {
		return
	}
	e.defaultPrevented = true
}

// DefaultPrevented reports whether a listener suppressed the default action.
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// SetPassive marks the event as being delivered to a passive listener.
// Listener targets toggle it around each listener call.
func (e *Event) SetPassive(passive bool) {
	e.passive = passive
}

// TargetID returns the target's id or "" when there is no target.
func (e *Event) TargetID() string {
	if e.Target == nil {
		return ""
	}
	return e.Target.TargetID()
}
