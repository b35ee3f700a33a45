// Package backend provides the terminal backend abstraction for areaselect.
package backend

import "github.com/dshills/areaselect/internal/input/key"

// Color is a terminal palette color.
type Color int

const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorGray
)

// Attr is a set of text attributes.
type Attr uint8

const (
	AttrBold Attr = 1 << iota
	AttrDim
	AttrReverse
	AttrUnderline
)

// Style is a cell's colors and attributes.
type Style struct {
	Fg    Color
	Bg    Color
	Attrs Attr
}

// DefaultStyle is the terminal's default style.
var DefaultStyle = Style{}

// Cell is a single screen cell.
type Cell struct {
	Rune  rune
	Style Style
}

// EmptyCell returns a blank cell in the default style.
func EmptyCell() Cell {
	return Cell{Rune: ' '}
}

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventMouse
	EventResize
	EventInterrupt
)

// Key represents a keyboard key.
type Key int

const (
	KeyNone Key = iota
	KeyRune     // Regular character (use Rune field)
	KeyEscape
	KeyEnter
	KeyCtrlC
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// ButtonMask is the set of mouse buttons reported by a mouse event.
// Terminals report button state, not transitions.
type ButtonMask uint16

const (
	ButtonPrimary ButtonMask = 1 << iota
	ButtonSecondary
	ButtonMiddle
	WheelUp
	WheelDown
	WheelLeft
	WheelRight

	ButtonNone ButtonMask = 0
)

// Buttons returns the button bits of m, without wheel bits.
func (m ButtonMask) Buttons() ButtonMask {
	return m & (ButtonPrimary | ButtonSecondary | ButtonMiddle)
}

// Wheel returns the wheel bits of m.
func (m ButtonMask) Wheel() ButtonMask {
	return m & (WheelUp | WheelDown | WheelLeft | WheelRight)
}

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key event fields
	Key  Key
	Rune rune
	Mod  key.Modifier

	// Mouse event fields
	MouseX, MouseY int
	Buttons        ButtonMask

	// Resize event fields
	Width, Height int

	// Interrupt payload, posted by PostInterrupt.
	Data any
}

// Backend defines the interface for terminal/display backends.
type Backend interface {
	// Init initializes the backend for use.
	// Must be called before any other methods.
	Init() error

	// Shutdown releases backend resources and restores terminal state.
	Shutdown()

	// Size returns the current terminal dimensions.
	Size() (width, height int)

	// SetCell sets a single cell at the given position.
	// Positions outside the terminal are silently ignored.
	SetCell(x, y int, cell Cell)

	// GetCell returns the cell at the given position.
	GetCell(x, y int) Cell

	// Clear clears the entire screen with the default style.
	Clear()

	// Show flushes changes to the display.
	Show()

	// PollEvent waits for and returns the next terminal event.
	PollEvent() Event

	// PostInterrupt wakes PollEvent with an EventInterrupt carrying data.
	// It is safe to call from any goroutine.
	PostInterrupt(data any)

	// EnableMouse enables mouse event reporting.
	EnableMouse()

	// DisableMouse disables mouse event reporting.
	DisableMouse()
}

// SetString writes s starting at (x, y) and returns the column after it.
func SetString(b Backend, x, y int, s string, style Style) int {
	for _, r := range s {
		b.SetCell(x, y, Cell{Rune: r, Style: style})
		x++
	}
	return x
}

// NullBackend is an in-memory backend for tests and headless runs.
type NullBackend struct {
	width, height int
	cells         [][]Cell
	mouse         bool
	shows         int
	events        chan Event
}

// NewNullBackend creates a null backend with the given dimensions.
func NewNullBackend(width, height int) *NullBackend {
	return &NullBackend{
		width:  width,
		height: height,
		events: make(chan Event, 100),
	}
}

func (b *NullBackend) Init() error {
	b.cells = make([][]Cell, b.height)
	for i := range b.cells {
		b.cells[i] = make([]Cell, b.width)
	}
	b.Clear()
	return nil
}

func (b *NullBackend) Shutdown() {}

func (b *NullBackend) Size() (int, int) {
	return b.width, b.height
}

func (b *NullBackend) SetCell(x, y int, cell Cell) {
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		b.cells[y][x] = cell
	}
}

func (b *NullBackend) GetCell(x, y int) Cell {
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		return b.cells[y][x]
	}
	return EmptyCell()
}

func (b *NullBackend) Clear() {
	for y := range b.cells {
		for x := range b.cells[y] {
			b.cells[y][x] = EmptyCell()
		}
	}
}

func (b *NullBackend) Show() { b.shows++ }

func (b *NullBackend) PollEvent() Event {
	return <-b.events
}

// PostEvent queues an event for PollEvent. Events are dropped when the
// queue is full.
func (b *NullBackend) PostEvent(event Event) {
	select {
	case b.events <- event:
	default:
	}
}

func (b *NullBackend) PostInterrupt(data any) {
	b.PostEvent(Event{Type: EventInterrupt, Data: data})
}

func (b *NullBackend) EnableMouse()  { b.mouse = true }
func (b *NullBackend) DisableMouse() { b.mouse = false }

// MouseEnabled reports whether mouse reporting is on.
func (b *NullBackend) MouseEnabled() bool { return b.mouse }

// Shows returns how many times Show was called.
func (b *NullBackend) Shows() int { return b.shows }

// Line returns row y as a string.
func (b *NullBackend) Line(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	runes := make([]rune, b.width)
	for x, c := range b.cells[y] {
		runes[x] = c.Rune
	}
	return string(runes)
}

// Resize simulates a terminal resize and queues an EventResize.
func (b *NullBackend) Resize(width, height int) {
	b.width = width
	b.height = height
	_ = b.Init()
	b.PostEvent(Event{Type: EventResize, Width: width, Height: height})
}
