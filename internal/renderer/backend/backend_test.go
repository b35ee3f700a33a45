package backend

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/areaselect/internal/input/key"
)

func TestNullBackendInit(t *testing.T) {
	b := NewNullBackend(80, 24)
	if err := b.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	w, h := b.Size()
	if w != 80 || h != 24 {
		t.Errorf("expected size (80, 24), got (%d, %d)", w, h)
	}
	if got := b.GetCell(0, 0); got != EmptyCell() {
		t.Errorf("GetCell(0, 0) = %+v, want empty", got)
	}
}

func TestNullBackendSetGetCell(t *testing.T) {
	b := NewNullBackend(10, 4)
	b.Init()

	cell := Cell{Rune: 'X', Style: Style{Fg: ColorRed, Attrs: AttrBold}}
	b.SetCell(3, 2, cell)

	if got := b.GetCell(3, 2); got != cell {
		t.Errorf("GetCell = %+v, want %+v", got, cell)
	}

	// Out of bounds is ignored.
	b.SetCell(-1, 0, cell)
	b.SetCell(100, 0, cell)
	if got := b.GetCell(-1, 0); got != EmptyCell() {
		t.Error("out of bounds should return empty cell")
	}
}

func TestSetString(t *testing.T) {
	b := NewNullBackend(10, 2)
	b.Init()

	end := SetString(b, 2, 1, "abc", DefaultStyle)
	if end != 5 {
		t.Errorf("SetString end = %d, want 5", end)
	}
	if got := b.Line(1); got != "  abc     " {
		t.Errorf("Line(1) = %q", got)
	}
	if got := b.Line(5); got != "" {
		t.Errorf("Line(5) = %q, want empty", got)
	}

	b.Clear()
	if got := b.Line(1); got != "          " {
		t.Errorf("after Clear Line(1) = %q", got)
	}
}

func TestNullBackendEvents(t *testing.T) {
	b := NewNullBackend(10, 2)
	b.Init()

	b.PostEvent(Event{Type: EventMouse, MouseX: 1, MouseY: 1, Buttons: ButtonPrimary})
	b.PostInterrupt("reload")
	b.Resize(20, 5)

	if ev := b.PollEvent(); ev.Type != EventMouse || ev.Buttons != ButtonPrimary {
		t.Errorf("first event = %+v", ev)
	}
	if ev := b.PollEvent(); ev.Type != EventInterrupt || ev.Data != "reload" {
		t.Errorf("second event = %+v", ev)
	}
	if ev := b.PollEvent(); ev.Type != EventResize || ev.Width != 20 || ev.Height != 5 {
		t.Errorf("third event = %+v", ev)
	}
	if w, h := b.Size(); w != 20 || h != 5 {
		t.Errorf("Size = (%d, %d) after resize", w, h)
	}
}

func TestNullBackendMouseAndShow(t *testing.T) {
	b := NewNullBackend(1, 1)
	b.EnableMouse()
	if !b.MouseEnabled() {
		t.Error("mouse should be enabled")
	}
	b.DisableMouse()
	if b.MouseEnabled() {
		t.Error("mouse should be disabled")
	}
	b.Show()
	b.Show()
	if b.Shows() != 2 {
		t.Errorf("Shows = %d, want 2", b.Shows())
	}
}

func TestButtonMask(t *testing.T) {
	m := ButtonPrimary | WheelDown
	if m.Buttons() != ButtonPrimary {
		t.Errorf("Buttons() = %v", m.Buttons())
	}
	if m.Wheel() != WheelDown {
		t.Errorf("Wheel() = %v", m.Wheel())
	}
	if ButtonNone.Buttons() != ButtonNone {
		t.Error("ButtonNone has no buttons")
	}
}

func TestConvertMouseEvent(t *testing.T) {
	tests := []struct {
		name    string
		buttons tcell.ButtonMask
		mod     tcell.ModMask
		want    ButtonMask
		wantMod key.Modifier
	}{
		{"primary", tcell.Button1, tcell.ModNone, ButtonPrimary, key.ModNone},
		{"secondary", tcell.Button2, tcell.ModNone, ButtonSecondary, key.ModNone},
		{"middle", tcell.Button3, tcell.ModNone, ButtonMiddle, key.ModNone},
		{"wheel", tcell.WheelDown, tcell.ModNone, WheelDown, key.ModNone},
		{"ctrl drag", tcell.Button1, tcell.ModCtrl, ButtonPrimary, key.ModCtrl},
		{"release", tcell.ButtonNone, tcell.ModShift | tcell.ModAlt, ButtonNone, key.ModShift | key.ModAlt},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := convertEvent(tcell.NewEventMouse(7, 3, tt.buttons, tt.mod))
			if ev.Type != EventMouse {
				t.Fatalf("Type = %v, want EventMouse", ev.Type)
			}
			if ev.MouseX != 7 || ev.MouseY != 3 {
				t.Errorf("position = (%d, %d), want (7, 3)", ev.MouseX, ev.MouseY)
			}
			if ev.Buttons != tt.want {
				t.Errorf("Buttons = %v, want %v", ev.Buttons, tt.want)
			}
			if ev.Mod != tt.wantMod {
				t.Errorf("Mod = %v, want %v", ev.Mod, tt.wantMod)
			}
		})
	}
}

func TestConvertKeyEvent(t *testing.T) {
	ev := convertEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))
	if ev.Type != EventKey || ev.Key != KeyRune || ev.Rune != 'q' {
		t.Errorf("rune event = %+v", ev)
	}

	ev = convertEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	if ev.Key != KeyEscape {
		t.Errorf("Key = %v, want KeyEscape", ev.Key)
	}

	ev = convertEvent(tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone))
	if ev.Key != KeyNone {
		t.Errorf("unmapped key = %v, want KeyNone", ev.Key)
	}
}

func TestConvertOtherEvents(t *testing.T) {
	ev := convertEvent(tcell.NewEventResize(100, 40))
	if ev.Type != EventResize || ev.Width != 100 || ev.Height != 40 {
		t.Errorf("resize = %+v", ev)
	}

	ev = convertEvent(tcell.NewEventInterrupt(42))
	if ev.Type != EventInterrupt || ev.Data != 42 {
		t.Errorf("interrupt = %+v", ev)
	}

	if ev := convertEvent(nil); ev.Type != EventNone {
		t.Errorf("nil event = %+v", ev)
	}
}

func TestConvertStyle(t *testing.T) {
	got := convertStyle(Style{Fg: ColorCyan, Attrs: AttrReverse | AttrBold})
	want := tcell.StyleDefault.Foreground(tcell.ColorTeal).Reverse(true).Bold(true)
	if got != want {
		t.Errorf("convertStyle = %v, want %v", got, want)
	}
	if convertStyle(DefaultStyle) != tcell.StyleDefault {
		t.Error("default style should map to tcell.StyleDefault")
	}
}
