package app

import (
	"context"
	"fmt"

	"github.com/dshills/areaselect/internal/event"
	"github.com/dshills/areaselect/internal/event/events"
	"github.com/dshills/areaselect/internal/renderer/backend"
	"github.com/dshills/areaselect/internal/surface"
)

var (
	borderStyle   = backend.Style{Fg: backend.ColorGray}
	titleStyle    = backend.Style{Fg: backend.ColorWhite, Attrs: backend.AttrBold}
	itemStyle     = backend.Style{Fg: backend.ColorWhite}
	selectedStyle = backend.Style{Fg: backend.ColorCyan, Attrs: backend.AttrReverse}
	boxStyle      = backend.Style{Fg: backend.ColorYellow}
	statusStyle   = backend.Style{Fg: backend.ColorGray}
)

// view draws the application state onto the backend.
type view struct {
	app *Application
	box events.SelectionBox
	sub event.Subscription
}

func newView(app *Application) *view {
	v := &view{app: app}
	// Runs after the selector and mover so a frame sees their results.
	sub, err := event.Subscribe(app.bus, events.SelectionBoxKey, v.handleBox, event.WithPriority(event.PriorityLow))
	if err != nil {
		app.logger.Error().Err(err).Msg("subscribe selection box")
	}
	v.sub = sub
	return v
}

func (v *view) handleBox(_ context.Context, e event.Event[events.SelectionBox]) error {
	v.box = e.Payload
	return nil
}

func (v *view) render() {
	b := v.app.backend
	b.Clear()
	v.drawBorder()
	v.drawElements()
	if v.box.Visible {
		v.drawBox()
	}
	v.drawStatus()
	b.Show()
}

func (v *view) drawBorder() {
	b := v.app.backend
	c := v.app.cfg.Area
	right, bottom := c.X+c.Width-1, c.Y+c.Height-1
	for x := c.X + 1; x < right; x++ {
		b.SetCell(x, c.Y, backend.Cell{Rune: '-', Style: borderStyle})
		b.SetCell(x, bottom, backend.Cell{Rune: '-', Style: borderStyle})
	}
	for y := c.Y + 1; y < bottom; y++ {
		b.SetCell(c.X, y, backend.Cell{Rune: '|', Style: borderStyle})
		b.SetCell(right, y, backend.Cell{Rune: '|', Style: borderStyle})
	}
	for _, p := range [][2]int{{c.X, c.Y}, {right, c.Y}, {c.X, bottom}, {right, bottom}} {
		b.SetCell(p[0], p[1], backend.Cell{Rune: '+', Style: borderStyle})
	}
	backend.SetString(b, c.X+2, c.Y, " areaselect ", titleStyle)
}

func (v *view) drawElements() {
	area := v.app.area
	clip := area.Bounds()
	for _, el := range area.Elements() {
		style := itemStyle
		if v.app.selection.Has(el) {
			style = selectedStyle
		}
		r := area.ToScreen(el.Bounds)
		label := []rune(el.Label)
		for y := r.Y; y < r.Bottom(); y++ {
			for x := r.X; x < r.Right(); x++ {
				if !clip.Contains(pointerDelta(x, y)) {
					continue
				}
				ch := ' '
				if i := x - r.X; y == r.Y && i < len(label) {
					ch = label[i]
				}
				v.app.backend.SetCell(x, y, backend.Cell{Rune: ch, Style: style})
			}
		}
	}
}

func (v *view) drawBox() {
	clip := v.app.area.Bounds()
	r := surface.Rect{X: v.box.X, Y: v.box.Y, W: v.box.W, H: v.box.H}
	set := func(x, y int) {
		if clip.Contains(pointerDelta(x, y)) {
			v.app.backend.SetCell(x, y, backend.Cell{Rune: '.', Style: boxStyle})
		}
	}
	for x := r.X; x < r.Right(); x++ {
		set(x, r.Y)
		set(x, r.Bottom()-1)
	}
	for y := r.Y; y < r.Bottom(); y++ {
		set(r.X, y)
		set(r.Right()-1, y)
	}
}

func (v *view) drawStatus() {
	c := v.app.cfg.Area
	scroll := v.app.scroll.Offset()
	line := fmt.Sprintf("%s | selected %d | scroll %d,%d | q quits",
		v.state(), v.app.selection.Len(), scroll.X, scroll.Y)
	backend.SetString(v.app.backend, c.X, c.Y+c.Height, line, statusStyle)
}

func (v *view) state() string {
	switch {
	case v.app.interaction.IsDragging():
		return "dragging"
	case v.app.interaction.IsInteracting():
		return "selecting"
	default:
		return "idle"
	}
}
