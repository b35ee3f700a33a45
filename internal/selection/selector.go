package selection

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/dshills/areaselect/internal/event"
	"github.com/dshills/areaselect/internal/event/events"
	"github.com/dshills/areaselect/internal/input/pointer"
	"github.com/dshills/areaselect/internal/surface"
)

// PointerSource reports pointer positions of the running interaction.
type PointerSource interface {
	Current() pointer.Position
}

// KeySource reports whether a multi-select modifier is held.
type KeySource interface {
	IsMultiSelectKeyPressed(ev *pointer.Event) bool
}

// Selector turns selecting interactions into selection changes.
//
// On start the selection is cleared unless a multi-select key is held, in
// which case the existing selection is kept. Each update selects the
// elements intersecting the box from the press to the pointer; elements
// that leave the box are deselected unless they were selected before the
// gesture. A press released without movement selects the pressed element,
// or toggles it while a multi-select key is held.
type Selector struct {
	area    *surface.Area
	set     *Set
	pointer PointerSource
	keys    KeySource
	bus     event.Bus
	pub     *event.Publisher
	logger  zerolog.Logger
	subs    []event.Subscription

	active bool
	multi  bool
	moved  bool
	press  *pointer.Event
	anchor pointer.Position
	prior  map[string]bool
	box    surface.Rect
}

// NewSelector creates a Selector and subscribes it to the interaction
// topics on bus.
func NewSelector(bus event.Bus, area *surface.Area, set *Set, ptr PointerSource, keys KeySource, logger zerolog.Logger) *Selector {
	s := &Selector{
		area:    area,
		set:     set,
		pointer: ptr,
		keys:    keys,
		bus:     bus,
		pub:     event.NewPublisher(bus, "selector"),
		logger:  logger,
	}
	if sub, err := event.Subscribe(bus, events.InteractionStartKey, s.handleStart); err == nil {
		s.subs = append(s.subs, sub)
	}
	if sub, err := event.Subscribe(bus, events.InteractionUpdateKey, s.handleUpdate); err == nil {
		s.subs = append(s.subs, sub)
	}
	if sub, err := event.Subscribe(bus, events.InteractionEndKey, s.handleEnd); err == nil {
		s.subs = append(s.subs, sub)
	}
	return s
}

// Box returns the current selection box in content coordinates and whether
// one is being drawn.
func (s *Selector) Box() (surface.Rect, bool) {
	return s.box, s.active && s.moved
}

func (s *Selector) handleStart(ctx context.Context, e event.Event[events.InteractionStart]) error {
	if e.Payload.IsDragging {
		s.active = false
		return nil
	}
	ev := e.Payload.Event

	s.active = true
	s.moved = false
	s.press = ev
	s.anchor = s.area.ToContent(ev.Position)
	s.box = surface.Rect{X: s.anchor.X, Y: s.anchor.Y, W: 1, H: 1}
	s.multi = s.keys.IsMultiSelectKeyPressed(ev)

	s.prior = make(map[string]bool)
	if s.multi {
		for _, t := range s.set.Items() {
			s.prior[t.TargetID()] = true
		}
	} else {
		s.set.Clear(ctx)
	}
	return nil
}

func (s *Selector) handleUpdate(ctx context.Context, e event.Event[events.InteractionUpdate]) error {
	if !s.active || e.Payload.IsDragging {
		return nil
	}
	s.moved = true

	current := s.area.ToContent(s.pointer.Current())
	s.box = surface.RectFromPoints(s.anchor, current)

	inside := make(map[string]bool)
	for _, el := range s.area.Intersecting(s.box) {
		inside[el.ID()] = true
		s.set.Add(ctx, el)
	}
	for _, el := range s.area.Elements() {
		if !inside[el.ID()] && !s.prior[el.ID()] {
			s.set.Remove(ctx, el)
		}
	}

	s.publishBox(ctx, true)
	return nil
}

func (s *Selector) handleEnd(ctx context.Context, _ event.Event[events.InteractionEnd]) error {
	if !s.active {
		return nil
	}
	s.active = false

	if !s.moved {
		if t := s.press.Target; t != nil {
			if s.multi {
				s.set.Toggle(ctx, t)
			} else {
				s.set.Add(ctx, t)
			}
		}
		return nil
	}
	s.publishBox(ctx, false)
	return nil
}

func (s *Selector) publishBox(ctx context.Context, visible bool) {
	screen := s.area.ToScreen(s.box)
	err := event.Emit(ctx, s.pub, events.SelectionBoxKey, events.SelectionBox{
		X: screen.X, Y: screen.Y, W: screen.W, H: screen.H,
		Visible: visible,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("publish selection box")
	}
}

// Close unsubscribes the selector.
func (s *Selector) Close() {
	for _, sub := range s.subs {
		_ = s.bus.Unsubscribe(sub)
	}
	s.subs = nil
}
