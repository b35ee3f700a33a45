package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dshills/areaselect/internal/event"
	"github.com/dshills/areaselect/internal/event/events"
	"github.com/dshills/areaselect/internal/input/pointer"
	"github.com/dshills/areaselect/internal/surface"
)

// PointerStore follows the pointer during an interaction.
type PointerStore struct {
	doc    surface.Listenable
	bus    event.Bus
	pub    *event.Publisher
	logger zerolog.Logger
	key    string

	moves *surface.Binding
	subs  []event.Subscription

	active   bool
	initial  pointer.Position
	current  pointer.Position
	previous pointer.Position
}

// NewPointerStore creates a PointerStore listening for moves on doc.
// It subscribes to Interaction:start and Interaction:end ahead of
// normal-priority handlers so they read up-to-date positions.
func NewPointerStore(doc surface.Listenable, bus event.Bus, opts ...Option) *PointerStore {
	cfg := buildConfig(opts)
	s := &PointerStore{
		doc:    doc,
		bus:    bus,
		pub:    event.NewPublisher(bus, "pointer-store"),
		logger: cfg.logger,
		key:    "pointer-store-" + uuid.NewString(),
	}

	start, err := event.Subscribe(bus, events.InteractionStartKey, s.handleStart, event.WithPriority(event.PriorityHigh))
	if err == nil {
		s.subs = append(s.subs, start)
	}
	end, err := event.Subscribe(bus, events.InteractionEndKey, s.handleEnd, event.WithPriority(event.PriorityHigh))
	if err == nil {
		s.subs = append(s.subs, end)
	}
	return s
}

// Active reports whether the store is following the pointer.
func (s *PointerStore) Active() bool { return s.active }

// Initial returns the position of the pointer-down.
func (s *PointerStore) Initial() pointer.Position { return s.initial }

// Current returns the latest pointer position.
func (s *PointerStore) Current() pointer.Position { return s.current }

// Previous returns the position before the latest move.
func (s *PointerStore) Previous() pointer.Position { return s.previous }

// Change returns the positions as a PointerChange.
func (s *PointerStore) Change() events.PointerChange {
	return events.PointerChange{
		Initial:  s.initial,
		Current:  s.current,
		Previous: s.previous,
	}
}

// Close detaches the store from the document and the bus.
func (s *PointerStore) Close() {
	s.stop()
	for _, sub := range s.subs {
		_ = s.bus.Unsubscribe(sub)
	}
	s.subs = nil
}

func (s *PointerStore) handleStart(_ context.Context, e event.Event[events.InteractionStart]) error {
	pos := e.Payload.Event.Position
	s.active = true
	s.initial, s.current, s.previous = pos, pos, pos

	s.moves.Release()
	s.moves = surface.NewBinding().
		Listen(s.doc, pointer.TypeMouseMove, s.key, s.handleMove, surface.ListenerOptions{Passive: true}).
		Listen(s.doc, pointer.TypeTouchMove, s.key, s.handleMove, surface.ListenerOptions{})
	return nil
}

func (s *PointerStore) handleEnd(context.Context, event.Event[events.InteractionEnd]) error {
	s.stop()
	return nil
}

func (s *PointerStore) handleMove(ev *pointer.Event) {
	if !s.active || ev.Position.Equal(s.current) {
		return
	}
	if ev.Type == pointer.TypeTouchMove {
		ev.PreventDefault()
	}
	s.previous = s.current
	s.current = ev.Position

	err := event.Emit(context.Background(), s.pub, events.PointerStoreUpdatedKey, events.Update{
		Event: ev,
		Data:  s.Change(),
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("publish pointer update")
	}
}

func (s *PointerStore) stop() {
	s.moves.Release()
	s.active = false
	s.initial, s.current, s.previous = pointer.Position{}, pointer.Position{}, pointer.Position{}
}
