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

// ScrollStore scrolls an area on wheel events.
type ScrollStore struct {
	area   *surface.Area
	pub    *event.Publisher
	logger zerolog.Logger
	key    string

	wheel *surface.Binding
}

// NewScrollStore creates a ScrollStore for area. Call Init to attach it.
func NewScrollStore(area *surface.Area, bus event.Bus, opts ...Option) *ScrollStore {
	cfg := buildConfig(opts)
	return &ScrollStore{
		area:   area,
		pub:    event.NewPublisher(bus, "scroll-store"),
		logger: cfg.logger,
		key:    "scroll-store-" + uuid.NewString(),
	}
}

// Init attaches the wheel listener. Calling it again is a no-op.
func (s *ScrollStore) Init() {
	if s.wheel.Active() {
		return
	}
	s.wheel = surface.NewBinding().
		Listen(s.area, pointer.TypeWheel, s.key, s.handleWheel, surface.ListenerOptions{})
}

// Stop detaches the wheel listener.
func (s *ScrollStore) Stop() {
	s.wheel.Release()
}

// Offset returns the area's scroll offset.
func (s *ScrollStore) Offset() pointer.Position {
	return s.area.Scroll()
}

// ScrollBy scrolls the area by delta and publishes Area:scroll when the
// offset changed. ev is the triggering event and may be nil.
func (s *ScrollStore) ScrollBy(ctx context.Context, ev *pointer.Event, delta pointer.Position) pointer.Position {
	applied := s.area.ScrollBy(delta)
	if applied == (pointer.Position{}) {
		return applied
	}

	s.logger.Debug().Int("dx", applied.X).Int("dy", applied.Y).Msg("scrolled")
	err := event.Emit(ctx, s.pub, events.AreaScrollKey, events.Update{
		Event: ev,
		Data:  events.ScrollChange{Offset: s.area.Scroll(), Delta: applied},
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("publish scroll")
	}
	return applied
}

func (s *ScrollStore) handleWheel(ev *pointer.Event) {
	if applied := s.ScrollBy(context.Background(), ev, ev.WheelDelta); applied != (pointer.Position{}) {
		ev.PreventDefault()
	}
}
