package selection

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/dshills/areaselect/internal/event"
	"github.com/dshills/areaselect/internal/event/events"
	"github.com/dshills/areaselect/internal/input/pointer"
	"github.com/dshills/areaselect/internal/surface"
)

// Mover drags the selected elements during dragging interactions.
type Mover struct {
	set    *Set
	bus    event.Bus
	pub    *event.Publisher
	logger zerolog.Logger
	sub    event.Subscription
}

// NewMover creates a Mover subscribed to Interaction:update.
func NewMover(bus event.Bus, set *Set, logger zerolog.Logger) *Mover {
	m := &Mover{
		set:    set,
		bus:    bus,
		pub:    event.NewPublisher(bus, "mover"),
		logger: logger,
	}
	m.sub, _ = event.Subscribe(bus, events.InteractionUpdateKey, m.handleUpdate)
	return m
}

func (m *Mover) handleUpdate(ctx context.Context, e event.Event[events.InteractionUpdate]) error {
	if !e.Payload.IsDragging {
		return nil
	}

	var delta pointer.Position
	switch c := e.Payload.Data.(type) {
	case events.PointerChange:
		delta = c.Delta()
	case events.ScrollChange:
		// Keep the selection under the pointer while the content scrolls.
		delta = c.Delta
	}
	m.Move(ctx, delta)
	return nil
}

// Move moves every selected element by delta, limited so no element
// leaves the top-left edge of the content. It returns the applied delta.
func (m *Mover) Move(ctx context.Context, delta pointer.Position) pointer.Position {
	var moved []*surface.Element
	for _, t := range m.set.Items() {
		if el, ok := t.(*surface.Element); ok {
			moved = append(moved, el)
		}
	}
	for _, el := range moved {
		delta.X = max(delta.X, -el.Bounds.X)
		delta.Y = max(delta.Y, -el.Bounds.Y)
	}
	if len(moved) == 0 || delta == (pointer.Position{}) {
		return pointer.Position{}
	}

	targets := make([]pointer.Target, 0, len(moved))
	for _, el := range moved {
		el.MoveBy(delta)
		targets = append(targets, el)
	}

	if err := event.Emit(ctx, m.pub, events.DragMovedKey, events.DragMoved{Targets: targets, Delta: delta}); err != nil {
		m.logger.Error().Err(err).Msg("publish drag")
	}
	return delta
}

// Close unsubscribes the mover.
func (m *Mover) Close() {
	if m.sub != nil {
		_ = m.bus.Unsubscribe(m.sub)
	}
}
