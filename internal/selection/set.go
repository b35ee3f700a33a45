package selection

import (
	"context"
	"slices"

	"github.com/rs/zerolog"

	"github.com/dshills/areaselect/internal/event"
	"github.com/dshills/areaselect/internal/event/events"
	"github.com/dshills/areaselect/internal/input/pointer"
)

// Set is the ordered set of selected targets, keyed by target id.
type Set struct {
	items  []pointer.Target
	pub    *event.Publisher
	logger zerolog.Logger
}

// NewSet creates an empty selection publishing on bus.
func NewSet(bus event.Bus, logger zerolog.Logger) *Set {
	return &Set{
		pub:    event.NewPublisher(bus, "selection"),
		logger: logger,
	}
}

// Has reports whether t is selected. A nil target is never selected.
func (s *Set) Has(t pointer.Target) bool {
	return t != nil && s.index(t.TargetID()) >= 0
}

// Add selects t and publishes Selected:added. It returns false when t was
// already selected.
func (s *Set) Add(ctx context.Context, t pointer.Target) bool {
	if t == nil || s.Has(t) {
		return false
	}
	s.items = append(s.items, t)
	s.emit(ctx, events.SelectedAddedKey, t)
	return true
}

// Remove deselects t and publishes Selected:removed.
func (s *Set) Remove(ctx context.Context, t pointer.Target) bool {
	if t == nil {
		return false
	}
	i := s.index(t.TargetID())
	if i < 0 {
		return false
	}
	removed := s.items[i]
	s.items = slices.Delete(s.items, i, i+1)
	s.emit(ctx, events.SelectedRemovedKey, removed)
	return true
}

// Toggle flips t's membership and reports whether it is now selected.
func (s *Set) Toggle(ctx context.Context, t pointer.Target) bool {
	if s.Remove(ctx, t) {
		return false
	}
	return s.Add(ctx, t)
}

// Clear deselects everything.
func (s *Set) Clear(ctx context.Context) {
	for len(s.items) > 0 {
		s.Remove(ctx, s.items[len(s.items)-1])
	}
}

// Items returns the selected targets in selection order.
func (s *Set) Items() []pointer.Target {
	return slices.Clone(s.items)
}

// Len returns the number of selected targets.
func (s *Set) Len() int {
	return len(s.items)
}

func (s *Set) index(id string) int {
	return slices.IndexFunc(s.items, func(t pointer.Target) bool { return t.TargetID() == id })
}

func (s *Set) emit(ctx context.Context, k event.Key[events.SelectionChanged], t pointer.Target) {
	if err := event.Emit(ctx, s.pub, k, events.SelectionChanged{Target: t}); err != nil {
		s.logger.Error().Err(err).Str("topic", k.String()).Msg("publish selection change")
	}
}
