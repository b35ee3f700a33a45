package interaction

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dshills/areaselect/internal/event"
	"github.com/dshills/areaselect/internal/event/events"
	"github.com/dshills/areaselect/internal/input/pointer"
	"github.com/dshills/areaselect/internal/surface"
)

// KeyModifiers reports modifier-key state.
type KeyModifiers interface {
	IsMultiSelectKeyPressed(ev *pointer.Event) bool
}

// Membership reports whether a target is part of the current selection.
type Membership interface {
	Has(t pointer.Target) bool
}

// Coordinator bundles the collaborators an Interaction needs.
type Coordinator interface {
	Bus() event.Bus
	Keys() KeyModifiers
	Selection() Membership
}

// Option configures an Interaction.
type Option func(*Interaction)

// WithStopForMove makes a pointer-down on a selected target start a drag
// instead of a new selection.
func WithStopForMove(enabled bool) Option {
	return func(i *Interaction) {
		i.stopForMove = enabled
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(i *Interaction) {
		i.logger = l
	}
}

// Interaction is the pointer interaction state machine.
type Interaction struct {
	area  surface.Listenable
	doc   surface.Listenable
	coord Coordinator
	pub   *event.Publisher

	stopForMove bool
	logger      zerolog.Logger

	// key identifies this instance's listeners on the shared targets.
	key string

	armed   *surface.Binding
	pending *surface.Binding
	subs    []event.Subscription

	isInteracting bool
	isDragging    bool
}

// New creates an Interaction for area and subscribes it to the store
// topics. No listeners are attached until Init is called.
func New(area, doc surface.Listenable, coord Coordinator, opts ...Option) *Interaction {
	i := &Interaction{
		area:   area,
		doc:    doc,
		coord:  coord,
		pub:    event.NewPublisher(coord.Bus(), "interaction"),
		logger: zerolog.Nop(),
		key:    "interaction-" + uuid.NewString(),
	}
	for _, opt := range opts {
		opt(i)
	}

	for _, k := range []event.Key[events.Update]{events.PointerStoreUpdatedKey, events.AreaScrollKey} {
		sub, err := event.Subscribe(coord.Bus(), k, i.handleUpdate)
		if err != nil {
			i.logger.Error().Err(err).Str("topic", k.String()).Msg("subscribe failed")
			continue
		}
		i.subs = append(i.subs, sub)
	}
	return i
}

// Init arms the pointer-down listeners and publishes Interaction:init.
// Any previous registration is removed first.
func (i *Interaction) Init(ctx context.Context) {
	i.Stop()

	i.armed = surface.NewBinding().
		Listen(i.area, pointer.TypeMouseDown, i.key, i.Start, surface.ListenerOptions{}).
		Listen(i.area, pointer.TypeTouchStart, i.key, i.Start, surface.ListenerOptions{Passive: false})

	i.logger.Debug().Int("listeners", i.armed.Len()).Msg("armed")
	emit(ctx, i, events.InteractionInitKey, events.InteractionInit{})
}

// Start handles a pointer-down on the area.
//
// The drag classification is assigned on every call rather than only set
// when it holds: a second pointer-down that arrives before Reset, for
// example from another instance sharing the surface, is classified on its
// own and does not inherit a drag from the earlier press.
func (i *Interaction) Start(ev *pointer.Event) {
	if ev.Type == pointer.TypeTouchStart {
		ev.PreventDefault()
	}
	if ev.Button == pointer.ButtonRight {
		return
	}

	i.isDragging = i.stopForMove &&
		!i.coord.Keys().IsMultiSelectKeyPressed(ev) &&
		i.coord.Selection().Has(ev.Target)
	i.isInteracting = true

	i.logger.Debug().
		Str("type", ev.Type.String()).
		Str("target", ev.TargetID()).
		Bool("dragging", i.isDragging).
		Msg("start")

	ctx := context.Background()
	emit(ctx, i, events.InteractionStartKey, events.InteractionStart{Event: ev, IsDragging: i.isDragging})

	if i.pending == nil {
		i.pending = surface.NewBinding()
	}
	i.pending.
		Listen(i.doc, pointer.TypeMouseUp, i.key, i.Reset, surface.ListenerOptions{}).
		Listen(i.doc, pointer.TypeTouchEnd, i.key, i.Reset, surface.ListenerOptions{})
}

// Stop clears the state and removes every listener. It does not publish.
func (i *Interaction) Stop() {
	i.isInteracting = false
	i.isDragging = false
	i.armed.Release()
	i.pending.Release()
}

// Update republishes a store change as Interaction:update while an
// interaction runs. It does nothing when idle.
func (i *Interaction) Update(ctx context.Context, u events.Update) {
	if !i.isInteracting {
		return
	}
	emit(ctx, i, events.InteractionUpdateKey, events.InteractionUpdate{
		Event:      u.Event,
		Data:       u.Data,
		IsDragging: i.isDragging,
	})
}

// Reset handles a pointer-up: it stops, re-arms and then publishes
// Interaction:end.
func (i *Interaction) Reset(ev *pointer.Event) {
	ctx := context.Background()
	i.Stop()
	i.Init(ctx)
	i.logger.Debug().Msg("end")
	emit(ctx, i, events.InteractionEndKey, events.InteractionEnd{Event: ev})
}

// Close stops the interaction and drops its bus subscriptions.
func (i *Interaction) Close() {
	i.Stop()
	bus := i.coord.Bus()
	for _, sub := range i.subs {
		if err := bus.Unsubscribe(sub); err != nil {
			i.logger.Warn().Err(err).Str("topic", sub.Topic().String()).Msg("unsubscribe failed")
		}
	}
	i.subs = nil
}

// IsInteracting reports whether a gesture is in progress.
func (i *Interaction) IsInteracting() bool { return i.isInteracting }

// IsDragging reports whether the current gesture moves the selection.
func (i *Interaction) IsDragging() bool { return i.isDragging }

// IsArmed reports whether the pointer-down listeners are attached.
func (i *Interaction) IsArmed() bool { return i.armed.Active() }

// SetStopForMove changes the drag classification for later gestures.
func (i *Interaction) SetStopForMove(enabled bool) { i.stopForMove = enabled }

func (i *Interaction) handleUpdate(ctx context.Context, e event.Event[events.Update]) error {
	i.Update(ctx, e.Payload)
	return nil
}

// emit publishes through the interaction's publisher. Errors returned by
// subscribers are logged; they never interrupt a transition.
func emit[T any](ctx context.Context, i *Interaction, k event.Key[T], payload T) {
	if err := event.Emit(ctx, i.pub, k, payload); err != nil {
		i.logger.Error().Err(err).Str("topic", k.String()).Msg("publish failed")
	}
}
