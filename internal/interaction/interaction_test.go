package interaction

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/areaselect/internal/event"
	"github.com/dshills/areaselect/internal/event/events"
	"github.com/dshills/areaselect/internal/input/pointer"
	"github.com/dshills/areaselect/internal/surface"
)

type fakeKeys struct {
	pressed bool
	calls   int
}

func (k *fakeKeys) IsMultiSelectKeyPressed(*pointer.Event) bool {
	k.calls++
	return k.pressed
}

type fakeSelection map[string]bool

func (s fakeSelection) Has(t pointer.Target) bool {
	return t != nil && s[t.TargetID()]
}

type fakeCoordinator struct {
	bus       event.Bus
	keys      *fakeKeys
	selection fakeSelection
}

func (c *fakeCoordinator) Bus() event.Bus        { return c.bus }
func (c *fakeCoordinator) Keys() KeyModifiers    { return c.keys }
func (c *fakeCoordinator) Selection() Membership { return c.selection }

type target string

func (t target) TargetID() string { return string(t) }

type harness struct {
	coord  *fakeCoordinator
	area   *surface.Target
	doc    *surface.Target
	it     *Interaction
	topics []string
	starts []events.InteractionStart
	update []events.InteractionUpdate
	ends   []events.InteractionEnd
}

func newHarness(t *testing.T, opts ...Option) *harness {
	t.Helper()
	h := &harness{
		coord: &fakeCoordinator{
			bus:       event.NewBus(),
			keys:      &fakeKeys{},
			selection: fakeSelection{},
		},
		area: surface.NewTarget(),
		doc:  surface.NewTarget(),
	}
	h.it = New(h.area, h.doc, h.coord, opts...)

	bus := h.coord.bus
	_, err := bus.SubscribeFunc("Interaction:*", func(_ context.Context, e any) error {
		h.topics = append(h.topics, e.(event.TopicProvider).EventTopic().String())
		return nil
	})
	require.NoError(t, err)
	_, err = event.Subscribe(bus, events.InteractionStartKey, func(_ context.Context, e event.Event[events.InteractionStart]) error {
		h.starts = append(h.starts, e.Payload)
		return nil
	})
	require.NoError(t, err)
	_, err = event.Subscribe(bus, events.InteractionUpdateKey, func(_ context.Context, e event.Event[events.InteractionUpdate]) error {
		h.update = append(h.update, e.Payload)
		return nil
	})
	require.NoError(t, err)
	_, err = event.Subscribe(bus, events.InteractionEndKey, func(_ context.Context, e event.Event[events.InteractionEnd]) error {
		h.ends = append(h.ends, e.Payload)
		return nil
	})
	require.NoError(t, err)
	return h
}

func (h *harness) down(typ pointer.Type, tgt pointer.Target) *pointer.Event {
	ev := pointer.NewEvent(typ, pointer.Position{X: 1, Y: 1})
	ev.Target = tgt
	h.area.Dispatch(ev)
	return ev
}

func (h *harness) up(typ pointer.Type) *pointer.Event {
	ev := pointer.NewEvent(typ, pointer.Position{X: 4, Y: 3})
	h.doc.Dispatch(ev)
	return ev
}

func (h *harness) publishPointer(t *testing.T, data events.PointerChange) {
	t.Helper()
	ev := pointer.NewEvent(pointer.TypeMouseMove, data.Current)
	err := event.Publish(context.Background(), h.coord.bus, events.PointerStoreUpdatedKey, events.Update{Event: ev, Data: data})
	require.NoError(t, err)
}

func (h *harness) assertIdleArmed(t *testing.T) {
	t.Helper()
	assert.False(t, h.it.IsInteracting())
	assert.False(t, h.it.IsDragging())
	assert.True(t, h.it.IsArmed())
	assert.Equal(t, 1, h.area.ListenerCount(pointer.TypeMouseDown))
	assert.Equal(t, 1, h.area.ListenerCount(pointer.TypeTouchStart))
	assert.Zero(t, h.doc.ListenerCount(pointer.TypeMouseUp))
	assert.Zero(t, h.doc.ListenerCount(pointer.TypeTouchEnd))
}

func TestNew_AttachesNothing(t *testing.T) {
	h := newHarness(t)

	assert.False(t, h.it.IsArmed())
	assert.Zero(t, h.area.ListenerCount(pointer.TypeMouseDown))
	assert.Zero(t, h.area.ListenerCount(pointer.TypeTouchStart))
	assert.Empty(t, h.topics)
}

func TestInit_ArmsAndPublishes(t *testing.T) {
	h := newHarness(t)
	h.it.Init(context.Background())

	h.assertIdleArmed(t)
	assert.Equal(t, []string{"Interaction:init"}, h.topics)
}

func TestInit_Idempotent(t *testing.T) {
	h := newHarness(t)
	h.it.Init(context.Background())
	h.it.Init(context.Background())

	h.assertIdleArmed(t)
	assert.Equal(t, []string{"Interaction:init", "Interaction:init"}, h.topics)

	h.down(pointer.TypeMouseDown, nil)
	assert.Len(t, h.starts, 1, "one registration means one start per press")
}

func TestUpdate_IgnoredWhileIdle(t *testing.T) {
	h := newHarness(t)
	h.it.Init(context.Background())

	for i := 0; i < 5; i++ {
		h.publishPointer(t, events.PointerChange{Current: pointer.Position{X: i, Y: i}})
		require.NoError(t, event.Publish(context.Background(), h.coord.bus, events.AreaScrollKey,
			events.Update{Data: events.ScrollChange{Delta: pointer.Position{Y: 1}}}))
	}
	assert.Empty(t, h.update)
	assert.Equal(t, []string{"Interaction:init"}, h.topics)
}

func TestStart_RightClickIgnored(t *testing.T) {
	h := newHarness(t, WithStopForMove(true))
	h.coord.selection["T"] = true
	h.it.Init(context.Background())
	h.topics = nil

	ev := pointer.NewEvent(pointer.TypeMouseDown, pointer.Position{})
	ev.Button = pointer.ButtonRight
	ev.Target = target("T")
	h.area.Dispatch(ev)

	assert.False(t, h.it.IsInteracting())
	assert.False(t, h.it.IsDragging())
	assert.Empty(t, h.topics)
	assert.Zero(t, h.doc.ListenerCount(pointer.TypeMouseUp))
	assert.Zero(t, h.coord.keys.calls, "classification never runs for right-clicks")
}

func TestStart_OtherButtonsStart(t *testing.T) {
	for _, b := range []pointer.Button{pointer.ButtonLeft, pointer.ButtonMiddle, pointer.ButtonBack} {
		h := newHarness(t)
		h.it.Init(context.Background())

		ev := pointer.NewEvent(pointer.TypeMouseDown, pointer.Position{})
		ev.Button = b
		h.area.Dispatch(ev)
		assert.True(t, h.it.IsInteracting(), b.String())
	}
}

func TestStart_Classification(t *testing.T) {
	tests := []struct {
		name        string
		stopForMove bool
		multiSelect bool
		selected    bool
		want        bool
	}{
		{"drag", true, false, true, true},
		{"multi-select held", true, true, true, false},
		{"not selected", true, false, false, false},
		{"stop for move off", false, false, true, false},
		{"nothing", false, false, false, false},
		{"all against", false, true, false, false},
		{"held and unselected", true, true, false, false},
		{"off and held", false, true, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, WithStopForMove(tt.stopForMove))
			h.coord.keys.pressed = tt.multiSelect
			h.coord.selection["T"] = tt.selected
			h.it.Init(context.Background())

			h.down(pointer.TypeMouseDown, target("T"))

			assert.True(t, h.it.IsInteracting())
			assert.Equal(t, tt.want, h.it.IsDragging())
			require.Len(t, h.starts, 1)
			assert.Equal(t, tt.want, h.starts[0].IsDragging)
		})
	}
}

func TestStart_TouchPreventsDefault(t *testing.T) {
	h := newHarness(t)
	h.it.Init(context.Background())

	touch := h.down(pointer.TypeTouchStart, nil)
	assert.True(t, touch.DefaultPrevented())
	assert.True(t, h.it.IsInteracting())

	h.up(pointer.TypeTouchEnd)
	mouse := h.down(pointer.TypeMouseDown, nil)
	assert.False(t, mouse.DefaultPrevented())
}

func TestStart_RightTouchStillPreventsDefault(t *testing.T) {
	h := newHarness(t)
	h.it.Init(context.Background())

	ev := pointer.NewEvent(pointer.TypeTouchStart, pointer.Position{})
	ev.Button = pointer.ButtonRight
	h.area.Dispatch(ev)

	assert.True(t, ev.DefaultPrevented())
	assert.False(t, h.it.IsInteracting())
}

func TestStart_AttachesPointerUp(t *testing.T) {
	h := newHarness(t)
	h.it.Init(context.Background())
	var seen int
	_, err := event.Subscribe(h.coord.bus, events.InteractionStartKey, func(context.Context, event.Event[events.InteractionStart]) error {
		seen = h.doc.ListenerCount(pointer.TypeMouseUp)
		return nil
	})
	require.NoError(t, err)

	h.down(pointer.TypeMouseDown, nil)

	assert.Zero(t, seen, "pointer-up listeners are attached after start is published")
	assert.Equal(t, 1, h.doc.ListenerCount(pointer.TypeMouseUp))
	assert.Equal(t, 1, h.doc.ListenerCount(pointer.TypeTouchEnd))
}

func TestStop_Idempotent(t *testing.T) {
	h := newHarness(t)
	h.it.Stop()
	h.it.Stop()
	assert.False(t, h.it.IsArmed())

	h.it.Init(context.Background())
	h.down(pointer.TypeMouseDown, nil)
	h.it.Stop()
	h.it.Stop()

	assert.False(t, h.it.IsInteracting())
	assert.False(t, h.it.IsArmed())
	assert.Zero(t, h.area.ListenerCount(pointer.TypeMouseDown))
	assert.Zero(t, h.doc.ListenerCount(pointer.TypeMouseUp))
	assert.Empty(t, h.ends, "stop never publishes end")
}

func TestStop_LeavesForeignListeners(t *testing.T) {
	h := newHarness(t)
	h.area.AddEventListener(pointer.TypeMouseDown, "other", func(*pointer.Event) {}, surface.ListenerOptions{})
	h.it.Init(context.Background())
	h.it.Stop()

	assert.True(t, h.area.HasEventListener(pointer.TypeMouseDown, "other"))
}

// Scenario A and D.
func TestDragThenUpdate(t *testing.T) {
	h := newHarness(t, WithStopForMove(true))
	h.coord.selection["T"] = true
	h.it.Init(context.Background())

	down := h.down(pointer.TypeMouseDown, target("T"))
	require.True(t, h.it.IsDragging())
	require.Len(t, h.starts, 1)
	assert.Same(t, down, h.starts[0].Event)
	assert.True(t, h.starts[0].IsDragging)

	data := events.PointerChange{
		Initial:  pointer.Position{X: 1, Y: 1},
		Previous: pointer.Position{X: 1, Y: 1},
		Current:  pointer.Position{X: 3, Y: 2},
	}
	h.publishPointer(t, data)

	require.Len(t, h.update, 1)
	assert.True(t, h.update[0].IsDragging)
	assert.Equal(t, data, h.update[0].Data)
	assert.Equal(t, pointer.TypeMouseMove, h.update[0].Event.Type)
}

// Scenario B.
func TestMultiSelectKeySelects(t *testing.T) {
	h := newHarness(t, WithStopForMove(true))
	h.coord.selection["T"] = true
	h.coord.keys.pressed = true
	h.it.Init(context.Background())

	h.down(pointer.TypeMouseDown, target("T"))

	assert.False(t, h.it.IsDragging())
	require.Len(t, h.starts, 1)
	assert.False(t, h.starts[0].IsDragging)
}

func TestUpdate_ScrollWhileInteracting(t *testing.T) {
	h := newHarness(t)
	h.it.Init(context.Background())
	h.down(pointer.TypeMouseDown, nil)

	change := events.ScrollChange{Offset: pointer.Position{Y: 2}, Delta: pointer.Position{Y: 2}}
	require.NoError(t, event.Publish(context.Background(), h.coord.bus, events.AreaScrollKey, events.Update{Data: change}))

	require.Len(t, h.update, 1)
	assert.Equal(t, change, h.update[0].Data)
	assert.False(t, h.update[0].IsDragging)
	assert.Nil(t, h.update[0].Event)
}

// Scenario E.
func TestReset_Order(t *testing.T) {
	h := newHarness(t, WithStopForMove(true))
	h.coord.selection["T"] = true
	h.it.Init(context.Background())
	h.down(pointer.TypeMouseDown, target("T"))
	h.topics = nil

	type snapshot struct {
		interacting bool
		armed       bool
		upListeners int
	}
	var atInit, atEnd snapshot
	take := func() snapshot {
		return snapshot{
			interacting: h.it.IsInteracting(),
			armed:       h.area.ListenerCount(pointer.TypeMouseDown) == 1,
			upListeners: h.doc.ListenerCount(pointer.TypeMouseUp),
		}
	}
	_, err := event.Subscribe(h.coord.bus, events.InteractionInitKey, func(context.Context, event.Event[events.InteractionInit]) error {
		atInit = take()
		return nil
	})
	require.NoError(t, err)
	_, err = event.Subscribe(h.coord.bus, events.InteractionEndKey, func(context.Context, event.Event[events.InteractionEnd]) error {
		atEnd = take()
		return nil
	})
	require.NoError(t, err)

	up := h.up(pointer.TypeMouseUp)

	assert.Equal(t, []string{"Interaction:init", "Interaction:end"}, h.topics)
	assert.Equal(t, snapshot{interacting: false, armed: true, upListeners: 0}, atInit)
	assert.Equal(t, snapshot{interacting: false, armed: true, upListeners: 0}, atEnd)
	require.Len(t, h.ends, 1)
	assert.Same(t, up, h.ends[0].Event)
	h.assertIdleArmed(t)
}

func TestReset_EndSubscriberCanStartAgain(t *testing.T) {
	h := newHarness(t)
	h.it.Init(context.Background())
	h.down(pointer.TypeMouseDown, nil)

	restarted := false
	_, err := event.Subscribe(h.coord.bus, events.InteractionEndKey, func(context.Context, event.Event[events.InteractionEnd]) error {
		if restarted {
			return nil
		}
		restarted = true
		assert.False(t, h.it.IsInteracting())
		h.down(pointer.TypeMouseDown, nil)
		return nil
	}, event.WithOnce())
	require.NoError(t, err)

	h.up(pointer.TypeMouseUp)

	assert.True(t, restarted)
	assert.True(t, h.it.IsInteracting(), "the press issued from the end handler was caught")
	assert.Len(t, h.starts, 2)
	assert.Equal(t, 1, h.doc.ListenerCount(pointer.TypeMouseUp))
}

func TestReset_TouchEnd(t *testing.T) {
	h := newHarness(t)
	h.it.Init(context.Background())
	h.down(pointer.TypeTouchStart, nil)

	h.up(pointer.TypeTouchEnd)

	require.Len(t, h.ends, 1)
	assert.Equal(t, pointer.TypeTouchEnd, h.ends[0].Event.Type)
	h.assertIdleArmed(t)
}

func TestPointerUpWithoutStartIsIgnored(t *testing.T) {
	h := newHarness(t)
	h.it.Init(context.Background())

	h.up(pointer.TypeMouseUp)
	assert.Empty(t, h.ends)
}

func TestRoundTrip(t *testing.T) {
	h := newHarness(t, WithStopForMove(true))
	h.coord.selection["T"] = true
	h.it.Init(context.Background())

	for n := 0; n < 10; n++ {
		var tgt pointer.Target
		if n%2 == 0 {
			tgt = target("T")
		}
		h.down(pointer.TypeMouseDown, tgt)
		assert.Equal(t, n%2 == 0, h.it.IsDragging(), "cycle %d", n)

		for k := 0; k < 3; k++ {
			h.publishPointer(t, events.PointerChange{Current: pointer.Position{X: k}})
		}
		h.up(pointer.TypeMouseUp)

		h.assertIdleArmed(t)
	}
	assert.Len(t, h.starts, 10)
	assert.Len(t, h.update, 30)
	assert.Len(t, h.ends, 10)
}

func TestCollaboratorPanicPropagates(t *testing.T) {
	h := newHarness(t, WithStopForMove(true))
	h.coord.selection = nil
	h.it.Init(context.Background())
	h.it.coord = panicCoordinator{h.coord}

	assert.Panics(t, func() {
		h.down(pointer.TypeMouseDown, target("T"))
	})
	assert.False(t, h.it.IsInteracting())
}

type panicCoordinator struct{ *fakeCoordinator }

func (panicCoordinator) Selection() Membership { return panicMembership{} }

type panicMembership struct{}

func (panicMembership) Has(pointer.Target) bool { panic("membership unavailable") }

func TestSubscriberErrorDoesNotAbortTransition(t *testing.T) {
	h := newHarness(t)
	_, err := h.coord.bus.SubscribeFunc("Interaction:start", func(context.Context, any) error {
		return assert.AnError
	})
	require.NoError(t, err)
	h.it.Init(context.Background())

	h.down(pointer.TypeMouseDown, nil)

	assert.True(t, h.it.IsInteracting())
	assert.Equal(t, 1, h.doc.ListenerCount(pointer.TypeMouseUp))
}

func TestInstancesShareSurface(t *testing.T) {
	h := newHarness(t)
	other := New(h.area, h.doc, h.coord)
	h.it.Init(context.Background())
	other.Init(context.Background())

	assert.Equal(t, 2, h.area.ListenerCount(pointer.TypeMouseDown))

	other.Stop()
	assert.True(t, h.it.IsArmed())
	assert.Equal(t, 1, h.area.ListenerCount(pointer.TypeMouseDown))
}

func TestClose(t *testing.T) {
	h := newHarness(t)
	h.it.Init(context.Background())
	h.down(pointer.TypeMouseDown, nil)

	h.it.Close()
	assert.False(t, h.it.IsArmed())

	// Interaction is idle and unsubscribed; updates are not relayed.
	h.publishPointer(t, events.PointerChange{})
	assert.Empty(t, h.update)
}

func TestSetStopForMove(t *testing.T) {
	h := newHarness(t)
	h.coord.selection["T"] = true
	h.it.Init(context.Background())

	h.down(pointer.TypeMouseDown, target("T"))
	assert.False(t, h.it.IsDragging())
	h.up(pointer.TypeMouseUp)

	h.it.SetStopForMove(true)
	h.down(pointer.TypeMouseDown, target("T"))
	assert.True(t, h.it.IsDragging())
}

func TestStart_SecondPressReclassifies(t *testing.T) {
	h := newHarness(t, WithStopForMove(true))
	h.coord.selection["T"] = true
	h.it.Init(context.Background())

	h.down(pointer.TypeMouseDown, target("T"))
	require.True(t, h.it.IsDragging())

	// A second press before the pointer-up, this time on empty space.
	h.down(pointer.TypeMouseDown, nil)
	assert.True(t, h.it.IsInteracting())
	assert.False(t, h.it.IsDragging())
	require.Len(t, h.starts, 2)
	assert.False(t, h.starts[1].IsDragging)
	assert.Equal(t, 1, h.doc.ListenerCount(pointer.TypeMouseUp))

	h.up(pointer.TypeMouseUp)
	h.assertIdleArmed(t)
}
