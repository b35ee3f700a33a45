package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/areaselect/internal/event"
	"github.com/dshills/areaselect/internal/event/events"
	"github.com/dshills/areaselect/internal/input/key"
	"github.com/dshills/areaselect/internal/input/pointer"
	"github.com/dshills/areaselect/internal/surface"
)

func at(x, y int) pointer.Position {
	return pointer.Position{X: x, Y: y}
}

func TestKeyStore_Defaults(t *testing.T) {
	s := NewKeyStore(key.ModNone)
	assert.Equal(t, key.DefaultMultiSelect, s.MultiSelectKeys())

	ev := pointer.NewEvent(pointer.TypeMouseDown, at(0, 0))
	assert.False(t, s.IsMultiSelectKeyPressed(ev))

	for _, m := range []key.Modifier{key.ModCtrl, key.ModShift, key.ModMeta} {
		ev.Modifiers = m
		assert.True(t, s.IsMultiSelectKeyPressed(ev), m.String())
	}
	ev.Modifiers = key.ModAlt
	assert.False(t, s.IsMultiSelectKeyPressed(ev))
	assert.False(t, s.IsMultiSelectKeyPressed(nil))
}

func TestKeyStore_Reconfigure(t *testing.T) {
	s := NewKeyStore(key.ModAlt)
	ev := pointer.NewEvent(pointer.TypeMouseDown, at(0, 0))

	ev.Modifiers = key.ModAlt
	assert.True(t, s.IsMultiSelectKeyPressed(ev))

	ev.Modifiers = key.ModCtrl
	assert.False(t, s.IsMultiSelectKeyPressed(ev))
	s.SetMultiSelectKeys(key.ModCtrl)
	assert.True(t, s.IsMultiSelectKeyPressed(ev))
}

func TestKeyStore_EmptyMeansDefault(t *testing.T) {
	s := NewKeyStore(key.ModAlt)
	s.SetMultiSelectKeys(key.ModNone)

	assert.Equal(t, NewKeyStore(key.ModNone).MultiSelectKeys(), s.MultiSelectKeys())
	assert.Equal(t, key.DefaultMultiSelect, s.MultiSelectKeys())
}

func startInteraction(t *testing.T, bus event.Bus, pos pointer.Position) {
	t.Helper()
	ev := pointer.NewEvent(pointer.TypeMouseDown, pos)
	require.NoError(t, event.Publish(context.Background(), bus, events.InteractionStartKey, events.InteractionStart{Event: ev}))
}

func endInteraction(t *testing.T, bus event.Bus) {
	t.Helper()
	ev := pointer.NewEvent(pointer.TypeMouseUp, at(0, 0))
	require.NoError(t, event.Publish(context.Background(), bus, events.InteractionEndKey, events.InteractionEnd{Event: ev}))
}

func TestPointerStore_Lifecycle(t *testing.T) {
	bus := event.NewBus()
	doc := surface.NewTarget()
	s := NewPointerStore(doc, bus)

	var updates []events.Update
	_, err := event.Subscribe(bus, events.PointerStoreUpdatedKey, func(_ context.Context, e event.Event[events.Update]) error {
		updates = append(updates, e.Payload)
		return nil
	})
	require.NoError(t, err)

	doc.Dispatch(pointer.NewEvent(pointer.TypeMouseMove, at(9, 9)))
	assert.Empty(t, updates, "moves before start are not tracked")

	startInteraction(t, bus, at(2, 3))
	assert.True(t, s.Active())
	assert.Equal(t, at(2, 3), s.Initial())
	assert.Equal(t, 1, doc.ListenerCount(pointer.TypeMouseMove))
	assert.Equal(t, 1, doc.ListenerCount(pointer.TypeTouchMove))

	doc.Dispatch(pointer.NewEvent(pointer.TypeMouseMove, at(4, 3)))
	doc.Dispatch(pointer.NewEvent(pointer.TypeMouseMove, at(4, 3)))
	doc.Dispatch(pointer.NewEvent(pointer.TypeMouseMove, at(6, 5)))

	require.Len(t, updates, 2, "moves to the same cell are dropped")
	assert.Equal(t, events.PointerChange{Initial: at(2, 3), Previous: at(2, 3), Current: at(4, 3)}, updates[0].Data)
	assert.Equal(t, events.PointerChange{Initial: at(2, 3), Previous: at(4, 3), Current: at(6, 5)}, updates[1].Data)
	assert.Equal(t, at(2, 2), updates[1].Data.(events.PointerChange).Delta())

	endInteraction(t, bus)
	assert.False(t, s.Active())
	assert.Zero(t, doc.ListenerCount(pointer.TypeMouseMove))
	assert.Equal(t, pointer.Position{}, s.Current())
}

func TestPointerStore_TouchMovePreventsDefault(t *testing.T) {
	bus := event.NewBus()
	doc := surface.NewTarget()
	NewPointerStore(doc, bus)
	startInteraction(t, bus, at(0, 0))

	touch := pointer.NewEvent(pointer.TypeTouchMove, at(1, 0))
	doc.Dispatch(touch)
	assert.True(t, touch.DefaultPrevented())

	mouse := pointer.NewEvent(pointer.TypeMouseMove, at(2, 0))
	mouse.PreventDefault()
	doc.Dispatch(mouse)
	assert.True(t, mouse.DefaultPrevented())
}

func TestPointerStore_RunsBeforeNormalSubscribers(t *testing.T) {
	bus := event.NewBus()
	doc := surface.NewTarget()

	var seen pointer.Position
	_, err := event.Subscribe(bus, events.InteractionStartKey, func(context.Context, event.Event[events.InteractionStart]) error {
		return nil
	})
	require.NoError(t, err)
	s := NewPointerStore(doc, bus)
	_, err = event.Subscribe(bus, events.InteractionStartKey, func(context.Context, event.Event[events.InteractionStart]) error {
		seen = s.Initial()
		return nil
	})
	require.NoError(t, err)

	startInteraction(t, bus, at(7, 1))
	assert.Equal(t, at(7, 1), seen)
}

func TestPointerStore_Close(t *testing.T) {
	bus := event.NewBus()
	doc := surface.NewTarget()
	s := NewPointerStore(doc, bus)
	startInteraction(t, bus, at(0, 0))

	s.Close()
	assert.Zero(t, doc.ListenerCount(pointer.TypeMouseMove))

	startInteraction(t, bus, at(0, 0))
	assert.False(t, s.Active())
}

func newScrollArea() *surface.Area {
	area := surface.NewArea(surface.Rect{X: 0, Y: 0, W: 10, H: 3})
	area.AddElement(surface.NewElement("far", "far", surface.Rect{X: 0, Y: 9, W: 2, H: 1}))
	return area
}

func TestScrollStore_Wheel(t *testing.T) {
	bus := event.NewBus()
	area := newScrollArea()
	s := NewScrollStore(area, bus)
	s.Init()
	s.Init()
	assert.Equal(t, 1, area.ListenerCount(pointer.TypeWheel))

	var updates []events.Update
	_, err := event.Subscribe(bus, events.AreaScrollKey, func(_ context.Context, e event.Event[events.Update]) error {
		updates = append(updates, e.Payload)
		return nil
	})
	require.NoError(t, err)

	wheel := pointer.NewEvent(pointer.TypeWheel, at(1, 1))
	wheel.WheelDelta = at(0, 2)
	area.Dispatch(wheel)

	assert.True(t, wheel.DefaultPrevented())
	assert.Equal(t, at(0, 2), s.Offset())
	require.Len(t, updates, 1)
	assert.Same(t, wheel, updates[0].Event)
	assert.Equal(t, events.ScrollChange{Offset: at(0, 2), Delta: at(0, 2)}, updates[0].Data)

	up := pointer.NewEvent(pointer.TypeWheel, at(1, 1))
	up.WheelDelta = at(0, -5)
	area.Dispatch(up)
	require.Len(t, updates, 2)
	assert.Equal(t, events.ScrollChange{Offset: at(0, 0), Delta: at(0, -2)}, updates[1].Data)

	again := pointer.NewEvent(pointer.TypeWheel, at(1, 1))
	again.WheelDelta = at(0, -1)
	area.Dispatch(again)
	assert.Len(t, updates, 2, "no change, no notification")
	assert.False(t, again.DefaultPrevented())

	s.Stop()
	assert.Zero(t, area.ListenerCount(pointer.TypeWheel))
}

func TestScrollStore_ScrollByWithoutEvent(t *testing.T) {
	bus := event.NewBus()
	area := newScrollArea()
	s := NewScrollStore(area, bus)

	var got events.Update
	_, err := event.Subscribe(bus, events.AreaScrollKey, func(_ context.Context, e event.Event[events.Update]) error {
		got = e.Payload
		return nil
	})
	require.NoError(t, err)

	applied := s.ScrollBy(context.Background(), nil, at(0, 3))
	assert.Equal(t, at(0, 3), applied)
	assert.Nil(t, got.Event)
	assert.Equal(t, events.ScrollChange{Offset: at(0, 3), Delta: at(0, 3)}, got.Data)
}
