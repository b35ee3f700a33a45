package events

import (
	"github.com/dshills/areaselect/internal/event"
	"github.com/dshills/areaselect/internal/input/pointer"
)

// Store topics. Both carry an Update and are relayed by the interaction.
var (
	PointerStoreUpdatedKey = event.NewKey[Update]("PointerStore:updated")
	AreaScrollKey          = event.NewKey[Update]("Area:scroll")
)

// Update is the payload of a store change notification.
type Update struct {
	// Event is the input event that caused the change, if any.
	Event *pointer.Event

	// Data describes the change.
	Data Change
}

// Change is the data of an Update. It is implemented by PointerChange and
// ScrollChange.
type Change interface {
	isChange()
}

// PointerChange describes the pointer positions of the running interaction.
type PointerChange struct {
	Initial  pointer.Position
	Current  pointer.Position
	Previous pointer.Position
}

// Delta returns the movement since the previous position.
func (c PointerChange) Delta() pointer.Position {
	return c.Current.Sub(c.Previous)
}

// ScrollChange describes a scroll of the area.
type ScrollChange struct {
	// Offset is the area's scroll offset after the change.
	Offset pointer.Position

	// Delta is the applied scroll amount.
	Delta pointer.Position
}

func (PointerChange) isChange() {}
func (ScrollChange) isChange()  {}
