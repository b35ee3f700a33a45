package events

import (
	"github.com/dshills/areaselect/internal/event"
	"github.com/dshills/areaselect/internal/input/pointer"
)

// Interaction lifecycle topics.
var (
	// InteractionInitKey is published each time the interaction arms its
	// surface listeners.
	InteractionInitKey = event.NewKey[InteractionInit]("Interaction:init")

	// InteractionStartKey is published when a pointer-down begins an
	// interaction.
	InteractionStartKey = event.NewKey[InteractionStart]("Interaction:start")

	// InteractionUpdateKey is published for every pointer or scroll change
	// while an interaction runs.
	InteractionUpdateKey = event.NewKey[InteractionUpdate]("Interaction:update")

	// InteractionEndKey is published after the interaction has been reset.
	InteractionEndKey = event.NewKey[InteractionEnd]("Interaction:end")
)

// InteractionInit carries no data.
type InteractionInit struct{}

// InteractionStart is published when an interaction begins.
type InteractionStart struct {
	// Event is the pointer-down that started the interaction.
	Event *pointer.Event

	// IsDragging is true when the press moves the current selection
	// instead of drawing a selection box.
	IsDragging bool
}

// InteractionUpdate relays a store change while interacting.
type InteractionUpdate struct {
	Event      *pointer.Event
	Data       Change
	IsDragging bool
}

// InteractionEnd is published when an interaction ends.
// Event is nil when the reset was not triggered by input.
type InteractionEnd struct {
	Event *pointer.Event
}
