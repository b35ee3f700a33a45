package events

import (
	"github.com/dshills/areaselect/internal/event"
	"github.com/dshills/areaselect/internal/input/pointer"
)

// Selection topics.
var (
	SelectedAddedKey   = event.NewKey[SelectionChanged]("Selected:added")
	SelectedRemovedKey = event.NewKey[SelectionChanged]("Selected:removed")

	// SelectionBoxKey is published while a selection box is drawn, in
	// screen coordinates.
	SelectionBoxKey = event.NewKey[SelectionBox]("Selection:box")

	// DragMovedKey is published after the selection was moved.
	DragMovedKey = event.NewKey[DragMoved]("Drag:moved")
)

// SelectionChanged names an element that entered or left the selection.
type SelectionChanged struct {
	Target pointer.Target
}

// SelectionBox is the current selection rectangle. Visible is false once
// the interaction has ended.
type SelectionBox struct {
	X, Y, W, H int
	Visible    bool
}

// DragMoved reports the elements moved by a drag step.
type DragMoved struct {
	Targets []pointer.Target
	Delta   pointer.Position
}
