// Package interaction implements the drag-select interaction lifecycle.
//
// An Interaction watches pointer-down events on an area and pointer-up events
// on the document, and turns them into an ordered stream of bus
// notifications:
//
//	Interaction:init    every time the pointer-down listeners are armed
//	Interaction:start   a qualifying pointer-down, with the drag/select decision
//	Interaction:update  each PointerStore:updated or Area:scroll while interacting
//	Interaction:end     after a pointer-up, once the listeners are re-armed
//
// # States
//
//	Idle                  IsInteracting() == false
//	Interacting-Selecting IsInteracting() && !IsDragging()
//	Interacting-Dragging  IsInteracting() && IsDragging()
//
// A pointer-down is classified as dragging when stop-for-move is enabled, no
// multi-select modifier is held and the target is already selected. Every
// pointer-down is classified on its own; the flag is not sticky across a
// second press that arrives before the pointer-up.
// Right-clicks (button 2) never start an interaction. Touch-start events have
// their default action suppressed so the host does not synthesize a second
// mouse gesture.
//
// # Listener lifecycle
//
// Listener registrations are held in surface.Binding values: Init acquires
// the area binding, Start acquires the document binding and Stop releases
// both. Init always stops first, so repeated calls leave exactly one
// registration per event type.
//
// Reset is the pointer-up handler. It stops, re-arms and only then publishes
// Interaction:end, so subscribers to the end notification observe an idle,
// armed interaction.
//
// Calling Stop directly aborts a running interaction without publishing
// Interaction:end.
//
// All methods must be called from the goroutine that dispatches input.
package interaction
