// Package surface models the interactive surface pointer input is delivered to.
//
// A Document is the root listener target; it owns a single Area, the bounded
// region selectable Elements live in. Dispatching an event resolves the
// element under the pointer, delivers the event to the area's listeners when
// the pointer is inside the area and then to the document's listeners, the
// same target-then-bubble order a browser uses.
//
// # Listeners
//
// Listeners are registered per event type under a caller-chosen key. A
// (type, key) pair is registered at most once: adding it again is a no-op and
// removing an absent pair is a no-op. Listeners added while an event is being
// dispatched do not see that event; listeners removed during dispatch are not
// called if they have not run yet.
//
// # Bindings
//
// A Binding groups registrations that are acquired together and released
// together. Release is idempotent, so a Binding can be released from any
// teardown path without tracking whether it was already released.
//
//	b := surface.NewBinding()
//	b.Listen(area, pointer.TypeMouseDown, "sel:start", onDown, surface.ListenerOptions{})
//	b.Listen(area, pointer.TypeTouchStart, "sel:start", onDown, surface.ListenerOptions{Passive: false})
//	defer b.Release()
package surface
