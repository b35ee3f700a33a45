// Package event provides the synchronous publish/subscribe bus that connects
// the interaction lifecycle to the stores, the selector and the renderer.
//
// # Delivery Contract
//
// Publish delivers an event to every active subscription whose pattern
// matches the event topic, one handler at a time, in the publisher's
// goroutine. Handlers run in priority order; subscriptions with equal
// priority run in the order they were registered. Publish returns only after
// the last handler has returned, so a publisher can rely on every subscriber
// having observed the event before its next statement executes.
//
// Handlers may publish from inside a handler. The registry lock is released
// before any handler runs, so re-entrant publishes and subscription changes
// made by a handler are safe. Subscriptions added during a publish do not
// receive the event being delivered.
//
// # Topics
//
// Topics use Module:action names (see the topic subpackage). Subscriptions
// may use wildcard patterns:
//
//	Interaction:*   every interaction lifecycle event
//	**              everything (tracing, logging)
//
// # Typed Keys
//
// A Key binds a topic to its payload type so publishers and subscribers
// agree at compile time:
//
//	var Start = event.NewKey[StartPayload]("Interaction:start")
//
//	event.Subscribe(bus, Start, func(ctx context.Context, e event.Event[StartPayload]) error {
//	    fmt.Println(e.Payload.IsDragging)
//	    return nil
//	})
//	event.Publish(ctx, bus, Start, StartPayload{IsDragging: true})
//
// # Failures
//
// Handler errors and recovered panics never stop delivery to the remaining
// subscribers. They are collected and returned from Publish as a joined
// error of *HandlerError and *PanicError values.
//
// # Thread Safety
//
// The bus and subscriptions are safe for concurrent use. Handlers must manage
// their own state.
package event
