// Package dispatch calls bus handlers in the publisher's goroutine.
//
// Call runs one handler, converting a panic into a Result so the bus can
// report it and continue with the next subscriber. Dispatcher wraps Call
// with counters that feed the bus statistics.
//
//	var d dispatch.Dispatcher
//	res := d.Dispatch(ctx, ev, handler)
//	if res.Panic != nil {
//	    logger.Error().Interface("panic", res.Panic.Value).Msg("handler panicked")
//	}
package dispatch
