package dispatch

import (
	"context"
	"sync/atomic"
	"time"
)

// Dispatcher calls handlers and counts the outcomes. The zero value is
// ready to use and safe for concurrent use.
type Dispatcher struct {
	calls   atomic.Uint64
	errors  atomic.Uint64
	panics  atomic.Uint64
	skipped atomic.Uint64
	totalNs atomic.Int64
}

// Stats are the counters of a Dispatcher. Calls excludes skipped handlers.
type Stats struct {
	Calls   uint64
	Errors  uint64
	Panics  uint64
	Skipped uint64
	Total   time.Duration
}

// Average returns the mean handler duration.
func (s Stats) Average() time.Duration {
	if s.Calls == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Calls)
}

// Dispatch calls handler and records the result.
func (d *Dispatcher) Dispatch(ctx context.Context, event any, handler Handler) Result {
	res := Call(ctx, event, handler)
	if res.Skipped {
		d.skipped.Add(1)
		return res
	}

	d.calls.Add(1)
	d.totalNs.Add(int64(res.Duration))
	switch {
	case res.Panic != nil:
		d.panics.Add(1)
	case res.Err != nil:
		d.errors.Add(1)
	}
	return res
}

// Stats returns a snapshot of the counters. Fields are loaded one at a
// time and may disagree slightly while handlers are running.
func (d *Dispatcher) Stats() Stats {
	return Stats{
		Calls:   d.calls.Load(),
		Errors:  d.errors.Load(),
		Panics:  d.panics.Load(),
		Skipped: d.skipped.Load(),
		Total:   time.Duration(d.totalNs.Load()),
	}
}
