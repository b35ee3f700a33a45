package dispatch

import (
	"context"
	"runtime/debug"
	"time"
)

// Handler mirrors event.Handler; this package cannot import event.
type Handler interface {
	Handle(ctx context.Context, event any) error
}

// Panic is a recovered handler panic.
type Panic struct {
	Value any
	Stack []byte
}

// Result is the outcome of one handler call.
type Result struct {
	// Err is the handler's error, or the context error when Skipped.
	Err error

	// Panic is set when the handler panicked.
	Panic *Panic

	// Skipped means the context was done and the handler never ran.
	Skipped bool

	Duration time.Duration
}

// OK reports whether the handler ran and returned nil.
func (r Result) OK() bool {
	return !r.Skipped && r.Panic == nil && r.Err == nil
}

// Call runs handler with event. It does not run the handler when ctx is
// already done.
func Call(ctx context.Context, event any, handler Handler) (res Result) {
	if err := ctx.Err(); err != nil {
		return Result{Err: err, Skipped: true}
	}

	start := time.Now()
	defer func() {
		res.Duration = time.Since(start)
		if v := recover(); v != nil {
			res.Panic = &Panic{Value: v, Stack: debug.Stack()}
		}
	}()

	res.Err = handler.Handle(ctx, event)
	return res
}
