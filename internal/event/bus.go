package event

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/dshills/areaselect/internal/event/dispatch"
	"github.com/dshills/areaselect/internal/event/topic"
)

// Bus is the synchronous event bus.
type Bus interface {
	// Publish delivers the event to every matching subscription before
	// returning. The event must implement TopicProvider.
	Publish(ctx context.Context, event any) error

	// Subscribe registers a handler for a topic pattern.
	Subscribe(topicPattern topic.Topic, handler Handler, opts ...SubscriptionOption) (Subscription, error)

	// SubscribeFunc is Subscribe for a plain function.
	SubscribeFunc(topicPattern topic.Topic, fn HandlerFunc, opts ...SubscriptionOption) (Subscription, error)

	// Unsubscribe removes a subscription.
	Unsubscribe(sub Subscription) error

	// Pause drops every published event until Resume is called.
	Pause()
	Resume()
	IsPaused() bool

	Stats() Stats
}

type bus struct {
	registry   *Registry
	dispatcher dispatch.Dispatcher
	config     busConfig

	paused    atomic.Bool
	published atomic.Uint64
}

// NewBus creates a new event bus with the given options.
func NewBus(opts ...BusOption) Bus {
	config := defaultBusConfig()
	for _, opt := range opts {
		opt(&config)
	}

	return &bus{
		registry: NewRegistry(),
		config:   config,
	}
}

func (b *bus) Pause() {
	b.paused.Store(true)
}

func (b *bus) Resume() {
	b.paused.Store(false)
}

func (b *bus) IsPaused() bool {
	return b.paused.Load()
}

// Publish delivers event synchronously, in subscription order.
func (b *bus) Publish(ctx context.Context, event any) error {
	if b.paused.Load() {
		return nil
	}

	eventTopic := extractTopic(event)
	if !eventTopic.IsValid() {
		return ErrInvalidEvent
	}

	b.published.Add(1)

	var errs []error
	for _, sub := range b.registry.MatchActive(eventTopic) {
		// An earlier handler may have cancelled or paused this one.
		if !sub.shouldDeliver(event) {
			continue
		}
		if sub.Config().Once {
			if !sub.claim() {
				continue
			}
			b.registry.Remove(sub.ID())
		}

		res := b.dispatcher.Dispatch(ctx, event, sub.Handler())
		switch {
		case res.Skipped:
			return errors.Join(append(errs, res.Err)...)
		case res.Panic != nil:
			b.reportPanic(event, sub, res.Panic)
			errs = append(errs, &PanicError{
				SubscriptionID: sub.ID(),
				Topic:          eventTopic.String(),
				Value:          res.Panic.Value,
				Stack:          string(res.Panic.Stack),
			})
		case res.Err != nil:
			errs = append(errs, &HandlerError{
				SubscriptionID: sub.ID(),
				Topic:          eventTopic.String(),
				Err:            res.Err,
			})
		}
	}

	return errors.Join(errs...)
}

// Subscribe creates a new subscription for the given topic pattern.
func (b *bus) Subscribe(topicPattern topic.Topic, handler Handler, opts ...SubscriptionOption) (Subscription, error) {
	if handler == nil {
		return nil, ErrNilHandler
	}
	if !topicPattern.IsValid() {
		return nil, ErrInvalidTopic
	}

	sub := newSubscription(generateID(), topicPattern, handler, opts...)
	b.registry.Add(sub)
	return sub, nil
}

func (b *bus) SubscribeFunc(topicPattern topic.Topic, fn HandlerFunc, opts ...SubscriptionOption) (Subscription, error) {
	if fn == nil {
		return nil, ErrNilHandler
	}
	return b.Subscribe(topicPattern, fn, opts...)
}

// Unsubscribe cancels and removes a subscription.
func (b *bus) Unsubscribe(sub Subscription) error {
	if sub == nil {
		return ErrInvalidSubscription
	}

	sub.Cancel()
	if !b.registry.Remove(sub.ID()) {
		return ErrSubscriptionNotFound
	}
	return nil
}

func (b *bus) Stats() Stats {
	d := b.dispatcher.Stats()
	return Stats{
		EventsPublished:   b.published.Load(),
		EventsDelivered:   d.Calls - d.Errors - d.Panics,
		HandlersExecuted:  d.Calls,
		HandlerErrors:     d.Errors,
		HandlerPanics:     d.Panics,
		AvgDeliveryTimeNs: d.Average().Nanoseconds(),
		ActiveSubscribers: b.registry.CountActive(),
	}
}

// reportPanic hands a recovered panic to the configured handler. A panic
// raised by the handler itself is dropped.
func (b *bus) reportPanic(event any, sub Subscription, p *dispatch.Panic) {
	defer func() { _ = recover() }()
	b.config.panicHandler(event, sub, p.Value, p.Stack)
}

func extractTopic(event any) topic.Topic {
	if tp, ok := event.(TopicProvider); ok {
		return tp.EventTopic()
	}
	return ""
}
