package event

import (
	"context"

	"github.com/dshills/areaselect/internal/event/topic"
)

// Key binds a topic to the payload type carried on it.
type Key[T any] struct {
	Topic topic.Topic
}

// NewKey creates a typed topic key.
func NewKey[T any](t topic.Topic) Key[T] {
	return Key[T]{Topic: t}
}

// String returns the topic name.
func (k Key[T]) String() string {
	return k.Topic.String()
}

// Publish creates an Event[T] on the key's topic and publishes it.
func Publish[T any](ctx context.Context, b Bus, k Key[T], payload T) error {
	return b.Publish(ctx, NewEvent(k.Topic, payload, ""))
}

// Subscribe registers a typed handler for the key's topic.
func Subscribe[T any](b Bus, k Key[T], fn TypedHandlerFunc[T], opts ...SubscriptionOption) (Subscription, error) {
	if fn == nil {
		return nil, ErrNilHandler
	}
	return b.Subscribe(k.Topic, AsHandler(fn), opts...)
}

// Publisher stamps every event it publishes with a source name.
type Publisher struct {
	bus    Bus
	source string
}

// NewPublisher creates a Publisher for the given source (e.g., "interaction").
func NewPublisher(bus Bus, source string) *Publisher {
	return &Publisher{bus: bus, source: source}
}

// Source returns the publisher's source identifier.
func (p *Publisher) Source() string {
	return p.source
}

// Bus returns the underlying bus.
func (p *Publisher) Bus() Bus {
	return p.bus
}

// Emit publishes a typed payload through p.
func Emit[T any](ctx context.Context, p *Publisher, k Key[T], payload T) error {
	return p.bus.Publish(ctx, NewEvent(k.Topic, payload, p.source))
}
