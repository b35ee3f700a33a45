package event

import (
	"time"

	"github.com/google/uuid"

	"github.com/dshills/areaselect/internal/event/topic"
)

// Event is a published event carrying a payload of type T.
// Events are immutable once created.
type Event[T any] struct {
	// Type is the event topic (e.g., "Interaction:start").
	Type topic.Topic

	// Payload contains the event-specific data.
	Payload T

	// Metadata contains standard event information.
	Metadata Metadata
}

// Metadata contains standard information attached to every event.
type Metadata struct {
	// ID is a unique identifier for this event instance.
	ID string

	// Timestamp is when the event was created.
	Timestamp time.Time

	// Source identifies the module that published the event.
	Source string
}

// timeNow is a variable to allow testing with fixed timestamps.
var timeNow = time.Now

// NewEvent creates a new event with the given type and payload.
func NewEvent[T any](eventType topic.Topic, payload T, source string) Event[T] {
	return Event[T]{
		Type:    eventType,
		Payload: payload,
		Metadata: Metadata{
			ID:        generateID(),
			Timestamp: timeNow(),
			Source:    source,
		},
	}
}

// EventTopic returns the event's topic for type-erased handling.
func (e Event[T]) EventTopic() topic.Topic {
	return e.Type
}

// EventMetadata returns the event's metadata for type-erased handling.
func (e Event[T]) EventMetadata() Metadata {
	return e.Metadata
}

// TopicProvider is implemented by types that can provide their topic.
type TopicProvider interface {
	EventTopic() topic.Topic
}

// Envelope wraps an untyped payload for publishing without a Key.
type Envelope struct {
	Topic    topic.Topic
	Payload  any
	Metadata Metadata
}

// EventTopic implements TopicProvider.
func (e Envelope) EventTopic() topic.Topic {
	return e.Topic
}

func generateID() string {
	return uuid.NewString()
}
