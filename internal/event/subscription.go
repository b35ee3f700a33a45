package event

import (
	"sync/atomic"

	"github.com/dshills/areaselect/internal/event/topic"
)

// Subscription is a handle on a registered handler.
type Subscription interface {
	ID() string
	Topic() topic.Topic

	// IsActive reports whether the subscription is neither paused nor
	// cancelled.
	IsActive() bool

	// Pause stops delivery until Resume. Both are no-ops once cancelled.
	Pause()
	Resume()

	// Cancel stops delivery for good. Unsubscribe also removes it from
	// the bus.
	Cancel()
}

// SubscriptionConfig holds the per-subscription options.
type SubscriptionConfig struct {
	// Priority orders delivery; lower runs first, ties run in
	// registration order.
	Priority Priority

	// Filter drops events it returns false for.
	Filter FilterFunc

	// Once cancels the subscription after its first delivery.
	Once bool
}

// SubscriptionOption configures a subscription.
type SubscriptionOption func(*SubscriptionConfig)

// WithPriority sets the delivery priority.
func WithPriority(p Priority) SubscriptionOption {
	return func(c *SubscriptionConfig) {
		c.Priority = p
	}
}

// WithFilter sets a filter predicate.
func WithFilter(f FilterFunc) SubscriptionOption {
	return func(c *SubscriptionConfig) {
		c.Filter = f
	}
}

// WithOnce delivers at most one event.
func WithOnce() SubscriptionOption {
	return func(c *SubscriptionConfig) {
		c.Once = true
	}
}

const (
	subActive int32 = iota
	subPaused
	subCancelled
)

type subscription struct {
	id      string
	topic   topic.Topic
	handler Handler
	config  SubscriptionConfig
	state   atomic.Int32 // subActive, subPaused or subCancelled
}

func newSubscription(id string, t topic.Topic, h Handler, opts ...SubscriptionOption) *subscription {
	s := &subscription{
		id:      id,
		topic:   t,
		handler: h,
		config:  SubscriptionConfig{Priority: PriorityNormal},
	}
	for _, opt := range opts {
		opt(&s.config)
	}
	return s
}

func (s *subscription) ID() string                 { return s.id }
func (s *subscription) Topic() topic.Topic         { return s.topic }
func (s *subscription) Handler() Handler           { return s.handler }
func (s *subscription) Config() SubscriptionConfig { return s.config }

func (s *subscription) IsActive() bool {
	return s.state.Load() == subActive
}

func (s *subscription) Pause() {
	s.state.CompareAndSwap(subActive, subPaused)
}

func (s *subscription) Resume() {
	s.state.CompareAndSwap(subPaused, subActive)
}

func (s *subscription) Cancel() {
	s.state.Store(subCancelled)
}

// claim cancels a once subscription and reports whether this caller won the
// right to deliver its single event.
func (s *subscription) claim() bool {
	return s.state.CompareAndSwap(subActive, subCancelled)
}

// shouldDeliver reports whether the event passes the state and filter checks.
func (s *subscription) shouldDeliver(event any) bool {
	if !s.IsActive() {
		return false
	}
	return s.config.Filter == nil || s.config.Filter(event)
}
