package event

import (
	"slices"
	"sync"

	"github.com/dshills/areaselect/internal/event/topic"
)

// Registry holds subscriptions in registration order.
// It is safe for concurrent use.
type Registry struct {
	mu   sync.RWMutex
	subs []*subscription
	byID map[string]*subscription
}

// NewRegistry creates a new subscription registry.
func NewRegistry() *Registry {
	return &Registry{
		byID: make(map[string]*subscription),
	}
}

// Add appends a subscription.
func (r *Registry) Add(sub *subscription) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.subs = append(r.subs, sub)
	r.byID[sub.ID()] = sub
}

// Remove removes a subscription by ID.
func (r *Registry) Remove(subID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[subID]; !ok {
		return false
	}
	delete(r.byID, subID)
	r.subs = slices.DeleteFunc(r.subs, func(s *subscription) bool {
		return s.ID() == subID
	})
	return true
}

// Get returns a subscription by ID.
func (r *Registry) Get(subID string) (*subscription, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sub, ok := r.byID[subID]
	return sub, ok
}

// MatchActive returns the active subscriptions whose pattern matches the
// event topic, ordered by priority and then by registration order.
// The returned slice is a snapshot; handlers may mutate the registry while
// the caller iterates it.
func (r *Registry) MatchActive(eventTopic topic.Topic) []*subscription {
	r.mu.RLock()
	var result []*subscription
	for _, sub := range r.subs {
		if sub.IsActive() && eventTopic.Matches(sub.Topic()) {
			result = append(result, sub)
		}
	}
	r.mu.RUnlock()

	slices.SortStableFunc(result, func(a, b *subscription) int {
		return int(a.Config().Priority) - int(b.Config().Priority)
	})
	return result
}

// Count returns the total number of subscriptions.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.subs)
}

// CountActive returns the number of active subscriptions.
func (r *Registry) CountActive() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, sub := range r.subs {
		if sub.IsActive() {
			count++
		}
	}
	return count
}

// Clear removes all subscriptions.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.subs = nil
	r.byID = make(map[string]*subscription)
}
