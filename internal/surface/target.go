package surface

import (
	"slices"

	"github.com/dshills/areaselect/internal/input/pointer"
)

// Listener handles a pointer event delivered to a target.
type Listener func(ev *pointer.Event)

// ListenerOptions configures a listener registration.
type ListenerOptions struct {
	// Passive listeners cannot prevent the event's default action.
	Passive bool
}

// Listenable is implemented by everything listeners can be attached to.
type Listenable interface {
	// AddEventListener registers fn for t under key. It returns false when
	// the (t, key) pair is already registered; the existing registration is
	// kept.
	AddEventListener(t pointer.Type, key string, fn Listener, opts ListenerOptions) bool

	// RemoveEventListener removes the (t, key) registration. It returns
	// false when nothing was registered.
	RemoveEventListener(t pointer.Type, key string) bool
}

type registration struct {
	key  string
	fn   Listener
	opts ListenerOptions
}

// Target is a set of listeners keyed by event type.
// It is driven from a single event loop and is not safe for concurrent use.
type Target struct {
	listeners map[pointer.Type][]*registration
}

// NewTarget creates an empty listener target.
func NewTarget() *Target {
	return &Target{listeners: make(map[pointer.Type][]*registration)}
}

// AddEventListener implements Listenable.
func (t *Target) AddEventListener(typ pointer.Type, key string, fn Listener, opts ListenerOptions) bool {
	if fn == nil || t.find(typ, key) != nil {
		return false
	}
	t.listeners[typ] = append(t.listeners[typ], &registration{key: key, fn: fn, opts: opts})
	return true
}

// RemoveEventListener implements Listenable.
func (t *Target) RemoveEventListener(typ pointer.Type, key string) bool {
	regs := t.listeners[typ]
	i := slices.IndexFunc(regs, func(r *registration) bool { return r.key == key })
	if i < 0 {
		return false
	}
	// Copy so a dispatch iterating the old slice keeps a consistent view.
	t.listeners[typ] = slices.Delete(slices.Clone(regs), i, i+1)
	return true
}

// HasEventListener reports whether (typ, key) is registered.
func (t *Target) HasEventListener(typ pointer.Type, key string) bool {
	return t.find(typ, key) != nil
}

// ListenerCount returns the number of listeners registered for typ.
func (t *Target) ListenerCount(typ pointer.Type) int {
	return len(t.listeners[typ])
}

// Dispatch calls the listeners registered for ev.Type in registration order.
func (t *Target) Dispatch(ev *pointer.Event) {
	snapshot := t.listeners[ev.Type]
	for _, reg := range snapshot {
		if !t.registered(ev.Type, reg) {
			continue
		}
		ev.SetPassive(reg.opts.Passive)
		reg.fn(ev)
		ev.SetPassive(false)
	}
}

func (t *Target) find(typ pointer.Type, key string) *registration {
	for _, r := range t.listeners[typ] {
		if r.key == key {
			return r
		}
	}
	return nil
}

func (t *Target) registered(typ pointer.Type, reg *registration) bool {
	return slices.Contains(t.listeners[typ], reg)
}
