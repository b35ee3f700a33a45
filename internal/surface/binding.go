package surface

import "github.com/dshills/areaselect/internal/input/pointer"

type bound struct {
	target Listenable
	typ    pointer.Type
	key    string
}

// Binding is a group of listener registrations released together.
type Binding struct {
	entries []bound
}

// NewBinding creates an empty binding.
func NewBinding() *Binding {
	return &Binding{}
}

// Listen registers fn on target and records the registration so Release
// removes it. A registration that already existed on the target is not
// recorded, so releasing this binding leaves it in place.
func (b *Binding) Listen(target Listenable, typ pointer.Type, key string, fn Listener, opts ListenerOptions) *Binding {
	if target.AddEventListener(typ, key, fn, opts) {
		b.entries = append(b.entries, bound{target: target, typ: typ, key: key})
	}
	return b
}

// Active reports whether the binding holds any registration.
func (b *Binding) Active() bool {
	return b != nil && len(b.entries) > 0
}

// Len returns the number of registrations held.
func (b *Binding) Len() int {
	if b == nil {
		return 0
	}
	return len(b.entries)
}

// Release removes every registration. Releasing twice, or releasing a nil
// binding, does nothing.
func (b *Binding) Release() {
	if b == nil {
		return
	}
	for _, e := range b.entries {
		e.target.RemoveEventListener(e.typ, e.key)
	}
	b.entries = nil
}
