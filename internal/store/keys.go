package store

import (
	"github.com/dshills/areaselect/internal/input/key"
	"github.com/dshills/areaselect/internal/input/pointer"
)

// KeyStore holds the modifiers that turn a pointer-down into a
// multi-select.
type KeyStore struct {
	multiSelect key.Modifier
}

// NewKeyStore creates a KeyStore that treats any modifier in multiSelect as
// a multi-select key. ModNone selects key.DefaultMultiSelect.
func NewKeyStore(multiSelect key.Modifier) *KeyStore {
	s := &KeyStore{}
	s.SetMultiSelectKeys(multiSelect)
	return s
}

// MultiSelectKeys returns the configured multi-select modifiers.
func (s *KeyStore) MultiSelectKeys() key.Modifier {
	return s.multiSelect
}

// SetMultiSelectKeys replaces the multi-select modifiers. As in
// NewKeyStore, ModNone selects key.DefaultMultiSelect.
func (s *KeyStore) SetMultiSelectKeys(m key.Modifier) {
	if m.IsEmpty() {
		m = key.DefaultMultiSelect
	}
	s.multiSelect = m
}

// IsMultiSelectKeyPressed reports whether ev carries one of the
// multi-select modifiers. ev may be nil.
func (s *KeyStore) IsMultiSelectKeyPressed(ev *pointer.Event) bool {
	if ev == nil {
		return false
	}
	return ev.Modifiers.Has(s.multiSelect)
}
