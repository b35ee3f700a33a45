package key

import (
	"fmt"
	"strings"
)

// Modifier represents keyboard modifier keys.
type Modifier uint8

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0

	// ModShift indicates the Shift key.
	ModShift Modifier = 1 << (iota - 1)

	// ModCtrl indicates the Control key.
	ModCtrl

	// ModAlt indicates the Alt key (Option on macOS).
	ModAlt

	// ModMeta indicates the Meta key (Cmd on macOS, Win on Windows).
	ModMeta
)

// DefaultMultiSelect is the default set of multi-select modifiers.
const DefaultMultiSelect = ModCtrl | ModShift | ModMeta

// Has returns true if m contains any modifier in mod.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// IsEmpty returns true if no modifiers are set.
func (m Modifier) IsEmpty() bool {
	return m == ModNone
}

var modifierOrder = []struct {
	mod  Modifier
	name string
}{
	{ModCtrl, "Ctrl"},
	{ModAlt, "Alt"},
	{ModShift, "Shift"},
	{ModMeta, "Meta"},
}

// String returns a human-readable representation like "Ctrl+Shift".
func (m Modifier) String() string {
	var parts []string
	for _, o := range modifierOrder {
		if m.Has(o.mod) {
			parts = append(parts, o.name)
		}
	}
	return strings.Join(parts, "+")
}

var modifierNames = map[string]Modifier{
	"ctrl":    ModCtrl,
	"control": ModCtrl,
	"alt":     ModAlt,
	"option":  ModAlt,
	"opt":     ModAlt,
	"shift":   ModShift,
	"meta":    ModMeta,
	"cmd":     ModMeta,
	"command": ModMeta,
	"win":     ModMeta,
	"super":   ModMeta,
}

// ParseModifierList combines a list of modifier names into one mask.
// Names are case-insensitive; an unknown name is an error.
func ParseModifierList(names []string) (Modifier, error) {
	var result Modifier
	for _, name := range names {
		mod, ok := modifierNames[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return ModNone, fmt.Errorf("unknown modifier %q", name)
		}
		result |= mod
	}
	return result, nil
}
