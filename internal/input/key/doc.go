// Package key provides keyboard modifier types for pointer input.
//
// Pointer events carry the modifier keys held when they were reported. The
// interaction layer asks whether any of the configured multi-select
// modifiers is held to decide between extending a selection and moving it.
//
// Modifier names can be written in several spellings:
//
//	"ctrl", "control"
//	"alt", "option", "opt"
//	"shift"
//	"meta", "cmd", "command", "super", "win"
package key
