// Package topic provides topic names and pattern matching for the event bus.
//
// # Topic Format
//
// Topics name the publishing module and the action, separated by a colon:
//
//	Interaction:start
//	PointerStore:updated
//	Area:scroll
//	Selected:added
//
// Deeper hierarchies are allowed (Interaction:start:pre) but rarely needed.
//
// # Wildcards
//
// Two wildcard patterns are supported:
//
//   - "*" matches exactly one segment
//   - "**" matches zero or more segments
//
// Examples:
//
//	Interaction:*      matches Interaction:start, Interaction:end
//	*:updated          matches PointerStore:updated
//	**                 matches everything
package topic
