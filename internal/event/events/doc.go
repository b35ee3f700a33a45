// Package events defines the topic keys and payload types carried on the
// areaselect event bus.
//
// Every topic is declared as a typed key so publishers and subscribers agree
// on the payload at compile time:
//
//	events.InteractionStart      Interaction:start   InteractionStart
//	events.PointerStoreUpdated   PointerStore:updated Update
//
// Topics follow the `Module:action` convention. Subscribers can use wildcards
// on the raw topic, e.g. "Interaction:*" matches every lifecycle notification.
package events
