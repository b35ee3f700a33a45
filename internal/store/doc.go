// Package store holds the state the interaction and the selection read
// while a gesture runs.
//
//   - KeyStore answers whether a multi-select modifier is held.
//   - PointerStore follows the pointer between Interaction:start and
//     Interaction:end and publishes PointerStore:updated on every move.
//   - ScrollStore scrolls the area on wheel events and publishes Area:scroll.
package store
