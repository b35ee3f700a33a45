// Package selection tracks selected elements and reacts to interaction
// notifications: the Selector draws selection boxes and the Mover drags the
// selection around.
package selection
