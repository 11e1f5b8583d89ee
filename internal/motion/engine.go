// Package motion is the animation side of the player widget: the Engine
// capability the controllers drive, a spring-settled Scene implementing it,
// and a fixed-duration Tween for positional snaps.
package motion

// Engine renders interpolated layouts for a transition between two layout
// endpoints. Calls are fire-and-forget; completion is reported to a
// Listener at an arbitrary later time.
type Engine interface {
	SetTransition(fromID, toID string)
	SetProgress(p float64)
	TransitionToStart()
	TransitionToEnd()
}

// Listener observes an Engine.
type Listener interface {
	OnTransitionStarted(fromID, toID string)
	OnTransitionChange(fromID, toID string, progress float64)
	OnTransitionCompleted(endpointID string)
}
