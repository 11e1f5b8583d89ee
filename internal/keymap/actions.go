// Package keymap defines key bindings and action dispatch for the player.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit Action = "quit"
	ActionHelp Action = "help"

	// Playback actions
	ActionPlayPause Action = "play_pause"

	// Player state actions. These request the same transitions as the
	// drag gestures and are ignored when the current state has no such edge.
	ActionExpand   Action = "expand"
	ActionCollapse Action = "collapse"
	ActionMini     Action = "mini"

	// Mini player actions
	ActionResetPosition Action = "reset_position"
)
