// internal/media/state.go
package media

// State is the lifecycle of a media player.
//
//	┌──────┐ SetSource ┌────────┐ Prepare ┌──────────┐  Play  ┌─────────┐
//	│ Idle │──────────▶│ Source │────────▶│ Prepared │───────▶│ Playing │
//	└──────┘           └────────┘         └──────────┘        └─────────┘
//	                                                     Pause │   ▲ Play
//	                                                           ▼   │
//	                                                        ┌────────┐
//	                                                        │ Paused │
//	                                                        └────────┘
//
// Release moves any state to Released, which is terminal.
//
// Invalid calls return ErrInvalidState and leave the state unchanged.
// Pause and Toggle are no-ops outside Playing/Paused.
type State int

const (
	Idle State = iota
	Source
	Prepared
	Playing
	Paused
	Released
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Source:
		return "Source"
	case Prepared:
		return "Prepared"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	case Released:
		return "Released"
	default:
		return "Unknown"
	}
}

// IsActive returns true if playback is active (Playing or Paused).
func (s State) IsActive() bool {
	return s == Playing || s == Paused
}

// CanPlay returns true if Play is valid in this state.
func (s State) CanPlay() bool {
	return s == Prepared || s == Paused
}
