// internal/media/interface.go
package media

import (
	"errors"
	"time"
)

var (
	// ErrInvalidState is returned when a call is not valid in the current state.
	ErrInvalidState = errors.New("invalid player state")
	// ErrUnsupported is returned for sources the decoder cannot handle.
	ErrUnsupported = errors.New("unsupported format")
)

// Player is the opaque media playback handle.
type Player interface {
	SetSource(uri string) error
	Prepare() error
	Play() error
	Pause()
	Toggle()
	Release()
	State() State
	Info() *TrackInfo
	Position() time.Duration
	Duration() time.Duration
}

// Builder creates players.
type Builder interface {
	Build() Player
}

// Verify implementations at compile time.
var (
	_ Player  = (*beepPlayer)(nil)
	_ Builder = (*beepBuilder)(nil)
)
