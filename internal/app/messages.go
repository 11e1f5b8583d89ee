// Package app contains the root Bubble Tea model of the player.
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	// frameInterval paces settle animations.
	frameInterval = 16 * time.Millisecond
	// tickInterval refreshes the playback position.
	tickInterval = time.Second
)

// FrameMsg advances running animations by one frame.
type FrameMsg time.Time

// TickMsg refreshes the playback clock.
type TickMsg time.Time

// TaskMsg carries a deferred task back onto the update loop.
type TaskMsg func()

// MediaReadyMsg reports the outcome of opening the configured source.
type MediaReadyMsg struct {
	Err     error
	Message string // user-facing description of Err
}

// FrameCmd schedules the next animation frame.
func FrameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// TickCmd schedules the next playback clock refresh.
func TickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
