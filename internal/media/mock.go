// internal/media/mock.go
package media

import "time"

// Mock is a test double for Player.
type Mock struct {
	state      State
	source     string
	info       *TrackInfo
	position   time.Duration
	prepareErr error
	calls      []string
}

// NewMock creates a new mock player for testing.
func NewMock() *Mock {
	return &Mock{state: Idle}
}

func (m *Mock) SetSource(uri string) error {
	m.calls = append(m.calls, "SetSource")
	if m.state != Idle && m.state != Source {
		return ErrInvalidState
	}
	m.source = uri
	m.state = Source
	return nil
}

func (m *Mock) Prepare() error {
	m.calls = append(m.calls, "Prepare")
	if m.prepareErr != nil {
		return m.prepareErr
	}
	if m.state != Source {
		return ErrInvalidState
	}
	if m.info == nil {
		m.info = fallbackInfo(m.source)
	}
	m.state = Prepared
	return nil
}

func (m *Mock) Play() error {
	m.calls = append(m.calls, "Play")
	if !m.state.CanPlay() {
		return ErrInvalidState
	}
	m.state = Playing
	return nil
}

func (m *Mock) Pause() {
	m.calls = append(m.calls, "Pause")
	if m.state == Playing {
		m.state = Paused
	}
}

func (m *Mock) Toggle() {
	switch m.state {
	case Playing:
		m.Pause()
	case Paused:
		_ = m.Play()
	default:
		// Nothing to toggle
	}
}

func (m *Mock) Release() {
	m.calls = append(m.calls, "Release")
	m.state = Released
}

func (m *Mock) State() State { return m.state }

func (m *Mock) Info() *TrackInfo { return m.info }

func (m *Mock) Position() time.Duration { return m.position }

func (m *Mock) Duration() time.Duration {
	if m.info == nil {
		return 0
	}
	return m.info.Duration
}

// Test helpers

func (m *Mock) SetInfo(info *TrackInfo) { m.info = info }

func (m *Mock) SetPosition(d time.Duration) { m.position = d }

func (m *Mock) SetPrepareError(err error) { m.prepareErr = err }

func (m *Mock) Calls() []string { return m.calls }

// Verify Mock implements Player at compile time.
var _ Player = (*Mock)(nil)

// MockBuilder returns the same mock on every Build.
type MockBuilder struct{ Player *Mock }

func (b MockBuilder) Build() Player { return b.Player }
