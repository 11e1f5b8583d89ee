package motion

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

const (
	// FPS is the frame rate Step is expected to be called at.
	FPS = 60

	settleEpsilon  = 0.002
	settleVelocity = 0.01
)

// Scene is a spring-settled Engine. SetProgress follows the finger
// directly; TransitionToStart/End release the progress to a critically
// damped spring which Step advances frame by frame.
type Scene struct {
	fromID, toID string
	progress     float64
	velocity     float64
	target       float64
	settling     bool
	spring       harmonica.Spring
	listeners    []Listener
}

// NewScene returns an idle scene.
func NewScene() *Scene {
	return &Scene{
		spring: harmonica.NewSpring(harmonica.FPS(FPS), 12.0, 1.0),
	}
}

// AddListener registers l for transition notifications.
func (s *Scene) AddListener(l Listener) {
	s.listeners = append(s.listeners, l)
}

// Transition returns the current endpoint pair.
func (s *Scene) Transition() (fromID, toID string) {
	return s.fromID, s.toID
}

// Progress returns the current progress in [0, 1].
func (s *Scene) Progress() float64 {
	return s.progress
}

// Animating reports whether a settle is in progress.
func (s *Scene) Animating() bool {
	return s.settling
}

// SetTransition selects the endpoint pair and resets progress to 0.
// Selecting the pair already in place is a no-op.
func (s *Scene) SetTransition(fromID, toID string) {
	if s.fromID == fromID && s.toID == toID {
		return
	}
	s.fromID, s.toID = fromID, toID
	s.progress = 0
	s.velocity = 0
	s.settling = false
	for _, l := range s.listeners {
		l.OnTransitionStarted(fromID, toID)
	}
}

// SetProgress moves the transition to p, interrupting any settle.
// Setting the current value again changes nothing.
func (s *Scene) SetProgress(p float64) {
	p = clamp01(p)
	if s.settling {
		s.settling = false
		s.velocity = 0
	}
	if p == s.progress {
		return
	}
	s.progress = p
	s.notifyChange()
}

// TransitionToStart settles the transition back to its start endpoint.
func (s *Scene) TransitionToStart() {
	s.settleTo(0)
}

// TransitionToEnd settles the transition to its end endpoint.
func (s *Scene) TransitionToEnd() {
	s.settleTo(1)
}

func (s *Scene) settleTo(target float64) {
	if s.fromID == "" && s.toID == "" {
		return
	}
	s.target = target
	s.settling = true
}

// Step advances a settle by one frame. Completion is reported on the frame
// the spring lands.
func (s *Scene) Step() {
	if !s.settling {
		return
	}
	s.progress, s.velocity = s.spring.Update(s.progress, s.velocity, s.target)
	if math.Abs(s.progress-s.target) < settleEpsilon && math.Abs(s.velocity) < settleVelocity {
		s.progress = s.target
		s.velocity = 0
		s.settling = false
		s.notifyChange()
		s.notifyCompleted()
		return
	}
	s.progress = clamp01(s.progress)
	s.notifyChange()
}

// Finish jumps a settle to its target immediately.
func (s *Scene) Finish() {
	if !s.settling {
		return
	}
	s.progress = s.target
	s.velocity = 0
	s.settling = false
	s.notifyChange()
	s.notifyCompleted()
}

func (s *Scene) notifyChange() {
	for _, l := range s.listeners {
		l.OnTransitionChange(s.fromID, s.toID, s.progress)
	}
}

func (s *Scene) notifyCompleted() {
	endpoint := s.toID
	if s.target == 0 {
		endpoint = s.fromID
	}
	for _, l := range s.listeners {
		l.OnTransitionCompleted(endpoint)
	}
}

func clamp01(p float64) float64 {
	if math.IsNaN(p) || p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Verify Scene implements Engine at compile time.
var _ Engine = (*Scene)(nil)
