package motion

import "fmt"

// Recorder is a test double for Engine that records every call.
type Recorder struct {
	calls []string
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) SetTransition(fromID, toID string) {
	r.calls = append(r.calls, fmt.Sprintf("SetTransition(%s,%s)", fromID, toID))
}

func (r *Recorder) SetProgress(p float64) {
	r.calls = append(r.calls, fmt.Sprintf("SetProgress(%.2f)", p))
}

func (r *Recorder) TransitionToStart() {
	r.calls = append(r.calls, "TransitionToStart")
}

func (r *Recorder) TransitionToEnd() {
	r.calls = append(r.calls, "TransitionToEnd")
}

// Test helpers

// Calls returns the recorded calls in order.
func (r *Recorder) Calls() []string { return r.calls }

// Last returns the most recent call, or "" if none.
func (r *Recorder) Last() string {
	if len(r.calls) == 0 {
		return ""
	}
	return r.calls[len(r.calls)-1]
}

// Reset forgets recorded calls.
func (r *Recorder) Reset() { r.calls = nil }

// Verify Recorder implements Engine at compile time.
var _ Engine = (*Recorder)(nil)
