package playerstate

// Machine owns the current state. The value is replaced wholesale when a
// transition completes. All calls happen on the UI loop.
type Machine struct {
	current     State
	subscribers []func(prev, next State)
}

// NewMachine returns a machine starting at initial.
func NewMachine(initial State) *Machine {
	return &Machine{current: initial}
}

// Current returns the current state.
func (m *Machine) Current() State {
	return m.current
}

// Set replaces the current state and notifies subscribers.
// Returns false if the state was already next.
func (m *Machine) Set(next State) bool {
	if next == m.current {
		return false
	}
	prev := m.current
	m.current = next
	for _, fn := range m.subscribers {
		fn(prev, next)
	}
	return true
}

// Subscribe registers fn to be called after every state change.
func (m *Machine) Subscribe(fn func(prev, next State)) {
	m.subscribers = append(m.subscribers, fn)
}
