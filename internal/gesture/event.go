package gesture

// Action is the phase of a pointer event.
type Action int

const (
	ActionDown Action = iota
	ActionMove
	ActionUp
	ActionCancel
)

// String returns the action name for debugging.
func (a Action) String() string {
	switch a {
	case ActionDown:
		return "Down"
	case ActionMove:
		return "Move"
	case ActionUp:
		return "Up"
	case ActionCancel:
		return "Cancel"
	default:
		return "Unknown"
	}
}

// Event is a single pointer event in device pixels.
type Event struct {
	Action Action
	X, Y   float64
}

// Down returns a down event at (x, y).
func Down(x, y float64) Event { return Event{Action: ActionDown, X: x, Y: y} }

// Move returns a move event at (x, y).
func Move(x, y float64) Event { return Event{Action: ActionMove, X: x, Y: y} }

// Up returns an up event at (x, y).
func Up(x, y float64) Event { return Event{Action: ActionUp, X: x, Y: y} }

// Cancel returns a cancel event at (x, y).
func Cancel(x, y float64) Event { return Event{Action: ActionCancel, X: x, Y: y} }

// Signal is the classification of an event within a touch session.
type Signal int

const (
	SignalNone Signal = iota
	SignalClick
	SignalDragDown
	SignalDragUp
	SignalCancelDown
	SignalCancelUp
)

// String returns the signal name for debugging.
func (s Signal) String() string {
	switch s {
	case SignalNone:
		return "None"
	case SignalClick:
		return "Click"
	case SignalDragDown:
		return "DragDown"
	case SignalDragUp:
		return "DragUp"
	case SignalCancelDown:
		return "CancelDown"
	case SignalCancelUp:
		return "CancelUp"
	default:
		return "Unknown"
	}
}

// IsDrag reports whether the signal is a directional drag.
func (s Signal) IsDrag() bool {
	return s == SignalDragDown || s == SignalDragUp
}

// IsTerminal reports whether the signal ends the session.
func (s Signal) IsTerminal() bool {
	return s == SignalClick || s == SignalCancelDown || s == SignalCancelUp
}

// Result is what the classifier produces for one event.
type Result struct {
	Signal   Signal
	Progress float64 // set for drag signals only
}
