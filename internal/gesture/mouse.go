package gesture

import tea "github.com/charmbracelet/bubbletea"

// FromMouse converts a terminal mouse message into a pointer event.
// Cells are treated as device pixels. Wheel and non-left presses are not
// pointer events and report ok=false.
func FromMouse(msg tea.MouseMsg) (Event, bool) {
	x, y := float64(msg.X), float64(msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return Event{}, false
		}
		return Down(x, y), true

	case tea.MouseActionMotion:
		// Motion without a held button is hover.
		if msg.Button != tea.MouseButtonLeft {
			return Event{}, false
		}
		return Move(x, y), true

	case tea.MouseActionRelease:
		return Up(x, y), true
	}
	return Event{}, false
}
