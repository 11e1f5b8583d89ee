package playerstate

import "fmt"

// Transition is a single allowed edge between two states.
type Transition struct {
	From State
	To   State
}

var transitionsTable = []Transition{
	{From: Expanded, To: Collapsed},
	{From: Collapsed, To: Expanded},
	{From: Expanded, To: MiniPlayer},
	{From: MiniPlayer, To: Expanded},
}

// CanTransition reports whether from→to is a legal adjacency pair.
func CanTransition(from, to State) bool {
	for _, tr := range transitionsTable {
		if tr.From == from && tr.To == to {
			return true
		}
	}
	return false
}

// ValidateTransition returns an error describing an illegal pair.
func ValidateTransition(from, to State) error {
	if !CanTransition(from, to) {
		return fmt.Errorf("invalid player transition: %s -> %s", from, to)
	}
	return nil
}

// Targets returns every state reachable from the given state.
func Targets(from State) []State {
	var out []State
	for _, tr := range transitionsTable {
		if tr.From == from {
			out = append(out, tr.To)
		}
	}
	return out
}
