package keymap

import "github.com/charmbracelet/bubbles/key"

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "playback", "player", "mini"
}

// Key converts the binding to a bubbles key binding for the help view.
func (b Binding) Key() key.Binding {
	return key.NewBinding(
		key.WithKeys(b.Keys...),
		key.WithHelp(helpKey(b.Keys), b.Description),
	)
}

func helpKey(keys []string) string {
	if len(keys) == 0 {
		return ""
	}
	if keys[0] == " " {
		return "space"
	}
	return keys[0]
}

// All contains all key bindings.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "quit", "global"},
	{ActionHelp, []string{"?"}, "help", "global"},

	// Playback
	{ActionPlayPause, []string{" "}, "play/pause", "playback"},

	// Player state
	{ActionExpand, []string{"e", "enter"}, "expand", "player"},
	{ActionCollapse, []string{"c"}, "collapse", "player"},
	{ActionMini, []string{"m"}, "mini player", "player"},

	// Mini player
	{ActionResetPosition, []string{"r"}, "reset position", "mini"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
