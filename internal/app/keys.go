package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/llehouerou/miniplayer/internal/keymap"
	"github.com/llehouerou/miniplayer/internal/playerstate"
)

// helpKeys implements help.KeyMap for the current player state.
type helpKeys struct {
	state playerstate.State
	keys  *keymap.Resolver
}

// ShortHelp lists the bindings usable right now.
func (k helpKeys) ShortHelp() []key.Binding {
	var usable []keymap.Binding
	for _, b := range keymap.All {
		if k.available(b) {
			usable = append(usable, b)
		}
	}
	return k.keys.HelpFor(usable)
}

// FullHelp groups every binding by context.
func (k helpKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		k.keys.HelpFor(keymap.ByContext("global")),
		k.keys.HelpFor(keymap.ByContext("playback")),
		k.keys.HelpFor(keymap.ByContext("player")),
		k.keys.HelpFor(keymap.ByContext("mini")),
	}
}

func (k helpKeys) available(b keymap.Binding) bool {
	if target, ok := actionTargets[b.Action]; ok {
		return playerstate.CanTransition(k.state, target)
	}
	if b.Context == "mini" {
		return k.state == playerstate.MiniPlayer
	}
	return true
}

// plainHint renders the short help without styling, for the player footer.
func plainHint(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " · ")
}
