// internal/app/view.go
package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/miniplayer/internal/playerstate"
	"github.com/llehouerou/miniplayer/internal/ui/overlay"
	"github.com/llehouerou/miniplayer/internal/ui/playerview"
	"github.com/llehouerou/miniplayer/internal/ui/render"
	"github.com/llehouerou/miniplayer/internal/ui/styles"
)

const appTitle = "miniplayer"

// View implements tea.Model.
func (m Model) View() string {
	if m.Width <= 0 || m.Height <= 0 {
		return ""
	}

	keys := helpKeys{state: m.Machine.Current(), keys: m.Keys}
	view := m.backdrop(keys)

	x, y, w, h := m.PlayerRect().Round()
	if w > 0 && h > 0 {
		s := playerview.NewState(m.Player)
		s.Label = m.Machine.Current().String()
		s.Hint = plainHint(keys.ShortHelp())
		s.Status = m.ErrorMsg
		s.Emphasis = m.emphasis()
		view = overlay.PlaceAt(view, playerview.Render(s, w, h), x, y, m.Width)
	}

	if m.ShowHelp {
		box := lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, m.helpBox(keys))
		view = overlay.Compose(view, box, m.Width)
	}
	return view
}

// backdrop is what shows around a collapsed or mini player.
func (m Model) backdrop(keys helpKeys) string {
	st := styles.T().S()

	lines := make([]string, m.Height)
	lines[m.Height/2] = render.Center(st.Subtle.Render(appTitle), m.Width)
	if m.Height > 1 {
		lines[m.Height-1] = m.Help.ShortHelpView(keys.ShortHelp())
	}
	return render.Block(lines, m.Width, m.Height)
}

func (m Model) helpBox(keys helpKeys) string {
	t := styles.T()
	body := m.Help.FullHelpView(keys.FullHelp())
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderFocus).
		Padding(0, 1).
		Render(strings.TrimRight(body, "\n"))
}

// emphasis highlights the frame while the player is held or moving.
func (m Model) emphasis() float64 {
	switch {
	case m.gestures.pressed:
		return 1
	case m.Scene.Animating(), m.mini.Animating():
		return 0.5
	case m.Machine.Current() == playerstate.MiniPlayer:
		return 0.25
	}
	return 0
}
