// internal/app/update.go
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/miniplayer/internal/errmsg"
	"github.com/llehouerou/miniplayer/internal/gesture"
	"github.com/llehouerou/miniplayer/internal/keymap"
	"github.com/llehouerou/miniplayer/internal/playerstate"
	"github.com/llehouerou/miniplayer/internal/ui/layout"
)

// actionTargets maps state actions to the state they request.
var actionTargets = map[keymap.Action]playerstate.State{
	keymap.ActionExpand:   playerstate.Expanded,
	keymap.ActionCollapse: playerstate.Collapsed,
	keymap.ActionMini:     playerstate.MiniPlayer,
}

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		m.mini.Resize(m.window())
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		ev, ok := gesture.FromMouse(msg)
		if !ok {
			return m, nil
		}
		m.gestures.Handle(ev, m.PlayerRect())
		return m, m.ensureFrames()

	case FrameMsg:
		return m.handleFrame(time.Time(msg))

	case TaskMsg:
		msg()
		return m, m.ensureFrames()

	case TickMsg:
		return m, TickCmd()

	case MediaReadyMsg:
		if msg.Err != nil {
			m.ErrorMsg = msg.Message
			m.log.WithError(msg.Err).Error("media unavailable")
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.Keys.Resolve(msg.String())
	switch action {
	case keymap.ActionQuit:
		m.Player.Release()
		return m, tea.Quit

	case keymap.ActionHelp:
		m.ShowHelp = !m.ShowHelp
		m.Help.ShowAll = m.ShowHelp

	case keymap.ActionPlayPause:
		m.Player.Toggle()

	case keymap.ActionExpand, keymap.ActionCollapse, keymap.ActionMini:
		m.Controller.TransitionTo(actionTargets[action])
		return m, m.ensureFrames()

	case keymap.ActionResetPosition:
		if m.Machine.Current() == playerstate.MiniPlayer && m.gestures.drag != nil {
			m.gestures.drag.SnapTo(m.mini.Home())
			return m, m.ensureFrames()
		}
	}
	return m, nil
}

func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	m.framing = false
	m.Scene.Step()
	m.mini.Step(now)
	return m, m.ensureFrames()
}

// ensureFrames starts the frame loop if something is animating and no frame
// is already scheduled.
func (m *Model) ensureFrames() tea.Cmd {
	if m.framing || !m.animating() {
		return nil
	}
	m.framing = true
	return FrameCmd()
}

func (m Model) animating() bool {
	return m.Scene.Animating() || m.mini.Animating()
}

func (m Model) window() layout.Size {
	return layout.Size{W: float64(m.Width), H: float64(m.Height)}
}

// PlayerRect returns where the player is drawn. During a transition the
// rect is interpolated between the two states by the scene's progress.
func (m Model) PlayerRect() layout.Rect {
	window := m.window()
	mini := m.mini.Bounds()
	current := layout.StateRect(m.Machine.Current(), window, mini)

	intent, ok := m.Controller.Intent()
	if !ok {
		return current
	}
	from := layout.StateRect(intent.From, window, mini)
	to := layout.StateRect(intent.To, window, mini)
	return layout.Lerp(from, to, m.Scene.Progress())
}

// loadMedia opens the configured source off the update loop.
func (m Model) loadMedia() tea.Cmd {
	if m.source == "" {
		return nil
	}
	player, source := m.Player, m.source
	return func() tea.Msg {
		if err := player.SetSource(source); err != nil {
			return MediaReadyMsg{Err: err, Message: errmsg.FormatWith(errmsg.OpMediaOpen, source, err)}
		}
		if err := player.Prepare(); err != nil {
			return MediaReadyMsg{Err: err, Message: errmsg.FormatWith(errmsg.OpMediaPrepare, source, err)}
		}
		if err := player.Play(); err != nil {
			return MediaReadyMsg{Err: err, Message: errmsg.Format(errmsg.OpMediaPlay, err)}
		}
		return MediaReadyMsg{}
	}
}
