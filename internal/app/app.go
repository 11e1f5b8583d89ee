// internal/app/app.go
package app

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/llehouerou/miniplayer/internal/config"
	"github.com/llehouerou/miniplayer/internal/freedrag"
	"github.com/llehouerou/miniplayer/internal/keymap"
	"github.com/llehouerou/miniplayer/internal/lifecycle"
	"github.com/llehouerou/miniplayer/internal/logging"
	"github.com/llehouerou/miniplayer/internal/media"
	"github.com/llehouerou/miniplayer/internal/motion"
	"github.com/llehouerou/miniplayer/internal/playerstate"
	"github.com/llehouerou/miniplayer/internal/state"
	"github.com/llehouerou/miniplayer/internal/transition"
	"github.com/llehouerou/miniplayer/internal/ui/layout"
)

// miniViewID identifies the mini player in persisted constraint sets.
const miniViewID = "player"

// Model is the root application model containing all state.
type Model struct {
	Machine    *playerstate.Machine
	Scene      *motion.Scene
	Controller *transition.Controller
	Player     media.Player
	StateMgr   state.Interface
	Keys       *keymap.Resolver
	Help       help.Model
	ShowHelp   bool
	ErrorMsg   string
	Width      int
	Height     int

	gestures *router
	mini     *miniWindow
	source   string
	framing  bool
	log      logrus.FieldLogger
	now      func() time.Time
}

// Deps are the collaborators of the model. Log and Now may be nil.
type Deps struct {
	Config    *config.Config
	State     state.Interface
	Media     media.Builder
	Scheduler lifecycle.Scheduler
	Log       logrus.FieldLogger
	Now       func() time.Time
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadMedia(), TickCmd())
}

// New creates the application model, restoring the persisted player state
// and mini player position.
func New(deps Deps) Model {
	log := deps.Log
	if log == nil {
		log = logging.Discard()
	}
	now := deps.Now
	if now == nil {
		now = time.Now
	}

	cfg := deps.Config
	display := cfg.GetDisplayConfig()
	gestures := cfg.GetGestureConfig()
	snap := cfg.GetSnapConfig()

	toCells := func(dp float64) float64 { return layout.DPToPx(dp, display.Density) }
	padding := toCells(snap.Padding)

	machine := playerstate.NewMachine(restoreState(deps.State, log))
	scene := motion.NewScene()
	controller := transition.New(machine, scene, log)
	scene.AddListener(controller)

	player := deps.Media.Build()
	size := layout.Size{W: float64(display.MiniWidth), H: float64(display.MiniHeight)}
	mini := newMiniWindow(size, padding, now)
	mini.restore = restoreMiniPosition(deps.State, log)

	newDrag := func() *freedrag.Controller {
		d := freedrag.New(mini, deps.State, deps.Scheduler, freedrag.Options{
			ViewID:         miniViewID,
			Endpoint:       playerstate.MiniPlayer.Endpoint(),
			ClickThreshold: toCells(gestures.ClickThreshold),
			Padding:        padding,
			Duration:       snap.Duration(),
		}, log)
		d.OnClick(func() { controller.TransitionTo(playerstate.Expanded) })
		return d
	}

	r := newRouter(routerDeps{
		Machine:        machine,
		Controller:     controller,
		Player:         player,
		ClickThreshold: toCells(gestures.ClickThreshold),
		MaxDrag:        toCells(gestures.MaxDragDistance),
		NewDrag:        newDrag,
		Log:            log,
	})

	stateMgr := deps.State
	machine.Subscribe(func(_, next playerstate.State) {
		stateMgr.SavePlayerState(next.Endpoint())
	})

	return Model{
		Machine:    machine,
		Scene:      scene,
		Controller: controller,
		Player:     player,
		StateMgr:   stateMgr,
		Keys:       keymap.NewResolver(keymap.All),
		Help:       help.New(),
		gestures:   r,
		mini:       mini,
		source:     cfg.Source,
		log:        log,
		now:        now,
	}
}
