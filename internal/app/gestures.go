package app

import (
	"github.com/sirupsen/logrus"

	"github.com/llehouerou/miniplayer/internal/freedrag"
	"github.com/llehouerou/miniplayer/internal/gesture"
	"github.com/llehouerou/miniplayer/internal/media"
	"github.com/llehouerou/miniplayer/internal/playerstate"
	"github.com/llehouerou/miniplayer/internal/transition"
	"github.com/llehouerou/miniplayer/internal/ui/layout"
)

// target is the surface that owns a pointer sequence.
type target int

const (
	targetNone target = iota
	targetPlayer
	targetBar
	targetDrag
)

// router captures each pointer sequence on the surface under its down event
// and forwards the rest of the sequence there.
type router struct {
	machine *playerstate.Machine
	player  *gesture.Surface // expanded player: drag up or down
	bar     *gesture.Surface // collapsed bar: drag down only
	drag    *freedrag.Controller
	newDrag func() *freedrag.Controller

	capture target
	pressed bool
	log     logrus.FieldLogger
}

type routerDeps struct {
	Machine        *playerstate.Machine
	Controller     *transition.Controller
	Player         media.Player
	ClickThreshold float64
	MaxDrag        float64
	NewDrag        func() *freedrag.Controller
	Log            logrus.FieldLogger
}

func newRouter(d routerDeps) *router {
	r := &router{
		machine: d.Machine,
		newDrag: d.NewDrag,
		log:     d.Log,
	}

	in := func(s playerstate.State) func() bool {
		return func() bool { return d.Machine.Current() == s }
	}
	trace := gesture.RecognizerFunc(func(ev gesture.Event) bool {
		r.log.WithFields(logrus.Fields{"action": ev.Action, "x": ev.X, "y": ev.Y}).Trace("pointer")
		return false
	})

	r.player = gesture.Bind(trace,
		gesture.NewScrollConfig(in(playerstate.Expanded), in(playerstate.Expanded), d.MaxDrag),
		d.Controller,
		gesture.WithClick(d.Player.Toggle),
		gesture.WithThreshold(d.ClickThreshold),
	)
	r.bar = gesture.Bind(trace,
		gesture.NewScrollConfig(gesture.Never, in(playerstate.Collapsed), d.MaxDrag),
		d.Controller,
		gesture.WithClick(func() { d.Controller.TransitionTo(playerstate.Expanded) }),
		gesture.WithThreshold(d.ClickThreshold),
	)

	if d.Machine.Current() == playerstate.MiniPlayer {
		r.attachDrag()
	}
	d.Machine.Subscribe(r.onStateChange)
	return r
}

// onStateChange gives the mini player its own drag handling only while it
// is showing.
func (r *router) onStateChange(prev, next playerstate.State) {
	if prev == playerstate.MiniPlayer {
		r.detachDrag()
	}
	if next == playerstate.MiniPlayer {
		r.attachDrag()
	}
}

func (r *router) attachDrag() {
	r.detachDrag()
	r.drag = r.newDrag()
}

func (r *router) detachDrag() {
	if r.drag == nil {
		return
	}
	r.drag.Detach()
	r.drag = nil
	if r.capture == targetDrag {
		r.capture = targetNone
	}
}

// Handle routes ev. rect is where the player is drawn right now.
func (r *router) Handle(ev gesture.Event, rect layout.Rect) bool {
	if ev.Action == gesture.ActionDown {
		r.capture = r.targetAt(ev, rect)
	}

	t := r.capture
	switch ev.Action {
	case gesture.ActionDown, gesture.ActionMove:
		r.pressed = t != targetNone
	case gesture.ActionUp, gesture.ActionCancel:
		r.pressed = false
		r.capture = targetNone
	}

	switch t {
	case targetPlayer:
		return r.player.Handle(ev)
	case targetBar:
		return r.bar.Handle(ev)
	case targetDrag:
		if r.drag != nil {
			return r.drag.Handle(ev)
		}
	}
	return false
}

func (r *router) targetAt(ev gesture.Event, rect layout.Rect) target {
	if !rect.Contains(ev.X, ev.Y) {
		return targetNone
	}
	switch r.machine.Current() {
	case playerstate.Expanded:
		return targetPlayer
	case playerstate.Collapsed:
		return targetBar
	case playerstate.MiniPlayer:
		if r.drag != nil {
			return targetDrag
		}
	}
	return targetNone
}
