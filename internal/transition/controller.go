// Package transition maps classified scroll signals onto player state
// transitions and resolves released drags.
package transition

import (
	"github.com/sirupsen/logrus"

	"github.com/llehouerou/miniplayer/internal/gesture"
	"github.com/llehouerou/miniplayer/internal/logging"
	"github.com/llehouerou/miniplayer/internal/motion"
	"github.com/llehouerou/miniplayer/internal/playerstate"
)

const (
	// CommitThreshold is the progress past which a released drag completes.
	// It is deliberately low: any noticeable drag commits.
	CommitThreshold = 0.1

	// AutoCompleteThreshold is the progress past which an armed drag
	// completes without waiting for release.
	AutoCompleteThreshold = 0.5
)

// Intent is the transition currently driven by the controller.
type Intent struct {
	From     playerstate.State
	To       playerstate.State
	Progress float64
}

type phase int

const (
	phaseIdle     phase = iota
	phaseDragging       // progress follows the finger
	phaseSettling       // engine is animating to an endpoint
)

// Controller is the gesture.Dispatcher of the player surfaces and the
// motion.Listener of the engine. It runs on the UI loop only.
type Controller struct {
	machine   *playerstate.Machine
	engine    motion.Engine
	log       logrus.FieldLogger
	intent    Intent
	phase     phase
	snapArmed bool
}

// New creates a controller driving engine from machine's state.
func New(machine *playerstate.Machine, engine motion.Engine, log logrus.FieldLogger) *Controller {
	if log == nil {
		log = logging.Discard()
	}
	return &Controller{
		machine:   machine,
		engine:    engine,
		log:       log.WithField("component", "transition"),
		snapArmed: true,
	}
}

// State returns the current player state.
func (c *Controller) State() playerstate.State {
	return c.machine.Current()
}

// Intent returns the in-flight intent and whether there is one.
func (c *Controller) Intent() (Intent, bool) {
	return c.intent, c.phase != phaseIdle
}

// SnapArmed reports whether the next drag past the midpoint auto-completes.
func (c *Controller) SnapArmed() bool {
	return c.snapArmed
}

// OnScrollDown implements gesture.Dispatcher.
func (c *Controller) OnScrollDown(progress float64, _ gesture.ScrollConfig) {
	switch c.machine.Current() {
	case playerstate.Collapsed:
		c.drive(playerstate.Collapsed, playerstate.Expanded, progress)
	case playerstate.Expanded:
		c.drive(playerstate.Expanded, playerstate.MiniPlayer, progress)
	default:
		c.log.WithField("state", c.machine.Current()).Debug("scroll down ignored")
	}
}

// OnScrollUp implements gesture.Dispatcher.
func (c *Controller) OnScrollUp(progress float64, _ gesture.ScrollConfig) {
	switch c.machine.Current() {
	case playerstate.Expanded:
		c.drive(playerstate.Expanded, playerstate.Collapsed, progress)
	default:
		c.log.WithField("state", c.machine.Current()).Debug("scroll up ignored")
	}
}

// OnCancelScroll implements gesture.Dispatcher. It snaps the in-flight
// drag to an endpoint using CommitThreshold.
func (c *Controller) OnCancelScroll(isDown bool, _ gesture.ScrollConfig) {
	if c.phase != phaseDragging {
		return
	}

	p := c.intent.Progress
	var toEnd bool
	if isDown {
		toEnd = !(p < CommitThreshold)
	} else {
		toEnd = p > CommitThreshold
	}

	c.phase = phaseSettling
	c.log.WithFields(logrus.Fields{
		"from":     c.intent.From,
		"to":       c.intent.To,
		"progress": p,
		"commit":   toEnd,
	}).Debug("drag released")

	if toEnd {
		c.engine.TransitionToEnd()
	} else {
		c.engine.TransitionToStart()
	}
}

// TransitionTo requests a full transition from the current state to target,
// e.g. on a tap. Illegal pairs and requests during a transition are ignored.
func (c *Controller) TransitionTo(target playerstate.State) bool {
	current := c.machine.Current()
	if c.phase != phaseIdle {
		return false
	}
	if err := playerstate.ValidateTransition(current, target); err != nil {
		c.log.WithError(err).Debug("transition request ignored")
		return false
	}
	c.intent = Intent{From: current, To: target}
	c.phase = phaseSettling
	c.engine.SetTransition(current.Endpoint(), target.Endpoint())
	c.engine.TransitionToEnd()
	return true
}

func (c *Controller) drive(from, to playerstate.State, progress float64) {
	if c.phase == phaseSettling {
		// Auto-completed or released; the engine owns progress now.
		return
	}
	progress = gesture.Clamp(progress, 0, 1)

	if c.phase == phaseIdle || c.intent.From != from || c.intent.To != to {
		c.intent = Intent{From: from, To: to}
		c.phase = phaseDragging
		c.engine.SetTransition(from.Endpoint(), to.Endpoint())
	} else if c.intent.Progress == progress {
		return
	}

	c.intent.Progress = progress
	c.engine.SetProgress(progress)

	if c.snapArmed && progress > AutoCompleteThreshold {
		c.snapArmed = false
		c.phase = phaseSettling
		c.log.WithFields(logrus.Fields{"from": from, "to": to}).Debug("auto-completing past midpoint")
		c.engine.TransitionToEnd()
	}
}

// OnTransitionStarted implements motion.Listener.
func (c *Controller) OnTransitionStarted(string, string) {}

// OnTransitionChange implements motion.Listener. It follows the engine's
// progress while settling and ignores pairs that are not in flight.
func (c *Controller) OnTransitionChange(fromID, toID string, progress float64) {
	if c.phase != phaseSettling {
		return
	}
	if fromID != c.intent.From.Endpoint() || toID != c.intent.To.Endpoint() {
		return
	}
	c.intent.Progress = gesture.Clamp(progress, 0, 1)
}

// OnTransitionCompleted implements motion.Listener. The landed endpoint is
// compared against the in-flight intent; anything else is stale.
func (c *Controller) OnTransitionCompleted(endpointID string) {
	landed, ok := playerstate.ByEndpoint(endpointID)
	if !ok || c.phase == phaseIdle {
		c.log.WithField("endpoint", endpointID).Debug("stale completion ignored")
		return
	}

	switch landed {
	case c.intent.To:
		c.reset()
		c.log.WithFields(logrus.Fields{
			"state": landed,
			"tag":   landed.AnalyticsTag(),
		}).Info("player state changed")
		c.machine.Set(landed)
	case c.intent.From:
		c.reset()
		c.log.WithField("state", landed).Debug("transition reverted")
	default:
		c.log.WithField("endpoint", endpointID).Debug("stale completion ignored")
	}
}

func (c *Controller) reset() {
	c.intent = Intent{}
	c.phase = phaseIdle
	c.snapArmed = true
}

// Verify Controller implements its contracts at compile time.
var (
	_ gesture.Dispatcher = (*Controller)(nil)
	_ motion.Listener    = (*Controller)(nil)
)
