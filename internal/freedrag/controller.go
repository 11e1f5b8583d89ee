// Package freedrag moves the mini player under the finger and snaps it to
// the nearest corner on release. The resting position is committed to the
// constraint store once the snap animation has settled.
package freedrag

import (
	"math"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/llehouerou/miniplayer/internal/errmsg"
	"github.com/llehouerou/miniplayer/internal/gesture"
	"github.com/llehouerou/miniplayer/internal/lifecycle"
	"github.com/llehouerou/miniplayer/internal/logging"
	"github.com/llehouerou/miniplayer/internal/state"
	"github.com/llehouerou/miniplayer/internal/ui/layout"
)

// View is the draggable view as seen by the controller.
type View interface {
	Bounds() layout.Rect
	Parent() layout.Size
	MoveTo(x, y float64)
	AnimateTo(target layout.SnapTarget)
}

// ConstraintStore persists the resting layout of a view.
type ConstraintStore interface {
	SaveConstraint(endpointID string, c state.Constraint) error
}

// Options configures a Controller. Distances are in device pixels.
type Options struct {
	ViewID         string
	Endpoint       string // layout endpoint the constraint belongs to
	ClickThreshold float64
	Padding        float64
	Duration       time.Duration
}

func (o Options) withDefaults() Options {
	if o.ClickThreshold <= 0 {
		o.ClickThreshold = gesture.DefaultClickThreshold
	}
	if o.Padding < 0 {
		o.Padding = 0
	}
	if o.Duration <= 0 {
		o.Duration = layout.DefaultSnapDuration
	}
	return o
}

// Controller handles the free drag of one view. It is bound to a lifecycle
// scope; Detach ends it.
type Controller struct {
	view    View
	store   ConstraintStore
	sched   lifecycle.Scheduler
	scope   *lifecycle.Scope
	opts    Options
	log     logrus.FieldLogger
	onClick func()

	active         bool
	offX, offY     float64
	startX, startY float64
	cancelCommit   func()
}

// New creates a controller for view. log may be nil.
func New(view View, store ConstraintStore, sched lifecycle.Scheduler, opts Options, log logrus.FieldLogger) *Controller {
	if log == nil {
		log = logging.Discard()
	}
	return &Controller{
		view:  view,
		store: store,
		sched: sched,
		scope: lifecycle.NewScope(),
		opts:  opts.withDefaults(),
		log:   log.WithField("component", "freedrag"),
	}
}

// OnClick sets the tap handler.
func (c *Controller) OnClick(fn func()) {
	c.onClick = fn
}

// Attached reports whether the controller's view is still alive.
func (c *Controller) Attached() bool {
	return c.scope.Alive()
}

// Handle processes ev and reports whether it was consumed. Every event is
// consumed while attached.
func (c *Controller) Handle(ev gesture.Event) bool {
	if !c.scope.Alive() {
		return false
	}

	switch ev.Action {
	case gesture.ActionDown:
		c.begin(ev)

	case gesture.ActionMove:
		if !c.active {
			c.begin(ev)
			return true
		}
		c.view.MoveTo(ev.X+c.offX, ev.Y+c.offY)

	case gesture.ActionUp, gesture.ActionCancel:
		if !c.active {
			c.begin(ev)
		}
		c.active = false
		c.release(ev)
	}
	return true
}

func (c *Controller) begin(ev gesture.Event) {
	// A new session invalidates any commit still waiting from the last one.
	c.cancelPending()

	b := c.view.Bounds()
	c.offX = b.X - ev.X
	c.offY = b.Y - ev.Y
	c.startX, c.startY = ev.X, ev.Y
	c.active = true
}

func (c *Controller) release(ev gesture.Event) {
	dx := math.Abs(ev.X - c.startX)
	dy := math.Abs(ev.Y - c.startY)
	if dx < c.opts.ClickThreshold && dy < c.opts.ClickThreshold {
		if c.onClick != nil {
			c.onClick()
		}
		return
	}

	target := layout.SnapToCorner(c.view.Parent(), c.view.Bounds(), c.opts.Padding, c.opts.Duration)
	c.log.WithFields(logrus.Fields{"x": target.X, "y": target.Y}).Debug("snapping to corner")
	c.settle(target)
}

// SnapTo animates the view to (x, y) and commits it like a released drag.
func (c *Controller) SnapTo(x, y float64) {
	if !c.scope.Alive() {
		return
	}
	c.active = false
	c.cancelPending()
	c.settle(layout.SnapTarget{X: x, Y: y, Duration: c.opts.Duration})
}

func (c *Controller) settle(target layout.SnapTarget) {
	c.view.AnimateTo(target)
	c.cancelCommit = c.scope.After(c.sched, target.Duration, func() {
		c.cancelCommit = nil
		c.commit(target)
	})
}

// commit writes the resting position. It runs after the snap animation so
// the stored margins never fight the animated translation.
func (c *Controller) commit(target layout.SnapTarget) {
	if !c.scope.Alive() {
		return
	}

	b := c.view.Bounds()
	constraint := state.Constraint{
		ViewID:       c.opts.ViewID,
		Width:        b.W,
		Height:       b.H,
		MarginStart:  b.X,
		MarginTop:    b.Y,
		TranslationX: b.X - target.X,
		TranslationY: b.Y - target.Y,
	}
	if err := c.store.SaveConstraint(c.opts.Endpoint, constraint); err != nil {
		c.log.WithError(err).Warn(errmsg.Format(errmsg.OpConstraintCommit, err))
		return
	}
	c.log.WithFields(logrus.Fields{"view": c.opts.ViewID, "x": b.X, "y": b.Y}).Debug("constraint committed")
}

func (c *Controller) cancelPending() {
	if c.cancelCommit != nil {
		c.cancelCommit()
		c.cancelCommit = nil
	}
}

// Detach ends the controller's lifetime. Pending commits are dropped.
func (c *Controller) Detach() {
	c.active = false
	c.cancelCommit = nil
	c.scope.Close()
}
