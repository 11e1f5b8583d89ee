package gesture

import "math"

// Session is the record of one touch sequence. It lives from down to up or
// cancel and is never persisted.
type Session struct {
	StartX, StartY     float64
	LastRawX, LastRawY float64
	DragOffsetX        float64
	DragOffsetY        float64
	Dragging           bool
	Active             bool
}

func (s *Session) begin(x, y float64) {
	*s = Session{
		StartX:   x,
		StartY:   y,
		LastRawX: x,
		LastRawY: y,
		Active:   true,
	}
}

func (s *Session) track(x, y float64) {
	s.LastRawX = x
	s.LastRawY = y
	s.DragOffsetX = x - s.StartX
	s.DragOffsetY = y - s.StartY
}

// Classifier turns the pointer events of one surface into signals.
// It holds the single active session of that surface.
type Classifier struct {
	threshold float64
	session   Session
}

// NewClassifier returns a classifier using the given click threshold in
// device pixels. A non-positive threshold uses DefaultClickThreshold.
func NewClassifier(threshold float64) *Classifier {
	if threshold <= 0 {
		threshold = DefaultClickThreshold
	}
	return &Classifier{threshold: threshold}
}

// Threshold returns the click threshold.
func (c *Classifier) Threshold() float64 {
	return c.threshold
}

// Session returns a copy of the current session.
func (c *Classifier) Session() Session {
	return c.session
}

// Handle classifies ev. maxDrag is the distance that maps to progress 1.
func (c *Classifier) Handle(ev Event, maxDrag float64) Result {
	switch ev.Action {
	case ActionDown:
		c.session.begin(ev.X, ev.Y)
		return Result{}

	case ActionMove:
		if !c.session.Active {
			// No baseline yet: this event becomes it.
			c.session.begin(ev.X, ev.Y)
			return Result{}
		}
		c.session.track(ev.X, ev.Y)
		deltaY := c.session.DragOffsetY
		if math.Abs(deltaY) <= c.threshold {
			return Result{}
		}
		c.session.Dragging = true
		progress := Progress(deltaY, maxDrag)
		if deltaY > c.threshold {
			return Result{Signal: SignalDragDown, Progress: progress}
		}
		return Result{Signal: SignalDragUp, Progress: progress}

	case ActionUp, ActionCancel:
		if !c.session.Active {
			c.session.begin(ev.X, ev.Y)
		}
		c.session.track(ev.X, ev.Y)
		dx, dy := c.session.DragOffsetX, c.session.DragOffsetY
		c.session = Session{}

		if math.Abs(dx) < c.threshold && math.Abs(dy) < c.threshold {
			return Result{Signal: SignalClick}
		}
		// Same boundary as the click test: |dy| >= threshold has left the
		// click zone.
		if dy >= c.threshold {
			return Result{Signal: SignalCancelDown}
		}
		return Result{Signal: SignalCancelUp}
	}
	return Result{}
}

// Progress converts a drag distance into a value in [0, 1].
func Progress(delta, maxDrag float64) float64 {
	if maxDrag <= 0 {
		maxDrag = DefaultMaxDragDistance
	}
	return Clamp(math.Abs(delta)/maxDrag, 0, 1)
}

// Clamp bounds v to [lo, hi]. NaN is mapped to lo.
func Clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
