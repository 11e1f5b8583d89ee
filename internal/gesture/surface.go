package gesture

// Recognizer is an optional low-level recognizer that observes every event
// before classification. Returning true marks the event as consumed.
type Recognizer interface {
	Recognize(ev Event) bool
}

// RecognizerFunc adapts a function to Recognizer.
type RecognizerFunc func(ev Event) bool

// Recognize calls f.
func (f RecognizerFunc) Recognize(ev Event) bool { return f(ev) }

// Surface is the bindable touch entry point of one view.
type Surface struct {
	recognizer Recognizer
	config     ScrollConfig
	dispatcher Dispatcher
	classifier *Classifier
	onClick    func()

	// dispatched is set once a drag of the current session reached the
	// dispatcher; only then is the terminal cancel forwarded.
	dispatched bool
	// lastDown is the direction of the last dispatched drag.
	lastDown bool
}

// Option configures a Surface.
type Option func(*Surface)

// WithClick sets the handler for taps.
func WithClick(fn func()) Option {
	return func(s *Surface) { s.onClick = fn }
}

// WithThreshold sets the click threshold in device pixels.
func WithThreshold(threshold float64) Option {
	return func(s *Surface) { s.classifier = NewClassifier(threshold) }
}

// Bind creates a surface. recognizer may be nil.
func Bind(recognizer Recognizer, cfg ScrollConfig, d Dispatcher, opts ...Option) *Surface {
	s := &Surface{
		recognizer: recognizer,
		config:     cfg,
		dispatcher: d,
		classifier: NewClassifier(DefaultClickThreshold),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Config returns the bound scroll config.
func (s *Surface) Config() ScrollConfig {
	return s.config
}

// Active reports whether a touch session is in progress.
func (s *Surface) Active() bool {
	return s.classifier.session.Active
}

// Handle feeds ev through the surface and reports whether it was consumed.
func (s *Surface) Handle(ev Event) bool {
	consumed := false
	if s.recognizer != nil {
		consumed = s.recognizer.Recognize(ev)
	}

	if ev.Action == ActionDown {
		s.dispatched = false
	}

	res := s.classifier.Handle(ev, s.config.MaxDragDistance())
	switch res.Signal {
	case SignalNone:
		return true

	case SignalDragDown:
		if s.config.CanScrollDown() && s.dispatcher != nil {
			s.dispatched = true
			s.lastDown = true
			s.dispatcher.OnScrollDown(res.Progress, s.config)
		}
		return true

	case SignalDragUp:
		if s.config.CanScrollUp() && s.dispatcher != nil {
			s.dispatched = true
			s.lastDown = false
			s.dispatcher.OnScrollUp(res.Progress, s.config)
		}
		return true

	case SignalClick:
		if s.dispatched {
			// The finger came back to its start after a drag. The drag still
			// has to be resolved, so this is a release, not a tap.
			s.dispatched = false
			s.dispatcher.OnCancelScroll(s.lastDown, s.config)
			return true
		}
		if s.onClick != nil {
			s.onClick()
			return true
		}
		return consumed

	case SignalCancelDown, SignalCancelUp:
		forward := s.dispatched
		s.dispatched = false
		if forward && s.dispatcher != nil {
			s.dispatcher.OnCancelScroll(res.Signal == SignalCancelDown, s.config)
		}
		return true
	}
	return consumed
}
