package lifecycle

import (
	"sync"
	"time"
)

// Scope is the lifetime of a view. Tasks scheduled through it are dropped
// once it closes, whether they are still waiting or already due.
type Scope struct {
	// A TimerScheduler without post fires tasks on its timer goroutine.
	mu      sync.Mutex
	closed  bool
	nextID  int
	pending map[int]func()
}

// NewScope returns an open scope.
func NewScope() *Scope {
	return &Scope{pending: make(map[int]func())}
}

// Alive reports whether the scope is still open.
func (s *Scope) Alive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.closed
}

// After schedules fn on sched, bound to this scope. Scheduling on a closed
// scope does nothing.
func (s *Scope) After(sched Scheduler, d time.Duration, fn func()) (cancel func()) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return func() {}
	}
	s.nextID++
	id := s.nextID
	s.pending[id] = nil // registered before the task can fire
	s.mu.Unlock()

	stop := sched.After(d, func() {
		s.mu.Lock()
		_, ok := s.pending[id]
		if s.closed || !ok {
			s.mu.Unlock()
			return
		}
		delete(s.pending, id)
		s.mu.Unlock()
		fn()
	})

	s.mu.Lock()
	if _, ok := s.pending[id]; ok {
		s.pending[id] = stop
	}
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		c, ok := s.pending[id]
		delete(s.pending, id)
		s.mu.Unlock()
		if ok && c != nil {
			c()
		}
	}
}

// Pending returns the number of scheduled tasks that have not run.
func (s *Scope) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Close cancels every pending task. Later tasks are never scheduled.
func (s *Scope) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	pending := s.pending
	s.pending = make(map[int]func())
	s.mu.Unlock()

	for _, c := range pending {
		if c != nil {
			c()
		}
	}
}
