// Package lifecycle ties deferred work to the lifetime of an owner. Tasks
// scheduled through a Scope are cancelled when the scope closes, so they
// never run against a torn-down view.
package lifecycle

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// Scheduler runs fn after d. The returned function cancels the task; it is
// safe to call more than once and after the task ran.
type Scheduler interface {
	After(d time.Duration, fn func()) (cancel func())
}

// TimerScheduler schedules with time.AfterFunc. When post is set, due tasks
// are handed to it so they run on the owner's event loop instead of the
// timer goroutine.
type TimerScheduler struct {
	post func(task func())
}

// NewTimerScheduler creates a scheduler. post may be nil.
func NewTimerScheduler(post func(task func())) *TimerScheduler {
	return &TimerScheduler{post: post}
}

// After implements Scheduler.
func (s *TimerScheduler) After(d time.Duration, fn func()) func() {
	var cancelled atomic.Bool
	run := func() {
		if !cancelled.Load() {
			fn()
		}
	}
	timer := time.AfterFunc(d, func() {
		if s.post != nil {
			s.post(run)
			return
		}
		run()
	})
	return func() {
		cancelled.Store(true)
		timer.Stop()
	}
}

// ManualScheduler is a deterministic Scheduler driven by Advance.
type ManualScheduler struct {
	mu    sync.Mutex
	now   time.Duration
	seq   int
	tasks []*manualTask
}

type manualTask struct {
	due       time.Duration
	seq       int
	fn        func()
	cancelled bool
}

// NewManualScheduler creates a scheduler at time zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// After implements Scheduler.
func (s *ManualScheduler) After(d time.Duration, fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	t := &manualTask{due: s.now + d, seq: s.seq, fn: fn}
	s.tasks = append(s.tasks, t)
	return func() {
		s.mu.Lock()
		t.cancelled = true
		s.mu.Unlock()
	}
}

// Advance moves the clock forward and runs every task that became due, in
// due order.
func (s *ManualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	s.now += d
	var due, rest []*manualTask
	for _, t := range s.tasks {
		switch {
		case t.cancelled:
		case t.due <= s.now:
			due = append(due, t)
		default:
			rest = append(rest, t)
		}
	}
	s.tasks = rest
	s.mu.Unlock()

	sort.Slice(due, func(i, j int) bool {
		if due[i].due != due[j].due {
			return due[i].due < due[j].due
		}
		return due[i].seq < due[j].seq
	})
	for _, t := range due {
		s.mu.Lock()
		cancelled := t.cancelled
		s.mu.Unlock()
		if !cancelled {
			t.fn()
		}
	}
}

// Pending returns the number of tasks not yet run or cancelled.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.tasks {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// Verify implementations at compile time.
var (
	_ Scheduler = (*TimerScheduler)(nil)
	_ Scheduler = (*ManualScheduler)(nil)
)
