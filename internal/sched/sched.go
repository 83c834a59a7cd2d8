// Package sched provides keyed, cancellable one-shot task scheduling.
//
// Scheduling a task under a key that already has a pending task supersedes
// the pending one, so within any window only the last scheduled function
// runs. This is the debounce primitive behind search input and the timer
// behind notification auto-dismissal.
package sched

import (
	"sync"
	"time"
)

// Scheduler owns a set of pending keyed timers.
type Scheduler struct {
	mu      sync.Mutex
	pending map[string]*time.Timer
	stopped bool
}

// New creates a new scheduler.
func New() *Scheduler {
	return &Scheduler{
		pending: make(map[string]*time.Timer),
	}
}

// Schedule runs fn after delay. A pending task with the same key is
// cancelled first; it will never fire.
func (s *Scheduler) Schedule(key string, delay time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}

	if t, ok := s.pending[key]; ok {
		t.Stop()
	}

	var t *time.Timer
	t = time.AfterFunc(delay, func() {
		s.mu.Lock()
		// A superseding Schedule call replaces the map entry before this
		// fires. If the entry is no longer ours the replacement owns the
		// key and this task must not run.
		if s.pending[key] != t {
			s.mu.Unlock()
			return
		}
		delete(s.pending, key)
		stopped := s.stopped
		s.mu.Unlock()

		if !stopped {
			fn()
		}
	})
	s.pending[key] = t
}

// Cancel stops the pending task for key, if any.
func (s *Scheduler) Cancel(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.pending[key]; ok {
		t.Stop()
		delete(s.pending, key)
	}
}

// Pending reports whether a task is scheduled under key.
func (s *Scheduler) Pending(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.pending[key]
	return ok
}

// Stop cancels all pending tasks. The scheduler accepts no further work.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopped = true
	for key, t := range s.pending {
		t.Stop()
		delete(s.pending, key)
	}
}
