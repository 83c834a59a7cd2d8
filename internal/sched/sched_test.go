package sched

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedule_Fires(t *testing.T) {
	s := New()
	defer s.Stop()

	done := make(chan struct{})
	s.Schedule("k", 10*time.Millisecond, func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduled task did not fire")
	}
}

func TestSchedule_Supersedes(t *testing.T) {
	s := New()
	defer s.Stop()

	var fired int32
	done := make(chan int, 2)

	// Rapid reschedules under the same key: only the last one may run.
	s.Schedule("search", 30*time.Millisecond, func() {
		atomic.AddInt32(&fired, 1)
		done <- 1
	})
	s.Schedule("search", 30*time.Millisecond, func() {
		atomic.AddInt32(&fired, 1)
		done <- 2
	})
	s.Schedule("search", 30*time.Millisecond, func() {
		atomic.AddInt32(&fired, 1)
		done <- 3
	})

	select {
	case got := <-done:
		assert.Equal(t, 3, got, "only the last scheduled task should execute")
	case <-time.After(time.Second):
		t.Fatal("no task fired")
	}

	// Give superseded tasks a chance to (incorrectly) fire.
	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&fired))
}

func TestSchedule_SupersedeAtFiringEdge(t *testing.T) {
	s := New()
	defer s.Stop()

	// Reschedule exactly when the pending timer is due, so the old
	// callback and the replacement race for the key. The replacement
	// must always run and the key must not be left pending.
	for i := 0; i < 50; i++ {
		var oldRan, newRan int32
		s.Schedule("k", time.Millisecond, func() { atomic.AddInt32(&oldRan, 1) })
		time.Sleep(time.Millisecond)
		s.Schedule("k", time.Millisecond, func() { atomic.AddInt32(&newRan, 1) })

		require.Eventually(t, func() bool {
			return atomic.LoadInt32(&newRan) == 1
		}, time.Second, time.Millisecond,
			"iteration %d: superseding task never ran (oldRan=%d)", i, atomic.LoadInt32(&oldRan))
		require.False(t, s.Pending("k"), "iteration %d: key left pending after the task ran", i)
	}
}

func TestSchedule_IndependentKeys(t *testing.T) {
	s := New()
	defer s.Stop()

	a := make(chan struct{})
	b := make(chan struct{})
	s.Schedule("a", 10*time.Millisecond, func() { close(a) })
	s.Schedule("b", 10*time.Millisecond, func() { close(b) })

	for _, ch := range []chan struct{}{a, b} {
		select {
		case <-ch:
		case <-time.After(time.Second):
			t.Fatal("task on independent key did not fire")
		}
	}
}

func TestCancel(t *testing.T) {
	s := New()
	defer s.Stop()

	var fired int32
	s.Schedule("k", 20*time.Millisecond, func() { atomic.AddInt32(&fired, 1) })
	require.True(t, s.Pending("k"))

	s.Cancel("k")
	assert.False(t, s.Pending("k"))

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(0), atomic.LoadInt32(&fired), "cancelled task must not fire")
}

func TestStop_CancelsEverything(t *testing.T) {
	s := New()

	var fired int32
	s.Schedule("a", 20*time.Millisecond, func() { atomic.AddInt32(&fired, 1) })
	s.Schedule("b", 20*time.Millisecond, func() { atomic.AddInt32(&fired, 1) })

	s.Stop()

	// Work after Stop is refused.
	s.Schedule("c", time.Millisecond, func() { atomic.AddInt32(&fired, 1) })

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(0), atomic.LoadInt32(&fired))
	assert.False(t, s.Pending("c"))
}
