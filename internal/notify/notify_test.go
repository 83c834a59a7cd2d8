package notify

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPost_AutoDismissAfterDuration(t *testing.T) {
	var changes int32
	c := NewCenter(func() { atomic.AddInt32(&changes, 1) })
	defer c.Stop()

	c.Post("Saved", Success, 50*time.Millisecond)
	require.Len(t, c.Active(), 1)

	assert.Eventually(t, func() bool {
		return len(c.Active()) == 0
	}, time.Second, 5*time.Millisecond, "banner should self-remove after its duration")

	// One change for post, one for dismissal.
	assert.Equal(t, int32(2), atomic.LoadInt32(&changes))
}

func TestPost_DefaultDuration(t *testing.T) {
	c := NewCenter(nil)
	defer c.Stop()

	id := c.Post("hello", Info, 0)
	banners := c.Active()
	require.Len(t, banners, 1)
	assert.Equal(t, id, banners[0].ID)
	assert.Equal(t, DefaultDuration, banners[0].Duration)
}

func TestPost_IndependentTimers(t *testing.T) {
	c := NewCenter(nil)
	defer c.Stop()

	c.Post("slow", Info, 200*time.Millisecond)
	c.Post("fast", Info, 30*time.Millisecond)
	require.Len(t, c.Active(), 2)

	assert.Eventually(t, func() bool {
		a := c.Active()
		return len(a) == 1 && a[0].Message == "slow"
	}, time.Second, 5*time.Millisecond, "the faster banner dismisses first")
}

func TestDismiss_Explicit(t *testing.T) {
	c := NewCenter(nil)
	defer c.Stop()

	id := c.Post("bye", Warning, time.Hour)
	c.Dismiss(id)
	assert.Empty(t, c.Active())

	// Dismissing again is a no-op.
	c.Dismiss(id)
	assert.Empty(t, c.Active())
}

func TestSweep_ClearsOnlyNonPermanent(t *testing.T) {
	c := NewCenter(nil)
	defer c.Stop()

	c.Post("transient", Info, time.Hour)
	keep := c.PostPermanent("pinned", Error)

	// Run the housekeeping sweep on a short fuse instead of SweepDelay.
	c.sched.Schedule("sweep", 10*time.Millisecond, c.sweep)

	assert.Eventually(t, func() bool {
		a := c.Active()
		return len(a) == 1 && a[0].ID == keep
	}, time.Second, 5*time.Millisecond)
}

func TestSeverityMapping(t *testing.T) {
	assert.Equal(t, "✓", Success.Icon())
	assert.Equal(t, "✗", Error.Icon())
	assert.Equal(t, "⚠", Warning.Icon())
	assert.Equal(t, "ℹ", Info.Icon())

	assert.Equal(t, "success", Success.String())
	assert.Equal(t, "error", Error.String())
	assert.Equal(t, "warning", Warning.String())
	assert.Equal(t, "info", Info.String())
}
