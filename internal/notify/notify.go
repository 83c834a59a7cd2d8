// Package notify manages the transient notification banners shown on a
// listing page. Each banner owns an independent auto-dismiss timer; a
// one-shot housekeeping sweep shortly after startup clears anything
// non-permanent that is still on screen.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"careboard/internal/sched"
)

// Severity classifies a notification.
type Severity int

const (
	Success Severity = iota
	Error
	Warning
	Info
)

// Icon returns the fixed glyph for the severity.
func (s Severity) Icon() string {
	switch s {
	case Success:
		return "✓"
	case Error:
		return "✗"
	case Warning:
		return "⚠"
	default:
		return "ℹ"
	}
}

// String returns the fixed style class name for the severity.
func (s Severity) String() string {
	switch s {
	case Success:
		return "success"
	case Error:
		return "error"
	case Warning:
		return "warning"
	default:
		return "info"
	}
}

// DefaultDuration applies when a caller passes no duration.
const DefaultDuration = 3000 * time.Millisecond

// SweepDelay is the one-shot housekeeping sweep interval after Start.
const SweepDelay = 5000 * time.Millisecond

// Notification is one visible banner.
type Notification struct {
	ID        string
	Message   string
	Severity  Severity
	Duration  time.Duration
	Permanent bool // exempt from the housekeeping sweep, still dismissible
	CreatedAt time.Time
}

// Center owns the set of visible notifications.
type Center struct {
	mu       sync.Mutex
	items    []Notification
	sched    *sched.Scheduler
	onChange func()
}

// NewCenter creates a notification center. onChange is invoked (on a timer
// goroutine) whenever the visible set changes, so the UI can repaint; it may
// be nil.
func NewCenter(onChange func()) *Center {
	return &Center{
		sched:    sched.New(),
		onChange: onChange,
	}
}

// Start schedules the one-shot housekeeping sweep: any non-permanent banner
// still visible after SweepDelay is dismissed.
func (c *Center) Start() {
	c.sched.Schedule("sweep", SweepDelay, c.sweep)
}

// Post shows a banner. duration <= 0 selects DefaultDuration. Returns the
// banner ID.
func (c *Center) Post(message string, severity Severity, duration time.Duration) string {
	return c.post(message, severity, duration, false)
}

// PostPermanent shows a banner that never auto-dismisses; it survives the
// housekeeping sweep and is removed only by explicit dismissal.
func (c *Center) PostPermanent(message string, severity Severity) string {
	return c.post(message, severity, 0, true)
}

func (c *Center) post(message string, severity Severity, duration time.Duration, permanent bool) string {
	if duration <= 0 {
		duration = DefaultDuration
	}

	n := Notification{
		ID:        uuid.NewString(),
		Message:   message,
		Severity:  severity,
		Duration:  duration,
		Permanent: permanent,
		CreatedAt: time.Now(),
	}

	c.mu.Lock()
	c.items = append(c.items, n)
	c.mu.Unlock()

	if !permanent {
		id := n.ID
		c.sched.Schedule("dismiss:"+id, duration, func() {
			c.Dismiss(id)
		})
	}

	c.changed()
	return n.ID
}

// Dismiss removes a banner by ID. Dismissing an already-gone banner is a
// no-op.
func (c *Center) Dismiss(id string) {
	c.sched.Cancel("dismiss:" + id)

	c.mu.Lock()
	removed := false
	for i, n := range c.items {
		if n.ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			removed = true
			break
		}
	}
	c.mu.Unlock()

	if removed {
		c.changed()
	}
}

// Active returns the currently visible banners, oldest first.
func (c *Center) Active() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Notification, len(c.items))
	copy(out, c.items)
	return out
}

// Stop cancels all timers. Visible banners are left as-is.
func (c *Center) Stop() {
	c.sched.Stop()
}

func (c *Center) sweep() {
	c.mu.Lock()
	kept := c.items[:0]
	swept := 0
	for _, n := range c.items {
		if n.Permanent {
			kept = append(kept, n)
		} else {
			c.sched.Cancel("dismiss:" + n.ID)
			swept++
		}
	}
	c.items = kept
	c.mu.Unlock()

	if swept > 0 {
		c.changed()
	}
}

func (c *Center) changed() {
	if c.onChange != nil {
		c.onChange()
	}
}
