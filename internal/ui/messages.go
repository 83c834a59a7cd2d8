package ui

import (
	"time"

	"careboard/internal/clip"
	"careboard/internal/domain"
	"careboard/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// tickMsg is sent on a timer for animations
type tickMsg time.Time

// searchAppliedMsg fires when the search debounce window closes
type searchAppliedMsg struct {
	entity domain.Entity
	query  string
}

// notifyChangedMsg signals that the notification set changed off the UI loop
type notifyChangedMsg struct{}

// clipboardMsg contains the result of a copy-to-clipboard command
type clipboardMsg struct {
	method clip.Method
	err    error
}

// exportDoneMsg contains the result of a CSV export command
type exportDoneMsg struct {
	path string
	size int64
	err  error
}

// detailPagerMsg contains the result of a detail pager command
type detailPagerMsg struct {
	err error
}
