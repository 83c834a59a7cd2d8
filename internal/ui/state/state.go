package state

import (
	"careboard/internal/domain"
)

// PageState is the per-listing presentation state that survives page switches.
type PageState struct {
	Cursor    int // selected row among visible rows
	ColCursor int // column the sort toggle targets
	Query     string
}

// AppState contains all the application state
type AppState struct {
	// Listing data
	Tables map[domain.Entity]domain.Table
	Pages  map[domain.Entity]*PageState

	// Active page
	PageIndex int

	// UI state
	ViewportOffset int  // offset for scrolling
	ViewportHeight int  // available height for the row list
	Loading        bool // initial catalog load in progress
	DarkMode       bool
	ShowHelp       bool
	StatusMessage  string

	// Popup contents ("" when hidden)
	ModalContent   string // delete confirmation
	PreviewContent string // image preview
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	s := &AppState{
		Tables:         make(map[domain.Entity]domain.Table),
		Pages:          make(map[domain.Entity]*PageState),
		ViewportHeight: 20, // Default
		Loading:        true,
	}
	for _, e := range domain.Entities {
		s.Tables[e] = domain.Table{Entity: e}
		s.Pages[e] = &PageState{}
	}
	return s
}

// CurrentEntity returns the entity of the active page.
func (s *AppState) CurrentEntity() domain.Entity {
	return domain.Entities[s.PageIndex]
}

// CurrentTable returns the table of the active page.
func (s *AppState) CurrentTable() domain.Table {
	return s.Tables[s.CurrentEntity()]
}

// CurrentPage returns the presentation state of the active page.
func (s *AppState) CurrentPage() *PageState {
	return s.Pages[s.CurrentEntity()]
}

// SetTable replaces a listing table.
func (s *AppState) SetTable(t domain.Table) {
	s.Tables[t.Entity] = t
}

// SwitchPage moves to the page at index, wrapping at both ends.
func (s *AppState) SwitchPage(index int) {
	n := len(domain.Entities)
	s.PageIndex = ((index % n) + n) % n
	s.ViewportOffset = 0
}

// ClampCursor keeps the row cursor inside [0, visible).
func (s *AppState) ClampCursor(visible int) {
	p := s.CurrentPage()
	if p.Cursor >= visible {
		p.Cursor = visible - 1
	}
	if p.Cursor < 0 {
		p.Cursor = 0
	}
}

// MoveColumn moves the column cursor within the table's columns.
func (s *AppState) MoveColumn(delta int) {
	p := s.CurrentPage()
	cols := len(s.CurrentTable().Columns)
	if cols == 0 {
		return
	}
	p.ColCursor += delta
	if p.ColCursor < 0 {
		p.ColCursor = 0
	}
	if p.ColCursor >= cols {
		p.ColCursor = cols - 1
	}
}
