package table

// Direction is a column sort direction
type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) flip() Direction {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

// String returns the indicator glyph for the direction
func (d Direction) String() string {
	if d == Ascending {
		return "▲"
	}
	return "▼"
}

// View is the rendering surface the controller drives. Keeping the
// controller behind this interface means the filtering and sorting decisions
// can be exercised without a live terminal.
type View interface {
	// SetRowVisible shows or hides the row at the given display position
	SetRowVisible(index int, visible bool)

	// SetSortIndicator marks col as the single active sort column; col -1
	// clears the indicator entirely
	SetSortIndicator(col int, dir Direction)

	// MountEmptyState injects the synthetic "no results" row
	MountEmptyState(message string)

	// UnmountEmptyState removes the synthetic row
	UnmountEmptyState()
}

// NopView discards all view updates
type NopView struct{}

func (NopView) SetRowVisible(int, bool)         {}
func (NopView) SetSortIndicator(int, Direction) {}
func (NopView) MountEmptyState(string)          {}
func (NopView) UnmountEmptyState()              {}
