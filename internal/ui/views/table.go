package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"careboard/internal/domain"
)

// TableRenderer renders one listing page's header and rows
type TableRenderer struct {
	styles *Styles
}

// NewTableRenderer creates a new table renderer
func NewTableRenderer(styles *Styles) *TableRenderer {
	return &TableRenderer{styles: styles}
}

// TableState is everything the table renderer needs for one page
type TableState struct {
	Table     domain.Table
	Visible   []domain.Row // rows after filter and sort
	Cursor    int          // selected index within Visible
	ColCursor int          // column targeted by the sort toggle
	SortCol   int          // -1 when sorting is inactive
	SortMark  string       // "▲" or "▼"
	EmptyMsg  string       // shown when no rows match the filter
	Width     int
	Offset    int // viewport scroll offset
	Height    int // viewport height in rows
}

// Render produces the header line plus the visible slice of rows.
func (tr *TableRenderer) Render(st TableState) string {
	widths := tr.columnWidths(st.Table.Columns, st.Visible)

	var lines []string
	lines = append(lines, tr.renderHeader(st, widths))

	if len(st.Visible) == 0 {
		if st.EmptyMsg != "" {
			lines = append(lines, tr.styles.EmptyState.Render(st.EmptyMsg))
		} else {
			lines = append(lines, tr.styles.Dim.Render("No records."))
		}
		return strings.Join(lines, "\n")
	}

	// Viewport window over the visible rows
	height := st.Height
	if height <= 0 {
		height = len(st.Visible)
	}
	needsTop := st.Offset > 0
	needsBottom := len(st.Visible) > st.Offset+height
	if needsTop {
		height--
	}
	if needsBottom {
		height--
	}

	if needsTop {
		lines = append(lines, tr.styles.Scroll.Render(fmt.Sprintf("↑ %d more above ↑", st.Offset)))
	}

	end := st.Offset + height
	if end > len(st.Visible) {
		end = len(st.Visible)
	}
	for i := st.Offset; i < end; i++ {
		lines = append(lines, tr.renderRow(st.Visible[i], widths, i == st.Cursor))
	}

	if needsBottom {
		below := len(st.Visible) - end
		lines = append(lines, tr.styles.Scroll.Render(fmt.Sprintf("↓ %d more below ↓", below)))
	}

	return strings.Join(lines, "\n")
}

func (tr *TableRenderer) renderHeader(st TableState, widths []int) string {
	parts := make([]string, len(st.Table.Columns))
	for i, col := range st.Table.Columns {
		label := col
		if i == st.SortCol {
			label += " " + st.SortMark
		}
		label = pad(label, widths[i])

		switch {
		case i == st.ColCursor:
			parts[i] = tr.styles.HeaderCursor.Render(label)
		case i == st.SortCol:
			parts[i] = tr.styles.HeaderSorted.Render(label)
		default:
			parts[i] = tr.styles.Header.Render(label)
		}
	}
	return strings.Join(parts, "  ")
}

func (tr *TableRenderer) renderRow(row domain.Row, widths []int, selected bool) string {
	parts := make([]string, len(widths))
	for i := range widths {
		cell := ""
		if i < len(row.Cells) {
			cell = row.Cells[i]
		}
		parts[i] = pad(cell, widths[i])
	}
	line := strings.Join(parts, "  ")
	if selected {
		return tr.styles.RowSelected.Render("▸ " + line)
	}
	return tr.styles.Row.Render("  " + line)
}

// columnWidths sizes each column to its widest header or cell. An extra
// two cells cover the sort indicator on the header.
func (tr *TableRenderer) columnWidths(columns []string, rows []domain.Row) []int {
	widths := make([]int, len(columns))
	for i, col := range columns {
		widths[i] = lipgloss.Width(col) + 2
	}
	for _, row := range rows {
		for i, cell := range row.Cells {
			if i >= len(widths) {
				break
			}
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func pad(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
