// Package table implements the listing-page table controller: search
// filtering, column sorting and empty-state messaging for one rendered
// table. One controller is bound per listing page; there is no shared
// state between instances.
package table

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"

	"careboard/internal/domain"
)

// Controller keeps a table's displayed rows consistent with the current
// filter term and sort order.
type Controller struct {
	view     View
	collator *collate.Collator

	rows    []domain.Row // current display order
	visible []bool       // per-position visibility under the current filter
	shown   int          // number of visible rows
	filter  string

	sortCol int // -1 while no column is active
	sortDir Direction

	emptyMounted bool
}

// New creates a controller bound to view, seeded with rows.
func New(view View, rows []domain.Row) *Controller {
	if view == nil {
		view = NopView{}
	}
	c := &Controller{
		view:     view,
		collator: newCollator(),
		sortCol:  -1,
	}
	c.SetRows(rows)
	return c
}

// SetRows replaces the row set wholesale, e.g. after a catalog reload.
// The active filter is reapplied; an active sort is reapplied to the new
// rows so the display order survives the reload.
func (c *Controller) SetRows(rows []domain.Row) {
	c.rows = make([]domain.Row, len(rows))
	copy(c.rows, rows)
	c.visible = make([]bool, len(rows))

	if c.sortCol >= 0 {
		c.applySort()
	}
	c.recompute()
}

// SetFilter recomputes visibility for every row against term: a row is
// visible iff its concatenated cell text contains the term as a
// case-insensitive substring. The empty term shows all rows.
func (c *Controller) SetFilter(term string) {
	c.filter = term
	c.recompute()
}

// Filter returns the current filter term.
func (c *Controller) Filter() string {
	return c.filter
}

// ToggleSort activates sorting on col: ascending if col was not the active
// sort column, otherwise the previous direction flipped. The reorder is a
// stable full re-sort of all rows; cell content is never altered.
func (c *Controller) ToggleSort(col int) {
	if col < 0 {
		return
	}
	if col == c.sortCol {
		c.sortDir = c.sortDir.flip()
	} else {
		c.sortCol = col
		c.sortDir = Ascending
	}

	c.applySort()
	c.view.SetSortIndicator(c.sortCol, c.sortDir)
	c.recompute()
}

// Sort returns the active sort column and direction; active is false while
// no column has been toggled yet.
func (c *Controller) Sort() (col int, dir Direction, active bool) {
	return c.sortCol, c.sortDir, c.sortCol >= 0
}

// Rows returns all rows in display order.
func (c *Controller) Rows() []domain.Row {
	return c.rows
}

// RowVisible reports whether the row at display position i passes the
// current filter.
func (c *Controller) RowVisible(i int) bool {
	if i < 0 || i >= len(c.visible) {
		return false
	}
	return c.visible[i]
}

// VisibleRows returns the rows that pass the current filter, in display
// order.
func (c *Controller) VisibleRows() []domain.Row {
	out := make([]domain.Row, 0, c.shown)
	for i, r := range c.rows {
		if c.visible[i] {
			out = append(out, r)
		}
	}
	return out
}

// VisibleCount returns the number of rows passing the current filter.
func (c *Controller) VisibleCount() int {
	return c.shown
}

// EmptyStateMounted reports whether the synthetic "no results" row is
// currently injected. At most one exists per table.
func (c *Controller) EmptyStateMounted() bool {
	return c.emptyMounted
}

// EmptyStateMessage returns the message for the synthetic row.
func (c *Controller) EmptyStateMessage() string {
	return fmt.Sprintf("No results for %q", c.filter)
}

func (c *Controller) recompute() {
	term := strings.ToLower(c.filter)
	c.shown = 0
	for i, r := range c.rows {
		v := term == "" || strings.Contains(strings.ToLower(r.Text()), term)
		c.visible[i] = v
		if v {
			c.shown++
		}
		c.view.SetRowVisible(i, v)
	}
	c.syncEmptyState()
}

func (c *Controller) syncEmptyState() {
	want := c.shown == 0 && c.filter != ""
	switch {
	case want && !c.emptyMounted:
		c.view.MountEmptyState(c.EmptyStateMessage())
		c.emptyMounted = true
	case !want && c.emptyMounted:
		c.view.UnmountEmptyState()
		c.emptyMounted = false
	}
}

func (c *Controller) applySort() {
	col := c.sortCol
	asc := c.sortDir == Ascending
	sort.SliceStable(c.rows, func(i, j int) bool {
		cmp := compareCells(c.collator, cellAt(c.rows[i], col), cellAt(c.rows[j], col))
		if asc {
			return cmp < 0
		}
		return cmp > 0
	})
}

func cellAt(r domain.Row, col int) string {
	if col < len(r.Cells) {
		return r.Cells[col]
	}
	return ""
}
