package ui

import (
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careboard/internal/config"
	"careboard/internal/domain"
	"careboard/internal/eventbus"
)

// recordingBus delivers events synchronously and remembers what was published.
type recordingBus struct {
	mu       sync.Mutex
	handlers map[eventbus.EventType][]eventbus.EventHandler
	events   []eventbus.DomainEvent
}

func newRecordingBus() *recordingBus {
	return &recordingBus{handlers: make(map[eventbus.EventType][]eventbus.EventHandler)}
}

func (b *recordingBus) Publish(e eventbus.DomainEvent) {
	b.mu.Lock()
	b.events = append(b.events, e)
	hs := append([]eventbus.EventHandler(nil), b.handlers[e.Type()]...)
	b.mu.Unlock()
	for _, h := range hs {
		h(e)
	}
}

func (b *recordingBus) Subscribe(t eventbus.EventType, h eventbus.EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[t] = append(b.handlers[t], h)
	return func() {}
}

func (b *recordingBus) ofType(t eventbus.EventType) []eventbus.DomainEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []eventbus.DomainEvent
	for _, e := range b.events {
		if e.Type() == t {
			out = append(out, e)
		}
	}
	return out
}

func hospitalTable() domain.Table {
	return domain.Table{
		Entity:  domain.EntityHospital,
		Title:   "Hospitals",
		Columns: []string{"ID", "Name", "Location", "Beds", "Est.", "Rating"},
		Rows: []domain.Row{
			{Key: "1", Cells: []string{"1", "Apollo", "Chennai", "550", "1983", "4.5"}},
			{Key: "2", Cells: []string{"2", "Fortis", "Delhi", "300", "1996", "4.1"}},
			{Key: "3", Cells: []string{"3", "Manipal", "Bangalore", "650", "1991", "4.3"}},
		},
	}
}

func newTestModel(t *testing.T) (*Model, *recordingBus) {
	t.Helper()
	bus := newRecordingBus()
	m := NewModel(bus, config.DefaultConfig(t.TempDir()))
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m.Update(EventMsg{Event: eventbus.TableUpdatedEvent{Table: hospitalTable()}})
	return m, bus
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func (m *Model) press(t *testing.T, msgs ...tea.Msg) {
	t.Helper()
	for _, msg := range msgs {
		m.Update(msg)
	}
}

func TestSearch_AppliesAfterDebounce(t *testing.T) {
	m, _ := newTestModel(t)
	ctrl := m.controllers[domain.EntityHospital]

	m.press(t, key("/"), key("f"), key("o"))

	// Typed text is pending, not yet applied
	assert.Equal(t, "", ctrl.Filter())
	assert.True(t, m.scheduler.Pending("search:hospital"))

	// Debounce window closes
	m.Update(searchAppliedMsg{entity: domain.EntityHospital, query: "fo"})

	assert.Equal(t, "fo", ctrl.Filter())
	require.Equal(t, 1, ctrl.VisibleCount())
	assert.Equal(t, "2", ctrl.VisibleRows()[0].Key)
}

func TestSearch_EnterAppliesImmediately(t *testing.T) {
	m, _ := newTestModel(t)
	ctrl := m.controllers[domain.EntityHospital]

	m.press(t, key("/"), key("a"), key("p"), tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, "ap", ctrl.Filter())
	assert.False(t, m.scheduler.Pending("search:hospital"), "pending debounce is superseded by enter")
	assert.Equal(t, 1, ctrl.VisibleCount())
}

func TestSearch_EscInNormalModeClears(t *testing.T) {
	m, _ := newTestModel(t)
	ctrl := m.controllers[domain.EntityHospital]

	m.press(t, key("/"), key("a"), key("p"), tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, 1, ctrl.VisibleCount())

	m.press(t, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, "", ctrl.Filter())
	assert.Equal(t, 3, ctrl.VisibleCount())
}

func TestSortKey_TogglesDirectionOnSameColumn(t *testing.T) {
	m, _ := newTestModel(t)
	ctrl := m.controllers[domain.EntityHospital]

	// Move the column cursor to Beds and sort
	m.press(t, key("l"), key("l"), key("l"), key("s"))

	col, _, active := ctrl.Sort()
	require.True(t, active)
	assert.Equal(t, 3, col)
	assert.Equal(t, "2", ctrl.VisibleRows()[0].Key, "fewest beds first")

	m.press(t, key("s"))
	assert.Equal(t, "3", ctrl.VisibleRows()[0].Key, "most beds first after toggle")
}

func TestDeleteFlow_ConfirmPublishesRequest(t *testing.T) {
	m, bus := newTestModel(t)

	m.press(t, key("d"))
	require.NotEmpty(t, m.state.ModalContent)
	assert.Contains(t, m.state.ModalContent, "hospital #1")
	assert.Contains(t, m.state.ModalContent, "Apollo")

	m.press(t, key("y"))

	requests := bus.ofType(eventbus.EventDeleteRequested)
	require.Len(t, requests, 1)
	assert.Equal(t, "1", requests[0].(eventbus.DeleteRequestedEvent).Key)
	assert.Empty(t, m.state.ModalContent, "dialog is torn down after confirm")
}

func TestDeleteFlow_CancelPublishesNothing(t *testing.T) {
	m, bus := newTestModel(t)

	m.press(t, key("d"), key("n"))

	assert.Empty(t, bus.ofType(eventbus.EventDeleteRequested))
	assert.Empty(t, m.state.ModalContent)
}

func TestDeleteFlow_KeysSwallowedWhileDialogOpen(t *testing.T) {
	m, bus := newTestModel(t)

	m.press(t, key("d"), key("q"), key("t"))

	// Neither quit nor dark mode fired while the dialog was up
	assert.Empty(t, bus.ofType(eventbus.EventConfigChanged))
	assert.NotEmpty(t, m.state.ModalContent)
}

func TestDarkModeToggle_PublishesConfigChange(t *testing.T) {
	m, bus := newTestModel(t)

	m.press(t, key("t"))

	require.True(t, m.state.DarkMode)
	changes := bus.ofType(eventbus.EventConfigChanged)
	require.Len(t, changes, 1)
	assert.True(t, changes[0].(eventbus.ConfigChangedEvent).DarkMode)

	m.press(t, key("t"))
	assert.False(t, m.state.DarkMode)
}

func TestPageSwitch_DigitsAndTab(t *testing.T) {
	m, _ := newTestModel(t)

	m.press(t, key("3"))
	assert.Equal(t, domain.EntityTreatment, m.state.CurrentEntity())

	m.press(t, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, domain.EntityBooking, m.state.CurrentEntity())

	// Wraps past the last page
	m.press(t, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, domain.EntityHospital, m.state.CurrentEntity())
}

func TestSearchState_IsPerPage(t *testing.T) {
	m, _ := newTestModel(t)

	m.press(t, key("/"), key("a"), key("p"), tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, 1, m.controllers[domain.EntityHospital].VisibleCount())

	m.press(t, key("2"))
	assert.Equal(t, "", m.controllers[domain.EntityDoctor].Filter())

	m.press(t, key("1"))
	assert.Equal(t, "ap", m.controllers[domain.EntityHospital].Filter(), "filter survives page switches")
}

func TestRecordDeleted_PostsNotification(t *testing.T) {
	m, _ := newTestModel(t)

	m.Update(EventMsg{Event: eventbus.RecordDeletedEvent{Entity: domain.EntityHospital, Key: "2"}})

	active := m.notifier.Active()
	require.Len(t, active, 1)
	assert.Contains(t, active[0].Message, "Deleted hospital #2")
}

func TestView_RendersTableAndEmptyState(t *testing.T) {
	m, _ := newTestModel(t)
	m.state.Loading = false

	out := m.View()
	assert.Contains(t, out, "Apollo")
	assert.Contains(t, out, "careboard")

	m.Update(searchAppliedMsg{entity: domain.EntityHospital, query: "zzz"})
	out = m.View()
	assert.Contains(t, out, `No results for "zzz"`)
	assert.False(t, strings.Contains(out, "Apollo"), "hidden rows are not rendered")
}

func TestUpdate_RecoversFromPanicWithErrorBanner(t *testing.T) {
	m, _ := newTestModel(t)

	// An impossible page index makes the view state lookup panic
	m.state.PageIndex = 99
	m.press(t, key("j"))

	active := m.notifier.Active()
	require.Len(t, active, 1)
	assert.Equal(t, "An error occurred", active[0].Message)
}
