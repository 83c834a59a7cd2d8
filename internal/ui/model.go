package ui

import (
	"fmt"
	"log"
	"path/filepath"
	"runtime/debug"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"careboard/internal/clip"
	"careboard/internal/config"
	"careboard/internal/dialog"
	"careboard/internal/domain"
	"careboard/internal/eventbus"
	"careboard/internal/export"
	"careboard/internal/notify"
	"careboard/internal/preview"
	"careboard/internal/sched"
	"careboard/internal/table"
	"careboard/internal/ui/input"
	inputtypes "careboard/internal/ui/input/types"
	"careboard/internal/ui/state"
	"careboard/internal/ui/views"
)

// searchDebounce is the quiet period before typed search text is applied.
const searchDebounce = 300 * time.Millisecond

// pageView receives the table controller's view callbacks for one page.
// Row visibility is queried back from the controller at render time; the
// view only has to remember the sort indicator and empty state.
type pageView struct {
	sortCol      int
	sortDir      table.Direction
	sortActive   bool
	emptyMsg     string
	emptyMounted bool
}

func (v *pageView) SetRowVisible(int, bool) {}

func (v *pageView) SetSortIndicator(col int, dir table.Direction) {
	if col < 0 {
		v.sortActive = false
		return
	}
	v.sortCol = col
	v.sortDir = dir
	v.sortActive = true
}

func (v *pageView) MountEmptyState(message string) {
	v.emptyMounted = true
	v.emptyMsg = message
}

func (v *pageView) UnmountEmptyState() {
	v.emptyMounted = false
	v.emptyMsg = ""
}

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	state  *state.AppState // centralized state

	// One table controller and view sink per listing page
	controllers map[domain.Entity]*table.Controller
	pageViews   map[domain.Entity]*pageView

	// UI-specific state not in AppState
	width  int
	height int

	// Handlers
	renderer     *views.Renderer
	inputHandler *input.Handler
	notifier     *notify.Center
	scheduler    *sched.Scheduler
	confirm      *dialog.Confirm
	detailOps    *DetailOps

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config) *Model {
	appState := state.NewAppState()
	appState.DarkMode = cfg.UISettings.DarkMode

	m := &Model{
		bus:          bus,
		config:       cfg,
		state:        appState,
		controllers:  make(map[domain.Entity]*table.Controller),
		pageViews:    make(map[domain.Entity]*pageView),
		renderer:     views.NewRenderer(cfg.UISettings.DarkMode),
		inputHandler: input.New(),
		scheduler:    sched.New(),
		detailOps:    NewDetailOps(),
	}

	for _, e := range domain.Entities {
		pv := &pageView{}
		m.pageViews[e] = pv
		m.controllers[e] = table.New(pv, nil)
	}

	m.notifier = notify.NewCenter(func() {
		if m.program != nil {
			m.program.Send(notifyChangedMsg{})
		}
	})

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.detailOps.SetProgram(p)
}

// MountModal implements dialog.ModalHost
func (m *Model) MountModal(content string) {
	m.state.ModalContent = content
}

// UnmountModal implements dialog.ModalHost
func (m *Model) UnmountModal() {
	m.state.ModalContent = ""
}

// Init starts the notification housekeeping and the animation tick
func (m *Model) Init() tea.Cmd {
	m.notifier.Start()
	m.state.ViewportHeight = 20 // Will be updated on first WindowSizeMsg
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Millisecond*80, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (model tea.Model, cmd tea.Cmd) {
	// A bug in one action must not take down the whole board
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Update panic: %v\nStack: %s", r, debug.Stack())
			m.notifier.Post("An error occurred", notify.Error, 0)
			model, cmd = m, nil
		}
	}()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateViewportHeight()
		return m, nil

	case tea.KeyMsg:
		// Handle popups first
		if m.state.ShowHelp {
			switch msg.String() {
			case "esc", "?", "q":
				m.state.ShowHelp = false
			}
			return m, nil
		}

		if m.state.PreviewContent != "" {
			switch msg.String() {
			case "esc", "p", "q":
				m.state.PreviewContent = ""
			}
			return m, nil
		}

		ctx := &modelContext{m: m}
		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	default:
		if cmd := m.inputHandler.Update(msg); cmd != nil {
			return m, cmd
		}
		return m.handleNonKeyboardMsg(msg)
	}
}

// processAction executes a single input action
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	entity := m.state.CurrentEntity()
	ctrl := m.controllers[entity]
	page := m.state.CurrentPage()

	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.navigate(a.Direction)

	case inputtypes.MoveColumnAction:
		m.state.MoveColumn(a.Delta)

	case inputtypes.SwitchPageAction:
		if a.Index >= 0 {
			m.state.SwitchPage(a.Index)
		} else {
			m.state.SwitchPage(m.state.PageIndex + a.Delta)
		}

	case inputtypes.ToggleSortAction:
		ctrl.ToggleSort(page.ColCursor)

	case inputtypes.UpdateTextAction:
		// Live search: apply after a quiet period, superseding earlier input
		query := a.Text
		m.scheduler.Schedule("search:"+string(entity), searchDebounce, func() {
			if m.program != nil {
				m.program.Send(searchAppliedMsg{entity: entity, query: query})
			}
		})

	case inputtypes.SubmitTextAction:
		if a.Mode == inputtypes.ModeSearch {
			m.scheduler.Cancel("search:" + string(entity))
			m.applySearch(entity, a.Text)
		}

	case inputtypes.CancelTextAction:
		m.scheduler.Cancel("search:" + string(entity))
		m.applySearch(entity, "")

	case inputtypes.ClearSearchAction:
		m.applySearch(entity, "")

	case inputtypes.OpenConfirmAction:
		if a.Key == "" {
			return nil
		}
		m.confirm = dialog.Open(m, entity, a.Key, a.Display, func(key string) {
			m.bus.Publish(eventbus.DeleteRequestedEvent{Entity: entity, Key: key})
		})

	case inputtypes.ConfirmDeleteAction:
		if m.confirm != nil {
			m.confirm.ConfirmDelete()
			m.confirm = nil
		}

	case inputtypes.CancelDeleteAction:
		if m.confirm != nil {
			m.confirm.Cancel()
			m.confirm = nil
		}

	case inputtypes.CopyRowAction:
		if row, ok := m.currentRow(); ok {
			text := row.Text()
			return func() tea.Msg {
				method, err := clip.Copy(text)
				return clipboardMsg{method: method, err: err}
			}
		}

	case inputtypes.ExportAction:
		t := m.state.CurrentTable()
		rows := ctrl.VisibleRows()
		if len(rows) == 0 {
			m.notifier.Post("Nothing to export", notify.Warning, 0)
			return nil
		}
		dir := m.config.CatalogDir
		return func() tea.Msg {
			path, size, err := export.WriteTable(dir, t, rows)
			return exportDoneMsg{path: path, size: size, err: err}
		}

	case inputtypes.PreviewAction:
		if row, ok := m.currentRow(); ok && row.Image != "" {
			path := row.Image
			if !filepath.IsAbs(path) {
				path = filepath.Join(m.config.CatalogDir, path)
			}
			p, err := preview.Load(path)
			if err != nil {
				log.Printf("Preview failed: %v", err)
				m.notifier.Post("Could not preview image", notify.Error, 0)
				return nil
			}
			m.state.PreviewContent = p.Describe()
		}

	case inputtypes.DetailAction:
		if row, ok := m.currentRow(); ok {
			content := m.buildDetailContent(m.state.CurrentTable(), row)
			return func() tea.Msg {
				return detailPagerMsg{err: m.detailOps.ShowInPager(content)}
			}
		}

	case inputtypes.RefreshAction:
		m.state.Loading = true
		m.bus.Publish(eventbus.ReloadRequestedEvent{})
		return tick()

	case inputtypes.ToggleDarkModeAction:
		m.state.DarkMode = !m.state.DarkMode
		m.renderer = views.NewRenderer(m.state.DarkMode)
		m.bus.Publish(eventbus.ConfigChangedEvent{DarkMode: m.state.DarkMode})
		if m.state.DarkMode {
			m.notifier.Post("Dark mode on", notify.Info, 0)
		} else {
			m.notifier.Post("Dark mode off", notify.Info, 0)
		}

	case inputtypes.ToggleHelpAction:
		m.state.ShowHelp = !m.state.ShowHelp

	case inputtypes.DismissPopupAction:
		m.state.PreviewContent = ""
		m.state.ShowHelp = false

	case inputtypes.QuitAction:
		m.notifier.Stop()
		m.scheduler.Stop()
		return tea.Quit
	}

	return nil
}

// handleNonKeyboardMsg processes everything that is not a key press
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		m.handleEvent(msg.Event)
		return m, nil

	case tickMsg:
		if m.state.Loading {
			return m, tick()
		}
		return m, nil

	case searchAppliedMsg:
		m.applySearch(msg.entity, msg.query)
		return m, nil

	case notifyChangedMsg:
		return m, nil // re-render picks up the new notification set

	case clipboardMsg:
		if msg.err != nil {
			log.Printf("Copy failed: %v", msg.err)
			m.notifier.Post("Copy failed", notify.Error, 0)
		} else if msg.method == clip.MethodOSC52 {
			m.notifier.Post("Row copied (terminal clipboard)", notify.Success, 0)
		} else {
			m.notifier.Post("Row copied to clipboard", notify.Success, 0)
		}
		return m, nil

	case exportDoneMsg:
		if msg.err != nil {
			log.Printf("Export failed: %v", msg.err)
			m.notifier.Post("Export failed", notify.Error, 0)
		} else {
			m.notifier.Post(fmt.Sprintf("Exported %s (%s)", filepath.Base(msg.path), preview.FileSize(msg.size)), notify.Success, 0)
		}
		return m, nil

	case detailPagerMsg:
		if msg.err != nil {
			log.Printf("Detail pager failed: %v", msg.err)
			m.notifier.Post("Could not open details", notify.Error, 0)
		}
		return m, nil
	}

	return m, nil
}

// handleEvent processes domain events forwarded from the bus
func (m *Model) handleEvent(event eventbus.DomainEvent) {
	switch e := event.(type) {
	case eventbus.TableUpdatedEvent:
		m.state.SetTable(e.Table)
		m.controllers[e.Table.Entity].SetRows(e.Table.Rows)
		if e.Table.Entity == m.state.CurrentEntity() {
			m.state.ClampCursor(m.controllers[e.Table.Entity].VisibleCount())
		}

	case eventbus.CatalogLoadedEvent:
		m.state.Loading = false
		m.notifier.Post(fmt.Sprintf("Loaded %d records", e.Rows), notify.Info, 0)

	case eventbus.RecordDeletedEvent:
		m.notifier.Post(fmt.Sprintf("Deleted %s #%s", e.Entity, e.Key), notify.Success, 0)

	case eventbus.ErrorEvent:
		m.notifier.Post(e.Message, notify.Error, 0)
	}
}

// applySearch sets the filter on a page's controller and fixes the cursor
func (m *Model) applySearch(entity domain.Entity, query string) {
	m.controllers[entity].SetFilter(query)
	m.state.Pages[entity].Query = query
	if entity == m.state.CurrentEntity() {
		m.state.ViewportOffset = 0
		m.state.ClampCursor(m.controllers[entity].VisibleCount())
	}
}

func (m *Model) navigate(direction string) {
	page := m.state.CurrentPage()
	visible := m.controllers[m.state.CurrentEntity()].VisibleCount()
	if visible == 0 {
		return
	}

	switch direction {
	case "up":
		page.Cursor--
	case "down":
		page.Cursor++
	case "pageup":
		page.Cursor -= m.state.ViewportHeight
	case "pagedown":
		page.Cursor += m.state.ViewportHeight
	case "home":
		page.Cursor = 0
	case "end":
		page.Cursor = visible - 1
	}
	m.state.ClampCursor(visible)
	m.ensureCursorVisible()
}

// ensureCursorVisible scrolls the viewport to keep the cursor on screen
func (m *Model) ensureCursorVisible() {
	page := m.state.CurrentPage()
	height := m.state.ViewportHeight
	if height <= 0 {
		return
	}
	if page.Cursor < m.state.ViewportOffset {
		m.state.ViewportOffset = page.Cursor
	}
	if page.Cursor >= m.state.ViewportOffset+height {
		m.state.ViewportOffset = page.Cursor - height + 1
	}
}

func (m *Model) updateViewportHeight() {
	// Title, tabs, search line, header, notifications and help bar
	h := m.height - 10
	if h < 5 {
		h = 5
	}
	m.state.ViewportHeight = h
}

// currentRow returns the row under the cursor on the active page
func (m *Model) currentRow() (domain.Row, bool) {
	rows := m.controllers[m.state.CurrentEntity()].VisibleRows()
	cursor := m.state.CurrentPage().Cursor
	if cursor < 0 || cursor >= len(rows) {
		return domain.Row{}, false
	}
	return rows[cursor], true
}

// buildDetailContent formats one record for the pager
func (m *Model) buildDetailContent(t domain.Table, row domain.Row) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s #%s\n", t.Title, row.Key))
	b.WriteString(strings.Repeat("─", 40))
	b.WriteString("\n\n")
	for i, col := range t.Columns {
		cell := ""
		if i < len(row.Cells) {
			cell = row.Cells[i]
		}
		b.WriteString(fmt.Sprintf("%-16s %s\n", col+":", cell))
	}
	if row.Image != "" {
		b.WriteString(fmt.Sprintf("%-16s %s\n", "Image:", row.Image))
	}
	return b.String()
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	entity := m.state.CurrentEntity()
	ctrl := m.controllers[entity]
	page := m.state.CurrentPage()
	pv := m.pageViews[entity]

	sortCol := -1
	sortMark := ""
	if pv.sortActive {
		sortCol = pv.sortCol
		sortMark = pv.sortDir.String()
	}

	emptyMsg := ""
	if pv.emptyMounted {
		emptyMsg = pv.emptyMsg
	}

	titles := make([]string, len(domain.Entities))
	for i, e := range domain.Entities {
		if t := m.state.Tables[e]; t.Title != "" {
			titles[i] = t.Title
		} else {
			titles[i] = string(e)
		}
	}

	notifications := []views.NotificationView{}
	for _, n := range m.notifier.Active() {
		notifications = append(notifications, views.NotificationView{
			Icon:    n.Severity.Icon(),
			Class:   n.Severity.String(),
			Message: n.Message,
		})
	}

	inputMode := ""
	textInput := ""
	if ti := m.inputHandler.TextInput(); ti != nil {
		inputMode = m.inputHandler.ModeName()
		textInput = ti.Value()
	}

	return m.renderer.Render(views.ViewState{
		Width:      m.width,
		Height:     m.height,
		PageTitles: titles,
		PageIndex:  m.state.PageIndex,
		Table: views.TableState{
			Table:     m.state.CurrentTable(),
			Visible:   ctrl.VisibleRows(),
			Cursor:    page.Cursor,
			ColCursor: page.ColCursor,
			SortCol:   sortCol,
			SortMark:  sortMark,
			EmptyMsg:  emptyMsg,
			Width:     m.width,
			Offset:    m.state.ViewportOffset,
			Height:    m.state.ViewportHeight,
		},
		Loading:        m.state.Loading,
		SearchQuery:    ctrl.Filter(),
		InputMode:      inputMode,
		TextInput:      textInput,
		Notifications:  notifications,
		ShowHelp:       m.state.ShowHelp,
		ModalContent:   m.state.ModalContent,
		PreviewContent: m.state.PreviewContent,
	})
}

// modelContext gives the input layer read access to model state
type modelContext struct {
	m *Model
}

func (c *modelContext) PageCount() int {
	return len(domain.Entities)
}

func (c *modelContext) PageIndex() int {
	return c.m.state.PageIndex
}

func (c *modelContext) RowCount() int {
	return c.m.controllers[c.m.state.CurrentEntity()].VisibleCount()
}

func (c *modelContext) CurrentRowKey() string {
	if row, ok := c.m.currentRow(); ok {
		return row.Key
	}
	return ""
}

func (c *modelContext) CurrentRowDisplay() string {
	row, ok := c.m.currentRow()
	if !ok {
		return ""
	}
	// Second cell is the display name on every listing
	if len(row.Cells) > 1 {
		return row.Cells[1]
	}
	return row.Text()
}

func (c *modelContext) CurrentRowImage() string {
	if row, ok := c.m.currentRow(); ok {
		return row.Image
	}
	return ""
}

func (c *modelContext) SearchQuery() string {
	return c.m.controllers[c.m.state.CurrentEntity()].Filter()
}
