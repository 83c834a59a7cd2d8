package modes

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"careboard/internal/ui/input/types"
)

type NormalMode struct {
	lastKeyWasG bool
	lastGTime   time.Time
}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil // No special actions on enter
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil // No special actions on exit
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case tea.KeyLeft:
		return []types.Action{types.MoveColumnAction{Delta: -1}}, true

	case tea.KeyRight:
		return []types.Action{types.MoveColumnAction{Delta: 1}}, true

	case tea.KeyPgUp:
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true

	case tea.KeyPgDown:
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true

	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case tea.KeyTab:
		return []types.Action{types.SwitchPageAction{Index: -1, Delta: 1}}, true

	case tea.KeyShiftTab:
		return []types.Action{types.SwitchPageAction{Index: -1, Delta: -1}}, true

	case tea.KeyEnter:
		if ctx.RowCount() > 0 {
			return []types.Action{types.DetailAction{}}, true
		}
		return nil, false
	}

	// Handle string keys
	switch msg.String() {
	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case "h":
		return []types.Action{types.MoveColumnAction{Delta: -1}}, true

	case "l":
		return []types.Action{types.MoveColumnAction{Delta: 1}}, true

	case "1", "2", "3", "4", "5":
		idx := int(msg.String()[0] - '1')
		if idx < ctx.PageCount() {
			return []types.Action{types.SwitchPageAction{Index: idx}}, true
		}
		return nil, false

	case "s":
		return []types.Action{types.ToggleSortAction{}}, true

	case "/":
		// Enter search mode
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true

	case "d":
		// Delete current row (confirmation required)
		if ctx.CurrentRowKey() != "" {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeDeleteConfirm}}, true
		}
		return nil, false

	case "c":
		if ctx.CurrentRowKey() != "" {
			return []types.Action{types.CopyRowAction{}}, true
		}
		return nil, false

	case "e":
		return []types.Action{types.ExportAction{}}, true

	case "p":
		if ctx.CurrentRowImage() != "" {
			return []types.Action{types.PreviewAction{}}, true
		}
		return nil, true // Consume the key even if no action

	case "v":
		if ctx.RowCount() > 0 {
			return []types.Action{types.DetailAction{}}, true
		}
		return nil, false

	case "r":
		return []types.Action{types.RefreshAction{}}, true

	case "t":
		return []types.Action{types.ToggleDarkModeAction{}}, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "esc":
		// Clear an applied search filter, otherwise dismiss any popup
		if ctx.SearchQuery() != "" {
			return []types.Action{types.ClearSearchAction{}}, true
		}
		return []types.Action{types.DismissPopupAction{}}, true

	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true

	case "g":
		if m.lastKeyWasG && time.Since(m.lastGTime) < 500*time.Millisecond {
			// gg - go to top (within timeout)
			m.lastKeyWasG = false
			return []types.Action{types.NavigateAction{Direction: "home"}}, true
		} else {
			// First g, wait for next key
			m.lastKeyWasG = true
			m.lastGTime = time.Now()
			return nil, true // consume the key but don't do anything
		}

	case "G":
		m.lastKeyWasG = false
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	default:
		// Any other key cancels the 'g' prefix
		if m.lastKeyWasG {
			m.lastKeyWasG = false
		}
	}

	return nil, false
}
