package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// MoveColumnAction moves the column cursor used for sorting
type MoveColumnAction struct {
	Delta int // -1 or +1
}

func (a MoveColumnAction) Type() string { return "move_column" }

// SwitchPageAction switches the visible listing page
type SwitchPageAction struct {
	Index int // target page, -1 to use Delta
	Delta int // relative movement when Index is -1
}

func (a SwitchPageAction) Type() string { return "switch_page" }

// ToggleSortAction toggles sorting on the column under the cursor
type ToggleSortAction struct{}

func (a ToggleSortAction) Type() string { return "toggle_sort" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data interface{} // Optional data for the mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// ClearSearchAction drops an applied search filter
type ClearSearchAction struct{}

func (a ClearSearchAction) Type() string { return "clear_search" }

// Delete confirmation actions
type OpenConfirmAction struct {
	Key     string
	Display string
}

func (a OpenConfirmAction) Type() string { return "open_confirm" }

type ConfirmDeleteAction struct{}

func (a ConfirmDeleteAction) Type() string { return "confirm_delete" }

type CancelDeleteAction struct{}

func (a CancelDeleteAction) Type() string { return "cancel_delete" }

// Row actions
type CopyRowAction struct{}

func (a CopyRowAction) Type() string { return "copy_row" }

type ExportAction struct{}

func (a ExportAction) Type() string { return "export" }

type PreviewAction struct{}

func (a PreviewAction) Type() string { return "preview" }

type DetailAction struct{}

func (a DetailAction) Type() string { return "detail" }

// Command actions
type RefreshAction struct{}

func (a RefreshAction) Type() string { return "refresh" }

type ToggleDarkModeAction struct{}

func (a ToggleDarkModeAction) Type() string { return "toggle_dark_mode" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type DismissPopupAction struct{}

func (a DismissPopupAction) Type() string { return "dismiss_popup" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
