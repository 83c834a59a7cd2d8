package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"careboard/internal/ui/input/types"
)

type ConfirmMode struct{}

func NewConfirmMode() *ConfirmMode {
	return &ConfirmMode{}
}

func (m *ConfirmMode) Name() string {
	return "delete-confirm"
}

func (m *ConfirmMode) Enter(ctx types.Context) []types.Action {
	// Capture the target row when entering the mode
	return []types.Action{types.OpenConfirmAction{
		Key:     ctx.CurrentRowKey(),
		Display: ctx.CurrentRowDisplay(),
	}}
}

func (m *ConfirmMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *ConfirmMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "y", "Y":
		// Confirm deletion
		return []types.Action{
			types.ConfirmDeleteAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true

	case "n", "N", "esc":
		// Cancel deletion
		return []types.Action{
			types.CancelDeleteAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	}

	return nil, true // Swallow everything else while the dialog is up
}
