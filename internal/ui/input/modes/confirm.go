package modes

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"planboard/internal/ui/input/types"
)

// ConfirmMode asks a y/n question about the current user before acting
type ConfirmMode struct {
	name     string
	question string
	onYes    types.Action
	user     string
}

// NewClearConfirmMode guards wiping the current user's selections
func NewClearConfirmMode() *ConfirmMode {
	return &ConfirmMode{
		name:     "clear-confirm",
		question: "Clear all slots for '%s'? (y/n)",
		onYes:    types.ClearUserAction{},
	}
}

// NewRemoveConfirmMode guards dropping the current user from the roster
func NewRemoveConfirmMode() *ConfirmMode {
	return &ConfirmMode{
		name:     "remove-confirm",
		question: "Remove '%s' and their slots from the roster? (y/n)",
		onYes:    types.RemoveUserAction{},
	}
}

func (m *ConfirmMode) Name() string {
	return m.name
}

// Target is the user the pending action applies to
func (m *ConfirmMode) Target() string {
	return m.user
}

// Question is the prompt shown while waiting for y/n
func (m *ConfirmMode) Question() string {
	return fmt.Sprintf(m.question, m.user)
}

func (m *ConfirmMode) Enter(ctx types.Context) []types.Action {
	// Fixed here so cycling users can't retarget the prompt
	m.user = ctx.CurrentUser()
	return nil
}

func (m *ConfirmMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *ConfirmMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "y", "Y":
		return []types.Action{
			m.onYes,
			types.ChangeModeAction{Mode: types.ModeSchedule},
		}, true
	case "n", "N", "esc":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSchedule}}, true
	}

	return nil, true
}
