package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"planboard/internal/ui/input/types"
	"planboard/internal/ui/keys"
)

// ScheduleMode is the grid's normal mode
type ScheduleMode struct{}

func NewScheduleMode() *ScheduleMode {
	return &ScheduleMode{}
}

func (m *ScheduleMode) Name() string {
	return "schedule"
}

func (m *ScheduleMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *ScheduleMode) Exit(ctx types.Context) []types.Action {
	// Leaving the grid ends any drag in progress
	if ctx.DragActive() {
		return []types.Action{types.CancelDragAction{}}
	}
	return nil
}

func (m *ScheduleMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if actions, ok := globalKey(msg, ctx); ok {
		return actions, true
	}

	k := keys.Schedule
	switch {
	case key.Matches(msg, k.Up):
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case key.Matches(msg, k.Down):
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case key.Matches(msg, k.Left):
		return []types.Action{types.NavigateAction{Direction: "left"}}, true
	case key.Matches(msg, k.Right):
		return []types.Action{types.NavigateAction{Direction: "right"}}, true
	case key.Matches(msg, k.PageUp):
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true
	case key.Matches(msg, k.PageDown):
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true
	case key.Matches(msg, k.Home):
		return []types.Action{types.NavigateAction{Direction: "home"}}, true
	case key.Matches(msg, k.End):
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case key.Matches(msg, k.AddUser):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeAddUser}}, true
	case key.Matches(msg, k.Week):
		return []types.Action{types.SwitchGridAction{}}, true
	case key.Matches(msg, k.Logout):
		if ctx.LoginEnabled() {
			return []types.Action{types.LogoutAction{}}, true
		}
		return nil, false
	case key.Matches(msg, k.Cancel):
		if ctx.DragActive() {
			return []types.Action{types.CancelDragAction{}}, true
		}
		return nil, true
	}

	// Everything below needs someone to attribute the selection to
	if ctx.CurrentUser() == "" {
		switch {
		case key.Matches(msg, k.Toggle), key.Matches(msg, k.Drag), key.Matches(msg, k.Clear), key.Matches(msg, k.Remove):
			return []types.Action{types.ChangeModeAction{Mode: types.ModeAddUser}}, true
		}
	}

	switch {
	case key.Matches(msg, k.Toggle):
		return []types.Action{types.ToggleSlotAction{}}, true
	case key.Matches(msg, k.Drag):
		return []types.Action{types.DragClickAction{}}, true
	case key.Matches(msg, k.Clear):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeClearConfirm}}, true
	case key.Matches(msg, k.Remove):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeRemoveConfirm}}, true
	case key.Matches(msg, k.PrevUser):
		if ctx.UserCount() > 1 {
			return []types.Action{types.CycleUserAction{Delta: -1}}, true
		}
		return nil, true
	case key.Matches(msg, k.NextUser):
		if ctx.UserCount() > 1 {
			return []types.Action{types.CycleUserAction{Delta: 1}}, true
		}
		return nil, true
	case key.Matches(msg, k.Best):
		return []types.Action{types.ToggleBestSlotsAction{}}, true
	case key.Matches(msg, k.Yank):
		return []types.Action{types.YankSummaryAction{}}, true
	}

	return nil, false
}
