package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"planboard/internal/ui/input/types"
	"planboard/internal/ui/keys"
)

// globalKey handles keys shared by the schedule and roadmap screens
func globalKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, keys.Global.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true
	case ctx.PopupOpen():
		// Any key closes a popup
		return []types.Action{types.DismissPopupAction{}}, true
	case key.Matches(msg, keys.Global.Quit):
		return []types.Action{types.QuitAction{Force: false}}, true
	case key.Matches(msg, keys.Global.SwitchApp):
		return []types.Action{types.SwitchScreenAction{}}, true
	case key.Matches(msg, keys.Global.Theme):
		return []types.Action{types.ToggleThemeAction{}}, true
	case key.Matches(msg, keys.Global.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	}
	return nil, false
}
