package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"planboard/internal/ui/input/types"
)

type AddUserMode struct {
	textInputMode TextInputMode
}

func NewAddUserMode(ti *textinput.Model) *AddUserMode {
	return &AddUserMode{
		textInputMode: NewTextInputMode(types.ModeAddUser, "add-user", "New user name: ", "name", 24, ti),
	}
}

func (m *AddUserMode) Name() string {
	return m.textInputMode.Name()
}

func (m *AddUserMode) Prompt() string {
	return m.textInputMode.Prompt()
}

func (m *AddUserMode) Enter(ctx types.Context) []types.Action {
	return m.textInputMode.Enter(ctx)
}

func (m *AddUserMode) Exit(ctx types.Context) []types.Action {
	return m.textInputMode.Exit(ctx)
}

func (m *AddUserMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	return m.textInputMode.HandleKey(msg, ctx)
}
