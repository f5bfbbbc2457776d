package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"planboard/internal/ui/input/types"
)

type GratitudeMode struct {
	textInputMode TextInputMode
}

func NewGratitudeMode(ti *textinput.Model) *GratitudeMode {
	return &GratitudeMode{
		textInputMode: NewTextInputMode(types.ModeGratitude, "gratitude", "Enter something positive today: ", "", 200, ti),
	}
}

func (m *GratitudeMode) Name() string {
	return m.textInputMode.Name()
}

func (m *GratitudeMode) Prompt() string {
	return m.textInputMode.Prompt()
}

func (m *GratitudeMode) Enter(ctx types.Context) []types.Action {
	return m.textInputMode.Enter(ctx)
}

func (m *GratitudeMode) Exit(ctx types.Context) []types.Action {
	return m.textInputMode.Exit(ctx)
}

func (m *GratitudeMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	return m.textInputMode.HandleKey(msg, ctx)
}
