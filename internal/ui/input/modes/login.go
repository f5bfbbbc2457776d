package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"planboard/internal/ui/input/types"
)

// LoginMode owns the username and password fields of the login screen
type LoginMode struct {
	Username textinput.Model
	Password textinput.Model
	focus    int
}

func NewLoginMode() *LoginMode {
	user := textinput.New()
	user.Prompt = ""
	user.Placeholder = "username"
	user.CharLimit = 32

	pass := textinput.New()
	pass.Prompt = ""
	pass.Placeholder = "password"
	pass.CharLimit = 64
	pass.EchoMode = textinput.EchoPassword
	pass.EchoCharacter = '•'

	return &LoginMode{Username: user, Password: pass}
}

func (m *LoginMode) Name() string {
	return "login"
}

// PasswordFocused reports which field receives typed keys
func (m *LoginMode) PasswordFocused() bool {
	return m.focus == 1
}

func (m *LoginMode) Enter(ctx types.Context) []types.Action {
	m.Username.Reset()
	m.Password.Reset()
	m.setFocus(0)
	return nil
}

func (m *LoginMode) Exit(ctx types.Context) []types.Action {
	m.Username.Blur()
	m.Password.Blur()
	m.Password.Reset()
	return nil
}

func (m *LoginMode) setFocus(i int) {
	m.focus = i
	if i == 0 {
		m.Username.Focus()
		m.Password.Blur()
	} else {
		m.Password.Focus()
		m.Username.Blur()
	}
}

func (m *LoginMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "tab", "shift+tab", "up", "down":
		m.setFocus(1 - m.focus)
		return nil, true
	case "enter":
		if m.focus == 0 && m.Password.Value() == "" {
			m.setFocus(1)
			return nil, true
		}
		return []types.Action{m.submit(false)}, true
	case "ctrl+r":
		return []types.Action{m.submit(true)}, true
	}

	// Typed characters are left for Type
	return nil, false
}

// Type edits the focused field and returns its cursor blink command
func (m *LoginMode) Type(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	if m.focus == 0 {
		m.Username, cmd = m.Username.Update(msg)
	} else {
		m.Password, cmd = m.Password.Update(msg)
	}
	return cmd
}

func (m *LoginMode) submit(register bool) types.Action {
	a := types.LoginAction{
		Username: m.Username.Value(),
		Password: m.Password.Value(),
		Register: register,
	}
	m.Password.Reset()
	m.setFocus(1)
	return a
}

// Update forwards non-key messages such as cursor blinks to the focused field
func (m *LoginMode) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if m.focus == 0 {
		m.Username, cmd = m.Username.Update(msg)
	} else {
		m.Password, cmd = m.Password.Update(msg)
	}
	return cmd
}
