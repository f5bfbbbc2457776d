package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"planboard/internal/ui/input/modes"
	"planboard/internal/ui/input/types"
)

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model // Shared text input for text modes
	login       *modes.LoginMode
}

// New creates a handler starting in the given mode
func New(start types.Mode) *Handler {
	ti := textinput.New()

	h := &Handler{
		currentMode: start,
		textInput:   &ti,
		modes:       make(map[types.Mode]types.ModeHandler),
		login:       modes.NewLoginMode(),
	}

	h.modes[types.ModeSchedule] = modes.NewScheduleMode()
	h.modes[types.ModeRoadmap] = modes.NewRoadmapMode()
	h.modes[types.ModeLogin] = h.login
	h.modes[types.ModeAddUser] = modes.NewAddUserMode(h.textInput)
	h.modes[types.ModeGratitude] = modes.NewGratitudeMode(h.textInput)
	h.modes[types.ModeStepSelect] = modes.NewStepSelectMode()
	h.modes[types.ModeClearConfirm] = modes.NewClearConfirmMode()
	h.modes[types.ModeRemoveConfirm] = modes.NewRemoveConfirmMode()

	if start == types.ModeLogin {
		h.login.Enter(nil)
	}

	return h
}

func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)
	if !consumed && !h.currentMode.IsText() && h.currentMode != types.ModeLogin {
		return nil, nil
	}

	var cmd tea.Cmd
	var allActions []types.Action

	for _, action := range actions {
		changeMode, ok := action.(types.ChangeModeAction)
		if !ok {
			allActions = append(allActions, action)
			continue
		}
		allActions = append(allActions, h.switchMode(changeMode.Mode, ctx)...)
		if h.currentMode.IsText() || h.currentMode == types.ModeLogin {
			cmd = textinput.Blink
		}
	}

	// Unhandled keys in a text mode are typed into the input
	if h.currentMode.IsText() && !consumed {
		var textCmd tea.Cmd
		*h.textInput, textCmd = h.textInput.Update(msg)
		cmd = textCmd
		allActions = append(allActions, types.UpdateTextAction{Text: h.textInput.Value()})
	}
	if h.currentMode == types.ModeLogin && !consumed {
		cmd = h.login.Type(msg)
	}

	return allActions, cmd
}

func (h *Handler) switchMode(mode types.Mode, ctx types.Context) []types.Action {
	var out []types.Action
	if cur := h.modes[h.currentMode]; cur != nil {
		out = append(out, cur.Exit(ctx)...)
	}
	h.currentMode = mode
	if next := h.modes[mode]; next != nil {
		out = append(out, next.Enter(ctx)...)
	}
	return out
}

// ChangeMode switches modes outside of a key event, e.g. after login
func (h *Handler) ChangeMode(mode types.Mode, ctx types.Context) ([]types.Action, tea.Cmd) {
	if mode == h.currentMode {
		return nil, nil
	}
	actions := h.switchMode(mode, ctx)
	if mode.IsText() || mode == types.ModeLogin {
		return actions, textinput.Blink
	}
	return actions, nil
}

func (h *Handler) CurrentMode() types.Mode {
	return h.currentMode
}

// TextInput is the shared input while a text mode is active
func (h *Handler) TextInput() *textinput.Model {
	if h.currentMode.IsText() {
		return h.textInput
	}
	return nil
}

// Prompt is the label of the active text mode
func (h *Handler) Prompt() string {
	if p, ok := h.modes[h.currentMode].(interface{ Prompt() string }); ok {
		return p.Prompt()
	}
	return ""
}

func (h *Handler) Login() *modes.LoginMode {
	return h.login
}

// ConfirmTarget is the user the last confirmation of mode applied to
func (h *Handler) ConfirmTarget(mode types.Mode) string {
	if c, ok := h.modes[mode].(*modes.ConfirmMode); ok {
		return c.Target()
	}
	return ""
}

// ConfirmQuestion is the y/n prompt while a confirm mode is active
func (h *Handler) ConfirmQuestion() string {
	if c, ok := h.modes[h.currentMode].(*modes.ConfirmMode); ok && h.currentMode.IsConfirm() {
		return c.Question()
	}
	return ""
}

// Update handles non-keyboard messages for text input
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	switch {
	case h.currentMode.IsText():
		var cmd tea.Cmd
		*h.textInput, cmd = h.textInput.Update(msg)
		return cmd
	case h.currentMode == types.ModeLogin:
		return h.login.Update(msg)
	}
	return nil
}
