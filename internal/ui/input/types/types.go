package types

import (
	tea "github.com/charmbracelet/bubbletea"

	"planboard/internal/domain"
)

// Mode represents an input mode
type Mode int

const (
	ModeSchedule Mode = iota
	ModeRoadmap
	ModeLogin
	ModeAddUser
	ModeGratitude
	ModeStepSelect
	ModeClearConfirm
	ModeRemoveConfirm
)

func (m Mode) String() string {
	switch m {
	case ModeSchedule:
		return "schedule"
	case ModeRoadmap:
		return "roadmap"
	case ModeLogin:
		return "login"
	case ModeAddUser:
		return "add-user"
	case ModeGratitude:
		return "gratitude"
	case ModeStepSelect:
		return "step-select"
	case ModeClearConfirm:
		return "clear-confirm"
	case ModeRemoveConfirm:
		return "remove-confirm"
	}
	return "unknown"
}

// IsConfirm reports whether the mode is waiting for y/n
func (m Mode) IsConfirm() bool {
	return m == ModeClearConfirm || m == ModeRemoveConfirm
}

// IsText reports whether the mode edits the shared text input
func (m Mode) IsText() bool {
	return m == ModeAddUser || m == ModeGratitude
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	Screen() domain.Screen
	CurrentUser() string
	UserCount() int
	DragActive() bool
	LoginEnabled() bool
	PopupOpen() bool
}

// BaseMode is the mode a screen falls back to after a transient mode ends
func BaseMode(ctx Context) Mode {
	switch ctx.Screen() {
	case domain.ScreenRoadmap:
		return ModeRoadmap
	case domain.ScreenLogin:
		return ModeLogin
	default:
		return ModeSchedule
	}
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}
