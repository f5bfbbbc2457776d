package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "left", "right", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Slot actions
type ToggleSlotAction struct{}

func (a ToggleSlotAction) Type() string { return "toggle_slot" }

// DragClickAction is the keyboard form of clicking the cursor slot
type DragClickAction struct{}

func (a DragClickAction) Type() string { return "drag_click" }

type CancelDragAction struct{}

func (a CancelDragAction) Type() string { return "cancel_drag" }

type ClearUserAction struct{}

func (a ClearUserAction) Type() string { return "clear_user" }

type RemoveUserAction struct{}

func (a RemoveUserAction) Type() string { return "remove_user" }

// User actions
type AddUserAction struct {
	Name string
}

func (a AddUserAction) Type() string { return "add_user" }

type CycleUserAction struct {
	Delta int
}

func (a CycleUserAction) Type() string { return "cycle_user" }

// Board overview actions
type ToggleBestSlotsAction struct{}

func (a ToggleBestSlotsAction) Type() string { return "toggle_best_slots" }

type YankSummaryAction struct{}

func (a YankSummaryAction) Type() string { return "yank_summary" }

type SwitchGridAction struct{}

func (a SwitchGridAction) Type() string { return "switch_grid" }

// Roadmap actions
type StepNavigateAction struct {
	Delta int
}

func (a StepNavigateAction) Type() string { return "step_navigate" }

type CommitStepAction struct{}

func (a CommitStepAction) Type() string { return "commit_step" }

type CancelStepAction struct{}

func (a CancelStepAction) Type() string { return "cancel_step" }

type AddGratitudeAction struct {
	Text string
}

func (a AddGratitudeAction) Type() string { return "add_gratitude" }

type OpenJournalAction struct{}

func (a OpenJournalAction) Type() string { return "open_journal" }

// Session actions
type LoginAction struct {
	Username string
	Password string
	Register bool
}

func (a LoginAction) Type() string { return "login" }

type LogoutAction struct{}

func (a LogoutAction) Type() string { return "logout" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
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

// Global actions
type SwitchScreenAction struct{}

func (a SwitchScreenAction) Type() string { return "switch_screen" }

type ToggleThemeAction struct{}

func (a ToggleThemeAction) Type() string { return "toggle_theme" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type DismissPopupAction struct{}

func (a DismissPopupAction) Type() string { return "dismiss_popup" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
