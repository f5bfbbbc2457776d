package viewmodels

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"planboard/internal/accounts"
	"planboard/internal/config"
	"planboard/internal/domain"
	"planboard/internal/roadmap"
	"planboard/internal/schedule"
	"planboard/internal/ui/input"
	"planboard/internal/ui/input/types"
	"planboard/internal/ui/keys"
	"planboard/internal/ui/state"
	"planboard/internal/ui/views"
)

// bestSlotsShown caps the best-slots popup
const bestSlotsShown = 10

// ViewModel gathers model state into a views.ViewState
type ViewModel struct {
	state    *state.AppState
	config   *config.Config
	input    *input.Handler
	tracker  *roadmap.Tracker
	journal  *roadmap.Journal
	accounts *accounts.Registry
	help     help.Model
	clock    func() time.Time
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, cfg *config.Config, in *input.Handler, tracker *roadmap.Tracker, journal *roadmap.Journal, accounts *accounts.Registry, clock func() time.Time) *ViewModel {
	return &ViewModel{
		state:    appState,
		config:   cfg,
		input:    in,
		tracker:  tracker,
		journal:  journal,
		accounts: accounts,
		help:     help.New(),
		clock:    clock,
	}
}

// SetHelp sets the help model
func (vm *ViewModel) SetHelp(h help.Model) {
	vm.help = h
}

// BuildViewState creates the ViewState for rendering
func (vm *ViewModel) BuildViewState(board *schedule.Board) views.ViewState {
	mode := vm.input.CurrentMode()
	vs := views.ViewState{
		Width:          vm.state.Width,
		Height:         vm.state.Height,
		Screen:         vm.state.Screen,
		Board:          board,
		CellWidth:      vm.config.Scheduler.CellWidth,
		Cursor:         vm.state.Cursor,
		CurrentUser:    vm.state.CurrentUser,
		SessionUser:    vm.state.SessionUser,
		DragActive:     vm.state.Drag.Active,
		ViewportOffset: vm.state.ViewportOffset,
		ShowBest:       vm.state.ShowBest,
		BestLimit:      bestSlotsShown,
		StatusMessage:  vm.state.StatusMessage,
		StatusIsError:  vm.state.StatusIsError,
		InputMode:      mode.String(),
		HelpModel:      vm.help,
		HelpKeys:       vm.helpKeys(mode),
		Now:            vm.clock(),
	}

	if mode.IsConfirm() {
		vs.ConfirmPrompt = vm.input.ConfirmQuestion()
	}
	if ti := vm.input.TextInput(); ti != nil {
		vs.InputPrompt = vm.input.Prompt()
		vs.TextInput = ti.View()
	}

	if vm.tracker != nil {
		vs.Steps = vm.tracker.Steps()
		vs.CurrentStep = vm.tracker.Current()
		vs.SelectedStep = vm.tracker.Selected()
		vs.StepSelecting = mode == types.ModeStepSelect
	}
	if vm.journal != nil {
		vs.Journal = vm.journal.Entries()
		vs.JournalToday = vm.journal.Today()
	}

	if vm.state.Screen == domain.ScreenLogin {
		lm := vm.input.Login()
		vs.Login = views.LoginView{
			Username:        lm.Username.View(),
			Password:        lm.Password.View(),
			PasswordFocused: lm.PasswordFocused(),
			Error:           vm.state.LoginError,
		}
		if vm.accounts != nil {
			vs.Login.Accounts = len(vm.accounts.Usernames())
		}
	}

	return vs
}

func (vm *ViewModel) helpKeys(mode types.Mode) []key.Binding {
	switch mode {
	case types.ModeStepSelect:
		return keys.ListHelp()
	case types.ModeRoadmap:
		return keys.RoadmapHelp()
	case types.ModeSchedule:
		return keys.ScheduleHelp(vm.config.Scheduler.RequireLogin)
	}
	// Text and confirm modes explain themselves inline
	return nil
}
