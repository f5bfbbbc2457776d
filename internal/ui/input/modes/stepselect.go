package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"planboard/internal/ui/input/types"
	"planboard/internal/ui/keys"
)

// StepSelectMode is the roadmap step dropdown
type StepSelectMode struct{}

func NewStepSelectMode() *StepSelectMode {
	return &StepSelectMode{}
}

func (m *StepSelectMode) Name() string {
	return "step-select"
}

func (m *StepSelectMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *StepSelectMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *StepSelectMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, keys.Global.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true
	case key.Matches(msg, keys.List.Up):
		return []types.Action{types.StepNavigateAction{Delta: -1}}, true
	case key.Matches(msg, keys.List.Down):
		return []types.Action{types.StepNavigateAction{Delta: 1}}, true
	case key.Matches(msg, keys.List.Commit):
		return []types.Action{
			types.CommitStepAction{},
			types.ChangeModeAction{Mode: types.ModeRoadmap},
		}, true
	case key.Matches(msg, keys.List.Cancel):
		return []types.Action{
			types.CancelStepAction{},
			types.ChangeModeAction{Mode: types.ModeRoadmap},
		}, true
	}
	return nil, true
}
