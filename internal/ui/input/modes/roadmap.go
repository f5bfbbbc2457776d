package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"planboard/internal/ui/input/types"
	"planboard/internal/ui/keys"
)

// RoadmapMode is the journaling screen's normal mode
type RoadmapMode struct{}

func NewRoadmapMode() *RoadmapMode {
	return &RoadmapMode{}
}

func (m *RoadmapMode) Name() string {
	return "roadmap"
}

func (m *RoadmapMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *RoadmapMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *RoadmapMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if actions, ok := globalKey(msg, ctx); ok {
		return actions, true
	}

	switch {
	case key.Matches(msg, keys.Roadmap.SelectStep):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeStepSelect}}, true
	case key.Matches(msg, keys.Roadmap.Gratitude):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeGratitude}}, true
	case key.Matches(msg, keys.Roadmap.Journal):
		return []types.Action{types.OpenJournalAction{}}, true
	case key.Matches(msg, keys.Schedule.Logout):
		if ctx.LoginEnabled() {
			return []types.Action{types.LogoutAction{}}, true
		}
	}
	return nil, false
}
