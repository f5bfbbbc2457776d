package input

import (
	"planboard/internal/domain"
	"planboard/internal/schedule"
	"planboard/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State       *state.AppState
	Board       *schedule.Board
	RequireAuth bool
}

func (c *ModelContext) Screen() domain.Screen {
	return c.State.Screen
}

func (c *ModelContext) CurrentUser() string {
	return c.State.CurrentUser
}

// UserCount is the roster size of the visible board
func (c *ModelContext) UserCount() int {
	if c.Board == nil {
		return 0
	}
	return len(c.Board.Users())
}

func (c *ModelContext) DragActive() bool {
	return c.State.Drag.Active
}

func (c *ModelContext) LoginEnabled() bool {
	return c.RequireAuth
}

func (c *ModelContext) PopupOpen() bool {
	return c.State.ShowBest
}
