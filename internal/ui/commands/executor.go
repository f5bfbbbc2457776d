package commands

import (
	"planboard/internal/domain"
	"planboard/internal/eventbus"
	"planboard/internal/schedule"
	"planboard/internal/ui/state"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor
func NewExecutor(state *state.AppState, store schedule.Store, bus eventbus.EventBus) *Executor {
	return &Executor{
		ctx: &CommandContext{
			State: state,
			Store: store,
			Bus:   bus,
		},
	}
}

func (e *Executor) ExecuteToggle(slot domain.Slot) error {
	return NewToggleCommand(e.ctx, slot).Execute()
}

func (e *Executor) ExecuteDragClick(slot domain.Slot) error {
	return NewDragClickCommand(e.ctx, slot).Execute()
}

func (e *Executor) ExecuteDragHover(slot domain.Slot) error {
	return NewDragHoverCommand(e.ctx, slot).Execute()
}

// ExecuteAddUser returns the user that was added
func (e *Executor) ExecuteAddUser(name string) (domain.User, error) {
	cmd := NewAddUserCommand(e.ctx, name)
	err := cmd.Execute()
	return cmd.Added, err
}

// ExecuteClearUser returns how many slots were cleared
func (e *Executor) ExecuteClearUser(user string) (int, error) {
	cmd := NewClearUserCommand(e.ctx, user)
	err := cmd.Execute()
	return cmd.Cleared, err
}

func (e *Executor) ExecuteRemoveUser(user string) error {
	return NewRemoveUserCommand(e.ctx, user).Execute()
}

func (e *Executor) ExecuteCycleUser(delta int) error {
	return NewCycleUserCommand(e.ctx, delta).Execute()
}
