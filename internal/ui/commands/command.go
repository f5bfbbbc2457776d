package commands

import (
	"errors"
	"fmt"

	"planboard/internal/domain"
	"planboard/internal/eventbus"
	"planboard/internal/schedule"
	"planboard/internal/ui/state"
)

// ErrNoCurrentUser is returned by grid edits when nobody is selected
var ErrNoCurrentUser = errors.New("add or select a user first")

// Command represents an executable grid edit
type Command interface {
	Execute() error
}

// CommandContext provides context for command execution
type CommandContext struct {
	State *state.AppState
	Store schedule.Store
	Bus   eventbus.EventBus
}

func (ctx *CommandContext) publish(e eventbus.DomainEvent) {
	if ctx.Bus != nil {
		ctx.Bus.Publish(e)
	}
}

func (ctx *CommandContext) publishChange(user string, ch *schedule.Change) {
	if ch != nil {
		ctx.publish(eventbus.SlotToggledEvent{User: user, Slot: ch.Slot, Selected: ch.Selected})
	}
}

// ToggleCommand flips one slot for the current user
type ToggleCommand struct {
	ctx  *CommandContext
	slot domain.Slot
}

func NewToggleCommand(ctx *CommandContext, slot domain.Slot) *ToggleCommand {
	return &ToggleCommand{ctx: ctx, slot: slot}
}

func (c *ToggleCommand) Execute() error {
	user := c.ctx.State.CurrentUser
	if user == "" {
		return ErrNoCurrentUser
	}
	var selected bool
	err := c.ctx.Store.Update(c.ctx.State.BoardName, func(b *schedule.Board) error {
		var err error
		selected, err = b.Toggle(user, c.slot)
		return err
	})
	if err != nil {
		return err
	}
	c.ctx.publishChange(user, &schedule.Change{Slot: c.slot, Selected: selected})
	return nil
}

// DragClickCommand starts or ends a paint gesture at a slot
type DragClickCommand struct {
	ctx  *CommandContext
	slot domain.Slot
}

func NewDragClickCommand(ctx *CommandContext, slot domain.Slot) *DragClickCommand {
	return &DragClickCommand{ctx: ctx, slot: slot}
}

func (c *DragClickCommand) Execute() error {
	user := c.ctx.State.CurrentUser
	if user == "" && !c.ctx.State.Drag.Active {
		return ErrNoCurrentUser
	}
	var ch *schedule.Change
	err := c.ctx.Store.Update(c.ctx.State.BoardName, func(b *schedule.Board) error {
		var err error
		ch, err = c.ctx.State.Drag.Click(b, user, c.slot)
		return err
	})
	if err != nil {
		return err
	}
	c.ctx.publishChange(user, ch)
	return nil
}

// DragHoverCommand paints a slot passed over while drag mode is on
type DragHoverCommand struct {
	ctx  *CommandContext
	slot domain.Slot
}

func NewDragHoverCommand(ctx *CommandContext, slot domain.Slot) *DragHoverCommand {
	return &DragHoverCommand{ctx: ctx, slot: slot}
}

func (c *DragHoverCommand) Execute() error {
	if !c.ctx.State.Drag.Active {
		return nil
	}
	user := c.ctx.State.CurrentUser
	var ch *schedule.Change
	err := c.ctx.Store.Update(c.ctx.State.BoardName, func(b *schedule.Board) error {
		var err error
		ch, err = c.ctx.State.Drag.Hover(b, user, c.slot)
		return err
	})
	if err != nil {
		return err
	}
	c.ctx.publishChange(user, ch)
	return nil
}

// AddUserCommand adds a roster member and makes them current
type AddUserCommand struct {
	ctx   *CommandContext
	name  string
	Added domain.User
}

func NewAddUserCommand(ctx *CommandContext, name string) *AddUserCommand {
	return &AddUserCommand{ctx: ctx, name: name}
}

func (c *AddUserCommand) Execute() error {
	err := c.ctx.Store.Update(c.ctx.State.BoardName, func(b *schedule.Board) error {
		var err error
		c.Added, err = b.AddUser(c.name)
		return err
	})
	if err != nil {
		return err
	}
	c.ctx.State.Drag.Cancel()
	c.ctx.State.CurrentUser = c.Added.Name
	c.ctx.publish(eventbus.UserAddedEvent{User: c.Added})
	c.ctx.publish(eventbus.CurrentUserChangedEvent{Name: c.Added.Name})
	return nil
}

// ClearUserCommand wipes every selection of one user
type ClearUserCommand struct {
	ctx     *CommandContext
	user    string
	Cleared int
}

func NewClearUserCommand(ctx *CommandContext, user string) *ClearUserCommand {
	return &ClearUserCommand{ctx: ctx, user: user}
}

func (c *ClearUserCommand) Execute() error {
	if c.user == "" {
		return ErrNoCurrentUser
	}
	err := c.ctx.Store.Update(c.ctx.State.BoardName, func(b *schedule.Board) error {
		var err error
		c.Cleared, err = b.ClearUser(c.user)
		return err
	})
	if err != nil {
		return err
	}
	c.ctx.State.Drag.Cancel()
	c.ctx.publish(eventbus.SelectionClearedEvent{User: c.user, Count: c.Cleared})
	return nil
}

// RemoveUserCommand drops a roster member; the current user falls to a neighbour
type RemoveUserCommand struct {
	ctx  *CommandContext
	user string
}

func NewRemoveUserCommand(ctx *CommandContext, user string) *RemoveUserCommand {
	return &RemoveUserCommand{ctx: ctx, user: user}
}

func (c *RemoveUserCommand) Execute() error {
	if c.user == "" {
		return ErrNoCurrentUser
	}
	var next string
	err := c.ctx.Store.Update(c.ctx.State.BoardName, func(b *schedule.Board) error {
		users := b.Users()
		idx := -1
		for i, u := range users {
			if u.Name == c.user {
				idx = i
				break
			}
		}
		if err := b.RemoveUser(c.user); err != nil {
			return err
		}
		if rest := b.Users(); len(rest) > 0 {
			next = rest[min(idx, len(rest)-1)].Name
		}
		return nil
	})
	if err != nil {
		return err
	}

	c.ctx.publish(eventbus.UserRemovedEvent{Name: c.user})
	if c.ctx.State.CurrentUser != c.user {
		return nil
	}
	c.ctx.State.Drag.Cancel()
	c.ctx.State.CurrentUser = next
	c.ctx.publish(eventbus.CurrentUserChangedEvent{Name: next})
	return nil
}

// CycleUserCommand moves the current user through the roster
type CycleUserCommand struct {
	ctx   *CommandContext
	delta int
}

func NewCycleUserCommand(ctx *CommandContext, delta int) *CycleUserCommand {
	return &CycleUserCommand{ctx: ctx, delta: delta}
}

func (c *CycleUserCommand) Execute() error {
	b := c.ctx.Store.GetBoard(c.ctx.State.BoardName)
	if b == nil {
		return fmt.Errorf("%w: %s", schedule.ErrUnknownBoard, c.ctx.State.BoardName)
	}
	users := b.Users()
	if len(users) == 0 {
		return ErrNoCurrentUser
	}

	idx := 0
	for i, u := range users {
		if u.Name == c.ctx.State.CurrentUser {
			idx = i
			break
		}
	}
	idx = ((idx+c.delta)%len(users) + len(users)) % len(users)
	if users[idx].Name == c.ctx.State.CurrentUser {
		return nil
	}

	// A drag belongs to the user who started it
	c.ctx.State.Drag.Cancel()
	c.ctx.State.CurrentUser = users[idx].Name
	c.ctx.publish(eventbus.CurrentUserChangedEvent{Name: users[idx].Name})
	return nil
}
