package commands

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planboard/internal/domain"
	"planboard/internal/eventbus"
	"planboard/internal/schedule"
	"planboard/internal/ui/state"
)

// recordingBus keeps published events in order instead of dispatching them
type recordingBus struct {
	mu     sync.Mutex
	events []eventbus.DomainEvent
}

func (b *recordingBus) Publish(e eventbus.DomainEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, e)
}

func (b *recordingBus) Subscribe(eventbus.EventType, eventbus.EventHandler) func() {
	return func() {}
}

func (b *recordingBus) Close() {}

func (b *recordingBus) types() []eventbus.EventType {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]eventbus.EventType, len(b.events))
	for i, e := range b.events {
		out[i] = e.Type()
	}
	return out
}

func newExecutor(t *testing.T) (*Executor, *state.AppState, schedule.Store, *recordingBus) {
	t.Helper()
	st := state.NewAppState(domain.ScreenSchedule, 7, false)
	store := schedule.NewMemoryStore()
	store.GetOrCreate(st.BoardName, func() *schedule.Board {
		return schedule.NewBoard(schedule.NewGrid(7, time.Monday), []string{"63", "205"})
	})
	bus := &recordingBus{}
	return NewExecutor(st, store, bus), st, store, bus
}

func TestAddUserBecomesCurrent(t *testing.T) {
	e, st, store, bus := newExecutor(t)

	u, err := e.ExecuteAddUser("  ana ")
	require.NoError(t, err)
	assert.Equal(t, "ana", u.Name)
	assert.Equal(t, "63", u.Color)
	assert.Equal(t, "ana", st.CurrentUser)
	assert.True(t, store.GetBoard(st.BoardName).HasUser("ana"))
	assert.Equal(t, []eventbus.EventType{eventbus.EventUserAdded, eventbus.EventCurrentUserChanged}, bus.types())

	_, err = e.ExecuteAddUser("ana")
	assert.ErrorIs(t, err, schedule.ErrUserExists)
	_, err = e.ExecuteAddUser(" ")
	assert.ErrorIs(t, err, schedule.ErrEmptyName)
}

func TestToggleNeedsCurrentUser(t *testing.T) {
	e, st, store, bus := newExecutor(t)
	slot := domain.Slot{Day: 1, Hour: 9}

	assert.ErrorIs(t, e.ExecuteToggle(slot), ErrNoCurrentUser)
	assert.ErrorIs(t, e.ExecuteDragClick(slot), ErrNoCurrentUser)
	assert.Empty(t, bus.types())

	_, err := e.ExecuteAddUser("ana")
	require.NoError(t, err)
	require.NoError(t, e.ExecuteToggle(slot))
	assert.True(t, store.GetBoard(st.BoardName).IsSelected("ana", slot))
	require.NoError(t, e.ExecuteToggle(slot))
	assert.False(t, store.GetBoard(st.BoardName).IsSelected("ana", slot))

	assert.ErrorIs(t, e.ExecuteToggle(domain.Slot{Day: 7}), schedule.ErrSlotOutOfRange)
}

func TestDragThroughExecutor(t *testing.T) {
	e, st, store, bus := newExecutor(t)
	_, err := e.ExecuteAddUser("ana")
	require.NoError(t, err)

	// Hover before a click paints nothing
	require.NoError(t, e.ExecuteDragHover(domain.Slot{Day: 0, Hour: 0}))

	require.NoError(t, e.ExecuteDragClick(domain.Slot{Day: 0, Hour: 1}))
	assert.True(t, st.Drag.Active)
	for h := 2; h <= 4; h++ {
		require.NoError(t, e.ExecuteDragHover(domain.Slot{Day: 0, Hour: h}))
	}
	require.NoError(t, e.ExecuteDragClick(domain.Slot{Day: 0, Hour: 4}))
	assert.False(t, st.Drag.Active)

	assert.Len(t, store.GetBoard(st.BoardName).Selections("ana"), 4)

	toggles := 0
	for _, typ := range bus.types() {
		if typ == eventbus.EventSlotToggled {
			toggles++
		}
	}
	assert.Equal(t, 4, toggles)
}

func TestClearUser(t *testing.T) {
	e, st, store, bus := newExecutor(t)
	_, err := e.ExecuteAddUser("ana")
	require.NoError(t, err)
	for h := 0; h < 3; h++ {
		require.NoError(t, e.ExecuteToggle(domain.Slot{Day: 2, Hour: h}))
	}
	require.NoError(t, e.ExecuteDragClick(domain.Slot{Day: 3, Hour: 0}))

	n, err := e.ExecuteClearUser("ana")
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.False(t, st.Drag.Active)
	assert.Empty(t, store.GetBoard(st.BoardName).Selections("ana"))

	last := bus.events[len(bus.events)-1]
	assert.Equal(t, eventbus.SelectionClearedEvent{User: "ana", Count: 4}, last)

	_, err = e.ExecuteClearUser("")
	assert.ErrorIs(t, err, ErrNoCurrentUser)
	_, err = e.ExecuteClearUser("ghost")
	assert.ErrorIs(t, err, schedule.ErrUnknownUser)
}

func TestCycleUserWraps(t *testing.T) {
	e, st, _, _ := newExecutor(t)
	assert.ErrorIs(t, e.ExecuteCycleUser(1), ErrNoCurrentUser)

	for _, name := range []string{"ana", "ben", "cy"} {
		_, err := e.ExecuteAddUser(name)
		require.NoError(t, err)
	}
	require.Equal(t, "cy", st.CurrentUser)

	require.NoError(t, e.ExecuteCycleUser(1))
	assert.Equal(t, "ana", st.CurrentUser)
	require.NoError(t, e.ExecuteCycleUser(-1))
	assert.Equal(t, "cy", st.CurrentUser)
	require.NoError(t, e.ExecuteCycleUser(-1))
	assert.Equal(t, "ben", st.CurrentUser)
}

func TestRemoveUserPicksNeighbour(t *testing.T) {
	e, st, store, bus := newExecutor(t)
	for _, name := range []string{"ana", "ben", "cy"} {
		_, err := e.ExecuteAddUser(name)
		require.NoError(t, err)
	}
	require.NoError(t, e.ExecuteCycleUser(-1))
	require.Equal(t, "ben", st.CurrentUser)
	require.NoError(t, e.ExecuteToggle(domain.Slot{Day: 0, Hour: 0}))

	require.NoError(t, e.ExecuteRemoveUser("ben"))
	b := store.GetBoard(st.BoardName)
	assert.False(t, b.HasUser("ben"))
	assert.Empty(t, b.Selectors(domain.Slot{Day: 0, Hour: 0}))
	assert.Equal(t, "cy", st.CurrentUser, "the next user in the roster takes over")
	assert.Equal(t, eventbus.CurrentUserChangedEvent{Name: "cy"}, bus.events[len(bus.events)-1])

	// Removing someone else leaves the current user alone
	require.NoError(t, e.ExecuteRemoveUser("ana"))
	assert.Equal(t, "cy", st.CurrentUser)
	assert.Equal(t, eventbus.UserRemovedEvent{Name: "ana"}, bus.events[len(bus.events)-1])

	require.NoError(t, e.ExecuteRemoveUser("cy"))
	assert.Empty(t, st.CurrentUser)

	assert.ErrorIs(t, e.ExecuteRemoveUser("cy"), schedule.ErrUnknownUser)
	assert.ErrorIs(t, e.ExecuteRemoveUser(""), ErrNoCurrentUser)
}
