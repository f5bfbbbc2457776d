// Package schedule implements the multi-user weekly slot board: who picked
// which (day, hour) cell, how overlapping picks split a cell into colored
// segments, and the click-to-drag painting gesture.
package schedule

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"planboard/internal/domain"
)

var (
	ErrEmptyName      = errors.New("user name is empty")
	ErrUserExists     = errors.New("user already exists")
	ErrUnknownUser    = errors.New("unknown user")
	ErrSlotOutOfRange = errors.New("slot is outside the grid")
	ErrUnknownBoard   = errors.New("unknown board")
)

// SlotCount pairs a slot with how many users picked it
type SlotCount struct {
	Slot  domain.Slot
	Count int
}

// Board tracks each roster member's selected slots. It is not safe for
// concurrent use; Store serializes access across goroutines.
type Board struct {
	grid       Grid
	palette    []string
	users      []domain.User
	selections map[string]map[domain.Slot]struct{}
}

// NewBoard creates an empty board; palette colors are handed out as users join
func NewBoard(grid Grid, palette []string) *Board {
	if len(palette) == 0 {
		palette = []string{"63"}
	}
	return &Board{
		grid:       grid,
		palette:    append([]string(nil), palette...),
		selections: make(map[string]map[domain.Slot]struct{}),
	}
}

// Grid returns the board's shape
func (b *Board) Grid() Grid {
	return b.grid
}

// AddUser appends name to the roster with the first free palette color
func (b *Board) AddUser(name string) (domain.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.User{}, ErrEmptyName
	}
	if b.HasUser(name) {
		return domain.User{}, fmt.Errorf("%w: %s", ErrUserExists, name)
	}

	u := domain.User{
		ID:    uuid.New(),
		Name:  name,
		Color: b.nextColor(),
	}
	b.users = append(b.users, u)
	b.selections[name] = make(map[domain.Slot]struct{})
	return u, nil
}

func (b *Board) nextColor() string {
	used := make(map[string]bool, len(b.users))
	for _, u := range b.users {
		used[u.Color] = true
	}
	for _, c := range b.palette {
		if !used[c] {
			return c
		}
	}
	return b.palette[len(b.users)%len(b.palette)]
}

// RemoveUser drops name and everything they selected
func (b *Board) RemoveUser(name string) error {
	i := b.indexOf(name)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrUnknownUser, name)
	}
	b.users = append(b.users[:i:i], b.users[i+1:]...)
	delete(b.selections, name)
	return nil
}

// HasUser reports whether name is on the roster
func (b *Board) HasUser(name string) bool {
	return b.indexOf(name) >= 0
}

func (b *Board) indexOf(name string) int {
	for i, u := range b.users {
		if u.Name == name {
			return i
		}
	}
	return -1
}

// Users returns the roster in join order
func (b *Board) Users() []domain.User {
	return append([]domain.User(nil), b.users...)
}

func (b *Board) check(user string, slot domain.Slot) (map[domain.Slot]struct{}, error) {
	set, ok := b.selections[user]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownUser, user)
	}
	if !b.grid.Contains(slot) {
		return nil, fmt.Errorf("%w: %s", ErrSlotOutOfRange, slot)
	}
	return set, nil
}

// Toggle flips user's selection of slot and returns the new state
func (b *Board) Toggle(user string, slot domain.Slot) (bool, error) {
	set, err := b.check(user, slot)
	if err != nil {
		return false, err
	}
	if _, ok := set[slot]; ok {
		delete(set, slot)
		return false, nil
	}
	set[slot] = struct{}{}
	return true, nil
}

// Set selects or deselects slot for user
func (b *Board) Set(user string, slot domain.Slot, selected bool) error {
	set, err := b.check(user, slot)
	if err != nil {
		return err
	}
	if selected {
		set[slot] = struct{}{}
	} else {
		delete(set, slot)
	}
	return nil
}

// IsSelected reports whether user picked slot
func (b *Board) IsSelected(user string, slot domain.Slot) bool {
	_, ok := b.selections[user][slot]
	return ok
}

// Selectors returns who picked slot, in roster order
func (b *Board) Selectors(slot domain.Slot) []domain.User {
	var out []domain.User
	for _, u := range b.users {
		if _, ok := b.selections[u.Name][slot]; ok {
			out = append(out, u)
		}
	}
	return out
}

// Selections returns user's slots ordered by day, then hour
func (b *Board) Selections(user string) []domain.Slot {
	set := b.selections[user]
	out := make([]domain.Slot, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// ClearUser drops all of user's selections and returns how many there were
func (b *Board) ClearUser(user string) (int, error) {
	set, ok := b.selections[user]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownUser, user)
	}
	n := len(set)
	b.selections[user] = make(map[domain.Slot]struct{})
	return n, nil
}

// Counts returns the number of selectors for every slot picked at least once
func (b *Board) Counts() map[domain.Slot]int {
	counts := make(map[domain.Slot]int)
	for _, set := range b.selections {
		for s := range set {
			counts[s]++
		}
	}
	return counts
}

// BestSlots returns the most shared slots, most selectors first; limit <= 0 means all
func (b *Board) BestSlots(limit int) []SlotCount {
	counts := b.Counts()
	out := make([]SlotCount, 0, len(counts))
	for s, n := range counts {
		out = append(out, SlotCount{Slot: s, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Slot.Less(out[j].Slot)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Summary renders a plain-text overlap report
func (b *Board) Summary(limit int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Weekly availability (%d days, %d users)\n", b.grid.Days, len(b.users))

	for _, u := range b.users {
		fmt.Fprintf(&sb, "  %s: %d slots\n", u.Name, len(b.selections[u.Name]))
	}

	best := b.BestSlots(limit)
	if len(best) == 0 {
		sb.WriteString("No slots selected yet\n")
		return sb.String()
	}

	sb.WriteString("Best overlap:\n")
	for _, sc := range best {
		names := make([]string, 0, sc.Count)
		for _, u := range b.Selectors(sc.Slot) {
			names = append(names, u.Name)
		}
		fmt.Fprintf(&sb, "  %-16s %d/%d  %s\n", b.grid.SlotLabel(sc.Slot), sc.Count, len(b.users), strings.Join(names, ", "))
	}
	return sb.String()
}
