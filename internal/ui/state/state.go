package state

import (
	"time"

	"planboard/internal/domain"
	"planboard/internal/schedule"
)

// Board names in the schedule store
const (
	BoardWeek      = "week"
	BoardFortnight = "fortnight"
)

// PageHours is how far pgup/pgdown move the cursor
const PageHours = 6

// AppState contains all the application state
type AppState struct {
	Screen      domain.Screen
	BoardName   string
	Cursor      domain.Slot
	CurrentUser string // roster member the grid edits apply to
	SessionUser string // logged in account, empty without login

	Drag     schedule.Drag
	ShowBest bool

	// UI state
	DarkMode       bool
	Width          int
	Height         int
	ViewportOffset int // first visible hour
	ViewportHeight int // hour rows that fit on screen
	LoginError     string
	StatusMessage  string
	StatusIsError  bool
	StatusUntil    time.Time
}

// NewAppState creates a new application state
func NewAppState(screen domain.Screen, days int, dark bool) *AppState {
	return &AppState{
		Screen:         screen,
		BoardName:      BoardForDays(days),
		DarkMode:       dark,
		ViewportHeight: domain.HoursPerDay,
	}
}

// BoardForDays maps a grid length to its store key
func BoardForDays(days int) string {
	if days == 14 {
		return BoardFortnight
	}
	return BoardWeek
}

// DaysForBoard is the inverse of BoardForDays
func DaysForBoard(name string) int {
	if name == BoardFortnight {
		return 14
	}
	return 7
}

// SetStatus shows a snackbar until the given deadline, replacing any older one
func (s *AppState) SetStatus(msg string, isErr bool, until time.Time) {
	s.StatusMessage = msg
	s.StatusIsError = isErr
	s.StatusUntil = until
}

// ExpireStatus hides the snackbar once now reaches its deadline
func (s *AppState) ExpireStatus(now time.Time) bool {
	if s.StatusMessage == "" || now.Before(s.StatusUntil) {
		return false
	}
	s.StatusMessage = ""
	s.StatusIsError = false
	return true
}

// MoveCursor moves the cursor within g, clamping at the edges
func (s *AppState) MoveCursor(direction string, g schedule.Grid) {
	c := s.Cursor
	switch direction {
	case "up":
		c.Hour--
	case "down":
		c.Hour++
	case "left":
		c.Day--
	case "right":
		c.Day++
	case "pageup":
		c.Hour -= PageHours
	case "pagedown":
		c.Hour += PageHours
	case "home":
		c.Hour = 0
	case "end":
		c.Hour = domain.HoursPerDay - 1
	}
	s.Cursor = clampSlot(c, g)
	s.EnsureCursorVisible()
}

// ClampCursor keeps the cursor inside g after the grid changes size
func (s *AppState) ClampCursor(g schedule.Grid) {
	s.Cursor = clampSlot(s.Cursor, g)
	s.EnsureCursorVisible()
}

func clampSlot(c domain.Slot, g schedule.Grid) domain.Slot {
	c.Day = clamp(c.Day, 0, g.Days-1)
	c.Hour = clamp(c.Hour, 0, domain.HoursPerDay-1)
	return c
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// EnsureCursorVisible scrolls the hour rows so the cursor is on screen
func (s *AppState) EnsureCursorVisible() {
	rows := s.ViewportHeight
	if rows <= 0 {
		rows = 1
	}
	if s.Cursor.Hour < s.ViewportOffset {
		s.ViewportOffset = s.Cursor.Hour
	}
	if s.Cursor.Hour >= s.ViewportOffset+rows {
		s.ViewportOffset = s.Cursor.Hour - rows + 1
	}
	s.ViewportOffset = clamp(s.ViewportOffset, 0, max(0, domain.HoursPerDay-rows))
}

// SetViewportHeight records how many hour rows fit and re-scrolls
func (s *AppState) SetViewportHeight(rows int) {
	s.ViewportHeight = clamp(rows, 1, domain.HoursPerDay)
	s.EnsureCursorVisible()
}
