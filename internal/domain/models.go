package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// HoursPerDay is the number of rows in every scheduler grid
const HoursPerDay = 24

// Slot is a (day, hour) cell in a scheduler grid
type Slot struct {
	Day  int
	Hour int
}

func (s Slot) String() string {
	return fmt.Sprintf("d%d@%02d", s.Day, s.Hour)
}

// Less orders slots by day, then hour
func (s Slot) Less(o Slot) bool {
	if s.Day != o.Day {
		return s.Day < o.Day
	}
	return s.Hour < o.Hour
}

// User is a member of a scheduler roster
type User struct {
	ID    uuid.UUID
	Name  string
	Color string // lipgloss color spec
}

// Screen identifies which app the UI is showing
type Screen string

const (
	ScreenLogin    Screen = "login"
	ScreenSchedule Screen = "schedule"
	ScreenRoadmap  Screen = "roadmap"
)
