package schedule

import (
	"fmt"
	"time"

	"planboard/internal/domain"
)

// Grid describes the shape of a weekly board
type Grid struct {
	Days     int
	StartDay time.Weekday
}

// NewGrid returns a grid of days columns starting on start; days other than 14 become 7
func NewGrid(days int, start time.Weekday) Grid {
	if days != 14 {
		days = 7
	}
	return Grid{Days: days, StartDay: start}
}

// Contains reports whether s addresses a cell of the grid
func (g Grid) Contains(s domain.Slot) bool {
	return s.Day >= 0 && s.Day < g.Days && s.Hour >= 0 && s.Hour < domain.HoursPerDay
}

// Size is the number of cells in the grid
func (g Grid) Size() int {
	return g.Days * domain.HoursPerDay
}

// Slots lists every cell, hour-major so rows come out in display order
func (g Grid) Slots() []domain.Slot {
	out := make([]domain.Slot, 0, g.Size())
	for h := 0; h < domain.HoursPerDay; h++ {
		for d := 0; d < g.Days; d++ {
			out = append(out, domain.Slot{Day: d, Hour: h})
		}
	}
	return out
}

// Weekday returns the calendar day shown in column day
func (g Grid) Weekday(day int) time.Weekday {
	return time.Weekday((int(g.StartDay) + day) % 7)
}

// DayLabel is the column header, e.g. "Mon", or "Mon2" in the second week
func (g Grid) DayLabel(day int) string {
	label := g.Weekday(day).String()[:3]
	if day >= 7 {
		label += "2"
	}
	return label
}

// HourLabel is the row header, e.g. "09:00"
func (g Grid) HourLabel(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}

// SlotLabel is a human readable name for a cell
func (g Grid) SlotLabel(s domain.Slot) string {
	return fmt.Sprintf("%s %s-%02d:00", g.DayLabel(s.Day), g.HourLabel(s.Hour), (s.Hour+1)%domain.HoursPerDay)
}
