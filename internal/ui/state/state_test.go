package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"planboard/internal/domain"
	"planboard/internal/schedule"
)

func TestMoveCursorClampsToGrid(t *testing.T) {
	s := NewAppState(domain.ScreenSchedule, 7, false)
	g := schedule.NewGrid(7, time.Monday)

	s.MoveCursor("up", g)
	s.MoveCursor("left", g)
	assert.Equal(t, domain.Slot{}, s.Cursor)

	for i := 0; i < 10; i++ {
		s.MoveCursor("right", g)
	}
	assert.Equal(t, 6, s.Cursor.Day)

	s.MoveCursor("pagedown", g)
	assert.Equal(t, PageHours, s.Cursor.Hour)
	s.MoveCursor("end", g)
	assert.Equal(t, 23, s.Cursor.Hour)
	s.MoveCursor("down", g)
	assert.Equal(t, 23, s.Cursor.Hour)
	s.MoveCursor("home", g)
	assert.Equal(t, 0, s.Cursor.Hour)
}

func TestClampCursorAfterShrink(t *testing.T) {
	s := NewAppState(domain.ScreenSchedule, 14, false)
	s.Cursor = domain.Slot{Day: 12, Hour: 5}
	s.ClampCursor(schedule.NewGrid(7, time.Monday))
	assert.Equal(t, domain.Slot{Day: 6, Hour: 5}, s.Cursor)
}

func TestViewportFollowsCursor(t *testing.T) {
	s := NewAppState(domain.ScreenSchedule, 7, false)
	g := schedule.NewGrid(7, time.Monday)
	s.SetViewportHeight(8)

	s.MoveCursor("end", g)
	assert.Equal(t, 16, s.ViewportOffset)

	s.MoveCursor("pageup", g)
	assert.Equal(t, 16, s.ViewportOffset)
	s.MoveCursor("home", g)
	assert.Equal(t, 0, s.ViewportOffset)

	// Growing the window past the day resets scrolling
	s.MoveCursor("end", g)
	s.SetViewportHeight(40)
	assert.Equal(t, 24, s.ViewportHeight)
	assert.Equal(t, 0, s.ViewportOffset)
}

func TestStatusExpiry(t *testing.T) {
	s := NewAppState(domain.ScreenSchedule, 7, false)
	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	s.SetStatus("one", false, start.Add(3*time.Second))
	s.SetStatus("two", true, start.Add(5*time.Second))

	// The older deadline no longer applies
	assert.False(t, s.ExpireStatus(start.Add(4*time.Second)))
	assert.Equal(t, "two", s.StatusMessage)
	assert.True(t, s.StatusIsError)

	assert.True(t, s.ExpireStatus(start.Add(5*time.Second)))
	assert.Empty(t, s.StatusMessage)
	assert.False(t, s.StatusIsError)
	assert.False(t, s.ExpireStatus(start.Add(time.Hour)))
}

func TestBoardNames(t *testing.T) {
	assert.Equal(t, BoardWeek, BoardForDays(7))
	assert.Equal(t, BoardFortnight, BoardForDays(14))
	assert.Equal(t, 14, DaysForBoard(BoardFortnight))
	assert.Equal(t, 7, DaysForBoard("anything"))
}
