package roadmap

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

var ErrEmptyEntry = errors.New("gratitude entry is empty")

// Entry is one line of the gratitude log
type Entry struct {
	ID        uuid.UUID
	Text      string
	CreatedAt time.Time
}

// Line renders the entry the way the log lists it
func (e Entry) Line() string {
	return fmt.Sprintf("- %s (%s)", e.Text, e.CreatedAt.Format(time.DateOnly))
}

// Age is a relative description such as "3 minutes ago"
func (e Entry) Age(now time.Time) string {
	return humanize.RelTime(e.CreatedAt, now, "ago", "from now")
}

// Journal is the daily gratitude log. It lives for the session only.
type Journal struct {
	entries []Entry
	clock   func() time.Time
}

// NewJournal creates an empty log; clock defaults to time.Now
func NewJournal(clock func() time.Time) *Journal {
	if clock == nil {
		clock = time.Now
	}
	return &Journal{clock: clock}
}

// Add appends text as a new entry
func (j *Journal) Add(text string) (Entry, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Entry{}, ErrEmptyEntry
	}
	e := Entry{
		ID:        uuid.New(),
		Text:      text,
		CreatedAt: j.clock(),
	}
	j.entries = append(j.entries, e)
	return e, nil
}

// Entries returns the log oldest first
func (j *Journal) Entries() []Entry {
	return append([]Entry(nil), j.entries...)
}

// Today counts entries logged on the clock's current date
func (j *Journal) Today() int {
	y, m, d := j.clock().Date()
	n := 0
	for _, e := range j.entries {
		ey, em, ed := e.CreatedAt.Date()
		if ey == y && em == m && ed == d {
			n++
		}
	}
	return n
}

// Export renders the whole log as plain text for the pager
func (j *Journal) Export() string {
	var sb strings.Builder
	sb.WriteString("Daily Gratitude Log\n\n")
	if len(j.entries) == 0 {
		sb.WriteString("Nothing logged yet.\n")
		return sb.String()
	}
	now := j.clock()
	for _, e := range j.entries {
		fmt.Fprintf(&sb, "%s  [%s]\n", e.Line(), e.Age(now))
	}
	fmt.Fprintf(&sb, "\n%s entries\n", humanize.Comma(int64(len(j.entries))))
	return sb.String()
}
