package roadmap

import "time"

// Reminder is the periodic nudge to write in the journal
type Reminder struct {
	Interval time.Duration
	Message  string
	Enabled  bool
}

// NewReminder returns an enabled reminder; intervals under a second are raised to one
func NewReminder(interval time.Duration, message string) Reminder {
	if interval < time.Second {
		interval = time.Second
	}
	return Reminder{Interval: interval, Message: message, Enabled: true}
}

// Due reports whether a reminder should fire at now, given the last time one fired
func (r Reminder) Due(last, now time.Time) bool {
	return r.Enabled && !now.Before(last.Add(r.Interval))
}
