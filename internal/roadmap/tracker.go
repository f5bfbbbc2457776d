// Package roadmap holds the positivity journaling tool: the step tracker,
// the daily gratitude journal and the reminder cadence.
package roadmap

import (
	"errors"
	"fmt"
)

var (
	ErrStepOutOfRange = errors.New("step out of range")
	ErrNoSteps        = errors.New("roadmap has no steps")
)

// Tracker keeps the step being chosen apart from the step shown as progress,
// so browsing the list doesn't change progress until it is committed.
type Tracker struct {
	steps    []string
	selected int
	current  int
}

// NewTracker starts both the selection and the progress at the first step
func NewTracker(steps []string) (*Tracker, error) {
	if len(steps) == 0 {
		return nil, ErrNoSteps
	}
	return &Tracker{steps: append([]string(nil), steps...)}, nil
}

// Steps returns the roadmap stages in order
func (t *Tracker) Steps() []string {
	return append([]string(nil), t.steps...)
}

func (t *Tracker) Selected() int { return t.selected }
func (t *Tracker) Current() int  { return t.current }

// CurrentLabel is the progress text
func (t *Tracker) CurrentLabel() string {
	return t.steps[t.current]
}

// Select moves the pending choice to index
func (t *Tracker) Select(index int) error {
	if index < 0 || index >= len(t.steps) {
		return fmt.Errorf("%w: %d", ErrStepOutOfRange, index)
	}
	t.selected = index
	return nil
}

// Next moves the pending choice down, wrapping to the top
func (t *Tracker) Next() {
	t.selected = (t.selected + 1) % len(t.steps)
}

// Prev moves the pending choice up, wrapping to the bottom
func (t *Tracker) Prev() {
	t.selected = (t.selected - 1 + len(t.steps)) % len(t.steps)
}

// Reset drops an uncommitted choice
func (t *Tracker) Reset() {
	t.selected = t.current
}

// Commit makes the pending choice the displayed progress and reports whether it changed
func (t *Tracker) Commit() bool {
	changed := t.current != t.selected
	t.current = t.selected
	return changed
}
