package handlers

import (
	"fmt"
	"path/filepath"

	"planboard/internal/eventbus"
)

// Notifier shows a snackbar
type Notifier func(msg string, isErr bool)

// EventHandler handles domain events that arrive from outside the UI
// goroutine and turns them into snackbar messages
type EventHandler struct {
	notify Notifier
}

// NewEventHandler creates a new event handler
func NewEventHandler(notify Notifier) *EventHandler {
	return &EventHandler{notify: notify}
}

// HandleEvent processes the domain events main forwards to the program
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) {
	switch e := event.(type) {
	case eventbus.ErrorEvent:
		msg := e.Message
		if e.Err != nil {
			msg = fmt.Sprintf("%s: %v", e.Message, e.Err)
		}
		h.notify("Error: "+msg, true)

	case eventbus.ConfigSavedEvent:
		h.notify(fmt.Sprintf("Settings saved to %s", filepath.Base(e.Path)), false)
	}
}
