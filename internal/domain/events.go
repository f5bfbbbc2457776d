package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSlotToggled        EventType = "SlotToggled"
	EventUserAdded          EventType = "UserAdded"
	EventUserRemoved        EventType = "UserRemoved"
	EventCurrentUserChanged EventType = "CurrentUserChanged"
	EventSelectionCleared   EventType = "SelectionCleared"
	EventGratitudeAdded     EventType = "GratitudeAdded"
	EventProgressUpdated    EventType = "ProgressUpdated"
	EventThemeChanged       EventType = "ThemeChanged"
	EventLoggedIn           EventType = "LoggedIn"
	EventLoggedOut          EventType = "LoggedOut"
	EventConfigChanged      EventType = "ConfigChanged"
	EventConfigSaved        EventType = "ConfigSaved"
	EventError              EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SlotToggledEvent is emitted when a user's selection of a slot changes
type SlotToggledEvent struct {
	User     string
	Slot     Slot
	Selected bool
}

func (e SlotToggledEvent) Type() EventType { return EventSlotToggled }

// UserAddedEvent is emitted when a user joins a board roster
type UserAddedEvent struct {
	User User
}

func (e UserAddedEvent) Type() EventType { return EventUserAdded }

// UserRemovedEvent is emitted when a user leaves a board roster
type UserRemovedEvent struct {
	Name string
}

func (e UserRemovedEvent) Type() EventType { return EventUserRemoved }

// CurrentUserChangedEvent is emitted when selections are attributed to someone else
type CurrentUserChangedEvent struct {
	Name string
}

func (e CurrentUserChangedEvent) Type() EventType { return EventCurrentUserChanged }

// SelectionClearedEvent is emitted when all of a user's slots are dropped
type SelectionClearedEvent struct {
	User  string
	Count int
}

func (e SelectionClearedEvent) Type() EventType { return EventSelectionCleared }

// GratitudeAddedEvent is emitted when a journal entry is logged
type GratitudeAddedEvent struct {
	Text string
}

func (e GratitudeAddedEvent) Type() EventType { return EventGratitudeAdded }

// ProgressUpdatedEvent is emitted when the roadmap step is committed
type ProgressUpdatedEvent struct {
	Step  int
	Label string
}

func (e ProgressUpdatedEvent) Type() EventType { return EventProgressUpdated }

// ThemeChangedEvent is emitted when dark mode is switched
type ThemeChangedEvent struct {
	Dark bool
}

func (e ThemeChangedEvent) Type() EventType { return EventThemeChanged }

// LoggedInEvent is emitted after a successful login or registration
type LoggedInEvent struct {
	Username   string
	Registered bool
}

func (e LoggedInEvent) Type() EventType { return EventLoggedIn }

// LoggedOutEvent is emitted when the session user logs out
type LoggedOutEvent struct {
	Username string
}

func (e LoggedOutEvent) Type() EventType { return EventLoggedOut }

// ConfigChangedEvent carries settings the UI changed at runtime
type ConfigChangedEvent struct {
	DarkMode bool
	Days     int
}

func (e ConfigChangedEvent) Type() EventType { return EventConfigChanged }

// ConfigSavedEvent is emitted after the config file is written
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
