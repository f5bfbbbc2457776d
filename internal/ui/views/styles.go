package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Dark bool

	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Confirm       lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	StatusError   lipgloss.Style
	StatusSuccess lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Scroll        lipgloss.Style
	Highlight     lipgloss.Style
	DragBadge     lipgloss.Style

	DayHeader  lipgloss.Style
	Weekend    lipgloss.Style
	HourLabel  lipgloss.Style
	EmptyCell  lipgloss.Style
	CursorMark lipgloss.Style
	Overflow   lipgloss.Style

	Popup      lipgloss.Style
	PopupTitle lipgloss.Style

	StepDone    lipgloss.Style
	StepCurrent lipgloss.Style
	StepTodo    lipgloss.Style
	ListCursor  lipgloss.Style

	LoginBox   lipgloss.Style
	FieldLabel lipgloss.Style
	FieldFocus lipgloss.Style
}

// NewStyles creates the style set for the dark or light theme
func NewStyles(dark bool) *Styles {
	// Light theme values first, dark second
	pick := func(l, d string) lipgloss.Color {
		if dark {
			return lipgloss.Color(d)
		}
		return lipgloss.Color(l)
	}

	text := pick("235", "252")
	muted := pick("245", "241")
	accent := pick("63", "99")
	border := pick("250", "241")

	return &Styles{
		Dark: dark,
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),
		Subtitle:      lipgloss.NewStyle().Foreground(muted),
		Confirm:       lipgloss.NewStyle().Bold(true).Foreground(pick("160", "203")),
		Dim:           lipgloss.NewStyle().Faint(true),
		Status:        lipgloss.NewStyle().Foreground(text),
		StatusError:   lipgloss.NewStyle().Foreground(pick("160", "203")), // red
		StatusSuccess: lipgloss.NewStyle().Foreground(pick("28", "78")),   // green
		Help:          lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Scroll:    lipgloss.NewStyle().Foreground(muted).Italic(true),
		Highlight: lipgloss.NewStyle().Foreground(pick("130", "226")).Bold(true),
		DragBadge: lipgloss.NewStyle().
			Bold(true).
			Foreground(pick("255", "16")).
			Background(pick("130", "214")),

		DayHeader:  lipgloss.NewStyle().Bold(true).Foreground(text),
		Weekend:    lipgloss.NewStyle().Bold(true).Foreground(muted),
		HourLabel:  lipgloss.NewStyle().Foreground(muted),
		EmptyCell:  lipgloss.NewStyle().Background(pick("254", "236")),
		CursorMark: lipgloss.NewStyle().Reverse(true).Bold(true),
		Overflow:   lipgloss.NewStyle().Bold(true).Foreground(pick("235", "255")),

		Popup: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(1, 2),
		PopupTitle: lipgloss.NewStyle().Bold(true).Foreground(accent).MarginBottom(1),

		StepDone:    lipgloss.NewStyle().Foreground(pick("28", "78")),
		StepCurrent: lipgloss.NewStyle().Bold(true).Foreground(accent),
		StepTodo:    lipgloss.NewStyle().Foreground(muted),
		ListCursor:  lipgloss.NewStyle().Bold(true).Foreground(pick("130", "214")),

		LoginBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 3),
		FieldLabel: lipgloss.NewStyle().Foreground(muted).Width(10),
		FieldFocus: lipgloss.NewStyle().Foreground(accent).Bold(true).Width(10),
	}
}

// UserColor is the background used for a roster member's segment
func UserColor(color string) lipgloss.Style {
	return lipgloss.NewStyle().Background(lipgloss.Color(color))
}
