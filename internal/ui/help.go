package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

// ErrNoProgram is returned when the pager is opened before the program runs
var ErrNoProgram = errors.New("program not set")

// HelpRenderer handles help content rendering
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

type helpEntry struct {
	keys string
	desc string
}

type helpSection struct {
	title   string
	entries []helpEntry
}

func helpSections(loginEnabled bool) []helpSection {
	sections := []helpSection{
		{"Schedule grid", []helpEntry{
			{"↑/↓, k/j", "Move one hour"},
			{"←/→, h/l", "Move one day"},
			{"PgUp/PgDn", "Move six hours"},
			{"g/G", "Jump to midnight / last hour"},
			{"Space", "Toggle the slot for the current user"},
			{"v", "Start or stop drag painting at the cursor"},
			{"Esc", "Stop drag painting"},
			{"Mouse", "Click a slot to start painting, click again to stop"},
		}},
		{"People", []helpEntry{
			{"a", "Add a user and make them current"},
			{"</>", "Previous / next user"},
			{"X", "Clear every slot of the current user"},
			{"D", "Remove the current user from the roster"},
		}},
		{"Overlap", []helpEntry{
			{"b", "Show the best slots"},
			{"y", "Copy the availability summary"},
			{"w", "Switch between 7 and 14 days"},
		}},
		{"Positivity roadmap", []helpEntry{
			{"s", "Choose a step, enter to update progress"},
			{"g, Enter", "Log something you are grateful for"},
			{"o", "Read the whole gratitude log"},
		}},
	}

	other := helpSection{"Other", []helpEntry{
		{"Tab", "Switch between schedule and roadmap"},
		{"t", "Toggle dark mode"},
		{"?", "Show this help"},
	}}
	if loginEnabled {
		other.entries = append(other.entries, helpEntry{"L", "Log out"})
	}
	other.entries = append(other.entries, helpEntry{"q", "Quit"})
	return append(sections, other)
}

// RenderHelpContentPlain generates help content with colors for pager
func (r *HelpRenderer) RenderHelpContentPlain(loginEnabled bool) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39"))

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(12)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder
	help.WriteString(titleStyle.Render("planboard Help"))
	help.WriteString("\n")

	for i, s := range helpSections(loginEnabled) {
		if i > 0 {
			help.WriteString("\n")
		}
		help.WriteString(sectionStyle.Render(s.title))
		help.WriteString("\n")
		for _, e := range s.entries {
			help.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render(e.keys), descStyle.Render(e.desc)))
		}
	}

	help.WriteString("\n")
	help.WriteString(lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")).Render("  Press q to leave the pager"))
	return help.String()
}

// Pager shows text in ov after taking the terminal from Bubble Tea
type Pager struct {
	program *tea.Program
}

// NewPager creates a pager bound to nothing; call SetProgram before use
func NewPager() *Pager {
	return &Pager{}
}

func (p *Pager) SetProgram(program *tea.Program) {
	p.program = program
}

// Show runs ov on content until the user quits it
func (p *Pager) Show(content string) error {
	if p.program == nil {
		return ErrNoProgram
	}

	// Release terminal control to run ov
	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// Don't leave the content behind on our screen
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
