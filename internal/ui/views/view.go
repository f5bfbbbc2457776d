package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"planboard/internal/domain"
	"planboard/internal/roadmap"
	"planboard/internal/schedule"
)

// Screen padding from Styles.Main
const (
	padTop  = 1
	padLeft = 2
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int
	Screen domain.Screen

	// Schedule
	Board          *schedule.Board
	CellWidth      int
	Cursor         domain.Slot
	CurrentUser    string
	SessionUser    string
	DragActive     bool
	ViewportOffset int
	ShowBest       bool
	BestLimit      int
	ConfirmPrompt  string

	// Roadmap
	Steps         []string
	CurrentStep   int
	SelectedStep  int
	StepSelecting bool
	Journal       []roadmap.Entry
	JournalToday  int
	Now           time.Time

	Login LoginView

	StatusMessage string
	StatusIsError bool
	InputMode     string
	InputPrompt   string
	TextInput     string
	HelpModel     help.Model
	HelpKeys      []key.Binding
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	gridRender  *GridRenderer
	popupRender *PopupRenderer
	roadRender  *RoadmapRenderer
	layout      GridLayout
}

// NewRenderer creates a new renderer
func NewRenderer(dark bool) *Renderer {
	r := &Renderer{}
	r.SetDark(dark)
	return r
}

// SetDark rebuilds the styles for the chosen theme
func (r *Renderer) SetDark(dark bool) {
	r.styles = NewStyles(dark)
	r.gridRender = NewGridRenderer(r.styles)
	r.popupRender = NewPopupRenderer(r.styles)
	r.roadRender = NewRoadmapRenderer(r.styles)
}

func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Layout is the grid geometry of the last rendered schedule screen
func (r *Renderer) Layout() GridLayout {
	return r.layout
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	switch state.Screen {
	case domain.ScreenLogin:
		r.layout = GridLayout{}
		return r.RenderLogin(state.Login, state.Width, state.Height)
	case domain.ScreenRoadmap:
		r.layout = GridLayout{}
		return r.renderRoadmap(state)
	default:
		return r.renderSchedule(state)
	}
}

func (r *Renderer) titleLine(title string, right string, width int) string {
	logo := r.styles.Title.Render(title)
	if right == "" {
		return logo
	}
	if width <= 0 {
		width = 80 // Default terminal width
	}
	available := width - 2*padLeft
	padding := available - lipgloss.Width(logo) - lipgloss.Width(right)
	if padding < 2 {
		padding = 2
	}
	return logo + strings.Repeat(" ", padding) + right
}

func (r *Renderer) inputLine(state ViewState) string {
	if state.ConfirmPrompt != "" {
		return r.styles.Confirm.Render(state.ConfirmPrompt)
	}
	if state.TextInput != "" || state.InputPrompt != "" {
		return state.InputPrompt + state.TextInput
	}
	return ""
}

func (r *Renderer) footer(state ViewState) string {
	status := ""
	if state.StatusMessage != "" {
		if state.StatusIsError {
			status = r.styles.StatusError.Render(state.StatusMessage)
		} else {
			status = r.styles.Status.Render(state.StatusMessage)
		}
	}
	return status + "\n" + r.styles.Help.Render(state.HelpModel.ShortHelpView(state.HelpKeys))
}

func (r *Renderer) renderSchedule(state ViewState) string {
	if state.Board == nil {
		r.layout = GridLayout{}
		return r.styles.Main.Render(r.styles.Dim.Render("Loading…"))
	}
	g := state.Board.Grid()
	cellWidth := max(3, state.CellWidth)

	// Header block: title, legend and the optional input line
	var right []string
	if state.SessionUser != "" {
		right = append(right, r.styles.Subtitle.Render("signed in as "+state.SessionUser))
	}
	if state.DragActive {
		right = append(right, r.styles.DragBadge.Render(" DRAG "))
	}
	title := r.titleLine(fmt.Sprintf("planboard · %d-day schedule", g.Days), strings.Join(right, "  "), state.Width)

	contentWidth := state.Width - 2*padLeft
	legend := r.gridRender.RenderLegend(state.Board, state.CurrentUser)
	if contentWidth > 0 {
		legend = lipgloss.NewStyle().Width(contentWidth).Render(legend)
	}

	header := title + "\n" + legend
	if in := r.inputLine(state); in != "" {
		header += "\n" + in
	}
	headerH := lipgloss.Height(header)

	footer := r.footer(state)
	footerH := lipgloss.Height(footer)

	// blank + day header above the rows, blank below
	rows := domain.HoursPerDay
	if state.Height > 0 {
		rows = state.Height - 2*padTop - headerH - 2 - 1 - footerH
	}
	rows = min(max(rows, 1), domain.HoursPerDay)
	first := visibleStart(state.ViewportOffset, state.Cursor.Hour, rows)

	r.layout = GridLayout{
		Top:       padTop + headerH + 2,
		Left:      padLeft + hourLabelWidth,
		CellWidth: cellWidth,
		Days:      g.Days,
		FirstHour: first,
		Rows:      rows,
	}

	grid := r.gridRender.RenderGrid(state.Board, state.Cursor, true, cellWidth, first, rows)

	content := &strings.Builder{}
	content.WriteString(header)
	content.WriteString("\n\n")
	content.WriteString(grid)
	content.WriteString("\n")
	if rows < domain.HoursPerDay {
		content.WriteString(r.styles.Scroll.Render(fmt.Sprintf("%s–%s of the day", g.HourLabel(first), g.HourLabel((first+rows)%domain.HoursPerDay))))
	}
	content.WriteString("\n")
	content.WriteString(footer)

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	final := mainStyle.Render(content.String())

	if state.ShowBest {
		return r.popupRender.RenderPopupOverlay(final, r.popupRender.RenderBestSlots(state.Board, state.BestLimit), state.Height, state.Width)
	}
	return final
}

// visibleStart returns the first hour row to draw so the cursor stays on screen
func visibleStart(offset, cursorHour, rows int) int {
	if cursorHour < offset {
		offset = cursorHour
	}
	if cursorHour >= offset+rows {
		offset = cursorHour - rows + 1
	}
	return min(max(offset, 0), max(0, domain.HoursPerDay-rows))
}

func (r *Renderer) renderRoadmap(state ViewState) string {
	content := &strings.Builder{}

	right := ""
	if state.SessionUser != "" {
		right = r.styles.Subtitle.Render("signed in as " + state.SessionUser)
	}
	content.WriteString(r.titleLine("planboard · positivity roadmap", right, state.Width))
	content.WriteString("\n\n")

	label := ""
	if state.CurrentStep >= 0 && state.CurrentStep < len(state.Steps) {
		label = state.Steps[state.CurrentStep]
	}
	content.WriteString("Current progress: ")
	content.WriteString(r.styles.Highlight.Render(label))
	content.WriteString("\n\n")
	content.WriteString(r.roadRender.RenderSteps(state.Steps, state.CurrentStep, state.SelectedStep, state.StepSelecting))
	content.WriteString("\n\n")

	if in := r.inputLine(state); in != "" {
		content.WriteString(in)
		content.WriteString("\n\n")
	}

	now := state.Now
	if now.IsZero() {
		now = time.Now()
	}
	content.WriteString(r.roadRender.RenderJournal(state.Journal, state.JournalToday, now))

	body := content.String()
	footer := r.footer(state)

	// Push the footer to the bottom
	if state.Height > 0 {
		gap := state.Height - 2*padTop - lipgloss.Height(body) - lipgloss.Height(footer)
		if gap > 0 {
			body += strings.Repeat("\n", gap)
		}
	}
	body += "\n" + footer

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	return mainStyle.Render(body)
}
