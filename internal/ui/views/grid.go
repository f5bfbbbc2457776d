package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"planboard/internal/domain"
	"planboard/internal/schedule"
)

// hourLabelWidth covers "09:00 "
const hourLabelWidth = 6

// GridLayout records where the last rendered grid sits on screen, so mouse
// coordinates can be mapped back to slots.
type GridLayout struct {
	Top       int // screen row of the first hour row
	Left      int // screen column of the first cell
	CellWidth int
	Days      int
	FirstHour int
	Rows      int
}

// SlotAt maps a terminal cell to the slot drawn there
func (l GridLayout) SlotAt(x, y int) (domain.Slot, bool) {
	if l.CellWidth <= 0 || l.Rows <= 0 {
		return domain.Slot{}, false
	}
	row := y - l.Top
	col := x - l.Left
	if row < 0 || row >= l.Rows || col < 0 {
		return domain.Slot{}, false
	}
	stride := l.CellWidth + 1
	if col%stride == l.CellWidth {
		return domain.Slot{}, false // column gap
	}
	day := col / stride
	if day >= l.Days {
		return domain.Slot{}, false
	}
	return domain.Slot{Day: day, Hour: l.FirstHour + row}, true
}

// Width is the printed width of the grid including hour labels
func (l GridLayout) Width() int {
	return hourLabelWidth + l.Days*(l.CellWidth+1) - 1
}

// GridRenderer draws the slot grid and its legend
type GridRenderer struct {
	styles *Styles
}

func NewGridRenderer(styles *Styles) *GridRenderer {
	return &GridRenderer{styles: styles}
}

// RenderGrid draws rows hour rows starting at firstHour
func (gr *GridRenderer) RenderGrid(board *schedule.Board, cursor domain.Slot, showCursor bool, cellWidth, firstHour, rows int) string {
	g := board.Grid()
	lines := make([]string, 0, rows+1)

	header := &strings.Builder{}
	header.WriteString(strings.Repeat(" ", hourLabelWidth))
	for d := 0; d < g.Days; d++ {
		if d > 0 {
			header.WriteString(" ")
		}
		label := g.DayLabel(d)
		if len(label) > cellWidth {
			label = label[:cellWidth]
		}
		style := gr.styles.DayHeader
		if wd := g.Weekday(d); wd == time.Sunday || wd == time.Saturday {
			style = gr.styles.Weekend
		}
		header.WriteString(style.Width(cellWidth).Render(label))
	}
	lines = append(lines, header.String())

	for h := firstHour; h < firstHour+rows && h < domain.HoursPerDay; h++ {
		line := &strings.Builder{}
		line.WriteString(gr.styles.HourLabel.Render(g.HourLabel(h)))
		line.WriteString(" ")
		for d := 0; d < g.Days; d++ {
			if d > 0 {
				line.WriteString(" ")
			}
			slot := domain.Slot{Day: d, Hour: h}
			line.WriteString(gr.renderCell(board.Selectors(slot), cellWidth, showCursor && slot == cursor))
		}
		lines = append(lines, line.String())
	}

	return strings.Join(lines, "\n")
}

// renderCell paints one slot: a background run per selector, '+' when
// selectors outnumber cells, and cursor marks on the outer characters.
func (gr *GridRenderer) renderCell(selectors []domain.User, width int, isCursor bool) string {
	bgs := make([]lipgloss.Style, width)
	chars := make([]rune, width)
	for i := range chars {
		chars[i] = ' '
		bgs[i] = gr.styles.EmptyCell
	}

	for _, seg := range schedule.Segments(selectors, width) {
		for i := seg.Offset; i < seg.Offset+seg.Width; i++ {
			bgs[i] = UserColor(seg.User.Color)
		}
		if seg.Overflow {
			last := seg.Offset + seg.Width - 1
			chars[last] = '+'
			bgs[last] = gr.styles.Overflow.Inherit(bgs[last])
		}
	}

	if isCursor {
		chars[0], chars[width-1] = '[', ']'
		bgs[0] = gr.styles.CursorMark.Inherit(bgs[0])
		bgs[width-1] = gr.styles.CursorMark.Inherit(bgs[width-1])
	}

	// Merge adjacent characters sharing a style to keep escape sequences short
	var sb strings.Builder
	start := 0
	for i := 1; i <= width; i++ {
		if i < width && sameStyle(bgs[i], bgs[start]) {
			continue
		}
		sb.WriteString(bgs[start].Render(string(chars[start:i])))
		start = i
	}
	return sb.String()
}

func sameStyle(a, b lipgloss.Style) bool {
	return a.GetBackground() == b.GetBackground() &&
		a.GetReverse() == b.GetReverse() &&
		a.GetBold() == b.GetBold()
}

// RenderLegend lists roster colors, marking the current user
func (gr *GridRenderer) RenderLegend(board *schedule.Board, current string) string {
	users := board.Users()
	if len(users) == 0 {
		return gr.styles.Dim.Render("No users yet. Press a to add one.")
	}

	parts := make([]string, 0, len(users))
	for _, u := range users {
		swatch := UserColor(u.Color).Render("  ")
		name := fmt.Sprintf("%s (%d)", u.Name, len(board.Selections(u.Name)))
		if u.Name == current {
			name = gr.styles.Highlight.Render("▶ " + name)
		}
		parts = append(parts, swatch+" "+name)
	}
	return strings.Join(parts, "   ")
}
