package views

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"planboard/internal/schedule"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay centers a popup over a greyed copy of the main content
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int) string {
	styledPopup := pr.styles.Popup.Render(popupContent)

	if width <= 0 || height <= 0 {
		return styledPopup
	}

	base := strings.Split(desaturateANSI(mainContent), "\n")
	for len(base) < height {
		base = append(base, "")
	}

	popupLines := strings.Split(styledPopup, "\n")
	popupW := lipgloss.Width(styledPopup)
	top := max(0, (height-len(popupLines))/2)
	left := max(0, (width-popupW)/2)

	// Splice each popup row into the greyed base, keeping the plain text
	// left of it so the grid still shows around the box
	for i, pl := range popupLines {
		row := top + i
		if row >= len(base) {
			break
		}
		plain := ansiRE.ReplaceAllString(base[row], "")
		prefix := truncatePlain(plain, left)
		prefix += strings.Repeat(" ", left-lipgloss.Width(prefix))
		base[row] = pr.styles.Dim.Render(prefix) + pl
	}
	return strings.Join(base[:height], "\n")
}

// ANSI escape sequence regex to strip styles/colors
var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// desaturateANSI strips ANSI color/style codes and dims the text
func desaturateANSI(s string) string {
	lines := strings.Split(ansiRE.ReplaceAllString(s, ""), "\n")
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	for i, l := range lines {
		lines[i] = dim.Render(l)
	}
	return strings.Join(lines, "\n")
}

func truncatePlain(s string, width int) string {
	r := []rune(s)
	if len(r) > width {
		r = r[:width]
	}
	return string(r)
}

// RenderBestSlots lists the slots with the most overlap
func (pr *PopupRenderer) RenderBestSlots(board *schedule.Board, limit int) string {
	var sb strings.Builder
	sb.WriteString(pr.styles.PopupTitle.Render("Best slots"))
	sb.WriteString("\n")

	best := board.BestSlots(limit)
	if len(best) == 0 {
		sb.WriteString(pr.styles.Dim.Render("Nobody has picked a slot yet."))
	}

	total := len(board.Users())
	for i, sc := range best {
		names := make([]string, 0, sc.Count)
		for _, u := range board.Selectors(sc.Slot) {
			names = append(names, UserColor(u.Color).Render(" ")+" "+u.Name)
		}
		count := fmt.Sprintf("%d/%d", sc.Count, total)
		if sc.Count == total {
			count = pr.styles.StatusSuccess.Render(count)
		}
		fmt.Fprintf(&sb, "%2d. %-16s %s  %s", i+1, board.Grid().SlotLabel(sc.Slot), count, strings.Join(names, ", "))
		if i < len(best)-1 {
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n\n")
	sb.WriteString(pr.styles.Help.Render("any key to close"))
	return sb.String()
}
