package views

import (
	"fmt"
	"strings"
	"time"

	"planboard/internal/roadmap"
)

// journalPreview is how many recent entries the roadmap screen lists
const journalPreview = 5

// RoadmapRenderer draws the journaling screen
type RoadmapRenderer struct {
	styles *Styles
}

func NewRoadmapRenderer(styles *Styles) *RoadmapRenderer {
	return &RoadmapRenderer{styles: styles}
}

// RenderSteps shows each stage with its state relative to the current one
func (rr *RoadmapRenderer) RenderSteps(steps []string, current, selected int, selecting bool) string {
	lines := make([]string, 0, len(steps)+1)
	for i, step := range steps {
		marker, style := "○", rr.styles.StepTodo
		switch {
		case i < current:
			marker, style = "●", rr.styles.StepDone
		case i == current:
			marker, style = "◉", rr.styles.StepCurrent
		}
		line := fmt.Sprintf("%s %s", marker, step)
		if selecting && i == selected {
			lines = append(lines, rr.styles.ListCursor.Render("> ")+style.Render(line))
		} else {
			lines = append(lines, "  "+style.Render(line))
		}
	}
	return strings.Join(lines, "\n")
}

// RenderJournal lists the newest entries with their age
func (rr *RoadmapRenderer) RenderJournal(entries []roadmap.Entry, today int, now time.Time) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Gratitude log: %d entries, %d today", len(entries), today)
	if len(entries) == 0 {
		sb.WriteString("\n")
		sb.WriteString(rr.styles.Dim.Render("Nothing logged yet. Press g to add your first entry."))
		return sb.String()
	}

	start := max(0, len(entries)-journalPreview)
	for i := len(entries) - 1; i >= start; i-- {
		e := entries[i]
		sb.WriteString("\n")
		sb.WriteString(e.Line())
		sb.WriteString(" ")
		sb.WriteString(rr.styles.Dim.Render(e.Age(now)))
	}
	if start > 0 {
		sb.WriteString("\n")
		sb.WriteString(rr.styles.Scroll.Render(fmt.Sprintf("… %d older, press o to read all", start)))
	}
	return sb.String()
}
