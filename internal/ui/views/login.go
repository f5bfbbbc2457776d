package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// LoginView is what the login screen needs to draw itself
type LoginView struct {
	Username        string // rendered text input
	Password        string // rendered text input
	PasswordFocused bool
	Error           string
	Accounts        int
}

// RenderLogin draws the centered login box
func (r *Renderer) RenderLogin(lv LoginView, width, height int) string {
	var sb strings.Builder
	sb.WriteString(r.styles.Title.Render("planboard"))
	sb.WriteString("\n")
	sb.WriteString(r.styles.Subtitle.Render("Log in to plan the week together"))
	sb.WriteString("\n\n")

	userLabel, passLabel := r.styles.FieldFocus, r.styles.FieldLabel
	if lv.PasswordFocused {
		userLabel, passLabel = r.styles.FieldLabel, r.styles.FieldFocus
	}
	sb.WriteString(userLabel.Render("Username") + lv.Username)
	sb.WriteString("\n")
	sb.WriteString(passLabel.Render("Password") + lv.Password)
	sb.WriteString("\n\n")

	if lv.Error != "" {
		sb.WriteString(r.styles.StatusError.Render(lv.Error))
		sb.WriteString("\n")
	} else if lv.Accounts == 0 {
		sb.WriteString(r.styles.Dim.Render("No accounts yet: ctrl+r registers a new one"))
		sb.WriteString("\n")
	}
	sb.WriteString(r.styles.Help.Render("enter log in • ctrl+r register • tab switch field • esc quit"))

	box := r.styles.LoginBox.Render(sb.String())
	if width <= 0 || height <= 0 {
		return box
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
