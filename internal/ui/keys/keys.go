// Package keys declares the key bindings shared by the input modes and the
// help bar.
package keys

import "github.com/charmbracelet/bubbles/key"

// GlobalKeys work on every app screen
type GlobalKeys struct {
	SwitchApp key.Binding
	Theme     key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// ScheduleKeys drive the weekly grid
type ScheduleKeys struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
	Toggle   key.Binding
	Drag     key.Binding
	AddUser  key.Binding
	PrevUser key.Binding
	NextUser key.Binding
	Clear    key.Binding
	Remove   key.Binding
	Best     key.Binding
	Yank     key.Binding
	Week     key.Binding
	Logout   key.Binding
	Cancel   key.Binding
}

// RoadmapKeys drive the journaling screen
type RoadmapKeys struct {
	SelectStep key.Binding
	Gratitude  key.Binding
	Journal    key.Binding
}

// ListKeys drive the step picker
type ListKeys struct {
	Up     key.Binding
	Down   key.Binding
	Commit key.Binding
	Cancel key.Binding
}

var Global = GlobalKeys{
	SwitchApp: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch app")),
	Theme:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "dark mode")),
	Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
}

var Schedule = ScheduleKeys{
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "earlier")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "later")),
	Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev day")),
	Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next day")),
	PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "6h earlier")),
	PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "6h later")),
	Home:     key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "midnight")),
	End:      key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last hour")),
	Toggle:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle slot")),
	Drag:     key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "drag mode")),
	AddUser:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add user")),
	PrevUser: key.NewBinding(key.WithKeys("<", ","), key.WithHelp("<", "prev user")),
	NextUser: key.NewBinding(key.WithKeys(">", "."), key.WithHelp(">", "next user")),
	Clear:    key.NewBinding(key.WithKeys("X"), key.WithHelp("X", "clear mine")),
	Remove:   key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "remove user")),
	Best:     key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "best slots")),
	Yank:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy summary")),
	Week:     key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "7/14 days")),
	Logout:   key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "log out")),
	Cancel:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "stop drag")),
}

var Roadmap = RoadmapKeys{
	SelectStep: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "choose step")),
	Gratitude:  key.NewBinding(key.WithKeys("g", "enter"), key.WithHelp("g", "add gratitude")),
	Journal:    key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open log")),
}

var List = ListKeys{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Commit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "update progress")),
	Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
}

// ScheduleHelp is the short help shown under the grid
func ScheduleHelp(loginEnabled bool) []key.Binding {
	b := []key.Binding{
		Schedule.Toggle, Schedule.Drag, Schedule.AddUser, Schedule.NextUser,
		Schedule.Best, Schedule.Yank, Schedule.Week, Global.SwitchApp, Global.Help, Global.Quit,
	}
	if loginEnabled {
		b = append(b, Schedule.Logout)
	}
	return b
}

// RoadmapHelp is the short help shown on the roadmap screen
func RoadmapHelp() []key.Binding {
	return []key.Binding{
		Roadmap.SelectStep, Roadmap.Gratitude, Roadmap.Journal,
		Global.Theme, Global.SwitchApp, Global.Help, Global.Quit,
	}
}

// ListHelp is the short help shown while picking a step
func ListHelp() []key.Binding {
	return []key.Binding{List.Up, List.Down, List.Commit, List.Cancel}
}
