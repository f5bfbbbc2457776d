package ui

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"planboard/internal/accounts"
	"planboard/internal/config"
	"planboard/internal/domain"
	"planboard/internal/eventbus"
	"planboard/internal/roadmap"
	"planboard/internal/schedule"
	"planboard/internal/ui/commands"
	"planboard/internal/ui/handlers"
	"planboard/internal/ui/input"
	inputtypes "planboard/internal/ui/input/types"
	"planboard/internal/ui/state"
	"planboard/internal/ui/viewmodels"
	"planboard/internal/ui/views"
)

// summarySlots caps the best-overlap list in the copied summary
const summarySlots = 10

// heartbeatInterval paces snackbar expiry and the journal reminder
const heartbeatInterval = 250 * time.Millisecond

// Services are the domain objects the model drives
type Services struct {
	Store    schedule.Store
	Accounts *accounts.Registry
	Tracker  *roadmap.Tracker
	Journal  *roadmap.Journal
	Clock    func() time.Time
	Home     domain.Screen // screen shown at start and after login
}

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	state  *state.AppState // centralized state

	help         help.Model
	paused       bool // true while an external pager owns the terminal
	reminder     roadmap.Reminder
	lastReminder time.Time

	store    schedule.Store
	accounts *accounts.Registry
	tracker  *roadmap.Tracker
	journal  *roadmap.Journal
	clock    func() time.Time
	home     domain.Screen

	// Handlers
	renderer     *views.Renderer
	eventHandler *handlers.EventHandler
	viewModel    *viewmodels.ViewModel
	cmdExecutor  *commands.Executor
	inputHandler *input.Handler
	helpRenderer *HelpRenderer
	pager        *Pager

	copyToClipboard func(string) error

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, svc Services) *Model {
	home := svc.Home
	if home != domain.ScreenRoadmap {
		home = domain.ScreenSchedule
	}
	screen := home
	startMode := inputtypes.ModeSchedule
	if home == domain.ScreenRoadmap {
		startMode = inputtypes.ModeRoadmap
	}
	if cfg.Scheduler.RequireLogin {
		screen = domain.ScreenLogin
		startMode = inputtypes.ModeLogin
	}

	clock := svc.Clock
	if clock == nil {
		clock = time.Now
	}
	store := svc.Store
	if store == nil {
		store = schedule.NewMemoryStore()
	}

	appState := state.NewAppState(screen, cfg.Scheduler.Days, cfg.UI.DarkMode)

	m := &Model{
		bus:             bus,
		config:          cfg,
		state:           appState,
		help:            help.New(),
		reminder:        roadmap.NewReminder(cfg.ReminderInterval(), cfg.Roadmap.ReminderMessage),
		store:           store,
		accounts:        svc.Accounts,
		tracker:         svc.Tracker,
		journal:         svc.Journal,
		clock:           clock,
		lastReminder:    clock(),
		home:            home,
		renderer:        views.NewRenderer(cfg.UI.DarkMode),
		inputHandler:    input.New(startMode),
		helpRenderer:    NewHelpRenderer(),
		pager:           NewPager(),
		copyToClipboard: clipboard.WriteAll,
	}

	m.eventHandler = handlers.NewEventHandler(m.setStatus)
	m.cmdExecutor = commands.NewExecutor(appState, store, bus)
	m.viewModel = viewmodels.NewViewModel(appState, cfg, m.inputHandler, m.tracker, m.journal, m.accounts, clock)
	m.viewModel.SetHelp(m.help)

	// Make sure the board exists before the first render
	m.board()

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager.SetProgram(p)
}

// State exposes the application state, mainly for tests
func (m *Model) State() *state.AppState {
	return m.state
}

// Mode is the active input mode
func (m *Model) Mode() inputtypes.Mode {
	return m.inputHandler.CurrentMode()
}

// Board returns the board currently on screen
func (m *Model) Board() *schedule.Board {
	return m.board()
}

func (m *Model) board() *schedule.Board {
	name := m.state.BoardName
	return m.store.GetOrCreate(name, func() *schedule.Board {
		grid := schedule.NewGrid(state.DaysForBoard(name), m.config.FirstWeekday())
		return schedule.NewBoard(grid, m.config.Scheduler.Palette)
	})
}

func (m *Model) context() *input.ModelContext {
	return &input.ModelContext{
		State:       m.state,
		Board:       m.board(),
		RequireAuth: m.config.Scheduler.RequireLogin,
	}
}

// Init starts the heartbeat
func (m *Model) Init() tea.Cmd {
	return m.heartbeat()
}

// heartbeat is the model's only timer. It must be returned on its own and
// never inside tea.Batch: batched commands run on the event loop.
func (m *Model) heartbeat() tea.Cmd {
	return tea.Tick(heartbeatInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// tick expires the snackbar and fires the journal reminder when it is due
func (m *Model) tick(now time.Time) {
	m.state.ExpireStatus(now)
	if !m.reminder.Due(m.lastReminder, now) {
		return
	}
	m.lastReminder = now
	if m.state.Screen == domain.ScreenLogin || m.paused {
		return
	}
	m.setStatus(m.reminder.Message, false)
}

// setStatus shows a snackbar until the next heartbeat past its deadline
func (m *Model) setStatus(msg string, isErr bool) {
	m.state.SetStatus(msg, isErr, m.clock().Add(m.config.SnackbarDuration()))
}

// batch combines commands like tea.Batch, but runs each one in its own
// goroutine. tea.Batch calls every command on the event loop, so a cursor
// blink or pager inside it would stall the UI.
func batch(cmds ...tea.Cmd) tea.Cmd {
	var valid []tea.Cmd
	for _, c := range cmds {
		if c != nil {
			valid = append(valid, c)
		}
	}
	switch len(valid) {
	case 0:
		return nil
	case 1:
		return valid[0]
	}
	return func() tea.Msg {
		msgs := make([]tea.Msg, len(valid))
		var wg sync.WaitGroup
		for i, c := range valid {
			wg.Add(1)
			go func() {
				defer wg.Done()
				msgs[i] = c()
			}()
		}
		wg.Wait()

		out := make(tea.BatchMsg, 0, len(msgs))
		for _, msg := range msgs {
			if msg != nil {
				out = append(out, func() tea.Msg { return msg })
			}
		}
		return out
	}
}

func (m *Model) publish(e eventbus.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(e)
	}
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.help.Width = msg.Width
		m.viewModel.SetHelp(m.help)
		return m, nil

	case tea.KeyMsg:
		actions, cmd := m.inputHandler.HandleKey(msg, m.context())

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, batch(cmds...)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tickMsg:
		m.tick(time.Time(msg))
		return m, m.heartbeat()

	default:
		if m.handleNonKeyboardMsg(msg) {
			return m, nil
		}
		// Cursor blinks go to whichever input is focused
		return m, m.inputHandler.Update(msg)
	}
}

// handleNonKeyboardMsg applies the model's own messages and reports whether msg was one
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case EventMsg:
		m.eventHandler.HandleEvent(msg.Event)

	case clipboardMsg:
		if msg.err != nil {
			log.Printf("clipboard: %v", msg.err)
			m.setStatus(fmt.Sprintf("Could not copy summary: %v", msg.err), true)
			break
		}
		m.setStatus("Availability summary copied to clipboard", false)

	case pagerMsg:
		if msg.err != nil {
			log.Printf("pager (%s): %v", msg.what, msg.err)
			m.setStatus(fmt.Sprintf("Could not open %s: %v", msg.what, msg.err), true)
		}

	case pauseRenderingMsg:
		m.paused = true

	case resumeRenderingMsg:
		m.paused = false

	default:
		return false
	}
	return true
}

// handleMouse maps clicks and motion over the grid to drag gestures
func (m *Model) handleMouse(msg tea.MouseMsg) {
	if m.state.Screen != domain.ScreenSchedule || m.inputHandler.CurrentMode() != inputtypes.ModeSchedule {
		return
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		if m.state.ShowBest {
			m.state.ShowBest = false
			return
		}
		slot, ok := m.renderer.Layout().SlotAt(msg.X, msg.Y)
		if !ok {
			return
		}
		m.state.Cursor = slot
		m.reportError(m.cmdExecutor.ExecuteDragClick(slot))

	case tea.MouseActionMotion:
		if !m.state.Drag.Active {
			return
		}
		slot, ok := m.renderer.Layout().SlotAt(msg.X, msg.Y)
		if !ok {
			return
		}
		m.state.Cursor = slot
		m.reportError(m.cmdExecutor.ExecuteDragHover(slot))
	}
}

func (m *Model) reportError(err error) {
	if err == nil {
		return
	}
	if !errors.Is(err, commands.ErrNoCurrentUser) {
		log.Printf("Grid edit failed: %v", err)
	}
	m.setStatus(capitalize(err.Error()), true)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// View renders the UI
func (m *Model) View() string {
	if m.paused {
		return ""
	}
	if m.state.Width == 0 {
		return "Loading..."
	}

	vs := m.viewModel.BuildViewState(m.board())
	out := m.renderer.Render(vs)

	// Keep scrolling in step with what was actually drawn
	if l := m.renderer.Layout(); l.Rows > 0 {
		m.state.ViewportOffset = l.FirstHour
		m.state.SetViewportHeight(l.Rows)
	}
	return out
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.state.MoveCursor(a.Direction, m.board().Grid())
		if m.state.Drag.Active {
			m.reportError(m.cmdExecutor.ExecuteDragHover(m.state.Cursor))
		}

	case inputtypes.ToggleSlotAction:
		m.reportError(m.cmdExecutor.ExecuteToggle(m.state.Cursor))

	case inputtypes.DragClickAction:
		wasActive := m.state.Drag.Active
		if err := m.cmdExecutor.ExecuteDragClick(m.state.Cursor); err != nil {
			m.reportError(err)
			break
		}
		if wasActive {
			m.setStatus("Drag mode off", false)
			break
		}
		m.setStatus("Drag mode on: move to paint, v again to stop", false)

	case inputtypes.CancelDragAction:
		if m.state.Drag.Active {
			m.state.Drag.Cancel()
			m.setStatus("Drag mode off", false)
		}

	case inputtypes.ClearUserAction:
		user := m.inputHandler.ConfirmTarget(inputtypes.ModeClearConfirm)
		n, err := m.cmdExecutor.ExecuteClearUser(user)
		if err != nil {
			m.reportError(err)
			break
		}
		m.setStatus(fmt.Sprintf("Cleared %d slots for %s", n, user), false)

	case inputtypes.RemoveUserAction:
		user := m.inputHandler.ConfirmTarget(inputtypes.ModeRemoveConfirm)
		if err := m.cmdExecutor.ExecuteRemoveUser(user); err != nil {
			m.reportError(err)
			break
		}
		if m.state.CurrentUser == "" {
			m.setStatus(fmt.Sprintf("Removed %s; add a user to keep planning", user), false)
			break
		}
		m.setStatus(fmt.Sprintf("Removed %s; now editing as %s", user, m.state.CurrentUser), false)

	case inputtypes.AddUserAction:
		m.addUser(a.Name)

	case inputtypes.CycleUserAction:
		if err := m.cmdExecutor.ExecuteCycleUser(a.Delta); err != nil {
			m.reportError(err)
			break
		}
		m.setStatus(fmt.Sprintf("Now editing as %s", m.state.CurrentUser), false)

	case inputtypes.ToggleBestSlotsAction:
		m.state.ShowBest = !m.state.ShowBest

	case inputtypes.DismissPopupAction:
		m.state.ShowBest = false

	case inputtypes.YankSummaryAction:
		summary := m.board().Summary(summarySlots)
		copyFn := m.copyToClipboard
		return func() tea.Msg {
			return clipboardMsg{err: copyFn(summary)}
		}

	case inputtypes.SwitchGridAction:
		m.switchGrid()

	case inputtypes.StepNavigateAction:
		if a.Delta < 0 {
			m.tracker.Prev()
		} else {
			m.tracker.Next()
		}

	case inputtypes.CommitStepAction:
		if m.tracker.Commit() {
			m.publish(eventbus.ProgressUpdatedEvent{Step: m.tracker.Current(), Label: m.tracker.CurrentLabel()})
		}
		m.setStatus("Progress: "+m.tracker.CurrentLabel(), false)

	case inputtypes.CancelStepAction:
		m.tracker.Reset()

	case inputtypes.AddGratitudeAction:
		m.addGratitude(a.Text)

	case inputtypes.OpenJournalAction:
		return m.openPager("gratitude log", m.journal.Export())

	case inputtypes.SubmitTextAction:
		switch a.Mode {
		case inputtypes.ModeAddUser:
			m.addUser(a.Text)
		case inputtypes.ModeGratitude:
			m.addGratitude(a.Text)
		}

	case inputtypes.LoginAction:
		return m.login(a)

	case inputtypes.LogoutAction:
		return m.logout()

	case inputtypes.SwitchScreenAction:
		next := domain.ScreenRoadmap
		if m.state.Screen == domain.ScreenRoadmap {
			next = domain.ScreenSchedule
		}
		return m.showScreen(next)

	case inputtypes.ToggleThemeAction:
		m.state.DarkMode = !m.state.DarkMode
		m.renderer.SetDark(m.state.DarkMode)
		m.config.UI.DarkMode = m.state.DarkMode
		m.publish(eventbus.ThemeChangedEvent{Dark: m.state.DarkMode})
		m.publishConfig()

	case inputtypes.ToggleHelpAction:
		return m.openPager("help", m.helpRenderer.RenderHelpContentPlain(m.config.Scheduler.RequireLogin))

	case inputtypes.QuitAction:
		return tea.Quit
	}

	return nil
}

func (m *Model) addUser(name string) {
	u, err := m.cmdExecutor.ExecuteAddUser(name)
	if err != nil {
		m.setStatus(fmt.Sprintf("Cannot add user: %v", err), true)
		return
	}
	m.setStatus(fmt.Sprintf("Added %s; now editing as %s", u.Name, u.Name), false)
}

func (m *Model) addGratitude(text string) {
	e, err := m.journal.Add(text)
	if err != nil {
		if errors.Is(err, roadmap.ErrEmptyEntry) {
			m.setStatus("Please enter something positive.", true)
			return
		}
		m.setStatus(err.Error(), true)
		return
	}
	m.publish(eventbus.GratitudeAddedEvent{Text: e.Text})
	m.setStatus("Gratitude logged! Keep going.", false)
}

func (m *Model) switchGrid() {
	days := 14
	if state.DaysForBoard(m.state.BoardName) == 14 {
		days = 7
	}
	m.state.Drag.Cancel()
	m.state.ShowBest = false
	m.state.BoardName = state.BoardForDays(days)

	b := m.board()
	m.state.ClampCursor(b.Grid())
	m.ensureSessionUser(b)
	if !b.HasUser(m.state.CurrentUser) {
		m.state.CurrentUser = ""
		if users := b.Users(); len(users) > 0 {
			m.state.CurrentUser = users[0].Name
		}
	}

	m.config.Scheduler.Days = days
	m.publishConfig()
	m.setStatus(fmt.Sprintf("Showing the %d-day schedule", days), false)
}

func (m *Model) publishConfig() {
	m.publish(eventbus.ConfigChangedEvent{DarkMode: m.config.UI.DarkMode, Days: m.config.Scheduler.Days})
}

// ensureSessionUser puts the logged in account on the board's roster
func (m *Model) ensureSessionUser(b *schedule.Board) {
	name := m.state.SessionUser
	if name == "" || b.HasUser(name) {
		return
	}
	err := m.store.Update(m.state.BoardName, func(b *schedule.Board) error {
		u, err := b.AddUser(name)
		if err == nil {
			m.publish(eventbus.UserAddedEvent{User: u})
		}
		return err
	})
	if err != nil {
		log.Printf("Could not add %s to the roster: %v", name, err)
	}
}

func (m *Model) login(a inputtypes.LoginAction) tea.Cmd {
	if m.accounts == nil {
		m.state.LoginError = "Logins are not available"
		return nil
	}

	if a.Register {
		if err := m.accounts.Register(a.Username, a.Password); err != nil {
			m.state.LoginError = loginMessage(err)
			return nil
		}
	}
	if err := m.accounts.Authenticate(a.Username, a.Password); err != nil {
		m.state.LoginError = loginMessage(err)
		return nil
	}

	name := strings.TrimSpace(a.Username)
	m.state.LoginError = ""
	m.state.SessionUser = name
	m.publish(eventbus.LoggedInEvent{Username: name, Registered: a.Register})

	b := m.board()
	m.ensureSessionUser(b)
	if b.HasUser(name) {
		m.state.CurrentUser = name
		m.publish(eventbus.CurrentUserChangedEvent{Name: name})
	}

	cmd := m.showScreen(m.home)
	m.setStatus(fmt.Sprintf("Welcome, %s!", name), false)
	return cmd
}

func loginMessage(err error) string {
	switch {
	case errors.Is(err, accounts.ErrEmptyField):
		return "Username and password are required"
	case errors.Is(err, accounts.ErrUserExists):
		return "That username is taken"
	case errors.Is(err, accounts.ErrInvalidCredentials):
		return "Invalid username or password"
	}
	return err.Error()
}

func (m *Model) logout() tea.Cmd {
	if m.state.SessionUser == "" {
		return nil
	}
	m.publish(eventbus.LoggedOutEvent{Username: m.state.SessionUser})
	m.state.SessionUser = ""
	m.state.Drag.Cancel()
	m.state.ShowBest = false
	return m.showScreen(domain.ScreenLogin)
}

// showScreen switches screens and puts the input handler in the screen's mode
func (m *Model) showScreen(screen domain.Screen) tea.Cmd {
	if screen != domain.ScreenSchedule {
		m.state.Drag.Cancel()
	}
	m.state.Screen = screen
	m.state.ShowBest = false

	ctx := m.context()
	actions, cmd := m.inputHandler.ChangeMode(inputtypes.BaseMode(ctx), ctx)
	cmds := []tea.Cmd{cmd}
	for _, a := range actions {
		cmds = append(cmds, m.processAction(a))
	}
	return batch(cmds...)
}

// openPager shows content in ov, pausing our rendering while it runs
func (m *Model) openPager(what, content string) tea.Cmd {
	return func() tea.Msg {
		if m.program == nil {
			return pagerMsg{what: what, err: ErrNoProgram}
		}
		m.program.Send(pauseRenderingMsg{})
		err := m.pager.Show(content)
		m.program.Send(resumeRenderingMsg{})
		return pagerMsg{what: what, err: err}
	}
}
