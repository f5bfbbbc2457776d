package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"planboard/internal/accounts"
	"planboard/internal/config"
	"planboard/internal/domain"
	"planboard/internal/eventbus"
	"planboard/internal/roadmap"
	"planboard/internal/schedule"
	"planboard/internal/ui"
)

// EnvLogPath overrides where the log file is written
const EnvLogPath = "PLANBOARD_LOG"

func main() {
	// A missing .env is fine
	_ = godotenv.Load()

	var (
		configPath string
		days       int
		login      bool
		dark       bool
		app        string
		logPath    string
	)
	flag.StringVar(&configPath, "config", "", "Path to the config file")
	flag.IntVar(&days, "days", 0, "Schedule length in days (7 or 14)")
	flag.BoolVar(&login, "login", false, "Require a login before showing the apps")
	flag.BoolVar(&dark, "dark", false, "Start in dark mode")
	flag.StringVar(&app, "app", "schedule", "App to open first: schedule or roadmap")
	flag.StringVar(&logPath, "log", "", "Log file path")
	flag.Parse()

	if logPath == "" {
		logPath = os.Getenv(EnvLogPath)
	}
	if logPath == "" {
		logPath = "planboard.log"
	}

	// Set up logging
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create event bus
	bus := eventbus.New()

	// Load configuration
	configSvc := config.NewConfigServiceWithBus(configPath, bus)
	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		cfg = config.DefaultConfig()
	}
	log.Printf("Using config %s", configSvc.Path())
	fileCfg := *cfg

	// Flags win over the file for this run only
	if days != 0 {
		cfg.Scheduler.Days = days
	}
	if login {
		cfg.Scheduler.RequireLogin = true
	}
	if dark {
		cfg.UI.DarkMode = true
	}
	cfg.Validate()

	home := domain.ScreenSchedule
	switch app {
	case "schedule":
	case "roadmap":
		home = domain.ScreenRoadmap
	default:
		fmt.Fprintf(os.Stderr, "Unknown app %q (want schedule or roadmap)\n", app)
		os.Exit(2)
	}

	registry, err := accounts.NewRegistry(cfg.Scheduler.AuthSalt)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error setting up accounts: %v\n", err)
		os.Exit(1)
	}
	tracker, err := roadmap.NewTracker(cfg.Roadmap.Steps)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error setting up roadmap: %v\n", err)
		os.Exit(1)
	}

	persistSettings(bus, configSvc, fileCfg)
	logActivity(bus, registry)

	// Create UI model
	uiModel := ui.NewModel(bus, cfg, ui.Services{
		Store:    schedule.NewMemoryStore(),
		Accounts: registry,
		Tracker:  tracker,
		Journal:  roadmap.NewJournal(time.Now),
		Home:     home,
	})

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithMouseAllMotion())
	uiModel.SetProgram(p)

	// Forward events the UI reports on
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Println("Event channel full, dropping event")
		}
	}
	bus.Subscribe(eventbus.EventError, forward)
	bus.Subscribe(eventbus.EventConfigSaved, forward)

	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		p.Quit()
	}()

	// Run the UI
	_, runErr := p.Run()

	// No forward handler may still be sending once the channel closes
	bus.Close()
	close(eventChan)

	if runErr != nil {
		fmt.Printf("Error running program: %v\n", runErr)
		os.Exit(1)
	}
}

// persistSettings saves the theme and grid variant whenever the UI changes them.
// saved is a private copy; the UI's config is never touched from here.
func persistSettings(bus eventbus.EventBus, svc config.ConfigService, saved config.Config) {
	var mu sync.Mutex
	bus.Subscribe(eventbus.EventConfigChanged, func(e eventbus.DomainEvent) {
		ev, ok := e.(eventbus.ConfigChangedEvent)
		if !ok {
			return
		}

		mu.Lock()
		defer mu.Unlock()
		saved.UI.DarkMode = ev.DarkMode
		saved.Scheduler.Days = ev.Days
		if err := svc.Save(&saved); err != nil {
			log.Printf("Error saving config: %v", err)
			bus.Publish(eventbus.ErrorEvent{Message: "could not save settings", Err: err})
		}
	})
	bus.Subscribe(eventbus.EventConfigSaved, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.ConfigSavedEvent); ok {
			log.Printf("Config saved to %s", ev.Path)
		}
	})
}

// logActivity writes a line per session-level event to the log file
func logActivity(bus eventbus.EventBus, registry *accounts.Registry) {
	for _, t := range []eventbus.EventType{
		eventbus.EventUserAdded,
		eventbus.EventUserRemoved,
		eventbus.EventSelectionCleared,
		eventbus.EventProgressUpdated,
		eventbus.EventGratitudeAdded,
		eventbus.EventLoggedIn,
		eventbus.EventLoggedOut,
		eventbus.EventThemeChanged,
	} {
		bus.Subscribe(t, func(e eventbus.DomainEvent) {
			switch ev := e.(type) {
			case eventbus.UserAddedEvent:
				log.Printf("User %s joined with color %s", ev.User.Name, ev.User.Color)
			case eventbus.UserRemovedEvent:
				log.Printf("User %s left the roster", ev.Name)
			case eventbus.SelectionClearedEvent:
				log.Printf("Cleared %d slots for %s", ev.Count, ev.User)
			case eventbus.ProgressUpdatedEvent:
				log.Printf("Roadmap progress: step %d (%s)", ev.Step+1, ev.Label)
			case eventbus.GratitudeAddedEvent:
				log.Printf("Gratitude entry added (%d chars)", len(ev.Text))
			case eventbus.LoggedInEvent:
				log.Printf("%s logged in (registered: %t, key %s)", ev.Username, ev.Registered, registry.Fingerprint(ev.Username))
			case eventbus.LoggedOutEvent:
				log.Printf("%s logged out", ev.Username)
			case eventbus.ThemeChangedEvent:
				log.Printf("Theme changed (dark: %t)", ev.Dark)
			}
		})
	}
}
