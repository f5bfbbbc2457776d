package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"planboard/internal/eventbus"
)

// EnvConfigPath overrides the default config file location
const EnvConfigPath = "PLANBOARD_CONFIG"

// Config represents the application configuration
type Config struct {
	Version   int             `toml:"version"`
	UI        UISettings      `toml:"ui"`
	Scheduler SchedulerConfig `toml:"scheduler"`
	Roadmap   RoadmapConfig   `toml:"roadmap"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	DarkMode        bool `toml:"dark_mode"`
	SnackbarSeconds int  `toml:"snackbar_seconds"`
}

// SchedulerConfig controls the weekly grid
type SchedulerConfig struct {
	Days         int      `toml:"days"` // 7 or 14
	CellWidth    int      `toml:"cell_width"`
	StartDay     string   `toml:"start_day"`
	Palette      []string `toml:"palette"`
	RequireLogin bool     `toml:"require_login"`
	AuthSalt     string   `toml:"auth_salt,omitempty"`
}

// RoadmapConfig controls the journaling app
type RoadmapConfig struct {
	Steps           []string `toml:"steps"`
	ReminderSeconds int      `toml:"reminder_seconds"`
	ReminderMessage string   `toml:"reminder_message"`
}

// DefaultPalette is used when the config lists no colors
var DefaultPalette = []string{"#E06C75", "#61AFEF", "#98C379", "#E5C07B", "#C678DD", "#56B6C2", "#D19A66", "#BE5046"}

// DefaultSteps are the four roadmap stages
var DefaultSteps = []string{
	"Week 1-2: Catch Negative Thoughts & Reframe",
	"Week 3-4: Build Gratitude & Positive Replacements",
	"Week 5-6: Surround Yourself with Positivity",
	"Week 7-8: Automate & Reinforce",
}

const (
	defaultReminderMessage = "Don't forget to log your gratitude for today!"
	defaultReminderSeconds = 60
	defaultCellWidth       = 5
	defaultSnackbarSeconds = 3
)

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a config service for path, or the default location when path is empty
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

// DefaultPath returns the per-user config file location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "planboard", "config.toml")
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, falling back to defaults when it doesn't exist
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.Validate()

	return &cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		UI: UISettings{
			SnackbarSeconds: defaultSnackbarSeconds,
		},
		Scheduler: SchedulerConfig{
			Days:      7,
			CellWidth: defaultCellWidth,
			StartDay:  "monday",
			Palette:   append([]string(nil), DefaultPalette...),
		},
		Roadmap: RoadmapConfig{
			Steps:           append([]string(nil), DefaultSteps...),
			ReminderSeconds: defaultReminderSeconds,
			ReminderMessage: defaultReminderMessage,
		},
	}
}

// Validate clamps out-of-range values back to something usable
func (c *Config) Validate() {
	if c.Version == 0 {
		c.Version = 1
	}
	if c.Scheduler.Days != 7 && c.Scheduler.Days != 14 {
		if c.Scheduler.Days > 7 {
			c.Scheduler.Days = 14
		} else {
			c.Scheduler.Days = 7
		}
	}
	switch {
	case c.Scheduler.CellWidth == 0:
		c.Scheduler.CellWidth = defaultCellWidth
	case c.Scheduler.CellWidth < 3:
		c.Scheduler.CellWidth = 3
	case c.Scheduler.CellWidth > 12:
		c.Scheduler.CellWidth = 12
	}
	if _, ok := ParseWeekday(c.Scheduler.StartDay); !ok {
		c.Scheduler.StartDay = "monday"
	}
	if len(c.Scheduler.Palette) == 0 {
		c.Scheduler.Palette = append([]string(nil), DefaultPalette...)
	}
	if len(c.Roadmap.Steps) == 0 {
		c.Roadmap.Steps = append([]string(nil), DefaultSteps...)
	}
	if c.Roadmap.ReminderSeconds < 1 {
		c.Roadmap.ReminderSeconds = defaultReminderSeconds
	}
	if strings.TrimSpace(c.Roadmap.ReminderMessage) == "" {
		c.Roadmap.ReminderMessage = defaultReminderMessage
	}
	if c.UI.SnackbarSeconds < 1 {
		c.UI.SnackbarSeconds = defaultSnackbarSeconds
	}
}

// ReminderInterval returns the gratitude reminder period
func (c *Config) ReminderInterval() time.Duration {
	return time.Duration(c.Roadmap.ReminderSeconds) * time.Second
}

// SnackbarDuration returns how long status messages stay visible
func (c *Config) SnackbarDuration() time.Duration {
	return time.Duration(c.UI.SnackbarSeconds) * time.Second
}

// FirstWeekday returns the configured first column of the grid
func (c *Config) FirstWeekday() time.Weekday {
	d, _ := ParseWeekday(c.Scheduler.StartDay)
	return d
}

// ParseWeekday accepts full or three-letter English day names
func ParseWeekday(s string) (time.Weekday, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		if s == name || s == name[:3] {
			return d, true
		}
	}
	return time.Monday, false
}
