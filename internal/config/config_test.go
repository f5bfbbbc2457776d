package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planboard/internal/eventbus"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	svc := NewConfigService(filepath.Join(t.TempDir(), "nope", "config.toml"))

	cfg, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planboard", "config.toml")
	svc := NewConfigService(path)

	cfg := DefaultConfig()
	cfg.UI.DarkMode = true
	cfg.Scheduler.Days = 14
	cfg.Scheduler.RequireLogin = true
	cfg.Roadmap.Steps = []string{"one", "two"}

	require.NoError(t, svc.Save(cfg))

	loaded, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadFromPathValidatesValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	raw := `
[scheduler]
days = 10
cell_width = 40
start_day = "Sun"

[roadmap]
reminder_seconds = -5
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0644))

	cfg, err := NewConfigService(path).LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, 14, cfg.Scheduler.Days)
	assert.Equal(t, 12, cfg.Scheduler.CellWidth)
	assert.Equal(t, time.Sunday, cfg.FirstWeekday())
	assert.Equal(t, DefaultPalette, cfg.Scheduler.Palette)
	assert.Equal(t, DefaultSteps, cfg.Roadmap.Steps)
	assert.Equal(t, 60*time.Second, cfg.ReminderInterval())
	assert.Equal(t, 3*time.Second, cfg.SnackbarDuration())
	assert.Equal(t, 1, cfg.Version)
}

func TestLoadFromPathRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[scheduler\ndays = "), 0644))

	_, err := NewConfigService(path).LoadFromPath(path)
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestEnvOverridesDefaultPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env.toml")
	t.Setenv(EnvConfigPath, path)

	assert.Equal(t, path, NewConfigService("").Path())
	assert.Equal(t, "/explicit.toml", NewConfigService("/explicit.toml").Path())
}

func TestParseWeekday(t *testing.T) {
	tests := []struct {
		in   string
		want time.Weekday
		ok   bool
	}{
		{"monday", time.Monday, true},
		{"Tue", time.Tuesday, true},
		{" SATURDAY ", time.Saturday, true},
		{"someday", time.Monday, false},
		{"", time.Monday, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseWeekday(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestSavePublishesConfigSaved(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()

	saved := make(chan eventbus.ConfigSavedEvent, 1)
	bus.Subscribe(eventbus.EventConfigSaved, func(e eventbus.DomainEvent) {
		saved <- e.(eventbus.ConfigSavedEvent)
	})

	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cs := NewConfigServiceWithBus(path, bus)
	require.NoError(t, cs.Save(DefaultConfig()))
	assert.FileExists(t, path)

	select {
	case e := <-saved:
		assert.Equal(t, path, e.Path)
	case <-time.After(time.Second):
		t.Fatal("ConfigSaved was not published")
	}
}
