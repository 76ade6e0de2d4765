package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-contacts/internal/config"
)

// TestConstants_Integrity ensures critical constants are not empty or malformed.
func TestConstants_Integrity(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"AppName", config.AppName},
		{"AppID", config.AppID},
		{"Version", config.Version},
		{"Commit", config.Commit},
		{"Date", config.Date},
		{"ICalVersion", config.ICalVersion},
		{"ICalProdid", config.ICalProdid},
		{"DefaultPrompt", config.DefaultPrompt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEmpty(t, tt.value, "Critical constant %s should not be empty", tt.name)
		})
	}
}

// TestDefaults_Sanity checks that default values make sense logically.
func TestDefaults_Sanity(t *testing.T) {
	s := config.DefaultSettings()
	assert.Equal(t, 7, s.GreetingHorizonDays, "A greeting week is seven days")
	assert.Equal(t, config.DefaultPrompt, s.Prompt)
	assert.Equal(t, slog.LevelInfo, s.Level())

	// Rendering layout must stay zero-padded.
	assert.Equal(t, "02.01.2006", config.DateFormatBirthday)
}

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), config.FilePermUserRW))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("Empty path returns defaults", func(t *testing.T) {
		s, err := config.Load("")
		require.NoError(t, err)
		assert.Equal(t, config.DefaultSettings(), s)
	})

	t.Run("Values override defaults", func(t *testing.T) {
		path := writeSettings(t, `
prompt = "> "
greeting_horizon_days = 14
log_level = "debug"
`)
		s, err := config.Load(path)
		require.NoError(t, err)
		assert.Equal(t, "> ", s.Prompt)
		assert.Equal(t, 14, s.GreetingHorizonDays)
		assert.Equal(t, slog.LevelDebug, s.Level())
	})

	t.Run("Partial file keeps remaining defaults", func(t *testing.T) {
		path := writeSettings(t, `log_level = "warn"`)
		s, err := config.Load(path)
		require.NoError(t, err)
		assert.Equal(t, config.DefaultPrompt, s.Prompt)
		assert.Equal(t, config.DefaultHorizonDays, s.GreetingHorizonDays)
		assert.Equal(t, slog.LevelWarn, s.Level())
	})

	t.Run("Non-positive horizon falls back", func(t *testing.T) {
		path := writeSettings(t, `greeting_horizon_days = 0`)
		s, err := config.Load(path)
		require.NoError(t, err)
		assert.Equal(t, config.DefaultHorizonDays, s.GreetingHorizonDays)
	})

	t.Run("Unknown key is rejected", func(t *testing.T) {
		path := writeSettings(t, `colour = "blue"`)
		_, err := config.Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), config.ErrSettingsUnknown)
		assert.Contains(t, err.Error(), "colour")
	})

	t.Run("Missing file is an error", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), config.ErrSettingsRead)
	})

	t.Run("Malformed TOML is an error", func(t *testing.T) {
		path := writeSettings(t, `prompt = `)
		_, err := config.Load(path)
		require.Error(t, err)
	})
}

func TestSettings_Level(t *testing.T) {
	tests := []struct {
		raw  string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{" DEBUG ", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, config.Settings{LogLevel: tt.raw}.Level())
		})
	}
}
