package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/BurntSushi/toml"
)

// Settings holds the user-tunable parts of the assistant.
type Settings struct {
	Prompt              string `toml:"prompt"`
	GreetingHorizonDays int    `toml:"greeting_horizon_days"`
	LogLevel            string `toml:"log_level"`
}

// DefaultSettings returns the settings used when no file is given.
func DefaultSettings() Settings {
	return Settings{
		Prompt:              DefaultPrompt,
		GreetingHorizonDays: DefaultHorizonDays,
		LogLevel:            DefaultLogLevel,
	}
}

// Load reads a TOML settings file on top of DefaultSettings.
// An empty path returns the defaults.
func Load(path string) (Settings, error) {
	s := DefaultSettings()
	if path == "" {
		return s, nil
	}

	md, err := toml.DecodeFile(path, &s)
	if err != nil {
		return Settings{}, fmt.Errorf("%s: %w", ErrSettingsRead, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return Settings{}, fmt.Errorf("%s: %s", ErrSettingsUnknown, strings.Join(keys, ", "))
	}

	s.normalize()
	return s, nil
}

func (s *Settings) normalize() {
	if s.Prompt == "" {
		s.Prompt = DefaultPrompt
	}
	if s.GreetingHorizonDays <= 0 {
		s.GreetingHorizonDays = DefaultHorizonDays
	}
	if s.LogLevel == "" {
		s.LogLevel = DefaultLogLevel
	}
}

// Level maps LogLevel onto a slog level. Unknown values mean info.
func (s Settings) Level() slog.Level {
	switch strings.ToLower(strings.TrimSpace(s.LogLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
