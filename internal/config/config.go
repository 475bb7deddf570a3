// Package config loads pomo's settings from the config file, the
// environment and command-line flags
package config

import (
	"fmt"
	"io"
	"os"
	"time"
)

type (
	// Config holds all configuration settings.
	Config struct {
		Timer         TimerConfig        `mapstructure:"timer"`
		Sound         SoundConfig        `mapstructure:"sound"`
		Notifications NotificationConfig `mapstructure:"notifications"`
		Settings      SettingsConfig     `mapstructure:"settings"`
		Display       DisplayConfig      `mapstructure:"display"`
		Log           LogConfig          `mapstructure:"log"`
		CLI           CLIConfig          `mapstructure:"-"`
		System        SystemConfig       `mapstructure:"-"`
	}

	// TimerConfig holds countdown settings.
	TimerConfig struct {
		Duration time.Duration `mapstructure:"duration"`
	}

	// SoundConfig holds alert playback settings.
	SoundConfig struct {
		Alert   string  `mapstructure:"alert"`
		Volume  float64 `mapstructure:"volume"`
		Enabled bool    `mapstructure:"enabled"`
	}

	// NotificationConfig holds desktop notification settings.
	NotificationConfig struct {
		Enabled bool `mapstructure:"enabled"`
	}

	// SettingsConfig holds miscellaneous behaviour.
	SettingsConfig struct {
		Cmd            string `mapstructure:"cmd"`
		TwentyFourHour bool   `mapstructure:"24hr_clock"`
		History        bool   `mapstructure:"history"`
	}

	// DisplayConfig holds display-related settings.
	DisplayConfig struct {
		DarkTheme bool `mapstructure:"dark_theme"`
	}

	// LogConfig holds logging settings.
	LogConfig struct {
		Level string `mapstructure:"level"`
	}

	// CLIConfig holds settings that only exist on the command line.
	CLIConfig struct {
		Plain bool
	}

	// SystemConfig holds locations resolved at startup.
	SystemConfig struct {
		ConfigPath string
		SoundsDir  string
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v0.3.0"

// AlertTone selects the built-in alert tone.
const AlertTone = "tone"

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// Default returns the configuration used when nothing else is specified.
func Default() *Config {
	return &Config{
		Timer: TimerConfig{
			Duration: 25 * time.Minute,
		},
		Sound: SoundConfig{
			Alert:   AlertTone,
			Enabled: true,
		},
		Notifications: NotificationConfig{
			Enabled: true,
		},
		Settings: SettingsConfig{
			History: true,
		},
		Display: DisplayConfig{
			DarkTheme: true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// WithSoundsDir sets the directory searched for named alert sounds.
func WithSoundsDir(dir string) Option {
	return func(c *Config) error {
		c.System.SoundsDir = dir
		return nil
	}
}

// New creates a Config from the defaults, applies opts in order and
// validates the result.
func New(opts ...Option) (*Config, error) {
	cfg := Default()

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}

// Seconds returns the countdown duration in whole seconds.
func (c *Config) Seconds() int {
	return int(c.Timer.Duration / time.Second)
}

// parseDuration accepts a Go duration string or a bare number of minutes.
func parseDuration(s string) (time.Duration, error) {
	dur, err := time.ParseDuration(s)
	if err == nil {
		return dur, nil
	}

	mins, err := time.ParseDuration(s + "m")
	if err != nil {
		return 0, errParseDuration.Fmt(s)
	}

	return mins, nil
}

// formatDuration writes whole minutes without the trailing seconds that
// time.Duration.String adds.
func formatDuration(d time.Duration) string {
	if d%time.Minute == 0 {
		return fmt.Sprintf("%dm", d/time.Minute)
	}

	return d.String()
}
