package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const envPrefix = "POMO"

const (
	keyTimerDuration        = "timer.duration"
	keySoundAlert           = "sound.alert"
	keySoundEnabled         = "sound.enabled"
	keySoundVolume          = "sound.volume"
	keyNotificationsEnabled = "notifications.enabled"
	keySessionCmd           = "settings.cmd"
	keyTwentyFourHour       = "settings.24hr_clock"
	keyHistory              = "settings.history"
	keyDarkTheme            = "display.dark_theme"
	keyLogLevel             = "log.level"
)

// WithViperConfig returns an Option that loads configuration from the YAML
// file at configPath and from POMO_* environment variables. A missing file
// is created from the current values.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		v.SetEnvPrefix(envPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()

		setupViper(v, c)

		c.System.ConfigPath = configPath

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
			return errWriteConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper registers the values already in c as Viper defaults so that
// options applied earlier (such as the first-run prompt) end up in a newly
// written config file.
func setupViper(v *viper.Viper, c *Config) {
	v.SetDefault(keyTimerDuration, formatDuration(c.Timer.Duration))
	v.SetDefault(keySoundAlert, c.Sound.Alert)
	v.SetDefault(keySoundEnabled, c.Sound.Enabled)
	v.SetDefault(keySoundVolume, c.Sound.Volume)
	v.SetDefault(keyNotificationsEnabled, c.Notifications.Enabled)
	v.SetDefault(keySessionCmd, c.Settings.Cmd)
	v.SetDefault(keyTwentyFourHour, c.Settings.TwentyFourHour)
	v.SetDefault(keyHistory, c.Settings.History)
	v.SetDefault(keyDarkTheme, c.Display.DarkTheme)
	v.SetDefault(keyLogLevel, c.Log.Level)
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	dur, err := parseDuration(strings.TrimSpace(v.GetString(keyTimerDuration)))
	if err != nil {
		return err
	}

	v.Set(keyTimerDuration, dur)

	if err := v.Unmarshal(c); err != nil {
		return errReadConfig.Wrap(err)
	}

	return nil
}
