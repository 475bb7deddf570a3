package config_test

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/pomo/internal/config"
)

const modifiedConfig = `timer:
  duration: 50
sound:
  alert: tone
  enabled: false
  volume: -1.5
notifications:
  enabled: false
settings:
  cmd: notify-send done
  24hr_clock: true
  history: false
display:
  dark_theme: false
log:
  level: debug
`

func TestViperWriteConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "pomo", "config.yml")

	cfg, err := config.New(config.WithViperConfig(configPath))
	require.NoError(t, err)

	want := config.Default()
	want.System.ConfigPath = configPath

	assert.Equal(t, want, cfg)

	b, err := os.ReadFile(configPath)
	require.NoError(t, err)

	assert.Contains(t, string(b), "duration: 25m")

	// reading the written file back gives the same values
	again, err := config.New(config.WithViperConfig(configPath))
	require.NoError(t, err)

	assert.Equal(t, cfg, again)
}

func TestViperReadConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	err := os.WriteFile(configPath, []byte(modifiedConfig), 0o600)
	require.NoError(t, err)

	cfg, err := config.New(config.WithViperConfig(configPath))
	require.NoError(t, err)

	want := &config.Config{
		Timer: config.TimerConfig{
			Duration: 50 * time.Minute,
		},
		Sound: config.SoundConfig{
			Alert:   "tone",
			Enabled: false,
			Volume:  -1.5,
		},
		Notifications: config.NotificationConfig{
			Enabled: false,
		},
		Settings: config.SettingsConfig{
			Cmd:            "notify-send done",
			TwentyFourHour: true,
			History:        false,
		},
		Display: config.DisplayConfig{
			DarkTheme: false,
		},
		Log: config.LogConfig{
			Level: "debug",
		},
		System: config.SystemConfig{
			ConfigPath: configPath,
		},
	}

	assert.Equal(t, want, cfg)
	assert.Equal(t, 3000, cfg.Seconds())
}

func TestEnvironmentOverride(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	t.Setenv("POMO_TIMER_DURATION", "90s")
	t.Setenv("POMO_NOTIFICATIONS_ENABLED", "false")

	cfg, err := config.New(config.WithViperConfig(configPath))
	require.NoError(t, err)

	assert.Equal(t, 90*time.Second, cfg.Timer.Duration)
	assert.False(t, cfg.Notifications.Enabled)
}

func newCLIContext(t *testing.T, flags map[string]string) *cli.Context {
	t.Helper()

	f := flag.NewFlagSet("pomo", flag.ContinueOnError)

	for k, v := range flags {
		if v == "true" {
			_ = f.Bool(k, false, "")
		} else {
			_ = f.String(k, "", "")
		}

		require.NoError(t, f.Set(k, v))
	}

	return cli.NewContext(&cli.App{}, f, nil)
}

func TestCLIConfig(t *testing.T) {
	cases := []struct {
		check func(t *testing.T, cfg *config.Config)
		flags map[string]string
		name  string
	}{
		{
			name:  "duration in minutes",
			flags: map[string]string{"duration": "45"},
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, 45*time.Minute, cfg.Timer.Duration)
			},
		},
		{
			name:  "duration string",
			flags: map[string]string{"duration": "1h30m"},
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, 5400, cfg.Seconds())
			},
		},
		{
			name:  "sound off",
			flags: map[string]string{"sound": "off"},
			check: func(t *testing.T, cfg *config.Config) {
				assert.False(t, cfg.Sound.Enabled)
			},
		},
		{
			name: "switches",
			flags: map[string]string{
				"no-sound":             "true",
				"disable-notification": "true",
				"plain":                "true",
				"session-cmd":          "echo done",
			},
			check: func(t *testing.T, cfg *config.Config) {
				assert.False(t, cfg.Sound.Enabled)
				assert.False(t, cfg.Notifications.Enabled)
				assert.True(t, cfg.CLI.Plain)
				assert.Equal(t, "echo done", cfg.Settings.Cmd)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := config.New(config.WithCLIConfig(newCLIContext(t, tc.flags)))
			require.NoError(t, err)

			tc.check(t, cfg)
		})
	}
}

func TestCLIConfigInvalidDuration(t *testing.T) {
	ctx := newCLIContext(t, map[string]string{"duration": "soon"})

	_, err := config.New(config.WithCLIConfig(ctx))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	soundsDir := t.TempDir()

	err := os.WriteFile(filepath.Join(soundsDir, "chime.wav"), nil, 0o600)
	require.NoError(t, err)

	cases := []struct {
		modify  func(c *config.Config)
		name    string
		wantErr bool
	}{
		{
			name:   "defaults",
			modify: func(_ *config.Config) {},
		},
		{
			name:    "zero duration",
			modify:  func(c *config.Config) { c.Timer.Duration = 0 },
			wantErr: true,
		},
		{
			name:    "longer than twelve hours",
			modify:  func(c *config.Config) { c.Timer.Duration = 13 * time.Hour },
			wantErr: true,
		},
		{
			name:    "fractional seconds",
			modify:  func(c *config.Config) { c.Timer.Duration = 1500*time.Second + 500*time.Millisecond },
			wantErr: true,
		},
		{
			name:    "volume out of range",
			modify:  func(c *config.Config) { c.Sound.Volume = 9 },
			wantErr: true,
		},
		{
			name:    "unknown log level",
			modify:  func(c *config.Config) { c.Log.Level = "loud" },
			wantErr: true,
		},
		{
			name:    "unsupported sound format",
			modify:  func(c *config.Config) { c.Sound.Alert = "bell.aac" },
			wantErr: true,
		},
		{
			name:    "missing named sound",
			modify:  func(c *config.Config) { c.Sound.Alert = "gong" },
			wantErr: true,
		},
		{
			name:   "missing sound is fine when disabled",
			modify: func(c *config.Config) { c.Sound.Alert = "gong"; c.Sound.Enabled = false },
		},
		{
			name:   "named sound without extension",
			modify: func(c *config.Config) { c.Sound.Alert = "chime" },
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := config.Default()
			c.System.SoundsDir = soundsDir

			tc.modify(c)

			err := c.Validate()
			if tc.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestAlertSoundPath(t *testing.T) {
	soundsDir := t.TempDir()
	chime := filepath.Join(soundsDir, "chime.ogg")

	require.NoError(t, os.WriteFile(chime, nil, 0o600))

	c := config.Default()
	c.System.SoundsDir = soundsDir

	path, err := c.AlertSoundPath()
	require.NoError(t, err)
	assert.Empty(t, path, "built-in tone has no file")

	c.Sound.Alert = "chime"

	path, err = c.AlertSoundPath()
	require.NoError(t, err)
	assert.Equal(t, chime, path)

	c.Sound.Alert = chime

	path, err = c.AlertSoundPath()
	require.NoError(t, err)
	assert.Equal(t, chime, path)
}

func TestNewWrapsOptionErrors(t *testing.T) {
	sentinel := errors.New("boom")

	_, err := config.New(func(_ *config.Config) error { return sentinel })
	assert.ErrorIs(t, err, sentinel)
}

func TestIsSoundFile(t *testing.T) {
	assert.True(t, config.IsSoundFile("bell.wav"))
	assert.True(t, config.IsSoundFile("rain.OGG"))
	assert.False(t, config.IsSoundFile("notes.txt"))
	assert.False(t, config.IsSoundFile("bell"))
}
