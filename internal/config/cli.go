package config

import (
	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Duration      string
	Sound         string
	SessionCmd    string
	LogLevel      string
	NoSound       bool
	DisableNotify bool
	Plain         bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Duration:      ctx.String("duration"),
			Sound:         ctx.String("sound"),
			SessionCmd:    ctx.String("session-cmd"),
			LogLevel:      ctx.String("log-level"),
			NoSound:       ctx.Bool("no-sound"),
			DisableNotify: ctx.Bool("disable-notification"),
			Plain:         ctx.Bool("plain"),
		}

		return applyCLIOptions(c, opts)
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) error {
	if opts.Duration != "" {
		dur, err := parseDuration(opts.Duration)
		if err != nil {
			return errInvalidCLIDuration.Wrap(err)
		}

		c.Timer.Duration = dur
	}

	if opts.Sound != "" {
		if opts.Sound == "off" {
			c.Sound.Enabled = false
		} else {
			c.Sound.Alert = opts.Sound
			c.Sound.Enabled = true
		}
	}

	if opts.NoSound {
		c.Sound.Enabled = false
	}

	if opts.DisableNotify {
		c.Notifications.Enabled = false
	}

	if opts.SessionCmd != "" {
		c.Settings.Cmd = opts.SessionCmd
	}

	if opts.LogLevel != "" {
		c.Log.Level = opts.LogLevel
	}

	c.CLI.Plain = opts.Plain

	return nil
}
