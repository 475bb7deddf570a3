package app

import "github.com/urfave/cli/v2"

var (
	durationFlag = &cli.StringFlag{
		Name:    "duration",
		Aliases: []string{"d"},
		Usage:   "Countdown length in minutes or as a duration such as 1h30m (default: 25)",
	}

	soundFlag = &cli.StringFlag{
		Name:  "sound",
		Usage: "Alert to play while the countdown runs: 'tone', a name from 'pomo sounds', or a path to an\n\t\t\t\tmp3, ogg, flac or wav file. Disable sound by setting to 'off'",
	}

	noSoundFlag = &cli.BoolFlag{
		Name:  "no-sound",
		Usage: "Run the countdown without sound",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:  "disable-notification",
		Usage: "Disable the system notification that appears after the countdown is finished",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:    "session-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command after the countdown is finished",
	}

	plainFlag = &cli.BoolFlag{
		Name:  "plain",
		Usage: "Print a plain countdown instead of the interactive interface. The countdown starts immediately",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	logLevelFlag = &cli.StringFlag{
		Name:  "log-level",
		Usage: "Log level: debug, info, warn or error",
	}

	sinceFlag = &cli.StringFlag{
		Name:  "since",
		Usage: "Only include sessions started after this date (e.g. '2 days ago', '2024-03-01')",
	}

	periodFlag = &cli.StringFlag{
		Name:    "period",
		Aliases: []string{"p"},
		Usage:   "Reporting period: all-time, today, yesterday, 7days, 30days or 365days",
		Value:   "7days",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the history as JSON",
	}

	yesFlag = &cli.BoolFlag{
		Name:    "yes",
		Aliases: []string{"y"},
		Usage:   "Delete without asking for confirmation",
	}
)
