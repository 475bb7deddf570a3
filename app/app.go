// Package app wires pomo's commands to the countdown and its history
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/pomo/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the pomo app instance.
func Get() *cli.App {
	historyFlags := []cli.Flag{sinceFlag, periodFlag}

	return &cli.App{
		Name: "pomo",
		Usage: `
		pomo is a countdown timer for focused work in the terminal. Start, stop,
		reset and resize a single countdown, and review how much you focused.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
			{
				Name:    "history",
				Aliases: []string{"stats"},
				Usage:   "List past countdowns with a summary. Defaults to a reporting period of 7 days",
				Flags:   append(historyFlags, jsonFlag),
				Action:  historyAction,
				Subcommands: []*cli.Command{
					{
						Name:   "delete",
						Usage:  "Delete the countdowns in the reporting period",
						Flags:  append(historyFlags, yesFlag),
						Action: deleteAction,
					},
				},
			},
			{
				Name:   "sounds",
				Usage:  "List the alert sounds available by name",
				Action: soundsAction,
			},
			{
				Name:   "status",
				Usage:  "Print the status of the countdown",
				Action: statusAction,
			},
		},
		Flags: []cli.Flag{
			durationFlag,
			soundFlag,
			noSoundFlag,
			disableNotificationFlag,
			sessionCmdFlag,
			plainFlag,
			noColorFlag,
			logLevelFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
	}
}
