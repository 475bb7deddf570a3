package app

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"runtime"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/pomo/internal/alert"
	"github.com/ayoisaiah/pomo/internal/config"
	"github.com/ayoisaiah/pomo/internal/notify"
	"github.com/ayoisaiah/pomo/internal/osutil"
	"github.com/ayoisaiah/pomo/internal/pathutil"
	"github.com/ayoisaiah/pomo/internal/session"
	"github.com/ayoisaiah/pomo/internal/static"
	"github.com/ayoisaiah/pomo/internal/status"
	"github.com/ayoisaiah/pomo/internal/tui"
	"github.com/ayoisaiah/pomo/internal/ui"
	"github.com/ayoisaiah/pomo/stats"
	"github.com/ayoisaiah/pomo/store"
	"github.com/ayoisaiah/pomo/timer"
)

const (
	envNoColor     = "NO_COLOR"
	envPomoNoColor = "POMO_NO_COLOR"
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// loadConfig builds the configuration from the config file, the environment
// and the flags in ctx. The user is prompted on first run.
func loadConfig(ctx *cli.Context, paths *pathutil.Paths) (*config.Config, error) {
	return config.New(
		config.WithSoundsDir(paths.SoundsDir),
		config.WithPromptConfig(paths.ConfigFile),
		config.WithViperConfig(paths.ConfigFile),
		config.WithCLIConfig(ctx),
	)
}

// newAlert returns the alert for cfg. Audio failures are logged and the
// countdown runs silently.
func newAlert(cfg *config.Config, log *slog.Logger) timer.AlertSink {
	if !cfg.Sound.Enabled {
		return alert.Nop{}
	}

	path, err := cfg.AlertSoundPath()
	if err != nil {
		log.Warn("alert sound unavailable", slog.Any("error", err))
		return alert.Nop{}
	}

	p, err := alert.NewPlayer(
		path,
		alert.WithVolume(cfg.Sound.Volume),
		alert.WithLogger(log),
	)
	if err != nil {
		log.Warn("unable to initialise audio", slog.Any("error", err))
		return alert.Nop{}
	}

	return p
}

func newNotifier(cfg *config.Config, paths *pathutil.Paths, log *slog.Logger) *notify.Notifier {
	opts := []notify.Option{
		notify.WithLogger(log),
		notify.WithCommand(cfg.Settings.Cmd),
	}

	if cfg.Notifications.Enabled {
		icon := paths.IconFile
		if _, err := os.Stat(icon); err != nil {
			icon = ""
		}

		opts = append(opts, notify.WithDesktop(icon))
	}

	return notify.New(opts...)
}

// defaultAction runs the countdown in the terminal interface, or as a
// plain countdown with --plain.
func defaultAction(ctx *cli.Context) error {
	paths := pathutil.Must()

	err := static.Install(paths.DataDir)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(ctx, paths)
	if err != nil {
		return err
	}

	logger, logFile := newLogger(paths.LogFile, cfg.Log.Level)
	defer logFile.Close()

	ui.DarkTheme = cfg.Display.DarkTheme

	db, err := store.NewClient(paths.DBFile)
	if err != nil {
		return err
	}

	defer db.Close()

	statusFile := status.NewWriter(paths.StatusFile, logger)

	defer func() {
		if err := statusFile.Remove(); err != nil {
			logger.Error("unable to remove status file", slog.Any("error", err))
		}
	}()

	observers := []timer.Observer{statusFile.Observe}

	if cfg.Settings.History {
		observers = append(observers, session.NewTracker(db, logger).Observe)
	}

	sink := newAlert(cfg, logger)
	notifier := newNotifier(cfg, paths, logger)

	logger.Info(
		"starting pomo",
		slog.Int("seconds", cfg.Seconds()),
		slog.Bool("plain", cfg.CLI.Plain),
	)

	if cfg.CLI.Plain {
		return runPlain(ctx.Context, &plainOpts{
			out:       config.Stdout,
			alert:     sink,
			notifier:  notifier,
			log:       logger,
			observers: observers,
			seconds:   cfg.Seconds(),
		})
	}

	m := tui.New(&tui.Options{
		Seconds:   cfg.Seconds(),
		Alert:     sink,
		Notifier:  notifier,
		Logger:    logger,
		Observers: observers,
		Hour24:    cfg.Settings.TwentyFourHour,
		DarkTheme: cfg.Display.DarkTheme,
	})

	_, err = tea.NewProgram(m, tea.WithContext(ctx.Context)).Run()

	// a program killed by its context skips the model's quit handling
	m.Machine().Stop()

	return err
}

// openHistory opens the database for reading the session history.
func openHistory() (store.DB, error) {
	return store.NewClient(pathutil.Must().DBFile)
}

// historyAction prints the sessions in the reporting period with a
// summary.
func historyAction(ctx *cli.Context) error {
	start, end, err := filterRange(ctx)
	if err != nil {
		return err
	}

	db, err := openHistory()
	if err != nil {
		return err
	}

	defer db.Close()

	sessions, err := db.GetSessions(start, end)
	if err != nil {
		return err
	}

	cfg := readOnlyConfig()

	return stats.Show(sessions, &stats.Opts{
		StartTime: start,
		EndTime:   end,
		Stdout:    config.Stdout,
		JSON:      ctx.Bool("json"),
		Hour24:    cfg.Settings.TwentyFourHour,
	})
}

// deleteAction deletes the sessions in the reporting period.
func deleteAction(ctx *cli.Context) error {
	start, end, err := filterRange(ctx)
	if err != nil {
		return err
	}

	db, err := openHistory()
	if err != nil {
		return err
	}

	defer db.Close()

	sessions, err := db.GetSessions(start, end)
	if err != nil {
		return err
	}

	deleted, err := stats.Delete(db, sessions, &stats.DeleteOpts{
		StartTime: start,
		Stdin:     config.Stdin,
		Stdout:    config.Stdout,
		Yes:       ctx.Bool("yes"),
		Hour24:    readOnlyConfig().Settings.TwentyFourHour,
	})
	if err != nil {
		return err
	}

	if deleted > 0 {
		pterm.Success.Printfln("%d session(s) deleted", deleted)
	}

	return nil
}

// readOnlyConfig loads the config file without prompting or writing it.
// Errors fall back to the defaults.
func readOnlyConfig() *config.Config {
	paths := pathutil.Must()

	if _, err := os.Stat(paths.ConfigFile); err != nil {
		return config.Default()
	}

	cfg, err := config.New(
		config.WithSoundsDir(paths.SoundsDir),
		config.WithViperConfig(paths.ConfigFile),
	)
	if err != nil {
		return config.Default()
	}

	return cfg
}

// soundsAction lists the alert sounds that can be selected by name.
func soundsAction(_ *cli.Context) error {
	dir := pathutil.Must().SoundsDir

	err := static.Install(pathutil.Must().DataDir)
	if err != nil {
		return err
	}

	files, err := listSounds(dir)
	if err != nil {
		return err
	}

	printSounds(config.Stdout, dir, files)

	return nil
}

// statusAction handles the status command and prints the status of the
// countdown in a running pomo process.
func statusAction(_ *cli.Context) error {
	paths := pathutil.Must()

	return status.Report(config.Stdout, paths.DBFile, paths.StatusFile)
}

// editConfigAction handles the edit-config command which opens the pomo
// config file in the user's default text editor.
func editConfigAction(_ *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == osutil.Windows {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cfg := readOnlyConfig()

	configPath := firstNonEmptyString(cfg.System.ConfigPath, pathutil.Must().ConfigFile)

	cmd := exec.Command(editor, configPath)

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	// Override the default version printer
	oldVersionPrinter := cli.VersionPrinter
	cli.VersionPrinter = func(c *cli.Context) {
		oldVersionPrinter(c)
		fmt.Fprintf(
			c.App.Writer,
			"https://github.com/ayoisaiah/pomo/releases/%s\n",
			c.App.Version,
		)
	}

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	if noColor(ctx) {
		disableStyling()
	}

	return pathutil.Initialize()
}

// noColor reports whether coloured output has been turned off with an
// environment variable or --no-color.
func noColor(ctx *cli.Context) bool {
	for _, env := range []string{envNoColor, envPomoNoColor} {
		if _, exists := os.LookupEnv(env); exists {
			return true
		}
	}

	return ctx.Bool("no-color")
}
