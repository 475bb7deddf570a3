// Package notify signals the end of a countdown outside the terminal
package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"

	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/pomo/internal/timeutil"
	"github.com/ayoisaiah/pomo/timer"
)

const title = "pomo"

// Notifier shows a desktop notification and runs the user's command when a
// countdown finishes.
type Notifier struct {
	log     *slog.Logger
	notify  func(title, message, icon string) error
	run     func(ctx context.Context, name string, args ...string) error
	icon    string
	command string
	desktop bool
}

// Option configures a Notifier.
type Option func(*Notifier)

// WithDesktop enables desktop notifications with the icon at path. The
// icon may be empty.
func WithDesktop(icon string) Option {
	return func(n *Notifier) {
		n.desktop = true
		n.icon = icon
	}
}

// WithCommand sets a command line to run after each countdown.
func WithCommand(cmdline string) Option {
	return func(n *Notifier) {
		n.command = cmdline
	}
}

// WithLogger sets the logger used to report failures.
func WithLogger(l *slog.Logger) Option {
	return func(n *Notifier) {
		n.log = l
	}
}

// New creates a notifier. Without options it does nothing.
func New(opts ...Option) *Notifier {
	n := &Notifier{
		log:    slog.Default(),
		notify: beeep.Notify,
		run: func(ctx context.Context, name string, args ...string) error {
			return exec.CommandContext(ctx, name, args...).Run()
		},
	}

	for _, opt := range opts {
		opt(n)
	}

	return n
}

// Message is the notification body for a countdown of the given length.
func Message(configured int) string {
	return fmt.Sprintf(
		"Your %s countdown is finished",
		timeutil.FormatDuration(configured),
	)
}

// SplitCommand splits a command line into its name and arguments using
// shell quoting rules.
func SplitCommand(cmdline string) ([]string, error) {
	args, err := shellquote.Split(cmdline)
	if err != nil {
		return nil, fmt.Errorf("unable to parse session command: %w", err)
	}

	return args, nil
}

// Finished signals that a countdown of the given length has finished. It
// blocks until the command exits.
func (n *Notifier) Finished(ctx context.Context, configured int) error {
	var errs []error

	if n.desktop {
		err := n.notify(title, Message(configured), n.icon)
		if err != nil {
			errs = append(errs, fmt.Errorf("unable to display notification: %w", err))
		}
	}

	if n.command != "" {
		args, err := SplitCommand(n.command)
		if err != nil {
			errs = append(errs, err)
		} else if len(args) > 0 {
			err = n.run(ctx, args[0], args[1:]...)
			if err != nil {
				errs = append(errs, fmt.Errorf("session command failed: %w", err))
			}
		}
	}

	err := errors.Join(errs...)
	if err != nil {
		n.log.Error("completion signal failed", slog.Any("error", err))
	}

	return err
}

// Finishing reports whether a transition is the end of a countdown.
func Finishing(prev, cur timer.State) bool {
	return prev.Phase == timer.Running && cur.Phase == timer.Finished
}
