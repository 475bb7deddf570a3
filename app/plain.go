package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/pomo/internal/notify"
	"github.com/ayoisaiah/pomo/internal/timeutil"
	"github.com/ayoisaiah/pomo/timer"
)

const loopBuffer = 16

// plainOpts configures a countdown printed without the interactive
// interface.
type plainOpts struct {
	out       io.Writer
	alert     timer.AlertSink
	notifier  *notify.Notifier
	log       *slog.Logger
	observers []timer.Observer
	sched     []timer.SchedulerOption
	seconds   int
}

// countdown prints the time remaining on the current line.
func countdown(w io.Writer, remaining int) {
	m, s := timeutil.SecsToMinsAndSecs(remaining)

	fmt.Fprintf(
		w,
		"\r🕒%s:%s",
		pterm.Yellow(fmt.Sprintf("%02d", m)),
		pterm.Yellow(fmt.Sprintf("%02d", s)),
	)
}

// runPlain starts a countdown and prints it until it finishes or the
// process is interrupted. The countdown runs on the calling goroutine.
func runPlain(ctx context.Context, opts *plainOpts) error {
	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	loopCtx, cancel := context.WithCancel(sigCtx)
	defer cancel()

	loop := timer.NewLoop(loopBuffer)

	var sched *timer.TickScheduler

	sched = timer.NewTickScheduler(func(p timer.Pulse) {
		loop.Post(loopCtx, func() {
			sched.Deliver(p)
		})
	}, opts.sched...)

	var finished bool

	machineOpts := []timer.Option{
		timer.WithSeconds(opts.seconds),
		timer.WithLogger(opts.log),
		timer.WithObserver(func(prev, cur timer.State) {
			countdown(opts.out, cur.Remaining)

			if notify.Finishing(prev, cur) {
				finished = true

				cancel()
			}
		}),
	}

	for _, o := range opts.observers {
		machineOpts = append(machineOpts, timer.WithObserver(o))
	}

	m := timer.New(sched, opts.alert, machineOpts...)

	var startErr error

	loop.Post(loopCtx, func() {
		_, startErr = m.Start()
		if startErr != nil {
			cancel()
		}
	})

	_ = loop.Run(loopCtx)

	// interrupted: record what was counted
	m.Stop()

	fmt.Fprintln(opts.out)

	if startErr != nil {
		return startErr
	}

	if finished {
		pterm.Fprintln(opts.out, "Time is up!")

		_ = opts.notifier.Finished(ctx, m.State().Configured)
	}

	return nil
}
