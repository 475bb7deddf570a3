// Package tui is the interactive terminal interface of pomo
package tui

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/pomo/internal/apperr"
	"github.com/ayoisaiah/pomo/internal/notify"
	"github.com/ayoisaiah/pomo/timer"
)

const pulseBuffer = 16

var errInvalidMinutes = &apperr.Error{
	Message: "enter a whole number of minutes between 1 and 720",
}

type (
	pulseMsg    timer.Pulse
	finishedMsg struct{ err error }
)

// Options configures the countdown view.
type Options struct {
	Alert     timer.AlertSink
	Notifier  *notify.Notifier
	Logger    *slog.Logger
	Observers []timer.Observer
	// SchedulerOptions are passed to the tick scheduler.
	SchedulerOptions []timer.SchedulerOption
	Seconds          int
	Hour24           bool
	DarkTheme        bool
}

// Model owns the countdown while the terminal interface is running. All
// timer commands and ticks are processed in Update.
type Model struct {
	machine  *timer.Machine
	sched    *timer.TickScheduler
	notifier *notify.Notifier
	log      *slog.Logger
	pulses   chan timer.Pulse
	done     chan struct{}
	form     *huh.Form
	now      func() time.Time
	err      error
	styles   Styles
	keys     KeyMap
	minutes  string
	help     help.Model
	progress progress.Model
	hour24   bool
	finished bool
	quitting bool
}

// New creates the model and the countdown it drives.
func New(opts *Options) *Model {
	m := &Model{
		notifier: opts.Notifier,
		log:      opts.Logger,
		pulses:   make(chan timer.Pulse, pulseBuffer),
		done:     make(chan struct{}),
		now:      time.Now,
		styles:   NewStyles(opts.DarkTheme),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		progress: progress.New(progress.WithDefaultGradient()),
		hour24:   opts.Hour24,
	}

	if m.log == nil {
		m.log = slog.Default()
	}

	if m.notifier == nil {
		m.notifier = notify.New()
	}

	m.sched = timer.NewTickScheduler(m.post, opts.SchedulerOptions...)

	machineOpts := []timer.Option{
		timer.WithSeconds(opts.Seconds),
		timer.WithLogger(m.log),
		timer.WithObserver(m.observe),
	}

	for _, o := range opts.Observers {
		machineOpts = append(machineOpts, timer.WithObserver(o))
	}

	m.machine = timer.New(m.sched, opts.Alert, machineOpts...)

	return m
}

// Machine returns the countdown owned by the model.
func (m *Model) Machine() *timer.Machine {
	return m.machine
}

// post forwards a pulse from the scheduler goroutine to Update.
func (m *Model) post(p timer.Pulse) {
	select {
	case m.pulses <- p:
	case <-m.done:
	}
}

func (m *Model) waitForPulse() tea.Cmd {
	return func() tea.Msg {
		select {
		case p := <-m.pulses:
			return pulseMsg(p)
		case <-m.done:
			return nil
		}
	}
}

func (m *Model) observe(prev, cur timer.State) {
	if notify.Finishing(prev, cur) {
		m.finished = true
	}
}

// signalFinish returns a command that notifies the user when the countdown
// has just finished.
func (m *Model) signalFinish() tea.Cmd {
	if !m.finished {
		return nil
	}

	m.finished = false

	n := m.notifier
	configured := m.machine.State().Configured

	return func() tea.Msg {
		return finishedMsg{err: n.Finished(context.Background(), configured)}
	}
}

func (m *Model) Init() tea.Cmd {
	return m.waitForPulse()
}

func (m *Model) quit() tea.Cmd {
	if !m.quitting {
		m.quitting = true
		m.machine.Stop()
		close(m.done)
	}

	return tea.Quit
}

func (m *Model) toggle() {
	m.err = nil

	if m.machine.State().Phase == timer.Running {
		m.machine.Stop()
		return
	}

	_, m.err = m.machine.Start()
}

// reset restores the configured duration. A running countdown must be
// stopped first; a finished one goes back to idle.
func (m *Model) reset() {
	m.err = nil

	st := m.machine.State()

	if st.Phase == timer.Finished {
		_, m.err = m.machine.Reset(st.Configured)
		return
	}

	_, m.err = m.machine.Configure(st.Configured)
}

func (m *Model) openForm() tea.Cmd {
	m.err = nil
	m.minutes = strconv.Itoa(m.machine.State().Configured / 60)

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Countdown length (minutes)").
				CharLimit(3).
				Value(&m.minutes).
				Validate(func(s string) error {
					_, err := parseMinutes(s)
					return err
				}),
		),
	).WithShowHelp(false)

	return m.form.Init()
}

func parseMinutes(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 || n > 720 {
		return 0, errInvalidMinutes
	}

	return n, nil
}

// applyForm resets the countdown to the minutes entered in the form.
func (m *Model) applyForm() {
	m.form = nil

	mins, err := parseMinutes(m.minutes)
	if err != nil {
		m.err = err
		return
	}

	_, m.err = m.machine.Reset(mins * 60)
}

func (m *Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case msg.String() == "ctrl+c":
			return m, m.quit()
		case key.Matches(msg, m.keys.Cancel):
			m.form = nil
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.applyForm()
		return m, nil
	case huh.StateAborted:
		m.form = nil
		return m, nil
	}

	return m, cmd
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pulseMsg:
		m.sched.Deliver(timer.Pulse(msg))

		return m, tea.Batch(m.waitForPulse(), m.signalFinish())

	case finishedMsg:
		if msg.err != nil {
			m.err = msg.err
		}

		return m, nil

	case tea.WindowSizeMsg:
		m.progress.Width = min(msg.Width-padding*2-4, maxWidth)
		m.help.Width = msg.Width

		if m.form != nil {
			return m.updateForm(msg)
		}

		return m, nil
	}

	m.log.Debug("tea message", slog.String("msg", spew.Sdump(msg)))

	if m.form != nil {
		return m.updateForm(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m, m.quit()

	case key.Matches(keyMsg, m.keys.Toggle):
		m.toggle()

	case key.Matches(keyMsg, m.keys.Reset):
		m.reset()

	case key.Matches(keyMsg, m.keys.Customise):
		return m, m.openForm()
	}

	return m, nil
}
