// Package timer models the countdown: the state machine that owns the
// remaining time and the scheduler that drives it one second at a time
package timer

import (
	"log/slog"
)

// DefaultSeconds is the duration of a countdown when none is configured.
const DefaultSeconds = 1500

// Phase is the discrete mode of the countdown.
type Phase int

const (
	Idle Phase = iota
	Running
	Finished
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Finished:
		return "finished"
	}

	return "unknown"
}

// State is a snapshot of the countdown.
type State struct {
	Phase      Phase `json:"phase"`
	Remaining  int   `json:"remaining"`
	Configured int   `json:"configured"`
}

// AlertSink plays the audible signal while the countdown is running.
// Implementations must return promptly; failures are theirs to handle.
type AlertSink interface {
	Start()
	Stop()
}

// Scheduler delivers one callback per elapsed period while active.
type Scheduler interface {
	Activate(fn func()) error
	Deactivate()
}

// Observer is notified after every change to the countdown state.
type Observer func(prev, cur State)

// Option configures a Machine.
type Option func(*Machine)

// WithSeconds sets the initial duration. Non-positive values are ignored.
func WithSeconds(seconds int) Option {
	return func(m *Machine) {
		if seconds > 0 {
			m.state.Configured = seconds
			m.state.Remaining = seconds
		}
	}
}

// WithObserver registers fn to be called after each state change.
func WithObserver(fn Observer) Option {
	return func(m *Machine) {
		m.observers = append(m.observers, fn)
	}
}

// WithLogger sets the logger used to trace transitions.
func WithLogger(l *slog.Logger) Option {
	return func(m *Machine) {
		if l != nil {
			m.log = l
		}
	}
}

// Machine is the authoritative countdown state. It is not safe for
// concurrent use: commands and ticks must all be issued from the goroutine
// that owns it.
type Machine struct {
	sched     Scheduler
	alert     AlertSink
	log       *slog.Logger
	observers []Observer
	state     State
}

type silentAlert struct{}

func (silentAlert) Start() {}

func (silentAlert) Stop() {}

// New creates an idle machine driven by sched that signals through alert.
// A nil alert is silent.
func New(sched Scheduler, alert AlertSink, opts ...Option) *Machine {
	if alert == nil {
		alert = silentAlert{}
	}

	m := &Machine{
		sched: sched,
		alert: alert,
		log:   slog.Default(),
		state: State{
			Phase:      Idle,
			Remaining:  DefaultSeconds,
			Configured: DefaultSeconds,
		},
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

func (m *Machine) commit(next State) {
	prev := m.state
	m.state = next

	m.log.Debug(
		"timer state changed",
		slog.String("from", prev.Phase.String()),
		slog.String("to", next.Phase.String()),
		slog.Int("remaining", next.Remaining),
		slog.Int("configured", next.Configured),
	)

	for _, fn := range m.observers {
		fn(prev, next)
	}
}

// Start begins counting down from the remaining time. Starting a running
// timer does nothing. A finished timer must be reset before it can start
// again.
func (m *Machine) Start() (State, error) {
	switch m.state.Phase {
	case Running:
		return m.state, nil
	case Finished:
		return m.state, ErrInvalidTransition.Fmt("start", Finished)
	}

	if m.state.Remaining <= 0 {
		return m.state, ErrInvalidTransition.Fmt("start", "out of time")
	}

	err := m.sched.Activate(m.Tick)
	if err != nil {
		return m.state, err
	}

	next := m.state
	next.Phase = Running

	m.alert.Start()
	m.commit(next)

	return m.state, nil
}

// Stop pauses a running countdown, keeping the remaining time. Stopping a
// timer that is not running does nothing.
func (m *Machine) Stop() State {
	if m.state.Phase != Running {
		return m.state
	}

	m.sched.Deactivate()
	m.alert.Stop()

	next := m.state
	next.Phase = Idle

	m.commit(next)

	return m.state
}

// Configure changes the duration of the countdown. When the timer is not
// running the remaining time is updated immediately. The phase is left as
// it is, so a finished timer stays finished until it is reset.
func (m *Machine) Configure(seconds int) (State, error) {
	if seconds <= 0 {
		return m.state, ErrInvalidArgument.Fmt(seconds)
	}

	if m.state.Phase == Running {
		return m.state, ErrInvalidTransition.Fmt("configure", Running)
	}

	next := m.state
	next.Configured = seconds
	next.Remaining = seconds

	m.commit(next)

	return m.state, nil
}

// Reset stops the countdown if it is running and returns it to idle with
// the given duration.
func (m *Machine) Reset(seconds int) (State, error) {
	if seconds <= 0 {
		return m.state, ErrInvalidArgument.Fmt(seconds)
	}

	m.Stop()

	m.commit(State{
		Phase:      Idle,
		Remaining:  seconds,
		Configured: seconds,
	})

	return m.state, nil
}

// Tick consumes one elapsed second. It is a no-op unless the timer is
// running, which guards against a tick that raced a stop.
func (m *Machine) Tick() {
	if m.state.Phase != Running {
		return
	}

	next := m.state
	next.Remaining--

	if next.Remaining > 0 {
		m.commit(next)
		return
	}

	next.Remaining = 0
	next.Phase = Finished

	m.sched.Deactivate()
	m.alert.Stop()
	m.commit(next)
}
