package timer

import (
	"time"
)

// DefaultPeriod is the interval between ticks.
const DefaultPeriod = time.Second

// Pulse is a tick emitted by a TickScheduler. It must be handed back to the
// scheduler with Deliver on the goroutine that owns the callback.
type Pulse struct {
	At         time.Time
	activation uint64
}

// SchedulerOption configures a TickScheduler.
type SchedulerOption func(*TickScheduler)

// WithClock replaces the wall clock.
func WithClock(c Clock) SchedulerOption {
	return func(s *TickScheduler) {
		s.clock = c
	}
}

// WithPeriod sets the tick interval.
func WithPeriod(d time.Duration) SchedulerOption {
	return func(s *TickScheduler) {
		if d > 0 {
			s.period = d
		}
	}
}

// TickScheduler emits one pulse per elapsed period while active.
//
// Pulses are produced on a background goroutine and passed to post, which
// must forward them to the owner goroutine. The owner calls Deliver to run
// the callback. Deliver drops pulses from an earlier activation, so once
// Deactivate returns no callback of that activation can run.
//
// Deadlines are measured from the activation instant rather than from the
// previous pulse, and a late wake-up emits every pulse that has fallen due,
// so jitter does not accumulate into drift.
//
// Activate, Deactivate and Deliver must be called from the owner goroutine.
type TickScheduler struct {
	clock      Clock
	post       func(Pulse)
	fn         func()
	stop       chan struct{}
	period     time.Duration
	activation uint64
	active     bool
}

// NewTickScheduler creates an inactive scheduler that hands pulses to post.
func NewTickScheduler(post func(Pulse), opts ...SchedulerOption) *TickScheduler {
	s := &TickScheduler{
		clock:  RealClock{},
		period: DefaultPeriod,
		post:   post,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Active reports whether the scheduler is delivering ticks.
func (s *TickScheduler) Active() bool {
	return s.active
}

// Activate starts delivering ticks to fn. The first tick is due one full
// period after activation.
func (s *TickScheduler) Activate(fn func()) error {
	if s.active {
		return ErrAlreadyActive
	}

	s.activation++
	s.active = true
	s.fn = fn
	s.stop = make(chan struct{})

	go s.run(s.activation, s.clock.Now(), s.stop)

	return nil
}

// Deactivate cancels all pending and future ticks. It does nothing if the
// scheduler is not active.
func (s *TickScheduler) Deactivate() {
	if !s.active {
		return
	}

	s.active = false
	s.fn = nil

	close(s.stop)
}

// Deliver runs the callback for p if p belongs to the current activation
// and reports whether it did.
func (s *TickScheduler) Deliver(p Pulse) bool {
	if !s.active || p.activation != s.activation {
		return false
	}

	s.fn()

	return true
}

// run emits pulses for one activation until stop is closed. Apart from its
// arguments it only reads fields that are fixed at construction.
func (s *TickScheduler) run(activation uint64, start time.Time, stop <-chan struct{}) {
	var sent int64

	for {
		deadline := start.Add(time.Duration(sent+1) * s.period)

		wait := deadline.Sub(s.clock.Now())
		if wait > 0 {
			t := s.clock.NewTimer(wait)

			select {
			case <-stop:
				t.Stop()
				return
			case <-t.C():
			}
		}

		due := int64(s.clock.Since(start) / s.period)

		for ; sent < due; sent++ {
			select {
			case <-stop:
				return
			default:
			}

			s.post(Pulse{
				At:         start.Add(time.Duration(sent+1) * s.period),
				activation: activation,
			})
		}
	}
}
