package timer

import (
	"sync"
	"time"
)

// manualScheduler fires ticks only when told to.
type manualScheduler struct {
	fn            func()
	activations   int
	deactivations int
	active        bool
}

func (s *manualScheduler) Activate(fn func()) error {
	if s.active {
		return ErrAlreadyActive
	}

	s.active = true
	s.fn = fn
	s.activations++

	return nil
}

func (s *manualScheduler) Deactivate() {
	if !s.active {
		return
	}

	s.active = false
	s.fn = nil
	s.deactivations++
}

func (s *manualScheduler) fire() bool {
	if !s.active {
		return false
	}

	s.fn()

	return true
}

// recordingAlert records the calls made to it.
type recordingAlert struct {
	calls   []string
	playing bool
}

func (a *recordingAlert) Start() {
	a.calls = append(a.calls, "start")
	a.playing = true
}

func (a *recordingAlert) Stop() {
	a.calls = append(a.calls, "stop")
	a.playing = false
}

func (a *recordingAlert) count(call string) int {
	var n int

	for _, c := range a.calls {
		if c == call {
			n++
		}
	}

	return n
}

// fakeClock only moves when advanced.
type fakeClock struct {
	now    time.Time
	timers []*fakeTimer
	mu     sync.Mutex
}

type fakeTimer struct {
	clock    *fakeClock
	ch       chan time.Time
	deadline time.Time
	stopped  bool
}

func newFakeClock() *fakeClock {
	return &fakeClock{
		now: time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fakeClock) Since(t time.Time) time.Duration {
	return c.Now().Sub(t)
}

func (c *fakeClock) NewTimer(d time.Duration) ClockTimer {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := &fakeTimer{
		clock:    c,
		ch:       make(chan time.Time, 1),
		deadline: c.now.Add(d),
	}

	if d <= 0 {
		t.ch <- c.now
		return t
	}

	c.timers = append(c.timers, t)

	return t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)

	pending := c.timers[:0]

	for _, t := range c.timers {
		if t.stopped {
			continue
		}

		if !t.deadline.After(c.now) {
			t.ch <- c.now
			continue
		}

		pending = append(pending, t)
	}

	c.timers = pending
}

func (t *fakeTimer) C() <-chan time.Time {
	return t.ch
}

func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()

	wasActive := !t.stopped
	t.stopped = true

	return wasActive
}
