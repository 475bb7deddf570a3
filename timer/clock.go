package timer

import "time"

// Clock abstracts the wall clock so that schedulers can be tested
// deterministically.
type Clock interface {
	Now() time.Time
	Since(t time.Time) time.Duration
	NewTimer(d time.Duration) ClockTimer
}

// ClockTimer abstracts time.Timer.
type ClockTimer interface {
	C() <-chan time.Time
	Stop() bool
}

// RealClock is a Clock backed by the time package.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

func (RealClock) Since(t time.Time) time.Duration { return time.Since(t) }

func (RealClock) NewTimer(d time.Duration) ClockTimer {
	return &realTimer{inner: time.NewTimer(d)}
}

type realTimer struct {
	inner *time.Timer
}

func (t *realTimer) C() <-chan time.Time { return t.inner.C }

func (t *realTimer) Stop() bool { return t.inner.Stop() }
