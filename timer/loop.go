package timer

import "context"

// Loop runs posted functions one at a time on the goroutine that calls
// Run. It gives a Machine a single owner outside of a terminal UI.
type Loop struct {
	queue chan func()
}

// NewLoop creates a loop that buffers up to size pending functions.
func NewLoop(size int) *Loop {
	return &Loop{
		queue: make(chan func(), size),
	}
}

// Post schedules fn to run on the loop. It blocks while the buffer is full
// and reports false if ctx is done first.
func (l *Loop) Post(ctx context.Context, fn func()) bool {
	select {
	case l.queue <- fn:
		return true
	case <-ctx.Done():
		return false
	}
}

// Run executes posted functions until ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-l.queue:
			fn()
		}
	}
}
