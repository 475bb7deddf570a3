// Package session turns countdown transitions into history records
package session

import (
	"log/slog"
	"time"

	"github.com/ayoisaiah/pomo/internal/models"
	"github.com/ayoisaiah/pomo/timer"
)

// checkpointInterval is how often, in counted seconds, an open run is saved
// so that it survives a crash.
const checkpointInterval = 60

// Recorder saves sessions.
type Recorder interface {
	UpdateSession(sess *models.Session) error
}

// Tracker records each run of the countdown, from the moment it starts
// until it is stopped or finishes.
type Tracker struct {
	db             Recorder
	now            func() time.Time
	log            *slog.Logger
	current        *models.Session
	startRemaining int
}

// NewTracker creates a tracker that saves runs to db.
func NewTracker(db Recorder, log *slog.Logger) *Tracker {
	if log == nil {
		log = slog.Default()
	}

	return &Tracker{
		db:  db,
		now: time.Now,
		log: log,
	}
}

// Current returns the run in progress, if any.
func (t *Tracker) Current() *models.Session {
	return t.current
}

// Observe is a timer.Observer.
func (t *Tracker) Observe(prev, cur timer.State) {
	wasRunning := prev.Phase == timer.Running
	isRunning := cur.Phase == timer.Running

	switch {
	case !wasRunning && isRunning:
		now := t.now()

		t.current = &models.Session{
			StartTime:  now,
			EndTime:    now,
			Configured: cur.Configured,
		}
		t.startRemaining = cur.Remaining

	case wasRunning && isRunning:
		if t.current == nil {
			return
		}

		t.current.Elapsed = t.startRemaining - cur.Remaining

		if t.current.Elapsed%checkpointInterval == 0 {
			t.current.EndTime = t.now()
			t.save(t.current)
		}

	case wasRunning && !isRunning:
		if t.current == nil {
			return
		}

		t.current.Elapsed = t.startRemaining - prev.Remaining
		if cur.Phase == timer.Finished {
			t.current.Elapsed = t.startRemaining
			t.current.Completed = true
		}

		t.current.EndTime = t.now()
		t.save(t.current)

		t.current = nil
	}
}

func (t *Tracker) save(sess *models.Session) {
	err := t.db.UpdateSession(sess)
	if err != nil {
		t.log.Error(
			"unable to save session",
			slog.Time("start_time", sess.StartTime),
			slog.Any("error", err),
		)
	}
}
