package store

import (
	"time"

	"github.com/ayoisaiah/pomo/internal/models"
)

// DB is the database storage interface.
type DB interface {
	// GetSessions returns saved sessions that overlap the given time range
	GetSessions(startTime, endTime time.Time) ([]*models.Session, error)
	// UpdateSession saves a session. The session is created if it doesn't
	// exist already, or overwritten if it does.
	UpdateSession(sess *models.Session) error
	// DeleteSessions deletes one or more saved sessions
	DeleteSessions(sessions []*models.Session) error
	// Close ends the database connection
	Close() error
}
