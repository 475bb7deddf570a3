// Package store connects to the history database and manages saved sessions
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/pomo/internal/apperr"
	"github.com/ayoisaiah/pomo/internal/models"
	"github.com/ayoisaiah/pomo/internal/timeutil"
)

const sessionBucket = "sessions"

var errPomoRunning = &apperr.Error{
	Message: "is pomo already running? Only one instance can be active at a time",
}

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
}

var _ DB = (*Client)(nil)

// UpdateSession saves sess under its start time.
func (c *Client) UpdateSession(sess *models.Session) error {
	value, err := json.Marshal(sess)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(sessionBucket)).Put(
			timeutil.ToKey(sess.StartTime),
			value,
		)
	})
}

// DeleteSessions removes the given sessions.
func (c *Client) DeleteSessions(sessions []*models.Session) error {
	return c.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(sessionBucket))

		for _, sess := range sessions {
			err := b.Delete(timeutil.ToKey(sess.StartTime))
			if err != nil {
				return err
			}
		}

		return nil
	})
}

// GetSessions returns the sessions that started within the range, plus the
// one before it if that session ended inside the range.
func (c *Client) GetSessions(
	startTime, endTime time.Time,
) ([]*models.Session, error) {
	var sessions []*models.Session

	err := c.View(func(tx *bolt.Tx) error {
		cur := tx.Bucket([]byte(sessionBucket)).Cursor()

		minKey := timeutil.ToKey(startTime)
		maxKey := timeutil.ToKey(endTime)

		sk, sv := cur.Seek(minKey)

		// the previous session may have ended inside the time range
		pk, pv := cur.Prev()
		if pk != nil {
			var prev models.Session

			err := json.Unmarshal(pv, &prev)
			if err != nil {
				return err
			}

			if prev.EndTime.After(startTime) {
				sk, sv = pk, pv
			} else {
				sk, sv = cur.Next()
			}
		} else {
			sk, sv = cur.Seek(minKey)
		}

		for k, v := sk, sv; k != nil && bytes.Compare(k, maxKey) <= 0; k, v = cur.Next() {
			sess := &models.Session{}

			err := json.Unmarshal(v, sess)
			if err != nil {
				return err
			}

			sessions = append(sessions, sess)
		}

		return nil
	})

	return sessions, err
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string, timeout time.Duration) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: timeout},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrDatabaseOpen) ||
			errors.Is(err, bolt.ErrTimeout) {
			return nil, errPomoRunning
		}

		return nil, err
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection. The database stays
// locked until the client is closed.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath, 1*time.Second)
	if err != nil {
		return nil, err
	}

	// Create the necessary buckets for storing data if they do not exist already
	err = db.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists([]byte(sessionBucket))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Client{
		db,
	}, nil
}

// InUse reports whether another process holds the database at dbPath.
func InUse(dbPath string) (bool, error) {
	db, err := openDB(dbPath, 100*time.Millisecond)
	if err == nil {
		return false, db.Close()
	}

	if errors.Is(err, errPomoRunning) {
		return true, nil
	}

	return false, err
}
