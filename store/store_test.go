package store

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/pomo/internal/models"
)

func newTestClient(t *testing.T) (*Client, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "pomo.db")

	c, err := NewClient(path)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = c.Close()
	})

	return c, path
}

func session(start time.Time, elapsed int, completed bool) *models.Session {
	return &models.Session{
		StartTime:  start,
		EndTime:    start.Add(time.Duration(elapsed) * time.Second),
		Configured: 1500,
		Elapsed:    elapsed,
		Completed:  completed,
	}
}

func TestGetSessions(t *testing.T) {
	c, _ := newTestClient(t)

	day := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)

	sessions := []*models.Session{
		// starts the day before and ends inside the range
		session(day.Add(-10*time.Minute), 1500, true),
		session(day.Add(9*time.Hour), 1500, true),
		session(day.Add(11*time.Hour), 600, false),
		// after the range
		session(day.Add(30*time.Hour), 1500, true),
	}

	for _, s := range sessions {
		require.NoError(t, c.UpdateSession(s))
	}

	got, err := c.GetSessions(day, day.Add(24*time.Hour-time.Second))
	require.NoError(t, err)

	require.Len(t, got, 3)

	for i := range got {
		assert.True(t, sessions[i].StartTime.Equal(got[i].StartTime))
		assert.Equal(t, sessions[i].Elapsed, got[i].Elapsed)
		assert.Equal(t, sessions[i].Completed, got[i].Completed)
	}

	// a session that ended before the range is excluded
	got, err = c.GetSessions(day.Add(10*time.Hour), day.Add(12*time.Hour))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 600, got[0].Elapsed)
}

func TestUpdateSessionOverwrites(t *testing.T) {
	c, _ := newTestClient(t)

	start := time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC)

	require.NoError(t, c.UpdateSession(session(start, 60, false)))
	require.NoError(t, c.UpdateSession(session(start, 1500, true)))

	got, err := c.GetSessions(time.Time{}, start.Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].Completed)
}

func TestDeleteSessions(t *testing.T) {
	c, _ := newTestClient(t)

	start := time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC)
	s := session(start, 60, false)

	require.NoError(t, c.UpdateSession(s))
	require.NoError(t, c.DeleteSessions([]*models.Session{s}))

	got, err := c.GetSessions(time.Time{}, start.Add(time.Hour))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSingleInstance(t *testing.T) {
	c, path := newTestClient(t)

	inUse, err := InUse(path)
	require.NoError(t, err)
	assert.True(t, inUse)

	_, err = NewClient(path)
	assert.True(t, errors.Is(err, errPomoRunning))

	require.NoError(t, c.Close())

	inUse, err = InUse(path)
	require.NoError(t, err)
	assert.False(t, inUse)
}
