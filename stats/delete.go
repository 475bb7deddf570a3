package stats

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/pomo/internal/models"
)

// Deleter removes saved sessions.
type Deleter interface {
	DeleteSessions(sessions []*models.Session) error
}

// DeleteOpts controls the confirmation before sessions are deleted.
type DeleteOpts struct {
	// StartTime excludes sessions that started earlier, even if they ended
	// inside the range. A zero value keeps every session.
	StartTime time.Time
	Stdin     io.Reader
	Stdout    io.Writer
	Hour24    bool
	// Yes skips the confirmation prompt
	Yes bool
}

// startedFrom returns the sessions that did not start before start.
func startedFrom(sessions []*models.Session, start time.Time) []*models.Session {
	if start.IsZero() {
		return sessions
	}

	filtered := make([]*models.Session, 0, len(sessions))

	for _, sess := range sessions {
		if sess.StartTime.Before(start) {
			continue
		}

		filtered = append(filtered, sess)
	}

	return filtered
}

// Delete removes the given sessions after the user confirms. It returns
// the number of sessions deleted.
func Delete(db Deleter, sessions []*models.Session, opts *DeleteOpts) (int, error) {
	sessions = startedFrom(sessions, opts.StartTime)

	if len(sessions) == 0 {
		pterm.Info.Println(noSessionsMsg)
		return 0, nil
	}

	printSessionsTable(opts.Stdout, sessions, opts.Hour24)

	if !opts.Yes {
		fmt.Fprint(opts.Stdout, pterm.Warning.Sprint(
			"The above sessions will be deleted permanently. Type 'y' and press ENTER to proceed: ",
		))

		answer, err := bufio.NewReader(opts.Stdin).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return 0, err
		}

		if !strings.EqualFold(strings.TrimSpace(answer), "y") {
			return 0, nil
		}
	}

	err := db.DeleteSessions(sessions)
	if err != nil {
		return 0, err
	}

	return len(sessions), nil
}
