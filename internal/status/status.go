// Package status shares the state of a running countdown with other
// processes through a small JSON file
package status

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ayoisaiah/pomo/internal/osutil"
	"github.com/ayoisaiah/pomo/internal/timeutil"
	"github.com/ayoisaiah/pomo/store"
	"github.com/ayoisaiah/pomo/timer"
)

// Status is the content of the status file. While running, the remaining
// time is derived from EndTime so the file need not be rewritten every
// second.
type Status struct {
	EndTime    time.Time `json:"end_time,omitempty"`
	Phase      string    `json:"phase"`
	Remaining  int       `json:"remaining"`
	Configured int       `json:"configured"`
}

// RemainingAt returns the seconds left on the countdown at now.
func (s *Status) RemainingAt(now time.Time) int {
	if s.Phase != timer.Running.String() || s.EndTime.IsZero() {
		return s.Remaining
	}

	secs := int(s.EndTime.Sub(now).Round(time.Second).Seconds())

	return max(secs, 0)
}

// Format renders the status as "[Running] 24:59".
func (s *Status) Format(now time.Time) string {
	label := s.Phase
	if label != "" {
		label = strings.ToUpper(label[:1]) + label[1:]
	}

	return fmt.Sprintf("[%s] %s", label, timeutil.FormatClock(s.RemainingAt(now)))
}

// Writer keeps the status file in sync with the countdown.
type Writer struct {
	now  func() time.Time
	log  *slog.Logger
	path string
}

// NewWriter creates a writer for the status file at path.
func NewWriter(path string, log *slog.Logger) *Writer {
	if log == nil {
		log = slog.Default()
	}

	return &Writer{
		path: path,
		now:  time.Now,
		log:  log,
	}
}

// Observe is a timer.Observer. Ticks of a running countdown are skipped.
func (w *Writer) Observe(prev, cur timer.State) {
	if prev.Phase == timer.Running && cur.Phase == timer.Running {
		return
	}

	err := w.Write(cur)
	if err != nil {
		w.log.Error("unable to write status file", slog.Any("error", err))
	}
}

// Write replaces the status file with st.
func (w *Writer) Write(st timer.State) error {
	s := Status{
		Phase:      st.Phase.String(),
		Remaining:  st.Remaining,
		Configured: st.Configured,
	}

	if st.Phase == timer.Running {
		s.EndTime = w.now().Add(time.Duration(st.Remaining) * time.Second)
	}

	b, err := json.Marshal(s)
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(w.path), osutil.DirPermission)
	if err != nil {
		return err
	}

	// write then rename so readers never see a partial file
	tmp := w.path + ".tmp"

	err = os.WriteFile(tmp, b, osutil.FilePermission)
	if err != nil {
		return err
	}

	return os.Rename(tmp, w.path)
}

// Remove deletes the status file. A missing file is not an error.
func (w *Writer) Remove() error {
	err := os.Remove(w.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return err
}

// Read loads the status file at path.
func Read(path string) (*Status, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var s Status

	err = json.Unmarshal(b, &s)
	if err != nil {
		return nil, fmt.Errorf("unable to parse status file: %w", err)
	}

	return &s, nil
}

// Report prints the status of the countdown in another pomo process. Nothing
// is printed when pomo isn't running.
func Report(out io.Writer, dbPath, statusPath string) error {
	running, err := store.InUse(dbPath)
	if err != nil {
		return err
	}

	if !running {
		return nil
	}

	s, err := Read(statusPath)
	if err != nil {
		// missing file should not return an error
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		return err
	}

	_, err = fmt.Fprintln(out, s.Format(time.Now()))

	return err
}
