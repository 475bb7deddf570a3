// Package timeutil provides utility functions and types for working with
// time-related operations.
package timeutil

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"
)

const secondsInAMinute = 60

// Period is a named range of days used to filter history.
type Period string

const (
	PeriodAllTime   Period = "all-time"
	PeriodToday     Period = "today"
	PeriodYesterday Period = "yesterday"
	Period7Days     Period = "7days"
	Period30Days    Period = "30days"
	Period365Days   Period = "365days"
)

// Range maps a period to the day offset of its first day.
var Range = map[Period]int{
	PeriodAllTime:   0,
	PeriodToday:     0,
	PeriodYesterday: -1,
	Period7Days:     -6,
	Period30Days:    -29,
	Period365Days:   -364,
}

var PeriodCollection = []Period{
	PeriodAllTime,
	PeriodToday,
	PeriodYesterday,
	Period7Days,
	Period30Days,
	Period365Days,
}

// Round rounds a time value in seconds, minutes, or hours to the nearest integer.
func Round(t float64) int {
	return int(math.Round(t))
}

// SecsToMinsAndSecs splits a number of seconds into whole minutes and the
// seconds left over. Negative values are treated as zero.
func SecsToMinsAndSecs(secs int) (mins, rem int) {
	if secs < 0 {
		secs = 0
	}

	return secs / secondsInAMinute, secs % secondsInAMinute
}

// FormatClock renders a number of seconds as MM:SS. Minutes are not wrapped
// into hours, so 5400 seconds is "90:00".
func FormatClock(secs int) string {
	m, s := SecsToMinsAndSecs(secs)

	return fmt.Sprintf("%02d:%02d", m, s)
}

// FormatDuration renders seconds as a short human duration such as "1h 5m"
// or "45s".
func FormatDuration(secs int) string {
	d := time.Duration(secs) * time.Second

	hrs := int(d.Hours())
	mins := int(d.Minutes()) % secondsInAMinute
	s := secs % secondsInAMinute

	var parts []string

	if hrs > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hrs))
	}

	if mins > 0 {
		parts = append(parts, fmt.Sprintf("%dm", mins))
	}

	if s > 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%ds", s))
	}

	return strings.Join(parts, " ")
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// RoundToEnd resets the given time to the end of the day.
func RoundToEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}

// PeriodRange returns the start and end time of a period relative to now.
func PeriodRange(period Period, now time.Time) (start, end time.Time) {
	end = RoundToEnd(now)

	//nolint:exhaustive // other cases covered by default
	switch period {
	case PeriodAllTime:
		return time.Time{}, end
	case PeriodYesterday:
		start = RoundToStart(now.AddDate(0, 0, Range[period]))
		return start, RoundToEnd(start)
	default:
		return RoundToStart(now.AddDate(0, 0, Range[period])), end
	}
}

// FromStr parses a human date such as "2 hours ago" or "2024-03-01" relative
// to now.
func FromStr(s string, now time.Time) (time.Time, error) {
	cfg := &dateparser.Configuration{
		CurrentTime: now,
	}

	d, err := dateparser.Parse(cfg, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse %q as a date: %w", s, err)
	}

	return d.Time, nil
}

// keyLayout is fixed-width so that keys sort in time order.
const keyLayout = "2006-01-02T15:04:05.000000000Z"

// ToKey converts a time value to a database key for Bolt.
func ToKey(t time.Time) []byte {
	return []byte(t.UTC().Format(keyLayout))
}
