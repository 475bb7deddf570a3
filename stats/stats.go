// Package stats reports pomo history
package stats

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/pomo/internal/models"
	"github.com/ayoisaiah/pomo/internal/timeutil"
	"github.com/ayoisaiah/pomo/internal/ui"
)

const (
	barChartChar  = "▇"
	noSessionsMsg = "No sessions found for the specified time range"
	dayLayout     = "2006-01-02"
	// breakdowns over longer ranges only list days with activity
	maxFilledDays = 31
)

// Day is the focused time on a single calendar day.
type Day struct {
	Date    string `json:"date"`
	Seconds int    `json:"seconds"`
}

// Summary aggregates the sessions in a reporting period.
type Summary struct {
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Runs      int       `json:"runs"`
	Completed int       `json:"completed"`
	Abandoned int       `json:"abandoned"`
	// Focused is the number of seconds counted down within the period
	Focused int   `json:"focused"`
	Daily   []Day `json:"daily"`
}

// Opts controls how history is reported.
type Opts struct {
	StartTime time.Time
	EndTime   time.Time
	Stdout    io.Writer
	JSON      bool
	Hour24    bool
}

// focusedWithin returns the seconds of sess that fall inside the range.
// Counting is assumed to have been continuous from the start of the run.
func focusedWithin(sess *models.Session, start, end time.Time) int {
	elapsed := sess.Elapsed

	if !start.IsZero() && sess.StartTime.Before(start) {
		elapsed -= int(start.Sub(sess.StartTime).Seconds())
	}

	runEnd := sess.StartTime.Add(time.Duration(sess.Elapsed) * time.Second)
	if !end.IsZero() && runEnd.After(end) {
		elapsed -= int(runEnd.Sub(end).Seconds())
	}

	return max(elapsed, 0)
}

// filterSessions ensures that sessions with an invalid end date are ignored.
func filterSessions(sessions []*models.Session) []*models.Session {
	filtered := make([]*models.Session, 0, len(sessions))

	for _, sess := range sessions {
		if sess.EndTime.IsZero() || sess.EndTime.Before(sess.StartTime) {
			continue
		}

		filtered = append(filtered, sess)
	}

	return filtered
}

// Compute summarises the sessions between start and end. A zero start
// begins the period on the day of the first session.
func Compute(sessions []*models.Session, start, end time.Time) Summary {
	sessions = filterSessions(sessions)

	if start.IsZero() && len(sessions) > 0 {
		start = timeutil.RoundToStart(sessions[0].StartTime)
	}

	s := Summary{
		StartTime: start,
		EndTime:   end,
	}

	totals := make(map[string]int)

	for _, sess := range sessions {
		focused := focusedWithin(sess, start, end)
		if focused == 0 {
			continue
		}

		s.Runs++
		s.Focused += focused

		if sess.Completed {
			s.Completed++
		} else {
			s.Abandoned++
		}

		day := sess.StartTime
		if day.Before(start) {
			day = start
		}

		totals[day.Format(dayLayout)] += focused
	}

	s.Daily = breakdown(totals, start, end)

	return s
}

func breakdown(totals map[string]int, start, end time.Time) []Day {
	var days []Day

	if start.IsZero() || end.IsZero() {
		return days
	}

	fill := end.Sub(start) <= maxFilledDays*24*time.Hour

	for date := timeutil.RoundToStart(start); !date.After(end); date = date.AddDate(0, 0, 1) {
		key := date.Format(dayLayout)

		secs, ok := totals[key]
		if !ok && !fill {
			continue
		}

		days = append(days, Day{Date: key, Seconds: secs})
	}

	return days
}

func getSummary(s *Summary) string {
	header := fmt.Sprintf("%s\n", ui.Blue("Summary"))

	timeLogged := fmt.Sprintf(
		"Time focused: %s\n",
		ui.Green(timeutil.FormatDuration(s.Focused)),
	)

	completed := fmt.Sprintln("Sessions completed:", ui.Green(s.Completed))

	abandoned := fmt.Sprintln("Sessions abandoned:", ui.Green(s.Abandoned))

	return header + timeLogged + completed + abandoned
}

func getBarChart(days []Day) string {
	if len(days) < 2 {
		return ""
	}

	header := ui.Blue("\nDaily breakdown (minutes)")

	bars := make(pterm.Bars, 0, len(days))

	for _, d := range days {
		date, _ := time.Parse(dayLayout, d.Date)

		bars = append(bars, pterm.Bar{
			Value: timeutil.Round(float64(d.Seconds) / 60),
			Label: date.Format("Jan 02, 2006"),
		})
	}

	chart, err := pterm.DefaultBarChart.WithHorizontalBarCharacter(barChartChar).
		WithHorizontal().
		WithShowValue().
		WithBars(bars).
		Srender()
	if err != nil {
		pterm.Error.Println(err)
		return ""
	}

	return header + "\n" + chart
}

func reportingPeriod(s *Summary) string {
	start := "the beginning"
	if !s.StartTime.IsZero() {
		start = s.StartTime.Format("January 02, 2006")
	}

	return "Reporting period: " + start + " - " + s.EndTime.Format(
		"January 02, 2006",
	)
}

// Show prints the sessions in the reporting period followed by a summary.
func Show(sessions []*models.Session, opts *Opts) error {
	s := Compute(sessions, opts.StartTime, opts.EndTime)

	if opts.JSON {
		enc := json.NewEncoder(opts.Stdout)
		enc.SetIndent("", "  ")

		return enc.Encode(struct {
			Summary  Summary           `json:"summary"`
			Sessions []*models.Session `json:"sessions"`
		}{s, filterSessions(sessions)})
	}

	if s.Runs == 0 {
		pterm.Info.Println(noSessionsMsg)
		return nil
	}

	header := pterm.DefaultHeader.WithBackgroundStyle(pterm.NewStyle(pterm.BgYellow)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Sprintln(reportingPeriod(&s))

	fmt.Fprintln(opts.Stdout, header)

	printSessionsTable(opts.Stdout, filterSessions(sessions), opts.Hour24)

	output := fmt.Sprint(getSummary(&s), getBarChart(s.Daily))

	fmt.Fprintln(opts.Stdout, strings.TrimSpace(output))

	return nil
}
