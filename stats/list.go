package stats

import (
	"fmt"
	"io"

	"github.com/ayoisaiah/pomo/internal/models"
	"github.com/ayoisaiah/pomo/internal/timeutil"
	"github.com/ayoisaiah/pomo/internal/ui"
)

func printSessionsTable(w io.Writer, sessions []*models.Session, hour24 bool) {
	layout := "Jan 02, 2006 03:04 PM"
	if hour24 {
		layout = "Jan 02, 2006 15:04"
	}

	data := [][]string{
		{"#", "START", "END", "FOCUSED", "STATUS"},
	}

	for i, sess := range sessions {
		statusText := ui.Green("completed")
		if !sess.Completed {
			statusText = ui.Red("abandoned")
		}

		data = append(data, []string{
			fmt.Sprintf("%d", i+1),
			sess.StartTime.Format(layout),
			sess.EndTime.Format(layout),
			timeutil.FormatDuration(sess.Elapsed),
			statusText,
		})
	}

	ui.PrintTable(data, w)
}
