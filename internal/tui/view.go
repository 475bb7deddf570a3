package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"

	"github.com/ayoisaiah/pomo/internal/timeutil"
	"github.com/ayoisaiah/pomo/timer"
)

func (m *Model) statusView(st timer.State) string {
	timeFormat := "03:04 PM"
	if m.hour24 {
		timeFormat = "15:04"
	}

	switch st.Phase {
	case timer.Running:
		end := m.now().Add(time.Duration(st.Remaining) * time.Second)

		return m.styles.Running.Render("RUNNING") +
			m.styles.Hint.Render("until "+end.Format(timeFormat))
	case timer.Finished:
		return m.styles.Finished.Render("FINISHED") +
			m.styles.Hint.Render("time is up, press r to go again")
	}

	label := "READY"
	if st.Remaining < st.Configured {
		label = "PAUSED"
	}

	return m.styles.Paused.Render(label) +
		m.styles.Hint.Render(timeutil.FormatDuration(st.Configured)+" countdown")
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	st := m.machine.State()

	var s strings.Builder

	s.WriteString(m.statusView(st))
	s.WriteString("\n\n")
	s.WriteString(m.styles.Main.Render(timeutil.FormatClock(st.Remaining)))
	s.WriteString("\n\n")

	percent := 1.0
	if st.Configured > 0 {
		percent = 1 - float64(st.Remaining)/float64(st.Configured)
	}

	s.WriteString(m.progress.ViewAs(percent))

	if m.form != nil {
		s.WriteString("\n\n" + m.form.View())
		s.WriteString("\n" + m.help.ShortHelpView(
			[]key.Binding{m.keys.Cancel},
		))
	} else {
		s.WriteString("\n\n" + m.help.View(m.keys))
	}

	if m.err != nil {
		s.WriteString("\n\n" + m.styles.Error.Render(m.err.Error()))
	}

	return m.styles.Base.Render(s.String())
}
