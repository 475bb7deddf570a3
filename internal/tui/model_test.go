package tui

import (
	"errors"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/pomo/internal/testutil"
	"github.com/ayoisaiah/pomo/timer"
)

type goldenCase struct {
	GoldenFile string
	Snapshot   []byte
}

func (g goldenCase) Output() (out []byte, name string) {
	return g.Snapshot, g.GoldenFile
}

type recordingAlert struct {
	starts, stops int
}

func (a *recordingAlert) Start() { a.starts++ }

func (a *recordingAlert) Stop() { a.stops++ }

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var space = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}

func newTestModel(t *testing.T, seconds int, observers ...timer.Observer) (*Model, *recordingAlert) {
	t.Helper()

	alert := &recordingAlert{}

	m := New(&Options{
		Seconds:          seconds,
		Alert:            alert,
		Observers:        observers,
		SchedulerOptions: []timer.SchedulerOption{timer.WithPeriod(5 * time.Millisecond)},
	})

	t.Cleanup(func() { m.quit() })

	return m, alert
}

// nextPulse waits for the scheduler and feeds the pulse to Update.
func nextPulse(t *testing.T, m *Model) {
	t.Helper()

	msgs := make(chan tea.Msg, 1)

	go func() { msgs <- m.waitForPulse()() }()

	select {
	case msg := <-msgs:
		m.Update(msg)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a pulse")
	}
}

func TestToggle(t *testing.T) {
	m, alert := newTestModel(t, 3)

	m.Update(space)
	assert.Equal(t, timer.Running, m.Machine().State().Phase)
	assert.Equal(t, 1, alert.starts)

	m.Update(space)
	assert.Equal(t, timer.Idle, m.Machine().State().Phase)
	assert.Equal(t, 1, alert.stops)
	assert.NoError(t, m.err)
}

func TestPulsesCountDownToFinish(t *testing.T) {
	var transitions []timer.Phase

	m, alert := newTestModel(t, 3, func(_, cur timer.State) {
		transitions = append(transitions, cur.Phase)
	})

	m.Update(space)

	for m.Machine().State().Phase == timer.Running {
		nextPulse(t, m)
	}

	st := m.Machine().State()
	assert.Equal(t, timer.State{Phase: timer.Finished, Remaining: 0, Configured: 3}, st)
	assert.Equal(t, []timer.Phase{
		timer.Running, timer.Running, timer.Running, timer.Finished,
	}, transitions)
	assert.Equal(t, 1, alert.stops)
	assert.False(t, m.finished, "completion is signalled once")
	assert.Contains(t, m.View(), "00:00")
}

func TestStartWhenFinishedShowsError(t *testing.T) {
	m, _ := newTestModel(t, 1)

	m.Update(space)
	nextPulse(t, m)
	require.Equal(t, timer.Finished, m.Machine().State().Phase)

	m.Update(space)
	assert.True(t, errors.Is(m.err, timer.ErrInvalidTransition))
	assert.Equal(t, timer.Finished, m.Machine().State().Phase)

	m.Update(runes("r"))
	assert.NoError(t, m.err)
	assert.Equal(t, timer.State{Phase: timer.Idle, Remaining: 1, Configured: 1}, m.Machine().State())
}

func TestResetKey(t *testing.T) {
	m, alert := newTestModel(t, 60)

	m.Update(space)
	nextPulse(t, m)
	nextPulse(t, m)

	// a running countdown is not interrupted
	m.Update(runes("r"))
	assert.True(t, errors.Is(m.err, timer.ErrInvalidTransition))
	assert.Equal(t, timer.Running, m.Machine().State().Phase)
	assert.Zero(t, alert.stops)
	assert.Contains(t, m.View(), "cannot configure while the timer is running")

	m.Update(space)
	require.Equal(t, timer.Idle, m.Machine().State().Phase)
	require.Less(t, m.Machine().State().Remaining, 60)

	m.Update(runes("r"))
	assert.NoError(t, m.err)
	assert.Equal(t, timer.State{Phase: timer.Idle, Remaining: 60, Configured: 60}, m.Machine().State())
}

func TestQuitStopsRunningTimer(t *testing.T) {
	var last timer.State

	m, alert := newTestModel(t, 60, func(_, cur timer.State) { last = cur })

	m.Update(space)

	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	assert.Equal(t, timer.Idle, last.Phase)
	assert.Equal(t, 1, alert.stops)
	assert.Empty(t, m.View())
}

func TestCustomise(t *testing.T) {
	m, _ := newTestModel(t, 1500)

	m.Update(runes("c"))
	require.NotNil(t, m.form)
	assert.Equal(t, "25", m.minutes)

	m.minutes = "10"
	m.applyForm()

	assert.Nil(t, m.form)
	assert.Equal(t, timer.State{Phase: timer.Idle, Remaining: 600, Configured: 600}, m.Machine().State())
}

func TestCustomiseWhileRunningResets(t *testing.T) {
	m, alert := newTestModel(t, 1500)

	m.Update(space)
	m.Update(runes("c"))

	m.minutes = "5"
	m.applyForm()

	assert.Equal(t, timer.State{Phase: timer.Idle, Remaining: 300, Configured: 300}, m.Machine().State())
	assert.Equal(t, 1, alert.stops)
}

func TestCustomiseCancel(t *testing.T) {
	m, _ := newTestModel(t, 1500)

	m.Update(runes("c"))
	require.NotNil(t, m.form)

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, m.form)
	assert.Equal(t, 1500, m.Machine().State().Configured)

	// keys reach the timer again once the form is closed
	m.Update(space)
	assert.Equal(t, timer.Running, m.Machine().State().Phase)
}

func TestParseMinutes(t *testing.T) {
	testCases := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{input: "25", want: 25},
		{input: " 5 ", want: 5},
		{input: "720", want: 720},
		{input: "0", wantErr: true},
		{input: "-3", wantErr: true},
		{input: "721", wantErr: true},
		{input: "ten", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := parseMinutes(tc.input)
			if tc.wantErr {
				assert.ErrorIs(t, err, errInvalidMinutes)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSignalFinish(t *testing.T) {
	m, _ := newTestModel(t, 60)

	assert.Nil(t, m.signalFinish())

	m.finished = true

	cmd := m.signalFinish()
	require.NotNil(t, cmd)
	assert.Equal(t, finishedMsg{}, cmd())
	assert.Nil(t, m.signalFinish())
}

func TestView(t *testing.T) {
	m, _ := newTestModel(t, 1500)

	view := m.View()
	assert.Contains(t, view, "25:00")
	assert.Contains(t, view, "READY")

	m.Update(space)
	assert.Contains(t, m.View(), "RUNNING")

	m.Update(space)
	assert.Contains(t, m.View(), "READY", "no time has been counted yet")
}

func TestViewOutput(t *testing.T) {
	testutil.PlainOutput(t)

	testCases := []struct {
		name    string
		golden  string
		seconds int
		finish  bool
	}{
		{name: "ready", golden: "view_ready", seconds: 1500},
		{name: "finished", golden: "view_finished", seconds: 1, finish: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, _ := newTestModel(t, tc.seconds)
			m.progress = progress.New(
				progress.WithDefaultGradient(),
				progress.WithColorProfile(termenv.Ascii),
			)

			if tc.finish {
				m.Update(space)
				nextPulse(t, m)
				require.Equal(t, timer.Finished, m.Machine().State().Phase)
			}

			testutil.CompareGoldenFile(t, goldenCase{
				GoldenFile: tc.golden,
				Snapshot:   []byte(m.View()),
			})
		})
	}
}
