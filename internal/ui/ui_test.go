package ui

import (
	"bytes"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/pomo/timer"
)

func TestPhaseColors(t *testing.T) {
	pterm.DisableColor()
	t.Cleanup(pterm.EnableColor)

	assert.Equal(t, "running", Phase(timer.Running))
	assert.Equal(t, "idle", Phase(timer.Idle))
	assert.Equal(t, "finished", Phase(timer.Finished))
}

func TestPrintTable(t *testing.T) {
	pterm.DisableColor()
	t.Cleanup(pterm.EnableColor)

	var buf bytes.Buffer

	PrintTable([][]string{
		{"NAME", "FORMAT"},
		{"bell", "wav"},
	}, &buf)

	out := buf.String()
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "bell")

	buf.Reset()
	PrintTable(nil, &buf)
	assert.Empty(t, buf.String())
}
