package testutil

import (
	"runtime"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
	"github.com/sebdah/goldie/v2"

	"github.com/ayoisaiah/pomo/internal/osutil"
)

type GoldenTest interface {
	Output() ([]byte, string)
}

// CompareGoldenFile verifies that the output of an operation matches
// the expected output in testdata. Run the tests with -update to rewrite
// the golden files.
func CompareGoldenFile(t *testing.T, tc GoldenTest) {
	t.Helper()

	if runtime.GOOS == osutil.Windows {
		// TODO: need to sort out line endings
		t.Skip("skipping golden file test in Windows")
	}

	g := goldie.New(
		t,
		goldie.WithFixtureDir("testdata"),
	)

	output, golden := tc.Output()

	g.Assert(t, golden, output)
}

// PlainOutput turns off colours and decorations in terminal output for the
// rest of the test so that it can be compared byte for byte.
func PlainOutput(t *testing.T) {
	t.Helper()

	profile := lipgloss.ColorProfile()

	pterm.DisableStyling()
	lipgloss.SetColorProfile(termenv.Ascii)

	t.Cleanup(func() {
		pterm.EnableStyling()
		lipgloss.SetColorProfile(profile)
	})
}
