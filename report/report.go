// Package report prints user-facing errors
package report

import (
	"os"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/pomo/internal/osutil"
)

func Error(err error) {
	pterm.Error.Println(err)
}

// Quit reports err and exits the program.
func Quit(err error) {
	Error(err)
	os.Exit(int(osutil.ExitError))
}
