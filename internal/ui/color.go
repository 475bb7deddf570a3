// Package ui holds the terminal colors and tables shared by pomo's plain
// output
package ui

import (
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/pomo/timer"
)

// DarkTheme selects the light variants of each color, which read better on
// a dark background.
var DarkTheme = true

func paint(onDark, onLight pterm.Color, a any) string {
	if DarkTheme {
		return onDark.Sprint(a)
	}

	return onLight.Sprint(a)
}

func Green(a any) string {
	return paint(pterm.FgLightGreen, pterm.FgGreen, a)
}

func Yellow(a any) string {
	return paint(pterm.FgLightYellow, pterm.FgYellow, a)
}

func Blue(a any) string {
	return paint(pterm.FgLightBlue, pterm.FgBlue, a)
}

func Red(a any) string {
	return paint(pterm.FgLightRed, pterm.FgRed, a)
}

func Highlight(a any) string {
	return paint(pterm.FgLightWhite, pterm.FgBlack, a)
}

// Phase colors the name of a countdown phase.
func Phase(p timer.Phase) string {
	switch p {
	case timer.Running:
		return Green(p)
	case timer.Finished:
		return Blue(p)
	case timer.Idle:
		return Yellow(p)
	}

	return p.String()
}
