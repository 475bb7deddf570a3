package tui

import "github.com/charmbracelet/lipgloss"

const (
	padding  = 2
	maxWidth = 80
)

// Styles holds the lipgloss styles of the countdown view.
type Styles struct {
	Base      lipgloss.Style
	Main      lipgloss.Style
	Secondary lipgloss.Style
	Hint      lipgloss.Style
	Running   lipgloss.Style
	Paused    lipgloss.Style
	Finished  lipgloss.Style
	Error     lipgloss.Style
}

// NewStyles returns styles tuned for a dark or light terminal.
func NewStyles(dark bool) Styles {
	fg := lipgloss.Color("#1f2937")
	hint := lipgloss.Color("#6b7280")

	if dark {
		fg = lipgloss.Color("#f9fafb")
		hint = lipgloss.Color("#9ca3af")
	}

	label := lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		MarginRight(1).
		Foreground(lipgloss.Color("#f9fafb"))

	return Styles{
		Base:      lipgloss.NewStyle().Padding(1, padding),
		Main:      lipgloss.NewStyle().Bold(true).Foreground(fg),
		Secondary: lipgloss.NewStyle().Foreground(fg),
		Hint:      lipgloss.NewStyle().Foreground(hint),
		Running:   label.Background(lipgloss.Color("#16a34a")),
		Paused:    label.Background(lipgloss.Color("#d97706")),
		Finished:  label.Background(lipgloss.Color("#2563eb")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("#dc2626")),
	}
}
