// Package theme centralizes the lipgloss styles shared by the nav TUIs and
// the log formatter.
package theme

import "github.com/charmbracelet/lipgloss"

// Colors holds the ANSI-friendly palette. Plain terminal colors keep the TUI
// legible on both dark and light backgrounds without a profile probe.
type Colors struct {
	Green    lipgloss.Color
	Yellow   lipgloss.Color
	Red      lipgloss.Color
	Orange   lipgloss.Color
	Cyan     lipgloss.Color
	Blue     lipgloss.Color
	Violet   lipgloss.Color
	Muted    lipgloss.Color
	Border   lipgloss.Color
	Selected lipgloss.Color
}

// DefaultColors is the terminal (ANSI) palette.
var DefaultColors = Colors{
	Green:    lipgloss.Color("2"),
	Yellow:   lipgloss.Color("3"),
	Red:      lipgloss.Color("1"),
	Orange:   lipgloss.Color("208"),
	Cyan:     lipgloss.Color("6"),
	Blue:     lipgloss.Color("4"),
	Violet:   lipgloss.Color("5"),
	Muted:    lipgloss.Color("8"),
	Border:   lipgloss.Color("240"),
	Selected: lipgloss.Color("237"),
}

// Theme bundles the styles the TUIs draw with.
type Theme struct {
	Colors Colors

	Title    lipgloss.Style
	Accent   lipgloss.Style
	Muted    lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Error    lipgloss.Style
	Selected lipgloss.Style
	Border   lipgloss.Style
	Help     lipgloss.Style
	Italic   lipgloss.Style
}

// DefaultTheme is the theme used when none is configured.
var DefaultTheme = &Theme{
	Colors:   DefaultColors,
	Title:    lipgloss.NewStyle().Bold(true).Foreground(DefaultColors.Orange),
	Accent:   lipgloss.NewStyle().Foreground(DefaultColors.Cyan),
	Muted:    lipgloss.NewStyle().Foreground(DefaultColors.Muted),
	Success:  lipgloss.NewStyle().Foreground(DefaultColors.Green),
	Warning:  lipgloss.NewStyle().Foreground(DefaultColors.Yellow),
	Error:    lipgloss.NewStyle().Foreground(DefaultColors.Red).Bold(true),
	Selected: lipgloss.NewStyle().Background(DefaultColors.Selected).Bold(true),
	Border:   lipgloss.NewStyle().Foreground(DefaultColors.Border),
	Help:     lipgloss.NewStyle().Foreground(DefaultColors.Muted),
	Italic:   lipgloss.NewStyle().Italic(true),
}
