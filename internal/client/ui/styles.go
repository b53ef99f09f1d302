package ui

import "github.com/charmbracelet/lipgloss"

// The palette follows the app's emerald branding.
var (
	colorBrand  = lipgloss.Color("42")
	colorMuted  = lipgloss.Color("245")
	colorBad    = lipgloss.Color("203")
	colorGood   = lipgloss.Color("42")
	colorAccent = lipgloss.Color("221")

	titleStyle = lipgloss.NewStyle().
			Foreground(colorBrand).
			Bold(true)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(colorMuted).
			PaddingBottom(1)

	cardStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().Foreground(colorMuted)

	errorStyle = lipgloss.NewStyle().Foreground(colorBad)

	toastStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Italic(true)

	increaseStyle = lipgloss.NewStyle().Foreground(colorBad)
	decreaseStyle = lipgloss.NewStyle().Foreground(colorGood)

	unlockedStyle = lipgloss.NewStyle().Foreground(colorBrand).Bold(true)
	lockedStyle   = lipgloss.NewStyle().Foreground(colorMuted)

	tabStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1)

	activeTabStyle = lipgloss.NewStyle().
			Foreground(colorBrand).
			Bold(true).
			Underline(true).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().Foreground(colorMuted)
)

// deltaStyle picks the color for a trend delta from the server's
// is_increase flag; a rising footprint reads as bad.
func deltaStyle(isIncrease bool) lipgloss.Style {
	if isIncrease {
		return increaseStyle
	}
	return decreaseStyle
}

// progressBar renders a fixed-width bar for percent 0..100.
func progressBar(percent, width int) string {
	if width <= 0 {
		width = 20
	}
	filled := percent * width / 100
	if filled > width {
		filled = width
	}
	bar := ""
	for i := 0; i < width; i++ {
		if i < filled {
			bar += "█"
		} else {
			bar += "░"
		}
	}
	return bar
}
