package tui

import "github.com/charmbracelet/lipgloss"

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	penFg     = lipgloss.AdaptiveColor{Light: "#0E7490", Dark: "#22D3EE"}
	errorFg   = lipgloss.Color("#F87171")

	appStyle    = lipgloss.NewStyle().Foreground(baseFg)
	titleStyle  = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(baseDimFg)
	penStyle    = lipgloss.NewStyle().Foreground(penFg)
	errorStyle  = lipgloss.NewStyle().Foreground(errorFg)
	paramsStyle = lipgloss.NewStyle().Foreground(baseFg).Padding(0, 1)
)
