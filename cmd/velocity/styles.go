package main

import "github.com/charmbracelet/lipgloss"

// Palette for command status lines. Diagnostics carry their own styling in
// the diag renderer; these cover what the commands print themselves.
var (
	styleOK    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	styleInfo  = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))
	styleWarn  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	styleErr   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	styleMuted = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// disableStyles drops every style back to plain text, for --no-color and
// for terminals the user has configured away from ANSI.
func disableStyles() {
	plain := lipgloss.NewStyle()
	styleOK, styleInfo, styleWarn, styleErr, styleMuted = plain, plain, plain, plain, plain
}
