// Package tui provides the terminal dashboard for Pointeuse.
package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette for the dashboard.
var (
	ColorPrimary = lipgloss.Color("#2563EB") // Blue
	ColorMuted   = lipgloss.Color("#6B7280") // Gray
	ColorWarning = lipgloss.Color("#F59E0B") // Yellow
	ColorError   = lipgloss.Color("#EF4444") // Red
	ColorSuccess = lipgloss.Color("#10B981") // Green
	ColorBorder  = lipgloss.Color("#4B5563") // Dark gray
)

// Base styles.
var (
	StyleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1)

	StyleSubtitle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	StyleDuration = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	StyleActive = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSuccess)

	StylePaused = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWarning)

	StyleInactive = lipgloss.NewStyle().
			Foreground(ColorMuted)

	StyleWarning = lipgloss.NewStyle().
			Foreground(ColorWarning)

	StyleError = lipgloss.NewStyle().
			Foreground(ColorError)

	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1)

	StyleHelpKey = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSuccess)
)

// Box styles.
var (
	StyleBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2).
			MarginBottom(1)

	StyleActiveBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorSuccess).
			Padding(1, 2).
			MarginBottom(1)

	StylePausedBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorWarning).
			Padding(1, 2).
			MarginBottom(1)
)
