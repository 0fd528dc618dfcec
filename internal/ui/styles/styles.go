// Package styles provides shared lipgloss styles for terminal output.
//
// This package centralizes color definitions so that all commands
// render hook listings and status markers consistently.
package styles

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Primary colors used throughout the output
var (
	// Primary is the main accent color (cyan/teal)
	Primary lipgloss.TerminalColor = lipgloss.Color("62")

	// Accent is the highlight color for hook names (pink)
	Accent lipgloss.TerminalColor = lipgloss.Color("212")

	// Success is used for active markers (green)
	Success lipgloss.TerminalColor = lipgloss.Color("82")

	// Error is used for error messages (red)
	Error lipgloss.TerminalColor = lipgloss.Color("196")

	// Muted is used for inert hooks and metadata (gray)
	Muted lipgloss.TerminalColor = lipgloss.Color("240")
)

// Common styles
var (
	// Bold applies bold formatting
	Bold = lipgloss.NewStyle().Bold(true)

	// PrimaryStyle applies the primary color
	PrimaryStyle = lipgloss.NewStyle().Foreground(Primary)

	// AccentStyle applies the accent color with bold
	AccentStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	// SuccessStyle applies the success color
	SuccessStyle = lipgloss.NewStyle().Foreground(Success)

	// ErrorStyle applies the error color
	ErrorStyle = lipgloss.NewStyle().Foreground(Error)

	// MutedStyle applies the muted color
	MutedStyle = lipgloss.NewStyle().Foreground(Muted)
)

// Colorize reports whether stdout is a terminal that should receive
// styled output. Commands fall back to plain text when piped.
func Colorize() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Render applies style to s when colorize is true, otherwise returns
// s unchanged.
func Render(style lipgloss.Style, s string, colorize bool) string {
	if !colorize {
		return s
	}
	return style.Render(s)
}
