package ui

// This file centralizes the lipgloss styles used for operator output.

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")) // Light Gray
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")). // Green
			Bold(true)
	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")). // Orange
			Bold(true)
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")). // Red
			Bold(true)
)

// Info prints a status line to stdout.
func Info(format string, a ...interface{}) {
	fmt.Println(infoStyle.Render(fmt.Sprintf(format, a...)))
}

// Success prints a success line to stdout.
func Success(format string, a ...interface{}) {
	fmt.Println(successStyle.Render(fmt.Sprintf(format, a...)))
}

// Warn prints a warning to stderr.
func Warn(format string, a ...interface{}) {
	fmt.Fprintln(os.Stderr, warnStyle.Render("Warning: "+fmt.Sprintf(format, a...)))
}

// Error prints an error to stderr.
func Error(format string, a ...interface{}) {
	fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+fmt.Sprintf(format, a...)))
}
