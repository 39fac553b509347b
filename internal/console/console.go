// Package console formats user-facing terminal messages.
package console

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12")) // Blue

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")) // Yellow

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")) // Red

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")) // Green
)

// FormatInfoMessage renders an informational message.
func FormatInfoMessage(msg string) string {
	return infoStyle.Render("ℹ " + msg)
}

// FormatWarningMessage renders a warning message.
func FormatWarningMessage(msg string) string {
	return warningStyle.Render("⚠ " + msg)
}

// FormatErrorMessage renders an error message.
func FormatErrorMessage(msg string) string {
	return errorStyle.Render("✗ " + msg)
}

// FormatSuccessMessage renders a success message.
func FormatSuccessMessage(msg string) string {
	return successStyle.Render("✓ " + msg)
}

// FormatFileSize renders a byte count in human-readable units.
func FormatFileSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(size)/float64(div), "KMGTPE"[exp])
}
