// Package ui holds the terminal presentation helpers: the banner,
// status markers, and the key/value summary block used by the review
// screen. Styles degrade to plain text automatically when stdout is
// not a color terminal.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	failStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	titleStyle = lipgloss.NewStyle().Bold(true)
	keyStyle   = lipgloss.NewStyle().Faint(true)
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
)

// Banner returns the startup header for the init command.
func Banner() string {
	return boxStyle.Render(titleStyle.Render("gatewayboot") + "\nBlockchain gateway bootstrap wizard")
}

// Success formats a completed-step message.
func Success(msg string) string {
	return okStyle.Render("✓") + " " + msg
}

// Warn formats a non-fatal notice, e.g. a validation rejection.
func Warn(msg string) string {
	return warnStyle.Render("!") + " " + msg
}

// Fail formats a failed-check message.
func Fail(msg string) string {
	return failStyle.Render("✗") + " " + msg
}

// Summary renders a titled key/value block with aligned keys.
func Summary(title string, rows [][2]string) string {
	width := 0
	for _, row := range rows {
		if len(row[0]) > width {
			width = len(row[0])
		}
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	for _, row := range rows {
		b.WriteString("\n")
		b.WriteString(keyStyle.Render(fmt.Sprintf("  %-*s", width+2, row[0])))
		b.WriteString(row[1])
	}
	return b.String()
}
