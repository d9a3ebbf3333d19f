package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ANSI 256 palette, so the views degrade cleanly on basic terminals.
var (
	ColorText    = lipgloss.Color("252")
	ColorMuted   = lipgloss.Color("244")
	ColorHeading = lipgloss.Color("39")
	ColorMeter   = lipgloss.Color("35")
	ColorWarn    = lipgloss.Color("214")
)

type SummaryRow struct {
	Label string
	Value string
}

// RenderSummary lays rows out as a two column table between horizontal rules.
// Values are right aligned so byte counts line up.
func RenderSummary(rows []SummaryRow) string {
	var labelWidth, valueWidth int
	for _, row := range rows {
		labelWidth = max(labelWidth, lipgloss.Width(row.Label))
		valueWidth = max(valueWidth, lipgloss.Width(row.Value))
	}

	var b strings.Builder
	rule := strings.Repeat("-", labelWidth+valueWidth+3)
	b.WriteString(rule)
	for _, row := range rows {
		b.WriteByte('\n')
		b.WriteString(textStyle.Width(labelWidth).Render(row.Label))
		b.WriteString(" | ")
		b.WriteString(valueStyle.Width(valueWidth).Align(lipgloss.Right).Render(row.Value))
	}
	b.WriteByte('\n')
	b.WriteString(rule)
	return b.String()
}

// RenderWarning styles a one-line warning for stderr.
func RenderWarning(msg string) string {
	return warnStyle.Render("warning: " + msg)
}

var (
	valueStyle = lipgloss.NewStyle().Foreground(ColorText).Bold(true)
	warnStyle  = lipgloss.NewStyle().Foreground(ColorWarn)
)
