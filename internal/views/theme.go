// Package views renders a character as terminal tables. It only reads the
// character through its accessors.
package views

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
)

var (
	// Good marks progress worth celebrating, like a level-up
	Good = lipgloss.NewStyle().Bold(true).Foreground(cGood)

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	mutedStyle = lipgloss.NewStyle().Foreground(cMuted)
	keyStyle   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	warnStyle  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	badStyle   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	majorStyle = lipgloss.NewStyle().Bold(true)

	header = lipgloss.NewStyle().Bold(true).Foreground(cPrimary).Padding(0, 1)
	cell   = lipgloss.NewStyle().Padding(0, 1)
)

// Heading renders a section title
func Heading(title string) string {
	return titleStyle.Render(title)
}

// LabelValue renders "label: value" with the label highlighted
func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", keyStyle.Render(label+":"), value)
}

// Error renders a failed command
func Error(msg string) string {
	return badStyle.Render("error:") + " " + msg
}

// newTable builds a table with the shared border and header style. style
// may adjust body cells; it gets 0-based body row and column indices.
func newTable(headers []string, rows [][]string, style func(row, col int) lipgloss.Style) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(mutedStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			if style != nil {
				return style(row, col).Padding(0, 1)
			}
			return cell
		})
}
