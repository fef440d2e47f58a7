package views

import "strings"

// HelpRow describes one command in the help table
type HelpRow struct {
	Verb    string
	Aliases []string
	Usage   string
	Summary string
}

// Help renders the command reference
func Help(commands []HelpRow) string {
	rows := make([][]string, 0, len(commands))
	for _, c := range commands {
		rows = append(rows, []string{c.Verb, strings.Join(c.Aliases, ", "), c.Usage, c.Summary})
	}
	return Heading("Commands") + "\n" +
		newTable([]string{"Command", "Aliases", "Arguments", "Description"}, rows, nil).String()
}
