package app

import "fmt"

// HelpCategory groups key bindings for the help overlay.
type HelpCategory struct {
	Name     string
	Commands []HelpCommand
}

type HelpCommand struct {
	Key         string
	Description string
}

var helpCategories = []HelpCategory{
	{
		Name: "Anywhere",
		Commands: []HelpCommand{
			{"SPACE", "Pause / Modify mode"},
			{"?", "Toggle help"},
			{"Ctrl+C", "Quit"},
		},
	},
	{
		Name: "Running",
		Commands: []HelpCommand{
			{"ESC, q", "Exit"},
			{"ENTER", "New random grid"},
		},
	},
	{
		Name: "Modify",
		Commands: []HelpCommand{
			{"h / l", "Cursor left / right"},
			{"k / j", "Cursor up / down"},
			{"t", "Toggle cell"},
			{"ESC, q", "Resume"},
		},
	},
}

// HelpLines returns the help overlay body, one entry per line.
func HelpLines() []string {
	var lines []string
	for i, cat := range helpCategories {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, cat.Name+":")
		for _, cmd := range cat.Commands {
			lines = append(lines, fmt.Sprintf("  %-8s %s", cmd.Key, cmd.Description))
		}
	}
	return lines
}

// HelpHint is the short reminder drawn on the grid border.
const HelpHint = "? (Help)"
