package app

import (
	"strings"
	"testing"
)

func TestHelpListsEveryBinding(t *testing.T) {
	body := strings.Join(HelpLines(), "\n")
	for _, want := range []string{"SPACE", "?", "Ctrl+C", "ENTER", "h / l", "k / j", "t", "ESC, q"} {
		if !strings.Contains(body, want) {
			t.Fatalf("help text missing %q:\n%s", want, body)
		}
	}
	for _, cat := range []string{"Anywhere:", "Running:", "Modify:"} {
		if !strings.Contains(body, cat) {
			t.Fatalf("help text missing category %q", cat)
		}
	}
}
