package stages

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/hambosto/csp"
)

// Print writes each input string to stdout, one line per element. It is a
// sink: it has no output stream.
func Print() *csp.Stage[string, csp.None] {
	return csp.Sink(func(s *csp.Stage[string, csp.None]) {
		var line string
		for s.Read(&line) {
			fmt.Fprintln(os.Stdout, line)
		}
	})
}

var logPrefix = lipgloss.NewStyle().
	Foreground(lipgloss.Color("244")).
	Bold(true).
	Render("log:")

// PrintLog writes each input string to stderr, one line per element,
// prefixed with a styled "log:" marker.
func PrintLog() *csp.Stage[string, csp.None] {
	return csp.Sink(func(s *csp.Stage[string, csp.None]) {
		var line string
		for s.Read(&line) {
			fmt.Fprintln(os.Stderr, logPrefix, line)
		}
	})
}
