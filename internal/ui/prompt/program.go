package prompt

import (
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/colorprofile"
)

// newProgram builds a prompt program. Prompts render to stderr so
// stdout stays clean for piping, with the color profile detected for
// that stream (handles piped output and NO_COLOR).
func newProgram(m tea.Model) *tea.Program {
	profile := colorprofile.Detect(os.Stderr, os.Environ())
	return tea.NewProgram(m,
		tea.WithOutput(os.Stderr),
		tea.WithColorProfile(profile),
	)
}
