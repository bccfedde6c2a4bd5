package hook

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/raphi011/husk/internal/config"
)

// A Step is one entry of the fixed command catalog.
type Step struct {
	Name string
	base string
	all  string // package pattern appended in project-wide mode
}

// Command returns the shell command line for the step. Extra args are
// spliced in before the package pattern, so "go test" with args
// "-race" in project-wide mode renders as "go test -race ./...".
func (s Step) Command(all bool, extraArgs string) string {
	cmd := s.base
	if extraArgs != "" {
		cmd += " " + extraArgs
	}
	if all && s.all != "" {
		cmd += s.all
	}
	return cmd
}

// Catalog lists the steps a generated hook can run, in the order they
// always render. Enabling steps in a different order does not change
// the script order.
var Catalog = []Step{
	{Name: "test", base: "go test", all: " ./..."},
	{Name: "check", base: "go vet", all: " ./..."},
	{Name: "lint", base: "golangci-lint run", all: " ./..."},
	{Name: "format-check", base: `test -z "$(gofmt -l .)"`, all: ""},
}

// StepCommands returns the command lines for the steps cfg enables,
// in catalog order.
func StepCommands(run config.Run) []string {
	var cmds []string
	for _, s := range Catalog {
		if !run.StepEnabled(s.Name) {
			continue
		}
		cmds = append(cmds, s.Command(run.All, run.StepArgs(s.Name)))
	}
	return cmds
}

// renderScript renders a generated hook script. Commands appear as
// echo/command pairs under set -e, so the hook prints each step before
// running it and aborts on the first failure.
func renderScript(commands []string, version, homepage, sourceDir, outputDir string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "#!/bin/sh\n#\n%s\n# Generated by script %s%chusk\n# Output at %s\n#\n\nset -e\n",
		markerLine(version, homepage), sourceDir, filepath.Separator, outputDir)
	for _, cmd := range commands {
		fmt.Fprintf(&b, "\necho '+%s'\n%s", cmd, cmd)
	}
	b.WriteString("\n")
	return b.String()
}
