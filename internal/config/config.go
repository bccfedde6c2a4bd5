// Package config reads the per-repository .husk.toml file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the config file name, looked up at the repository root.
const FileName = ".husk.toml"

// Hooks selects which hook slots an install pass fills.
type Hooks struct {
	PreCommit bool `toml:"pre-commit"`
	PrePush   bool `toml:"pre-push"`
	PostMerge bool `toml:"post-merge"`

	// User switches install to adopting .husk/hooks scripts. It takes
	// priority over the fixed hooks when both are enabled.
	User bool `toml:"user"`
}

// Enabled returns the enabled fixed hook names in install order.
func (h Hooks) Enabled() []string {
	var names []string
	if h.PrePush {
		names = append(names, "pre-push")
	}
	if h.PreCommit {
		names = append(names, "pre-commit")
	}
	if h.PostMerge {
		names = append(names, "post-merge")
	}
	return names
}

// Run selects which catalog steps a generated hook runs and how.
type Run struct {
	Test        bool `toml:"test"`
	Check       bool `toml:"check"`
	Lint        bool `toml:"lint"`
	FormatCheck bool `toml:"format-check"`

	// All runs each step project-wide (the ./... package pattern).
	All bool `toml:"all"`

	// Per-step extra arguments, appended verbatim to the command.
	TestArgs        string `toml:"test-args"`
	CheckArgs       string `toml:"check-args"`
	LintArgs        string `toml:"lint-args"`
	FormatCheckArgs string `toml:"format-check-args"`
}

// StepEnabled reports whether the named catalog step is enabled.
func (r Run) StepEnabled(name string) bool {
	switch name {
	case "test":
		return r.Test
	case "check":
		return r.Check
	case "lint":
		return r.Lint
	case "format-check":
		return r.FormatCheck
	}
	return false
}

// StepArgs returns the extra arguments configured for the named step.
func (r Run) StepArgs(name string) string {
	switch name {
	case "test":
		return r.TestArgs
	case "check":
		return r.CheckArgs
	case "lint":
		return r.LintArgs
	case "format-check":
		return r.FormatCheckArgs
	}
	return ""
}

// Config holds the husk configuration.
type Config struct {
	Hooks Hooks `toml:"hooks"`
	Run   Run   `toml:"run"`
}

// Default returns the default configuration: a pre-push hook running
// go test, nothing else.
func Default() Config {
	return Config{
		Hooks: Hooks{PrePush: true},
		Run:   Run{Test: true},
	}
}

// Path returns the config file path for a repository root.
func Path(repoRoot string) string {
	return filepath.Join(repoRoot, FileName)
}

// Load reads the config from <repoRoot>/.husk.toml.
// Returns Default() if the file doesn't exist (no error).
// Returns an error only if the file exists but is invalid.
func Load(repoRoot string) (Config, error) {
	path := Path(repoRoot)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Default(), fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	// Typoed keys silently disabling a hook would defeat the point of
	// the tool, so unknown keys are errors rather than warnings.
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Default(), fmt.Errorf("unknown keys in %s: %s", FileName, strings.Join(keys, ", "))
	}

	return cfg, nil
}

// header is the guidance comment written at the top of generated
// config files.
const header = `# husk configuration
#
# Selects which git hooks "husk install" writes and which steps they
# run. Steps always execute in catalog order: test, check, lint,
# format-check.
#
# [hooks]   pre-commit / pre-push / post-merge enable generated hooks.
#           user = true adopts your own scripts from .husk/hooks
#           instead (every readable+executable file is copied into
#           .git/hooks with a provenance header).
#
# [run]     test         go test
#           check        go vet
#           lint         golangci-lint run
#           format-check test -z "$(gofmt -l .)"
#           all = true appends ./... so steps cover the whole module.
#
# Extra arguments are appended verbatim between the command and the
# package pattern:
#
# [run]
# test = true
# test-args = "-race"       # go test -race ./...
# lint-args = "--fix"       # golangci-lint run --fix ./...

`

// Render returns the config file content for cfg, with the guidance
// header attached.
func Render(cfg Config) string {
	var b strings.Builder
	b.WriteString(header)
	fmt.Fprintf(&b, "[hooks]\npre-commit = %t\npre-push = %t\npost-merge = %t\nuser = %t\n\n",
		cfg.Hooks.PreCommit, cfg.Hooks.PrePush, cfg.Hooks.PostMerge, cfg.Hooks.User)
	fmt.Fprintf(&b, "[run]\ntest = %t\ncheck = %t\nlint = %t\nformat-check = %t\nall = %t\n",
		cfg.Run.Test, cfg.Run.Check, cfg.Run.Lint, cfg.Run.FormatCheck, cfg.Run.All)
	return b.String()
}

// Init writes the config file for cfg at the repository root.
// If force is true, overwrites an existing file.
// Returns the path to the created file.
func Init(repoRoot string, cfg Config, force bool) (string, error) {
	path := Path(repoRoot)

	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", errors.New("config file already exists: " + path)
		}
	}

	if err := os.WriteFile(path, []byte(Render(cfg)), 0644); err != nil {
		return "", err
	}

	return path, nil
}
