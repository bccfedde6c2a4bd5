package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/raphi011/husk/internal/config"
	"github.com/raphi011/husk/internal/gitdir"
	"github.com/raphi011/husk/internal/hook"
)

// repoContext is the resolved repository a command operates on.
type repoContext struct {
	StartDir   string
	ControlDir string // .git control directory
	Root       string // worktree root, holds .husk.toml and .husk/hooks
	Config     config.Config
}

// resolveRepo locates the enclosing repository from the start
// directory and loads its config. A gitdir.ErrNotFound passes through
// unwrapped so callers can decide whether it is fatal.
func resolveRepo() (repoContext, error) {
	start, err := startDir()
	if err != nil {
		return repoContext{}, err
	}
	controlDir, err := gitdir.Resolve(start)
	if err != nil {
		return repoContext{}, err
	}
	root := gitdir.RepoRoot(controlDir)
	cfg, err := config.Load(root)
	if err != nil {
		return repoContext{}, err
	}
	return repoContext{StartDir: start, ControlDir: controlDir, Root: root, Config: cfg}, nil
}

// unknownNameError builds the error for a name outside the known set,
// with a did-you-mean hint when something comes close.
func unknownNameError(kind, name string, known []string) error {
	if matches := fuzzy.Find(name, known); len(matches) > 0 {
		return fmt.Errorf("unknown %s %q (did you mean %q?)", kind, name, matches[0].Str)
	}
	return fmt.Errorf("unknown %s %q (available: %s)", kind, name, strings.Join(known, ", "))
}

// installFromConfig runs one install pass with everything cfg selects.
func installFromConfig(ctx context.Context, start string, cfg config.Config) error {
	return hook.Install(ctx, hook.Options{
		StartDir:  start,
		Version:   version,
		Homepage:  homepage,
		Hooks:     cfg.Hooks.Enabled(),
		UserHooks: cfg.Hooks.User,
		Commands:  hook.StepCommands(cfg.Run),
	})
}
