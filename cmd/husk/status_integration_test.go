//go:build integration

package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/raphi011/husk/internal/gitdir"
)

// TestStatus_Table tests the hook status table.
//
// Scenario: User runs `husk status` after installing the default hooks
// Expected: pre-push shows installed, the other fixed slots show missing
func TestStatus_Table(t *testing.T) {
	root := setupTestRepo(t)
	t.Chdir(root)

	ctx, _ := testContext(t)
	install := newInstallCmd()
	install.SetContext(ctx)
	install.SetArgs([]string{})
	if err := install.Execute(); err != nil {
		t.Fatalf("install failed: %v", err)
	}

	ctx, out := testContext(t)
	cmd := newStatusCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("status failed: %v", err)
	}

	table := ansi.Strip(out.String())
	for _, want := range []string{"HOOK", "pre-push", "installed", "pre-commit", "post-merge", "missing"} {
		if !strings.Contains(table, want) {
			t.Errorf("status output is missing %q:\n%s", want, table)
		}
	}
}

// TestStatus_StaleHook tests reporting a hook from another version.
//
// Scenario: The pre-push slot holds a script written by husk v9.9.9
// Expected: The slot shows stale with that version, and a hint is logged
func TestStatus_StaleHook(t *testing.T) {
	root := setupTestRepo(t)
	stale := "#!/bin/sh\n#\n# This hook was set by husk v9.9.9: https://github.com/raphi011/husk#readme\n#\n\nset -e\n"
	path := filepath.Join(root, ".git", "hooks", "pre-push")
	if err := os.WriteFile(path, []byte(stale), 0o755); err != nil {
		t.Fatalf("failed to write stale hook: %v", err)
	}
	t.Chdir(root)

	ctx, out, logs := testContextWithLog(t)
	cmd := newStatusCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("status failed: %v", err)
	}

	table := ansi.Strip(out.String())
	if !strings.Contains(table, "stale") {
		t.Errorf("status output should mark pre-push as stale:\n%s", table)
	}
	if !strings.Contains(table, "v9.9.9") {
		t.Errorf("status output should show the stale version:\n%s", table)
	}
	if !strings.Contains(logs.String(), "another husk version") {
		t.Errorf("expected a stale hint in the log, got: %q", logs.String())
	}
}

// TestStatus_ExtraHooks tests listing hooks outside the fixed slots.
//
// Scenario: .git/hooks contains a commit-msg script from another tool
// Expected: commit-msg is listed after the fixed slots as foreign
func TestStatus_ExtraHooks(t *testing.T) {
	root := setupTestRepo(t)
	path := filepath.Join(root, ".git", "hooks", "commit-msg")
	if err := os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatalf("failed to write commit-msg hook: %v", err)
	}
	t.Chdir(root)

	ctx, out := testContext(t)
	cmd := newStatusCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("status failed: %v", err)
	}

	table := ansi.Strip(out.String())
	if !strings.Contains(table, "commit-msg") {
		t.Errorf("status output should list commit-msg:\n%s", table)
	}
	if !strings.Contains(table, "foreign") {
		t.Errorf("status output should mark commit-msg as foreign:\n%s", table)
	}
}

// TestStatus_OutsideRepo tests status with no repository.
//
// Scenario: User runs `husk status` outside any git repository
// Expected: The command fails with the not-found error
func TestStatus_OutsideRepo(t *testing.T) {
	dir := resolvePath(t, t.TempDir())
	t.Chdir(dir)

	ctx, _ := testContext(t)
	cmd := newStatusCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	if !errors.Is(err, gitdir.ErrNotFound) {
		t.Errorf("status outside a repository = %v, want gitdir.ErrNotFound", err)
	}
}
