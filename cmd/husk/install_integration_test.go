//go:build integration

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestInstall_Defaults tests installing without a config file.
//
// Scenario: User runs `husk install` in a repo without .husk.toml
// Expected: A pre-push hook running "go test" is written, nothing else
func TestInstall_Defaults(t *testing.T) {
	root := setupTestRepo(t)
	t.Chdir(root)

	ctx, _ := testContext(t)
	cmd := newInstallCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("install failed: %v", err)
	}

	script := readHook(t, root, "pre-push")
	if !strings.Contains(script, "This hook was set by husk") {
		t.Errorf("pre-push hook is missing the provenance marker:\n%s", script)
	}
	if !strings.Contains(script, "go test") {
		t.Errorf("pre-push hook does not run go test:\n%s", script)
	}
	for _, name := range []string{"pre-commit", "post-merge"} {
		if hookExists(root, name) {
			t.Errorf("%s hook should not be installed by default", name)
		}
	}
}

// TestInstall_ConfigSelectsHooks tests that .husk.toml drives the install.
//
// Scenario: .husk.toml enables only pre-commit with the check step project-wide
// Expected: pre-commit runs "go vet ./...", pre-push is not written
func TestInstall_ConfigSelectsHooks(t *testing.T) {
	root := setupTestRepo(t)
	writeConfigFile(t, root, "[hooks]\npre-commit = true\n\n[run]\ncheck = true\nall = true\n")
	t.Chdir(root)

	ctx, _ := testContext(t)
	cmd := newInstallCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("install failed: %v", err)
	}

	script := readHook(t, root, "pre-commit")
	if !strings.Contains(script, "go vet ./...") {
		t.Errorf("pre-commit hook does not run go vet ./...:\n%s", script)
	}
	if hookExists(root, "pre-push") {
		t.Error("pre-push hook should not be installed when disabled in config")
	}
}

// TestInstall_HookFlag tests filling a single slot.
//
// Scenario: User runs `husk install --hook pre-commit`
// Expected: Only the pre-commit slot is filled
func TestInstall_HookFlag(t *testing.T) {
	root := setupTestRepo(t)
	t.Chdir(root)

	ctx, _ := testContext(t)
	cmd := newInstallCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{"--hook", "pre-commit"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("install failed: %v", err)
	}

	if !hookExists(root, "pre-commit") {
		t.Error("pre-commit hook should be installed")
	}
	if hookExists(root, "pre-push") {
		t.Error("pre-push hook should not be installed with --hook pre-commit")
	}
}

// TestInstall_UnknownHookFlag tests the error for a typoed slot name.
//
// Scenario: User runs `husk install --hook pre-psh`
// Expected: Error with a did-you-mean hint for pre-push
func TestInstall_UnknownHookFlag(t *testing.T) {
	root := setupTestRepo(t)
	t.Chdir(root)

	ctx, _ := testContext(t)
	cmd := newInstallCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{"--hook", "pre-psh"})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected an error for an unknown hook name")
	}
	if !strings.Contains(err.Error(), `did you mean "pre-push"`) {
		t.Errorf("error should suggest pre-push, got: %v", err)
	}
}

// TestInstall_OutsideRepo tests running install with no repository.
//
// Scenario: User runs `husk install` outside any git repository
// Expected: A warning is logged and the command exits cleanly
func TestInstall_OutsideRepo(t *testing.T) {
	dir := resolvePath(t, t.TempDir())
	t.Chdir(dir)

	ctx, _, logs := testContextWithLog(t)
	cmd := newInstallCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("install outside a repository should not fail: %v", err)
	}
	if !strings.Contains(logs.String(), "skipping hook install") {
		t.Errorf("expected a skip warning, got: %q", logs.String())
	}
}

// TestInstall_UserHooks tests adopting operator scripts.
//
// Scenario: User runs `husk install --user` with a script in .husk/hooks
// Expected: The script lands in .git/hooks with the provenance marker spliced in
func TestInstall_UserHooks(t *testing.T) {
	root := setupTestRepo(t)
	writeUserHookScript(t, root, "pre-push", "#!/bin/bash\necho testing\n")
	t.Chdir(root)

	ctx, _ := testContext(t)
	cmd := newInstallCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{"--user"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("install --user failed: %v", err)
	}

	script := readHook(t, root, "pre-push")
	if !strings.Contains(script, "This hook was set by husk") {
		t.Errorf("adopted hook is missing the provenance marker:\n%s", script)
	}
	if !strings.Contains(script, "echo testing") {
		t.Errorf("adopted hook lost the script body:\n%s", script)
	}
}

// TestInstall_ForeignHookPreserved tests the ownership check.
//
// Scenario: The pre-push slot already holds a script from another tool
// Expected: The file is left byte for byte as it was
func TestInstall_ForeignHookPreserved(t *testing.T) {
	root := setupTestRepo(t)
	foreign := "#!/bin/sh\necho not ours\n"
	path := filepath.Join(root, ".git", "hooks", "pre-push")
	if err := os.WriteFile(path, []byte(foreign), 0o755); err != nil {
		t.Fatalf("failed to write foreign hook: %v", err)
	}
	t.Chdir(root)

	ctx, _ := testContext(t)
	cmd := newInstallCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("install failed: %v", err)
	}

	if got := readHook(t, root, "pre-push"); got != foreign {
		t.Errorf("foreign pre-push hook was modified:\ngot:  %q\nwant: %q", got, foreign)
	}
}

// TestInstall_NoHooksEnabled tests a config that disables everything.
//
// Scenario: .husk.toml enables no hooks at all
// Expected: Nothing is written, a notice is logged
func TestInstall_NoHooksEnabled(t *testing.T) {
	root := setupTestRepo(t)
	writeConfigFile(t, root, "[hooks]\npre-push = false\n")
	t.Chdir(root)

	ctx, _, logs := testContextWithLog(t)
	cmd := newInstallCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("install failed: %v", err)
	}
	if !strings.Contains(logs.String(), "nothing to install") {
		t.Errorf("expected a nothing-to-install notice, got: %q", logs.String())
	}
	for _, name := range []string{"pre-push", "pre-commit", "post-merge"} {
		if hookExists(root, name) {
			t.Errorf("%s hook should not exist", name)
		}
	}
}
