//go:build integration

package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/raphi011/husk/internal/log"
	"github.com/raphi011/husk/internal/output"
)

// resolvePath resolves symlinks in a path.
// This is needed on macOS where /var is a symlink to /private/var.
func resolvePath(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		t.Fatalf("failed to resolve path %s: %v", path, err)
	}
	return resolved
}

// setupTestRepo creates the repository layout git init leaves behind:
// a worktree root with an empty .git/hooks directory.
func setupTestRepo(t *testing.T) string {
	t.Helper()
	root := filepath.Join(resolvePath(t, t.TempDir()), "repo")
	if err := os.MkdirAll(filepath.Join(root, ".git", "hooks"), 0o755); err != nil {
		t.Fatalf("failed to create repo layout: %v", err)
	}
	return root
}

// mkdirAll creates a directory tree, failing the test on error.
func mkdirAll(t *testing.T, dir string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("failed to create %s: %v", dir, err)
	}
}

// writeConfigFile writes a .husk.toml at the repository root.
func writeConfigFile(t *testing.T, root, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(root, ".husk.toml"), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
}

// writeUserHookScript puts an executable script into .husk/hooks.
func writeUserHookScript(t *testing.T, root, name, content string) {
	t.Helper()
	dir := filepath.Join(root, ".husk", "hooks")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("failed to create user hooks dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o755); err != nil {
		t.Fatalf("failed to write user hook: %v", err)
	}
}

// readHook reads an installed hook file.
func readHook(t *testing.T, root, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, ".git", "hooks", name))
	if err != nil {
		t.Fatalf("failed to read hook %s: %v", name, err)
	}
	return string(data)
}

// hookExists reports whether a hook slot is occupied.
func hookExists(root, name string) bool {
	_, err := os.Stat(filepath.Join(root, ".git", "hooks", name))
	return err == nil
}

// testContext returns a context with a discarded logger and a buffer
// capturing primary output.
func testContext(t *testing.T) (context.Context, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	ctx := context.Background()
	ctx = log.WithLogger(ctx, log.New(io.Discard, false, true))
	ctx = output.WithPrinter(ctx, &out)
	return ctx, &out
}

// testContextWithLog additionally captures the diagnostic log, for
// tests asserting on warnings and hints.
func testContextWithLog(t *testing.T) (ctx context.Context, out, logs *bytes.Buffer) {
	t.Helper()
	out, logs = &bytes.Buffer{}, &bytes.Buffer{}
	ctx = context.Background()
	ctx = log.WithLogger(ctx, log.New(logs, false, false))
	ctx = output.WithPrinter(ctx, out)
	return ctx, out, logs
}
