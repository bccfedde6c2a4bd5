package hook

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/raphi011/husk/internal/output"
)

func TestRun_DryRun(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	var buf bytes.Buffer
	ctx := output.WithPrinter(context.Background(), &buf)

	commands := []string{"go test ./...", ": > should-not-exist"}
	if err := Run(ctx, dir, commands, true); err != nil {
		t.Fatalf("Run error: %v", err)
	}

	want := "[dry-run] go test ./...\n[dry-run] : > should-not-exist\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
	if _, err := os.Stat(filepath.Join(dir, "should-not-exist")); !errors.Is(err, os.ErrNotExist) {
		t.Error("dry run must not execute commands")
	}
}

func TestRun_ExecutesInDir(t *testing.T) {
	t.Parallel()
	if runtime.GOOS == "windows" {
		t.Skip("requires sh")
	}

	dir := t.TempDir()
	var buf bytes.Buffer
	ctx := output.WithPrinter(context.Background(), &buf)

	if err := Run(ctx, dir, []string{": > ran-here"}, false); err != nil {
		t.Fatalf("Run error: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "ran-here")); err != nil {
		t.Errorf("command did not run in dir: %v", err)
	}
	if want := "+: > ran-here\n"; buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestRun_AbortsOnFirstFailure(t *testing.T) {
	t.Parallel()
	if runtime.GOOS == "windows" {
		t.Skip("requires sh")
	}

	dir := t.TempDir()
	ctx := output.WithPrinter(context.Background(), &bytes.Buffer{})

	err := Run(ctx, dir, []string{": > first", "exit 3", ": > after"}, false)
	if err == nil {
		t.Fatal("Run should fail when a step fails")
	}
	if !strings.Contains(err.Error(), `step "exit 3"`) {
		t.Errorf("error %q should name the failed step", err)
	}
	if _, statErr := os.Stat(filepath.Join(dir, "first")); statErr != nil {
		t.Errorf("step before the failure did not run: %v", statErr)
	}
	if _, statErr := os.Stat(filepath.Join(dir, "after")); !errors.Is(statErr, os.ErrNotExist) {
		t.Error("steps after the failure must not run")
	}
}
