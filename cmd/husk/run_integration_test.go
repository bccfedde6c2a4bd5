//go:build integration

package main

import (
	"strings"
	"testing"
)

// TestRun_DryRun tests printing the enabled steps without executing.
//
// Scenario: .husk.toml enables test and check, user runs `husk run -d`
// Expected: Both commands are printed in catalog order, nothing executes
func TestRun_DryRun(t *testing.T) {
	root := setupTestRepo(t)
	writeConfigFile(t, root, "[run]\ntest = true\ncheck = true\n")
	t.Chdir(root)

	ctx, out := testContext(t)
	cmd := newRunCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{"-d"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("run -d failed: %v", err)
	}

	want := "[dry-run] go test\n[dry-run] go vet\n"
	if out.String() != want {
		t.Errorf("run -d output = %q, want %q", out.String(), want)
	}
}

// TestRun_NamedStep tests running a step that is not enabled.
//
// Scenario: User runs `husk run format-check -d` with the default config
// Expected: The format-check command is printed even though it is not enabled
func TestRun_NamedStep(t *testing.T) {
	root := setupTestRepo(t)
	t.Chdir(root)

	ctx, out := testContext(t)
	cmd := newRunCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{"format-check", "-d"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("run format-check -d failed: %v", err)
	}

	want := "[dry-run] test -z \"$(gofmt -l .)\"\n"
	if out.String() != want {
		t.Errorf("run format-check -d output = %q, want %q", out.String(), want)
	}
}

// TestRun_UnknownStep tests the error for a typoed step name.
//
// Scenario: User runs `husk run lnt`
// Expected: Error with a did-you-mean hint for lint
func TestRun_UnknownStep(t *testing.T) {
	root := setupTestRepo(t)
	t.Chdir(root)

	ctx, _ := testContext(t)
	cmd := newRunCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{"lnt"})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected an error for an unknown step name")
	}
	if !strings.Contains(err.Error(), `did you mean "lint"`) {
		t.Errorf("error should suggest lint, got: %v", err)
	}
}

// TestRun_NoStepsEnabled tests a config with an empty run section.
//
// Scenario: .husk.toml enables a hook but no steps
// Expected: Nothing is printed to stdout, a notice is logged
func TestRun_NoStepsEnabled(t *testing.T) {
	root := setupTestRepo(t)
	writeConfigFile(t, root, "[hooks]\npre-push = true\n")
	t.Chdir(root)

	ctx, out, logs := testContextWithLog(t)
	cmd := newRunCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{"-d"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("run -d failed: %v", err)
	}
	if out.String() != "" {
		t.Errorf("expected no output, got %q", out.String())
	}
	if !strings.Contains(logs.String(), "No steps enabled") {
		t.Errorf("expected a no-steps notice, got: %q", logs.String())
	}
}

// TestRun_ArgsSpliced tests extra step arguments in dry-run output.
//
// Scenario: .husk.toml sets test-args = "-race" and all = true
// Expected: The printed command is "go test -race ./..."
func TestRun_ArgsSpliced(t *testing.T) {
	root := setupTestRepo(t)
	writeConfigFile(t, root, "[run]\ntest = true\ntest-args = \"-race\"\nall = true\n")
	t.Chdir(root)

	ctx, out := testContext(t)
	cmd := newRunCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{"-d"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("run -d failed: %v", err)
	}

	want := "[dry-run] go test -race ./...\n"
	if out.String() != want {
		t.Errorf("run -d output = %q, want %q", out.String(), want)
	}
}
