// Package gitdir locates the .git control directory of the repository
// enclosing a given directory.
package gitdir

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound reports that no .git directory exists at or above the
// starting directory. Install treats it as "not inside a repository"
// and skips instead of failing.
var ErrNotFound = errors.New(".git directory not found")

// Resolve walks upward from start and returns the path of the
// enclosing repository's .git directory.
//
// A .git regular file (linked worktree or submodule) is followed
// exactly once: its content, trimmed of trailing newlines, must name
// an existing directory. The indirection is never chased recursively;
// a dangling target resolves to ErrNotFound.
func Resolve(start string) (string, error) {
	dir := start
	if !filepath.IsAbs(dir) {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return "", fmt.Errorf("resolve %s: %w", dir, err)
		}
		// Canonicalize so the upward walk sees real ancestors.
		// Fails if the starting directory does not exist.
		resolved, err := filepath.EvalSymlinks(abs)
		if err != nil {
			return "", fmt.Errorf("resolve %s: %w", dir, err)
		}
		dir = resolved
	}

	for {
		gd := filepath.Join(dir, ".git")
		fi, err := os.Stat(gd)
		if err == nil && fi.IsDir() {
			return gd, nil
		}
		if err == nil && fi.Mode().IsRegular() {
			content, err := os.ReadFile(gd)
			if err != nil {
				return "", fmt.Errorf("read %s: %w", gd, err)
			}
			target := strings.TrimRight(string(content), "\r\n")
			tfi, err := os.Stat(target)
			if err != nil || !tfi.IsDir() {
				return "", ErrNotFound
			}
			return target, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNotFound
		}
		dir = parent
	}
}

// RepoRoot returns the directory that contains the control directory.
// The .husk.toml config and the .husk/hooks source directory live here.
func RepoRoot(controlDir string) string {
	return filepath.Dir(controlDir)
}
