// Package hook generates, adopts, and installs git hook scripts.
//
// Hooks are written into the repository's .git/hooks directory, either
// generated from the fixed step catalog or adopted from operator-authored
// scripts in .husk/hooks. Every write goes through an ownership check so
// a hook placed by a human or another tool is never overwritten.
//
// # Ownership
//
// Generated and adopted scripts carry a provenance comment on their third
// line ("This hook was set by husk v<version>: <homepage>"). Before
// writing, the target's third line is inspected:
//
//   - missing file: safe to write
//   - no provenance marker: foreign, never touched
//   - marker with a different version: still never touched (stale hooks
//     are reported by status, not upgraded in place)
//   - marker matching the current version: rewritten with identical bytes
//
// # Generated scripts
//
// A generated hook runs the enabled steps of the fixed catalog in a fixed
// order (test, check, lint, format-check) under set -e, echoing each
// command before running it. All enabled hook slots receive the same
// script.
//
// # Adopted scripts
//
// User-hooks mode copies every executable file from .husk/hooks into
// .git/hooks, splicing the provenance comment in after the shebang so the
// ownership check recognizes the copies on later runs.
package hook
