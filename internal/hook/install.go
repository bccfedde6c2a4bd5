package hook

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/raphi011/husk/internal/gitdir"
	"github.com/raphi011/husk/internal/log"
)

// FixedHooks names the hook slots a generated script can occupy, in
// install order.
var FixedHooks = []string{"pre-push", "pre-commit", "post-merge"}

// UserHooksDir returns the directory scanned for operator-authored
// hook scripts in user-hooks mode.
func UserHooksDir(repoRoot string) string {
	return filepath.Join(repoRoot, ".husk", "hooks")
}

// Options selects what an install pass writes.
type Options struct {
	// StartDir is where control directory resolution begins. It is
	// also recorded verbatim in generated scripts.
	StartDir string

	// Version and Homepage form the provenance marker.
	Version  string
	Homepage string

	// Hooks lists the fixed slots to fill with the generated script.
	Hooks []string

	// UserHooks switches to adopting .husk/hooks scripts instead of
	// generating. Takes priority over Hooks when both are set.
	UserHooks bool

	// Commands are the step command lines, already in catalog order.
	Commands []string
}

// Install runs one install pass. It resolves the control directory
// once and fills each selected slot, skipping any slot whose current
// content the ownership check protects. A gitdir.ErrNotFound from
// resolution propagates unwrapped so the caller can downgrade it to a
// warning; every other error aborts the pass.
func Install(ctx context.Context, opts Options) error {
	l := log.FromContext(ctx)

	controlDir, err := gitdir.Resolve(opts.StartDir)
	if err != nil {
		return err
	}
	hooksDir := filepath.Join(controlDir, "hooks")
	marker := markerLine(opts.Version, opts.Homepage)

	if opts.UserHooks {
		return installUserHooks(l, controlDir, hooksDir, marker)
	}

	script := renderScript(opts.Commands, opts.Version, opts.Homepage,
		gitdir.RepoRoot(controlDir), opts.StartDir)
	for _, name := range opts.Hooks {
		if err := installHook(l, hooksDir, name, marker, script); err != nil {
			return err
		}
	}
	return nil
}

// installHook writes the generated script into one slot unless the
// slot's current content is protected.
func installHook(l *log.Logger, hooksDir, name, marker, script string) error {
	path := filepath.Join(hooksDir, name)
	if protected(path, marker) {
		l.Debug("skipping protected hook", "hook", name, "path", path)
		return nil
	}

	f, err := createHookFile(path)
	if err != nil {
		return fmt.Errorf("create hook %s: %w", name, err)
	}
	if _, err := f.WriteString(script); err != nil {
		f.Close()
		return fmt.Errorf("write hook %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write hook %s: %w", name, err)
	}

	l.Debug("installed hook", "hook", name, "path", path)
	return nil
}

// installUserHooks adopts every eligible script from .husk/hooks. The
// source directory must exist and contain at least one eligible file.
func installUserHooks(l *log.Logger, controlDir, hooksDir, marker string) error {
	srcDir := UserHooksDir(gitdir.RepoRoot(controlDir))

	fi, err := os.Stat(srcDir)
	if err != nil || !fi.IsDir() {
		return fmt.Errorf("%w: %s", ErrInvalidUserHooksDir, srcDir)
	}

	entries, err := os.ReadDir(srcDir)
	if err != nil {
		return fmt.Errorf("read %s: %w", srcDir, err)
	}
	var sources []string
	for _, e := range entries {
		if eligibleSource(e) {
			sources = append(sources, filepath.Join(srcDir, e.Name()))
		}
	}
	if len(sources) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidUserHooksDir, srcDir)
	}

	for _, src := range sources {
		if err := adoptUserHook(l, src, hooksDir, marker); err != nil {
			return err
		}
	}
	return nil
}
