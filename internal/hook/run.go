package hook

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/raphi011/husk/internal/log"
	"github.com/raphi011/husk/internal/output"
)

// Run executes command steps directly, without going through git.
// Steps run in dir with the shell the generated scripts use, echo
// their command line first, and abort on the first failure, matching
// the generated script's set -e behavior. With dryRun the commands are
// printed but not executed.
func Run(ctx context.Context, dir string, commands []string, dryRun bool) error {
	l := log.FromContext(ctx)
	out := output.FromContext(ctx)

	for _, cmdline := range commands {
		if dryRun {
			out.Printf("[dry-run] %s\n", cmdline)
			continue
		}

		out.Printf("+%s\n", cmdline)
		c := exec.CommandContext(ctx, "sh", "-c", cmdline)
		c.Dir = dir
		c.Stdout = os.Stdout
		c.Stderr = os.Stderr
		c.Stdin = os.Stdin

		start := time.Now()
		done := l.Command(dir, "sh", "-c", cmdline)
		err := c.Run()
		done(time.Since(start))
		if err != nil {
			return fmt.Errorf("step %q: %w", cmdline, err)
		}
	}
	return nil
}
