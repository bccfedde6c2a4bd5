package main

import (
	"slices"

	"github.com/spf13/cobra"

	"github.com/raphi011/husk/internal/gitdir"
	"github.com/raphi011/husk/internal/hook"
	"github.com/raphi011/husk/internal/log"
	"github.com/raphi011/husk/internal/output"
	"github.com/raphi011/husk/internal/ui/static"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "status",
		Short:   "Show the state of installed hooks",
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long: `Show which hooks are installed and who owns them.

The fixed slots (pre-push, pre-commit, post-merge) are always listed.
Any other hooks found in .git/hooks, like adopted user hooks, follow.

States:
  installed  written by this husk version
  stale      written by another husk version, never upgraded in place
  foreign    not written by husk, never touched
  missing    no hook file present`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			start, err := startDir()
			if err != nil {
				return err
			}
			controlDir, err := gitdir.Resolve(start)
			if err != nil {
				return err
			}

			statuses, err := hook.InspectAll(controlDir, version, homepage)
			if err != nil {
				return err
			}

			rows := make([][]string, len(statuses))
			for i, st := range statuses {
				rows[i] = static.StatusRow(st)
			}
			out.Printf("%s\n", static.RenderTable(static.StatusHeaders, rows))

			stale := slices.ContainsFunc(statuses, func(st hook.Status) bool {
				return st.State == hook.StateStale
			})
			if stale {
				l := log.FromContext(ctx)
				l.Printf("\nStale hooks come from another husk version. Delete the file and run 'husk install' to replace it.\n")
			}
			return nil
		},
	}

	return cmd
}
