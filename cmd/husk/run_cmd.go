package main

import (
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/raphi011/husk/internal/config"
	"github.com/raphi011/husk/internal/hook"
	"github.com/raphi011/husk/internal/log"
)

func newRunCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:               "run [step...]",
		Short:             "Run hook steps without git",
		GroupID:           GroupCore,
		ValidArgsFunction: completeStepArg,
		Long: `Run hook steps directly, without going through git.

With no arguments this runs the steps enabled in .husk.toml exactly
as an installed hook would: in catalog order, from the repository
root, aborting on the first failure. Naming steps runs just those, in
the order given, whether enabled or not.`,
		Example: `  husk run                # Run the enabled steps
  husk run lint           # Run one step, enabled or not
  husk run -d             # Print commands without executing`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			repo, err := resolveRepo()
			if err != nil {
				return err
			}

			commands, err := stepCommands(repo.Config.Run, args)
			if err != nil {
				return err
			}
			if len(commands) == 0 {
				l := log.FromContext(ctx)
				l.Printf("No steps enabled in %s\n", config.FileName)
				return nil
			}

			return hook.Run(ctx, repo.Root, commands, dryRun)
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "d", false, "Print commands without executing")

	return cmd
}

// stepCommands resolves the command lines to run: the enabled steps
// when no names are given, otherwise exactly the named catalog steps.
func stepCommands(run config.Run, names []string) ([]string, error) {
	if len(names) == 0 {
		return hook.StepCommands(run), nil
	}

	known := make([]string, len(hook.Catalog))
	for i, s := range hook.Catalog {
		known[i] = s.Name
	}

	cmds := make([]string, 0, len(names))
	for _, name := range names {
		i := slices.IndexFunc(hook.Catalog, func(s hook.Step) bool { return s.Name == name })
		if i < 0 {
			return nil, unknownNameError("step", name, known)
		}
		cmds = append(cmds, hook.Catalog[i].Command(run.All, run.StepArgs(name)))
	}
	return cmds, nil
}

// completeStepArg completes catalog step names.
func completeStepArg(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var names []string
	for _, s := range hook.Catalog {
		if strings.HasPrefix(s.Name, toComplete) && !slices.Contains(args, s.Name) {
			names = append(names, s.Name)
		}
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
