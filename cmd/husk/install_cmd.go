package main

import (
	"errors"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/raphi011/husk/internal/config"
	"github.com/raphi011/husk/internal/gitdir"
	"github.com/raphi011/husk/internal/hook"
	"github.com/raphi011/husk/internal/log"
)

func newInstallCmd() *cobra.Command {
	var (
		only []string
		user bool
	)

	cmd := &cobra.Command{
		Use:     "install",
		Short:   "Install git hooks",
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long: `Install git hooks into .git/hooks.

Which slots are filled comes from .husk.toml at the repository root,
or from the defaults when no config file exists: a pre-push hook
running "go test". With hooks.user enabled (or --user), your own
scripts from .husk/hooks are adopted instead of generating.

A slot holding a script from another tool, an edited script, or a
different husk version is left alone. Delete the file and install
again to replace it.`,
		Example: `  husk install                     # Install hooks from .husk.toml
  husk install --hook pre-commit   # Fill a single slot
  husk install --user              # Adopt scripts from .husk/hooks`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)

			repo, err := resolveRepo()
			if errors.Is(err, gitdir.ErrNotFound) {
				// Running outside a repository is not an error state
				// for install, there is just nothing to do.
				l.Printf("Warning: %v, skipping hook install\n", err)
				return nil
			}
			if err != nil {
				return err
			}

			hooks := repo.Config.Hooks.Enabled()
			if len(only) > 0 {
				for _, name := range only {
					if !slices.Contains(hook.FixedHooks, name) {
						return unknownNameError("hook", name, hook.FixedHooks)
					}
				}
				// Normalize to install order regardless of flag order.
				hooks = hooks[:0]
				for _, name := range hook.FixedHooks {
					if slices.Contains(only, name) {
						hooks = append(hooks, name)
					}
				}
			}

			userMode := user || repo.Config.Hooks.User
			if !userMode && len(hooks) == 0 {
				l.Printf("No hooks enabled in %s, nothing to install\n", config.FileName)
				return nil
			}

			err = hook.Install(ctx, hook.Options{
				StartDir:  repo.StartDir,
				Version:   version,
				Homepage:  homepage,
				Hooks:     hooks,
				UserHooks: userMode,
				Commands:  hook.StepCommands(repo.Config.Run),
			})
			if err != nil {
				return err
			}

			if userMode {
				l.Printf("Adopted user hooks from %s\n", hook.UserHooksDir(repo.Root))
			} else {
				l.Printf("Installed hooks: %s\n", strings.Join(hooks, ", "))
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&only, "hook", nil, "Fill only this hook slot (repeatable)")
	cmd.Flags().BoolVar(&user, "user", false, "Adopt scripts from .husk/hooks instead of generating")
	cmd.RegisterFlagCompletionFunc("hook", cobra.FixedCompletions(hook.FixedHooks, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}
