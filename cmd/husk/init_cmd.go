package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/raphi011/husk/internal/config"
	"github.com/raphi011/husk/internal/gitdir"
	"github.com/raphi011/husk/internal/hook"
	"github.com/raphi011/husk/internal/log"
	"github.com/raphi011/husk/internal/output"
	"github.com/raphi011/husk/internal/ui/prompt"
)

func newInitCmd() *cobra.Command {
	var (
		force   bool
		stdout  bool
		noInput bool
		user    bool
	)

	cmd := &cobra.Command{
		Use:     "init",
		Short:   "Create a .husk.toml config file",
		GroupID: GroupConfig,
		Args:    cobra.NoArgs,
		Long: `Create a .husk.toml config file at the repository root.

On a terminal this walks through hook and step selection
interactively. Otherwise, or with --no-input, the defaults are
written: a pre-push hook running "go test".`,
		Example: `  husk init          # Interactive setup
  husk init -f       # Overwrite an existing config
  husk init -s       # Print the default config instead of writing it
  husk init --user   # Configure adopting scripts from .husk/hooks`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			cfg := config.Default()
			if user {
				cfg = config.Config{Hooks: config.Hooks{User: true}}
			}

			if stdout {
				out.Printf("%s", config.Render(cfg))
				return nil
			}

			start, err := startDir()
			if err != nil {
				return err
			}
			controlDir, err := gitdir.Resolve(start)
			if err != nil {
				return err
			}
			root := gitdir.RepoRoot(controlDir)

			// Check before prompting, so the wizard cannot end in a
			// refusal to write.
			if !force {
				if _, err := os.Stat(config.Path(root)); err == nil {
					return fmt.Errorf("config file already exists: %s (use -f to overwrite)", config.Path(root))
				}
			}

			interactive := !noInput && !user && isTerminal()
			if interactive {
				cfg, err = configWizard()
				if err != nil {
					return err
				}
			}

			path, err := config.Init(root, cfg, force)
			if err != nil {
				return err
			}
			l.Printf("Created config file: %s\n", path)

			if cfg.Hooks.User {
				// Give the operator a place to drop their scripts.
				dir := hook.UserHooksDir(root)
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return err
				}
				l.Printf("Created user hooks directory: %s\n", dir)
			}

			if interactive {
				res, err := prompt.Confirm("Install the hooks now?")
				if err != nil {
					return err
				}
				if res.Confirmed {
					if err := installFromConfig(ctx, start, cfg); err != nil {
						return err
					}
					l.Printf("Hooks installed\n")
					return nil
				}
			}

			l.Printf("Run 'husk install' to install the hooks\n")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")
	cmd.Flags().BoolVarP(&stdout, "stdout", "s", false, "Print config to stdout instead of writing it")
	cmd.Flags().BoolVar(&noInput, "no-input", false, "Skip the interactive setup and write the defaults")
	cmd.Flags().BoolVar(&user, "user", false, "Write a config that adopts scripts from .husk/hooks")

	return cmd
}

// isTerminal reports whether stdin is attached to a terminal.
func isTerminal() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

// configWizard walks through hook and step selection. A cancelled
// prompt exits without writing anything.
func configWizard() (config.Config, error) {
	mode, err := prompt.Select("How should husk manage your hooks?", []string{
		"Generate hooks from the step catalog",
		"Adopt my own scripts from .husk/hooks",
	})
	if err != nil {
		return config.Config{}, err
	}
	if mode.Cancelled {
		os.Exit(1)
	}
	if mode.Index == 1 {
		return config.Config{Hooks: config.Hooks{User: true}}, nil
	}

	hookDesc := map[string]string{
		"pre-push":   "runs before a push leaves your machine",
		"pre-commit": "runs before every commit",
		"post-merge": "runs after a merge or pull",
	}
	hookOpts := make([]prompt.Option, len(hook.FixedHooks))
	for i, name := range hook.FixedHooks {
		hookOpts[i] = prompt.Option{Label: name, Description: hookDesc[name], Selected: name == "pre-push"}
	}
	hooks, err := prompt.MultiSelect("Which hooks should husk install?", hookOpts)
	if err != nil {
		return config.Config{}, err
	}
	if hooks.Cancelled {
		os.Exit(1)
	}

	stepOpts := make([]prompt.Option, len(hook.Catalog))
	for i, s := range hook.Catalog {
		stepOpts[i] = prompt.Option{Label: s.Name, Description: s.Command(false, ""), Selected: s.Name == "test"}
	}
	steps, err := prompt.MultiSelect("Which steps should the hooks run?", stepOpts)
	if err != nil {
		return config.Config{}, err
	}
	if steps.Cancelled {
		os.Exit(1)
	}

	all, err := prompt.Confirm("Run steps across the whole module (./...)?")
	if err != nil {
		return config.Config{}, err
	}
	if all.Cancelled {
		os.Exit(1)
	}

	var cfg config.Config
	for _, i := range hooks.Indices {
		switch hook.FixedHooks[i] {
		case "pre-push":
			cfg.Hooks.PrePush = true
		case "pre-commit":
			cfg.Hooks.PreCommit = true
		case "post-merge":
			cfg.Hooks.PostMerge = true
		}
	}
	for _, i := range steps.Indices {
		switch hook.Catalog[i].Name {
		case "test":
			cfg.Run.Test = true
		case "check":
			cfg.Run.Check = true
		case "lint":
			cfg.Run.Lint = true
		case "format-check":
			cfg.Run.FormatCheck = true
		}
	}
	cfg.Run.All = all.Confirmed
	return cfg, nil
}
