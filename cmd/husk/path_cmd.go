package main

import (
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/raphi011/husk/internal/gitdir"
	"github.com/raphi011/husk/internal/log"
	"github.com/raphi011/husk/internal/output"
)

func newPathCmd() *cobra.Command {
	var (
		hooksDir        bool
		copyToClipboard bool
	)

	cmd := &cobra.Command{
		Use:     "path",
		Short:   "Print repository paths for shell scripting",
		GroupID: GroupConfig,
		Args:    cobra.NoArgs,
		Long: `Print the root of the enclosing repository.

Use with shell command substitution: cd $(husk path)

With --hooks, prints the hooks directory of the control directory
instead, the place installed hook files live.`,
		Example: `  cd $(husk path)           # Jump to the repository root
  ls $(husk path --hooks)   # List the installed hook files
  husk path --copy          # Copy the repository root to the clipboard`,
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

			path := gitdir.RepoRoot(controlDir)
			if hooksDir {
				path = filepath.Join(controlDir, "hooks")
			}

			// Copy to clipboard if requested
			if copyToClipboard {
				l := log.FromContext(ctx)
				if err := clipboard.WriteAll(path); err != nil {
					l.Printf("Warning: failed to copy to clipboard: %v\n", err)
				}
			}

			out.Println(path)

			return nil
		},
	}

	cmd.Flags().BoolVar(&hooksDir, "hooks", false, "Print the .git/hooks directory instead of the repository root")
	cmd.Flags().BoolVar(&copyToClipboard, "copy", false, "Copy path to clipboard")

	return cmd
}
