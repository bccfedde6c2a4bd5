package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/raphi011/husk/internal/log"
	"github.com/raphi011/husk/internal/output"
	"github.com/raphi011/husk/internal/ui/styles"
)

// homepage is recorded in every provenance marker husk writes. It is
// part of hook identity: changing it turns installed hooks stale.
const homepage = "https://github.com/raphi011/husk#readme"

var (
	// Global flags
	verbose bool
	quiet   bool
	chdir   string
)

// Command group IDs for organizing help output
const (
	GroupCore   = "core"
	GroupConfig = "config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "husk",
	Short: "Git hooks that run your checks",
	Long: `husk installs git hooks that run your checks before a commit or push
leaves your machine.

Hooks are generated from the step catalog selected in .husk.toml, or
adopted from your own scripts in .husk/hooks. A hook slot holding
anything husk did not write itself is never touched.`,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2, // Enable typo suggestions
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Flags are parsed by now, so the logger picks up -v and -q.
		ctx := cmd.Context()
		ctx = log.WithLogger(ctx, log.New(os.Stderr, verbose, quiet))
		ctx = output.WithPrinter(ctx, os.Stdout)
		cmd.SetContext(ctx)
		return nil
	},
	// Run is not set - shows help when no subcommand provided
}

// startDir returns the directory repository lookups begin at,
// honoring the -C flag.
func startDir() (string, error) {
	if chdir != "" {
		return filepath.Abs(chdir)
	}
	return os.Getwd()
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Pick the palette matching the terminal background
	styles.Init()

	// Store context for commands to use
	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Run 'husk -h' for help")
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show executed commands and skipped hook slots")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	rootCmd.PersistentFlags().StringVarP(&chdir, "dir", "C", "", "Run as if husk was started in this directory")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Add command groups for organized help output
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupCore, Title: "Core Commands:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"},
	)

	// Core commands
	rootCmd.AddCommand(newInstallCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newRunCmd())

	// Config commands
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newPathCmd())
}
