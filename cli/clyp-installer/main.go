package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/clyp-lang/clyp-installer/internal/cli"
	"github.com/clyp-lang/clyp-installer/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
	noColor    bool

	pythonPath string
	pinVersion string
	uninstall  bool
	silent     bool
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	rootCmd := newRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		cancel()
		os.Exit(errors.ExitCode(err))
	}

	cancel()
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clyp-installer",
		Short: "Install or uninstall the Clyp programming language",
		Long: `clyp-installer wraps pip behind a friendly prompt to install or uninstall
the clyp package into a Python environment of your choice. Run it with no
flags for an interactive install, or use --silent for unattended runs.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cli.RunInstaller(cmd.Context(), cli.Options{
				PythonPath: pythonPath,
				Version:    pinVersion,
				Uninstall:  uninstall,
				Silent:     silent,
			})
		},
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default: auto-detect)")
	cmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "verbose output")
	cmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	// Installer flags
	cmd.Flags().StringVarP(&pythonPath, "python", "p", "", "path to the Python interpreter to use")
	cmd.Flags().StringVarP(&pinVersion, "version", "v", "", "clyp version to install (default: latest)")
	cmd.Flags().BoolVarP(&uninstall, "uninstall", "u", false, "uninstall clyp instead of installing it")
	cmd.Flags().BoolVarP(&silent, "silent", "s", false, "suppress interactive prompts and assume defaults")

	// Set up CLI pkg variables
	cli.ConfigPath = &configPath
	cli.Verbose = &verbose
	cli.NoColor = &noColor

	// Add subcommands
	cmd.AddCommand(
		cli.NewBuildCmd(),
		cli.NewVersionCmd(),
	)

	return cmd
}
