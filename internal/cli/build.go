package cli

import (
	"context"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/clyp-lang/clyp-installer/pkg/buildtool"
	"github.com/clyp-lang/clyp-installer/pkg/errors"
	"github.com/clyp-lang/clyp-installer/pkg/pyenv"
)

// NewBuildCmd creates the build command.
func NewBuildCmd() *cobra.Command {
	var (
		script     string
		outputDir  string
		pythonPath string
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Compile the installer into a standalone executable",
		Long: `Compile the installer entry script into a standalone executable using the
Nuitka ahead-of-time compiler, so packaging channels like WinGet can ship it.
The compiler's exit status is propagated verbatim.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := loadConfig(); err != nil {
				return err
			}
			return runBuild(cmd.Context(), defaultDeps(true), script, outputDir, pythonPath)
		},
	}

	cmd.Flags().StringVar(&script, "script", DefaultBuildScript, "Installer entry script to compile")
	cmd.Flags().StringVar(&outputDir, "output-dir", DefaultBuildOutputDir, "Directory for the compiled executable")
	cmd.Flags().StringVarP(&pythonPath, "python", "p", "", "Python interpreter that has the compiler installed")

	return cmd
}

func runBuild(ctx context.Context, deps *installerDeps, script, outputDir, pythonPath string) error {
	var interp pyenv.Interpreter
	var err error

	if pythonPath != "" {
		interp, err = deps.resolve(ctx, deps.run, pythonPath)
		if err != nil {
			return err
		}
	} else {
		candidates := deps.discover(ctx, deps.run)
		if len(candidates) == 0 {
			return errors.Wrap(errors.ErrPythonNotFound, "no python installations found for the build toolchain")
		}
		interp = candidates[0]
	}

	toolchain := buildtool.New(deps.run, interp)

	if err := toolchain.Check(ctx); err != nil {
		color.Error.Println("Nuitka is not installed or not invocable for this interpreter.")
		color.Warn.Printf("Install it with: %s -m pip install nuitka\n", interp.Path)
		return err
	}

	if err := toolchain.Compile(ctx, script, outputDir); err != nil {
		color.Error.Println("Build failed.")
		return err
	}

	color.Success.Printf("Build succeeded: compiled %s into %s\n", script, outputDir)
	return nil
}
