package cli

import (
	"context"
	"fmt"

	"github.com/gookit/color"

	"github.com/clyp-lang/clyp-installer/internal/logger"
	"github.com/clyp-lang/clyp-installer/internal/prompt"
	"github.com/clyp-lang/clyp-installer/pkg/config"
	"github.com/clyp-lang/clyp-installer/pkg/errors"
	"github.com/clyp-lang/clyp-installer/pkg/pip"
	"github.com/clyp-lang/clyp-installer/pkg/pyenv"
	"github.com/clyp-lang/clyp-installer/pkg/runner"
)

// Options are the invocation options of a single installer run.
type Options struct {
	PythonPath string
	Version    string
	Uninstall  bool
	Silent     bool
}

// installerDeps bundles the collaborators of the install/uninstall flow so
// tests can substitute mocks for the subprocess and prompt layers.
type installerDeps struct {
	run         runner.Runner
	mgr         *pip.Manager
	prompter    *prompt.Prompter
	interactive bool

	discover func(context.Context, runner.Runner) []pyenv.Interpreter
	resolve  func(context.Context, runner.Runner, string) (pyenv.Interpreter, error)
}

func defaultDeps(silent bool) *installerDeps {
	run := runner.New()
	return &installerDeps{
		run:         run,
		mgr:         pip.NewManager(run),
		prompter:    prompt.New(),
		interactive: !silent && prompt.StdinIsTerminal(),
		discover:    pyenv.Discover,
		resolve:     pyenv.Resolve,
	}
}

// RunInstaller performs exactly one package-manager action per run.
func RunInstaller(ctx context.Context, opts Options) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyConfig(cfg, &opts)

	return runInstaller(ctx, defaultDeps(opts.Silent), opts)
}

// applyConfig fills options the flags left empty from the config file.
func applyConfig(cfg *config.Config, opts *Options) {
	if opts.PythonPath == "" {
		opts.PythonPath = cfg.Settings.PythonPath
	}
	if opts.Version == "" && !opts.Uninstall {
		opts.Version = cfg.Settings.Version
	}
}

func runInstaller(ctx context.Context, deps *installerDeps, opts Options) error {
	if opts.Uninstall && opts.Version != "" {
		return errors.Wrap(errors.ErrValidation, "--version cannot be combined with --uninstall")
	}

	interp, err := selectInterpreter(ctx, deps, opts)
	if err != nil {
		return err
	}
	logger.Debug("using interpreter", logger.Fields{
		"path":    interp.Path,
		"version": interp.Version,
	})

	if !pyenv.HasPip(ctx, deps.run, interp) {
		color.Warn.Printf("pip is not installed for %s.\n", interp.Path)
		color.Info.Println("Attempting to install pip using ensurepip...")
		if err := pyenv.EnsurePip(ctx, deps.run, interp); err != nil {
			return errors.Wrap(err, "pip is required to install or uninstall clyp")
		}
		color.Success.Println("pip installed successfully!")
	}

	if opts.Uninstall {
		return runUninstall(ctx, deps, interp)
	}
	return runInstall(ctx, deps, interp, opts)
}

// selectInterpreter picks the interpreter for this run: the explicit override
// when given, the first discovered candidate in silent mode, or the user's
// interactive choice.
func selectInterpreter(ctx context.Context, deps *installerDeps, opts Options) (pyenv.Interpreter, error) {
	if opts.PythonPath != "" {
		return deps.resolve(ctx, deps.run, opts.PythonPath)
	}

	candidates := deps.discover(ctx, deps.run)
	if len(candidates) == 0 {
		color.Error.Println("No Python installations found on your system.")
		color.Warn.Printf("Please install Python from %s\n", PythonDownloadURL)
		return pyenv.Interpreter{}, errors.Wrap(errors.ErrPythonNotFound, "no python installations found")
	}

	if !deps.interactive {
		return candidates[0], nil
	}

	options := make([]string, len(candidates))
	for i, c := range candidates {
		options[i] = c.String()
	}
	idx, err := deps.prompter.Select("Select the Python installation to use", options)
	if err != nil {
		return pyenv.Interpreter{}, errors.Wrap(errors.ErrPythonNotFound, "no python installation selected")
	}
	return candidates[idx], nil
}

func runUninstall(ctx context.Context, deps *installerDeps, interp pyenv.Interpreter) error {
	if deps.interactive {
		if !deps.prompter.Confirm("Uninstall %s using %s?", pip.PackageName, interp.Path) {
			color.Warn.Println("Uninstall cancelled.")
			return nil
		}
	}

	if err := deps.mgr.Uninstall(ctx, pip.UninstallOptions{Interpreter: interp}); err != nil {
		return err
	}

	color.Success.Println("\nClyp has been uninstalled!")
	return nil
}

func runInstall(ctx context.Context, deps *installerDeps, interp pyenv.Interpreter, opts Options) error {
	pin := opts.Version

	// The version prompt only appears for a fully interactive run that did
	// not already pin a version through flags or config.
	if pin == "" && deps.interactive && opts.PythonPath == "" {
		choice, err := deps.prompter.Select("Choose a version of Clyp to install", []string{
			"Latest (recommended)",
			"Specify version...",
		})
		if err != nil {
			return errors.Wrap(err, "no version choice selected")
		}
		if choice == 1 {
			pin, err = deps.prompter.Input("Enter the Clyp version (e.g. 1.2.3)")
			if err != nil {
				return errors.Wrap(err, "failed to read version")
			}
		}
	}

	installErr := deps.mgr.Install(ctx, pip.InstallOptions{Interpreter: interp, Version: pin})
	installed := installErr == nil && deps.mgr.Verify(ctx, interp)

	// Inside a virtualenv with uv available, a failed pip install gets one
	// shot through uv before giving up.
	if !installed && pyenv.InVirtualEnv(ctx, deps.run, interp) && pyenv.HasUV(ctx, deps.run, interp) {
		color.Warn.Println("pip install failed. Trying to install with uv...")
		if uvErr := deps.mgr.InstallWithUV(ctx, pip.InstallOptions{Interpreter: interp, Version: pin}); uvErr == nil {
			installed = deps.mgr.Verify(ctx, interp)
		}
	}

	if !installed {
		color.Error.Println("\nClyp installation failed. Please check the output above for errors.")
		if installErr != nil {
			return installErr
		}
		return errors.Wrap(errors.ErrPipInstall, fmt.Sprintf("%s did not import after installation", pip.PackageName))
	}

	color.Success.Println("\nClyp is now installed! Restart your shell to use it.")
	return nil
}
