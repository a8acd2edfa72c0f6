package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/gookit/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/clyp-lang/clyp-installer/internal/prompt"
	"github.com/clyp-lang/clyp-installer/pkg/config"
	pkgerrors "github.com/clyp-lang/clyp-installer/pkg/errors"
	"github.com/clyp-lang/clyp-installer/pkg/pip"
	"github.com/clyp-lang/clyp-installer/pkg/pyenv"
	"github.com/clyp-lang/clyp-installer/pkg/runner"
	mockrunner "github.com/clyp-lang/clyp-installer/pkg/runner/mocks"
)

func init() {
	color.Disable()
}

const pythonPath = "/usr/bin/python3"

var discovered = []pyenv.Interpreter{
	{Path: pythonPath, Version: "Python 3.12.1"},
	{Path: "/usr/local/bin/python3", Version: "Python 3.11.9"},
}

// testDeps builds installerDeps around a mock runner and a scripted prompter.
func testDeps(t *testing.T, input string, interactive bool) (*installerDeps, *mockrunner.MockRunner, *bytes.Buffer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	run := mockrunner.NewMockRunner(ctrl)
	promptOut := &bytes.Buffer{}

	deps := &installerDeps{
		run:         run,
		mgr:         pip.NewManagerWithOutput(run, &bytes.Buffer{}, &bytes.Buffer{}),
		prompter:    prompt.NewWithStreams(strings.NewReader(input), promptOut),
		interactive: interactive,
		discover: func(context.Context, runner.Runner) []pyenv.Interpreter {
			return discovered
		},
		resolve: func(_ context.Context, _ runner.Runner, path string) (pyenv.Interpreter, error) {
			return pyenv.Interpreter{Path: path, Version: "Python 3.12.1"}, nil
		},
	}
	return deps, run, promptOut
}

func expectHasPip(run *mockrunner.MockRunner, path string) *gomock.Call {
	return run.EXPECT().
		Run(gomock.Any(), path, "-m", "pip", "--version").
		Return(&runner.Result{Stdout: "pip 24.0\n"}, nil)
}

func expectVerify(run *mockrunner.MockRunner, path string, ok bool) *gomock.Call {
	result := &runner.Result{}
	if !ok {
		result.ExitCode = 1
	}
	return run.EXPECT().
		Run(gomock.Any(), path, "-c", "import clyp").
		Return(result, nil)
}

func TestRunInstaller_RejectsUninstallWithVersion(t *testing.T) {
	deps, _, _ := testDeps(t, "", false)

	err := runInstaller(context.Background(), deps, Options{Uninstall: true, Version: "1.2.3"})
	require.Error(t, err)
	assert.ErrorIs(t, err, pkgerrors.ErrValidation)
}

func TestRunInstaller_SilentInstallLatest(t *testing.T) {
	deps, run, promptOut := testDeps(t, "", false)

	expectHasPip(run, pythonPath)
	run.EXPECT().
		RunStream(gomock.Any(), gomock.Any(), gomock.Any(), pythonPath, "-m", "pip", "install", "clyp").
		Return(&runner.Result{}, nil)
	expectVerify(run, pythonPath, true)

	err := runInstaller(context.Background(), deps, Options{Silent: true})
	require.NoError(t, err)
	assert.Empty(t, promptOut.String(), "silent mode must never prompt")
}

func TestRunInstaller_SilentInstallPinned(t *testing.T) {
	deps, run, promptOut := testDeps(t, "", false)

	expectHasPip(run, pythonPath)
	run.EXPECT().
		RunStream(gomock.Any(), gomock.Any(), gomock.Any(), pythonPath, "-m", "pip", "install", "clyp==1.2.3").
		Return(&runner.Result{}, nil)
	expectVerify(run, pythonPath, true)

	err := runInstaller(context.Background(), deps, Options{Silent: true, Version: "1.2.3"})
	require.NoError(t, err)
	assert.Empty(t, promptOut.String(), "silent mode must never prompt")
}

func TestRunInstaller_ExplicitPythonOverride(t *testing.T) {
	deps, run, _ := testDeps(t, "", false)

	custom := "/opt/py/bin/python3"
	expectHasPip(run, custom)
	run.EXPECT().
		RunStream(gomock.Any(), gomock.Any(), gomock.Any(), custom, "-m", "pip", "install", "clyp").
		Return(&runner.Result{}, nil)
	expectVerify(run, custom, true)

	err := runInstaller(context.Background(), deps, Options{PythonPath: custom, Silent: true})
	require.NoError(t, err)
}

func TestRunInstaller_ExplicitPythonNotFound(t *testing.T) {
	deps, _, _ := testDeps(t, "", false)
	deps.resolve = func(context.Context, runner.Runner, string) (pyenv.Interpreter, error) {
		return pyenv.Interpreter{}, pkgerrors.ErrPythonNotFound
	}

	err := runInstaller(context.Background(), deps, Options{PythonPath: "/nonexistent", Silent: true})
	assert.ErrorIs(t, err, pkgerrors.ErrPythonNotFound)
}

func TestRunInstaller_NoInterpreters(t *testing.T) {
	deps, _, _ := testDeps(t, "", false)
	deps.discover = func(context.Context, runner.Runner) []pyenv.Interpreter {
		return nil
	}

	err := runInstaller(context.Background(), deps, Options{Silent: true})
	assert.ErrorIs(t, err, pkgerrors.ErrPythonNotFound)
}

func TestRunInstaller_SilentUninstall(t *testing.T) {
	deps, run, promptOut := testDeps(t, "", false)

	expectHasPip(run, pythonPath)
	// No install call may happen on an uninstall run; the mock controller
	// enforces that only this uninstall invocation occurs.
	run.EXPECT().
		RunStream(gomock.Any(), gomock.Any(), gomock.Any(), pythonPath, "-m", "pip", "uninstall", "-y", "clyp").
		Return(&runner.Result{}, nil)

	err := runInstaller(context.Background(), deps, Options{Uninstall: true, Silent: true})
	require.NoError(t, err)
	assert.Empty(t, promptOut.String(), "silent mode must never prompt")
}

func TestRunInstaller_InteractiveUninstallConfirmed(t *testing.T) {
	deps, run, promptOut := testDeps(t, "y\n", true)

	expectHasPip(run, pythonPath)
	run.EXPECT().
		RunStream(gomock.Any(), gomock.Any(), gomock.Any(), pythonPath, "-m", "pip", "uninstall", "-y", "clyp").
		Return(&runner.Result{}, nil)

	// Interpreter selection is skipped via the explicit path so only the
	// uninstall confirmation is prompted.
	err := runInstaller(context.Background(), deps, Options{PythonPath: pythonPath, Uninstall: true})
	require.NoError(t, err)
	assert.Contains(t, promptOut.String(), "Uninstall clyp")
}

func TestRunInstaller_InteractiveUninstallDeclined(t *testing.T) {
	deps, run, _ := testDeps(t, "n\n", true)

	expectHasPip(run, pythonPath)
	// No uninstall call expected after the user declines.

	err := runInstaller(context.Background(), deps, Options{PythonPath: pythonPath, Uninstall: true})
	require.NoError(t, err)
}

func TestRunInstaller_InteractiveSelectAndSpecifyVersion(t *testing.T) {
	// Answers: pick interpreter 2, choose "Specify version...", type 2.0.1.
	deps, run, promptOut := testDeps(t, "2\n2\n2.0.1\n", true)

	second := discovered[1].Path
	expectHasPip(run, second)
	run.EXPECT().
		RunStream(gomock.Any(), gomock.Any(), gomock.Any(), second, "-m", "pip", "install", "clyp==2.0.1").
		Return(&runner.Result{}, nil)
	expectVerify(run, second, true)

	err := runInstaller(context.Background(), deps, Options{})
	require.NoError(t, err)
	assert.Contains(t, promptOut.String(), "Select the Python installation to use")
	assert.Contains(t, promptOut.String(), "Latest (recommended)")
}

func TestRunInstaller_InteractiveLatest(t *testing.T) {
	// Answers: pick interpreter 1, choose "Latest (recommended)".
	deps, run, _ := testDeps(t, "1\n1\n", true)

	expectHasPip(run, pythonPath)
	run.EXPECT().
		RunStream(gomock.Any(), gomock.Any(), gomock.Any(), pythonPath, "-m", "pip", "install", "clyp").
		Return(&runner.Result{}, nil)
	expectVerify(run, pythonPath, true)

	err := runInstaller(context.Background(), deps, Options{})
	require.NoError(t, err)
}

func TestRunInstaller_BootstrapsPip(t *testing.T) {
	deps, run, _ := testDeps(t, "", false)

	run.EXPECT().
		Run(gomock.Any(), pythonPath, "-m", "pip", "--version").
		Return(&runner.Result{ExitCode: 1}, nil)
	run.EXPECT().
		Run(gomock.Any(), pythonPath, "-m", "ensurepip", "--upgrade").
		Return(&runner.Result{}, nil)
	run.EXPECT().
		RunStream(gomock.Any(), gomock.Any(), gomock.Any(), pythonPath, "-m", "pip", "install", "clyp").
		Return(&runner.Result{}, nil)
	expectVerify(run, pythonPath, true)

	err := runInstaller(context.Background(), deps, Options{Silent: true})
	require.NoError(t, err)
}

func TestRunInstaller_PipBootstrapFails(t *testing.T) {
	deps, run, _ := testDeps(t, "", false)

	run.EXPECT().
		Run(gomock.Any(), pythonPath, "-m", "pip", "--version").
		Return(&runner.Result{ExitCode: 1}, nil)
	run.EXPECT().
		Run(gomock.Any(), pythonPath, "-m", "ensurepip", "--upgrade").
		Return(&runner.Result{ExitCode: 1, Stderr: "no ensurepip"}, nil)

	err := runInstaller(context.Background(), deps, Options{Silent: true})
	require.Error(t, err)
	assert.ErrorIs(t, err, pkgerrors.ErrPipMissing)
}

func TestRunInstaller_UVFallback(t *testing.T) {
	deps, run, _ := testDeps(t, "", false)

	expectHasPip(run, pythonPath)
	run.EXPECT().
		RunStream(gomock.Any(), gomock.Any(), gomock.Any(), pythonPath, "-m", "pip", "install", "clyp").
		Return(&runner.Result{ExitCode: 1, Stderr: "pip blew up"}, nil)
	run.EXPECT().
		Run(gomock.Any(), pythonPath, "-c", gomock.Any()).
		Return(&runner.Result{Stdout: "True\n"}, nil) // venv probe
	run.EXPECT().
		Run(gomock.Any(), pythonPath, "-m", "uv", "--version").
		Return(&runner.Result{Stdout: "uv 0.4.0\n"}, nil)
	run.EXPECT().
		RunStream(gomock.Any(), gomock.Any(), gomock.Any(), pythonPath, "-m", "uv", "pip", "install", "clyp").
		Return(&runner.Result{}, nil)
	expectVerify(run, pythonPath, true)

	err := runInstaller(context.Background(), deps, Options{Silent: true})
	require.NoError(t, err)
}

func TestRunInstaller_InstallFailureSurfacesPipError(t *testing.T) {
	deps, run, _ := testDeps(t, "", false)

	expectHasPip(run, pythonPath)
	run.EXPECT().
		RunStream(gomock.Any(), gomock.Any(), gomock.Any(), pythonPath, "-m", "pip", "install", "clyp==9.9.9").
		Return(&runner.Result{ExitCode: 1, Stderr: "ERROR: No matching distribution found"}, nil)
	run.EXPECT().
		Run(gomock.Any(), pythonPath, "-c", gomock.Any()).
		Return(&runner.Result{Stdout: "False\n"}, nil) // venv probe: not a venv

	err := runInstaller(context.Background(), deps, Options{Silent: true, Version: "9.9.9"})
	require.Error(t, err)
	assert.ErrorIs(t, err, pkgerrors.ErrPipInstall)
	assert.Contains(t, err.Error(), "No matching distribution found")
	assert.Equal(t, 1, pkgerrors.ExitCode(err))
}

func TestApplyConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Settings.PythonPath = "/opt/py/bin/python3"
	cfg.Settings.Version = "3.0.0"

	t.Run("fills empty options", func(t *testing.T) {
		opts := Options{}
		applyConfig(cfg, &opts)
		assert.Equal(t, "/opt/py/bin/python3", opts.PythonPath)
		assert.Equal(t, "3.0.0", opts.Version)
	})

	t.Run("flags win over config", func(t *testing.T) {
		opts := Options{PythonPath: "/usr/bin/python3", Version: "1.0.0"}
		applyConfig(cfg, &opts)
		assert.Equal(t, "/usr/bin/python3", opts.PythonPath)
		assert.Equal(t, "1.0.0", opts.Version)
	})

	t.Run("uninstall ignores config version pin", func(t *testing.T) {
		opts := Options{Uninstall: true}
		applyConfig(cfg, &opts)
		assert.Empty(t, opts.Version)
	})
}
