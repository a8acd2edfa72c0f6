package cli

// Default values for CLI flags and user-facing messages.
const (
	// PythonDownloadURL is shown when no interpreter can be found.
	PythonDownloadURL = "https://www.python.org/downloads/"
	// DefaultBuildScript is the installer entry script the build command compiles.
	DefaultBuildScript = "install.py"
	// DefaultBuildOutputDir is where compiled executables are placed.
	DefaultBuildOutputDir = "dist"
)
