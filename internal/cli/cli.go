package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shipit-dev/shipit/internal/config"
	"github.com/shipit-dev/shipit/internal/runtime"
)

// App represents the CLI application with all wired dependencies
type App struct {
	// Root command
	rootCmd *cobra.Command

	// projectRoot is the directory holding the build context and config
	projectRoot string

	// newRuntime builds the container runtime for a loaded config.
	// Replaced with a fake in tests.
	newRuntime func(cfg *config.Config) (runtime.Runtime, error)

	// Version information
	version string
	commit  string
	date    string
}

// New creates a new CLI application
func New() *App {
	app := &App{
		newRuntime: defaultRuntime,
	}
	app.setupRootCmd()
	return app
}

// Execute runs the CLI application
func (a *App) Execute() error {
	return a.rootCmd.Execute()
}

// SetVersion sets the version string for the version command
func (a *App) SetVersion(version, commit, date string) {
	a.version = version
	a.commit = commit
	a.date = date
}

// setupRootCmd configures the root Cobra command
func (a *App) setupRootCmd() {
	a.rootCmd = &cobra.Command{
		Use:   "shipit",
		Short: "Single-container deploy tool",
		Long: `shipit builds a container image and replaces the running container
with a fresh one: build, tear down the old container, launch the new one.

The dev environment runs attached to the terminal and cleans up after
itself; the prod environment runs detached with a restart-always policy.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	a.rootCmd.PersistentFlags().StringVarP(&a.projectRoot, "project", "C", ".",
		"Project root containing the build context and config")

	a.rootCmd.AddCommand(
		NewDevCmd(a),
		NewProdCmd(a),
		NewDownCmd(a),
		NewStatusCmd(a),
		NewVersionCmd(a),
	)
}

// defaultRuntime resolves the configured runtime binary, auto-detecting
// docker or podman when the config says "auto".
func defaultRuntime(cfg *config.Config) (runtime.Runtime, error) {
	bin := cfg.Runtime
	if bin == "" || bin == "auto" {
		detected, err := runtime.DetectBinary()
		if err != nil {
			return nil, err
		}
		bin = detected
	}
	return runtime.NewCLIRuntime(bin), nil
}

// ExitCodeError carries a specific process exit code through the cobra
// error path, so an interactive deploy can exit with the container's own
// exit code instead of a generic 1.
type ExitCodeError struct {
	Code int
}

func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}
