package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shipit-dev/shipit/internal/config"
	"github.com/shipit-dev/shipit/internal/deploy"
)

// NewDevCmd creates the 'dev' command: deploy interactively.
func NewDevCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dev",
		Short: "Build and run the dev container in the foreground",
		Long: `Build the image, replace any previous dev container, and run the new
one attached to this terminal. The container is removed the moment it
stops, and the command exits with the container's own exit code once it
does (typically after an interrupt).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDeploy(cmd, deploy.Interactive)
		},
	}
}

// NewProdCmd creates the 'prod' command: deploy detached.
func NewProdCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "prod",
		Short: "Build and run the prod container detached with restart-always",
		Long: `Build the image, replace any previous prod container, and start the new
one in the background. The runtime restarts it after any exit until it is
explicitly torn down. The command exits 0 as soon as the runtime accepts
the run request.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDeploy(cmd, deploy.DetachedPersistent)
		},
	}
}

// runDeploy executes the full deploy sequence for the given mode.
func (a *App) runDeploy(cmd *cobra.Command, mode deploy.Mode) error {
	cfg, err := config.LoadConfig(a.projectRoot)
	if err != nil {
		return err
	}

	rt, err := a.newRuntime(cfg)
	if err != nil {
		return err
	}

	env := cfg.Dev
	if mode == deploy.DetachedPersistent {
		env = cfg.Prod
	}

	ports, err := env.PortMappings()
	if err != nil {
		return err
	}

	// A project without an env file deploys without one; the runtime
	// rejects a --env-file flag pointing at a missing path.
	envFile := cfg.EnvFile
	if _, err := os.Stat(envFile); err != nil {
		envFile = ""
	}

	req := deploy.Request{
		Ref:          cfg.Image.Ref(),
		BuildContext: cfg.Build.Context,
		Name:         env.ContainerName,
		Ports:        ports,
		EnvFile:      envFile,
		Mode:         mode,
	}

	out := cmd.OutOrStdout()
	styles := stylesFor(out)

	d := deploy.New(rt)
	d.OnEvent = func(e deploy.Event) {
		fmt.Fprintln(out, styles.StageLine(e))
	}

	if mode == deploy.Interactive {
		// Keep this process alive through terminal interrupts: the
		// attached runtime CLI receives them, the container exits, and we
		// still get to report its exit code.
		restore := shieldInterrupts()
		defer restore()
	}

	result, err := d.Deploy(cmd.Context(), req)
	if err != nil {
		return err
	}

	if mode == deploy.DetachedPersistent {
		fmt.Fprintln(out, styles.OK.Render(
			fmt.Sprintf("started %s from %s", result.ContainerName, req.Ref)))
		return nil
	}

	if result.ExitCode != 0 {
		return &ExitCodeError{Code: result.ExitCode}
	}
	return nil
}
