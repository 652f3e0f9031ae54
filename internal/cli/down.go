package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shipit-dev/shipit/internal/config"
	"github.com/shipit-dev/shipit/internal/deploy"
)

// NewDownCmd creates the 'down' command for tearing down deployed
// containers without redeploying.
func NewDownCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "down [dev|prod|all]",
		Short: "Stop and remove deployed containers",
		Long: `Stop and remove the dev and/or prod container. Teardown is idempotent:
containers that do not exist are skipped silently, so running down on a
fresh host succeeds and changes nothing.`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"dev", "prod", "all"},
		RunE: func(cmd *cobra.Command, args []string) error {
			target := "all"
			if len(args) == 1 {
				target = args[0]
			}
			return a.runDown(cmd, target)
		},
	}
}

func (a *App) runDown(cmd *cobra.Command, target string) error {
	cfg, err := config.LoadConfig(a.projectRoot)
	if err != nil {
		return err
	}

	rt, err := a.newRuntime(cfg)
	if err != nil {
		return err
	}

	var names []string
	switch target {
	case "dev":
		names = []string{cfg.Dev.ContainerName}
	case "prod":
		names = []string{cfg.Prod.ContainerName}
	case "all":
		names = []string{cfg.Dev.ContainerName, cfg.Prod.ContainerName}
	default:
		return fmt.Errorf("unknown target %q (use dev, prod or all)", target)
	}

	out := cmd.OutOrStdout()
	styles := stylesFor(out)
	d := deploy.New(rt)

	for _, name := range names {
		fmt.Fprintln(out, styles.StageLine(deploy.Event{Stage: deploy.StageTeardown, Detail: name}))
		d.Teardown(cmd.Context(), name)
	}
	return nil
}
