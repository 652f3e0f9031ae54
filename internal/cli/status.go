package cli

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/shipit-dev/shipit/internal/config"
	"github.com/shipit-dev/shipit/internal/runtime"
)

// NewStatusCmd creates the 'status' command showing the state of the dev
// and prod containers.
func NewStatusCmd(a *App) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show dev and prod container state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(a.projectRoot)
			if err != nil {
				return err
			}
			rt, err := a.newRuntime(cfg)
			if err != nil {
				return err
			}

			entries := []statusEntry{
				{label: "dev", name: cfg.Dev.ContainerName},
				{label: "prod", name: cfg.Prod.ContainerName},
			}

			if watch {
				return runWatch(rt, entries)
			}

			out := cmd.OutOrStdout()
			styles := stylesFor(out)
			for _, e := range entries {
				fmt.Fprintln(out, styles.StatusLine(e.label, e.name, queryStatus(cmd.Context(), rt, e.name)))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Keep polling and render a live view")

	return cmd
}

type statusEntry struct {
	label string
	name  string
}

// queryStatus folds every status failure into "not found"; the status
// display is informational only.
func queryStatus(ctx context.Context, rt runtime.Runtime, name string) runtime.Status {
	status, err := rt.Status(ctx, name)
	if err != nil {
		return runtime.StatusNotFound
	}
	return status
}

const watchInterval = 2 * time.Second

// watchModel is the bubbletea model for 'status --watch'. It polls the
// runtime on a fixed interval; the runtime registry stays authoritative
// and nothing is cached between polls.
type watchModel struct {
	rt       runtime.Runtime
	entries  []statusEntry
	statuses []runtime.Status
	styles   Styles
}

type tickMsg struct{}

type statusesMsg []runtime.Status

func newWatchModel(rt runtime.Runtime, entries []statusEntry) watchModel {
	statuses := make([]runtime.Status, len(entries))
	for i := range statuses {
		statuses[i] = runtime.StatusNotFound
	}
	return watchModel{
		rt:       rt,
		entries:  entries,
		statuses: statuses,
		styles:   DefaultStyles(),
	}
}

func (m watchModel) Init() tea.Cmd {
	return m.poll
}

func (m watchModel) poll() tea.Msg {
	ctx, cancel := context.WithTimeout(context.Background(), watchInterval)
	defer cancel()

	statuses := make([]runtime.Status, len(m.entries))
	for i, e := range m.entries {
		statuses[i] = queryStatus(ctx, m.rt, e.name)
	}
	return statusesMsg(statuses)
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case statusesMsg:
		m.statuses = msg
		return m, tea.Tick(watchInterval, func(time.Time) tea.Msg { return tickMsg{} })
	case tickMsg:
		return m, m.poll
	}
	return m, nil
}

func (m watchModel) View() string {
	s := m.styles.Label.Render("containers") + "\n\n"
	for i, e := range m.entries {
		s += m.styles.StatusLine(e.label, e.name, m.statuses[i]) + "\n"
	}
	s += "\n" + m.styles.Missing.Render("q to quit") + "\n"
	return s
}

func runWatch(rt runtime.Runtime, entries []statusEntry) error {
	p := tea.NewProgram(newWatchModel(rt, entries))
	_, err := p.Run()
	return err
}
