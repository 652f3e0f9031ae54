package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/shipit-dev/shipit/internal/deploy"
	"github.com/shipit-dev/shipit/internal/runtime"
)

// Styles contains the lipgloss styles for operator-facing output
type Styles struct {
	// Stage lines
	Build    lipgloss.Style
	Teardown lipgloss.Style
	Launch   lipgloss.Style

	// Outcomes
	OK     lipgloss.Style
	Failed lipgloss.Style

	// Status display
	Running lipgloss.Style
	Stopped lipgloss.Style
	Missing lipgloss.Style
	Label   lipgloss.Style
}

// DefaultStyles returns the colored style set.
func DefaultStyles() Styles {
	return Styles{
		Build:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Teardown: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		Launch:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),

		OK:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Failed: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),

		Running: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Stopped: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Missing: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Label:   lipgloss.NewStyle().Bold(true),
	}
}

// PlainStyles returns an uncolored style set for non-terminal output.
func PlainStyles() Styles {
	return Styles{}
}

// stylesFor picks colored or plain styles depending on whether w is a
// terminal.
func stylesFor(w io.Writer) Styles {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return DefaultStyles()
	}
	return PlainStyles()
}

// StageLine renders the progress line printed before a deploy stage runs.
func (s Styles) StageLine(e deploy.Event) string {
	switch e.Stage {
	case deploy.StageBuild:
		return s.Build.Render("==> building image " + e.Detail)
	case deploy.StageTeardown:
		return s.Teardown.Render("==> removing previous container " + e.Detail)
	case deploy.StageLaunch:
		return s.Launch.Render("==> launching container " + e.Detail)
	default:
		return string(e.Stage)
	}
}

// StatusLine renders one environment's container state.
func (s Styles) StatusLine(label, name string, status runtime.Status) string {
	var styled string
	switch status {
	case runtime.StatusRunning:
		styled = s.Running.Render(string(status))
	case runtime.StatusNotFound:
		styled = s.Missing.Render(string(status))
	default:
		styled = s.Stopped.Render(string(status))
	}
	return fmt.Sprintf("%s  %s  %s", s.Label.Render(fmt.Sprintf("%-5s", label)), fmt.Sprintf("%-24s", name), styled)
}
