package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newTUICmd(app *App) *cobra.Command {
	var open string

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Launch the interactive trip planner",
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parseStartView(open)
			if err != nil {
				return err
			}
			return runTUI(app, start)
		},
	}

	cmd.Flags().StringVar(&open, "open", "planner", "Screen to open first: planner or result")

	return cmd
}

func parseStartView(s string) (ViewID, error) {
	switch s {
	case "", "planner":
		return ViewPlanner, nil
	case "result":
		return ViewResult, nil
	default:
		return 0, fmt.Errorf("unknown screen %q: use planner or result", s)
	}
}

// runTUI runs the full-screen app until the user quits.
func runTUI(app *App, start ViewID) error {
	p := tea.NewProgram(newAppModel(app, start), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
