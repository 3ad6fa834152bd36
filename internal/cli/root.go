package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/tripplanner/internal/planapi"
	"github.com/alexanderramin/tripplanner/internal/planner"
	"github.com/spf13/cobra"
)

// App holds the services and settings used by CLI commands.
// Client and Planner are built from Config on first use unless injected.
type App struct {
	Config planapi.Config

	Client  planapi.Client
	Planner planner.Service

	CallObserver    planapi.Observer
	UseCaseObserver planner.UseCaseObserver

	// IsInteractive reports whether stdin is a terminal.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// wire builds the planning client and submission service from Config.
func (a *App) wire() {
	if a.Client == nil {
		a.Client = planapi.NewClient(a.Config, a.CallObserver)
	}
	if a.Planner == nil {
		a.Planner = planner.NewService(a.Client, a.UseCaseObserver)
	}
}

// offlinePlanner returns a submission service that never calls the network.
func (a *App) offlinePlanner() planner.Service {
	return planner.NewService(nil, a.UseCaseObserver)
}

// NewRootCmd creates the top-level "tripplanner" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var endpoint string
	var timeout time.Duration

	root := &cobra.Command{
		Use:   "tripplanner",
		Short: "Plan a trip from the terminal",
		Long: "Fill in a destination, dates and interests, and get a day-by-day itinerary.\n" +
			"When the planning service is unreachable a demo itinerary is shown instead.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.Changed("endpoint") {
				app.Config.Endpoint = strings.TrimRight(endpoint, "/")
			}
			if flags.Changed("timeout") {
				if timeout < time.Millisecond {
					return fmt.Errorf("--timeout must be at least 1ms, got %s", timeout)
				}
				app.Config.TimeoutMs = int(timeout.Milliseconds())
			}
			app.wire()
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() {
				return runTUI(app, ViewPlanner)
			}
			return cmd.Help()
		},
	}

	root.PersistentFlags().StringVar(&endpoint, "endpoint", "", "Planning service base URL (overrides TRIPPLANNER_ENDPOINT)")
	root.PersistentFlags().DurationVar(&timeout, "timeout", 0, "Planning request timeout, e.g. 10s (overrides TRIPPLANNER_TIMEOUT_MS)")

	root.AddCommand(
		newTUICmd(app),
		newPlanCmd(app),
		newHealthCmd(app),
	)

	return root
}
