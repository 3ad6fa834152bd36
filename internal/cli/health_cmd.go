package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/tripplanner/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newHealthCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check whether the planning service is reachable",
		RunE: func(cmd *cobra.Command, args []string) error {
			url := app.Config.HealthURL()
			if !app.Client.Available(context.Background()) {
				return fmt.Errorf("planning service unreachable at %s; plans will use the demo itinerary", url)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s planning service reachable at %s\n",
				formatter.StyleGreen.Render("✔"), url)
			return nil
		},
	}
}
