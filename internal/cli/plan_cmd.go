package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/tripplanner/internal/cli/formatter"
	"github.com/alexanderramin/tripplanner/internal/domain"
	"github.com/alexanderramin/tripplanner/internal/planner"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	var (
		destination string
		startDate   string
		endDate     string
		travelers   int
		budget      string
		interests   []string
		offline     bool
		asJSON      bool
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Plan a trip without the interactive screens",
		Example: "  tripplanner plan --destination Paris --start 2024-06-01 --end 2024-06-05 \\\n" +
			"    --travelers 2 --interest food --interest history",
		RunE: func(cmd *cobra.Command, args []string) error {
			if travelers < 1 {
				return fmt.Errorf("--travelers must be a positive number, got %d", travelers)
			}
			req := domain.NewTripRequest()
			req.Destination = destination
			req.StartDate = startDate
			req.EndDate = endDate
			req.Travelers = travelers
			req.Budget = budget
			for _, s := range interests {
				in, err := domain.ParseInterest(s)
				if err != nil {
					return err
				}
				if !req.HasInterest(in) {
					req = req.ToggleInterest(in)
				}
			}

			svc := app.Planner
			if offline {
				svc = app.offlinePlanner()
			}

			stop := func() {}
			if app.interactive() && !asJSON {
				stop = formatter.StartSpinner(cmd.ErrOrStderr(), "Planning your trip...")
			}
			out, err := svc.Submit(context.Background(), req)
			stop()
			if err != nil {
				var verr *domain.ValidationError
				if errors.As(err, &verr) {
					return fmt.Errorf("%s: %s", verr.UserMessage(), joinFlags(verr.Missing))
				}
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out.Plan)
			}

			if out.Fallback() && !errors.Is(out.FallbackReason, planner.ErrOffline) {
				fmt.Fprintln(cmd.ErrOrStderr(), formatter.Dim("Planning service unavailable; showing a demo itinerary."))
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTravelPlan(&out.Plan, formatter.PlanOptions{
				Source:    out.Source,
				Interests: req.Interests,
			}))
			return nil
		},
	}

	cmd.Flags().StringVar(&destination, "destination", "", "Where to go (required)")
	cmd.Flags().StringVar(&startDate, "start", "", "Start date, YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&endDate, "end", "", "End date, YYYY-MM-DD (required)")
	cmd.Flags().IntVar(&travelers, "travelers", domain.DefaultTravelers, "Number of travelers")
	cmd.Flags().StringVar(&budget, "budget", "", "Budget, free-form (e.g. 2000)")
	cmd.Flags().StringSliceVar(&interests, "interest", nil, "Interest tag; repeat or comma-separate")
	cmd.Flags().BoolVar(&offline, "offline", false, "Skip the planning service and use the demo itinerary")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the plan as JSON")

	return cmd
}

// joinFlags maps request field names onto the flags that set them.
func joinFlags(fields []string) string {
	names := map[string]string{
		"destination": "--destination",
		"startDate":   "--start",
		"endDate":     "--end",
	}
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f
		if n, ok := names[f]; ok {
			out[i] = n
		}
	}
	return strings.Join(out, ", ")
}
