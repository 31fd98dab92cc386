package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/semainier/internal/cli/formatter"
)

func newPlanCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "Show next week's generated schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := app.Plans.GeneratePlan(cmd.Context(), time.Now())
			if err != nil {
				return err
			}

			loc, err := time.LoadLocation(app.Cfg.Timezone)
			if err != nil {
				loc = time.UTC
			}

			fmt.Printf("%s\n", formatter.FormatPlan(plan.WeekStart, plan.WeekEnd, plan.Events, plan.Shortfalls, loc))
			return nil
		},
	}
}
