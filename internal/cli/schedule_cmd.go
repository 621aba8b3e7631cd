package cli

import (
	"fmt"

	"github.com/alexanderramin/prodsched/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newScheduleCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Recalculate order dates",
	}
	cmd.AddCommand(newScheduleRecalcCmd(app), newScheduleNextCmd(app))
	return cmd
}

func newScheduleRecalcCmd(app *App) *cobra.Command {
	var from dateFlag

	cmd := &cobra.Command{
		Use:   "recalc",
		Short: "Recompute every order's dates in priority order",
		Long: "Recompute every order's dates. Without --from the queue keeps its\n" +
			"current first start date.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan := app.loadPlan(cmd)
			if err := app.Schedule.Recalculate(cmdContext(cmd), plan, from.Ptr()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success("Recalculated "+formatter.Plural(len(plan.Orders), "order")))
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatOrderList(plan.Orders, app.Boxed))
			return nil
		},
	}

	cmd.Flags().Var(&from, "from", "New start date YYYY-MM-DD for the first order")
	return cmd
}

func newScheduleNextCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "next",
		Short: "Show the date a new order would start on",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan := app.loadPlan(cmd)
			next := app.Schedule.NextStart(plan)
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", formatter.FormatDateWeekday(next), formatter.Dim(formatter.RelativeDateFrom(next, app.now())))
			return nil
		},
	}
}
