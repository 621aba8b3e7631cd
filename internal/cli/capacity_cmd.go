package cli

import (
	"fmt"

	"github.com/alexanderramin/prodsched/internal/cli/formatter"
	"github.com/alexanderramin/prodsched/internal/domain"
	"github.com/spf13/cobra"
)

func newCapacityCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "capacity",
		Short: "Configure the shop's daily production capacity",
	}
	cmd.AddCommand(newCapacitySetCmd(app), newCapacityShowCmd(app))
	return cmd
}

func newCapacitySetCmd(app *App) *cobra.Command {
	var workers int
	var minutes, efficiency float64

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set workers, minutes per day and efficiency; reschedules every order",
		RunE: func(cmd *cobra.Command, args []string) error {
			plan := app.loadPlan(cmd)
			c := domain.Capacity{Workers: workers, MinutesPerDay: minutes, EfficiencyPercent: efficiency}
			if err := app.Capacity.Set(cmdContext(cmd), plan, c); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.Success("Capacity saved: "+formatter.CapacityLine(plan.Capacity)))
			if n := len(plan.Orders); n > 0 {
				fmt.Fprintln(out, formatter.Dim("Rescheduled "+formatter.Plural(n, "order")))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&workers, "workers", 0, "Number of workers")
	cmd.Flags().Float64Var(&minutes, "minutes", 0, "Working minutes per worker per day")
	cmd.Flags().Float64Var(&efficiency, "efficiency", 100, "Efficiency percent (0-100]")
	_ = cmd.MarkFlagRequired("workers")
	_ = cmd.MarkFlagRequired("minutes")

	return cmd
}

func newCapacityShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the capacity configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan := app.loadPlan(cmd)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCapacity(plan.Capacity, app.Boxed))
			return nil
		},
	}
}
