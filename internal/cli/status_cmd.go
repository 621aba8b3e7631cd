package cli

import (
	"fmt"

	"github.com/alexanderramin/prodsched/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show capacity, queue and calendar summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan := app.loadPlan(cmd)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatStatus(app.Schedule.Status(plan), app.now(), app.Boxed))
			return nil
		},
	}
}
