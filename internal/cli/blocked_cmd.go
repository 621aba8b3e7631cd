package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/prodsched/internal/cli/formatter"
	"github.com/alexanderramin/prodsched/internal/domain"
	"github.com/spf13/cobra"
)

func newBlockedCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blocked",
		Short: "Manage blocked days (holidays, shutdowns)",
	}
	cmd.AddCommand(newBlockedAddCmd(app), newBlockedRemoveCmd(app), newBlockedListCmd(app))
	return cmd
}

func newBlockedAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add DATE",
		Short: "Block a date (YYYY-MM-DD) and reschedule the queue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := domain.ParseDate(args[0])
			if err != nil {
				return err
			}
			plan := app.loadPlan(cmd)
			err = app.Calendar.Block(cmdContext(cmd), plan, day)
			if errors.Is(err, domain.ErrDuplicate) {
				fmt.Fprintln(cmd.ErrOrStderr(), formatter.Warning(fmt.Sprintf("%s is already blocked", formatter.FormatDate(day))))
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf("Blocked %s", formatter.FormatDateWeekday(day))))
			return nil
		},
	}
}

func newBlockedRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove DATE",
		Short: "Unblock a date and reschedule the queue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := domain.ParseDate(args[0])
			if err != nil {
				return err
			}
			plan := app.loadPlan(cmd)
			if err := app.Calendar.Unblock(cmdContext(cmd), plan, day); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf("Unblocked %s", formatter.FormatDateWeekday(day))))
			return nil
		},
	}
}

func newBlockedListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List blocked dates",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan := app.loadPlan(cmd)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatBlockedList(plan.Blocked, app.Boxed))
			return nil
		},
	}
}
