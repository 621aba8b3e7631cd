package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/prodsched/internal/cli/formatter"
	"github.com/alexanderramin/prodsched/internal/domain"
	"github.com/alexanderramin/prodsched/internal/scheduler"
	"github.com/alexanderramin/prodsched/internal/service"
	"github.com/spf13/cobra"
)

func newOrderCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "order",
		Aliases: []string{"orders"},
		Short:   "Manage the production order queue",
	}

	cmd.AddCommand(
		newOrderAddCmd(app),
		newOrderListCmd(app),
		newOrderShowCmd(app),
		newOrderRemoveCmd(app),
		newOrderMoveCmd(app, scheduler.Up),
		newOrderMoveCmd(app, scheduler.Down),
	)

	return cmd
}

func newOrderAddCmd(app *App) *cobra.Command {
	var items itemsFlag
	var start dateFlag
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Queue an order at the lowest priority",
		Long: "Queue an order made of catalog parts. Each --item is REF:QTY and may be\n" +
			"repeated. --start only applies when the queue is empty.",
		Example: "  prodsched order add \"Pedido 123\" --item ENG-001:10 --item SH-2:4",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan := app.loadPlan(cmd)
			draft := service.OrderDraft{
				Name:  strings.Join(args, " "),
				Items: items.items,
				Start: start.Ptr(),
			}

			out := cmd.OutOrStdout()
			if dryRun {
				o, err := app.Orders.Preview(cmdContext(cmd), plan, draft)
				if err != nil {
					return err
				}
				fmt.Fprint(out, formatter.FormatOrderPreview(o, app.Boxed))
				return nil
			}

			o, err := app.Orders.Add(cmdContext(cmd), plan, draft)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, formatter.Success(fmt.Sprintf("Queued order #%d %s: %s to %s (%s)",
				len(plan.Orders), o.Name, formatter.FormatDate(o.StartDate), formatter.FormatDate(o.EndDate),
				formatter.Plural(o.WorkingDaysNeeded, "working day"))))
			return nil
		},
	}

	cmd.Flags().Var(&items, "item", "Order item as REF:QTY (repeatable)")
	cmd.Flags().Var(&start, "start", "Start date YYYY-MM-DD for the first order in an empty queue")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show the scheduled order without saving it")
	_ = cmd.MarkFlagRequired("item")

	return cmd
}

func newOrderListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List queued orders in priority order",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan := app.loadPlan(cmd)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatOrderList(plan.Orders, app.Boxed))
			return nil
		},
	}
}

func newOrderShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show RANK",
		Short: "Show an order and its items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rank, err := parseRank(args[0])
			if err != nil {
				return err
			}
			plan := app.loadPlan(cmd)
			if rank < 1 || rank > len(plan.Orders) {
				return fmt.Errorf("no order at rank %d (queue has %s): %w", rank, formatter.Plural(len(plan.Orders), "order"), domain.ErrValidation)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatOrderDetail(rank, plan.Orders[rank-1], app.Boxed))
			return nil
		},
	}
}

func newOrderRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove RANK",
		Aliases: []string{"rm"},
		Short:   "Remove an order and reschedule the rest of the queue",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rank, err := parseRank(args[0])
			if err != nil {
				return err
			}
			plan := app.loadPlan(cmd)
			removed, err := app.Orders.Remove(cmdContext(cmd), plan, rank)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf("Removed order %s", removed.Name)))
			return nil
		},
	}
}

func newOrderMoveCmd(app *App, dir scheduler.Direction) *cobra.Command {
	return &cobra.Command{
		Use:   dir.String() + " RANK",
		Short: fmt.Sprintf("Move an order one position %s and reschedule", dir),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rank, err := parseRank(args[0])
			if err != nil {
				return err
			}
			plan := app.loadPlan(cmd)
			if err := app.Orders.Move(cmdContext(cmd), plan, rank, dir); err != nil {
				return err
			}
			newRank := rank - 1
			if dir == scheduler.Down {
				newRank = rank + 1
			}
			o := plan.Orders[newRank-1]
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf("Moved %s to #%d: %s to %s",
				o.Name, newRank, formatter.FormatDate(o.StartDate), formatter.FormatDate(o.EndDate))))
			return nil
		},
	}
}
