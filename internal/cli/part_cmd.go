package cli

import (
	"fmt"

	"github.com/alexanderramin/prodsched/internal/cli/formatter"
	"github.com/alexanderramin/prodsched/internal/domain"
	"github.com/spf13/cobra"
)

func newPartCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "part",
		Aliases: []string{"parts"},
		Short:   "Manage the parts catalog",
	}
	cmd.AddCommand(newPartAddCmd(app), newPartListCmd(app), newPartRemoveCmd(app))
	return cmd
}

func newPartAddCmd(app *App) *cobra.Command {
	var p domain.Part

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a part to the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan := app.loadPlan(cmd)
			if err := app.Parts.Add(cmdContext(cmd), plan, p); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf("Added part %s (%s), %s min/unit",
				p.Name, p.Reference, formatter.Number(p.TimePerUnitMinutes))))
			return nil
		},
	}

	cmd.Flags().StringVar(&p.Name, "name", "", "Part name")
	cmd.Flags().StringVar(&p.Reference, "ref", "", "Part reference code")
	cmd.Flags().Float64Var(&p.TimePerUnitMinutes, "minutes", 0, "Production minutes per unit")
	cmd.Flags().StringVar(&p.ProductionOrderCode, "po", "", "Production order code")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("ref")
	_ = cmd.MarkFlagRequired("minutes")

	return cmd
}

func newPartListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List catalog parts",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan := app.loadPlan(cmd)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPartList(plan.Parts, app.Boxed))
			return nil
		},
	}
}

func newPartRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove RANK",
		Short: "Remove the part at a catalog position; queued orders keep their copy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rank, err := parseRank(args[0])
			if err != nil {
				return err
			}
			plan := app.loadPlan(cmd)
			removed, err := app.Parts.Remove(cmdContext(cmd), plan, rank)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf("Removed part %s (%s)", removed.Name, removed.Reference)))
			return nil
		},
	}
}
