package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/prodsched/internal/cli/formatter"
	"github.com/alexanderramin/prodsched/internal/domain"
	"github.com/alexanderramin/prodsched/internal/export"
	"github.com/alexanderramin/prodsched/internal/service"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export orders or parts as CSV",
	}
	cmd.AddCommand(
		newExportSubCmd(app, "orders", "Export one row per order item", func(w io.Writer, plan *domain.Plan) (int, error) {
			rows := service.OrderRows(plan)
			return len(rows), export.WriteOrdersCSV(w, rows)
		}),
		newExportSubCmd(app, "parts", "Export the parts catalog", func(w io.Writer, plan *domain.Plan) (int, error) {
			rows := service.PartRows(plan)
			return len(rows), export.WritePartsCSV(w, rows)
		}),
	)
	return cmd
}

func newExportSubCmd(app *App, use, short string, write func(io.Writer, *domain.Plan) (int, error)) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan := app.loadPlan(cmd)
			if out == "" || out == "-" {
				_, err := write(cmd.OutOrStdout(), plan)
				return err
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("creating %s: %w", out, err)
			}
			n, err := write(f, plan)
			if cerr := f.Close(); err == nil && cerr != nil {
				err = fmt.Errorf("closing %s: %w", out, cerr)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.ErrOrStderr(), formatter.Success(fmt.Sprintf("Wrote %s to %s", formatter.Plural(n, "row"), out)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default stdout)")
	return cmd
}
