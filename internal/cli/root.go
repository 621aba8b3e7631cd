package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/prodsched/internal/cli/formatter"
	"github.com/alexanderramin/prodsched/internal/domain"
	"github.com/alexanderramin/prodsched/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Plans    service.PlanService
	Capacity service.CapacityService
	Parts    service.PartService
	Orders   service.OrderService
	Calendar service.CalendarService
	Schedule service.ScheduleService

	// Now is the clock used for relative dates in output.
	Now func() time.Time
	// Boxed draws bordered output; main sets it when stdout is a terminal.
	Boxed bool

	plan *domain.Plan
}

// NewRootCmd creates the top-level "prodsched" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "prodsched",
		Short: "Production order scheduler",
		Long: "prodsched queues production orders against a daily shop capacity and\n" +
			"dates them in priority order, skipping weekends and blocked days.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newCapacityCmd(app),
		newPartCmd(app),
		newOrderCmd(app),
		newBlockedCmd(app),
		newScheduleCmd(app),
		newExportCmd(app),
		newStatusCmd(app),
	)

	return root
}

// loadPlan loads the plan once per process and prints load warnings to
// stderr.
func (a *App) loadPlan(cmd *cobra.Command) *domain.Plan {
	if a.plan != nil {
		return a.plan
	}
	plan, warnings := a.Plans.Load(cmdContext(cmd))
	for _, w := range warnings {
		fmt.Fprintln(cmd.ErrOrStderr(), formatter.Warning(w.Error()))
	}
	a.plan = plan
	return plan
}

func (a *App) now() time.Time {
	if a.Now == nil {
		return time.Now().UTC()
	}
	return a.Now()
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
