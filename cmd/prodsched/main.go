package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/alexanderramin/prodsched/internal/cli"
	"github.com/alexanderramin/prodsched/internal/config"
	"github.com/alexanderramin/prodsched/internal/db"
	"github.com/alexanderramin/prodsched/internal/repository"
	"github.com/alexanderramin/prodsched/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Wire stores for the configured backend
	var stores repository.Stores
	switch cfg.Backend {
	case config.BackendSQLite:
		var database *sql.DB
		database, err = db.OpenDB(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()
		stores = repository.NewSQLiteStores(database)
	default:
		stores = repository.NewJSONStores(cfg.DataDir)
	}

	var observers []service.UseCaseObserver
	if cfg.LogUseCases {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	clock := func() time.Time { return time.Now().UTC() }

	app := &cli.App{
		Plans:    service.NewPlanService(stores, observers...),
		Capacity: service.NewCapacityService(stores.Capacity, stores.Orders, clock, observers...),
		Parts:    service.NewPartService(stores.Parts, observers...),
		Orders:   service.NewOrderService(stores.Orders, clock, observers...),
		Calendar: service.NewCalendarService(stores.Blocked, stores.Orders, clock, observers...),
		Schedule: service.NewScheduleService(stores.Orders, clock, observers...),
		Now:      clock,
		// Bordered output only on a terminal; pipes and redirects get plain text.
		Boxed: isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()),
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.ExecuteContext(context.Background())
}
