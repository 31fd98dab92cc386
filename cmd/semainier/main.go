package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/semainier/internal/api"
	"github.com/alexanderramin/semainier/internal/cli"
	"github.com/alexanderramin/semainier/internal/config"
	"github.com/alexanderramin/semainier/internal/db"
	"github.com/alexanderramin/semainier/internal/ics"
	"github.com/alexanderramin/semainier/internal/repository"
	"github.com/alexanderramin/semainier/internal/server"
	"github.com/alexanderramin/semainier/internal/service"
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
		return fmt.Errorf("loading configuration: %w", err)
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	activityRepo := repository.NewSQLiteActivityRepo(database)
	activitySvc := service.NewActivityService(activityRepo)

	fetcher := ics.NewFetcher(time.Duration(cfg.FetchTimeoutMs) * time.Millisecond)
	planSvc := service.NewPlanService(activityRepo, fetcher, service.PlanConfig{
		Timezone:     cfg.Timezone,
		SlotMinutes:  cfg.SlotMinutes,
		CalendarURLs: cfg.CalendarURLs,
	})

	app := &cli.App{
		Client:  api.NewClient(cfg.BaseURL),
		Plans:   planSvc,
		Cfg:     &cfg,
		Confirm: cli.NewTerminalConfirmer(),
		// The shell already surfaces notifications in its status line.
		Notify: cli.NotifierFunc(func(string) {}),
	}

	app.Serve = func(cmd *cobra.Command) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		srv := server.NewServer(cfg.Listen, activitySvc, planSvc, cfg.RefreshCron)
		return srv.Run(ctx)
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
