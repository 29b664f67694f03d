package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"spacefleet/cmd"
	"spacefleet/internal/core/application/usecases/queries"

	"github.com/labstack/gommon/log"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	config, err := cmd.LoadConfig(args)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: config.SlogLevel()}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := cmd.OpenStore(ctx, config)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			logger.Error("Failed to close store", "error", closeErr)
		}
	}()

	app := cmd.NewCompositionRoot(config, store.Factory, logger)

	if config.SeedFile != "" {
		if _, err = app.CreateSeedLoader().LoadFile(ctx, config.SeedFile); err != nil {
			return err
		}
	}

	if config.PrintReport {
		report, reportErr := app.CreateGetMissionsReportQueryHandler().Handle(ctx, queries.NewGetMissionsReportQuery())
		if reportErr != nil {
			return reportErr
		}
		_, err = report.WriteTo(os.Stdout)
		return err
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	return startWebServer(ctx, app, config, logger)
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, config cmd.Config, logger *slog.Logger) error {
	e, err := app.CreateHTTPRouter()
	if err != nil {
		return err
	}
	e.Logger.SetLevel(echoLogLevel(config.SlogLevel()))

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server started", "port", config.HTTPPort, "store", config.StoreDriver)
		errCh <- e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort))
	}()

	select {
	case err = <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	logger.Info("HTTP server stopping")
	return e.Shutdown(shutdownCtx)
}

func echoLogLevel(level slog.Level) log.Lvl {
	switch {
	case level <= slog.LevelDebug:
		return log.DEBUG
	case level <= slog.LevelInfo:
		return log.INFO
	case level <= slog.LevelWarn:
		return log.WARN
	default:
		return log.ERROR
	}
}
