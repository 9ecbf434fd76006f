package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-session-keeper/internal/client"
	"github.com/MKhiriev/go-session-keeper/internal/config"
	"github.com/MKhiriev/go-session-keeper/internal/logger"
	"github.com/MKhiriev/go-session-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("session-keeper").Error().Err(err).Msg("error getting configs")
		return 1
	}

	log := logger.New("session-keeper", logger.Options{
		Level:  cfg.App.LogLevel,
		Format: cfg.App.LogFormat,
	})
	for _, warning := range cfg.Warnings {
		log.Warn().Msg(warning)
	}
	log.Debug().
		Int("accounts", len(cfg.Accounts)).
		Str("storage", cfg.Storage.Backend).
		Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := client.NewApp(ctx, cfg, buildInfo, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating application")
		return 1
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("status server stopped with error")
	}

	log.Info().Msg("session keeper shut down")
	return 0
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)
}
