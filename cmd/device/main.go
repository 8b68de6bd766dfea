package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/platanus-hack/platanus-hack-25-team-35/internal/adapter"
	"github.com/platanus-hack/platanus-hack-25-team-35/internal/client"
	"github.com/platanus-hack/platanus-hack-25-team-35/internal/config"
	"github.com/platanus-hack/platanus-hack-25-team-35/internal/logger"
	"github.com/platanus-hack/platanus-hack-25-team-35/internal/service"
	"github.com/platanus-hack/platanus-hack-25-team-35/internal/store"
	"github.com/platanus-hack/platanus-hack-25-team-35/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLogger("voice-device")
	cfg, err := config.GetDeviceConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.LogFile != "" {
		log = logger.NewFileLogger("voice-device", cfg.LogFile)
	}

	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	log.Info().
		Str("build_version", info.BuildVersion()).
		Str("build_date", info.BuildDate()).
		Str("build_commit", info.BuildCommit()).
		Msg("starting device")
	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer storages.Close()

	services := service.NewClientServices(serverAdapter, storages.Sink, cfg.App, log)

	device, err := client.NewDevice(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create device")
	}

	app := client.NewApp(device, services, serverAdapter, cfg.App, log)
	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("device run error")
		storages.Close()
		os.Exit(1)
	}
}
