package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-lightpack/internal/adapter"
	"github.com/MKhiriev/go-lightpack/internal/config"
	"github.com/MKhiriev/go-lightpack/internal/handler"
	"github.com/MKhiriev/go-lightpack/internal/logger"
	"github.com/MKhiriev/go-lightpack/internal/notify"
	"github.com/MKhiriev/go-lightpack/internal/server"
	"github.com/MKhiriev/go-lightpack/internal/service"
	"github.com/MKhiriev/go-lightpack/internal/store"
	"github.com/MKhiriev/go-lightpack/internal/workers"
	"github.com/MKhiriev/go-lightpack/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("lightpack-daemon")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Warn().Err(err).Str("level", cfg.App.LogLevel).Msg("unknown log level, keeping debug")
	}

	log.Debug().Msg("received configs:\n" + cfg.Dump())

	ctx := context.Background()

	repositories, err := store.NewRepositories(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating repositories")
	}
	defer repositories.Close()

	device := adapter.NewPrismatikAdapter(cfg.Device, log)
	defer device.Close()

	services, err := service.NewServices(device, repositories.EventRepository, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	if err = services.LightService.Connect(ctx, ""); err != nil {
		log.Warn().Err(err).Msg("device is not reachable yet")
	}

	if cfg.Notify.Enabled {
		notifier, err := notify.NewDBusNotifier(log)
		if err != nil {
			log.Warn().Err(err).Msg("desktop notifications disabled")
		} else {
			defer notifier.Close()
			unsubscribe := services.LightService.Subscribe(notifier.OnStateChange)
			defer unsubscribe()
		}
	}

	jobs := workers.NewWorkers()
	for _, job := range service.NewJobs(services.LightService, *cfg, log) {
		jobs.Add(job)
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, jobs, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	fmt.Println(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
}
