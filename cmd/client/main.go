package main

import (
	"fmt"

	"github.com/MKhiriev/go-lightpack/internal/client"
	"github.com/MKhiriev/go-lightpack/internal/config"
	"github.com/MKhiriev/go-lightpack/internal/logger"
	"github.com/MKhiriev/go-lightpack/internal/service"
	"github.com/MKhiriev/go-lightpack/internal/tui"
	"github.com/MKhiriev/go-lightpack/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	log := logger.NewClientLogger("lightpack-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Warn().Err(err).Msg("unknown log level, keeping debug")
	}

	device, err := client.NewDeviceAdapter(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create device adapter")
	}

	light := service.NewClientLightService(device, cfg.Device, log)
	ui := tui.New(light, buildInfo, log)

	app, err := client.NewApp(device, light, ui, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
