package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-lightpack/internal/client"
	"github.com/MKhiriev/go-lightpack/internal/config"
	"github.com/MKhiriev/go-lightpack/internal/logger"
	"github.com/MKhiriev/go-lightpack/internal/service"
	"github.com/MKhiriev/go-lightpack/internal/shell"
	"github.com/MKhiriev/go-lightpack/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Println(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewClientLogger("lightpack-shell")
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
	sh := shell.New(light, shell.NewLineEditor(), os.Stdout, log)

	app, err := client.NewApp(device, light, sh, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init shell app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("shell run error")
	}
}
