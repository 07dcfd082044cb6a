package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-lightpack/internal/adapter"
	"github.com/MKhiriev/go-lightpack/internal/config"
	"github.com/MKhiriev/go-lightpack/internal/logger"
	"github.com/MKhiriev/go-lightpack/internal/service"
)

var ErrNoFrontend = errors.New("no frontend given")

type App struct {
	device       adapter.DeviceAdapter
	light        service.LightService
	frontend     Frontend
	pollInterval time.Duration
	logger       *logger.Logger
}

func NewApp(device adapter.DeviceAdapter, light service.LightService, frontend Frontend, cfg config.ClientApp, logger *logger.Logger) (*App, error) {
	if frontend == nil {
		return nil, ErrNoFrontend
	}

	return &App{
		device:       device,
		light:        light,
		frontend:     frontend,
		pollInterval: cfg.PollInterval,
		logger:       logger,
	}, nil
}

// Run drives the frontend until it returns or the process is interrupted.
// The device session is closed on exit.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	defer func() {
		if err := a.device.Close(); err != nil {
			a.logger.Warn().Err(err).Msg("close device session")
		}
	}()

	if a.pollInterval > 0 {
		job := service.NewStatusPollJob(a.light, a.pollInterval, a.logger)
		job.Start(ctx, a.pollInterval)
		defer job.Stop()
	}

	if err := a.frontend.Run(ctx); err != nil {
		return fmt.Errorf("client frontend failed: %w", err)
	}

	return nil
}

// NewDeviceAdapter returns the HTTP adapter when a daemon address is
// configured and the Prismatik adapter otherwise.
func NewDeviceAdapter(cfg *config.ClientConfig, logger *logger.Logger) (adapter.DeviceAdapter, error) {
	if cfg.Remote() {
		device, err := adapter.NewHTTPDeviceAdapter(cfg.Adapter, logger)
		if err != nil {
			return nil, fmt.Errorf("create http device adapter: %w", err)
		}
		logger.Info().Str("daemon", cfg.Adapter.HTTPAddress).Msg("using remote daemon")
		return device, nil
	}

	logger.Info().Str("address", cfg.Device.Address).Msg("using Prismatik socket")
	return adapter.NewPrismatikAdapter(cfg.Device, logger), nil
}
