package service

import (
	"fmt"

	"github.com/MKhiriev/go-lightpack/internal/adapter"
	"github.com/MKhiriev/go-lightpack/internal/config"
	"github.com/MKhiriev/go-lightpack/internal/logger"
	"github.com/MKhiriev/go-lightpack/internal/store"
	"github.com/amimof/huego"
)

type Services struct {
	LightService   LightService
	AuthService    AuthService
	AppInfoService AppInfoService
}

// NewServices wires the daemon services. events may be nil to run without a
// journal.
func NewServices(device adapter.DeviceAdapter, events store.EventRepository, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		LightService:   NewLightValidationService().Wrap(NewLightService(device, events, cfg.Device, logger)),
		AuthService:    NewAuthService(cfg.App, logger),
		AppInfoService: appInfoService,
	}, nil
}

// NewClientLightService is the LightService of the terminal clients: the
// same validation, no journal.
func NewClientLightService(device adapter.DeviceAdapter, cfg config.Device, logger *logger.Logger) LightService {
	return NewLightValidationService().Wrap(NewLightService(device, nil, cfg, logger))
}

// NewJobs returns the background jobs enabled by cfg.
func NewJobs(light LightService, cfg config.StructuredConfig, logger *logger.Logger) []Job {
	var jobs []Job

	if cfg.Workers.PollInterval > 0 {
		jobs = append(jobs, NewStatusPollJob(light, cfg.Workers.PollInterval, logger))
	}

	if cfg.Hue.Enabled() {
		bridge := huego.New(cfg.Hue.BridgeIP, cfg.Hue.Username)
		jobs = append(jobs, NewHueMirrorJob(bridge, cfg.Hue.GroupID, light, cfg.Hue.PollInterval, logger))
	}

	return jobs
}
