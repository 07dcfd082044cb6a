package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// Version is shown in the client banner.
	Version string
	// LogLevel is the zerolog level of the client log file.
	LogLevel string
	// PollInterval is how often the dashboard refreshes the device status
	// in the background. Zero disables the refresh.
	PollInterval time.Duration
}

// ClientAdapter holds the remote daemon settings used by the client.
type ClientAdapter struct {
	// HTTPAddress is the daemon base URL. Empty means direct mode.
	HTTPAddress string
	// Password is the operator password for the daemon REST API.
	Password string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientConfig is the configuration of the terminal clients (dashboard and
// shell), assembled from [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Device contains the Prismatik settings used in direct mode.
	Device Device
	// Adapter contains the remote daemon settings used in remote mode.
	Adapter ClientAdapter
}

// Remote reports whether the client should drive the device through a
// daemon rather than the Prismatik socket.
func (c *ClientConfig) Remote() bool {
	return c.Adapter.HTTPAddress != ""
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			Version:      cfg.App.Version,
			LogLevel:     cfg.App.LogLevel,
			PollInterval: cfg.Workers.PollInterval,
		},
		Device: cfg.Device,
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			Password:       cfg.Adapter.Password,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
	}
}
