package config

import "time"

// Default values applied before any other configuration source.
const (
	DefaultDeviceAddress   = "127.0.0.1:3636"
	DefaultDeviceTimeout   = 5 * time.Second
	DefaultProfileCacheTTL = 30 * time.Second
	DefaultDSN             = "lightpack.db"
	DefaultHTTPAddress     = "127.0.0.1:8080"
	DefaultRequestTimeout  = 10 * time.Second
	DefaultPollInterval    = 10 * time.Second
	DefaultHuePollInterval = 2 * time.Second
	DefaultTokenIssuer     = "go-lightpack"
	DefaultTokenDuration   = time.Hour
	DefaultLogLevel        = "info"
	DefaultVersion         = "dev"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:       DefaultVersion,
			LogLevel:      DefaultLogLevel,
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
		},
		Device: Device{
			Address:         DefaultDeviceAddress,
			Timeout:         DefaultDeviceTimeout,
			ProfileCacheTTL: DefaultProfileCacheTTL,
		},
		Storage: Storage{DB: DB{DSN: DefaultDSN}},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Adapter: Adapter{RequestTimeout: DefaultRequestTimeout},
		Workers: Workers{PollInterval: DefaultPollInterval},
		Hue:     Hue{PollInterval: DefaultHuePollInterval},
	}
}
