// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for go-lightpack.
// It aggregates all sub-configurations and is populated by merging defaults,
// environment variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: version, log level and the
	// credentials protecting the REST API.
	App App `envPrefix:"APP_"`

	// Device holds the Prismatik connection settings.
	Device Device `envPrefix:"DEVICE_"`

	// Storage holds the device event journal database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers of the daemon.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the settings used by terminal clients to reach a remote
	// daemon instead of the local Prismatik socket.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background jobs of the daemon.
	Workers Workers `envPrefix:"WORKERS_"`

	// Hue holds the optional Philips Hue bridge mirror settings.
	Hue Hue `envPrefix:"HUE_"`

	// Notify holds the desktop notification settings.
	Notify Notify `envPrefix:"NOTIFY_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// AdminPasswordHash is the bcrypt hash of the operator password accepted
	// by POST /api/auth/login. When empty the device API is served without
	// authentication.
	// Env: APP_ADMIN_PASSWORD_HASH
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH"`

	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// AuthEnabled reports whether the REST device API requires a bearer token.
func (a App) AuthEnabled() bool {
	return a.AdminPasswordHash != ""
}

// Device holds the Prismatik Lightpack API connection settings.
type Device struct {
	// Address is the Prismatik API endpoint in "host:port" format.
	// Env: DEVICE_ADDRESS
	Address string `env:"ADDRESS"`

	// APIKey is sent with `apikey:` during the handshake. Prismatik accepts
	// any key when API authorization is disabled in its settings.
	// Env: DEVICE_API_KEY
	APIKey string `env:"API_KEY"`

	// Timeout bounds the dial and every command/response exchange.
	// Env: DEVICE_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`

	// ProfileCacheTTL is how long the daemon serves the profile list from
	// memory before asking the device again.
	// Env: DEVICE_PROFILE_CACHE_TTL
	ProfileCacheTTL time.Duration `env:"PROFILE_CACHE_TTL"`
}

// Storage groups the configuration for the persistence backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the driver by scheme: "postgres://..." uses pgx, anything
	// else is treated as a SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC health endpoint.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the remote daemon settings used by terminal clients.
type Adapter struct {
	// HTTPAddress is the daemon base URL. When empty, clients talk to the
	// Prismatik socket directly.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// Password is the operator password sent to /api/auth/login.
	// Env: ADAPTER_PASSWORD
	Password string `env:"PASSWORD"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// PollInterval is how often the status poller refreshes the device
	// state and reconnects after failures. Zero disables the poller.
	// Env: WORKERS_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`
}

// Hue holds the optional Hue bridge mirror settings.
type Hue struct {
	// BridgeIP enables the mirror when set.
	// Env: HUE_BRIDGE_IP
	BridgeIP string `env:"BRIDGE_IP"`

	// Username is the whitelisted bridge user.
	// Env: HUE_USERNAME
	Username string `env:"USERNAME"`

	// GroupID is the Hue group (room/zone) whose state is mirrored.
	// Env: HUE_GROUP_ID
	GroupID int `env:"GROUP_ID"`

	// PollInterval is how often the bridge is polled.
	// Env: HUE_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`
}

// Enabled reports whether the Hue mirror is configured.
func (h Hue) Enabled() bool {
	return h.BridgeIP != ""
}

// Notify holds desktop notification settings.
type Notify struct {
	// Enabled turns on D-Bus notifications on device status changes.
	// Env: NOTIFY_ENABLED
	Enabled bool `env:"ENABLED"`
}

// GetStructuredConfig loads, merges, and validates the daemon configuration
// from all available sources in the following priority order (last source
// wins for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}
