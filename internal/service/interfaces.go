// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service contains the business layer of go-lightpack: device
// control on top of an [adapter.DeviceAdapter], operator authentication for
// the REST API and the background jobs of the daemon.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-lightpack/models"
)

// LightService controls one Lightpack device. Implementations are safe for
// concurrent use.
type LightService interface {
	// Connect establishes the device session. An empty apiKey falls back to
	// the configured key.
	Connect(ctx context.Context, apiKey string) error

	// State returns the last known device state without touching the device.
	State(ctx context.Context) models.DeviceState

	GetProfiles(ctx context.Context) ([]string, error)
	GetProfile(ctx context.Context) (string, error)
	GetStatus(ctx context.Context) (string, error)

	// GetStatusAPI reports whether the device API is idle.
	GetStatusAPI(ctx context.Context) (bool, error)

	SetBrightness(ctx context.Context, level int) error
	SetProfile(ctx context.Context, name string) error
	SetStatus(ctx context.Context, on bool) error

	// Events returns the newest limit journal entries.
	Events(ctx context.Context, limit int) ([]models.DeviceEvent, error)

	// Subscribe registers fn to be called whenever the connection flag or
	// the status changes. The returned func removes the subscription.
	Subscribe(fn StateListener) (unsubscribe func())
}

// StateListener receives the previous and the new device state.
type StateListener func(prev, next models.DeviceState)

// LightServiceWrapper defines middleware composition for LightService.
// Implementations wrap an existing LightService to add behavior such as
// logging or validating.
type LightServiceWrapper interface {
	Wrap(LightService) LightService
}

type AuthService interface {
	// Login checks password against the configured admin hash and issues a
	// token for the operator.
	Login(ctx context.Context, password string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	Enabled() bool
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// Job is a ticker driven background task.
type Job interface {
	// Start launches the job. A running job is restarted.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the job and waits for it to exit.
	Stop()

	// Run starts the job and blocks until ctx is done.
	Run(ctx context.Context) error
}
