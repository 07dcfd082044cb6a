// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the device-side abstractions of go-lightpack.
//
// The primary abstraction is [DeviceAdapter], which decouples the service
// layer from the way the Lightpack device is reached. Two implementations
// ship with the package:
//   - [PrismatikAdapter] speaks the Prismatik line protocol over TCP;
//   - the HTTP adapter ([NewHTTPDeviceAdapter]) drives a remote go-lightpack
//     daemon through its REST API.
//
// Both report failures with the sentinel errors defined in errors.go so that
// callers can use [errors.Is] regardless of the transport underneath.
package adapter

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/device_adapter_mock.go -package=mock

// DeviceAdapter defines transport-agnostic control of a Lightpack device.
//
// Every query and mutation except SetupConnection, IsConnected, GetStatusAPI
// and Close runs inside a device-side lock/unlock bracket. Implementations
// return the zero value together with a non-nil error on failure.
type DeviceAdapter interface {
	// SetupConnection connects and authenticates with apiKey. It is a no-op
	// when a session is already established.
	SetupConnection(ctx context.Context, apiKey string) error

	// IsConnected reports whether an authenticated session is held.
	IsConnected() bool

	// GetProfiles lists the profile names known to the device.
	GetProfiles(ctx context.Context) ([]string, error)

	// GetProfile returns the active profile name.
	GetProfile(ctx context.Context) (string, error)

	// GetStatus returns the device status ("on", "off", "device error",
	// "unknown" or any other value reported by the device).
	GetStatus(ctx context.Context) (string, error)

	// GetStatusAPI reports whether the API is idle, i.e. not locked by
	// another client.
	GetStatusAPI(ctx context.Context) (bool, error)

	// SetBrightness sets the brightness level (0..100).
	SetBrightness(ctx context.Context, level int) error

	// SetProfile activates the profile called name.
	SetProfile(ctx context.Context, name string) error

	// SetStatus switches the device on or off.
	SetStatus(ctx context.Context, on bool) error

	// Close tears the session down. Closing a closed adapter is a no-op.
	Close() error
}
