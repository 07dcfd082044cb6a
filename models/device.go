// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models holds the data types shared between the transport, service
// and storage layers of go-lightpack.
package models

import "time"

// Status values reported by Prismatik in response to `getstatus`.
// The set is open: the device may return any other string, which is passed
// through unchanged.
const (
	StatusOn          = "on"
	StatusOff         = "off"
	StatusDeviceError = "device error"
	StatusUnknown     = "unknown"
)

// UnknownBrightness marks a [DeviceState] whose brightness has not been set
// through this process yet. Prismatik has no command to read it back.
const UnknownBrightness = -1

// DeviceState is the last known view of the Lightpack device as observed by
// the daemon. It is refreshed after every successful device operation and is
// served without touching the device.
type DeviceState struct {
	// Connected reports whether the session client holds an authenticated
	// connection to Prismatik.
	Connected bool `json:"connected"`

	// Status is the last value returned by `getstatus`.
	Status string `json:"status"`

	// Profile is the last known active profile name.
	Profile string `json:"profile"`

	// Brightness is the last brightness set through this process (0..100),
	// or [UnknownBrightness].
	Brightness int `json:"brightness"`

	// UpdatedAt is the time of the last successful refresh.
	UpdatedAt time.Time `json:"updated_at"`
}

// IsOn reports whether the last known status is "on".
func (s DeviceState) IsOn() bool {
	return s.Status == StatusOn
}
