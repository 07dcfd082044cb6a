// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or inconsistent.
var (
	// ErrInvalidDeviceConfigs indicates an empty Prismatik address or a
	// non-positive device timeout.
	ErrInvalidDeviceConfigs = errors.New("invalid device configuration")
	// ErrInvalidAdapterConfigs indicates invalid remote daemon settings
	// (for example, a zero request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates an empty journal DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates inconsistent application settings
	// (for example, an admin password hash without a token sign key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs indicates a negative poll interval.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidHueConfigs indicates a bridge address without a user name
	// or a non-positive poll interval.
	ErrInvalidHueConfigs = errors.New("invalid hue configuration")
)
