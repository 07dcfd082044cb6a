// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-lightpack/internal/adapter"
)

// humanizeDeviceError turns service and adapter failures into a short line
// for the status bar. Unknown errors are shown as is.
func humanizeDeviceError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, adapter.ErrNotConnected),
		errors.Is(err, adapter.ErrConnectionFailed):
		return "Prismatik is not reachable"
	case errors.Is(err, adapter.ErrUnexpectedHandshake):
		return "the endpoint is not a Lightpack API"
	case errors.Is(err, adapter.ErrAuthenticationFailed),
		errors.Is(err, adapter.ErrUnauthorized):
		return "API key or password rejected"
	case errors.Is(err, adapter.ErrLockFailed):
		return "device is busy: another client holds the lock"
	case errors.Is(err, adapter.ErrCommandRejected):
		return "device rejected the command"
	case errors.Is(err, adapter.ErrTimeout):
		return "device did not answer in time"
	}
	return err.Error()
}
