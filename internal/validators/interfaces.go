// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks device API input before it reaches the
// Prismatik wire.
//
// [DeviceValidator] covers the request models of the daemon. Callers may
// pass field names to Validate to restrict the check to a subset.
package validators

import "context"

// Validator validates an arbitrary value, optionally restricted to the named
// fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
