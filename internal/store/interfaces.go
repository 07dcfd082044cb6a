// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists the device event journal of the go-lightpack
// daemon. SQLite is used for single-host setups, PostgreSQL when the DSN
// has a postgres scheme.
package store

import (
	"context"

	"github.com/MKhiriev/go-lightpack/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/event_repository_mock.go -package=mock

// EventRepository journals device commands issued by the daemon.
type EventRepository interface {
	// SaveEvent inserts event and returns it with ID and CreatedAt set.
	SaveEvent(ctx context.Context, event models.DeviceEvent) (models.DeviceEvent, error)

	// ListEvents returns the newest limit events, newest first.
	ListEvents(ctx context.Context, limit int) ([]models.DeviceEvent, error)
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
