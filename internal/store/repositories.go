package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-lightpack/internal/config"
	"github.com/MKhiriev/go-lightpack/internal/logger"
)

// Repositories groups the repositories of the daemon together with the
// connection they share.
type Repositories struct {
	EventRepository EventRepository

	db *DB
}

// NewRepositories connects to cfg.DB, applies migrations and builds the
// repositories.
func NewRepositories(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Repositories, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("connect storage: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate storage: %w", err)
	}

	return &Repositories{
		EventRepository: NewEventRepository(db, log),
		db:              db,
	}, nil
}

// Close releases the database connection.
func (r *Repositories) Close() error {
	if r.db == nil {
		return nil
	}
	return r.db.Close()
}
