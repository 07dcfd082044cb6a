package store

import (
	"context"
	"database/sql"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-lightpack/internal/config"
	"github.com/MKhiriev/go-lightpack/internal/logger"
	"github.com/MKhiriev/go-lightpack/migrations"
)

// Driver names registered with database/sql.
const (
	driverSQLite   = "sqlite3"
	driverPostgres = "pgx"
)

// DB wraps *sql.DB with the driver-specific pieces the repositories need.
type DB struct {
	*sql.DB
	driver             string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the database named by cfg.DSN. "postgres://" and
// "postgresql://" DSNs use pgx, anything else is a SQLite file path.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if isPostgresDSN(cfg.DSN) {
		return NewConnectPostgres(ctx, cfg, log)
	}
	return NewConnectSQLite(ctx, cfg, log)
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// Migrate applies the embedded goose migrations for the DB's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect())
}

func (db *DB) dialect() string {
	if db.driver == driverPostgres {
		return migrations.DialectPostgres
	}
	return migrations.DialectSQLite
}

// placeholder returns the bind variable format of the driver.
func (db *DB) placeholder() sq.PlaceholderFormat {
	if db.driver == driverPostgres {
		return sq.Dollar
	}
	return sq.Question
}

// retryable reports whether err is worth a second attempt.
func (db *DB) retryable(err error) bool {
	if db.errorClassificator == nil {
		return false
	}
	return db.errorClassificator.Classify(err) == Retryable
}
