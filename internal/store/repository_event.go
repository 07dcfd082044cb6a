package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-lightpack/internal/logger"
	"github.com/MKhiriev/go-lightpack/models"
)

// eventRepository is the SQL implementation of [EventRepository] over the
// "device_events" table.
type eventRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewEventRepository constructs an [EventRepository] backed by db.
func NewEventRepository(db *DB, logger *logger.Logger) EventRepository {
	logger.Debug().Msg("creating event repository")
	return &eventRepository{
		db:     db,
		logger: logger,
	}
}

// SaveEvent implements [EventRepository]. A zero CreatedAt is set to the
// current UTC time. Transient PostgreSQL errors are retried once.
func (r *eventRepository) SaveEvent(ctx context.Context, event models.DeviceEvent) (models.DeviceEvent, error) {
	log := logger.FromContext(ctx)

	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}

	query, args, err := buildInsertEventQuery(r.db.placeholder(), event)
	if err != nil {
		log.Err(err).Str("func", "*eventRepository.SaveEvent").Msg("error building query")
		return models.DeviceEvent{}, err
	}

	err = r.db.QueryRowContext(ctx, query, args...).Scan(&event.ID)
	if err != nil && r.db.retryable(err) {
		log.Warn().Err(err).Str("func", "*eventRepository.SaveEvent").Msg("retrying after transient error")
		err = r.db.QueryRowContext(ctx, query, args...).Scan(&event.ID)
	}
	if err != nil {
		log.Err(err).Str("func", "*eventRepository.SaveEvent").Str("pg_code", postgresError(err)).Msg("error saving event")
		return models.DeviceEvent{}, fmt.Errorf("%w: %w", ErrEventNotSaved, err)
	}

	return event, nil
}

// ListEvents implements [EventRepository].
func (r *eventRepository) ListEvents(ctx context.Context, limit int) ([]models.DeviceEvent, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListEventsQuery(r.db.placeholder(), limit)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*eventRepository.ListEvents").Str("pg_code", postgresError(err)).Msg("error listing events")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	events := make([]models.DeviceEvent, 0, limit)
	for rows.Next() {
		var e models.DeviceEvent
		if err = rows.Scan(&e.ID, &e.TraceID, &e.Command, &e.Argument, &e.Outcome, &e.Error, &e.CreatedAt); err != nil {
			log.Err(err).Str("func", "*eventRepository.ListEvents").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		events = append(events, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return events, nil
}
