package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-lightpack/models"
)

const eventsTable = "device_events"

var eventColumns = []string{"id", "trace_id", "command", "argument", "outcome", "error", "created_at"}

func buildInsertEventQuery(placeholder sq.PlaceholderFormat, event models.DeviceEvent) (string, []any, error) {
	query, args, err := sq.StatementBuilder.
		PlaceholderFormat(placeholder).
		Insert(eventsTable).
		Columns("trace_id", "command", "argument", "outcome", "error", "created_at").
		Values(event.TraceID, event.Command, event.Argument, event.Outcome, event.Error, event.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildListEventsQuery(placeholder sq.PlaceholderFormat, limit int) (string, []any, error) {
	if limit <= 0 {
		return "", nil, ErrInvalidLimit
	}

	query, args, err := sq.StatementBuilder.
		PlaceholderFormat(placeholder).
		Select(eventColumns...).
		From(eventsTable).
		OrderBy("id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
