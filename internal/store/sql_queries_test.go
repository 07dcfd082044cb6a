// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-lightpack/models"
)

func Test_buildInsertEventQuery_Postgres(t *testing.T) {
	now := time.Now()
	event := models.DeviceEvent{TraceID: "t1", Command: "setbrightness", Argument: "50", Outcome: models.OutcomeOK, CreatedAt: now}

	query, args, err := buildInsertEventQuery(sq.Dollar, event)
	require.NoError(t, err)

	require.Equal(t, []any{"t1", "setbrightness", "50", models.OutcomeOK, "", now}, args)
	require.Contains(t, query, "INSERT INTO device_events")
	require.Contains(t, query, "$6")
	require.True(t, strings.HasSuffix(query, "RETURNING id"))
}

func Test_buildInsertEventQuery_SQLite(t *testing.T) {
	query, args, err := buildInsertEventQuery(sq.Question, models.DeviceEvent{Command: "lock"})
	require.NoError(t, err)

	require.Len(t, args, 6)
	require.Equal(t, 6, strings.Count(query, "?"))
	require.NotContains(t, query, "$1")
}

func Test_buildListEventsQuery(t *testing.T) {
	query, args, err := buildListEventsQuery(sq.Dollar, 25)
	require.NoError(t, err)
	require.Empty(t, args)

	q := strings.ToLower(query)
	require.Contains(t, q, "from device_events")
	require.Contains(t, q, "order by id desc")
	require.Contains(t, q, "limit 25")
	for _, col := range eventColumns {
		require.Contains(t, q, col)
	}
}

func Test_buildListEventsQuery_InvalidLimit(t *testing.T) {
	for _, limit := range []int{0, -1} {
		_, _, err := buildListEventsQuery(sq.Dollar, limit)
		require.ErrorIs(t, err, ErrInvalidLimit)
	}
}
