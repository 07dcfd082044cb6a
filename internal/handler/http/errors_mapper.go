package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-lightpack/internal/adapter"
	"github.com/MKhiriev/go-lightpack/internal/app"
	"github.com/MKhiriev/go-lightpack/internal/logger"
	"github.com/MKhiriev/go-lightpack/internal/service"
	"github.com/MKhiriev/go-lightpack/internal/store"
	"github.com/MKhiriev/go-lightpack/internal/utils"
)

// errorStatusMap picks the response status for a service error. The remote
// adapter maps each status back to one sentinel, so errors sharing a status
// collapse on the client: every session setup failure reads back as
// adapter.ErrNotConnected and only the response body keeps the detail.
var errorStatusMap = []struct {
	err    error
	status int
}{
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrWrongPassword, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{service.ErrAuthDisabled, http.StatusNotFound},
	{service.ErrJournalDisabled, http.StatusNotFound},

	{adapter.ErrNotConnected, http.StatusServiceUnavailable},
	{adapter.ErrConnectionFailed, http.StatusServiceUnavailable},
	{adapter.ErrUnexpectedHandshake, http.StatusServiceUnavailable},
	{adapter.ErrAuthenticationFailed, http.StatusServiceUnavailable},
	{adapter.ErrLockFailed, http.StatusConflict},
	{adapter.ErrCommandRejected, http.StatusUnprocessableEntity},
	{adapter.ErrUnexpectedResponse, http.StatusBadGateway},
	{adapter.ErrTimeout, http.StatusGatewayTimeout},
	{context.DeadlineExceeded, http.StatusGatewayTimeout},

	{store.ErrInvalidLimit, http.StatusBadRequest},
	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

// statusFromError walks the table in order so that the more specific
// sentinels win.
func statusFromError(err error) int {
	for _, entry := range errorStatusMap {
		if errors.Is(err, entry.err) {
			return entry.status
		}
	}
	return http.StatusInternalServerError
}

func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	event := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError && status != http.StatusServiceUnavailable {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Int("status", status).Msg("request failed")

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = app.MsgInternalServerError
	}
	utils.WriteError(w, message, status)
}
