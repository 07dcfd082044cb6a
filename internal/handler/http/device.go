// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-lightpack/internal/app"
	"github.com/MKhiriev/go-lightpack/internal/logger"
	"github.com/MKhiriev/go-lightpack/internal/utils"
	"github.com/MKhiriev/go-lightpack/models"
)

// defaultEventsLimit is used when GET /api/device/events has no limit.
const defaultEventsLimit = 50

func (h *Handler) connect(w http.ResponseWriter, r *http.Request) {
	var req models.ConnectRequest
	// the body is optional
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		logger.FromRequest(r).Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	if err := h.services.LightService.Connect(r.Context(), req.APIKey); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, h.services.LightService.State(r.Context()), http.StatusOK)
}

func (h *Handler) getProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.services.LightService.GetProfiles(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	if profiles == nil {
		profiles = []string{}
	}
	utils.WriteJSON(w, profiles, http.StatusOK)
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.services.LightService.GetProfile(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ProfileResponse{Profile: profile}, http.StatusOK)
}

func (h *Handler) setProfile(w http.ResponseWriter, r *http.Request) {
	var req models.ProfileRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.services.LightService.SetProfile(r.Context(), req.Profile); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.services.LightService.GetStatus(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.StatusResponse{Status: status}, http.StatusOK)
}

func (h *Handler) setStatus(w http.ResponseWriter, r *http.Request) {
	var req models.StatusRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.services.LightService.SetStatus(r.Context(), req.On); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getStatusAPI(w http.ResponseWriter, r *http.Request) {
	idle, err := h.services.LightService.GetStatusAPI(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.APIStatusResponse{Idle: idle}, http.StatusOK)
}

func (h *Handler) setBrightness(w http.ResponseWriter, r *http.Request) {
	var req models.BrightnessRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.services.LightService.SetBrightness(r.Context(), req.Brightness); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getEvents(w http.ResponseWriter, r *http.Request) {
	limit := defaultEventsLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			utils.WriteError(w, app.MsgInvalidLimit, http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	events, err := h.services.LightService.Events(r.Context(), limit)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	if events == nil {
		events = []models.DeviceEvent{}
	}
	utils.WriteJSON(w, events, http.StatusOK)
}

// decodeBody decodes a JSON request body into dst. On failure it writes 400
// and returns false.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return false
	}

	return true
}
