// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-lightpack/internal/adapter"
	"github.com/MKhiriev/go-lightpack/internal/config"
	"github.com/MKhiriev/go-lightpack/internal/logger"
	"github.com/MKhiriev/go-lightpack/internal/service"
	"github.com/MKhiriev/go-lightpack/internal/utils"
	"github.com/MKhiriev/go-lightpack/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- Fakes ----

// fakeLight records the last call and answers with the configured values.
type fakeLight struct {
	state    models.DeviceState
	profiles []string
	profile  string
	status   string
	idle     bool
	events   []models.DeviceEvent
	err      error

	lastAPIKey     string
	lastProfile    string
	lastOn         *bool
	lastBrightness *int
	lastLimit      int
	lastTraceID    string
}

func (f *fakeLight) Connect(ctx context.Context, apiKey string) error {
	f.lastAPIKey = apiKey
	f.lastTraceID = utils.GetTraceIDFromContext(ctx)
	return f.err
}
func (f *fakeLight) State(context.Context) models.DeviceState { return f.state }
func (f *fakeLight) GetProfiles(ctx context.Context) ([]string, error) {
	f.lastTraceID = utils.GetTraceIDFromContext(ctx)
	return f.profiles, f.err
}
func (f *fakeLight) GetProfile(context.Context) (string, error) { return f.profile, f.err }
func (f *fakeLight) GetStatus(context.Context) (string, error)  { return f.status, f.err }
func (f *fakeLight) GetStatusAPI(context.Context) (bool, error) { return f.idle, f.err }
func (f *fakeLight) SetBrightness(_ context.Context, level int) error {
	f.lastBrightness = &level
	return f.err
}
func (f *fakeLight) SetProfile(_ context.Context, name string) error {
	f.lastProfile = name
	return f.err
}
func (f *fakeLight) SetStatus(_ context.Context, on bool) error {
	f.lastOn = &on
	return f.err
}
func (f *fakeLight) Events(_ context.Context, limit int) ([]models.DeviceEvent, error) {
	f.lastLimit = limit
	return f.events, f.err
}
func (f *fakeLight) Subscribe(service.StateListener) func() { return func() {} }

type fakeAuth struct {
	enabled bool
	token   models.Token
	err     error

	lastPassword string
}

func (f *fakeAuth) Login(_ context.Context, password string) (models.Token, error) {
	f.lastPassword = password
	return f.token, f.err
}
func (f *fakeAuth) ParseToken(_ context.Context, tokenString string) (models.Token, error) {
	if tokenString != "good-token" {
		return models.Token{}, service.ErrTokenIsExpiredOrInvalid
	}
	return models.Token{SignedString: tokenString, Subject: service.AdminSubject}, nil
}
func (f *fakeAuth) Enabled() bool { return f.enabled }

type fakeAppInfo struct{ version string }

func (f *fakeAppInfo) GetAppVersion(context.Context) string { return f.version }

// ---- Helpers ----

func newTestRouter(light *fakeLight, auth *fakeAuth) http.Handler {
	services := &service.Services{
		LightService:   light,
		AuthService:    auth,
		AppInfoService: &fakeAppInfo{version: "1.2.3"},
	}
	return NewHandler(services, config.Server{RequestTimeout: time.Second}, logger.Nop()).Init()
}

func serve(router http.Handler, method, target, body string, headers ...string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// ---- NewHandler ----

func TestNewHandler(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svc, config.Server{RequestTimeout: 3 * time.Second}, log)

	require.NotNil(t, h)
	assert.Same(t, svc, h.services)
	assert.Same(t, log, h.logger)
	assert.Equal(t, 3*time.Second, h.requestTimeout)
}

// ---- Public routes ----

func TestRoutes_Version(t *testing.T) {
	rr := serve(newTestRouter(&fakeLight{}, &fakeAuth{}), http.MethodGet, "/api/version/", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/plain", rr.Header().Get("Content-Type"))
	assert.Equal(t, "1.2.3", rr.Body.String())
}

func TestRoutes_Health(t *testing.T) {
	light := &fakeLight{state: models.DeviceState{Connected: true, Status: "on", Profile: "movie", Brightness: 40}}

	rr := serve(newTestRouter(light, &fakeAuth{enabled: true}), http.MethodGet, "/api/health", "")

	require.Equal(t, http.StatusOK, rr.Code, "health needs no token")
	var got models.DeviceState
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, light.state.Status, got.Status)
	assert.True(t, got.Connected)
	assert.Equal(t, 40, got.Brightness)
}

func TestRoutes_Login(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		authErr    error
		wantStatus int
		wantHeader string
	}{
		{name: "success", body: `{"password":"pw"}`, wantStatus: http.StatusOK, wantHeader: "Bearer signed"},
		{name: "wrong password", body: `{"password":"nope"}`, authErr: service.ErrWrongPassword, wantStatus: http.StatusUnauthorized},
		{name: "auth disabled", body: `{"password":"pw"}`, authErr: service.ErrAuthDisabled, wantStatus: http.StatusNotFound},
		{name: "invalid JSON", body: `{`, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &fakeAuth{enabled: true, token: models.Token{SignedString: "signed"}, err: tt.authErr}

			rr := serve(newTestRouter(&fakeLight{}, auth), http.MethodPost, "/api/auth/login", tt.body)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantHeader, rr.Header().Get("Authorization"))
		})
	}
}

// ---- Device routes ----

func TestRoutes_Connect(t *testing.T) {
	t.Run("without body uses configured key", func(t *testing.T) {
		light := &fakeLight{state: models.DeviceState{Connected: true}}

		rr := serve(newTestRouter(light, &fakeAuth{}), http.MethodPost, "/api/device/connect", "")

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Empty(t, light.lastAPIKey)
		assert.Contains(t, rr.Body.String(), `"connected":true`)
	})

	t.Run("explicit key", func(t *testing.T) {
		light := &fakeLight{}

		rr := serve(newTestRouter(light, &fakeAuth{}), http.MethodPost, "/api/device/connect", `{"api_key":"{k}"}`)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "{k}", light.lastAPIKey)
	})

	t.Run("device unreachable", func(t *testing.T) {
		light := &fakeLight{err: adapter.ErrConnectionFailed}

		rr := serve(newTestRouter(light, &fakeAuth{}), http.MethodPost, "/api/device/connect", "")

		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	})
}

func TestRoutes_Queries(t *testing.T) {
	light := &fakeLight{
		profiles: []string{"movie", "game", "general"},
		profile:  "general",
		status:   "device error",
		idle:     true,
	}
	router := newTestRouter(light, &fakeAuth{})

	tests := []struct {
		path     string
		wantBody string
	}{
		{path: "/api/device/profiles", wantBody: `["movie","game","general"]`},
		{path: "/api/device/profile", wantBody: `{"profile":"general"}`},
		{path: "/api/device/status", wantBody: `{"status":"device error"}`},
		{path: "/api/device/apistatus", wantBody: `{"idle":true}`},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rr := serve(router, http.MethodGet, tt.path, "")

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
		})
	}
}

func TestRoutes_EmptyProfilesIsArray(t *testing.T) {
	rr := serve(newTestRouter(&fakeLight{}, &fakeAuth{}), http.MethodGet, "/api/device/profiles", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestRoutes_Mutations(t *testing.T) {
	light := &fakeLight{}
	router := newTestRouter(light, &fakeAuth{})

	rr := serve(router, http.MethodPut, "/api/device/profile", `{"profile":"movie"}`)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "movie", light.lastProfile)

	rr = serve(router, http.MethodPut, "/api/device/status", `{"on":false}`)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	require.NotNil(t, light.lastOn)
	assert.False(t, *light.lastOn)

	rr = serve(router, http.MethodPut, "/api/device/brightness", `{"brightness":50}`)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	require.NotNil(t, light.lastBrightness)
	assert.Equal(t, 50, *light.lastBrightness)

	for _, path := range []string{"/api/device/profile", "/api/device/status", "/api/device/brightness"} {
		rr = serve(router, http.MethodPut, path, `not json`)
		assert.Equal(t, http.StatusBadRequest, rr.Code, path)
	}
}

func TestRoutes_Events(t *testing.T) {
	light := &fakeLight{events: []models.DeviceEvent{{ID: 1, Command: "setbrightness", Argument: "50", Outcome: "ok"}}}
	router := newTestRouter(light, &fakeAuth{})

	rr := serve(router, http.MethodGet, "/api/device/events", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, defaultEventsLimit, light.lastLimit)
	assert.Contains(t, rr.Body.String(), `"command":"setbrightness"`)

	rr = serve(router, http.MethodGet, "/api/device/events?limit=5", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 5, light.lastLimit)

	rr = serve(router, http.MethodGet, "/api/device/events?limit=five", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRoutes_ServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{name: "not connected", err: adapter.ErrNotConnected, wantStatus: http.StatusServiceUnavailable},
		{name: "connection failed", err: adapter.ErrConnectionFailed, wantStatus: http.StatusServiceUnavailable, wantBody: "connection failed"},
		{name: "unexpected handshake", err: adapter.ErrUnexpectedHandshake, wantStatus: http.StatusServiceUnavailable, wantBody: "unexpected handshake"},
		{name: "device auth failed", err: &adapter.ProtocolError{Command: "apikey", Response: "fail", Kind: adapter.ErrAuthenticationFailed}, wantStatus: http.StatusServiceUnavailable, wantBody: "authentication failed"},
		{name: "lock failed", err: adapter.ErrLockFailed, wantStatus: http.StatusConflict},
		{name: "rejected", err: &adapter.ProtocolError{Command: "setprofile:x", Response: "error", Kind: adapter.ErrCommandRejected}, wantStatus: http.StatusUnprocessableEntity},
		{name: "unexpected response", err: adapter.ErrUnexpectedResponse, wantStatus: http.StatusBadGateway},
		{name: "timeout", err: adapter.ErrTimeout, wantStatus: http.StatusGatewayTimeout},
		{name: "validation", err: service.ErrInvalidDataProvided, wantStatus: http.StatusBadRequest},
		{name: "journal disabled", err: service.ErrJournalDisabled, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := serve(newTestRouter(&fakeLight{err: tt.err}, &fakeAuth{}), http.MethodPut, "/api/device/profile", `{"profile":"x"}`)

			assert.Equal(t, tt.wantStatus, rr.Code)
			var body utils.ErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.NotEmpty(t, body.Error)
			assert.Contains(t, body.Error, tt.wantBody)
		})
	}
}

func TestRoutes_DeviceAuth(t *testing.T) {
	router := newTestRouter(&fakeLight{status: "on"}, &fakeAuth{enabled: true})

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "no header", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic Z29vZC10b2tlbg==", wantStatus: http.StatusUnauthorized},
		{name: "invalid token", header: "Bearer forged", wantStatus: http.StatusUnauthorized},
		{name: "valid token", header: "Bearer good-token", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rr *httptest.ResponseRecorder
			if tt.header == "" {
				rr = serve(router, http.MethodGet, "/api/device/status", "")
			} else {
				rr = serve(router, http.MethodGet, "/api/device/status", "", "Authorization", tt.header)
			}

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestRoutes_UnsupportedMethodIsNotFound(t *testing.T) {
	router := newTestRouter(&fakeLight{}, &fakeAuth{})

	for _, tc := range []struct{ method, path string }{
		{http.MethodDelete, "/api/device/profile"},
		{http.MethodPost, "/api/device/status"},
		{http.MethodPut, "/api/version/"},
		{http.MethodGet, "/api/auth/login"},
	} {
		rr := serve(router, tc.method, tc.path, "")
		assert.Equal(t, http.StatusNotFound, rr.Code, "%s %s", tc.method, tc.path)
	}
}

func TestRoutes_TraceIDReachesService(t *testing.T) {
	light := &fakeLight{}
	router := newTestRouter(light, &fakeAuth{})

	rr := serve(router, http.MethodGet, "/api/device/profiles", "", traceIDHeader, "trace-42")
	assert.Equal(t, "trace-42", rr.Header().Get(traceIDHeader))
	assert.Equal(t, "trace-42", light.lastTraceID)

	rr = serve(router, http.MethodGet, "/api/device/profiles", "")
	generated := rr.Header().Get(traceIDHeader)
	assert.NotEmpty(t, generated)
	assert.Equal(t, generated, light.lastTraceID)
}
