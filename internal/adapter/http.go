package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-lightpack/internal/config"
	"github.com/MKhiriev/go-lightpack/internal/logger"
	"github.com/MKhiriev/go-lightpack/internal/utils"
	"github.com/MKhiriev/go-lightpack/models"
	"github.com/go-resty/resty/v2"
)

type httpDeviceAdapter struct {
	client   *utils.HTTPClient
	password string

	mu        sync.RWMutex
	token     string
	connected bool

	logger *logger.Logger
}

// NewHTTPDeviceAdapter constructs a [DeviceAdapter] that drives a remote
// go-lightpack daemon over its REST API. It normalises the base URL from
// adapterCfg.HTTPAddress and applies the request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPDeviceAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (DeviceAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpDeviceAdapter{client: client, password: adapterCfg.Password, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetupConnection implements [DeviceAdapter]. When a password is configured
// it first logs in at POST /api/auth/login and keeps the bearer token, then
// asks the daemon to connect via POST /api/device/connect. An empty apiKey
// lets the daemon use its own configured key.
//
// A token the daemon no longer accepts is dropped and the login is repeated
// once.
func (h *httpDeviceAdapter) SetupConnection(ctx context.Context, apiKey string) error {
	hadToken := h.getToken() != ""

	err := h.connect(ctx, apiKey)
	if hadToken && h.password != "" && errors.Is(err, ErrUnauthorized) {
		h.logger.Debug().Msg("bearer token rejected, logging in again")
		err = h.connect(ctx, apiKey)
	}
	return err
}

func (h *httpDeviceAdapter) connect(ctx context.Context, apiKey string) error {
	if h.password != "" && h.getToken() == "" {
		if err := h.login(ctx); err != nil {
			return err
		}
	}

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.ConnectRequest{APIKey: apiKey}).
		Post("/api/device/connect")
	if err != nil {
		return h.requestFailed(ctx, "connect", err)
	}
	if err = h.check(resp); err != nil {
		return err
	}

	h.setConnected(true)
	return nil
}

func (h *httpDeviceAdapter) login(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.LoginRequest{Password: h.password}).
		Post("/api/auth/login")
	if err != nil {
		return h.requestFailed(ctx, "login", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return fmt.Errorf("login parse bearer token: %w", err)
	}

	h.mu.Lock()
	h.token = token
	h.mu.Unlock()
	return nil
}

// IsConnected implements [DeviceAdapter]. It reports the outcome of the last
// call made through this adapter.
func (h *httpDeviceAdapter) IsConnected() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.connected
}

// GetProfiles implements [DeviceAdapter] via GET /api/device/profiles.
func (h *httpDeviceAdapter) GetProfiles(ctx context.Context) ([]string, error) {
	var profiles []string
	resp, err := h.authedRequest(ctx).
		SetResult(&profiles).
		Get("/api/device/profiles")
	if err != nil {
		return nil, h.requestFailed(ctx, "get profiles", err)
	}
	if err = h.check(resp); err != nil {
		return nil, err
	}
	return profiles, nil
}

// GetProfile implements [DeviceAdapter] via GET /api/device/profile.
func (h *httpDeviceAdapter) GetProfile(ctx context.Context) (string, error) {
	var body models.ProfileResponse
	resp, err := h.authedRequest(ctx).
		SetResult(&body).
		Get("/api/device/profile")
	if err != nil {
		return "", h.requestFailed(ctx, "get profile", err)
	}
	if err = h.check(resp); err != nil {
		return "", err
	}
	return body.Profile, nil
}

// GetStatus implements [DeviceAdapter] via GET /api/device/status.
func (h *httpDeviceAdapter) GetStatus(ctx context.Context) (string, error) {
	var body models.StatusResponse
	resp, err := h.authedRequest(ctx).
		SetResult(&body).
		Get("/api/device/status")
	if err != nil {
		return "", h.requestFailed(ctx, "get status", err)
	}
	if err = h.check(resp); err != nil {
		return "", err
	}
	return body.Status, nil
}

// GetStatusAPI implements [DeviceAdapter] via GET /api/device/apistatus.
func (h *httpDeviceAdapter) GetStatusAPI(ctx context.Context) (bool, error) {
	var body models.APIStatusResponse
	resp, err := h.authedRequest(ctx).
		SetResult(&body).
		Get("/api/device/apistatus")
	if err != nil {
		return false, h.requestFailed(ctx, "get api status", err)
	}
	if err = h.check(resp); err != nil {
		return false, err
	}
	return body.Idle, nil
}

// SetBrightness implements [DeviceAdapter] via PUT /api/device/brightness.
func (h *httpDeviceAdapter) SetBrightness(ctx context.Context, level int) error {
	return h.put(ctx, "/api/device/brightness", models.BrightnessRequest{Brightness: level})
}

// SetProfile implements [DeviceAdapter] via PUT /api/device/profile.
func (h *httpDeviceAdapter) SetProfile(ctx context.Context, name string) error {
	return h.put(ctx, "/api/device/profile", models.ProfileRequest{Profile: name})
}

// SetStatus implements [DeviceAdapter] via PUT /api/device/status.
func (h *httpDeviceAdapter) SetStatus(ctx context.Context, on bool) error {
	return h.put(ctx, "/api/device/status", models.StatusRequest{On: on})
}

// Close implements [DeviceAdapter]. It forgets the bearer token; the daemon
// keeps its own device session.
func (h *httpDeviceAdapter) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = ""
	h.connected = false
	return nil
}

func (h *httpDeviceAdapter) put(ctx context.Context, path string, body any) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Put(path)
	if err != nil {
		return h.requestFailed(ctx, "put "+path, err)
	}
	return h.check(resp)
}

// check maps resp to an error and tracks whether the daemon still reports a
// device session. A 401 also drops the bearer token.
func (h *httpDeviceAdapter) check(resp *resty.Response) error {
	err := mapHTTPError(resp)
	switch {
	case err == nil:
		h.setConnected(true)
	case isDisconnect(err):
		h.setConnected(false)
	case errors.Is(err, ErrUnauthorized):
		h.mu.Lock()
		h.token = ""
		h.mu.Unlock()
	}
	return err
}

// requestFailed marks the daemon unreachable after a transport error. A
// request abandoned by its caller says nothing about the daemon.
func (h *httpDeviceAdapter) requestFailed(ctx context.Context, what string, err error) error {
	if ctx.Err() != nil {
		return fmt.Errorf("%s request: %w", what, err)
	}

	h.setConnected(false)
	return fmt.Errorf("%w: %s request: %w", ErrConnectionFailed, what, err)
}

func (h *httpDeviceAdapter) setConnected(connected bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.connected = connected
}

func (h *httpDeviceAdapter) getToken() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpDeviceAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.getToken(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
