// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/MKhiriev/go-lightpack/internal/adapter"
	"github.com/MKhiriev/go-lightpack/internal/config"
	"github.com/MKhiriev/go-lightpack/internal/logger"
	"github.com/MKhiriev/go-lightpack/internal/store"
	"github.com/MKhiriev/go-lightpack/internal/utils"
	"github.com/MKhiriev/go-lightpack/models"
	"github.com/bluele/gcache"
	"go.uber.org/atomic"
	"golang.org/x/sync/singleflight"
)

// Journal command names.
const (
	eventSetup         = "apikey"
	eventGetProfiles   = "getprofiles"
	eventGetProfile    = "getprofile"
	eventGetStatus     = "getstatus"
	eventGetStatusAPI  = "getstatusapi"
	eventSetBrightness = "setbrightness"
	eventSetProfile    = "setprofile"
	eventSetStatus     = "setstatus"
)

const profilesCacheKey = "profiles"

// defaultSharedCallTimeout bounds a collapsed GetStatus call when no device
// timeout is configured.
const defaultSharedCallTimeout = 5 * time.Second

// lightService is the concrete implementation of LightService.
type lightService struct {
	device adapter.DeviceAdapter

	// events may be nil, which disables the journal.
	events store.EventRepository

	apiKey string

	// sharedTimeout bounds device calls shared between several callers.
	sharedTimeout time.Duration

	// profiles is nil when caching is disabled.
	profiles gcache.Cache
	group    singleflight.Group
	online   *atomic.Bool

	mu        sync.RWMutex
	state     models.DeviceState
	listeners map[int]StateListener
	nextID    int

	logger *logger.Logger
}

// NewLightService constructs a LightService on top of device. events may be
// nil when no journal is configured. A non-positive cfg.ProfileCacheTTL
// disables the profile cache.
func NewLightService(device adapter.DeviceAdapter, events store.EventRepository, cfg config.Device, log *logger.Logger) LightService {
	s := &lightService{
		device:        device,
		events:        events,
		apiKey:        cfg.APIKey,
		sharedTimeout: cfg.Timeout,
		online:        atomic.NewBool(device.IsConnected()),
		listeners:     make(map[int]StateListener),
		logger:        log,
		state: models.DeviceState{
			Status:     models.StatusUnknown,
			Brightness: models.UnknownBrightness,
		},
	}
	if s.sharedTimeout <= 0 {
		s.sharedTimeout = defaultSharedCallTimeout
	}
	if cfg.ProfileCacheTTL > 0 {
		s.profiles = gcache.New(1).LRU().Expiration(cfg.ProfileCacheTTL).Build()
	}

	return s
}

func (s *lightService) Connect(ctx context.Context, apiKey string) error {
	if apiKey == "" {
		apiKey = s.apiKey
	}

	err := s.device.SetupConnection(ctx, apiKey)
	s.record(ctx, eventSetup, "", err)
	s.sync(nil)
	if err != nil {
		return fmt.Errorf("device connection failed: %w", err)
	}

	return nil
}

func (s *lightService) State(_ context.Context) models.DeviceState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state := s.state
	state.Connected = s.online.Load()
	return state
}

// GetProfiles serves the cached list only while the device is connected.
func (s *lightService) GetProfiles(ctx context.Context) ([]string, error) {
	if s.profiles != nil && s.device.IsConnected() {
		if cached, err := s.profiles.Get(profilesCacheKey); err == nil {
			return slices.Clone(cached.([]string)), nil
		}
	}

	profiles, err := s.device.GetProfiles(ctx)
	s.record(ctx, eventGetProfiles, "", err)
	s.sync(nil)
	if err != nil {
		return nil, fmt.Errorf("get profiles failed: %w", err)
	}

	if s.profiles != nil {
		if cacheErr := s.profiles.Set(profilesCacheKey, slices.Clone(profiles)); cacheErr != nil {
			s.logger.Warn().Err(cacheErr).Msg("profile list was not cached")
		}
	}

	return profiles, nil
}

func (s *lightService) GetProfile(ctx context.Context) (string, error) {
	profile, err := s.device.GetProfile(ctx)
	s.record(ctx, eventGetProfile, "", err)
	if err != nil {
		s.sync(nil)
		return "", fmt.Errorf("get profile failed: %w", err)
	}

	s.sync(func(state *models.DeviceState) { state.Profile = profile })
	return profile, nil
}

// GetStatus collapses concurrent calls into one device exchange. The shared
// exchange does not inherit the cancellation of whichever caller started it.
func (s *lightService) GetStatus(ctx context.Context) (string, error) {
	v, err, _ := s.group.Do(eventGetStatus, func() (any, error) {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.sharedTimeout)
		defer cancel()

		status, err := s.device.GetStatus(ctx)
		s.record(ctx, eventGetStatus, "", err)
		if err != nil {
			s.sync(nil)
			return "", err
		}

		s.sync(func(state *models.DeviceState) { state.Status = status })
		return status, nil
	})
	if err != nil {
		return "", fmt.Errorf("get status failed: %w", err)
	}

	return v.(string), nil
}

func (s *lightService) GetStatusAPI(ctx context.Context) (bool, error) {
	idle, err := s.device.GetStatusAPI(ctx)
	s.record(ctx, eventGetStatusAPI, "", err)
	s.sync(nil)
	if err != nil {
		return false, fmt.Errorf("get api status failed: %w", err)
	}

	return idle, nil
}

func (s *lightService) SetBrightness(ctx context.Context, level int) error {
	err := s.device.SetBrightness(ctx, level)
	s.record(ctx, eventSetBrightness, strconv.Itoa(level), err)
	if err != nil {
		s.sync(nil)
		return fmt.Errorf("set brightness failed: %w", err)
	}

	s.sync(func(state *models.DeviceState) { state.Brightness = level })
	return nil
}

func (s *lightService) SetProfile(ctx context.Context, name string) error {
	if s.profiles != nil {
		s.profiles.Remove(profilesCacheKey)
	}

	err := s.device.SetProfile(ctx, name)
	s.record(ctx, eventSetProfile, name, err)
	if err != nil {
		s.sync(nil)
		return fmt.Errorf("set profile failed: %w", err)
	}

	s.sync(func(state *models.DeviceState) { state.Profile = name })
	return nil
}

func (s *lightService) SetStatus(ctx context.Context, on bool) error {
	status := models.StatusOff
	if on {
		status = models.StatusOn
	}

	err := s.device.SetStatus(ctx, on)
	s.record(ctx, eventSetStatus, status, err)
	if err != nil {
		s.sync(nil)
		return fmt.Errorf("set status failed: %w", err)
	}

	s.sync(func(state *models.DeviceState) { state.Status = status })
	return nil
}

func (s *lightService) Events(ctx context.Context, limit int) ([]models.DeviceEvent, error) {
	if s.events == nil {
		return nil, ErrJournalDisabled
	}

	events, err := s.events.ListEvents(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list events failed: %w", err)
	}

	return events, nil
}

func (s *lightService) Subscribe(fn StateListener) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// sync refreshes the online flag from the adapter and applies update when it
// is not nil. A lost connection drops the cached profile list. Listeners are
// notified if the connection flag or the status moved.
func (s *lightService) sync(update func(state *models.DeviceState)) {
	connected := s.device.IsConnected()

	s.mu.Lock()
	prev := s.state
	prev.Connected = s.online.Load()

	next := s.state
	if update != nil {
		update(&next)
		next.UpdatedAt = time.Now().UTC()
	}
	next.Connected = connected
	s.state = next
	s.online.Store(connected)

	if prev.Connected && !connected && s.profiles != nil {
		s.profiles.Purge()
	}

	var listeners []StateListener
	if prev.Connected != next.Connected || prev.Status != next.Status {
		listeners = make([]StateListener, 0, len(s.listeners))
		for _, fn := range s.listeners {
			listeners = append(listeners, fn)
		}
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(prev, next)
	}
}

// record journals one device call. Journal failures are logged and never
// reach the caller.
func (s *lightService) record(ctx context.Context, command, argument string, callErr error) {
	if s.events == nil {
		return
	}

	event := models.DeviceEvent{
		TraceID:  utils.GetTraceIDFromContext(ctx),
		Command:  command,
		Argument: argument,
		Outcome:  models.OutcomeOK,
	}
	if callErr != nil {
		event.Outcome = models.OutcomeFailed
		event.Error = callErr.Error()
	}

	// the journal outlives a canceled request
	if _, err := s.events.SaveEvent(context.WithoutCancel(ctx), event); err != nil {
		s.logger.Err(err).Str("command", command).Msg("device event was not journaled")
	}
}
