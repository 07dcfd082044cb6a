// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-lightpack/internal/logger"
	"github.com/MKhiriev/go-lightpack/internal/utils"
	"github.com/MKhiriev/go-lightpack/models"
	"github.com/amimof/huego"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── tickerJob ────────────────────────────────────────────────────────────────

func TestTickerJob_StartTicksAndStopHalts(t *testing.T) {
	var calls atomic.Int64
	job := newTickerJob("test", time.Hour, func(context.Context) { calls.Add(1) }, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	afterStop := calls.Load()
	assert.GreaterOrEqual(t, afterStop, int64(3))

	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, afterStop, calls.Load(), "no ticks after Stop")
}

func TestTickerJob_StopBeforeStart_NoPanic(t *testing.T) {
	job := newTickerJob("test", time.Second, func(context.Context) {}, logger.Nop())

	assert.NotPanics(t, func() { job.Stop() })
}

func TestTickerJob_EveryTickHasOwnTraceID(t *testing.T) {
	var (
		mu  sync.Mutex
		ids []string
	)
	job := newTickerJob("test", 5*time.Millisecond, func(ctx context.Context) {
		mu.Lock()
		ids = append(ids, utils.GetTraceIDFromContext(ctx))
		mu.Unlock()
	}, logger.Nop())

	job.Start(context.Background(), 0)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	mu.Lock()
	defer mu.Unlock()
	require.GreaterOrEqual(t, len(ids), 2)
	assert.NotEmpty(t, ids[0])
	assert.NotEqual(t, ids[0], ids[1])
}

func TestTickerJob_RunBlocksUntilContextDone(t *testing.T) {
	var calls atomic.Int64
	job := newTickerJob("test", 5*time.Millisecond, func(context.Context) { calls.Add(1) }, logger.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 40*time.Millisecond)
	defer cancel()

	start := time.Now()
	require.NoError(t, job.Run(ctx))

	assert.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond)
	assert.Positive(t, calls.Load())
}

// ── status poll ──────────────────────────────────────────────────────────────

// stubLight is a LightService whose device-facing calls are scripted.
type stubLight struct {
	LightService

	mu          sync.Mutex
	connected   bool
	connectErr  error
	connects    int
	statusCalls int
	statuses    []bool
	brightness  []int
	setErr      error
}

func (s *stubLight) State(context.Context) models.DeviceState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.DeviceState{Connected: s.connected}
}

func (s *stubLight) Connect(context.Context, string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.connects++
	if s.connectErr == nil {
		s.connected = true
	}
	return s.connectErr
}

func (s *stubLight) GetStatus(context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statusCalls++
	return models.StatusOn, nil
}

func (s *stubLight) SetStatus(_ context.Context, on bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.setErr != nil {
		return s.setErr
	}
	s.statuses = append(s.statuses, on)
	return nil
}

func (s *stubLight) SetBrightness(_ context.Context, level int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.brightness = append(s.brightness, level)
	return nil
}

func TestPollStatus(t *testing.T) {
	t.Run("reconnects then refreshes", func(t *testing.T) {
		light := &stubLight{}

		pollStatus(context.Background(), light, logger.Nop())

		assert.Equal(t, 1, light.connects)
		assert.Equal(t, 1, light.statusCalls)
	})

	t.Run("connected session only refreshes", func(t *testing.T) {
		light := &stubLight{connected: true}

		pollStatus(context.Background(), light, logger.Nop())

		assert.Zero(t, light.connects)
		assert.Equal(t, 1, light.statusCalls)
	})

	t.Run("unreachable device skips refresh", func(t *testing.T) {
		light := &stubLight{connectErr: errors.New("connection refused")}

		pollStatus(context.Background(), light, logger.Nop())

		assert.Equal(t, 1, light.connects)
		assert.Zero(t, light.statusCalls)
	})
}

// ── hue mirror ───────────────────────────────────────────────────────────────

type stubBridge struct {
	group *huego.Group
	err   error
}

func (b *stubBridge) GetGroupContext(context.Context, int) (*huego.Group, error) {
	return b.group, b.err
}

func hueGroup(on bool, bri uint8) *huego.Group {
	return &huego.Group{
		GroupState: &huego.GroupState{AllOn: on},
		State:      &huego.State{On: on, Bri: bri},
	}
}

func TestHueMirror_ForwardsOnlyChanges(t *testing.T) {
	light := &stubLight{}
	bridge := &stubBridge{group: hueGroup(true, 127)}
	m := &hueMirror{bridge: bridge, light: light, logger: logger.Nop()}
	ctx := context.Background()

	m.mirror(ctx)
	m.mirror(ctx)

	bridge.group = hueGroup(true, 254)
	m.mirror(ctx)

	bridge.group = hueGroup(false, 254)
	m.mirror(ctx)

	assert.Equal(t, []bool{true, false}, light.statuses)
	assert.Equal(t, []int{50, 100}, light.brightness)
}

func TestHueMirror_BridgeErrorChangesNothing(t *testing.T) {
	light := &stubLight{}
	m := &hueMirror{bridge: &stubBridge{err: errors.New("unreachable")}, light: light, logger: logger.Nop()}

	m.mirror(context.Background())

	assert.Empty(t, light.statuses)
	assert.Empty(t, light.brightness)
}

func TestHueMirror_RetriesAfterDeviceFailure(t *testing.T) {
	light := &stubLight{setErr: errors.New("lock failed")}
	m := &hueMirror{bridge: &stubBridge{group: hueGroup(true, 254)}, light: light, logger: logger.Nop()}

	m.mirror(context.Background())
	assert.Empty(t, light.brightness)

	light.setErr = nil
	m.mirror(context.Background())
	assert.Equal(t, []bool{true}, light.statuses)
	assert.Equal(t, []int{100}, light.brightness)
}

func TestHueToLightpack(t *testing.T) {
	tests := []struct {
		bri  uint8
		want int
	}{
		{0, 0},
		{1, 0},
		{3, 1},
		{127, 50},
		{254, 100},
		{255, 100},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, hueToLightpack(tt.bri), "bri=%d", tt.bri)
	}
}
