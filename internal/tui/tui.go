// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the terminal dashboard of go-lightpack.
//
// The dashboard shows the connection flag, status, active profile and
// brightness of the device together with the profile list, and drives the
// device through a [service.LightService]. State changes reported by the
// service subscription are pushed into the running program, so background
// refreshes show up without a key press.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-lightpack/internal/logger"
	"github.com/MKhiriev/go-lightpack/internal/service"
	"github.com/MKhiriev/go-lightpack/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	light     service.LightService
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(light service.LightService, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		light:     light,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newDashboardModel(ctx, t.light, t.buildInfo)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	unsubscribe := t.light.Subscribe(func(_, next models.DeviceState) {
		program.Send(stateChangedMsg{state: next})
	})
	defer unsubscribe()

	_, err := program.Run()
	switch {
	case err == nil:
		return nil
	case errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil:
		t.logger.Info().Msg("dashboard stopped by context")
		return nil
	default:
		return fmt.Errorf("dashboard run failed: %w", err)
	}
}
