package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-lightpack/internal/service"
	"github.com/MKhiriev/go-lightpack/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

const statusLifetime = 2 * time.Second

// cmdRefresh connects when needed and reads profiles, status and the active
// profile. The first failing call ends the refresh.
func cmdRefresh(ctx context.Context, light service.LightService) tea.Cmd {
	return func() tea.Msg {
		if err := light.Connect(ctx, ""); err != nil {
			return refreshedMsg{state: light.State(ctx), err: err}
		}

		profiles, err := light.GetProfiles(ctx)
		if err != nil {
			return refreshedMsg{state: light.State(ctx), err: err}
		}
		if _, err = light.GetStatus(ctx); err != nil {
			return refreshedMsg{state: light.State(ctx), profiles: profiles, err: err}
		}
		if _, err = light.GetProfile(ctx); err != nil {
			return refreshedMsg{state: light.State(ctx), profiles: profiles, err: err}
		}

		return refreshedMsg{state: light.State(ctx), profiles: profiles}
	}
}

func cmdAction(ctx context.Context, action string, fn func(ctx context.Context) error) tea.Cmd {
	return func() tea.Msg {
		return actionDoneMsg{action: action, err: fn(ctx)}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusLifetime, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// stateSummary is the text copied to the clipboard.
func stateSummary(state models.DeviceState) string {
	return fmt.Sprintf("connected=%t status=%s profile=%s brightness=%s",
		state.Connected, valueOrDash(state.Status), valueOrDash(state.Profile), brightnessText(state.Brightness))
}

func brightnessText(level int) string {
	if level == models.UnknownBrightness {
		return "-"
	}
	return fmt.Sprintf("%d%%", level)
}
