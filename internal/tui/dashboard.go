package tui

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-lightpack/internal/service"
	"github.com/MKhiriev/go-lightpack/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	brightnessStep = 10
	// Prismatik starts at full brightness, so an unknown level steps down
	// from 100.
	assumedBrightness = 100
	profileNameWidth  = 40
)

type dashboardModel struct {
	ctx       context.Context
	light     service.LightService
	buildInfo models.AppBuildInfo

	state    models.DeviceState
	profiles []string
	idx      int

	busy    bool
	spinner spinner.Model

	status   string
	errorMsg string
	showInfo bool
}

func newDashboardModel(ctx context.Context, light service.LightService, buildInfo models.AppBuildInfo) dashboardModel {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot

	return dashboardModel{
		ctx:       ctx,
		light:     light,
		buildInfo: buildInfo,
		state:     light.State(ctx),
		busy:      true,
		spinner:   sp,
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, cmdRefresh(m.ctx, m.light))
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKeys(msg)

	case spinner.TickMsg:
		if m.busy {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}

	case refreshedMsg:
		m.busy = false
		m.state = msg.state
		if msg.profiles != nil {
			m.setProfiles(msg.profiles)
		}
		m.errorMsg = humanizeDeviceError(msg.err)

	case actionDoneMsg:
		m.busy = false
		m.state = m.light.State(m.ctx)
		if msg.err != nil {
			m.errorMsg = humanizeDeviceError(msg.err)
			return m, nil
		}
		m.errorMsg = ""
		m.status = msg.action
		return m, cmdClearStatus()

	case stateChangedMsg:
		m.state = msg.state

	case copiedMsg:
		if msg.err != nil {
			m.errorMsg = msg.err.Error()
			return m, nil
		}
		m.status = "state copied to clipboard"
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.status = ""
	}

	return m, nil
}

func (m dashboardModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		return m, tea.Quit
	}

	if m.showInfo {
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.info) {
			m.showInfo = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.info):
		m.showInfo = true
		return m, nil
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
		return m, nil
	case key.Matches(msg, keys.down):
		if m.idx < len(m.profiles)-1 {
			m.idx++
		}
		return m, nil
	case key.Matches(msg, keys.copy):
		return m, cmdCopyToClipboard(stateSummary(m.state))
	}

	if m.busy {
		return m, nil
	}

	var cmd tea.Cmd
	switch {
	case key.Matches(msg, keys.refresh):
		cmd = cmdRefresh(m.ctx, m.light)
	case key.Matches(msg, keys.enter):
		if len(m.profiles) == 0 {
			return m, nil
		}
		name := m.profiles[m.idx]
		cmd = cmdAction(m.ctx, fmt.Sprintf("profile %q applied", name), func(ctx context.Context) error {
			return m.light.SetProfile(ctx, name)
		})
	case key.Matches(msg, keys.toggle):
		on := !m.state.IsOn()
		cmd = cmdAction(m.ctx, "lights "+onOff(on), func(ctx context.Context) error {
			return m.light.SetStatus(ctx, on)
		})
	case key.Matches(msg, keys.plus):
		cmd = m.stepBrightness(brightnessStep)
	case key.Matches(msg, keys.minus):
		cmd = m.stepBrightness(-brightnessStep)
	}

	if cmd == nil {
		return m, nil
	}

	m.busy = true
	m.errorMsg = ""
	return m, tea.Batch(m.spinner.Tick, cmd)
}

func (m dashboardModel) stepBrightness(delta int) tea.Cmd {
	current := m.state.Brightness
	if current == models.UnknownBrightness {
		current = assumedBrightness
	}

	level := min(max(current+delta, 0), 100)
	if level == m.state.Brightness {
		return nil
	}

	return cmdAction(m.ctx, fmt.Sprintf("brightness set to %d%%", level), func(ctx context.Context) error {
		return m.light.SetBrightness(ctx, level)
	})
}

// setProfiles replaces the list and keeps the cursor on the active profile
// when it is listed.
func (m *dashboardModel) setProfiles(profiles []string) {
	m.profiles = profiles
	if i := slices.Index(profiles, m.state.Profile); i >= 0 {
		m.idx = i
	}
	if m.idx >= len(m.profiles) {
		m.idx = max(len(m.profiles)-1, 0)
	}
}

func (m dashboardModel) View() string {
	if m.showInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var b strings.Builder

	b.WriteString(fmt.Sprintf("Connection: %s\n", connectionText(m.state.Connected)))
	b.WriteString(fmt.Sprintf("Status:     %s\n", statusText(m.state.Status)))
	b.WriteString(fmt.Sprintf("Profile:    %s\n", fitText(valueOrDash(m.state.Profile), profileNameWidth)))
	b.WriteString(fmt.Sprintf("Brightness: %s\n", brightnessText(m.state.Brightness)))
	if !m.state.UpdatedAt.IsZero() {
		b.WriteString(fmt.Sprintf("Updated:    %s\n", m.state.UpdatedAt.Format("15:04:05")))
	}

	b.WriteString("\nProfiles:\n")
	if len(m.profiles) == 0 {
		b.WriteString("  -\n")
	}
	for i, name := range m.profiles {
		line := "  " + fitText(name, profileNameWidth)
		if name == m.state.Profile {
			line += " *"
		}
		if i == m.idx {
			line = selectedStyle.Render("> " + strings.TrimPrefix(line, "  "))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case m.busy:
		b.WriteString(m.spinner.View() + " talking to the device...")
	case m.errorMsg != "":
		b.WriteString(errorStyle.Render("Error: " + m.errorMsg))
	case m.status != "":
		b.WriteString(m.status)
	}

	hotKeys := "↑/↓: select  enter: apply  +/-: brightness  t: on/off  r: refresh  c: copy  v: about  q: quit"
	return appStyle.Render(renderPage("LIGHTPACK", b.String(), hotKeys))
}

func connectionText(connected bool) string {
	if connected {
		return onStyle.Render("connected")
	}
	return offStyle.Render("disconnected")
}

func statusText(status string) string {
	if status == models.StatusOn {
		return onStyle.Render(status)
	}
	return valueOrDash(status)
}

func onOff(on bool) string {
	if on {
		return models.StatusOn
	}
	return models.StatusOff
}
