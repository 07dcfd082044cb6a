package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-lightpack/internal/logger"
	"github.com/amimof/huego"
)

// hueMaxBrightness is the top of the Hue "bri" range.
const hueMaxBrightness = 254

// HueBridge is the part of *huego.Bridge the mirror needs.
type HueBridge interface {
	GetGroupContext(ctx context.Context, id int) (*huego.Group, error)
}

// hueMirror copies the on/off state and brightness of a Hue group to the
// Lightpack. Only changes are forwarded, so manual changes made on the
// Lightpack side stick until the Hue group changes again.
type hueMirror struct {
	bridge  HueBridge
	groupID int
	light   LightService

	mu           sync.Mutex
	statusSynced bool
	brightSynced bool
	lastOn       bool
	lastBright   int

	logger *logger.Logger
}

// NewHueMirrorJob returns a Job polling group groupID of bridge.
func NewHueMirrorJob(bridge HueBridge, groupID int, light LightService, interval time.Duration, log *logger.Logger) Job {
	m := &hueMirror{
		bridge:  bridge,
		groupID: groupID,
		light:   light,
		logger:  log,
	}

	return newTickerJob("hue-mirror", interval, m.mirror, log)
}

func (m *hueMirror) mirror(ctx context.Context) {
	group, err := m.bridge.GetGroupContext(ctx, m.groupID)
	if err != nil {
		m.logger.Warn().Err(err).Int("group", m.groupID).Msg("hue group is unavailable")
		return
	}
	if group.GroupState == nil || group.State == nil {
		return
	}

	on := group.GroupState.AllOn
	bright := hueToLightpack(group.State.Bri)

	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.statusSynced || on != m.lastOn {
		if err := m.light.SetStatus(ctx, on); err != nil {
			m.logger.Warn().Err(err).Bool("on", on).Msg("hue status was not mirrored")
			return
		}
		m.lastOn = on
		m.statusSynced = true
	}

	if on && (!m.brightSynced || bright != m.lastBright) {
		if err := m.light.SetBrightness(ctx, bright); err != nil {
			m.logger.Warn().Err(err).Int("brightness", bright).Msg("hue brightness was not mirrored")
			return
		}
		m.lastBright = bright
		m.brightSynced = true
	}
}

// hueToLightpack scales a Hue brightness (0..254) to percent.
func hueToLightpack(bri uint8) int {
	if int(bri) >= hueMaxBrightness {
		return 100
	}
	return (int(bri)*100 + hueMaxBrightness/2) / hueMaxBrightness
}
