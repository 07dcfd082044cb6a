package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-lightpack/internal/logger"
)

// NewStatusPollJob returns a Job that keeps the device session alive. On
// every tick it reconnects when the session is gone and refreshes the status
// otherwise. The session client never retries on its own; this job is the
// retry loop.
func NewStatusPollJob(light LightService, interval time.Duration, log *logger.Logger) Job {
	return newTickerJob("status-poll", interval, func(ctx context.Context) {
		pollStatus(ctx, light, log)
	}, log)
}

func pollStatus(ctx context.Context, light LightService, log *logger.Logger) {
	if !light.State(ctx).Connected {
		if err := light.Connect(ctx, ""); err != nil {
			log.Debug().Err(err).Msg("device is still unreachable")
			return
		}
		log.Info().Msg("device session restored")
	}

	if _, err := light.GetStatus(ctx); err != nil {
		log.Warn().Err(err).Msg("status refresh failed")
	}
}
