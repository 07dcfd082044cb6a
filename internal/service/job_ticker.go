package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-lightpack/internal/logger"
	"github.com/MKhiriev/go-lightpack/internal/utils"
)

// tickerJob calls tick on every interval. Each run gets its own trace id so
// device events caused by a job can be told apart in the journal.
type tickerJob struct {
	name     string
	interval time.Duration
	tick     func(ctx context.Context)
	traceIDs *utils.UUIDGenerator

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

func newTickerJob(name string, interval time.Duration, tick func(ctx context.Context), log *logger.Logger) *tickerJob {
	return &tickerJob{
		name:     name,
		interval: interval,
		tick:     tick,
		traceIDs: utils.NewUUIDGenerator(),
		logger:   log,
	}
}

// Start stops any previously running instance, then launches a goroutine
// that ticks every interval. A non-positive interval keeps the one given at
// construction.
func (j *tickerJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = j.interval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	j.logger.Info().Str("job", j.name).Dur("interval", interval).Msg("job started")

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.tick(utils.WithTraceID(jobCtx, j.traceIDs.Generate()))
			}
		}
	}()
}

// Stop cancels the goroutine and blocks until it exits. Safe to call when
// the job is not running.
func (j *tickerJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
		j.logger.Info().Str("job", j.name).Msg("job stopped")
	}
	j.wg.Wait()
}

// Run starts the job and blocks until ctx is done.
func (j *tickerJob) Run(ctx context.Context) error {
	j.Start(ctx, 0)
	<-ctx.Done()
	j.Stop()

	return nil
}
