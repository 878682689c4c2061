package sched

import (
	"context"
	"time"

	"github.com/chenna-nefer/InsightScout-new/internal/domain/ports/repository"
	"github.com/chenna-nefer/InsightScout-new/internal/infra/metrics"

	"github.com/rs/zerolog"
)

// RetentionSweeper periodically deletes terminal jobs older than the retention
// window, bounding memory growth from abandoned jobs.
type RetentionSweeper struct {
	interval  time.Duration
	retention time.Duration
	jobs      repository.JobRepository
	log       *zerolog.Logger
}

func NewRetentionSweeper(interval, retention time.Duration, jobs repository.JobRepository, logger *zerolog.Logger) *RetentionSweeper {
	l := logger.With().Str("component", "RetentionSweeper").Logger()
	return &RetentionSweeper{
		interval:  interval,
		retention: retention,
		jobs:      jobs,
		log:       &l,
	}
}

func (w *RetentionSweeper) Run(ctx context.Context) error {
	w.log.Info().Dur("interval", w.interval).Dur("retention", w.retention).Msg("Starting retention sweeper")
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("Stopping retention sweeper")
			return ctx.Err()
		case <-ticker.C:
			n := w.jobs.SweepExpired(ctx, w.retention)
			if n > 0 {
				metrics.AddJobsSwept(n)
			}
		}
	}
}
