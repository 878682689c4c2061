// File: internal/infra/worker/runner.go
package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/chenna-nefer/InsightScout-new/internal/domain/model"
	"github.com/chenna-nefer/InsightScout-new/internal/domain/ports/adapter"
	"github.com/chenna-nefer/InsightScout-new/internal/domain/ports/repository"
	"github.com/chenna-nefer/InsightScout-new/internal/infra/metrics"

	"github.com/rs/zerolog"
)

// Runner drives the enrichment provider over a job's company list, one
// company at a time. Exactly one Runner invocation exists per job and it is
// the only writer of the job's contents; concurrency comes from independent
// jobs running their own invocation.
type Runner struct {
	jobs     repository.JobRepository
	provider adapter.EnrichmentProvider
	timeout  time.Duration // per-company provider budget
	delay    time.Duration // pacing floor between companies
	log      *zerolog.Logger
}

func NewRunner(jobs repository.JobRepository, provider adapter.EnrichmentProvider, timeout, delay time.Duration, logger *zerolog.Logger) *Runner {
	l := logger.With().Str("component", "Runner").Logger()
	return &Runner{
		jobs:     jobs,
		provider: provider,
		timeout:  timeout,
		delay:    delay,
		log:      &l,
	}
}

// Run processes every company in order and flips the job to a terminal state.
// It is meant to run in its own goroutine; ctx is the job's own cancellable
// context, cancelled by the Cancel operation (and by process shutdown), so an
// in-flight provider call is interrupted rather than waited out.
func (r *Runner) Run(ctx context.Context, jobID string, companies []string) {
	log := r.log.With().Str("job_id", jobID).Logger()

	// Per-item failures are handled locally; this guard catches anything that
	// escapes so accumulated results survive with status=failed.
	defer func() {
		if rec := recover(); rec != nil {
			log.Error().Interface("panic", rec).Msg("runner aborted")
			r.jobs.Finish(context.Background(), jobID, model.JobStatusFailed, fmt.Sprintf("internal error: %v", rec))
			metrics.IncJobFinished(string(model.JobStatusFailed))
		}
	}()

	total := len(companies)
	for i, company := range companies {
		if r.halted(ctx, jobID) {
			log.Info().Int("processed", i).Msg("stopping: job cancelled or gone")
			return
		}

		r.jobs.SetCurrent(ctx, jobID, company, i)
		log.Debug().Str("company", company).Int("index", i).Msg("processing company")

		res := r.enrichOne(ctx, company, &log)

		// A cancel fired while the provider call was in flight: pure halt,
		// nothing rolled back, the in-flight outcome is dropped.
		if ctx.Err() != nil {
			log.Info().Int("processed", i).Msg("stopping: cancelled during enrichment")
			return
		}

		r.jobs.AppendResult(ctx, jobID, res, i+1)
		metrics.IncCompanyProcessed(string(res.Status))

		// Deliberate pacing between third-party lookups, a hard floor rather
		// than adaptive backoff. Skipped after the last company.
		if i < total-1 {
			select {
			case <-ctx.Done():
				return
			case <-time.After(r.delay):
			}
		}
	}

	r.jobs.Finish(ctx, jobID, model.JobStatusCompleted, "")
	metrics.IncJobFinished(string(model.JobStatusCompleted))
}

// enrichOne wraps a single provider call in the per-company timeout. Failure
// or timeout yields an error result with sentinel founder fields so the
// results shape never has a gap; an empty founder list is a normal outcome.
func (r *Runner) enrichOne(ctx context.Context, company string, log *zerolog.Logger) model.CompanyResult {
	callCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	founders, err := r.provider.Enrich(callCtx, company)
	if err != nil {
		log.Warn().Err(err).Str("company", company).Msg("enrichment failed")
		return model.CompanyResult{
			CompanyName:  company,
			FoundersData: []model.Founder{model.SentinelFounder()},
			Status:       model.ResultStatusError,
		}
	}
	if founders == nil {
		founders = []model.Founder{}
	}
	return model.CompanyResult{
		CompanyName:  company,
		FoundersData: founders,
		Status:       model.ResultStatusCompleted,
	}
}

// halted reports whether the loop should stop before issuing the next
// provider call: the job was cancelled, swept, or cleaned up.
func (r *Runner) halted(ctx context.Context, jobID string) bool {
	if ctx.Err() != nil {
		return true
	}
	job, err := r.jobs.Find(ctx, jobID)
	if err != nil {
		return true
	}
	return job.IsCancelled || job.Status.IsTerminal()
}
