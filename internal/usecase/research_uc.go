package usecase

import (
	"context"
	"strings"
	"sync"

	"github.com/chenna-nefer/InsightScout-new/internal/domain"
	"github.com/chenna-nefer/InsightScout-new/internal/domain/model"
	"github.com/chenna-nefer/InsightScout-new/internal/domain/ports/repository"
	"github.com/chenna-nefer/InsightScout-new/internal/infra/logging"
	"github.com/chenna-nefer/InsightScout-new/internal/infra/metrics"

	"github.com/rs/zerolog"
)

// Compile-time check
var _ ResearchUseCase = (*researchUC)(nil)

// JobRunner is what Start hands each new job to; satisfied by worker.Runner.
type JobRunner interface {
	Run(ctx context.Context, jobID string, companies []string)
}

// ResearchUseCase exposes the job-control operations the API drives.
type ResearchUseCase interface {
	// Start creates a job and launches its runner; it returns before any
	// company has been processed.
	Start(ctx context.Context, companies []string) (string, error)
	// Status returns a consistent snapshot of the job.
	Status(ctx context.Context, jobID string) (*model.Job, error)
	// Cancel halts the job's runner. Idempotent on terminal jobs.
	Cancel(ctx context.Context, jobID string) error
	// Cleanup deletes the job immediately, regardless of retention window.
	Cleanup(ctx context.Context, jobID string) error
}

type researchUC struct {
	// base is the process-lifetime context runners are derived from, so a
	// job outlives the HTTP request that started it but still stops on
	// shutdown.
	base   context.Context
	jobs   repository.JobRepository
	runner JobRunner
	log    *zerolog.Logger

	mu      sync.Mutex
	cancels map[string]context.CancelFunc
}

func NewResearchUseCase(base context.Context, jobs repository.JobRepository, runner JobRunner, logger *zerolog.Logger) *researchUC {
	return &researchUC{
		base:    base,
		jobs:    jobs,
		runner:  runner,
		log:     logger,
		cancels: make(map[string]context.CancelFunc),
	}
}

func (u *researchUC) Start(ctx context.Context, companies []string) (string, error) {
	defer logging.TraceDuration(u.log, "ResearchUC.Start")()

	cleaned := make([]string, 0, len(companies))
	for _, c := range companies {
		if c = strings.TrimSpace(c); c != "" {
			cleaned = append(cleaned, c)
		}
	}
	if len(cleaned) == 0 {
		return "", domain.ErrEmptyCompanyList
	}

	job, err := u.jobs.Create(ctx, cleaned)
	if err != nil {
		return "", err
	}

	jobCtx, cancel := context.WithCancel(u.base)
	u.mu.Lock()
	u.cancels[job.ID] = cancel
	u.mu.Unlock()

	go func() {
		defer u.release(job.ID)
		u.runner.Run(jobCtx, job.ID, cleaned)
	}()

	metrics.IncJobStarted()
	u.log.Info().Str("job_id", job.ID).Int("total", len(cleaned)).Msg("research job started")
	return job.ID, nil
}

func (u *researchUC) Status(ctx context.Context, jobID string) (*model.Job, error) {
	defer logging.TraceDuration(u.log, "ResearchUC.Status")()
	return u.jobs.Find(ctx, jobID)
}

func (u *researchUC) Cancel(ctx context.Context, jobID string) error {
	defer logging.TraceDuration(u.log, "ResearchUC.Cancel")()

	if err := u.jobs.Cancel(ctx, jobID); err != nil {
		return err
	}
	// Interrupt the in-flight provider call rather than waiting it out; the
	// runner also re-checks the flag between items.
	if u.interrupt(jobID) {
		metrics.IncJobFinished(string(model.JobStatusCancelled))
	}
	return nil
}

func (u *researchUC) Cleanup(ctx context.Context, jobID string) error {
	defer logging.TraceDuration(u.log, "ResearchUC.Cleanup")()

	u.interrupt(jobID)
	return u.jobs.Delete(ctx, jobID)
}

// interrupt cancels the job's runner context if it is still registered and
// reports whether a live runner was found.
func (u *researchUC) interrupt(jobID string) bool {
	u.mu.Lock()
	cancel, ok := u.cancels[jobID]
	u.mu.Unlock()
	if ok {
		cancel()
	}
	return ok
}

func (u *researchUC) release(jobID string) {
	u.mu.Lock()
	cancel, ok := u.cancels[jobID]
	delete(u.cancels, jobID)
	u.mu.Unlock()
	if ok {
		cancel()
	}
}
