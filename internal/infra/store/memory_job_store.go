// File: internal/infra/store/memory_job_store.go
package store

import (
	"context"
	"sync"
	"time"

	"github.com/chenna-nefer/InsightScout-new/internal/domain"
	"github.com/chenna-nefer/InsightScout-new/internal/domain/model"
	"github.com/chenna-nefer/InsightScout-new/internal/domain/ports/repository"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

// Compile-time check
var _ repository.JobRepository = (*MemoryJobStore)(nil)

// MemoryJobStore holds all job state for the process lifetime. A single mutex
// guards the map and every job's fields, so a poll snapshot is always taken
// against a consistent view (results and progress move together).
type MemoryJobStore struct {
	mu   sync.RWMutex
	jobs map[string]*model.Job
	log  *zerolog.Logger
}

func NewMemoryJobStore(logger *zerolog.Logger) *MemoryJobStore {
	l := logger.With().Str("component", "JobStore").Logger()
	return &MemoryJobStore{
		jobs: make(map[string]*model.Job),
		log:  &l,
	}
}

func (s *MemoryJobStore) Create(_ context.Context, companies []string) (*model.Job, error) {
	if len(companies) == 0 {
		return nil, domain.ErrEmptyCompanyList
	}
	// ULIDs are time-ordered like the timestamp ids the UI expects, but stay
	// unique when two jobs start within the same millisecond.
	id := ulid.Make().String()
	job, err := model.NewJob(id, append([]string(nil), companies...))
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.jobs[id] = job
	s.mu.Unlock()

	s.log.Info().Str("job_id", id).Int("total", job.Total).Msg("job created")
	return job.Clone(), nil
}

func (s *MemoryJobStore) Find(_ context.Context, jobID string) (*model.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	job, ok := s.jobs[jobID]
	if !ok {
		return nil, domain.ErrJobNotFound
	}
	return job.Clone(), nil
}

func (s *MemoryJobStore) SetCurrent(_ context.Context, jobID, company string, processed int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[jobID]
	if !ok || job.Status.IsTerminal() {
		return
	}
	job.CurrentCompany = company
	job.Progress = model.ProgressPercent(processed, job.Total)
	job.LastUpdated = time.Now()
}

func (s *MemoryJobStore) AppendResult(_ context.Context, jobID string, res model.CompanyResult, processed int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[jobID]
	if !ok || job.Status.IsTerminal() {
		// Terminal contents stay frozen; a late append from the runner after
		// a cancel or sweep is silently dropped.
		return
	}
	job.Results = append(job.Results, res)
	job.Progress = model.ProgressPercent(processed, job.Total)
	job.LastUpdated = time.Now()
}

func (s *MemoryJobStore) Finish(_ context.Context, jobID string, status model.JobStatus, errMsg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[jobID]
	if !ok || job.Status.IsTerminal() {
		return
	}
	job.Status = status
	job.CurrentCompany = ""
	if status == model.JobStatusCompleted {
		job.Progress = 100
	}
	if status == model.JobStatusFailed {
		job.Error = errMsg
	}
	job.LastUpdated = time.Now()
	s.log.Info().Str("job_id", jobID).Str("status", string(status)).Msg("job finished")
}

func (s *MemoryJobStore) Cancel(_ context.Context, jobID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[jobID]
	if !ok {
		return domain.ErrJobNotFound
	}
	if job.Status.IsTerminal() {
		return nil
	}
	job.IsCancelled = true
	job.Status = model.JobStatusCancelled
	job.LastUpdated = time.Now()
	s.log.Info().Str("job_id", jobID).Msg("job cancelled")
	return nil
}

func (s *MemoryJobStore) Delete(_ context.Context, jobID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.jobs[jobID]; !ok {
		return domain.ErrJobNotFound
	}
	delete(s.jobs, jobID)
	return nil
}

func (s *MemoryJobStore) SweepExpired(_ context.Context, retention time.Duration) int {
	cutoff := time.Now().Add(-retention)

	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, job := range s.jobs {
		if job.Status.IsTerminal() && job.LastUpdated.Before(cutoff) {
			delete(s.jobs, id)
			removed++
		}
	}
	if removed > 0 {
		s.log.Info().Int("count", removed).Msg("swept expired jobs")
	}
	return removed
}
