package repository

import (
	"context"
	"time"

	"github.com/chenna-nefer/InsightScout-new/internal/domain/model"
)

// JobRepository is the port for the in-memory job registry. Every mutation
// refreshes the job's LastUpdated stamp; mutations on an id that no longer
// exists are silent no-ops, since the retention sweep may race the runner.
type JobRepository interface {
	// Create inserts a fresh job in processing state and returns a snapshot.
	Create(ctx context.Context, companies []string) (*model.Job, error)

	// Find returns a deep-copied snapshot, or domain.ErrJobNotFound.
	Find(ctx context.Context, jobID string) (*model.Job, error)

	// SetCurrent records the company being worked on and the floor progress
	// for the given number of already-processed items.
	SetCurrent(ctx context.Context, jobID, company string, processed int)

	// AppendResult appends one company's outcome; results are append-only and
	// stay in submission order.
	AppendResult(ctx context.Context, jobID string, res model.CompanyResult, processed int)

	// Finish flips the job to a terminal status. It never overwrites a job
	// that is already terminal (a cancel wins over a late completion).
	Finish(ctx context.Context, jobID string, status model.JobStatus, errMsg string)

	// Cancel marks the job cancelled. Idempotent; cancelling a job that is
	// already terminal is a harmless no-op. Returns domain.ErrJobNotFound for
	// unknown ids.
	Cancel(ctx context.Context, jobID string) error

	// Delete removes the job immediately, regardless of retention window.
	Delete(ctx context.Context, jobID string) error

	// SweepExpired deletes terminal jobs whose LastUpdated is older than the
	// retention window and returns how many were removed.
	SweepExpired(ctx context.Context, retention time.Duration) int
}
