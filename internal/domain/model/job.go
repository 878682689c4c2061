package model

import (
	"time"

	"github.com/chenna-nefer/InsightScout-new/internal/domain"
)

type JobStatus string

const (
	JobStatusProcessing JobStatus = "processing"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusFailed     JobStatus = "failed"
	JobStatusCancelled  JobStatus = "cancelled"
)

// IsTerminal reports whether no further mutation of job contents may happen.
func (s JobStatus) IsTerminal() bool {
	return s == JobStatusCompleted || s == JobStatusFailed || s == JobStatusCancelled
}

// Job is one asynchronous batch-enrichment run over a list of companies.
// All fields are owned by the job store; callers receive deep copies.
type Job struct {
	ID             string          `json:"jobId"`
	Companies      []string        `json:"-"`
	Status         JobStatus       `json:"status"`
	Progress       int             `json:"progress"`
	Total          int             `json:"total"`
	CurrentCompany string          `json:"currentCompany"`
	Results        []CompanyResult `json:"results"`
	Error          string          `json:"error,omitempty"`
	IsCancelled    bool            `json:"-"`
	CreatedAt      time.Time       `json:"-"`
	LastUpdated    time.Time       `json:"-"`
}

// NewJob validates and constructs a job in its initial processing state.
func NewJob(id string, companies []string) (*Job, error) {
	if id == "" || len(companies) == 0 {
		return nil, domain.ErrInvalidArgument
	}
	now := time.Now()
	return &Job{
		ID:          id,
		Companies:   companies,
		Status:      JobStatusProcessing,
		Progress:    0,
		Total:       len(companies),
		Results:     []CompanyResult{},
		CreatedAt:   now,
		LastUpdated: now,
	}, nil
}

// Clone returns a deep copy so status pollers never observe a torn update.
func (j *Job) Clone() *Job {
	cp := *j
	cp.Companies = append([]string(nil), j.Companies...)
	cp.Results = make([]CompanyResult, len(j.Results))
	for i, r := range j.Results {
		cp.Results[i] = r.clone()
	}
	return &cp
}

// ProgressPercent computes the integer floor percentage for processed items.
// Fixed policy: floor, so 1/3 -> 33 and progress only reaches 100 when done.
func ProgressPercent(processed, total int) int {
	if total <= 0 {
		return 0
	}
	return processed * 100 / total
}
