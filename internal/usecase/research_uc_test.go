package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/chenna-nefer/InsightScout-new/internal/domain"
	"github.com/chenna-nefer/InsightScout-new/internal/domain/model"
	"github.com/chenna-nefer/InsightScout-new/internal/infra/store"

	"github.com/rs/zerolog"
)

// fakeRunner records what it was launched with and either finishes the job
// immediately or blocks until its context is cancelled.
type fakeRunner struct {
	jobs  *store.MemoryJobStore
	block bool

	mu        sync.Mutex
	companies []string
	ctxDone   chan struct{}
}

func (f *fakeRunner) Run(ctx context.Context, jobID string, companies []string) {
	f.mu.Lock()
	f.companies = companies
	f.mu.Unlock()

	if f.block {
		<-ctx.Done()
		if f.ctxDone != nil {
			close(f.ctxDone)
		}
		return
	}
	for i, c := range companies {
		f.jobs.AppendResult(ctx, jobID, model.CompanyResult{
			CompanyName:  c,
			FoundersData: []model.Founder{},
			Status:       model.ResultStatusCompleted,
		}, i+1)
	}
	f.jobs.Finish(ctx, jobID, model.JobStatusCompleted, "")
}

func (f *fakeRunner) ranWith() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.companies
}

func newTestUC(t *testing.T, block bool) (ResearchUseCase, *store.MemoryJobStore, *fakeRunner) {
	t.Helper()
	l := zerolog.Nop()
	s := store.NewMemoryJobStore(&l)
	r := &fakeRunner{jobs: s, block: block, ctxDone: make(chan struct{})}
	return NewResearchUseCase(context.Background(), s, r, &l), s, r
}

// waitForStatus polls the store until the job reaches the wanted status.
func waitForStatus(t *testing.T, uc ResearchUseCase, jobID string, want model.JobStatus) *model.Job {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		job, err := uc.Status(context.Background(), jobID)
		if err == nil && job.Status == want {
			return job
		}
		select {
		case <-deadline:
			t.Fatalf("job %s never reached status %q", jobID, want)
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestStartRunsJobToCompletion(t *testing.T) {
	uc, _, _ := newTestUC(t, false)

	jobID, err := uc.Start(context.Background(), []string{"Acme", "Globex"})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if jobID == "" {
		t.Fatal("expected non-empty job id")
	}

	job := waitForStatus(t, uc, jobID, model.JobStatusCompleted)
	if job.Progress != 100 || len(job.Results) != 2 {
		t.Errorf("progress=%d results=%d", job.Progress, len(job.Results))
	}
}

func TestStartCleansCompanyList(t *testing.T) {
	uc, _, runner := newTestUC(t, false)

	jobID, err := uc.Start(context.Background(), []string{"  Acme ", "", "   ", "Globex"})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	waitForStatus(t, uc, jobID, model.JobStatusCompleted)

	got := runner.ranWith()
	if len(got) != 2 || got[0] != "Acme" || got[1] != "Globex" {
		t.Errorf("runner received %v, want [Acme Globex]", got)
	}
}

func TestStartRejectsEmptyList(t *testing.T) {
	uc, _, _ := newTestUC(t, false)

	for _, companies := range [][]string{nil, {}, {"", "   "}} {
		if _, err := uc.Start(context.Background(), companies); !errors.Is(err, domain.ErrEmptyCompanyList) {
			t.Errorf("Start(%v) err = %v, want ErrEmptyCompanyList", companies, err)
		}
	}
}

func TestCancelInterruptsRunner(t *testing.T) {
	uc, _, runner := newTestUC(t, true)

	jobID, err := uc.Start(context.Background(), []string{"Acme"})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	if err := uc.Cancel(context.Background(), jobID); err != nil {
		t.Fatalf("Cancel: %v", err)
	}

	select {
	case <-runner.ctxDone:
	case <-time.After(2 * time.Second):
		t.Fatal("runner context not cancelled")
	}

	job, err := uc.Status(context.Background(), jobID)
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if job.Status != model.JobStatusCancelled || !job.IsCancelled {
		t.Errorf("job after cancel: %+v", job)
	}

	// Cancelling again is a no-op, not an error.
	if err := uc.Cancel(context.Background(), jobID); err != nil {
		t.Errorf("second Cancel: %v", err)
	}
}

func TestCancelUnknownJob(t *testing.T) {
	uc, _, _ := newTestUC(t, false)
	if err := uc.Cancel(context.Background(), "nope"); !errors.Is(err, domain.ErrJobNotFound) {
		t.Errorf("Cancel err = %v, want ErrJobNotFound", err)
	}
}

func TestCleanupDeletesJob(t *testing.T) {
	uc, _, runner := newTestUC(t, true)

	jobID, err := uc.Start(context.Background(), []string{"Acme"})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	if err := uc.Cleanup(context.Background(), jobID); err != nil {
		t.Fatalf("Cleanup: %v", err)
	}

	select {
	case <-runner.ctxDone:
	case <-time.After(2 * time.Second):
		t.Fatal("runner context not cancelled by cleanup")
	}

	if _, err := uc.Status(context.Background(), jobID); !errors.Is(err, domain.ErrJobNotFound) {
		t.Errorf("Status after Cleanup err = %v, want ErrJobNotFound", err)
	}
	if err := uc.Cleanup(context.Background(), jobID); !errors.Is(err, domain.ErrJobNotFound) {
		t.Errorf("second Cleanup err = %v, want ErrJobNotFound", err)
	}
}
