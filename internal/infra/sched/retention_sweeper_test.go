package sched

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/chenna-nefer/InsightScout-new/internal/domain/model"

	"github.com/rs/zerolog"
)

// sweepRecorder counts SweepExpired calls; the other repository methods are
// unused by the sweeper.
type sweepRecorder struct {
	calls     atomic.Int64
	retention atomic.Int64
}

func (r *sweepRecorder) Create(context.Context, []string) (*model.Job, error) { panic("unused") }
func (r *sweepRecorder) Find(context.Context, string) (*model.Job, error)     { panic("unused") }
func (r *sweepRecorder) SetCurrent(context.Context, string, string, int)      { panic("unused") }
func (r *sweepRecorder) AppendResult(context.Context, string, model.CompanyResult, int) {
	panic("unused")
}
func (r *sweepRecorder) Finish(context.Context, string, model.JobStatus, string) { panic("unused") }
func (r *sweepRecorder) Cancel(context.Context, string) error                    { panic("unused") }
func (r *sweepRecorder) Delete(context.Context, string) error                    { panic("unused") }

func (r *sweepRecorder) SweepExpired(_ context.Context, retention time.Duration) int {
	r.calls.Add(1)
	r.retention.Store(int64(retention))
	return 0
}

func TestSweeperRunsOnInterval(t *testing.T) {
	repo := &sweepRecorder{}
	l := zerolog.Nop()
	w := NewRetentionSweeper(5*time.Millisecond, time.Hour, repo, &l)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	deadline := time.After(2 * time.Second)
	for repo.calls.Load() < 2 {
		select {
		case <-deadline:
			t.Fatal("sweeper never ticked twice")
		case <-time.After(time.Millisecond):
		}
	}
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run returned %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("sweeper did not stop on cancel")
	}

	if got := time.Duration(repo.retention.Load()); got != time.Hour {
		t.Errorf("retention passed to store = %v, want 1h", got)
	}
}
