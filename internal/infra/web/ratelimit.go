package web

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// PollLimiter rate-limits status polls per job id so a misbehaving client
// cannot hammer the store for one job. Limiters are dropped via Forget when
// the job disappears.
type PollLimiter struct {
	mu sync.Mutex
	m  map[string]*rate.Limiter
	r  rate.Limit
	b  int
}

// NewPollLimiter allows one poll per `every` with the given burst headroom.
func NewPollLimiter(every time.Duration, burst int) *PollLimiter {
	return &PollLimiter{
		m: make(map[string]*rate.Limiter),
		r: rate.Every(every),
		b: burst,
	}
}

func (pl *PollLimiter) Allow(jobID string) bool {
	pl.mu.Lock()
	lim, ok := pl.m[jobID]
	if !ok {
		lim = rate.NewLimiter(pl.r, pl.b)
		pl.m[jobID] = lim
	}
	pl.mu.Unlock()
	return lim.Allow()
}

func (pl *PollLimiter) Forget(jobID string) {
	pl.mu.Lock()
	delete(pl.m, jobID)
	pl.mu.Unlock()
}
