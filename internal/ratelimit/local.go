package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// Local is a per-key token bucket limiter kept in process memory. Idle keys
// are evicted after a few windows.
type Local struct {
	mu       sync.Mutex
	limiters *cache.Cache
	every    rate.Limit
	burst    int
	idle     time.Duration
}

// NewLocal allows roughly limit hits per window for each key.
func NewLocal(limit int, window time.Duration) *Local {
	if limit <= 0 {
		limit = 1
	}
	if window <= 0 {
		window = time.Minute
	}

	idle := 3 * window

	return &Local{
		limiters: cache.New(idle, idle),
		every:    rate.Every(window / time.Duration(limit)),
		burst:    limit,
		idle:     idle,
	}
}

func (l *Local) Allow(ctx context.Context, id string) (bool, time.Duration, error) {
	now := time.Now()

	r := l.limiter(id).ReserveN(now, 1)
	if !r.OK() {
		return false, 0, nil
	}

	if delay := r.DelayFrom(now); delay > 0 {
		r.CancelAt(now)
		return false, delay, nil
	}

	return true, 0, nil
}

func (l *Local) limiter(id string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if v, ok := l.limiters.Get(id); ok {
		lim := v.(*rate.Limiter)
		l.limiters.Set(id, lim, l.idle)
		return lim
	}

	lim := rate.NewLimiter(l.every, l.burst)
	l.limiters.Set(id, lim, l.idle)
	return lim
}
