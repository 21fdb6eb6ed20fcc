package app

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"biologia-quiz-client/internal/domain"
	"golang.org/x/sync/singleflight"
)

// DashboardRepository caches the admin aggregates with a TTL so repeated
// dashboard refreshes don't hammer the backend. Concurrent refreshes collapse
// into a single fetch.
type DashboardRepository struct {
	backend Backend
	ttl     time.Duration
	clock   func() time.Time
	sf      singleflight.Group
	rnd     *rand.Rand

	mu        sync.RWMutex
	cached    domain.Dashboard
	expiresAt time.Time
}

func NewDashboardRepository(backend Backend, ttl time.Duration) *DashboardRepository {
	return &DashboardRepository{
		backend: backend,
		ttl:     ttl,
		clock:   time.Now,
		rnd:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Load returns the cached dashboard when fresh, otherwise fetches results,
// top scores and stats from the backend.
func (r *DashboardRepository) Load(ctx context.Context) (domain.Dashboard, error) {
	now := r.clock()

	r.mu.RLock()
	if r.expiresAt.After(now) {
		board := r.cached
		r.mu.RUnlock()
		return board, nil
	}
	r.mu.RUnlock()

	result, err, _ := r.sf.Do("dashboard", func() (interface{}, error) {
		now := r.clock()
		r.mu.RLock()
		if r.expiresAt.After(now) {
			board := r.cached
			r.mu.RUnlock()
			return board, nil
		}
		r.mu.RUnlock()

		board, err := r.fetch(ctx)
		if err != nil {
			return domain.Dashboard{}, err
		}

		r.mu.Lock()
		r.cached = board
		r.expiresAt = now.Add(r.ttlWithJitter())
		r.mu.Unlock()
		return board, nil
	})
	if err != nil {
		return domain.Dashboard{}, err
	}
	return result.(domain.Dashboard), nil
}

// Invalidate drops the cached snapshot, forcing the next Load to fetch.
func (r *DashboardRepository) Invalidate() {
	r.mu.Lock()
	r.expiresAt = time.Time{}
	r.mu.Unlock()
}

func (r *DashboardRepository) fetch(ctx context.Context) (domain.Dashboard, error) {
	results, err := r.backend.Results(ctx)
	if err != nil {
		return domain.Dashboard{}, err
	}
	top, err := r.backend.TopScores(ctx)
	if err != nil {
		return domain.Dashboard{}, err
	}
	stats, err := r.backend.Stats(ctx)
	if err != nil {
		return domain.Dashboard{}, err
	}
	return domain.Dashboard{Results: results, TopScores: top, Stats: stats}, nil
}

func (r *DashboardRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	// add up to 10% jitter to spread expirations
	jitterMax := int64(r.ttl) / 10
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}
