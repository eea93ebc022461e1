package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/promptforge/promptforge/internal/domain"
	"github.com/promptforge/promptforge/internal/engine"
	"github.com/promptforge/promptforge/internal/pkg/circuitbreaker"
	"github.com/promptforge/promptforge/internal/pkg/database"
	"github.com/promptforge/promptforge/internal/pkg/id"
)

// CacheRepository stores refinement results in Redis keyed by the input
// hash. All operations run through a circuit breaker so a degraded Redis
// never blocks the refinement path; a tripped breaker reads as a miss.
type CacheRepository struct {
	db      *database.RedisDB
	ttl     time.Duration
	breaker *circuitbreaker.CircuitBreaker
}

// NewCacheRepository creates a new refinement cache repository
func NewCacheRepository(db *database.RedisDB, ttl time.Duration) *CacheRepository {
	return &CacheRepository{
		db:      db,
		ttl:     ttl,
		breaker: circuitbreaker.New(circuitbreaker.DefaultConfig("refine-cache")),
	}
}

type lookup struct {
	value string
	found bool
}

// Get looks up a cached refinement result for the given input and
// options. Returns false on a miss, on a decode failure, or when the
// breaker is open. A key miss is normal operation and does not count
// against the breaker.
func (r *CacheRepository) Get(ctx context.Context, raw domain.RawPrompt, opts engine.ImproveOptions) (*domain.RefinedPrompt, bool) {
	key := r.key(raw, opts)

	res, err := circuitbreaker.ExecuteWithResult(r.breaker, ctx, func() (lookup, error) {
		v, err := r.db.Get(ctx, key)
		if errors.Is(err, redis.Nil) {
			return lookup{}, nil
		}
		if err != nil {
			return lookup{}, err
		}
		return lookup{value: v, found: true}, nil
	})
	if err != nil || !res.found {
		return nil, false
	}

	var refined domain.RefinedPrompt
	if err := json.Unmarshal([]byte(res.value), &refined); err != nil {
		return nil, false
	}

	return &refined, true
}

// Set stores a refinement result under the input hash
func (r *CacheRepository) Set(ctx context.Context, raw domain.RawPrompt, opts engine.ImproveOptions, refined *domain.RefinedPrompt) error {
	key := r.key(raw, opts)

	payload, err := json.Marshal(refined)
	if err != nil {
		return fmt.Errorf("failed to marshal cached refinement: %w", err)
	}

	return r.breaker.Execute(ctx, func() error {
		return r.db.Set(ctx, key, string(payload), r.ttl)
	})
}

// Invalidate drops the cached result for the given input
func (r *CacheRepository) Invalidate(ctx context.Context, raw domain.RawPrompt, opts engine.ImproveOptions) error {
	key := r.key(raw, opts)

	return r.breaker.Execute(ctx, func() error {
		return r.db.Del(ctx, key)
	})
}

// key derives the cache key. Options are normalized first so a request
// spelling out the default target and cap shares the key with one that
// leaves them unset.
func (r *CacheRepository) key(raw domain.RawPrompt, opts engine.ImproveOptions) string {
	opts = opts.WithDefaults()
	return id.CacheKey(raw.Text, raw.DomainHint, raw.StyleHint,
		opts.TargetScore, opts.MaxIterations, opts.ForceBoost)
}
