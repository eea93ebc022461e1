package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/promptforge/promptforge/internal/domain"
	"github.com/promptforge/promptforge/internal/pkg/database"
	apperrors "github.com/promptforge/promptforge/internal/pkg/errors"
)

const jobKeyPrefix = "job:"

// JobRepository tracks async refinement job state in Redis. Job records
// expire after the configured TTL; a missing key reads as not found.
type JobRepository struct {
	db  *database.RedisDB
	ttl time.Duration
}

// NewJobRepository creates a new job repository
func NewJobRepository(db *database.RedisDB, ttl time.Duration) *JobRepository {
	return &JobRepository{db: db, ttl: ttl}
}

// Save writes the full job state, resetting the TTL
func (r *JobRepository) Save(ctx context.Context, job *domain.RefineJob) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal job: %w", err)
	}

	if err := r.db.Set(ctx, jobKeyPrefix+job.ID, string(payload), r.ttl); err != nil {
		return fmt.Errorf("failed to save job: %w", err)
	}

	return nil
}

// Get retrieves a job by ID
func (r *JobRepository) Get(ctx context.Context, jobID string) (*domain.RefineJob, error) {
	value, err := r.db.Get(ctx, jobKeyPrefix+jobID)
	if errors.Is(err, redis.Nil) {
		return nil, apperrors.NotFound("job")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	var job domain.RefineJob
	if err := json.Unmarshal([]byte(value), &job); err != nil {
		return nil, fmt.Errorf("failed to unmarshal job: %w", err)
	}

	return &job, nil
}
