package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/promptforge/promptforge/internal/domain"
	apperrors "github.com/promptforge/promptforge/internal/pkg/errors"
	"github.com/promptforge/promptforge/internal/pkg/id"
)

// JobStore persists async refinement job state
type JobStore interface {
	Save(ctx context.Context, job *domain.RefineJob) error
	Get(ctx context.Context, jobID string) (*domain.RefineJob, error)
}

// TaskEnqueuer submits refinement tasks to the background queue
type TaskEnqueuer interface {
	EnqueueRefine(ctx context.Context, jobID string, raw domain.RawPrompt) error
}

// JobService handles the lifecycle of async refinement jobs
type JobService struct {
	store    JobStore
	enqueuer TaskEnqueuer
	logger   *zap.Logger
}

// NewJobService creates a new job service
func NewJobService(store JobStore, enqueuer TaskEnqueuer, logger *zap.Logger) *JobService {
	return &JobService{
		store:    store,
		enqueuer: enqueuer,
		logger:   logger,
	}
}

// Submit records a pending job and enqueues the refinement task
func (s *JobService) Submit(ctx context.Context, raw domain.RawPrompt) (*domain.RefineJob, error) {
	if s.enqueuer == nil {
		return nil, apperrors.Configuration("task queue is not configured")
	}

	job := &domain.RefineJob{
		ID:        id.NewJobID(),
		Status:    domain.JobStatusPending,
		Raw:       raw,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.store.Save(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to record job: %w", err)
	}

	if err := s.enqueuer.EnqueueRefine(ctx, job.ID, raw); err != nil {
		return nil, fmt.Errorf("failed to enqueue job: %w", err)
	}

	s.logger.Info("submitted refinement job", zap.String("jobId", job.ID))
	return job, nil
}

// Get retrieves a job by ID
func (s *JobService) Get(ctx context.Context, jobID string) (*domain.RefineJob, error) {
	return s.store.Get(ctx, jobID)
}

// MarkRunning transitions a job to running
func (s *JobService) MarkRunning(ctx context.Context, jobID string) (*domain.RefineJob, error) {
	job, err := s.store.Get(ctx, jobID)
	if err != nil {
		return nil, err
	}

	job.Status = domain.JobStatusRunning
	if err := s.store.Save(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to update job: %w", err)
	}

	return job, nil
}

// MarkCompleted transitions a job to completed, recording the persisted
// result
func (s *JobService) MarkCompleted(ctx context.Context, jobID string, recordID uuid.UUID) error {
	return s.finish(ctx, jobID, func(job *domain.RefineJob) {
		job.Status = domain.JobStatusCompleted
		job.RecordID = &recordID
	})
}

// MarkFailed transitions a job to failed with an error message
func (s *JobService) MarkFailed(ctx context.Context, jobID string, cause error) error {
	return s.finish(ctx, jobID, func(job *domain.RefineJob) {
		job.Status = domain.JobStatusFailed
		job.Error = cause.Error()
	})
}

func (s *JobService) finish(ctx context.Context, jobID string, apply func(*domain.RefineJob)) error {
	job, err := s.store.Get(ctx, jobID)
	if err != nil {
		return err
	}

	apply(job)
	now := time.Now().UTC()
	job.CompletedAt = &now

	if err := s.store.Save(ctx, job); err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}

	return nil
}
