package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"github.com/promptforge/promptforge/internal/domain"
	"github.com/promptforge/promptforge/internal/service"
)

const (
	// TypeRefine is the task type for an async refinement
	TypeRefine = "refine:run"
	// TypeRefineBatch is the task type for refining a batch of prompts
	TypeRefineBatch = "refine:run-batch"
)

// RefinePayload is the payload for refinement tasks
type RefinePayload struct {
	JobID      string `json:"job_id"`
	Text       string `json:"text"`
	DomainHint string `json:"domain_hint,omitempty"`
	StyleHint  string `json:"style_hint,omitempty"`
}

// NewRefineTask creates a new refinement task
func NewRefineTask(payload *RefinePayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal refine payload: %w", err)
	}
	return asynq.NewTask(TypeRefine, data, asynq.MaxRetry(3), asynq.Timeout(2*time.Minute)), nil
}

// RefineBatchPayload is the payload for batch refinement tasks
type RefineBatchPayload struct {
	JobIDs []string `json:"job_ids"`
}

// NewRefineBatchTask creates a batch refinement task
func NewRefineBatchTask(payload *RefineBatchPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal refine batch payload: %w", err)
	}
	return asynq.NewTask(TypeRefineBatch, data, asynq.MaxRetry(3), asynq.Timeout(30*time.Minute)), nil
}

// RefineWorker handles refinement tasks
type RefineWorker struct {
	logger     *zap.Logger
	refinement *service.RefinementService
	jobs       *service.JobService
}

// NewRefineWorker creates a new refine worker
func NewRefineWorker(
	logger *zap.Logger,
	refinement *service.RefinementService,
	jobs *service.JobService,
) *RefineWorker {
	return &RefineWorker{
		logger:     logger,
		refinement: refinement,
		jobs:       jobs,
	}
}

// ProcessTask processes one refinement task. Results are always
// persisted so the job can reference the stored record.
func (w *RefineWorker) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload RefinePayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal refine payload: %w", err)
	}

	w.logger.Info("processing refinement job", zap.String("job_id", payload.JobID))

	if _, err := w.jobs.MarkRunning(ctx, payload.JobID); err != nil {
		return fmt.Errorf("failed to mark job running: %w", err)
	}

	out, err := w.refinement.Refine(ctx, service.RefineInput{
		Raw: domain.RawPrompt{
			Text:       payload.Text,
			DomainHint: payload.DomainHint,
			StyleHint:  payload.StyleHint,
		},
		Save: true,
	})
	if err != nil {
		if markErr := w.jobs.MarkFailed(ctx, payload.JobID, err); markErr != nil {
			w.logger.Error("failed to mark job failed",
				zap.String("job_id", payload.JobID),
				zap.Error(markErr),
			)
		}
		return fmt.Errorf("refinement failed: %w", err)
	}

	if err := w.jobs.MarkCompleted(ctx, payload.JobID, out.Record.ID); err != nil {
		return fmt.Errorf("failed to mark job completed: %w", err)
	}

	w.logger.Info("completed refinement job",
		zap.String("job_id", payload.JobID),
		zap.String("record_id", out.Record.ID.String()),
		zap.Float64("overall", out.Refined.Score.Overall),
	)

	return nil
}

// ProcessBatchTask re-enqueues each job of a batch as an individual
// refinement task via the shared job store.
func (w *RefineWorker) ProcessBatchTask(ctx context.Context, t *asynq.Task) error {
	var payload RefineBatchPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal refine batch payload: %w", err)
	}

	w.logger.Info("processing refinement batch", zap.Int("jobs", len(payload.JobIDs)))

	var failed int
	for _, jobID := range payload.JobIDs {
		job, err := w.jobs.Get(ctx, jobID)
		if err != nil {
			w.logger.Warn("batch job not found", zap.String("job_id", jobID))
			failed++
			continue
		}

		single := RefinePayload{
			JobID:      job.ID,
			Text:       job.Raw.Text,
			DomainHint: job.Raw.DomainHint,
			StyleHint:  job.Raw.StyleHint,
		}
		data, err := json.Marshal(single)
		if err != nil {
			failed++
			continue
		}

		if err := w.ProcessTask(ctx, asynq.NewTask(TypeRefine, data)); err != nil {
			w.logger.Warn("batch job failed",
				zap.String("job_id", jobID),
				zap.Error(err),
			)
			failed++
		}
	}

	if failed > 0 {
		w.logger.Warn("refinement batch finished with failures",
			zap.Int("failed", failed),
			zap.Int("total", len(payload.JobIDs)),
		)
	}

	return nil
}
