package worker

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/promptforge/promptforge/internal/domain"
	"github.com/promptforge/promptforge/internal/engine"
	apperrors "github.com/promptforge/promptforge/internal/pkg/errors"
	"github.com/promptforge/promptforge/internal/rules"
	"github.com/promptforge/promptforge/internal/service"
)

// memJobStore is an in-memory JobStore for worker tests
type memJobStore struct {
	mu   sync.Mutex
	jobs map[string]domain.RefineJob
}

func newMemJobStore() *memJobStore {
	return &memJobStore{jobs: make(map[string]domain.RefineJob)}
}

func (s *memJobStore) Save(ctx context.Context, job *domain.RefineJob) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.ID] = *job
	return nil
}

func (s *memJobStore) Get(ctx context.Context, jobID string) (*domain.RefineJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[jobID]
	if !ok {
		return nil, apperrors.NotFound("job")
	}
	return &job, nil
}

// memRecordWriter is an in-memory RecordWriter for worker tests
type memRecordWriter struct {
	mu      sync.Mutex
	failing bool
	records []domain.PromptRecord
}

func (w *memRecordWriter) Create(ctx context.Context, record *domain.PromptRecord) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.failing {
		return assert.AnError
	}
	w.records = append(w.records, *record)
	return nil
}

func newTestWorker(t *testing.T, store *memJobStore, writer *memRecordWriter) *RefineWorker {
	t.Helper()
	set, err := rules.Load()
	require.NoError(t, err)

	logger := zap.NewNop()
	refinement := service.NewRefinementService(engine.New(set), nil, writer, service.Defaults{}, logger)
	jobs := service.NewJobService(store, nil, logger)
	return NewRefineWorker(logger, refinement, jobs)
}

func TestNewRefineTask(t *testing.T) {
	payload := &RefinePayload{
		JobID:      "job-123",
		Text:       "write a sql query",
		DomainHint: "sql",
		StyleHint:  "step by step",
	}

	task, err := NewRefineTask(payload)
	require.NoError(t, err)
	assert.Equal(t, TypeRefine, task.Type())

	var decoded RefinePayload
	err = json.Unmarshal(task.Payload(), &decoded)
	require.NoError(t, err)
	assert.Equal(t, *payload, decoded)
}

func TestNewRefineBatchTask(t *testing.T) {
	payload := &RefineBatchPayload{JobIDs: []string{"job-1", "job-2"}}

	task, err := NewRefineBatchTask(payload)
	require.NoError(t, err)
	assert.Equal(t, TypeRefineBatch, task.Type())

	var decoded RefineBatchPayload
	err = json.Unmarshal(task.Payload(), &decoded)
	require.NoError(t, err)
	assert.Equal(t, payload.JobIDs, decoded.JobIDs)
}

func TestRefineWorker_ProcessTask(t *testing.T) {
	ctx := context.Background()

	t.Run("completes job and persists record", func(t *testing.T) {
		store := newMemJobStore()
		writer := &memRecordWriter{}
		w := newTestWorker(t, store, writer)

		job := &domain.RefineJob{ID: "job-ok", Status: domain.JobStatusPending}
		require.NoError(t, store.Save(ctx, job))

		data, err := json.Marshal(RefinePayload{JobID: "job-ok", Text: "create a login form"})
		require.NoError(t, err)

		err = w.ProcessTask(ctx, asynq.NewTask(TypeRefine, data))
		require.NoError(t, err)

		updated, err := store.Get(ctx, "job-ok")
		require.NoError(t, err)
		assert.Equal(t, domain.JobStatusCompleted, updated.Status)
		require.NotNil(t, updated.RecordID)
		assert.NotNil(t, updated.CompletedAt)

		require.Len(t, writer.records, 1)
		assert.Equal(t, *updated.RecordID, writer.records[0].ID)
	})

	t.Run("unknown job fails the task", func(t *testing.T) {
		w := newTestWorker(t, newMemJobStore(), &memRecordWriter{})

		data, err := json.Marshal(RefinePayload{JobID: "job-missing", Text: "x"})
		require.NoError(t, err)

		err = w.ProcessTask(ctx, asynq.NewTask(TypeRefine, data))
		require.Error(t, err)
	})

	t.Run("bad payload fails the task", func(t *testing.T) {
		w := newTestWorker(t, newMemJobStore(), &memRecordWriter{})

		err := w.ProcessTask(ctx, asynq.NewTask(TypeRefine, []byte("{not json")))
		require.Error(t, err)
	})

	t.Run("persistence failure marks the job failed", func(t *testing.T) {
		store := newMemJobStore()
		w := newTestWorker(t, store, &memRecordWriter{failing: true})

		job := &domain.RefineJob{ID: "job-bad", Status: domain.JobStatusPending}
		require.NoError(t, store.Save(ctx, job))

		data, err := json.Marshal(RefinePayload{JobID: "job-bad", Text: "create a login form"})
		require.NoError(t, err)

		err = w.ProcessTask(ctx, asynq.NewTask(TypeRefine, data))
		require.Error(t, err)

		updated, err := store.Get(ctx, "job-bad")
		require.NoError(t, err)
		assert.Equal(t, domain.JobStatusFailed, updated.Status)
		assert.NotEmpty(t, updated.Error)
	})
}

func TestRefineWorker_ProcessBatchTask(t *testing.T) {
	ctx := context.Background()
	store := newMemJobStore()
	writer := &memRecordWriter{}
	w := newTestWorker(t, store, writer)

	jobs := []string{"job-b1", "job-b2"}
	require.NoError(t, store.Save(ctx, &domain.RefineJob{
		ID: "job-b1", Status: domain.JobStatusPending,
		Raw: domain.RawPrompt{Text: "create a dashboard"},
	}))
	require.NoError(t, store.Save(ctx, &domain.RefineJob{
		ID: "job-b2", Status: domain.JobStatusPending,
		Raw: domain.RawPrompt{Text: "write a sql query for invoices"},
	}))

	data, err := json.Marshal(RefineBatchPayload{JobIDs: jobs})
	require.NoError(t, err)

	err = w.ProcessBatchTask(ctx, asynq.NewTask(TypeRefineBatch, data))
	require.NoError(t, err)

	for _, jobID := range jobs {
		job, err := store.Get(ctx, jobID)
		require.NoError(t, err)
		assert.Equal(t, domain.JobStatusCompleted, job.Status)
	}
	assert.Len(t, writer.records, 2)
}
