package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/promptforge/promptforge/internal/domain"
	"github.com/promptforge/promptforge/internal/dto"
	apperrors "github.com/promptforge/promptforge/internal/pkg/errors"
	"github.com/promptforge/promptforge/internal/service"
)

// memJobStore is an in-memory JobStore for handler tests
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

// MockTaskEnqueuer is a mock implementation of TaskEnqueuer
type MockTaskEnqueuer struct {
	mock.Mock
}

func (m *MockTaskEnqueuer) EnqueueRefine(ctx context.Context, jobID string, raw domain.RawPrompt) error {
	args := m.Called(ctx, jobID, raw)
	return args.Error(0)
}

func setupJobsTestApp(store *memJobStore, enqueuer *MockTaskEnqueuer) *fiber.App {
	h := NewJobsHandler(service.NewJobService(store, enqueuer, zap.NewNop()), zap.NewNop())

	app := fiber.New()
	app.Post("/v1/refine/async", h.SubmitRefine)
	app.Get("/v1/jobs/:id", h.GetJob)
	return app
}

func TestJobsHandler_SubmitRefine(t *testing.T) {
	t.Run("accepts and enqueues", func(t *testing.T) {
		store := newMemJobStore()
		enqueuer := new(MockTaskEnqueuer)
		app := setupJobsTestApp(store, enqueuer)

		enqueuer.On("EnqueueRefine", mock.Anything, mock.AnythingOfType("string"),
			domain.RawPrompt{Text: "create a login form", DomainHint: "web"}).Return(nil)

		resp, raw := postJSON(t, app, "/v1/refine/async", fiber.Map{
			"text":   "create a login form",
			"domain": "web",
		})
		require.Equal(t, http.StatusAccepted, resp.StatusCode)

		var body dto.SubmitJobResponse
		require.NoError(t, json.Unmarshal(raw, &body))
		assert.NotEmpty(t, body.JobID)
		assert.Equal(t, "pending", body.Status)

		stored, err := store.Get(context.Background(), body.JobID)
		require.NoError(t, err)
		assert.Equal(t, domain.JobStatusPending, stored.Status)
	})

	t.Run("rejects missing text", func(t *testing.T) {
		store := newMemJobStore()
		enqueuer := new(MockTaskEnqueuer)
		app := setupJobsTestApp(store, enqueuer)

		resp, raw := postJSON(t, app, "/v1/refine/async", fiber.Map{})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		// invalid bodies must stop at validation, not reach the queue
		enqueuer.AssertNotCalled(t, "EnqueueRefine", mock.Anything, mock.Anything, mock.Anything)
		assert.Empty(t, store.jobs)

		var body map[string]any
		require.NoError(t, json.Unmarshal(raw, &body))
		assert.Equal(t, "Validation Error", body["error"])
	})

	t.Run("enqueue failure is an internal error", func(t *testing.T) {
		store := newMemJobStore()
		enqueuer := new(MockTaskEnqueuer)
		app := setupJobsTestApp(store, enqueuer)

		enqueuer.On("EnqueueRefine", mock.Anything, mock.Anything, mock.Anything).
			Return(assert.AnError)

		resp, _ := postJSON(t, app, "/v1/refine/async", fiber.Map{"text": "x"})
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})
}

func TestJobsHandler_GetJob(t *testing.T) {
	t.Run("returns job state", func(t *testing.T) {
		store := newMemJobStore()
		app := setupJobsTestApp(store, new(MockTaskEnqueuer))

		recordID := uuid.New()
		completed := time.Now().UTC()
		require.NoError(t, store.Save(context.Background(), &domain.RefineJob{
			ID:          "job-done",
			Status:      domain.JobStatusCompleted,
			RecordID:    &recordID,
			CreatedAt:   completed.Add(-time.Minute),
			CompletedAt: &completed,
		}))

		resp, raw := doRequest(t, app, http.MethodGet, "/v1/jobs/job-done", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body dto.JobStatusResponse
		require.NoError(t, json.Unmarshal(raw, &body))
		assert.Equal(t, "completed", body.Status)
		assert.Equal(t, recordID.String(), body.RecordID)
		require.NotNil(t, body.CompletedAt)
	})

	t.Run("missing job", func(t *testing.T) {
		app := setupJobsTestApp(newMemJobStore(), new(MockTaskEnqueuer))

		resp, _ := doRequest(t, app, http.MethodGet, "/v1/jobs/job-nope", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
