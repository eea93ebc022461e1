package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
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

// MockPromptRepository is a mock implementation of the library repository
type MockPromptRepository struct {
	mock.Mock
}

func (m *MockPromptRepository) Create(ctx context.Context, record *domain.PromptRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockPromptRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.PromptRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PromptRecord), args.Error(1)
}

func (m *MockPromptRepository) List(ctx context.Context, filter *domain.PromptFilter, limit, offset int) (*domain.PromptList, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PromptList), args.Error(1)
}

func (m *MockPromptRepository) Search(ctx context.Context, query string, filter *domain.PromptFilter, limit, offset int) (*domain.PromptList, error) {
	args := m.Called(ctx, query, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PromptList), args.Error(1)
}

func (m *MockPromptRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPromptRepository) AddTags(ctx context.Context, id uuid.UUID, tags []string) (*domain.PromptRecord, error) {
	args := m.Called(ctx, id, tags)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PromptRecord), args.Error(1)
}

func (m *MockPromptRepository) Stats(ctx context.Context) ([]domain.DomainStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DomainStats), args.Error(1)
}

func setupPromptsTestApp(repo *MockPromptRepository) *fiber.App {
	h := NewPromptsHandler(service.NewLibraryService(repo, zap.NewNop()), zap.NewNop())

	app := fiber.New()
	app.Get("/v1/prompts", h.ListPrompts)
	app.Get("/v1/prompts/search", h.SearchPrompts)
	app.Get("/v1/prompts/stats", h.GetStats)
	app.Get("/v1/prompts/:id", h.GetPrompt)
	app.Delete("/v1/prompts/:id", h.DeletePrompt)
	app.Post("/v1/prompts/:id/tags", h.AddTags)
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path string, body io.Reader) (*http.Response, []byte) {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(data)
}

func libraryRecord() *domain.PromptRecord {
	now := time.Now().UTC()
	return &domain.PromptRecord{
		ID:          uuid.New(),
		RawText:     "make a login form",
		RefinedText: "Refined login form prompt.",
		Domain:      domain.DomainGeneral,
		Template:    domain.TemplateBasic,
		Score:       domain.QualityScore{Overall: 0.8},
		Tags:        []string{"auth"},
		Visibility:  "private",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestPromptsHandler_ListPrompts(t *testing.T) {
	t.Run("passes filters through", func(t *testing.T) {
		repo := new(MockPromptRepository)
		app := setupPromptsTestApp(repo)

		record := libraryRecord()
		repo.On("List", mock.Anything, mock.MatchedBy(func(f *domain.PromptFilter) bool {
			return f.Domain != nil && *f.Domain == domain.DomainGeneral &&
				f.MinScore != nil && *f.MinScore == 0.5
		}), 10, 0).Return(&domain.PromptList{
			Records:    []domain.PromptRecord{*record},
			TotalCount: 1,
		}, nil)

		resp, raw := doRequest(t, app, http.MethodGet, "/v1/prompts?domain=general&minScore=0.5&limit=10", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body dto.PromptListResponse
		require.NoError(t, json.Unmarshal(raw, &body))
		require.Len(t, body.Records, 1)
		assert.Equal(t, record.ID.String(), body.Records[0].ID)
		assert.Equal(t, int64(1), body.TotalCount)
	})

	t.Run("rejects unknown domain filter", func(t *testing.T) {
		repo := new(MockPromptRepository)
		app := setupPromptsTestApp(repo)

		resp, _ := doRequest(t, app, http.MethodGet, "/v1/prompts?domain=astrology", nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("caps the page size", func(t *testing.T) {
		repo := new(MockPromptRepository)
		app := setupPromptsTestApp(repo)

		repo.On("List", mock.Anything, mock.Anything, 200, 0).
			Return(&domain.PromptList{}, nil)

		resp, _ := doRequest(t, app, http.MethodGet, "/v1/prompts?limit=1000", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		repo.AssertExpectations(t)
	})
}

func TestPromptsHandler_SearchPrompts(t *testing.T) {
	t.Run("searches by query", func(t *testing.T) {
		repo := new(MockPromptRepository)
		app := setupPromptsTestApp(repo)

		repo.On("Search", mock.Anything, "dashboard", (*domain.PromptFilter)(nil), 50, 0).
			Return(&domain.PromptList{}, nil)

		resp, _ := doRequest(t, app, http.MethodGet, "/v1/prompts/search?q=dashboard", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		repo.AssertExpectations(t)
	})

	t.Run("query is required", func(t *testing.T) {
		repo := new(MockPromptRepository)
		app := setupPromptsTestApp(repo)

		resp, _ := doRequest(t, app, http.MethodGet, "/v1/prompts/search", nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestPromptsHandler_GetPrompt(t *testing.T) {
	t.Run("existing prompt", func(t *testing.T) {
		repo := new(MockPromptRepository)
		app := setupPromptsTestApp(repo)

		record := libraryRecord()
		repo.On("GetByID", mock.Anything, record.ID).Return(record, nil)

		resp, raw := doRequest(t, app, http.MethodGet, "/v1/prompts/"+record.ID.String(), nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body dto.PromptRecordResponse
		require.NoError(t, json.Unmarshal(raw, &body))
		assert.Equal(t, record.RefinedText, body.RefinedText)
	})

	t.Run("missing prompt", func(t *testing.T) {
		repo := new(MockPromptRepository)
		app := setupPromptsTestApp(repo)

		id := uuid.New()
		repo.On("GetByID", mock.Anything, id).Return(nil, apperrors.NotFound("prompt"))

		resp, _ := doRequest(t, app, http.MethodGet, "/v1/prompts/"+id.String(), nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("invalid id", func(t *testing.T) {
		repo := new(MockPromptRepository)
		app := setupPromptsTestApp(repo)

		resp, _ := doRequest(t, app, http.MethodGet, "/v1/prompts/not-a-uuid", nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestPromptsHandler_DeletePrompt(t *testing.T) {
	t.Run("deletes", func(t *testing.T) {
		repo := new(MockPromptRepository)
		app := setupPromptsTestApp(repo)

		id := uuid.New()
		repo.On("Delete", mock.Anything, id).Return(nil)

		resp, _ := doRequest(t, app, http.MethodDelete, "/v1/prompts/"+id.String(), nil)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	t.Run("missing prompt", func(t *testing.T) {
		repo := new(MockPromptRepository)
		app := setupPromptsTestApp(repo)

		id := uuid.New()
		repo.On("Delete", mock.Anything, id).Return(apperrors.NotFound("prompt"))

		resp, _ := doRequest(t, app, http.MethodDelete, "/v1/prompts/"+id.String(), nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestPromptsHandler_AddTags(t *testing.T) {
	repo := new(MockPromptRepository)
	app := setupPromptsTestApp(repo)

	record := libraryRecord()
	record.Tags = []string{"auth", "sql"}
	repo.On("AddTags", mock.Anything, record.ID, []string{"sql"}).Return(record, nil)

	resp, raw := doRequest(t, app, http.MethodPost, "/v1/prompts/"+record.ID.String()+"/tags",
		jsonBody(t, fiber.Map{"tags": []string{"SQL"}}))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.PromptRecordResponse
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, []string{"auth", "sql"}, body.Tags)
	repo.AssertExpectations(t)
}

func TestPromptsHandler_GetStats(t *testing.T) {
	repo := new(MockPromptRepository)
	app := setupPromptsTestApp(repo)

	repo.On("Stats", mock.Anything).Return([]domain.DomainStats{
		{Domain: domain.DomainSQL, Count: 3, AvgOverall: 0.8, MinOverall: 0.6, MaxOverall: 0.95},
		{Domain: domain.DomainGeneral, Count: 1, AvgOverall: 0.7, MinOverall: 0.7, MaxOverall: 0.7},
	}, nil)

	resp, raw := doRequest(t, app, http.MethodGet, "/v1/prompts/stats", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.StatsResponse
	require.NoError(t, json.Unmarshal(raw, &body))
	require.Len(t, body.Domains, 2)
	assert.Equal(t, int64(4), body.Total)
}
