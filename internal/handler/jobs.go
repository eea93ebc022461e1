package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/promptforge/promptforge/internal/domain"
	"github.com/promptforge/promptforge/internal/dto"
	apperrors "github.com/promptforge/promptforge/internal/pkg/errors"
	"github.com/promptforge/promptforge/internal/service"
)

// JobsHandler handles async refinement job endpoints
type JobsHandler struct {
	jobs   *service.JobService
	logger *zap.Logger
}

// NewJobsHandler creates a new jobs handler
func NewJobsHandler(jobs *service.JobService, logger *zap.Logger) *JobsHandler {
	return &JobsHandler{
		jobs:   jobs,
		logger: logger,
	}
}

// SubmitRefine handles POST /v1/refine/async. The request shape matches
// the synchronous refine endpoint; save and iteration options are fixed
// by the worker.
func (h *JobsHandler) SubmitRefine(c *fiber.Ctx) error {
	var req dto.RefineRequest
	if err := dto.ParseAndValidate(c, &req); err != nil {
		return badRequest(c, err)
	}

	job, err := h.jobs.Submit(c.Context(), domain.RawPrompt{
		Text:       req.Text,
		DomainHint: req.Domain,
		StyleHint:  req.Style,
	})
	if err != nil {
		h.logger.Error("failed to submit refinement job", zap.Error(err))
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to submit refinement job")
	}

	return c.Status(fiber.StatusAccepted).JSON(dto.SubmitJobResponse{
		JobID:  job.ID,
		Status: string(job.Status),
	})
}

// GetJob handles GET /v1/jobs/:id
func (h *JobsHandler) GetJob(c *fiber.Ctx) error {
	jobID := c.Params("id")
	if jobID == "" {
		return errorResponse(c, fiber.StatusBadRequest, "Job ID required")
	}

	job, err := h.jobs.Get(c.Context(), jobID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return errorResponse(c, fiber.StatusNotFound, "Job not found")
		}
		h.logger.Error("failed to get job", zap.Error(err))
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to get job")
	}

	return c.JSON(dto.NewJobStatusResponse(*job))
}
