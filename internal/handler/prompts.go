package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/promptforge/promptforge/internal/domain"
	"github.com/promptforge/promptforge/internal/dto"
	apperrors "github.com/promptforge/promptforge/internal/pkg/errors"
	"github.com/promptforge/promptforge/internal/service"
	"github.com/promptforge/promptforge/internal/validator"
)

// PromptsHandler handles the stored prompt library endpoints
type PromptsHandler struct {
	library *service.LibraryService
	logger  *zap.Logger
}

// NewPromptsHandler creates a new prompts handler
func NewPromptsHandler(library *service.LibraryService, logger *zap.Logger) *PromptsHandler {
	return &PromptsHandler{
		library: library,
		logger:  logger,
	}
}

// ListPrompts handles GET /v1/prompts
func (h *PromptsHandler) ListPrompts(c *fiber.Ctx) error {
	var req dto.ListPromptsRequest
	if err := c.QueryParser(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid query parameters: "+err.Error())
	}
	if err := validator.Validate(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	filter := &domain.PromptFilter{
		Tags:     req.Tags,
		MinScore: req.MinScore,
	}
	if req.Domain != "" {
		d := domain.Domain(req.Domain)
		filter.Domain = &d
	}

	p := ParsePagination(c, 200)
	list, err := h.library.List(c.Context(), filter, p.Limit, p.Offset)
	if err != nil {
		h.logger.Error("failed to list prompts", zap.Error(err))
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to list prompts")
	}

	return c.JSON(dto.NewPromptListResponse(*list))
}

// SearchPrompts handles GET /v1/prompts/search
func (h *PromptsHandler) SearchPrompts(c *fiber.Ctx) error {
	var req dto.SearchPromptsRequest
	if err := c.QueryParser(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid query parameters: "+err.Error())
	}
	if err := validator.Validate(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	var filter *domain.PromptFilter
	if req.Domain != "" {
		d := domain.Domain(req.Domain)
		filter = &domain.PromptFilter{Domain: &d}
	}

	p := ParsePagination(c, 200)
	list, err := h.library.Search(c.Context(), req.Query, filter, p.Limit, p.Offset)
	if err != nil {
		if apperrors.IsInvalidInput(err) {
			return errorResponse(c, fiber.StatusBadRequest, err.Error())
		}
		h.logger.Error("failed to search prompts", zap.Error(err))
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to search prompts")
	}

	return c.JSON(dto.NewPromptListResponse(*list))
}

// GetPrompt handles GET /v1/prompts/:id
func (h *PromptsHandler) GetPrompt(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid prompt ID")
	}

	record, err := h.library.Get(c.Context(), id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return errorResponse(c, fiber.StatusNotFound, "Prompt not found")
		}
		h.logger.Error("failed to get prompt", zap.Error(err))
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to get prompt")
	}

	return c.JSON(dto.NewPromptRecordResponse(*record))
}

// DeletePrompt handles DELETE /v1/prompts/:id
func (h *PromptsHandler) DeletePrompt(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid prompt ID")
	}

	if err := h.library.Delete(c.Context(), id); err != nil {
		if apperrors.IsNotFound(err) {
			return errorResponse(c, fiber.StatusNotFound, "Prompt not found")
		}
		h.logger.Error("failed to delete prompt", zap.Error(err))
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to delete prompt")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// AddTags handles POST /v1/prompts/:id/tags
func (h *PromptsHandler) AddTags(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid prompt ID")
	}

	var req dto.AddTagsRequest
	if err := dto.ParseAndValidate(c, &req); err != nil {
		return badRequest(c, err)
	}

	record, err := h.library.AddTags(c.Context(), id, req.Tags)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return errorResponse(c, fiber.StatusNotFound, "Prompt not found")
		}
		if apperrors.IsInvalidInput(err) {
			return errorResponse(c, fiber.StatusBadRequest, err.Error())
		}
		h.logger.Error("failed to add tags", zap.Error(err))
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to add tags")
	}

	return c.JSON(dto.NewPromptRecordResponse(*record))
}

// GetStats handles GET /v1/prompts/stats
func (h *PromptsHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.library.Stats(c.Context())
	if err != nil {
		h.logger.Error("failed to get prompt stats", zap.Error(err))
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to get prompt stats")
	}

	return c.JSON(dto.NewStatsResponse(stats))
}
