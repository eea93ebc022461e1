package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/promptforge/promptforge/internal/domain"
	"github.com/promptforge/promptforge/internal/dto"
	apperrors "github.com/promptforge/promptforge/internal/pkg/errors"
	"github.com/promptforge/promptforge/internal/service"
)

// RefineHandler handles the engine operation endpoints
type RefineHandler struct {
	refinement *service.RefinementService
	logger     *zap.Logger
}

// NewRefineHandler creates a new refine handler
func NewRefineHandler(refinement *service.RefinementService, logger *zap.Logger) *RefineHandler {
	return &RefineHandler{
		refinement: refinement,
		logger:     logger,
	}
}

// Refine handles POST /v1/refine
func (h *RefineHandler) Refine(c *fiber.Ctx) error {
	var req dto.RefineRequest
	if err := dto.ParseAndValidate(c, &req); err != nil {
		return badRequest(c, err)
	}

	input := service.RefineInput{
		Raw: domain.RawPrompt{
			Text:       req.Text,
			DomainHint: req.Domain,
			StyleHint:  req.Style,
		},
		ForceBoost: req.ForceBoost,
		Save:       req.Save,
		Tags:       req.Tags,
	}
	if req.TargetScore != nil {
		input.TargetScore = *req.TargetScore
	}
	if req.MaxIterations != nil {
		input.MaxIterations = *req.MaxIterations
	}

	out, err := h.refinement.Refine(c.Context(), input)
	if err != nil {
		return h.mapError(c, err, "failed to refine prompt")
	}

	resp := dto.NewRefineResponse(out.Refined)
	if out.Record != nil {
		resp.ID = out.Record.ID.String()
	}

	return c.JSON(resp)
}

// Evaluate handles POST /v1/evaluate
func (h *RefineHandler) Evaluate(c *fiber.Ctx) error {
	var req dto.EvaluateRequest
	if err := dto.ParseAndValidate(c, &req); err != nil {
		return badRequest(c, err)
	}

	score, err := h.refinement.Evaluate(c.Context(), req.Raw, req.Refined, domain.Domain(req.Domain))
	if err != nil {
		return h.mapError(c, err, "failed to evaluate prompt")
	}

	return c.JSON(dto.NewScoreResponse(score))
}

// Validate handles POST /v1/validate
func (h *RefineHandler) Validate(c *fiber.Ctx) error {
	var req dto.ValidateRequest
	if err := dto.ParseAndValidate(c, &req); err != nil {
		return badRequest(c, err)
	}

	findings, d, err := h.refinement.Validate(c.Context(), req.Text, req.Domain)
	if err != nil {
		return h.mapError(c, err, "failed to validate prompt")
	}

	valid := true
	for _, f := range findings {
		if f.Severity == domain.SeverityError {
			valid = false
			break
		}
	}

	return c.JSON(dto.ValidateResponse{
		Domain:   string(d),
		Findings: dto.NewFindingResponses(findings),
		Valid:    valid,
	})
}

// Compare handles POST /v1/compare
func (h *RefineHandler) Compare(c *fiber.Ctx) error {
	var req dto.CompareRequest
	if err := dto.ParseAndValidate(c, &req); err != nil {
		return badRequest(c, err)
	}

	result, err := h.refinement.Compare(c.Context(), req.Variants, req.Domain)
	if err != nil {
		return h.mapError(c, err, "failed to compare prompts")
	}

	return c.JSON(dto.NewCompareResponse(result))
}

// Tool handles POST /v1/tools/:name, dispatching to the engine
// operation named in the path.
func (h *RefineHandler) Tool(c *fiber.Ctx) error {
	switch c.Params("name") {
	case "refine":
		return h.Refine(c)
	case "evaluate":
		return h.Evaluate(c)
	case "validate":
		return h.Validate(c)
	case "compare":
		return h.Compare(c)
	default:
		return errorResponse(c, fiber.StatusNotFound, "Unknown tool: "+c.Params("name"))
	}
}

func (h *RefineHandler) mapError(c *fiber.Ctx, err error, logMsg string) error {
	if apperrors.IsInvalidInput(err) {
		return errorResponse(c, fiber.StatusBadRequest, err.Error())
	}
	if apperrors.IsConfiguration(err) {
		return errorResponse(c, fiber.StatusConflict, err.Error())
	}

	h.logger.Error(logMsg, zap.Error(err))
	return errorResponse(c, fiber.StatusInternalServerError, logMsg)
}
