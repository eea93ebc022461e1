package dto

import (
	"github.com/gofiber/fiber/v2"

	apperrors "github.com/promptforge/promptforge/internal/pkg/errors"
	"github.com/promptforge/promptforge/internal/validator"
)

// ParseAndValidate parses the request body into the given struct and
// validates it. It returns the failure instead of writing a response, so
// callers must stop and serialize the error themselves. A nil return
// means v is populated and valid.
func ParseAndValidate(c *fiber.Ctx, v any) error {
	if err := c.BodyParser(v); err != nil {
		return apperrors.InvalidInput("body", "invalid request body: "+err.Error())
	}

	// validator.Validate already returns ValidationErrors with
	// per-field detail
	return validator.Validate(v)
}
