// Package dto contains Data Transfer Objects for HTTP request/response handling.
//
// DTOs provide:
//   - Type-safe request parsing with struct tags
//   - Declarative validation using go-playground/validator
//   - Separation between API contracts and domain types
//
// # Usage
//
// Use dto.ParseAndValidate() in handlers to parse and validate requests:
//
//	var req dto.RefineRequest
//	if err := dto.ParseAndValidate(c, &req); err != nil {
//	    return err
//	}
//
// # Validation Tags
//
// Common validation tags:
//   - required: Field must be present and non-empty
//   - min=N: Minimum length/value
//   - max=N: Maximum length/value
//   - uuid: Must be valid UUID format
//   - prompt_domain: Must be a member of the supported domain set
//   - prompt_template: Must be a supported template
package dto
