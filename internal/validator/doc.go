// Package validator provides struct validation for PromptForge.
//
// This package wraps go-playground/validator to provide:
//   - Consistent validation across all handlers
//   - Human-readable error messages
//   - Structured validation error responses
//
// # Usage
//
// Use validator.Validate() directly or through dto.ParseAndValidate():
//
//	if err := validator.Validate(myStruct); err != nil {
//	    // err is a validator.ValidationErrors
//	}
//
// # Custom Validations
//
// The prompt_domain and prompt_template tags validate membership in the
// closed domain and template sets. The validator instance is
// package-level and thread-safe.
package validator
