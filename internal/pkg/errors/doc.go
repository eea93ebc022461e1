// Package errors provides application error types for PromptForge.
//
// This package defines:
//   - AppError type with error classification
//   - Error constructors for common error types
//   - Error type checking helpers
//   - HTTP status code mapping
//
// # Error Types
//
//   - InvalidInput: Structurally invalid argument, the offending field is named (400)
//   - NotFound: Resource does not exist (404)
//   - Configuration: Rule tables failed validation, fatal at process start (500)
//   - Internal: Unexpected server error (500)
//
// # Usage
//
// Create errors using constructor functions:
//
//	return apperrors.InvalidInput("domain", "not a member of the closed domain set")
//	return apperrors.NotFound("prompt")
//
// Check error types:
//
//	if apperrors.IsInvalidInput(err) {
//	    // Handle bad argument
//	}
//
// # Error Wrapping
//
// Errors support wrapping with fmt.Errorf:
//
//	return fmt.Errorf("refinement failed: %w", err)
package errors
