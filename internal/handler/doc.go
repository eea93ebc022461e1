// Package handler contains HTTP request handlers for PromptForge.
//
// Handlers are the entry point for HTTP requests, responsible for:
//   - Request parsing and validation
//   - Calling appropriate services
//   - Response formatting
//   - Error response mapping
//
// # Route Organization
//
// Routes are organized by concern:
//   - /v1/refine, /v1/evaluate, /v1/validate, /v1/compare - engine operations
//   - /v1/tools/:name - generic dispatch over the engine operations
//   - /v1/prompts/* - the stored prompt library
//   - /v1/refine/async, /v1/jobs/* - async refinement jobs
//   - /health, /livez, /readyz, /version - operational endpoints
//
// # Error Handling
//
// Handlers convert domain errors to appropriate HTTP status codes
// using the apperrors package for consistent error responses.
//
// # Thread Safety
//
// All handlers are safe for concurrent use.
package handler
