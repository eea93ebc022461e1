// Package service contains the business logic layer for PromptForge.
//
// Services coordinate between handlers and the refinement engine,
// implementing domain rules and orchestrating operations across
// repositories.
//
// Services depend on repository interfaces defined in this package,
// following the dependency inversion principle. Each service handles a
// specific area (refinement, the prompt library, async jobs).
//
// # Architecture
//
// The service layer sits between:
//   - HTTP handlers (presentation layer)
//   - The refinement engine (pure computation)
//   - Repository implementations (data access layer)
//
// Services are responsible for:
//   - Cache lookups around the refinement path
//   - Persisting refinement runs on request
//   - Recording operational metrics
//
// # Thread Safety
//
// All services are designed to be safe for concurrent use from
// multiple goroutines.
package service
