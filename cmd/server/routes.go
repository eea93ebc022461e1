package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/promptforge/promptforge/internal/handler"
)

// registerRoutes registers all HTTP routes
func registerRoutes(app *fiber.App, deps *Dependencies) {
	// Health check routes
	app.Get("/health", deps.HealthHandler.Health)
	app.Get("/healthz", deps.HealthHandler.Health)
	app.Get("/livez", deps.HealthHandler.Liveness)
	app.Get("/readyz", deps.HealthHandler.Readiness)
	app.Get("/version", deps.HealthHandler.Version)

	// Prometheus metrics
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// API documentation
	handler.NewDocsHandler().RegisterRoutes(app)

	v1 := app.Group("/v1")

	// Engine operations. Refinement is CPU-bound, so it carries a
	// tighter per-IP limit on top of the shared one.
	refineLimit := passthrough
	if deps.Config.RateLimit.Enabled {
		v1.Use(deps.RateLimitMiddleware.Handler())
		refineLimit = deps.RateLimitMiddleware.RefineRateLimit(deps.Config.RateLimit.RefinePerMinute)
	}
	v1.Post("/refine", refineLimit, deps.RefineHandler.Refine)
	v1.Post("/evaluate", deps.RefineHandler.Evaluate)
	v1.Post("/validate", deps.RefineHandler.Validate)
	v1.Post("/compare", refineLimit, deps.RefineHandler.Compare)
	v1.Post("/tools/:name", refineLimit, deps.RefineHandler.Tool)

	// Async refinement jobs
	v1.Post("/refine/async", deps.JobsHandler.SubmitRefine)
	v1.Get("/jobs/:id", deps.JobsHandler.GetJob)

	// Prompt library. Literal segments must register before the :id
	// parameter route.
	v1.Get("/prompts", deps.PromptsHandler.ListPrompts)
	v1.Get("/prompts/search", deps.PromptsHandler.SearchPrompts)
	v1.Get("/prompts/stats", deps.PromptsHandler.GetStats)
	v1.Get("/prompts/:id", deps.PromptsHandler.GetPrompt)
	v1.Delete("/prompts/:id", deps.PromptsHandler.DeletePrompt)
	v1.Post("/prompts/:id/tags", deps.PromptsHandler.AddTags)
}

// passthrough takes the place of a limiter when rate limiting is
// disabled
func passthrough(c *fiber.Ctx) error {
	return c.Next()
}
