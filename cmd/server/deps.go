package main

import (
	"context"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"github.com/promptforge/promptforge/internal/config"
	"github.com/promptforge/promptforge/internal/engine"
	"github.com/promptforge/promptforge/internal/handler"
	"github.com/promptforge/promptforge/internal/middleware"
	"github.com/promptforge/promptforge/internal/pkg/database"
	pgrepo "github.com/promptforge/promptforge/internal/repository/postgres"
	redisrepo "github.com/promptforge/promptforge/internal/repository/redis"
	"github.com/promptforge/promptforge/internal/rules"
	"github.com/promptforge/promptforge/internal/service"
	"github.com/promptforge/promptforge/internal/worker"
)

// Dependencies holds all application dependencies
type Dependencies struct {
	Config *config.Config
	Logger *zap.Logger

	// Data stores
	Postgres *database.PostgresDB
	Redis    *database.RedisDB

	// Engine
	Engine *engine.Engine

	// Repositories
	PromptRepo *pgrepo.PromptRepository
	CacheRepo  *redisrepo.CacheRepository
	JobRepo    *redisrepo.JobRepository

	// Services
	RefinementService *service.RefinementService
	LibraryService    *service.LibraryService
	JobService        *service.JobService

	// Handlers
	RefineHandler  *handler.RefineHandler
	PromptsHandler *handler.PromptsHandler
	JobsHandler    *handler.JobsHandler
	HealthHandler  *handler.HealthHandler

	// Middleware
	RateLimitMiddleware *middleware.RateLimitMiddleware

	// Asynq client
	AsynqClient *asynq.Client
}

// initDependencies initializes all dependencies
func initDependencies(cfg *config.Config, logger *zap.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Config: cfg,
		Logger: logger,
	}

	ctx := context.Background()

	pgDB, err := database.NewPostgres(ctx, cfg.Postgres)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize PostgreSQL: %w", err)
	}
	deps.Postgres = pgDB

	redisDB, err := database.NewRedis(ctx, cfg.Redis)
	if err != nil {
		pgDB.Close()
		return nil, fmt.Errorf("failed to initialize Redis: %w", err)
	}
	deps.Redis = redisDB

	set, err := rules.Load()
	if err != nil {
		deps.Close()
		return nil, fmt.Errorf("failed to load rule tables: %w", err)
	}
	deps.Engine = engine.New(set)

	// Repositories
	deps.PromptRepo = pgrepo.NewPromptRepository(pgDB)
	if cfg.Cache.Enabled {
		deps.CacheRepo = redisrepo.NewCacheRepository(redisDB, time.Duration(cfg.Cache.TTLSeconds)*time.Second)
	}
	deps.JobRepo = redisrepo.NewJobRepository(redisDB, time.Duration(cfg.Worker.JobTTLMinutes)*time.Minute)

	// Asynq client for enqueuing background work
	deps.AsynqClient = asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	enqueuer := worker.NewEnqueuer(deps.AsynqClient, cfg.Worker.QueueDefault)

	// Services
	var cache service.RefineCache
	if deps.CacheRepo != nil {
		cache = deps.CacheRepo
	}
	deps.RefinementService = service.NewRefinementService(deps.Engine, cache, deps.PromptRepo, service.Defaults{
		TargetScore:   cfg.Engine.TargetScore,
		MaxIterations: cfg.Engine.MaxIterations,
	}, logger)
	deps.LibraryService = service.NewLibraryService(deps.PromptRepo, logger)
	deps.JobService = service.NewJobService(deps.JobRepo, enqueuer, logger)

	// Handlers
	deps.RefineHandler = handler.NewRefineHandler(deps.RefinementService, logger)
	deps.PromptsHandler = handler.NewPromptsHandler(deps.LibraryService, logger)
	deps.JobsHandler = handler.NewJobsHandler(deps.JobService, logger)
	deps.HealthHandler = handler.NewHealthHandler(pgDB.Pool, redisDB.Client, appVersion, rules.TablesVersion)

	// Middleware
	rlCfg := middleware.DefaultRateLimitConfig()
	if cfg.RateLimit.RequestsPerSecond > 0 {
		rlCfg.Max = cfg.RateLimit.RequestsPerSecond
		rlCfg.Window = time.Second
		if cfg.RateLimit.Burst > cfg.RateLimit.RequestsPerSecond {
			// widen the window so short bursts above the sustained
			// rate pass while the average rate holds
			rlCfg.Max = cfg.RateLimit.Burst
			rlCfg.Window = time.Duration(cfg.RateLimit.Burst) * time.Second /
				time.Duration(cfg.RateLimit.RequestsPerSecond)
		}
	}
	deps.RateLimitMiddleware = middleware.NewRateLimitMiddleware(redisDB.Client, rlCfg)

	return deps, nil
}

// Close releases all held resources
func (d *Dependencies) Close() {
	if d.AsynqClient != nil {
		d.AsynqClient.Close()
	}
	if d.Redis != nil {
		d.Redis.Close()
	}
	if d.Postgres != nil {
		d.Postgres.Close()
	}
}
