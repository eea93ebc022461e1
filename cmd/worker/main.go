package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/promptforge/promptforge/internal/config"
	"github.com/promptforge/promptforge/internal/engine"
	"github.com/promptforge/promptforge/internal/pkg/database"
	pkglogger "github.com/promptforge/promptforge/internal/pkg/logger"
	pgrepo "github.com/promptforge/promptforge/internal/repository/postgres"
	redisrepo "github.com/promptforge/promptforge/internal/repository/redis"
	"github.com/promptforge/promptforge/internal/rules"
	"github.com/promptforge/promptforge/internal/service"
	"github.com/promptforge/promptforge/internal/worker"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize loggers. The global logger backs the database
	// wrappers, the zap instance is threaded through everything else.
	if err := pkglogger.Init(pkglogger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format}); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer pkglogger.Sync()

	var logger *zap.Logger
	if cfg.Server.Env == "production" {
		logger, _ = zap.NewProduction()
	} else {
		logger, _ = zap.NewDevelopment()
	}
	defer logger.Sync()

	logger.Info("starting worker service")

	// Initialize dependencies
	deps, cleanup, err := initWorkerDependencies(cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize dependencies", zap.Error(err))
	}
	defer cleanup()

	// Create worker server
	workerServer, err := worker.NewServer(logger, cfg, deps)
	if err != nil {
		logger.Fatal("failed to create worker server", zap.Error(err))
	}

	// Start worker in a goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- workerServer.Start()
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		logger.Info("shutting down worker...")
		workerServer.Stop()
	case err := <-errCh:
		if err != nil {
			logger.Error("worker server error", zap.Error(err))
		}
	}

	logger.Info("worker stopped")
}

// initWorkerDependencies initializes dependencies for the worker
func initWorkerDependencies(cfg *config.Config, logger *zap.Logger) (*worker.Dependencies, func(), error) {
	ctx := context.Background()

	// Initialize PostgreSQL using database wrapper
	pgDB, err := database.NewPostgres(ctx, cfg.Postgres)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize PostgreSQL: %w", err)
	}

	// Initialize Redis using database wrapper
	redisDB, err := database.NewRedis(ctx, cfg.Redis)
	if err != nil {
		pgDB.Close()
		return nil, nil, fmt.Errorf("failed to initialize Redis: %w", err)
	}

	// Load rule tables and build the engine
	set, err := rules.Load()
	if err != nil {
		redisDB.Close()
		pgDB.Close()
		return nil, nil, fmt.Errorf("failed to load rule tables: %w", err)
	}
	eng := engine.New(set)

	// Initialize repositories
	promptRepo := pgrepo.NewPromptRepository(pgDB)
	jobRepo := redisrepo.NewJobRepository(redisDB, time.Duration(cfg.Worker.JobTTLMinutes)*time.Minute)

	var cache service.RefineCache
	if cfg.Cache.Enabled {
		cache = redisrepo.NewCacheRepository(redisDB, time.Duration(cfg.Cache.TTLSeconds)*time.Second)
	}

	// Initialize services. The worker never enqueues, so the job
	// service runs without an enqueuer.
	refinementService := service.NewRefinementService(eng, cache, promptRepo, service.Defaults{
		TargetScore:   cfg.Engine.TargetScore,
		MaxIterations: cfg.Engine.MaxIterations,
	}, logger)
	jobService := service.NewJobService(jobRepo, nil, logger)

	deps := &worker.Dependencies{
		RefinementService: refinementService,
		JobService:        jobService,
	}

	cleanup := func() {
		redisDB.Close()
		pgDB.Close()
	}

	return deps, cleanup, nil
}
