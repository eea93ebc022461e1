package worker

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"github.com/promptforge/promptforge/internal/config"
	"github.com/promptforge/promptforge/internal/domain"
	"github.com/promptforge/promptforge/internal/service"
)

// Server is the worker server
type Server struct {
	logger *zap.Logger
	config *config.Config
	server *asynq.Server
	mux    *asynq.ServeMux
	client *asynq.Client
}

// Dependencies holds the services workers run against
type Dependencies struct {
	RefinementService *service.RefinementService
	JobService        *service.JobService
}

// NewServer creates a new worker server
func NewServer(logger *zap.Logger, cfg *config.Config, deps *Dependencies) (*Server, error) {
	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}

	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: cfg.Worker.Concurrency,
			Queues: map[string]int{
				cfg.Worker.QueueCritical: 6,
				cfg.Worker.QueueDefault:  3,
				cfg.Worker.QueueLow:      1,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				logger.Error("task processing failed",
					zap.String("type", task.Type()),
					zap.Error(err),
				)
			}),
			Logger: &asynqLogger{logger: logger},
		},
	)

	refineWorker := NewRefineWorker(logger, deps.RefinementService, deps.JobService)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeRefine, refineWorker.ProcessTask)
	mux.HandleFunc(TypeRefineBatch, refineWorker.ProcessBatchTask)

	client := asynq.NewClient(redisOpt)

	return &Server{
		logger: logger,
		config: cfg,
		server: server,
		mux:    mux,
		client: client,
	}, nil
}

// Start starts the worker server
func (s *Server) Start() error {
	s.logger.Info("starting worker server",
		zap.Int("concurrency", s.config.Worker.Concurrency),
	)

	return s.server.Run(s.mux)
}

// Stop stops the worker server
func (s *Server) Stop() {
	s.server.Shutdown()
	s.client.Close()
}

// Client returns the asynq client for enqueuing tasks
func (s *Server) Client() *asynq.Client {
	return s.client
}

// Enqueuer submits refinement tasks through an asynq client. It
// implements the service layer's TaskEnqueuer.
type Enqueuer struct {
	client *asynq.Client
	queue  string
}

// NewEnqueuer creates an enqueuer targeting the given queue
func NewEnqueuer(client *asynq.Client, queue string) *Enqueuer {
	return &Enqueuer{client: client, queue: queue}
}

// EnqueueRefine submits one refinement task
func (e *Enqueuer) EnqueueRefine(ctx context.Context, jobID string, raw domain.RawPrompt) error {
	task, err := NewRefineTask(&RefinePayload{
		JobID:      jobID,
		Text:       raw.Text,
		DomainHint: raw.DomainHint,
		StyleHint:  raw.StyleHint,
	})
	if err != nil {
		return err
	}

	if _, err := e.client.EnqueueContext(ctx, task, asynq.Queue(e.queue)); err != nil {
		return fmt.Errorf("failed to enqueue refine task: %w", err)
	}

	return nil
}

// asynqLogger adapts zap.Logger to asynq.Logger
type asynqLogger struct {
	logger *zap.Logger
}

func (l *asynqLogger) Debug(args ...interface{}) {
	l.logger.Debug(fmt.Sprint(args...))
}

func (l *asynqLogger) Info(args ...interface{}) {
	l.logger.Info(fmt.Sprint(args...))
}

func (l *asynqLogger) Warn(args ...interface{}) {
	l.logger.Warn(fmt.Sprint(args...))
}

func (l *asynqLogger) Error(args ...interface{}) {
	l.logger.Error(fmt.Sprint(args...))
}

func (l *asynqLogger) Fatal(args ...interface{}) {
	l.logger.Fatal(fmt.Sprint(args...))
}
