package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/promptforge/promptforge/internal/domain"
	"github.com/promptforge/promptforge/internal/engine"
	apperrors "github.com/promptforge/promptforge/internal/pkg/errors"
	"github.com/promptforge/promptforge/internal/pkg/metrics"
)

// RefineCache defines the refinement result cache operations. The
// improve options are part of the cache identity: a run with a
// different target, cap or boost flag is a different result.
type RefineCache interface {
	Get(ctx context.Context, raw domain.RawPrompt, opts engine.ImproveOptions) (*domain.RefinedPrompt, bool)
	Set(ctx context.Context, raw domain.RawPrompt, opts engine.ImproveOptions, refined *domain.RefinedPrompt) error
}

// RecordWriter persists completed refinement runs
type RecordWriter interface {
	Create(ctx context.Context, record *domain.PromptRecord) error
}

// RefineInput carries one refinement request through the service
type RefineInput struct {
	Raw           domain.RawPrompt
	TargetScore   float64
	MaxIterations int
	ForceBoost    bool
	Save          bool
	Tags          []string
}

// RefineOutput is the service-level result of one refinement run.
// Record is set only when the run was persisted.
type RefineOutput struct {
	Refined *domain.RefinedPrompt
	Record  *domain.PromptRecord
}

// Defaults are the engine bounds applied when a request leaves them
// unset. Zero-valued fields fall through to the engine's own defaults.
type Defaults struct {
	TargetScore   float64
	MaxIterations int
}

// RefinementService orchestrates the engine operations: cache lookups
// around the refinement path, optional persistence and metrics.
type RefinementService struct {
	engine   *engine.Engine
	cache    RefineCache
	writer   RecordWriter
	defaults Defaults
	logger   *zap.Logger
}

// NewRefinementService creates a new refinement service. cache and
// writer may be nil, disabling caching and persistence respectively.
func NewRefinementService(eng *engine.Engine, cache RefineCache, writer RecordWriter, defaults Defaults, logger *zap.Logger) *RefinementService {
	return &RefinementService{
		engine:   eng,
		cache:    cache,
		writer:   writer,
		defaults: defaults,
		logger:   logger,
	}
}

// Refine runs the full pipeline for one raw prompt. Cache hits skip the
// engine entirely; the cached result is returned with CacheHit set. A
// cache write failure is logged, never surfaced.
func (s *RefinementService) Refine(ctx context.Context, input RefineInput) (*RefineOutput, error) {
	opts := s.improveOptions(input)

	refined, hit := s.lookupCache(ctx, input.Raw, opts)
	if !hit {
		var err error
		refined, err = s.engine.Process(ctx, input.Raw, opts)
		if err != nil {
			return nil, err
		}

		metrics.RecordRefinement(
			string(refined.Domain),
			string(refined.Template),
			refined.Score.Overall,
			refined.Metadata.Iterations,
		)
		for _, f := range refined.Findings {
			metrics.RecordFinding(string(f.Severity))
		}

		s.storeCache(ctx, input.Raw, opts, refined)
	}

	output := &RefineOutput{Refined: refined}

	if input.Save {
		record, err := s.persist(ctx, refined, input.Tags)
		if err != nil {
			return nil, err
		}
		output.Record = record
	}

	s.logger.Info("refined prompt",
		zap.String("domain", string(refined.Domain)),
		zap.String("template", string(refined.Template)),
		zap.Float64("overall", refined.Score.Overall),
		zap.Int("iterations", refined.Metadata.Iterations),
		zap.Bool("cacheHit", refined.Metadata.CacheHit),
	)

	return output, nil
}

// Evaluate scores an existing (raw, refined) pair under an authoritative
// domain
func (s *RefinementService) Evaluate(ctx context.Context, raw, refined string, d domain.Domain) (domain.QualityScore, error) {
	return s.engine.Evaluate(raw, refined, d)
}

// Validate runs anti-pattern checks over a prompt text. An empty domain
// means classify first; the resolved domain is returned alongside the
// findings.
func (s *RefinementService) Validate(ctx context.Context, text, domainHint string) ([]domain.Finding, domain.Domain, error) {
	if text == "" {
		return nil, "", apperrors.InvalidInput("text", "must not be empty")
	}
	if domainHint != "" {
		if _, ok := domain.ParseDomain(domainHint); !ok {
			return nil, "", apperrors.InvalidInput("domain", fmt.Sprintf("unknown domain %q", domainHint))
		}
	}

	d := s.engine.Classify(text, domainHint)
	findings := s.engine.Validate(text, d)

	for _, f := range findings {
		metrics.RecordFinding(string(f.Severity))
	}

	return findings, d, nil
}

// Compare refines and ranks prompt variants. An empty domain means each
// variant is classified independently.
func (s *RefinementService) Compare(ctx context.Context, variants []string, domainHint string) (*domain.ComparisonResult, error) {
	var d domain.Domain
	if domainHint != "" {
		parsed, ok := domain.ParseDomain(domainHint)
		if !ok {
			return nil, apperrors.InvalidInput("domain", fmt.Sprintf("unknown domain %q", domainHint))
		}
		d = parsed
	}

	raws := make([]domain.RawPrompt, 0, len(variants))
	for _, v := range variants {
		raws = append(raws, domain.RawPrompt{Text: v})
	}

	return s.engine.Compare(ctx, raws, d)
}

// RulesVersion returns the version of the rule tables in use
func (s *RefinementService) RulesVersion() string {
	return s.engine.RulesVersion()
}

// improveOptions resolves the engine bounds for one request: explicit
// request values win, then the configured service defaults, then the
// engine's own defaults.
func (s *RefinementService) improveOptions(input RefineInput) engine.ImproveOptions {
	opts := engine.ImproveOptions{
		TargetScore:   input.TargetScore,
		MaxIterations: input.MaxIterations,
		ForceBoost:    input.ForceBoost,
	}
	if opts.TargetScore == 0 {
		opts.TargetScore = s.defaults.TargetScore
	}
	if opts.MaxIterations == 0 {
		opts.MaxIterations = s.defaults.MaxIterations
	}
	return opts.WithDefaults()
}

func (s *RefinementService) lookupCache(ctx context.Context, raw domain.RawPrompt, opts engine.ImproveOptions) (*domain.RefinedPrompt, bool) {
	if s.cache == nil {
		return nil, false
	}

	refined, ok := s.cache.Get(ctx, raw, opts)
	if !ok {
		metrics.RecordCacheMiss()
		return nil, false
	}

	metrics.RecordCacheHit()
	refined.Metadata.CacheHit = true
	return refined, true
}

func (s *RefinementService) storeCache(ctx context.Context, raw domain.RawPrompt, opts engine.ImproveOptions, refined *domain.RefinedPrompt) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, raw, opts, refined); err != nil {
		s.logger.Warn("failed to cache refinement", zap.Error(err))
	}
}

func (s *RefinementService) persist(ctx context.Context, refined *domain.RefinedPrompt, tags []string) (*domain.PromptRecord, error) {
	if s.writer == nil {
		return nil, apperrors.Configuration("persistence is not configured")
	}

	if tags == nil {
		tags = []string{}
	}

	now := time.Now().UTC()
	record := &domain.PromptRecord{
		ID:          uuid.New(),
		RawText:     refined.RawText,
		RefinedText: refined.Text,
		Domain:      refined.Domain,
		Template:    refined.Template,
		Score:       refined.Score,
		Tags:        tags,
		Visibility:  "private",
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.writer.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to persist refinement: %w", err)
	}

	return record, nil
}
