package engine

import (
	"context"
	"strings"

	"github.com/promptforge/promptforge/internal/domain"
	apperrors "github.com/promptforge/promptforge/internal/pkg/errors"
	"github.com/promptforge/promptforge/internal/rules"
)

// Engine is the refinement and scoring engine. It carries only the
// immutable rule set and is safe for concurrent use.
type Engine struct {
	rules *rules.Set
}

// New creates an engine over a loaded rule set
func New(set *rules.Set) *Engine {
	return &Engine{rules: set}
}

// RulesVersion returns the version of the rule tables in use
func (e *Engine) RulesVersion() string {
	return rules.TablesVersion
}

// Process runs the full pipeline for one raw prompt: classify, select a
// template, then iteratively refine and score.
func (e *Engine) Process(ctx context.Context, raw domain.RawPrompt, opts ImproveOptions) (*domain.RefinedPrompt, error) {
	if raw.DomainHint != "" {
		if _, ok := domain.ParseDomain(strings.ToLower(strings.TrimSpace(raw.DomainHint))); !ok {
			// Hints are advisory in the pipeline; an unknown hint falls
			// through to classification rather than failing the request.
			raw.DomainHint = ""
		}
	}

	d := e.Classify(raw.Text, raw.DomainHint)
	t := e.SelectTemplate(d, raw.StyleHint)
	return e.Improve(ctx, raw, d, t, opts)
}

// Evaluate scores an existing (raw, refined) pair under an authoritative
// domain. Unlike classification hints, the domain here is required and
// must be a member of the closed set.
func (e *Engine) Evaluate(raw, refined string, d domain.Domain) (domain.QualityScore, error) {
	if !d.IsValid() {
		return domain.QualityScore{}, apperrors.InvalidInput("domain", "not a member of the closed domain set")
	}
	return e.Score(raw, refined, d), nil
}
