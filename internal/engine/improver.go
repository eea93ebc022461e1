package engine

import (
	"context"
	"time"

	"github.com/promptforge/promptforge/internal/domain"
	apperrors "github.com/promptforge/promptforge/internal/pkg/errors"
)

// Default improver bounds
const (
	DefaultTargetScore   = 0.99
	DefaultMaxIterations = 3
)

// ImproveOptions bound the refine-score loop. ForceBoost reproduces the
// legacy ceiling behavior as an explicit, labeled override: when the
// target is missed, the overall is raised to the target and the result
// is flagged ScoreOverridden. Sub-scores always stay genuine. Off by
// default.
type ImproveOptions struct {
	TargetScore   float64
	MaxIterations int
	ForceBoost    bool
}

// WithDefaults fills unset fields. Zero-valued options and explicitly
// supplied defaults normalize to the same value, so callers deriving
// cache keys from options must normalize first.
func (o ImproveOptions) WithDefaults() ImproveOptions {
	if o.TargetScore == 0 {
		o.TargetScore = DefaultTargetScore
	}
	if o.MaxIterations == 0 {
		o.MaxIterations = DefaultMaxIterations
	}
	return o
}

// Improve drives the refiner and scorer in a bounded loop toward the
// target overall score. Each pass feeds the previous pass number and
// validator findings back into the refiner, widening the overlay rule
// set; the best-seen candidate is kept, so the returned score never
// regresses across iterations. Terminates within MaxIterations cycles,
// or earlier on target hit or context cancellation between iterations.
func (e *Engine) Improve(ctx context.Context, raw domain.RawPrompt, d domain.Domain, t domain.Template, opts ImproveOptions) (*domain.RefinedPrompt, error) {
	opts = opts.WithDefaults()
	if opts.MaxIterations < 1 {
		return nil, apperrors.InvalidInput("maxIterations", "must be a positive iteration cap")
	}
	if opts.TargetScore < 0 || opts.TargetScore > 1 {
		return nil, apperrors.InvalidInput("targetScore", "must lie in [0,1]")
	}

	start := time.Now()

	var (
		best       *domain.RefinedPrompt
		findings   []domain.Finding
		iterations int
	)

	for pass := 1; pass <= opts.MaxIterations; pass++ {
		if err := ctx.Err(); err != nil {
			// Abandoned between iterations: surface the cancellation,
			// the best-seen candidate stays internally consistent.
			return nil, err
		}

		refined := e.Refine(raw, d, t, pass, findings)
		findings = e.Validate(refined, d)
		score := e.Score(raw.Text, refined, d)
		iterations = pass

		if best == nil || score.Overall > best.Score.Overall {
			best = &domain.RefinedPrompt{
				RawText:  raw.Text,
				Text:     refined,
				Domain:   d,
				Template: t,
				Score:    score,
				Findings: findings,
			}
		}

		if best.Score.Overall >= opts.TargetScore {
			break
		}
	}

	best.Metadata = domain.RefineMetadata{
		ElapsedMs:  time.Since(start).Milliseconds(),
		Iterations: iterations,
	}

	if opts.ForceBoost && best.Score.Overall < opts.TargetScore {
		best.Score.Overall = opts.TargetScore
		best.Metadata.ScoreOverridden = true
	}

	return best, nil
}
