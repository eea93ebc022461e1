package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptforge/promptforge/internal/domain"
	apperrors "github.com/promptforge/promptforge/internal/pkg/errors"
)

func TestEngine_Improve(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()
	raw := domain.RawPrompt{Text: "create a login form"}

	t.Run("terminates within the iteration cap", func(t *testing.T) {
		got, err := e.Improve(ctx, raw, domain.DomainGeneral, domain.TemplateBasic, ImproveOptions{})
		require.NoError(t, err)

		assert.GreaterOrEqual(t, got.Metadata.Iterations, 1)
		assert.LessOrEqual(t, got.Metadata.Iterations, DefaultMaxIterations)
		assert.GreaterOrEqual(t, got.Metadata.ElapsedMs, int64(0))
		assert.True(t, got.Score.InRange())
		assert.False(t, got.Metadata.ScoreOverridden)
	})

	t.Run("stops on the first pass that hits the target", func(t *testing.T) {
		got, err := e.Improve(ctx, raw, domain.DomainGeneral, domain.TemplateBasic, ImproveOptions{TargetScore: 0.5})
		require.NoError(t, err)
		assert.Equal(t, 1, got.Metadata.Iterations)
		assert.GreaterOrEqual(t, got.Score.Overall, 0.5)
	})

	t.Run("best-seen score never regresses with a larger cap", func(t *testing.T) {
		var prev float64
		for limit := 1; limit <= DefaultMaxIterations; limit++ {
			got, err := e.Improve(ctx, raw, domain.DomainGeneral, domain.TemplateBasic, ImproveOptions{MaxIterations: limit})
			require.NoError(t, err)
			require.GreaterOrEqual(t, got.Score.Overall, prev)
			prev = got.Score.Overall
		}
	})

	t.Run("second pass improves the first for an underspecified prompt", func(t *testing.T) {
		one, err := e.Improve(ctx, raw, domain.DomainGeneral, domain.TemplateBasic, ImproveOptions{MaxIterations: 1})
		require.NoError(t, err)
		two, err := e.Improve(ctx, raw, domain.DomainGeneral, domain.TemplateBasic, ImproveOptions{MaxIterations: 2})
		require.NoError(t, err)
		assert.Greater(t, two.Score.Overall, one.Score.Overall)
	})

	t.Run("rejects a non-positive iteration cap", func(t *testing.T) {
		_, err := e.Improve(ctx, raw, domain.DomainGeneral, domain.TemplateBasic, ImproveOptions{MaxIterations: -1})
		require.Error(t, err)
		assert.True(t, apperrors.IsInvalidInput(err))
	})

	t.Run("rejects a target outside the unit interval", func(t *testing.T) {
		for _, target := range []float64{-0.2, 1.5} {
			_, err := e.Improve(ctx, raw, domain.DomainGeneral, domain.TemplateBasic, ImproveOptions{TargetScore: target})
			require.Error(t, err)
			assert.True(t, apperrors.IsInvalidInput(err))
		}
	})

	t.Run("honors context cancellation between iterations", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := e.Improve(cancelled, raw, domain.DomainGeneral, domain.TemplateBasic, ImproveOptions{})
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("force boost overrides the overall and flags it", func(t *testing.T) {
		got, err := e.Improve(ctx, raw, domain.DomainGeneral, domain.TemplateBasic, ImproveOptions{ForceBoost: true})
		require.NoError(t, err)

		assert.InDelta(t, DefaultTargetScore, got.Score.Overall, 1e-9)
		assert.True(t, got.Metadata.ScoreOverridden)
		// Sub-scores stay genuine; only the headline number moves.
		assert.Less(t, got.Score.ComputeOverall(), DefaultTargetScore)
	})

	t.Run("deterministic refined text", func(t *testing.T) {
		first, err := e.Improve(ctx, raw, domain.DomainGeneral, domain.TemplateBasic, ImproveOptions{})
		require.NoError(t, err)
		for i := 0; i < 10; i++ {
			again, err := e.Improve(ctx, raw, domain.DomainGeneral, domain.TemplateBasic, ImproveOptions{})
			require.NoError(t, err)
			assert.Equal(t, first.Text, again.Text)
			assert.Equal(t, first.Score, again.Score)
			assert.Equal(t, first.Findings, again.Findings)
		}
	})
}

func TestEngine_Process(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	t.Run("classifies, selects and improves in one call", func(t *testing.T) {
		got, err := e.Process(ctx, domain.RawPrompt{Text: "make a sql query to get users"}, ImproveOptions{})
		require.NoError(t, err)

		assert.Equal(t, domain.DomainSQL, got.Domain)
		assert.Equal(t, domain.TemplateChainOfThought, got.Template)
		assert.Contains(t, got.Text, "Target dialect:")
		assert.True(t, got.Score.InRange())
	})

	t.Run("unknown hint falls through to classification", func(t *testing.T) {
		got, err := e.Process(ctx, domain.RawPrompt{Text: "make a sql query to get users", DomainHint: "astrology"}, ImproveOptions{})
		require.NoError(t, err)
		assert.Equal(t, domain.DomainSQL, got.Domain)
	})

	t.Run("valid hint overrides classification", func(t *testing.T) {
		got, err := e.Process(ctx, domain.RawPrompt{Text: "make a sql query to get users", DomainHint: "finance"}, ImproveOptions{})
		require.NoError(t, err)
		assert.Equal(t, domain.DomainFinance, got.Domain)
	})
}
