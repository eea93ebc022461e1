package redis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/promptforge/promptforge/internal/domain"
	"github.com/promptforge/promptforge/internal/engine"
)

func TestCacheRepository_Key(t *testing.T) {
	r := NewCacheRepository(nil, time.Minute)
	raw := domain.RawPrompt{Text: "create a login form", DomainHint: "web"}

	t.Run("unset options share the key with explicit defaults", func(t *testing.T) {
		assert.Equal(t,
			r.key(raw, engine.ImproveOptions{}),
			r.key(raw, engine.ImproveOptions{
				TargetScore:   engine.DefaultTargetScore,
				MaxIterations: engine.DefaultMaxIterations,
			}))
	})

	t.Run("different options get different keys", func(t *testing.T) {
		base := r.key(raw, engine.ImproveOptions{})
		assert.NotEqual(t, base, r.key(raw, engine.ImproveOptions{TargetScore: 0.5}))
		assert.NotEqual(t, base, r.key(raw, engine.ImproveOptions{MaxIterations: 1}))
		assert.NotEqual(t, base, r.key(raw, engine.ImproveOptions{ForceBoost: true}))
	})

	t.Run("different inputs get different keys", func(t *testing.T) {
		base := r.key(raw, engine.ImproveOptions{})
		assert.NotEqual(t, base, r.key(domain.RawPrompt{Text: "create a login form"}, engine.ImproveOptions{}))
	})
}
