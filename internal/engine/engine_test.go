package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/promptforge/promptforge/internal/rules"
)

// newTestEngine builds an engine over the shipped rule tables
func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	set, err := rules.Load()
	require.NoError(t, err)
	return New(set)
}

func TestEngine_RulesVersion(t *testing.T) {
	e := newTestEngine(t)
	require.Equal(t, rules.TablesVersion, e.RulesVersion())
}

func TestEngine_Evaluate(t *testing.T) {
	e := newTestEngine(t)

	t.Run("rejects out-of-enum domain", func(t *testing.T) {
		_, err := e.Evaluate("raw", "refined", "astrology")
		require.Error(t, err)
	})

	t.Run("scores a valid triple", func(t *testing.T) {
		score, err := e.Evaluate("create a login form", "Create a login form.", "general")
		require.NoError(t, err)
		require.True(t, score.InRange())
	})
}
