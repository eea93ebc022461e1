package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptforge/promptforge/internal/domain"
)

func TestEngine_Validate(t *testing.T) {
	e := newTestEngine(t)

	t.Run("clean refined text yields no findings", func(t *testing.T) {
		refined := e.Refine(domain.RawPrompt{Text: "create a login form"}, domain.DomainGeneral, domain.TemplateBasic, 2, nil)
		assert.Empty(t, e.Validate(refined, domain.DomainGeneral))
	})

	t.Run("anti-patterns surface sorted by severity", func(t *testing.T) {
		text := "Write something brief yet comprehensive, tbd etc."
		findings := e.Validate(text, domain.DomainGeneral)

		require.Len(t, findings, 5)

		// Errors first, warnings next, info last; declaration order
		// within each severity.
		assert.Equal(t, domain.CategoryPlaceholder, findings[0].Category)
		assert.Equal(t, domain.SeverityError, findings[0].Severity)
		assert.Equal(t, domain.CategoryContradiction, findings[1].Category)
		assert.Equal(t, domain.SeverityError, findings[1].Severity)
		assert.Equal(t, domain.CategoryVagueness, findings[2].Category)
		assert.Equal(t, domain.SeverityWarning, findings[2].Severity)
		assert.Equal(t, domain.CategoryMissingCriteria, findings[3].Category)
		assert.Equal(t, domain.SeverityWarning, findings[3].Severity)
		assert.Equal(t, domain.CategoryAmbiguity, findings[4].Category)
		assert.Equal(t, domain.SeverityInfo, findings[4].Severity)

		for i := 1; i < len(findings); i++ {
			assert.GreaterOrEqual(t, findings[i-1].Severity.Rank(), findings[i].Severity.Rank())
		}
	})

	t.Run("contradictions need both sides", func(t *testing.T) {
		findings := e.Validate("Write a brief note. The report must cover the audit.", domain.DomainGeneral)
		for _, f := range findings {
			assert.NotEqual(t, domain.CategoryContradiction, f.Category)
		}
	})

	t.Run("domain checks run after generic ones", func(t *testing.T) {
		findings := e.Validate("The query must return active users.", domain.DomainSQL)
		require.True(t, hasCategory(findings, domain.CategoryMissingField))

		findings = e.Validate("The query must use the PostgreSQL dialect.", domain.DomainSQL)
		assert.False(t, hasCategory(findings, domain.CategoryMissingField))
	})

	t.Run("deterministic", func(t *testing.T) {
		text := "Write something brief yet comprehensive, tbd etc."
		first := e.Validate(text, domain.DomainSQL)
		for i := 0; i < 20; i++ {
			require.Equal(t, first, e.Validate(text, domain.DomainSQL))
		}
	})
}
