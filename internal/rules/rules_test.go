package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptforge/promptforge/internal/domain"
)

func TestLoad(t *testing.T) {
	s, err := Load()
	require.NoError(t, err)

	t.Run("covers the closed domain set in declaration order", func(t *testing.T) {
		all := domain.AllDomains()
		require.Len(t, s.Domains(), len(all))
		for i, d := range all {
			assert.Equal(t, d, s.Domains()[i].Domain)
			assert.Equal(t, i, s.DeclarationIndex(d))
		}
	})

	t.Run("every table carries the fields the engine depends on", func(t *testing.T) {
		for _, table := range s.Domains() {
			assert.NotEmpty(t, table.Role, "domain %s", table.Domain)
			assert.True(t, table.DefaultTemplate.IsValid(), "domain %s", table.Domain)
			assert.NotEmpty(t, table.Checklist, "domain %s", table.Domain)
			if table.Domain != domain.DomainGeneral {
				assert.NotEmpty(t, table.Keywords, "domain %s", table.Domain)
				assert.NotEmpty(t, table.Sections, "domain %s", table.Domain)
			}
		}
	})

	t.Run("vocabulary matchers compile per domain", func(t *testing.T) {
		assert.NotEmpty(t, s.Vocabulary(domain.DomainSQL))
	})

	t.Run("unknown domain falls back to general", func(t *testing.T) {
		assert.Equal(t, domain.DomainGeneral, s.ForDomain(domain.Domain("astrology")).Domain)
	})
}

func TestMustLoad(t *testing.T) {
	assert.NotPanics(t, func() { MustLoad() })
}

func TestWeightedPattern_Matches(t *testing.T) {
	s := MustLoad()

	var tableKw *WeightedPattern
	sql := s.ForDomain(domain.DomainSQL)
	for i := range sql.Keywords {
		if sql.Keywords[i].Pattern == "table" {
			tableKw = &sql.Keywords[i]
		}
	}
	require.NotNil(t, tableKw)

	assert.True(t, tableKw.Matches("drop the table now"))
	assert.True(t, tableKw.Matches("TABLE scans are slow"))
	assert.False(t, tableKw.Matches("serve vegetables"))
	assert.False(t, tableKw.Matches("portable devices"))
}

func TestWordPattern_Phrases(t *testing.T) {
	re := wordPattern("sql server")
	assert.True(t, re.MatchString("target SQL Server 2022"))
	assert.False(t, re.MatchString("sql serverless"))
}

func TestChecklistItem_Satisfied(t *testing.T) {
	s := MustLoad()
	general := s.ForDomain(domain.DomainGeneral)

	var criteria *ChecklistItem
	for i := range general.Checklist {
		if general.Checklist[i].Name == "criteria" {
			criteria = &general.Checklist[i]
		}
	}
	require.NotNil(t, criteria)

	assert.True(t, criteria.Satisfied("Success criteria: all tests pass."))
	assert.True(t, criteria.Satisfied("meets the acceptance bar"))
	assert.False(t, criteria.Satisfied("finish the work"))
}

func TestAntiPattern_Check(t *testing.T) {
	t.Run("any fires on a single match", func(t *testing.T) {
		ap := AntiPattern{Any: []string{"tbd", "todo"}}
		require.NoError(t, compileAntiPattern(&ap))

		assert.True(t, ap.Check("schema is TBD"))
		assert.False(t, ap.Check("schema is final"))
	})

	t.Run("pair fires only when both sides match", func(t *testing.T) {
		ap := AntiPattern{Pair: [2]string{"brief", "comprehensive"}}
		require.NoError(t, compileAntiPattern(&ap))

		assert.True(t, ap.Check("a brief but comprehensive guide"))
		assert.False(t, ap.Check("a brief guide"))
		assert.False(t, ap.Check("a comprehensive guide"))
	})

	t.Run("missing fires when no pattern matches", func(t *testing.T) {
		ap := AntiPattern{Missing: []string{"dialect", "postgresql"}}
		require.NoError(t, compileAntiPattern(&ap))

		assert.True(t, ap.Check("write a query"))
		assert.False(t, ap.Check("use the PostgreSQL planner"))
	})

	t.Run("rejects more than one mode", func(t *testing.T) {
		ap := AntiPattern{Any: []string{"x"}, Missing: []string{"y"}}
		assert.Error(t, compileAntiPattern(&ap))
	})

	t.Run("rejects no mode", func(t *testing.T) {
		ap := AntiPattern{}
		assert.Error(t, compileAntiPattern(&ap))
	})
}

func TestSet_StyleTemplate(t *testing.T) {
	s := MustLoad()

	tests := []struct {
		hint string
		want domain.Template
		ok   bool
	}{
		{"chain-of-thought", domain.TemplateChainOfThought, true},
		{"few-shot", domain.TemplateFewShot, true},
		{"show your reasoning", domain.TemplateChainOfThought, true},
		{"please give examples", domain.TemplateFewShot, true},
		{"act as a persona", domain.TemplateRoleBased, true},
		{"  Step By Step  ", domain.TemplateChainOfThought, true},
		{"no frills", domain.TemplateBasic, true},
		{"iambic pentameter", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := s.StyleTemplate(tt.hint)
		assert.Equal(t, tt.ok, ok, "hint %q", tt.hint)
		assert.Equal(t, tt.want, got, "hint %q", tt.hint)
	}
}
