// Package rules holds the static, versioned rule tables driving domain
// classification, refinement, scoring and validation.
//
// Tables are pure configuration: weighted keyword patterns, structural
// sections, completeness checklists, vocabulary overlays and anti-pattern
// checks per domain. A Set is built once at process start via Load,
// validated, and treated as read-only afterwards; concurrent readers need
// no locking.
package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/promptforge/promptforge/internal/domain"
	apperrors "github.com/promptforge/promptforge/internal/pkg/errors"
)

// TablesVersion identifies the shipped rule tables. Bumped whenever the
// tables change, so persisted scores can be traced to the rules that
// produced them.
const TablesVersion = "2025.08"

// MinClassifyScore is the minimum keyword relevance below which the
// classifier falls back to the general domain.
const MinClassifyScore = 1.0

// WeightedPattern is a keyword or phrase with a relevance weight.
// Matching is case-insensitive on word boundaries.
type WeightedPattern struct {
	Pattern string
	Weight  float64

	re *regexp.Regexp
}

// Matches reports whether the pattern occurs in text
func (p *WeightedPattern) Matches(text string) bool {
	return p.re.MatchString(text)
}

// Section is a structural section the refiner injects and the scorer
// checks for. Heading is the literal marker emitted into refined text.
type Section struct {
	Name     string
	Heading  string
	Guidance string
}

// ChecklistItem is one entry of a domain's required-field checklist.
// The item is satisfied when any of its patterns matches the refined text.
type ChecklistItem struct {
	Name     string
	Patterns []string

	res []*regexp.Regexp
}

// Satisfied reports whether the refined text covers the item
func (c *ChecklistItem) Satisfied(refined string) bool {
	for _, re := range c.res {
		if re.MatchString(refined) {
			return true
		}
	}
	return false
}

// AntiPattern is one validator check. Exactly one of Any, Pair or
// Missing is set: Any fires when any pattern matches, Pair when both
// sides match, Missing when none of the patterns match.
type AntiPattern struct {
	Category domain.FindingCategory
	Severity domain.Severity
	Message  string
	Any      []string
	Pair     [2]string
	Missing  []string

	anyRes     []*regexp.Regexp
	pairRes    [2]*regexp.Regexp
	missingRes []*regexp.Regexp
}

// Check reports whether the anti-pattern is present in the text
func (a *AntiPattern) Check(text string) bool {
	switch {
	case len(a.anyRes) > 0:
		for _, re := range a.anyRes {
			if re.MatchString(text) {
				return true
			}
		}
		return false
	case a.pairRes[0] != nil:
		return a.pairRes[0].MatchString(text) && a.pairRes[1].MatchString(text)
	case len(a.missingRes) > 0:
		for _, re := range a.missingRes {
			if re.MatchString(text) {
				return false
			}
		}
		return true
	}
	return false
}

// DomainRules is the full rule table for one domain
type DomainRules struct {
	Domain          domain.Domain
	Role            string
	DefaultTemplate domain.Template
	Keywords        []WeightedPattern
	Sections        []Section
	// ExtendedSections widen the overlay on later improver passes
	ExtendedSections []Section
	Checklist        []ChecklistItem
	Vocabulary       []string
	AntiPatterns     []AntiPattern
}

// Set is the immutable collection of rule tables for all domains plus
// generic configuration shared across domains.
type Set struct {
	domains      []DomainRules
	index        map[domain.Domain]int
	generic      []AntiPattern
	styleHints   []styleSynonym
	vocabRes     map[domain.Domain][]*regexp.Regexp
	successCrit  Section
	constraints  Section
}

type styleSynonym struct {
	template domain.Template
	phrases  []string
	res      []*regexp.Regexp
}

// Load builds the rule set from the built-in tables, compiles all
// patterns and validates the result. Configuration errors are fatal at
// process start, never per request.
func Load() (*Set, error) {
	s := &Set{
		domains:     builtinDomains(),
		index:       make(map[domain.Domain]int),
		generic:     genericAntiPatterns(),
		styleHints:  styleSynonyms(),
		vocabRes:    make(map[domain.Domain][]*regexp.Regexp),
		successCrit: successCriteriaSection(),
		constraints: constraintsSection(),
	}

	for i := range s.domains {
		d := &s.domains[i]
		if _, dup := s.index[d.Domain]; dup {
			return nil, apperrors.Configuration(fmt.Sprintf("duplicate rule table for domain %q", d.Domain))
		}
		s.index[d.Domain] = i

		if err := compileDomain(d); err != nil {
			return nil, err
		}

		var vres []*regexp.Regexp
		for _, term := range d.Vocabulary {
			vres = append(vres, wordPattern(term))
		}
		s.vocabRes[d.Domain] = vres
	}

	for i := range s.generic {
		if err := compileAntiPattern(&s.generic[i]); err != nil {
			return nil, err
		}
	}
	for i := range s.styleHints {
		for _, p := range s.styleHints[i].phrases {
			s.styleHints[i].res = append(s.styleHints[i].res, wordPattern(p))
		}
	}

	if err := s.validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// MustLoad is Load for wiring paths where a table error is a programmer
// error, e.g. tests.
func MustLoad() *Set {
	s, err := Load()
	if err != nil {
		panic(err)
	}
	return s
}

func compileDomain(d *DomainRules) error {
	for i := range d.Keywords {
		d.Keywords[i].re = wordPattern(d.Keywords[i].Pattern)
	}
	for i := range d.Checklist {
		for _, p := range d.Checklist[i].Patterns {
			d.Checklist[i].res = append(d.Checklist[i].res, wordPattern(p))
		}
	}
	for i := range d.AntiPatterns {
		if err := compileAntiPattern(&d.AntiPatterns[i]); err != nil {
			return err
		}
	}
	return nil
}

func compileAntiPattern(a *AntiPattern) error {
	set := 0
	if len(a.Any) > 0 {
		set++
		for _, p := range a.Any {
			a.anyRes = append(a.anyRes, wordPattern(p))
		}
	}
	if a.Pair[0] != "" {
		set++
		a.pairRes[0] = wordPattern(a.Pair[0])
		a.pairRes[1] = wordPattern(a.Pair[1])
	}
	if len(a.Missing) > 0 {
		set++
		for _, p := range a.Missing {
			a.missingRes = append(a.missingRes, wordPattern(p))
		}
	}
	if set != 1 {
		return apperrors.Configuration(fmt.Sprintf("anti-pattern %q must set exactly one of Any, Pair or Missing", a.Message))
	}
	return nil
}

// wordPattern compiles a case-insensitive word-boundary matcher for a
// keyword or phrase
func wordPattern(term string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(strings.ToLower(term)) + `\b`)
}

// validate checks that every declared domain carries the sections the
// engine depends on
func (s *Set) validate() error {
	for _, d := range domain.AllDomains() {
		i, ok := s.index[d]
		if !ok {
			return apperrors.Configuration(fmt.Sprintf("no rule table declared for domain %q", d))
		}
		t := s.domains[i]
		if t.Role == "" {
			return apperrors.Configuration(fmt.Sprintf("rule table %q missing role", d))
		}
		if !t.DefaultTemplate.IsValid() {
			return apperrors.Configuration(fmt.Sprintf("rule table %q has invalid default template %q", d, t.DefaultTemplate))
		}
		if len(t.Checklist) == 0 {
			return apperrors.Configuration(fmt.Sprintf("rule table %q missing checklist", d))
		}
		if d != domain.DomainGeneral {
			if len(t.Keywords) == 0 {
				return apperrors.Configuration(fmt.Sprintf("rule table %q missing keywords", d))
			}
			if len(t.Sections) == 0 {
				return apperrors.Configuration(fmt.Sprintf("rule table %q missing sections", d))
			}
		}
	}
	if len(s.domains) != len(domain.AllDomains()) {
		return apperrors.Configuration("rule tables declare a domain outside the closed set")
	}
	return nil
}

// Domains returns the rule tables in declaration order. Callers must not
// mutate the result.
func (s *Set) Domains() []DomainRules {
	return s.domains
}

// ForDomain returns the rule table for d, falling back to general for
// unknown members
func (s *Set) ForDomain(d domain.Domain) *DomainRules {
	if i, ok := s.index[d]; ok {
		return &s.domains[i]
	}
	return &s.domains[s.index[domain.DomainGeneral]]
}

// DeclarationIndex returns the stable index of d used for classifier
// tie-breaks
func (s *Set) DeclarationIndex(d domain.Domain) int {
	return s.index[d]
}

// Generic returns the anti-pattern checks applied to every domain
func (s *Set) Generic() []AntiPattern {
	return s.generic
}

// Vocabulary returns the compiled vocabulary matchers for d
func (s *Set) Vocabulary(d domain.Domain) []*regexp.Regexp {
	return s.vocabRes[d]
}

// StyleTemplate resolves an explicit style hint to a template, reporting
// whether the hint unambiguously matched
func (s *Set) StyleTemplate(hint string) (domain.Template, bool) {
	hint = strings.TrimSpace(strings.ToLower(hint))
	if hint == "" {
		return "", false
	}
	if t := domain.Template(hint); t.IsValid() {
		return t, true
	}
	for _, syn := range s.styleHints {
		for _, re := range syn.res {
			if re.MatchString(hint) {
				return syn.template, true
			}
		}
	}
	return "", false
}

// SuccessCriteria is the shared section appended when improver feedback
// flags a missing success criterion
func (s *Set) SuccessCriteria() Section {
	return s.successCrit
}

// Constraints is the shared constraints section used on widened passes
func (s *Set) Constraints() Section {
	return s.constraints
}
