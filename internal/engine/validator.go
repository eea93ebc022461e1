package engine

import (
	"sort"

	"github.com/promptforge/promptforge/internal/domain"
)

// Validate runs the generic and domain anti-pattern checklists against
// refined text and returns the findings sorted by descending severity,
// declaration order on ties. Pure, side-effect free, and independent of
// the scorer: findings never influence a quality score directly.
func (e *Engine) Validate(refined string, d domain.Domain) []domain.Finding {
	table := e.rules.ForDomain(d)

	var findings []domain.Finding

	for i := range e.rules.Generic() {
		ap := &e.rules.Generic()[i]
		if ap.Check(refined) {
			findings = append(findings, domain.Finding{
				Severity: ap.Severity,
				Category: ap.Category,
				Message:  ap.Message,
			})
		}
	}
	for i := range table.AntiPatterns {
		ap := &table.AntiPatterns[i]
		if ap.Check(refined) {
			findings = append(findings, domain.Finding{
				Severity: ap.Severity,
				Category: ap.Category,
				Message:  ap.Message,
			})
		}
	}

	sort.SliceStable(findings, func(i, j int) bool {
		return findings[i].Severity.Rank() > findings[j].Severity.Rank()
	})
	return findings
}

// hasCategory reports whether any finding carries the category
func hasCategory(findings []domain.Finding, c domain.FindingCategory) bool {
	for _, f := range findings {
		if f.Category == c {
			return true
		}
	}
	return false
}
