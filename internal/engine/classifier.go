package engine

import (
	"strings"

	"github.com/promptforge/promptforge/internal/domain"
	"github.com/promptforge/promptforge/internal/rules"
)

// Classify maps raw text to one domain from the closed set. An explicit
// valid hint always wins; otherwise the domain whose weighted keyword
// patterns score strictly highest is chosen, ties resolving to the
// earliest rule-table declaration. Text scoring below the minimum
// threshold, including empty text, classifies as general. Never fails.
func (e *Engine) Classify(text, hint string) domain.Domain {
	if hint != "" {
		if d, ok := domain.ParseDomain(strings.ToLower(strings.TrimSpace(hint))); ok {
			return d
		}
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return domain.DomainGeneral
	}

	best := domain.DomainGeneral
	bestScore := 0.0
	for _, table := range e.rules.Domains() {
		var score float64
		for i := range table.Keywords {
			if table.Keywords[i].Matches(text) {
				score += table.Keywords[i].Weight
			}
		}
		// Strict comparison keeps the earliest declaration on ties.
		if score > bestScore {
			best = table.Domain
			bestScore = score
		}
	}

	if bestScore < rules.MinClassifyScore {
		return domain.DomainGeneral
	}
	return best
}
